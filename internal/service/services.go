// Package service contains the business logic.
//
// It sits between the handler and repository layers. It receives
// validated data from the handler, performs business operations, and
// calls repository methods to interact with the data.
package service

import (
	"github.com/mtweb/carapi/internal/repository"
	"github.com/mtweb/carapi/internal/server"
)

// Services is a container that groups all business services, so the
// handler layer receives a single object instead of many.
type Services struct {
	Cars *CarService
}

// NewServices constructs the service container, wiring each service to
// its repository.
func NewServices(s *server.Server, repos *repository.Repositories) (*Services, error) {
	return &Services{
		Cars: NewCarService(s.Logger, repos.Cars),
	}, nil
}
