package handler

import (
	"github.com/mtweb/carapi/internal/server"
	"github.com/mtweb/carapi/internal/service"
)

// Handlers is a container that groups all HTTP handlers, so router
// setup receives one object instead of many.
type Handlers struct {
	Cars    *CarHandler     // Cars serves the car CRUD endpoints.
	Health  *HealthHandler  // Health serves service health endpoints.
	OpenAPI *OpenAPIHandler // OpenAPI serves API documentation.
}

// NewHandlers constructs the handler container.
func NewHandlers(s *server.Server, services *service.Services) *Handlers {
	return &Handlers{
		Cars:    NewCarHandler(s, services.Cars),
		Health:  NewHealthHandler(s),
		OpenAPI: NewOpenAPIHandler(s),
	}
}
