package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/mtweb/carapi/internal/model"
)

// CarStore is the narrow persistence interface the car service (and
// through it, the car endpoints) depends on. The pgx-backed repository
// satisfies it in production; tests substitute an in-memory store.
type CarStore interface {
	Save(ctx context.Context, car model.Car) (model.Car, error)
	FindOne(ctx context.Context, id int64) (model.Car, error)
	FindPage(ctx context.Context, req model.PageRequest) (model.Page[model.Car], error)
	Delete(ctx context.Context, id int64) error
}

// CarService is the business layer for cars. Each operation is a
// single synchronous delegation to the store; the service holds no
// state of its own.
type CarService struct {
	log   *zerolog.Logger
	store CarStore
}

// NewCarService constructs a CarService over the given store.
func NewCarService(log *zerolog.Logger, store CarStore) *CarService {
	return &CarService{
		log:   log,
		store: store,
	}
}

// Save persists a car (create or update, decided by id presence).
func (s *CarService) Save(ctx context.Context, car model.Car) (model.Car, error) {
	s.log.Debug().Interface("car", car).Msg("request to save car")
	return s.store.Save(ctx, car)
}

// FindOne fetches a single car by id.
func (s *CarService) FindOne(ctx context.Context, id int64) (model.Car, error) {
	s.log.Debug().Int64("id", id).Msg("request to get car")
	return s.store.FindOne(ctx, id)
}

// FindPage fetches one page of cars.
func (s *CarService) FindPage(ctx context.Context, req model.PageRequest) (model.Page[model.Car], error) {
	s.log.Debug().Int("page", req.Page).Int("size", req.Size).Msg("request to get a page of cars")
	return s.store.FindPage(ctx, req)
}

// Delete removes a car by id. Deleting a missing id is not an error.
func (s *CarService) Delete(ctx context.Context, id int64) error {
	s.log.Debug().Int64("id", id).Msg("request to delete car")
	return s.store.Delete(ctx, id)
}
