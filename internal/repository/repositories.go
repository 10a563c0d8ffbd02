// Package repository handles all interactions with the database.
//
// It contains raw SQL queries and methods to fetch, persist, or update
// data, abstracting SQL logic away from the service layer.
package repository

import (
	"github.com/mtweb/carapi/internal/server"
)

// Repositories is a container for all repository instances, so the
// service layer receives a single object instead of many.
type Repositories struct {
	Cars *CarRepository
}

// NewRepositories constructs the repository container using the shared
// application dependencies (DB pool, logger).
func NewRepositories(s *server.Server) *Repositories {
	return &Repositories{
		Cars: NewCarRepository(s),
	}
}
