// Package model defines the wire-level records exchanged with clients
// and the pagination types shared by the repository and handler layers.
package model

import "time"

// Car is the record managed by the car endpoints.
//
// ID is a pointer because a car submitted for creation must not carry
// an identifier; the store assigns one. All other attributes pass
// through the endpoint unexamined.
type Car struct {
	ID        *int64    `json:"id"`
	Name      string    `json:"name"`
	Brand     string    `json:"brand,omitempty"`
	Model     string    `json:"model,omitempty"`
	Year      int32     `json:"year,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// PageRequest describes the slice of a collection a client asked for.
// Page is zero-based. Sort entries use the "field" or "field,direction"
// form (e.g. "name,desc").
type PageRequest struct {
	Page int
	Size int
	Sort []string
}

// Offset returns the row offset for this request.
func (r PageRequest) Offset() int {
	return r.Page * r.Size
}

// Page is a bounded slice of records plus the metadata needed to build
// pagination headers.
type Page[T any] struct {
	Content    []T
	TotalCount int64
	Number     int
	Size       int
}

// TotalPages returns the number of pages the collection spans.
func (p Page[T]) TotalPages() int {
	if p.Size <= 0 {
		return 0
	}
	return int((p.TotalCount + int64(p.Size) - 1) / int64(p.Size))
}
