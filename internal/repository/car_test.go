package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildOrderBy(t *testing.T) {
	tests := []struct {
		name string
		sort []string
		want string
	}{
		{"empty defaults to id", nil, "id ASC"},
		{"single field ascending", []string{"name,asc"}, "name ASC"},
		{"direction defaults to asc", []string{"name"}, "name ASC"},
		{"descending", []string{"year,desc"}, "year DESC"},
		{"multiple criteria keep order", []string{"brand,asc", "year,desc"}, "brand ASC, year DESC"},
		{"camel case maps to column", []string{"createdAt,desc"}, "created_at DESC"},
		{"unknown field is dropped", []string{"password,asc"}, "id ASC"},
		{"injection attempt is dropped", []string{"id;drop table cars,asc"}, "id ASC"},
		{"mixed valid and invalid", []string{"nope,asc", "name,desc"}, "name DESC"},
		{"whitespace tolerated", []string{" name , DESC "}, "name DESC"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, buildOrderBy(tt.sort))
		})
	}
}
