package web

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSetPaginationHeaders(t *testing.T) {
	tests := []struct {
		name       string
		page       int
		totalPages int
		totalCount int64
		wantLink   string
	}{
		{
			name:       "first of many",
			page:       0,
			totalPages: 3,
			totalCount: 25,
			wantLink:   `</api/cars?page=1&size=10>; rel="next",</api/cars?page=2&size=10>; rel="last",</api/cars?page=0&size=10>; rel="first"`,
		},
		{
			name:       "middle page",
			page:       1,
			totalPages: 3,
			totalCount: 25,
			wantLink:   `</api/cars?page=2&size=10>; rel="next",</api/cars?page=0&size=10>; rel="prev",</api/cars?page=2&size=10>; rel="last",</api/cars?page=0&size=10>; rel="first"`,
		},
		{
			name:       "last page",
			page:       2,
			totalPages: 3,
			totalCount: 25,
			wantLink:   `</api/cars?page=1&size=10>; rel="prev",</api/cars?page=2&size=10>; rel="last",</api/cars?page=0&size=10>; rel="first"`,
		},
		{
			name:       "single page",
			page:       0,
			totalPages: 1,
			totalCount: 4,
			wantLink:   `</api/cars?page=0&size=10>; rel="last",</api/cars?page=0&size=10>; rel="first"`,
		},
		{
			name:       "empty collection",
			page:       0,
			totalPages: 0,
			totalCount: 0,
			wantLink:   `</api/cars?page=0&size=10>; rel="last",</api/cars?page=0&size=10>; rel="first"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := http.Header{}
			SetPaginationHeaders(h, "/api/cars", tt.page, 10, tt.totalPages, tt.totalCount)

			assert.Equal(t, tt.wantLink, h.Get("Link"))
			assert.NotEmpty(t, h.Get(TotalCountHeader))
		})
	}

	t.Run("total count header", func(t *testing.T) {
		h := http.Header{}
		SetPaginationHeaders(h, "/api/cars", 0, 10, 3, 25)
		assert.Equal(t, "25", h.Get(TotalCountHeader))
	})
}

func TestEntityAlerts(t *testing.T) {
	h := http.Header{}
	SetEntityCreationAlert(h, "car", "42")
	assert.Equal(t, "carapi.car.created", h.Get("X-carapi-alert"))
	assert.Equal(t, "42", h.Get("X-carapi-params"))

	SetEntityUpdateAlert(h, "car", "42")
	assert.Equal(t, "carapi.car.updated", h.Get("X-carapi-alert"))

	SetEntityDeletionAlert(h, "car", "42")
	assert.Equal(t, "carapi.car.deleted", h.Get("X-carapi-alert"))
}
