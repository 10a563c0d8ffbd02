package router

import (
	"github.com/labstack/echo/v4"

	"github.com/mtweb/carapi/internal/handler"
)

// registerCarRoutes registers the car CRUD endpoints under /api.
func registerCarRoutes(r *echo.Echo, h *handler.Handlers) {
	api := r.Group("/api")

	api.POST("/cars", h.Cars.CreateCar())
	api.PUT("/cars", h.Cars.UpdateCar())
	api.GET("/cars", h.Cars.ListCars())
	api.GET("/cars/:id", h.Cars.GetCar)
	api.DELETE("/cars/:id", h.Cars.DeleteCar())
}
