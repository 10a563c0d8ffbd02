package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/jackc/pgx/v5"
	"github.com/labstack/echo/v4"

	"github.com/mtweb/carapi/internal/errs"
	"github.com/mtweb/carapi/internal/lib/web"
	"github.com/mtweb/carapi/internal/middleware"
	"github.com/mtweb/carapi/internal/model"
	"github.com/mtweb/carapi/internal/server"
	"github.com/mtweb/carapi/internal/service"
	"github.com/mtweb/carapi/internal/validation"
)

// carEntityName is used in alert headers and error codes.
const carEntityName = "car"

const (
	// carsBasePath is the collection URL, used for Location and
	// pagination Link headers.
	carsBasePath = "/api/cars"

	// defaultPageSize matches the Pageable default of the upstream
	// API contract.
	defaultPageSize = 20
)

// CarHandler exposes the CRUD endpoints for cars. It holds no state of
// its own: every operation validates the identifier rules and
// delegates to the car service.
type CarHandler struct {
	Handler
	cars *service.CarService
}

// NewCarHandler constructs a CarHandler.
func NewCarHandler(s *server.Server, cars *service.CarService) *CarHandler {
	return &CarHandler{
		Handler: NewHandler(s),
		cars:    cars,
	}
}

// CarRequest is the wire payload for create and update operations.
// ID is a pointer so "absent" and "zero" are distinguishable.
type CarRequest struct {
	ID    *int64 `json:"id"`
	Name  string `json:"name" validate:"required,max=255"`
	Brand string `json:"brand" validate:"omitempty,max=255"`
	Model string `json:"model" validate:"omitempty,max=255"`
	Year  int32  `json:"year" validate:"omitempty,min=1886,max=2100"`
}

func (r *CarRequest) Validate() error {
	return validation.Struct(r)
}

// toModel maps the request onto the domain record unchanged.
func (r *CarRequest) toModel() model.Car {
	return model.Car{
		ID:    r.ID,
		Name:  r.Name,
		Brand: r.Brand,
		Model: r.Model,
		Year:  r.Year,
	}
}

// ListCarsRequest carries Pageable-style query parameters.
type ListCarsRequest struct {
	Page int      `query:"page" validate:"min=0"`
	Size int      `query:"size" validate:"omitempty,min=1,max=100"`
	Sort []string `query:"sort"`
}

func (r *ListCarsRequest) Validate() error {
	return validation.Struct(r)
}

// DeleteCarRequest carries the path identifier for delete operations.
type DeleteCarRequest struct {
	ID int64 `param:"id" validate:"required"`
}

func (r *DeleteCarRequest) Validate() error {
	return validation.Struct(r)
}

// CreateCar returns the POST /api/cars handler.
// A new car must not carry an id; the store assigns one.
func (h *CarHandler) CreateCar() echo.HandlerFunc {
	return Handle(h.Handler, h.createCar, http.StatusCreated)
}

func (h *CarHandler) createCar(c echo.Context, req *CarRequest) (model.Car, error) {
	if req.ID != nil {
		code := "CAR_ID_EXISTS"
		return model.Car{}, errs.NewBadRequestError(
			"A new car cannot already have an ID", true, &code,
			[]errs.FieldError{{Field: "id", Error: "must not be provided on create"}}, nil)
	}

	saved, err := h.cars.Save(c.Request().Context(), req.toModel())
	if err != nil {
		return model.Car{}, err
	}

	header := c.Response().Header()
	header.Set(echo.HeaderLocation, fmt.Sprintf("%s/%d", carsBasePath, *saved.ID))
	web.SetEntityCreationAlert(header, carEntityName, strconv.FormatInt(*saved.ID, 10))

	return saved, nil
}

// UpdateCar returns the PUT /api/cars handler.
// An update must carry the id of an existing record; the store applies
// merge semantics.
func (h *CarHandler) UpdateCar() echo.HandlerFunc {
	return Handle(h.Handler, h.updateCar, http.StatusOK)
}

func (h *CarHandler) updateCar(c echo.Context, req *CarRequest) (model.Car, error) {
	if req.ID == nil {
		code := "CAR_ID_MISSING"
		return model.Car{}, errs.NewBadRequestError(
			"An existing car must have an ID", true, &code,
			[]errs.FieldError{{Field: "id", Error: "is required"}}, nil)
	}

	saved, err := h.cars.Save(c.Request().Context(), req.toModel())
	if err != nil {
		return model.Car{}, err
	}

	web.SetEntityUpdateAlert(c.Response().Header(), carEntityName, strconv.FormatInt(*saved.ID, 10))

	return saved, nil
}

// ListCars returns the GET /api/cars handler, responding with one page
// of cars plus X-Total-Count and Link pagination headers.
func (h *CarHandler) ListCars() echo.HandlerFunc {
	return Handle(h.Handler, h.listCars, http.StatusOK)
}

func (h *CarHandler) listCars(c echo.Context, req *ListCarsRequest) ([]model.Car, error) {
	size := req.Size
	if size == 0 {
		size = defaultPageSize
	}

	page, err := h.cars.FindPage(c.Request().Context(), model.PageRequest{
		Page: req.Page,
		Size: size,
		Sort: req.Sort,
	})
	if err != nil {
		return nil, err
	}

	web.SetPaginationHeaders(c.Response().Header(), carsBasePath,
		page.Number, page.Size, page.TotalPages(), page.TotalCount)

	return page.Content, nil
}

// GetCar handles GET /api/cars/:id.
//
// This endpoint deliberately bypasses the typed pipeline: a lookup
// miss must answer 404 with an empty body rather than the JSON error
// envelope, matching the collection's contract.
func (h *CarHandler) GetCar(c echo.Context) error {
	logger := middleware.GetLogger(c).With().
		Str("operation", "get_car").
		Logger()

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return errs.NewBadRequestError("Invalid id", false, nil,
			[]errs.FieldError{{Field: "id", Error: "must be an integer"}}, nil)
	}

	car, err := h.cars.FindOne(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			logger.Info().Int64("id", id).Msg("car not found")
			return c.NoContent(http.StatusNotFound)
		}
		return err
	}

	return c.JSON(http.StatusOK, car)
}

// DeleteCar returns the DELETE /api/cars/:id handler. Deletion is
// idempotent: a missing id still answers 200.
func (h *CarHandler) DeleteCar() echo.HandlerFunc {
	return HandleNoContent(h.Handler, h.deleteCar, http.StatusOK)
}

func (h *CarHandler) deleteCar(c echo.Context, req *DeleteCarRequest) error {
	if err := h.cars.Delete(c.Request().Context(), req.ID); err != nil {
		return err
	}

	web.SetEntityDeletionAlert(c.Response().Header(), carEntityName, strconv.FormatInt(req.ID, 10))

	return nil
}
