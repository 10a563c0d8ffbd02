package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/mtweb/carapi/internal/model"
	"github.com/mtweb/carapi/internal/server"
)

// carColumns is the column list every car query returns, in scanCar order.
const carColumns = "id, name, brand, model, year, created_at, updated_at"

// carSortFields whitelists the columns clients may sort by. Anything
// outside this set falls back to the default ordering instead of being
// interpolated into SQL.
var carSortFields = map[string]string{
	"id":        "id",
	"name":      "name",
	"brand":     "brand",
	"model":     "model",
	"year":      "year",
	"createdat": "created_at",
	"updatedat": "updated_at",
}

// CarRepository performs all database operations for cars.
type CarRepository struct {
	server *server.Server
}

// NewCarRepository constructs a CarRepository with access to the
// shared connection pool.
func NewCarRepository(s *server.Server) *CarRepository {
	return &CarRepository{server: s}
}

// scanCar scans a single car row in carColumns order.
func scanCar(row pgx.Row) (model.Car, error) {
	var car model.Car
	var id int64

	err := row.Scan(&id, &car.Name, &car.Brand, &car.Model, &car.Year, &car.CreatedAt, &car.UpdatedAt)
	if err != nil {
		return model.Car{}, err
	}

	car.ID = &id
	return car, nil
}

// Save persists a car and returns the stored record.
//
// A car without an id is inserted and the identity column assigns one.
// A car with an id is updated in place; if no row matches, the record
// is inserted with that id (merge semantics), which the identity
// column's GENERATED BY DEFAULT mode permits.
func (r *CarRepository) Save(ctx context.Context, car model.Car) (model.Car, error) {
	if car.ID == nil {
		row := r.server.DB.Pool.QueryRow(ctx,
			`INSERT INTO cars (name, brand, model, year)
			 VALUES ($1, $2, $3, $4)
			 RETURNING `+carColumns,
			car.Name, car.Brand, car.Model, car.Year,
		)
		return scanCar(row)
	}

	row := r.server.DB.Pool.QueryRow(ctx,
		`UPDATE cars
		 SET name = $2, brand = $3, model = $4, year = $5, updated_at = now()
		 WHERE id = $1
		 RETURNING `+carColumns,
		*car.ID, car.Name, car.Brand, car.Model, car.Year,
	)

	saved, err := scanCar(row)
	if errors.Is(err, pgx.ErrNoRows) {
		row = r.server.DB.Pool.QueryRow(ctx,
			`INSERT INTO cars (id, name, brand, model, year)
			 VALUES ($1, $2, $3, $4, $5)
			 RETURNING `+carColumns,
			*car.ID, car.Name, car.Brand, car.Model, car.Year,
		)
		return scanCar(row)
	}

	return saved, err
}

// FindOne fetches a single car by id.
//
// A miss returns pgx.ErrNoRows wrapped with the table tag so the
// sqlerr layer can name the entity in its 404 message.
func (r *CarRepository) FindOne(ctx context.Context, id int64) (model.Car, error) {
	row := r.server.DB.Pool.QueryRow(ctx,
		`SELECT `+carColumns+` FROM cars WHERE id = $1`, id)

	car, err := scanCar(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return model.Car{}, fmt.Errorf("table:cars: %w", pgx.ErrNoRows)
	}

	return car, err
}

// FindPage fetches one page of cars plus the total count.
func (r *CarRepository) FindPage(ctx context.Context, req model.PageRequest) (model.Page[model.Car], error) {
	page := model.Page[model.Car]{
		Content: []model.Car{},
		Number:  req.Page,
		Size:    req.Size,
	}

	err := r.server.DB.Pool.QueryRow(ctx, `SELECT count(*) FROM cars`).Scan(&page.TotalCount)
	if err != nil {
		return page, err
	}

	rows, err := r.server.DB.Pool.Query(ctx,
		`SELECT `+carColumns+` FROM cars ORDER BY `+buildOrderBy(req.Sort)+` LIMIT $1 OFFSET $2`,
		req.Size, req.Offset(),
	)
	if err != nil {
		return page, err
	}
	defer rows.Close()

	for rows.Next() {
		car, err := scanCar(rows)
		if err != nil {
			return page, err
		}
		page.Content = append(page.Content, car)
	}

	return page, rows.Err()
}

// Delete removes a car by id. Deleting a missing id is not an error;
// rows-affected is deliberately ignored.
func (r *CarRepository) Delete(ctx context.Context, id int64) error {
	_, err := r.server.DB.Pool.Exec(ctx, `DELETE FROM cars WHERE id = $1`, id)
	return err
}

// buildOrderBy converts Pageable-style sort params ("field" or
// "field,direction") into a safe ORDER BY clause. Unknown fields and
// directions are ignored; with no usable params the order is "id ASC".
func buildOrderBy(sort []string) string {
	var clauses []string

	for _, s := range sort {
		field, dir, _ := strings.Cut(s, ",")

		column, ok := carSortFields[strings.ToLower(strings.TrimSpace(field))]
		if !ok {
			continue
		}

		direction := "ASC"
		if strings.EqualFold(strings.TrimSpace(dir), "desc") {
			direction = "DESC"
		}

		clauses = append(clauses, column+" "+direction)
	}

	if len(clauses) == 0 {
		return "id ASC"
	}
	return strings.Join(clauses, ", ")
}
