package sqlerr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mtweb/carapi/internal/errs"
)

func asHTTPError(t *testing.T, err error) *errs.HTTPError {
	t.Helper()

	var httpErr *errs.HTTPError
	require.ErrorAs(t, err, &httpErr)
	return httpErr
}

func TestHandleErrorUniqueViolation(t *testing.T) {
	err := HandleError(&pgconn.PgError{
		Code:           "23505",
		Severity:       "ERROR",
		TableName:      "cars",
		ConstraintName: "cars_name_key",
	})

	httpErr := asHTTPError(t, err)
	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
	assert.Equal(t, "CAR_ALREADY_EXISTS", httpErr.Code)
	assert.Equal(t, "A Car with this Name already exists", httpErr.Message)
	assert.True(t, httpErr.Override)
}

func TestHandleErrorNotNullViolation(t *testing.T) {
	err := HandleError(&pgconn.PgError{
		Code:       "23502",
		Severity:   "ERROR",
		TableName:  "cars",
		ColumnName: "name",
	})

	httpErr := asHTTPError(t, err)
	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
	assert.Equal(t, "CAR_REQUIRED", httpErr.Code)
	require.Len(t, httpErr.Errors, 1)
	assert.Equal(t, "name", httpErr.Errors[0].Field)
	assert.Equal(t, "is required", httpErr.Errors[0].Error)
}

func TestHandleErrorForeignKeyViolation(t *testing.T) {
	err := HandleError(&pgconn.PgError{
		Code:       "23503",
		Severity:   "ERROR",
		TableName:  "cars",
		ColumnName: "owner_id",
	})

	httpErr := asHTTPError(t, err)
	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
	assert.Equal(t, "CAR_NOT_FOUND", httpErr.Code)
	assert.Equal(t, "The referenced Owner does not exist", httpErr.Message)
}

func TestHandleErrorNoRows(t *testing.T) {
	t.Run("tagged with table name", func(t *testing.T) {
		err := HandleError(fmt.Errorf("table:cars: %w", pgx.ErrNoRows))

		httpErr := asHTTPError(t, err)
		assert.Equal(t, http.StatusNotFound, httpErr.Status)
		assert.Equal(t, "Car not found", httpErr.Message)
	})

	t.Run("untagged", func(t *testing.T) {
		err := HandleError(pgx.ErrNoRows)

		httpErr := asHTTPError(t, err)
		assert.Equal(t, http.StatusNotFound, httpErr.Status)
		assert.Equal(t, "Resource not found", httpErr.Message)
	})
}

func TestHandleErrorPassthrough(t *testing.T) {
	original := errs.NewBadRequestError("nope", false, nil, nil, nil)
	assert.Same(t, original, HandleError(original))
}

func TestHandleErrorUnknown(t *testing.T) {
	err := HandleError(errors.New("connection reset"))

	httpErr := asHTTPError(t, err)
	assert.Equal(t, http.StatusInternalServerError, httpErr.Status)
}

func TestErrCode(t *testing.T) {
	wrapped := fmt.Errorf("saving car: %w", ConvertPgError(&pgconn.PgError{Code: "23505"}))
	assert.Equal(t, UniqueViolation, ErrCode(wrapped))
	assert.Equal(t, Other, ErrCode(errors.New("plain")))
}

func TestGenerateErrorCode(t *testing.T) {
	assert.Equal(t, "CAR_ALREADY_EXISTS", generateErrorCode("cars", UniqueViolation))
	assert.Equal(t, "CAR_INVALID", generateErrorCode("cars", CheckViolation))
	assert.Equal(t, "RECORD_ERROR", generateErrorCode("", Other))
}
