// Package sqlerr specifically handles database driver errors.
//
// It parses cryptic error codes from the database driver and
// converts them into user-friendly messages (e.g., converting
// a "foreign key violation" into a "Bad Request" error).
package sqlerr

// Code categorizes database errors into the violation classes the
// application cares about. Anything unmapped is Other.
type Code int

const (
	Other Code = iota
	UniqueViolation
	ForeignKeyViolation
	NotNullViolation
	CheckViolation
)

// Severity mirrors the Postgres error severity field.
type Severity int

const (
	SeverityUnknown Severity = iota
	SeverityError
	SeverityFatal
	SeverityPanic
	SeverityWarning
	SeverityNotice
)

// SQLSTATE codes for the constraint violations we map.
// See https://www.postgresql.org/docs/current/errcodes-appendix.html
const (
	pgCodeNotNullViolation    = "23502"
	pgCodeForeignKeyViolation = "23503"
	pgCodeUniqueViolation     = "23505"
	pgCodeCheckViolation      = "23514"
)

// MapCode maps a Postgres SQLSTATE code onto a sqlerr.Code.
func MapCode(sqlstate string) Code {
	switch sqlstate {
	case pgCodeUniqueViolation:
		return UniqueViolation
	case pgCodeForeignKeyViolation:
		return ForeignKeyViolation
	case pgCodeNotNullViolation:
		return NotNullViolation
	case pgCodeCheckViolation:
		return CheckViolation
	default:
		return Other
	}
}

// MapSeverity maps the Postgres severity string onto a Severity.
func MapSeverity(severity string) Severity {
	switch severity {
	case "ERROR":
		return SeverityError
	case "FATAL":
		return SeverityFatal
	case "PANIC":
		return SeverityPanic
	case "WARNING":
		return SeverityWarning
	case "NOTICE":
		return SeverityNotice
	default:
		return SeverityUnknown
	}
}

// Error is the normalized database error carrying both the mapped
// category and the original Postgres metadata (table, column,
// constraint) needed to build client-facing messages.
type Error struct {
	Code           Code
	Severity       Severity
	DatabaseCode   string
	Message        string
	SchemaName     string
	TableName      string
	ColumnName     string
	DataTypeName   string
	ConstraintName string

	driverErr error
}

// Error satisfies the error interface with the database's message.
func (e *Error) Error() string {
	return e.Message
}

// Unwrap exposes the original driver error for errors.Is/As chains.
func (e *Error) Unwrap() error {
	return e.driverErr
}
