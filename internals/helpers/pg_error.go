package helper

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"
)

// sqlStater is satisfied by both lib/pq and pgx driver errors.
type sqlStater interface {
	SQLState() string
}

// PgErrorStatus maps well-known Postgres constraint violations to HTTP
// statuses. ok is false for anything that should stay a 500.
func PgErrorStatus(err error) (status int, msg string, ok bool) {
	var st sqlStater
	if !errors.As(err, &st) {
		return 0, "", false
	}
	switch st.SQLState() {
	case "23505": // unique_violation
		return http.StatusConflict, "duplicate record", true
	case "23503": // foreign_key_violation
		return http.StatusBadRequest, "referenced record does not exist", true
	case "23514": // check_violation
		return http.StatusBadRequest, "constraint violation", true
	}
	return 0, "", false
}

// JsonDBError responds with the mapped constraint status when the error is a
// recognizable Postgres violation, a plain 500 otherwise.
func JsonDBError(c *fiber.Ctx, err error) error {
	if status, msg, ok := PgErrorStatus(err); ok {
		return JsonError(c, status, msg)
	}
	return JsonError(c, http.StatusInternalServerError, err.Error())
}
