package sqlerr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/gameshelf/backend/internal/errs"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func asHTTPError(t *testing.T, err error) *errs.HTTPError {
	t.Helper()

	var httpErr *errs.HTTPError
	if !errors.As(err, &httpErr) {
		t.Fatalf("expected *errs.HTTPError, got %T: %v", err, err)
	}
	return httpErr
}

func TestHandleErrorForeignKeyViolation(t *testing.T) {
	err := HandleError(&pgconn.PgError{
		Severity:       "ERROR",
		Code:           "23503",
		TableName:      "games",
		ConstraintName: "fk_games_category",
	})

	httpErr := asHTTPError(t, err)
	if httpErr.Status != http.StatusBadRequest {
		t.Errorf("expected status 400, got %d", httpErr.Status)
	}
	if httpErr.Code != "GAME_NOT_FOUND" {
		t.Errorf("expected code GAME_NOT_FOUND, got %q", httpErr.Code)
	}
	if httpErr.Message != "The Game is referenced by or references a missing record" {
		t.Errorf("unexpected message: %q", httpErr.Message)
	}
}

func TestHandleErrorUniqueViolation(t *testing.T) {
	err := HandleError(&pgconn.PgError{
		Severity:       "ERROR",
		Code:           "23505",
		TableName:      "publishers",
		ConstraintName: "unique_publishers_name",
	})

	httpErr := asHTTPError(t, err)
	if httpErr.Status != http.StatusBadRequest {
		t.Errorf("expected status 400, got %d", httpErr.Status)
	}
	if httpErr.Code != "PUBLISHER_ALREADY_EXISTS" {
		t.Errorf("expected code PUBLISHER_ALREADY_EXISTS, got %q", httpErr.Code)
	}
	// The constraint name identifies the column, so the message names it.
	if httpErr.Message != "A Publisher with this Name already exists" {
		t.Errorf("unexpected message: %q", httpErr.Message)
	}
}

func TestHandleErrorNotNullViolation(t *testing.T) {
	err := HandleError(&pgconn.PgError{
		Severity:   "ERROR",
		Code:       "23502",
		TableName:  "games",
		ColumnName: "title",
	})

	httpErr := asHTTPError(t, err)
	if httpErr.Status != http.StatusBadRequest {
		t.Errorf("expected status 400, got %d", httpErr.Status)
	}
	if httpErr.Code != "GAME_REQUIRED" {
		t.Errorf("expected code GAME_REQUIRED, got %q", httpErr.Code)
	}
	if httpErr.Message != "The Title is required" {
		t.Errorf("unexpected message: %q", httpErr.Message)
	}
	if len(httpErr.Errors) != 1 || httpErr.Errors[0].Field != "title" {
		t.Errorf("expected field error for title, got %v", httpErr.Errors)
	}
}

func TestHandleErrorCheckViolation(t *testing.T) {
	err := HandleError(&pgconn.PgError{
		Severity:       "ERROR",
		Code:           "23514",
		TableName:      "games",
		ConstraintName: "chk_games_star_rating",
	})

	httpErr := asHTTPError(t, err)
	if httpErr.Status != http.StatusBadRequest {
		t.Errorf("expected status 400, got %d", httpErr.Status)
	}
	if httpErr.Code != "GAME_INVALID" {
		t.Errorf("expected code GAME_INVALID, got %q", httpErr.Code)
	}
}

func TestHandleErrorUnknownSQLState(t *testing.T) {
	err := HandleError(&pgconn.PgError{
		Severity: "ERROR",
		Code:     "42601", // syntax error, not an integrity violation
		Message:  "syntax error at or near \"SELEC\"",
	})

	httpErr := asHTTPError(t, err)
	if httpErr.Status != http.StatusInternalServerError {
		t.Errorf("expected status 500, got %d", httpErr.Status)
	}
	// The driver message must not leak to clients.
	if httpErr.Message != http.StatusText(http.StatusInternalServerError) {
		t.Errorf("unexpected message: %q", httpErr.Message)
	}
}

func TestHandleErrorTranslatedDuplicatedKey(t *testing.T) {
	for _, err := range []error{
		gorm.ErrDuplicatedKey,
		fmt.Errorf("creating row: %w", gorm.ErrDuplicatedKey),
	} {
		httpErr := asHTTPError(t, HandleError(err))
		if httpErr.Status != http.StatusBadRequest {
			t.Errorf("%v: expected status 400, got %d", err, httpErr.Status)
		}
		if httpErr.Code != "RECORD_ALREADY_EXISTS" {
			t.Errorf("%v: expected code RECORD_ALREADY_EXISTS, got %q", err, httpErr.Code)
		}
		if httpErr.Message != "A record with this identifier already exists" {
			t.Errorf("%v: unexpected message %q", err, httpErr.Message)
		}
	}
}

func TestHandleErrorTranslatedForeignKeyViolated(t *testing.T) {
	httpErr := asHTTPError(t, HandleError(gorm.ErrForeignKeyViolated))

	if httpErr.Status != http.StatusBadRequest {
		t.Errorf("expected status 400, got %d", httpErr.Status)
	}
	if httpErr.Code != "RECORD_NOT_FOUND" {
		t.Errorf("expected code RECORD_NOT_FOUND, got %q", httpErr.Code)
	}
	if httpErr.Message != "The record is referenced by or references a missing record" {
		t.Errorf("unexpected message: %q", httpErr.Message)
	}
}

func TestHandleErrorRecordNotFound(t *testing.T) {
	for _, err := range []error{
		gorm.ErrRecordNotFound,
		fmt.Errorf("fetching row: %w", gorm.ErrRecordNotFound),
	} {
		httpErr := asHTTPError(t, HandleError(err))
		if httpErr.Status != http.StatusNotFound {
			t.Errorf("%v: expected status 404, got %d", err, httpErr.Status)
		}
		if httpErr.Message != "Resource not found" {
			t.Errorf("%v: unexpected message %q", err, httpErr.Message)
		}
	}
}

func TestHandleErrorPassesThroughHTTPError(t *testing.T) {
	original := errs.NewNotFoundError("Game not found", nil)

	if got := HandleError(original); got != original {
		t.Errorf("expected the original error back, got %v", got)
	}
}

func TestHandleErrorGenericError(t *testing.T) {
	httpErr := asHTTPError(t, HandleError(errors.New("connection reset")))

	if httpErr.Status != http.StatusInternalServerError {
		t.Errorf("expected status 500, got %d", httpErr.Status)
	}
}

func TestErrCode(t *testing.T) {
	converted := ConvertPgError(&pgconn.PgError{Code: "23505", Severity: "ERROR"})
	if got := ErrCode(converted); got != UniqueViolation {
		t.Errorf("expected UniqueViolation, got %v", got)
	}
	if got := ErrCode(errors.New("plain")); got != Other {
		t.Errorf("expected Other, got %v", got)
	}
}

func TestExtractColumnForUniqueViolation(t *testing.T) {
	cases := map[string]string{
		"unique_publishers_name": "name",
		"publishers_name_key":    "name",
		"categories_name_ukey":   "name",
		"pk_publishers":          "",
		"":                       "",
	}
	for constraint, want := range cases {
		if got := extractColumnForUniqueViolation(constraint); got != want {
			t.Errorf("%q: expected %q, got %q", constraint, want, got)
		}
	}
}
