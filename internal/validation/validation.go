// Package validation contains the logic for validating request data.
//
// It binds incoming payloads into typed request structs, runs their
// validation rules (validator struct tags and hand-written checks),
// and converts failures into a format the client can understand.
package validation

import (
	"github.com/gameshelf/backend/internal/errs"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// Validatable is implemented by request payload types that know how to
// validate themselves.
//
// Typical pattern:
//   - a request struct with validator tags and/or pointer fields for
//     presence detection
//   - a Validate() error method that returns either
//     validator.ValidationErrors, CustomValidationErrors, or a ready
//     *errs.HTTPError when the contract prescribes an exact message
type Validatable interface {
	Validate() error
}

// CustomValidationError represents a single validation issue for a field
// that cannot be expressed via validator tags.
type CustomValidationError struct {
	Field   string
	Message string
}

// CustomValidationErrors is a slice of custom validation errors that
// satisfies error.
type CustomValidationErrors []CustomValidationError

func (c CustomValidationErrors) Error() string {
	return "Validation failed"
}

// BindAndValidate binds request data into payload and validates it.
//
// Flow:
//  1. path params, then the body, are bound into the struct.
//  2. payload.Validate() applies validation rules.
//  3. failures come back as *errs.HTTPError (400) with field detail.
//
// payload must be a pointer so binding can mutate it. The two bind
// phases fail with different messages: a path param of the wrong type
// (GET /api/games/abc) is an invalid id, an unparseable body is not
// JSON.
func BindAndValidate(c echo.Context, payload Validatable) error {
	binder := &echo.DefaultBinder{}

	if err := binder.BindPathParams(c, payload); err != nil {
		return errs.NewBadRequestError("Invalid id", nil, nil)
	}
	if err := binder.BindBody(c, payload); err != nil {
		return errs.NewBadRequestError("Request body must be JSON", nil, nil)
	}

	if err := payload.Validate(); err != nil {
		// Requests that own their exact error shape return it directly.
		var httpErr *errs.HTTPError
		if errors.As(err, &httpErr) {
			return httpErr
		}

		msg, fieldErrors := extractValidationError(err)
		return errs.NewBadRequestError(msg, nil, fieldErrors)
	}

	return nil
}
