package apierror

import (
	"errors"
	"fmt"
	"net/http"
	"reflect"

	"github.com/go-playground/validator/v10"
)

// ErrorResponse abstracts all API error responses to the user.
//
// This interface does not implement `error`, since its only purpose
// is to be used for API responses and not for logging circumstances.
//
// In general, the whole ErrorResponse can be sent for serialization.
type ErrorResponse interface {
	// Code is the HTTP status code to be returned.
	Code() int
}

type APIError struct {
	Message string `json:"message"`
	Status  int    `json:"-"`
}

func (a *APIError) Code() int {
	return a.Status
}

type StructuredError struct {
	Errors map[string][]string `json:"errors"`
	Status int                 `json:"-"`
}

func (s *StructuredError) Code() int {
	return s.Status
}

func (s *StructuredError) Add(field, problem string) {
	s.Errors[field] = append(s.Errors[field], problem)
}

// Merge appends every problem of other to s.
func (s *StructuredError) Merge(other *StructuredError) {
	if other == nil {
		return
	}
	for field, problems := range other.Errors {
		s.Errors[field] = append(s.Errors[field], problems...)
	}
}

func (s *StructuredError) Empty() bool {
	return len(s.Errors) == 0
}

// ReferencesField keys reference problems that cannot be tied to a single field.
const ReferencesField = "references"

var (
	MalformedJSONError  = NewSimple(http.StatusBadRequest, "Malformed JSON body")
	InternalServerError = NewSimple(http.StatusInternalServerError, "Internal server error")

	NotFoundError     = NewSimple(http.StatusNotFound, "Resource not found")
	InvalidIDError    = NewSimple(http.StatusBadRequest, "The provided ID is invalid, IDs are positive integers")
	InvalidTaxIDError = NewSimple(http.StatusBadRequest, "The provided tax id is invalid, it must be a valid CPF or CNPJ")

	// DuplicateKeyError is used when the store reports a unique violation
	// we cannot attribute to a known entity.
	DuplicateKeyError = NewSimple(http.StatusBadRequest, "A record with this value already exists")
)

// FromValidationError collects every failing field of a validator/v10 error.
// Errors that are not validation errors end up as an InternalServerError.
func FromValidationError(err error) ErrorResponse {
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return InternalServerError
	}

	problems := NewStructured(http.StatusBadRequest)
	for _, fe := range ve {
		field := fe.Field()

		switch fe.Tag() {
		case "required":
			problems.Add(field, "This field is required")
		case "notblank":
			problems.Add(field, "This field cannot be blank")
		case "min":
			if isNumeric(fe.Kind()) {
				problems.Add(field, "Value must be greater than or equal to "+fe.Param())
			} else {
				problems.Add(field, "Value is too short, min: "+fe.Param())
			}
		case "max":
			if isNumeric(fe.Kind()) {
				problems.Add(field, "Value must be less than or equal to "+fe.Param())
			} else {
				problems.Add(field, "Value is too long, max: "+fe.Param())
			}
		case "gt":
			problems.Add(field, "Value must be greater than "+fe.Param())
		case "len":
			problems.Add(field, "Value must have exactly "+fe.Param()+" characters")
		case "alpha":
			problems.Add(field, "Value must contain only letters")
		case "taxid":
			problems.Add(field, field+" must be a valid CPF or CNPJ")

		default:
			problems.Add(field, "Invalid value provided")
		}
	}
	return problems
}

func isNumeric(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}

func NewSimple(status int, msg string, args ...any) *APIError {
	if len(args) > 0 {
		msg = fmt.Sprintf(msg, args...)
	}
	return &APIError{Status: status, Message: msg}
}

func NewStructured(code int) *StructuredError {
	return &StructuredError{
		Errors: make(map[string][]string),
		Status: code,
	}
}

func NewInvalidParamTypeError(name, dataType string) *APIError {
	return NewSimple(http.StatusBadRequest, "Parameter '%s' has invalid type, expected: %s", name, dataType)
}

// NewNotFoundError is returned when a read, update or delete targets an id that does not exist.
func NewNotFoundError(entity string, id int64) *APIError {
	return NewSimple(http.StatusNotFound, "%s with ID %d not found", entity, id)
}

// NewReferenceNotFoundError is returned when a payload points to a related row that does not exist.
func NewReferenceNotFoundError(field, entity string) *StructuredError {
	err := NewStructured(http.StatusUnprocessableEntity)
	err.Add(field, "Related "+entity+" not found")
	return err
}

// NewUnresolvedReferenceError is the reference-not-found shape used when the
// store rejected a reference without naming the field.
func NewUnresolvedReferenceError() *StructuredError {
	err := NewStructured(http.StatusUnprocessableEntity)
	err.Add(ReferencesField, "Related entity not found")
	return err
}

// NewConflictError is returned when a natural key is already taken.
func NewConflictError(entity, key string) *APIError {
	return NewSimple(http.StatusBadRequest, "A %s with this %s already exists", entity, key)
}

// NewInUseError is returned when deleting a row that still has dependents.
func NewInUseError(entity, dependent string) *APIError {
	return NewSimple(http.StatusConflict, "%s is still referenced by at least one %s", entity, dependent)
}
