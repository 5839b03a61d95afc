// services/errors.go
package services

import (
	"fmt"
	"net/http"

	"partidas-service/models"
)

const EntityName = "partida"

// Error keys surfaced to clients.
const (
	KeyIDExists        = "idexists"
	KeyIDNull          = "idnull"
	KeyIDInvalid       = "idinvalid"
	KeyIDNotFound      = "idnotfound"
	KeyValidation      = "validation"
	KeyNombreNull      = "nombrenull"
	KeyApodoNull       = "apodonull"
	KeyCriteriaInvalid = "criteriainvalid"
	KeySortInvalid     = "sortinvalid"
)

// AlertError is a client-visible failure: it carries the HTTP status, the
// entity it concerns and a stable error key.
type AlertError struct {
	Status     int
	Message    string
	EntityName string
	ErrorKey   string
	Fields     []models.FieldError
}

func (e *AlertError) Error() string {
	return fmt.Sprintf("%s (%s.%s)", e.Message, e.EntityName, e.ErrorKey)
}

func BadRequest(message, key string) *AlertError {
	return &AlertError{
		Status:     http.StatusBadRequest,
		Message:    message,
		EntityName: EntityName,
		ErrorKey:   key,
	}
}

func NotFound(message string) *AlertError {
	return &AlertError{
		Status:     http.StatusNotFound,
		Message:    message,
		EntityName: EntityName,
		ErrorKey:   KeyIDNotFound,
	}
}

func invalidFields(fields []models.FieldError) *AlertError {
	err := BadRequest("Validation failed", KeyValidation)
	err.Fields = fields
	return err
}
