// handlers/errors.go
package handlers

import (
	"errors"
	"strconv"

	"partidas-service/directory"
	"partidas-service/models"
	"partidas-service/services"

	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"
)

const (
	problemContentType = "application/problem+json"
	problemType        = "/problem/problem-with-message"
)

// Problem is the RFC 7807 body returned for every failed request.
type Problem struct {
	Type        string              `json:"type"`
	Title       string              `json:"title"`
	Status      int                 `json:"status"`
	Path        string              `json:"path"`
	Message     string              `json:"message"`
	EntityName  string              `json:"entityName,omitempty"`
	ErrorKey    string              `json:"errorKey,omitempty"`
	Params      string              `json:"params,omitempty"`
	FieldErrors []models.FieldError `json:"fieldErrors,omitempty"`
}

// ErrorHandler renders service errors as problem+json and sets the
// X-<app>-error / X-<app>-params alert headers for client-visible ones.
func ErrorHandler(appName string) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		problem := Problem{
			Type:   problemType,
			Status: fiber.StatusInternalServerError,
			Title:  "Internal Server Error",
			Path:   c.Path(),
		}

		var alert *services.AlertError
		var ferr *fiber.Error
		switch {
		case errors.As(err, &alert):
			problem.Status = alert.Status
			problem.Title = alert.Message
			problem.Message = "error." + alert.ErrorKey
			problem.EntityName = alert.EntityName
			problem.ErrorKey = alert.ErrorKey
			problem.Params = alert.EntityName
			problem.FieldErrors = alert.Fields
			c.Set(alertHeader(appName, "error"), problem.Message)
			c.Set(alertHeader(appName, "params"), alert.EntityName)
		case errors.Is(err, directory.ErrUnavailable):
			problem.Status = fiber.StatusServiceUnavailable
			problem.Title = "Association directory unavailable"
			problem.Message = "error.http.503"
		case errors.As(err, &ferr):
			problem.Status = ferr.Code
			problem.Title = ferr.Message
			problem.Message = "error.http." + strconv.Itoa(ferr.Code)
		default:
			problem.Message = "error.http.500"
		}

		if problem.Status >= fiber.StatusInternalServerError {
			log.Errorf("[HTTP] %s %s failed: %v", c.Method(), c.Path(), err)
		} else {
			log.Debugf("[HTTP] %s %s rejected: %v", c.Method(), c.Path(), err)
		}

		c.Status(problem.Status)
		if err := c.JSON(problem); err != nil {
			return err
		}
		c.Set(fiber.HeaderContentType, problemContentType)
		return nil
	}
}
