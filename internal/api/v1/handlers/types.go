// Package handlers provides HTTP request handling
package handlers

import (
	"errors"

	fiber "github.com/gofiber/fiber/v2"

	"github.com/pkarimi/taskboard/internal/services"
)

// Slug identifies the outcome class of an API response
type Slug string

const (
	// SuccessSlug marks a successful response
	SuccessSlug Slug = "success"
	// InvalidInputSlug marks a validation failure
	InvalidInputSlug Slug = "invalid-input"
	// NotFoundSlug marks a missing resource
	NotFoundSlug Slug = "not-found"
	// ConflictSlug marks a duplicate or capacity conflict
	ConflictSlug Slug = "conflict"
	// ServerErrorSlug marks an unexpected server failure
	ServerErrorSlug Slug = "server-error"
)

// Response is the envelope returned by every API endpoint
type Response struct {
	Slug  Slug        `json:"slug"`
	Error string      `json:"error,omitempty"`
	Data  interface{} `json:"data,omitempty"`
}

// Success wraps data in a success envelope
func Success(data interface{}) Response {
	return Response{
		Slug: SuccessSlug,
		Data: data,
	}
}

func errInvalidInput(msg string) Response {
	return Response{
		Slug:  InvalidInputSlug,
		Error: msg,
	}
}

// serviceError maps a service-layer error kind to an HTTP status and
// response envelope.
func serviceError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrValidation):
		return c.Status(fiber.StatusBadRequest).JSON(Response{Slug: InvalidInputSlug, Error: err.Error()})
	case errors.Is(err, services.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(Response{Slug: NotFoundSlug, Error: err.Error()})
	case errors.Is(err, services.ErrConflict), errors.Is(err, services.ErrCapacity):
		return c.Status(fiber.StatusConflict).JSON(Response{Slug: ConflictSlug, Error: err.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(Response{Slug: ServerErrorSlug, Error: err.Error()})
	}
}

// parseIDParam parses a positive integer path parameter
func parseIDParam(c *fiber.Ctx, name string) (uint, error) {
	id, err := c.ParamsInt(name)
	if err != nil || id <= 0 {
		return 0, errors.New(name + " must be a positive integer")
	}
	return uint(id), nil
}
