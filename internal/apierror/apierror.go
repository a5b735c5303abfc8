// Package apierror holds the error kinds surfaced to API clients and the
// fiber error handler that renders them. Store and internal errors never
// reach the client; they are logged and answered with a generic 500.
package apierror

import (
	"errors"
	"sort"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
)

const (
	MessageValidationFailed = "Validation failed"
	MessageServerError      = "Server Error"
)

// ValidationError maps each invalid field to one or more messages.
// A mutation that fails validation is never partially applied.
type ValidationError struct {
	Message string
	Errors  map[string][]string
}

func NewValidation() *ValidationError {
	return &ValidationError{Message: MessageValidationFailed, Errors: map[string][]string{}}
}

// Add appends a message for field.
func (e *ValidationError) Add(field, msg string) {
	e.Errors[field] = append(e.Errors[field], msg)
}

func (e *ValidationError) Error() string {
	fields := make([]string, 0, len(e.Errors))
	for f := range e.Errors {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	return e.Message + ": " + strings.Join(fields, ", ")
}

// NotFoundError carries the fixed "<Entity> not found" message.
type NotFoundError struct {
	Message string
}

func NotFound(entity string) *NotFoundError {
	return &NotFoundError{Message: entity + " not found"}
}

func (e *NotFoundError) Error() string {
	return e.Message
}

func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

// Handler is installed as fiber.Config.ErrorHandler.
func Handler(c *fiber.Ctx, err error) error {
	var (
		verr *ValidationError
		nf   *NotFoundError
		fe   *fiber.Error
	)
	switch {
	case errors.As(err, &verr):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": verr.Message,
			"errors":  verr.Errors,
		})
	case errors.As(err, &nf):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": nf.Message})
	case errors.As(err, &fe):
		return c.Status(fe.Code).JSON(fiber.Map{"message": fe.Message})
	}

	log.Error().
		Interface("request_id", c.Locals("requestid")).
		Str("method", c.Method()).
		Str("path", c.Path()).
		Err(err).
		Msg("unhandled error")

	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": MessageServerError})
}
