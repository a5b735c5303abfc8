package validation

import (
	"bytes"
	"encoding/json"
	"errors"
	"reflect"

	"crud-backend/internal/apierror"

	"github.com/gofiber/fiber/v2"
)

const MessageInvalidBody = "Invalid request body"

// BindJSON parses the request body into out. An empty body binds as {}.
// A value of the wrong JSON type is reported against its field like any
// other rule failure.
func BindJSON(c *fiber.Ctx, out any) error {
	if len(bytes.TrimSpace(c.Body())) == 0 {
		return nil
	}

	err := c.BodyParser(out)
	if err == nil {
		return nil
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" && typeErr.Type != nil {
		verr := apierror.NewValidation()
		verr.Add(typeErr.Field, Message(typeErr.Field, typeRule(typeErr.Type.Kind()), "", typeErr.Type.Kind()))
		return verr
	}
	return fiber.NewError(fiber.StatusBadRequest, MessageInvalidBody)
}

func typeRule(kind reflect.Kind) string {
	switch kind {
	case reflect.String:
		return "string"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return "integer"
	case reflect.Float32, reflect.Float64:
		return "numeric"
	case reflect.Bool:
		return "boolean"
	}
	return ""
}
