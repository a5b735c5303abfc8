package validation

import (
	"fmt"
	"reflect"
	"strings"
)

// Message renders one failed rule in the API's wording.
func Message(field, tag, param string, kind reflect.Kind) string {
	attr := strings.ReplaceAll(field, "_", " ")

	switch tag {
	case "required", "filled":
		return fmt.Sprintf("The %s field is required.", attr)
	case "max":
		if kind == reflect.String {
			return fmt.Sprintf("The %s field must not be greater than %s characters.", attr, param)
		}
		return fmt.Sprintf("The %s field must not be greater than %s.", attr, param)
	case "gte", "min":
		if kind == reflect.String {
			return fmt.Sprintf("The %s field must be at least %s characters.", attr, param)
		}
		return fmt.Sprintf("The %s field must be at least %s.", attr, param)
	case "email":
		return fmt.Sprintf("The %s field must be a valid email address.", attr)
	case "string":
		return fmt.Sprintf("The %s field must be a string.", attr)
	case "integer":
		return fmt.Sprintf("The %s field must be an integer.", attr)
	case "numeric":
		return fmt.Sprintf("The %s field must be a number.", attr)
	case "boolean":
		return fmt.Sprintf("The %s field must be true or false.", attr)
	case "unique":
		return fmt.Sprintf("The %s has already been taken.", attr)
	case "exists":
		return fmt.Sprintf("The selected %s is invalid.", attr)
	}
	return fmt.Sprintf("The %s field is invalid.", attr)
}

// TakenMessage is the unique rule message, for checks made outside a rule table.
func TakenMessage(field string) string {
	return Message(field, "unique", "", reflect.String)
}
