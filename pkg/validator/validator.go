package validator

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"go-pos-api/pkg/apperror"
)

var validate = validator.New()

func init() {
	// Register custom validation for UUID
	validate.RegisterValidation("uuid_required", func(fl validator.FieldLevel) bool {
		if id, ok := fl.Field().Interface().(uuid.UUID); ok {
			return id != uuid.Nil
		}
		return false
	})
}

// ValidateStruct validates data and returns every failing field with a
// readable message, or nil when the struct is valid.
func ValidateStruct(data interface{}) *apperror.ValidationError {
	err := validate.Struct(data)
	if err == nil {
		return nil
	}

	var fields []apperror.FieldError
	for _, fe := range err.(validator.ValidationErrors) {
		fields = append(fields, apperror.FieldError{
			Field:   fieldPath(fe),
			Message: message(fe),
		})
	}
	return apperror.NewValidation(fields)
}

// fieldPath strips the root struct name from the namespace so the client
// sees "SaleItems[0].Qty" instead of "CreateSaleRequest.SaleItems[0].Qty".
func fieldPath(fe validator.FieldError) string {
	ns := fe.StructNamespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return ns
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required", "uuid_required":
		return "required"
	case "email":
		return "not a valid email address"
	case "min":
		if fe.Kind().String() == "string" {
			return fmt.Sprintf("shorter than %s characters", fe.Param())
		}
		return fmt.Sprintf("less than %s", fe.Param())
	case "gt":
		return fmt.Sprintf("not greater than %s", fe.Param())
	case "oneof":
		return "not one of " + strings.ReplaceAll(fe.Param(), " ", ", ")
	default:
		return "invalid (" + fe.Tag() + ")"
	}
}
