package customvalidator

import (
	"net/http"

	"github.com/go-playground/validator/v10"

	apperrors "medequip-system/pkg/errors"
)

// RegisterCustomValidations wires the domain rules used in DTO tags.
func RegisterCustomValidations(v *validator.Validate) error {
	if err := v.RegisterValidation("user_role", isUserRole); err != nil {
		return err
	}
	if err := v.RegisterValidation("request_status", isRequestStatus); err != nil {
		return err
	}
	if err := v.RegisterValidation("request_item_type", isRequestItemType); err != nil {
		return err
	}
	return nil
}

func isUserRole(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "ADMIN", "USER":
		return true
	}
	return false
}

func isRequestStatus(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "PENDING", "ACKNOWLEDGED", "IN_PREPARATION", "COMPLETED":
		return true
	}
	return false
}

func isRequestItemType(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "DELIVERY", "PICKUP", "REPAIR":
		return true
	}
	return false
}

// EchoValidator adapts validator.Validate to echo's Validator interface and
// converts failures into a 400 HttpError.
type EchoValidator struct {
	validate *validator.Validate
}

func NewEchoValidator(v *validator.Validate) *EchoValidator {
	return &EchoValidator{validate: v}
}

func (ev *EchoValidator) Validate(i interface{}) error {
	if err := ev.validate.Struct(i); err != nil {
		return apperrors.NewHttpError(http.StatusBadRequest, "validation failed: "+err.Error(), err)
	}
	return nil
}
