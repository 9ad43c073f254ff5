package validator

import (
	"github.com/go-playground/validator/v10"

	"github.com/followupdev/meeting-followup/internal/domain/entities"
)

// CustomValidator implements echo.Validator using go-playground/validator
type CustomValidator struct {
	v *validator.Validate
}

// New creates a new CustomValidator instance with domain validations registered
func New() *CustomValidator {
	v := validator.New()

	// "actiontype" validates the proposed action type literal
	v.RegisterValidation("actiontype", func(fl validator.FieldLevel) bool {
		return entities.ValidActionType(entities.ActionType(fl.Field().String()))
	})

	// "actionstatus" validates the action item status literal
	v.RegisterValidation("actionstatus", func(fl validator.FieldLevel) bool {
		return entities.ValidActionStatus(entities.ActionStatus(fl.Field().String()))
	})

	// "meetingstatus" validates the meeting workflow status literal
	v.RegisterValidation("meetingstatus", func(fl validator.FieldLevel) bool {
		return entities.ValidMeetingStatus(entities.MeetingStatus(fl.Field().String()))
	})

	return &CustomValidator{v: v}
}

// Validate performs struct validation
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.v.Struct(i)
}
