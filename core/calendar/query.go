package calendar

import (
	"fmt"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"

	"github.com/trezcool/masomo-calendar/core"
)

var (
	isoDateTag  = "isodate"
	isoDateText = "{0} must be an ISO date (YYYY-MM-DD)"

	errBoundsRequired = errors.New("Query params 'from' and 'to' (ISO date) are required")
)

// InitValidators registers the calendar validation tags.
func InitValidators(validate *validator.Validate, translator ut.Translator) {
	_ = validate.RegisterValidation(isoDateTag, func(fl validator.FieldLevel) bool {
		_, err := ParseDate(fl.Field().String())
		return err == nil
	})
	core.RegisterCustomTranslation(validate, translator, isoDateTag, isoDateText)
}

// EventQuery holds the raw window bounds of a timeline request.
type EventQuery struct {
	From string `query:"from" validate:"required,isodate"`
	To   string `query:"to" validate:"required,isodate"`
}

// Window validates the query and returns the calendar dates it covers.
func (q EventQuery) Window(validate *validator.Validate, translator ut.Translator) (Window, error) {
	q.From = core.CleanString(q.From)
	q.To = core.CleanString(q.To)

	if err := validate.Struct(q); err != nil {
		verrs, ok := err.(validator.ValidationErrors)
		if !ok {
			return Window{}, err
		}
		return Window{}, queryError(verrs, translator)
	}

	// both bounds passed the isodate check
	from, _ := ParseDate(q.From)
	to, _ := ParseDate(q.To)
	return Window{From: from, To: to}, nil
}

func queryError(verrs validator.ValidationErrors, translator ut.Translator) error {
	fields := make([]core.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, core.FieldError{Field: fe.Field(), Error: fe.Translate(translator)})
	}
	for _, fe := range verrs {
		if fe.Tag() == "required" {
			return core.NewValidationError(errBoundsRequired, fields...)
		}
	}
	msg := fmt.Sprintf("Query param '%s' must be an ISO date (YYYY-MM-DD)", verrs[0].Field())
	return core.NewValidationError(errors.New(msg), fields...)
}
