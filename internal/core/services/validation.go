package services

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/SscSPs/brew_notes_app/internal/apperrors"
	"github.com/SscSPs/brew_notes_app/internal/core/domain"
	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

// fieldMessages maps "<json field>.<tag>" to the message shown next to the input.
var fieldMessages = map[string]string{
	"productName.required":   "Product name is required",
	"batchDate.datetime":     "Batch date must be a date (YYYY-MM-DD)",
	"og.gte":                 "OG must be at least 1.000",
	"og.lte":                 "OG cannot exceed 1.200",
	"fg.gte":                 "FG must be at least 1.000",
	"fg.lte":                 "FG cannot exceed 1.200",
	"abv.gte":                "ABV% cannot be negative",
	"abv.lte":                "ABV% cannot exceed 100%",
	"packagedLitres.gte":     "Size must be at least 0.1 litres",
	"mashTempC.gte":          "Mash temperature cannot be negative",
	"boilTimeMins.gte":       "Boil time cannot be negative",
	"fermentationTempC.gte":  "Fermentation temperature cannot be negative",
	"exciseDutyRate.gte":     "Excise duty rate cannot be negative",
	"rate.required":          "Rate is required",
	"dateEffective.required": "Effective date is required",
	"dateEffective.datetime": "Effective date must be a date (YYYY-MM-DD)",
}

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Report fields by their JSON names so messages line up with form inputs.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
	return v
}

// validateStruct runs the struct's validate tags and converts failures into a field validation error.
func validateStruct(s any) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return apperrors.NewValidationError(err.Error())
	}

	fields := make(map[string]string, len(fieldErrs))
	for _, fe := range fieldErrs {
		if _, seen := fields[fe.Field()]; seen {
			continue
		}
		msg, ok := fieldMessages[fe.Field()+"."+fe.Tag()]
		if !ok {
			msg = fmt.Sprintf("%s failed %s validation", fe.Field(), fe.Tag())
		}
		fields[fe.Field()] = msg
	}
	return apperrors.NewFieldValidationError(fields)
}

// parseOptionalDate parses a YYYY-MM-DD date as UTC midnight. Blank input yields nil.
func parseOptionalDate(s string) (*time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	d, err := time.Parse(domain.DateLayout, s)
	if err != nil {
		return nil, err
	}
	return &d, nil
}
