package handlers

import (
	"regexp"
	"time"

	"github.com/SscSPs/club_billing_app/internal/dto"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var slugPattern = regexp.MustCompile(`^[A-Za-z0-9]+(?:-[A-Za-z0-9]+)*$`)

// RegisterValidators adds the custom binding tags used by the request DTOs.
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}
	if err := v.RegisterValidation("slug", validateSlug); err != nil {
		return err
	}
	return v.RegisterValidation("yearmonth", validateYearMonth)
}

func validateSlug(fl validator.FieldLevel) bool {
	return slugPattern.MatchString(fl.Field().String())
}

func validateYearMonth(fl validator.FieldLevel) bool {
	_, err := time.Parse(dto.YearMonthLayout, fl.Field().String())
	return err == nil
}
