package validation

import (
	"fmt"
	"strings"

	"github.com/pennantbox/pennant/internal/season"
)

// CreateSeasonRequest mirrors the fields needed for create season validation.
type CreateSeasonRequest struct {
	Name string
	Year int
}

// ValidateCreateSeasonRequest validates the fields of a create season request.
func ValidateCreateSeasonRequest(req CreateSeasonRequest) []FieldError {
	var errs []FieldError

	name := strings.TrimSpace(req.Name)
	if name == "" {
		errs = append(errs, FieldError{Field: "name", Message: "name is required"})
	} else if len(name) > 255 {
		errs = append(errs, FieldError{Field: "name", Message: "name must be at most 255 characters"})
	}

	if req.Year < season.MinYear || req.Year > season.MaxYear {
		errs = append(errs, FieldError{
			Field:   "year",
			Message: fmt.Sprintf("year must be between %d and %d", season.MinYear, season.MaxYear),
		})
	}

	return errs
}
