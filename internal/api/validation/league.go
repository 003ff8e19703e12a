package validation

import "strings"

// CreateLeagueRequest mirrors the fields needed for create league validation.
type CreateLeagueRequest struct {
	Name string
}

// ValidateCreateLeagueRequest validates the fields of a create league request.
func ValidateCreateLeagueRequest(req CreateLeagueRequest) []FieldError {
	var errs []FieldError

	name := strings.TrimSpace(req.Name)
	if name == "" {
		errs = append(errs, FieldError{Field: "name", Message: "name is required"})
	} else if len(name) > 255 {
		errs = append(errs, FieldError{Field: "name", Message: "name must be at most 255 characters"})
	}

	return errs
}
