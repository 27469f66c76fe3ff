package validation

import (
	"fmt"
	"strings"

	"walkingtube/domain/dto"
)

// Error codes for video form validation.
const (
	CodeEmptyField        = "EmptyField"
	CodeTooLong           = "TooLong"
	CodeMissingLocation   = "MissingLocation"
	CodeOutOfRange        = "OutOfRange"
	CodeInvalidYouTubeURL = "InvalidYouTubeUrl"
)

// Authoritative field limits. The two legacy entry points disagreed; the
// shared form validator's limits win.
const (
	MaxTitleLen        = 100
	MaxDescriptionLen  = 500
	MaxLocationNameLen = 100
)

// FieldError tags a validation failure with the offending field.
type FieldError struct {
	Field   string `json:"field"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (e FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateVideoForm checks a candidate submission and returns every
// applicable field error, not just the first. An empty result means the form
// is valid. Pure function, no store access.
func ValidateVideoForm(form dto.VideoForm) []FieldError {
	var errs []FieldError

	if strings.TrimSpace(form.Title) == "" {
		errs = append(errs, FieldError{Field: "title", Code: CodeEmptyField, Message: "title is required"})
	} else if len([]rune(form.Title)) > MaxTitleLen {
		errs = append(errs, FieldError{Field: "title", Code: CodeTooLong, Message: fmt.Sprintf("title must be %d characters or fewer", MaxTitleLen)})
	}

	if strings.TrimSpace(form.YouTubeURL) == "" {
		errs = append(errs, FieldError{Field: "youtube_url", Code: CodeEmptyField, Message: "youtube url or id is required"})
	}

	if form.Description != "" && len([]rune(form.Description)) > MaxDescriptionLen {
		errs = append(errs, FieldError{Field: "description", Code: CodeTooLong, Message: fmt.Sprintf("description must be %d characters or fewer", MaxDescriptionLen)})
	}

	if form.LocationName != "" && len([]rune(form.LocationName)) > MaxLocationNameLen {
		errs = append(errs, FieldError{Field: "location_name", Code: CodeTooLong, Message: fmt.Sprintf("location name must be %d characters or fewer", MaxLocationNameLen)})
	}

	if form.Latitude == nil || form.Longitude == nil {
		errs = append(errs, FieldError{Field: "location", Code: CodeMissingLocation, Message: "a location must be selected"})
	} else {
		if *form.Latitude < -90 || *form.Latitude > 90 {
			errs = append(errs, FieldError{Field: "latitude", Code: CodeOutOfRange, Message: "latitude must be between -90 and 90"})
		}
		if *form.Longitude < -180 || *form.Longitude > 180 {
			errs = append(errs, FieldError{Field: "longitude", Code: CodeOutOfRange, Message: "longitude must be between -180 and 180"})
		}
	}

	return errs
}
