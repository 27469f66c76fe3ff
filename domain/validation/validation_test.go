package validation_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"walkingtube/domain/dto"
	"walkingtube/domain/validation"
)

func f64(v float64) *float64 { return &v }

func fieldCodes(errs []validation.FieldError) map[string]string {
	m := make(map[string]string, len(errs))
	for _, e := range errs {
		m[e.Field] = e.Code
	}
	return m
}

func TestValidateVideoForm_Valid(t *testing.T) {
	errs := validation.ValidateVideoForm(dto.VideoForm{
		Title:      "Han River Walk",
		YouTubeURL: "https://youtu.be/dQw4w9WgXcQ",
		Latitude:   f64(37.5),
		Longitude:  f64(127.0),
	})
	require.Empty(t, errs)
}

func TestValidateVideoForm_EmptyTitle(t *testing.T) {
	errs := validation.ValidateVideoForm(dto.VideoForm{
		Title:      "",
		YouTubeURL: "x",
		Latitude:   f64(0),
		Longitude:  f64(0),
	})
	require.NotEmpty(t, errs)
	assert.Equal(t, validation.CodeEmptyField, fieldCodes(errs)["title"])
}

func TestValidateVideoForm_WhitespaceTitle(t *testing.T) {
	errs := validation.ValidateVideoForm(dto.VideoForm{
		Title:      "   ",
		YouTubeURL: "x",
		Latitude:   f64(0),
		Longitude:  f64(0),
	})
	assert.Equal(t, validation.CodeEmptyField, fieldCodes(errs)["title"])
}

func TestValidateVideoForm_TooLong(t *testing.T) {
	errs := validation.ValidateVideoForm(dto.VideoForm{
		Title:        strings.Repeat("a", validation.MaxTitleLen+1),
		YouTubeURL:   "x",
		Description:  strings.Repeat("b", validation.MaxDescriptionLen+1),
		LocationName: strings.Repeat("c", validation.MaxLocationNameLen+1),
		Latitude:     f64(10),
		Longitude:    f64(20),
	})
	codes := fieldCodes(errs)
	assert.Equal(t, validation.CodeTooLong, codes["title"])
	assert.Equal(t, validation.CodeTooLong, codes["description"])
	assert.Equal(t, validation.CodeTooLong, codes["location_name"])
}

func TestValidateVideoForm_MissingLocation(t *testing.T) {
	errs := validation.ValidateVideoForm(dto.VideoForm{
		Title:      "ok",
		YouTubeURL: "x",
		Latitude:   f64(10),
	})
	assert.Equal(t, validation.CodeMissingLocation, fieldCodes(errs)["location"])
}

func TestValidateVideoForm_OutOfRange(t *testing.T) {
	errs := validation.ValidateVideoForm(dto.VideoForm{
		Title:      "ok",
		YouTubeURL: "x",
		Latitude:   f64(95),
		Longitude:  f64(0),
	})
	assert.Equal(t, validation.CodeOutOfRange, fieldCodes(errs)["latitude"])

	errs = validation.ValidateVideoForm(dto.VideoForm{
		Title:      "ok",
		YouTubeURL: "x",
		Latitude:   f64(45),
		Longitude:  f64(200),
	})
	codes := fieldCodes(errs)
	assert.Equal(t, validation.CodeOutOfRange, codes["longitude"])
	assert.NotContains(t, codes, "latitude")
}

func TestValidateVideoForm_CollectsAllErrors(t *testing.T) {
	errs := validation.ValidateVideoForm(dto.VideoForm{})
	codes := fieldCodes(errs)
	assert.Len(t, errs, 3)
	assert.Contains(t, codes, "title")
	assert.Contains(t, codes, "youtube_url")
	assert.Contains(t, codes, "location")
}
