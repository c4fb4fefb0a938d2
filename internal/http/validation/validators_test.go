package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRequired(t *testing.T) {
	v := Required("Title", 5)
	assert.Equal(t, "Title is required.", v("   "))
	assert.Equal(t, "Title cannot exceed 5 characters.", v("abcdef"))
	assert.Empty(t, v(" ñandú "))
}

func TestOptional(t *testing.T) {
	v := Optional("Bio", 3)
	assert.Empty(t, v(""))
	assert.Empty(t, v("abc"))
	assert.NotEmpty(t, v("abcd"))
}

func TestNonNegativeInt(t *testing.T) {
	v := NonNegativeInt("Experience")
	assert.Empty(t, v(""))
	assert.Empty(t, v("3"))
	assert.Equal(t, "Experience must be a whole number.", v("2.5"))
	assert.Equal(t, "Experience cannot be negative.", v("-1"))
}

func TestEmail(t *testing.T) {
	v := Email("Email")
	assert.Empty(t, v("sam@example.com"))
	assert.Equal(t, "Enter a valid email.", v("Sam <sam@example.com>"))
	assert.Equal(t, "Enter a valid email.", v("not-an-email"))
}

func TestOptionalURL(t *testing.T) {
	v := OptionalURL("Company website")
	assert.Empty(t, v(""))
	assert.Empty(t, v("https://acme.example"))
	assert.NotEmpty(t, v("ftp://acme.example"))
	assert.NotEmpty(t, v("acme.example"))
}

func TestOneOf(t *testing.T) {
	v := OneOf("Job type", "full-time", "part-time")
	assert.Empty(t, v("full-time"))
	msg := v("Full-Time")
	assert.True(t, strings.HasPrefix(msg, "Job type must be one of:"))
}

func TestFieldValidator(t *testing.T) {
	fv := New().
		Validate("title", "", Required("Title", 100)).
		Validate("location", "Remote", Required("Location", 100)).
		Validate("experience", "x", Required("Experience", 3), NonNegativeInt("Experience"))

	assert.False(t, fv.Valid())
	assert.Equal(t, map[string]string{
		"title":      "Title is required.",
		"experience": "Experience must be a whole number.",
	}, fv.Errors())

	assert.True(t, New().Validate("a", "ok", Required("A", 10)).Valid())
}
