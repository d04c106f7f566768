package helpers

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateSlug(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"simple name", "Luxury Zipper", "luxury-zipper"},
		{"quotes and punctuation collapse", `Gold Premium Zipper 10"`, "gold-premium-zipper-10"},
		{"consecutive separators collapse", "Metal -- Zipper", "metal-zipper"},
		{"leading and trailing junk trimmed", "  !Invisible Zipper!  ", "invisible-zipper"},
		{"already a slug", "nylon-coil", "nylon-coil"},
		{"mixed case", "TwoWay PLASTIC", "twoway-plastic"},
		{"only junk", "!!!", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, GenerateSlug(tc.in))
		})
	}
}

func TestIsValidPhone(t *testing.T) {
	valid := []string{
		"+919876543210",
		"9876543210",
		"+1 555 123 4567",
		"0141-2345678",
	}
	for _, number := range valid {
		assert.True(t, IsValidPhone(number), "expected %q to be valid", number)
	}

	invalid := []string{
		"",
		"12345",
		"not-a-phone",
		"+91-98765-43210-98765-43210",
		"555 1234x",
	}
	for _, number := range invalid {
		assert.False(t, IsValidPhone(number), "expected %q to be invalid", number)
	}
}

func TestPasswordHashRoundTrip(t *testing.T) {
	hashed := HashPassword("s3cret-pass")
	require.NotEmpty(t, hashed)
	assert.NotEqual(t, "s3cret-pass", hashed)

	assert.True(t, PasswordCompare(hashed, []byte("s3cret-pass")))
	assert.False(t, PasswordCompare(hashed, []byte("wrong-pass")))
}

func TestFormatValidationErrors(t *testing.T) {
	type form struct {
		Name  string `validate:"required,min=2"`
		Email string `validate:"required,email"`
	}

	err := validator.New().Struct(form{Email: "not-an-email"})
	require.Error(t, err)

	msgs := FormatValidationErrors(err.(validator.ValidationErrors))
	assert.Equal(t, "Name is required.", msgs["name"])
	assert.Equal(t, "Email must be a valid email address.", msgs["email"])
}
