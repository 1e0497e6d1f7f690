package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Email    string  `json:"email" validate:"required,email"`
	Phone    string  `json:"phone" validate:"required,phone"`
	Password string  `json:"password" validate:"required,password"`
	Amount   float64 `json:"amount" validate:"gt=0"`
}

func TestStruct_Valid(t *testing.T) {
	errs := Struct(sample{Email: "a@b.in", Phone: "+91 98765 43210", Password: "secret123", Amount: 10})
	assert.Nil(t, errs)
}

func TestStruct_FieldNamesFromJSONTags(t *testing.T) {
	errs := Struct(sample{Email: "not-an-email", Phone: "12", Password: "short", Amount: 0})
	require.Len(t, errs, 4)
	fields := map[string]string{}
	for _, e := range errs {
		fields[e.Field] = e.Rule
	}
	assert.Equal(t, "email", fields["email"])
	assert.Equal(t, "phone", fields["phone"])
	assert.Equal(t, "password", fields["password"])
	assert.Equal(t, "gt", fields["amount"])
}

func TestIsValidPassword(t *testing.T) {
	assert.True(t, IsValidPassword("abcdef"))
	assert.True(t, IsValidPassword("123456"))
	assert.True(t, IsValidPassword("पासवर्डx"))
	assert.False(t, IsValidPassword("ab1"))
	assert.False(t, IsValidPassword("short"))
	assert.True(t, IsValidPassword(strings.Repeat("a", 72)))
	assert.False(t, IsValidPassword(strings.Repeat("a", 73)))
}

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "user@example.com", NormalizeEmail("  User@Example.COM "))
}
