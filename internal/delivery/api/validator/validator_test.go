package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type signUpRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Tier     string `json:"tier" validate:"omitempty,tier"`
	FullName string `json:"full_name" validate:"omitempty,notblank"`
}

func TestValidate(t *testing.T) {
	v := New()

	require.NoError(t, v.Validate(&signUpRequest{Email: "jane@example.com", Password: "secret123", Tier: "small business"}))

	err := v.Validate(&signUpRequest{Email: "not-an-email", Password: "short", Tier: "Gold", FullName: "  "})
	require.Error(t, err)
	assert.Equal(t, map[string]string{
		"email":     "email",
		"password":  "min",
		"tier":      "tier",
		"full_name": "notblank",
	}, FieldErrors(err))
}

func TestFieldErrors_NotValidation(t *testing.T) {
	assert.Nil(t, FieldErrors(assert.AnError))
}
