package validation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/itsaryankaushik/Shipsy-sub001/internal/errors"
	"github.com/itsaryankaushik/Shipsy-sub001/internal/validation"
)

type registrationPayload struct {
	Name     string `json:"name" validate:"required,min=2"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Phone    string `json:"phone" validate:"required,e164"`
}

func TestStruct(t *testing.T) {
	t.Run("valid payload passes", func(t *testing.T) {
		err := validation.Struct(registrationPayload{
			Name:     "Shop Owner",
			Email:    "owner@example.com",
			Password: "sup3r-secret",
			Phone:    "+919876543210",
		})
		assert.NoError(t, err)
	})

	t.Run("failures are keyed by json field name", func(t *testing.T) {
		err := validation.Struct(registrationPayload{
			Name:     "S",
			Email:    "not-an-email",
			Password: "short",
			Phone:    "12345",
		})

		var ve *apperrors.ValidationError
		require.ErrorAs(t, err, &ve)

		assert.Contains(t, ve.Fields, "name")
		assert.Contains(t, ve.Fields, "email")
		assert.Contains(t, ve.Fields, "password")
		assert.Contains(t, ve.Fields, "phone")
		assert.Equal(t, "must be at least 8 characters", ve.Fields["password"])
		assert.Equal(t, "must be a valid email address", ve.Fields["email"])
	})

	t.Run("missing required fields", func(t *testing.T) {
		err := validation.Struct(registrationPayload{})

		var ve *apperrors.ValidationError
		require.ErrorAs(t, err, &ve)
		assert.Equal(t, "is required", ve.Fields["name"])
	})

	t.Run("optional pointer fields are skipped when nil", func(t *testing.T) {
		type patch struct {
			Name *string `json:"name" validate:"omitempty,min=2"`
		}

		assert.NoError(t, validation.Struct(patch{}))

		bad := "x"
		err := validation.Struct(patch{Name: &bad})

		var ve *apperrors.ValidationError
		require.ErrorAs(t, err, &ve)
		assert.Contains(t, ve.Fields, "name")
	})
}
