package handler

import (
	"testing"

	"authntik/internal/apperror"
	"authntik/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateRequest_FullName(t *testing.T) {
	tests := []struct {
		fullName string
		valid    bool
	}{
		{"John Doe", true},
		{"Mary-Jane Watson", true},
		{"علی رضایی", true},
		{"John2", false},
		{"John_Doe", false},
		{"Jo", false},
	}

	for _, tt := range tests {
		err := validateRequest(model.RegisterRequest{Email: "a@example.com", FullName: tt.fullName, Password: "password@123"})
		if tt.valid {
			assert.NoError(t, err, tt.fullName)
		} else {
			assert.Error(t, err, tt.fullName)
		}
	}
}

func TestValidateRequest_Password(t *testing.T) {
	tests := []struct {
		password string
		valid    bool
	}{
		{"password@123", true},
		{"P@ssw0rd", true},
		{"@1abcdefg", true},
		{"password123", false},
		{"password@abc", false},
		{"12345678@", false},
		{" password@123", false},
	}

	for _, tt := range tests {
		err := validateRequest(model.RegisterRequest{Email: "a@example.com", FullName: "John Doe", Password: tt.password})
		if tt.valid {
			assert.NoError(t, err, tt.password)
		} else {
			assert.Error(t, err, tt.password)
		}
	}
}

func TestValidateRequest_FieldDetails(t *testing.T) {
	err := validateRequest(model.RegisterRequest{})
	require.Error(t, err)

	appErr := apperror.As(err)
	assert.Equal(t, apperror.CodeInvalidInput, appErr.Code)

	fields, ok := appErr.Details["fields"].(map[string]string)
	require.True(t, ok)
	assert.Equal(t, "Email is required", fields["email"])
	assert.Equal(t, "Full name is required", fields["fullName"])
	assert.Equal(t, "Password is required", fields["password"])
}
