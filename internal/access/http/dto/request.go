// Package dto provides data transfer objects for HTTP request and response handling.
package dto

import (
	"time"

	validation "github.com/jellydator/validation"

	customValidation "github.com/keypanel/keypanel/internal/validation"
)

// LoginRequest contains the credentials for an authentication attempt.
type LoginRequest struct {
	Username string `json:"username"`
	Value    string `json:"value"`
}

// Validate checks if the login request is valid.
func (r *LoginRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Username,
			validation.Required,
			customValidation.NotBlank,
		),
		validation.Field(&r.Value,
			validation.Required,
			customValidation.NotBlank,
		),
	)
}

// CreateKeyRequest contains the parameters for creating a new access key.
type CreateKeyRequest struct {
	Username  string     `json:"username"`
	Value     string     `json:"value"`
	Role      string     `json:"role"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
}

// Validate checks if the create key request is valid.
func (r *CreateKeyRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Username,
			validation.Required,
			customValidation.NotBlank,
			validation.Length(1, 255),
		),
		validation.Field(&r.Value,
			validation.Required,
			customValidation.NotBlank,
			validation.Length(1, 255),
		),
		validation.Field(&r.Role,
			validation.Required,
			customValidation.NotBlank,
		),
	)
}

// RotateKeyRequest contains the replacement secret for an in-place rotation.
type RotateKeyRequest struct {
	Value string `json:"value"`
}

// Validate checks if the rotate key request is valid.
func (r *RotateKeyRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Value,
			validation.Required,
			customValidation.NotBlank,
			validation.Length(1, 255),
		),
	)
}
