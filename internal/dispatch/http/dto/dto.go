// Package dto provides data transfer objects for dispatch HTTP handling.
package dto

import (
	"time"

	validation "github.com/jellydator/validation"
	"github.com/jellydator/validation/is"

	dispatchDomain "github.com/keypanel/keypanel/internal/dispatch/domain"
	customValidation "github.com/keypanel/keypanel/internal/validation"
)

// DispatchRequest contains the parameters for dispatching a command.
type DispatchRequest struct {
	ServerID string `json:"server_id"`
	Target   string `json:"target"`
}

// Validate checks if the dispatch request is valid.
func (r *DispatchRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.ServerID,
			validation.Required,
			is.UUID,
		),
		validation.Field(&r.Target,
			validation.Required,
			customValidation.NotBlank,
			validation.Length(1, 255),
		),
	)
}

// DispatchResponse represents a delivered command in API responses.
type DispatchResponse struct {
	ServerName string    `json:"server_name"`
	Command    string    `json:"command"`
	SentAt     time.Time `json:"sent_at"`
}

// MapDispatchToResponse converts a domain dispatch to an API response. The
// chat id stays internal.
func MapDispatchToResponse(dispatch *dispatchDomain.Dispatch) DispatchResponse {
	return DispatchResponse{
		ServerName: dispatch.ServerName,
		Command:    dispatch.Command,
		SentAt:     dispatch.SentAt,
	}
}
