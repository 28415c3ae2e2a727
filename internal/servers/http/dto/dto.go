// Package dto provides data transfer objects for server template HTTP handling.
package dto

import (
	"time"

	validation "github.com/jellydator/validation"

	serversDomain "github.com/keypanel/keypanel/internal/servers/domain"
	customValidation "github.com/keypanel/keypanel/internal/validation"
)

// CreateServerTemplateRequest contains the parameters for creating a server template.
type CreateServerTemplateRequest struct {
	ServerName    string `json:"server_name"`
	CommandFormat string `json:"command_format"`
}

// Validate checks if the create server template request is valid.
func (r *CreateServerTemplateRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.ServerName,
			validation.Required,
			customValidation.NotBlank,
			validation.Length(1, 255),
		),
		validation.Field(&r.CommandFormat,
			validation.Required,
			customValidation.NotBlank,
			customValidation.HasTargetPlaceholder,
		),
	)
}

// ServerTemplateResponse represents a server template in API responses.
type ServerTemplateResponse struct {
	ID            string    `json:"id"`
	ServerName    string    `json:"server_name"`
	CommandFormat string    `json:"command_format"`
	CreatedAt     time.Time `json:"created_at"`
}

// MapServerTemplateToResponse converts a domain server template to an API response.
func MapServerTemplateToResponse(template *serversDomain.ServerTemplate) ServerTemplateResponse {
	return ServerTemplateResponse{
		ID:            template.ID.String(),
		ServerName:    template.ServerName,
		CommandFormat: template.CommandFormat,
		CreatedAt:     template.CreatedAt,
	}
}

// ListServerTemplatesResponse represents a list of server templates in API responses.
type ListServerTemplatesResponse struct {
	Data []ServerTemplateResponse `json:"data"`
}

// MapServerTemplatesToListResponse converts domain server templates to a list API response.
func MapServerTemplatesToListResponse(templates []*serversDomain.ServerTemplate) ListServerTemplatesResponse {
	responses := make([]ServerTemplateResponse, 0, len(templates))
	for _, template := range templates {
		responses = append(responses, MapServerTemplateToResponse(template))
	}
	return ListServerTemplatesResponse{
		Data: responses,
	}
}
