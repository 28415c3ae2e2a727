// Package domain defines the core entities for dispatch server templates.
package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/keypanel/keypanel/internal/validation"
)

// ServerTemplate describes a dispatch destination: a human-readable server
// name and a command format with a target placeholder.
type ServerTemplate struct {
	ID            uuid.UUID
	ServerName    string
	CommandFormat string
	CreatedAt     time.Time
}

// FormatCommand substitutes the target into the command format, replacing
// every occurrence of the placeholder.
func (s *ServerTemplate) FormatCommand(target string) string {
	return strings.ReplaceAll(s.CommandFormat, validation.TargetPlaceholder, target)
}

// CreateServerTemplateInput contains the parameters for creating a server template.
type CreateServerTemplateInput struct {
	ServerName    string
	CommandFormat string
}
