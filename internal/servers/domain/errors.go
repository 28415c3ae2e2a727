package domain

import (
	"github.com/keypanel/keypanel/internal/errors"
)

var (
	// ErrServerTemplateNotFound indicates a server template with the specified ID was not found.
	ErrServerTemplateNotFound = errors.Wrap(errors.ErrNotFound, "server template not found")

	// ErrServerNameTaken indicates another template already holds the server name.
	ErrServerNameTaken = errors.Wrap(errors.ErrConflict, "server name already in use")

	// ErrServerNameRequired indicates the server name field is required.
	ErrServerNameRequired = errors.Wrap(errors.ErrInvalidInput, "server name is required")

	// ErrCommandFormatInvalid indicates the command format is blank or lacks the target placeholder.
	ErrCommandFormatInvalid = errors.Wrap(errors.ErrInvalidInput, "command format must contain the target placeholder")
)
