package dto

import (
	"time"

	accessDomain "github.com/keypanel/keypanel/internal/access/domain"
)

// KeyResponse represents an access key in API responses. Value is empty when
// the requesting key is not permitted to view the target's secret.
type KeyResponse struct {
	ID        string     `json:"id"`
	Username  string     `json:"username"`
	Value     string     `json:"value,omitempty"`
	Role      string     `json:"role"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// MapKeyToResponse converts a domain key to an API response.
func MapKeyToResponse(key *accessDomain.Key) KeyResponse {
	return KeyResponse{
		ID:        key.ID.String(),
		Username:  key.Username,
		Value:     key.Value,
		Role:      string(key.Role),
		ExpiresAt: key.ExpiresAt,
		CreatedAt: key.CreatedAt,
		UpdatedAt: key.UpdatedAt,
	}
}

// ListKeysResponse represents a list of keys in API responses.
type ListKeysResponse struct {
	Data []KeyResponse `json:"data"`
}

// MapKeysToListResponse converts a slice of domain keys to a list API response.
func MapKeysToListResponse(keys []*accessDomain.Key) ListKeysResponse {
	keyResponses := make([]KeyResponse, 0, len(keys))
	for _, key := range keys {
		keyResponses = append(keyResponses, MapKeyToResponse(key))
	}
	return ListKeysResponse{
		Data: keyResponses,
	}
}

// LoginResponse contains the authenticated key's identity. The secret value
// is never echoed back.
type LoginResponse struct {
	ID        string     `json:"id"`
	Username  string     `json:"username"`
	Role      string     `json:"role"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
}

// MapKeyToLoginResponse converts an authenticated domain key to a login response.
func MapKeyToLoginResponse(key *accessDomain.Key) LoginResponse {
	return LoginResponse{
		ID:        key.ID.String(),
		Username:  key.Username,
		Role:      string(key.Role),
		ExpiresAt: key.ExpiresAt,
	}
}

// RevealValueResponse contains a disclosed secret value.
type RevealValueResponse struct {
	Value string `json:"value"`
}

// AuditLogResponse represents an audit log entry in API responses.
type AuditLogResponse struct {
	ID             string    `json:"id"`
	ActorUsername  string    `json:"actor_username"`
	TargetUsername string    `json:"target_username"`
	Action         string    `json:"action"`
	TargetRole     string    `json:"target_role"`
	CreatedAt      time.Time `json:"created_at"`
}

// MapAuditLogToResponse converts a domain audit log entry to an API response.
func MapAuditLogToResponse(entry *accessDomain.AuditLog) AuditLogResponse {
	return AuditLogResponse{
		ID:             entry.ID.String(),
		ActorUsername:  entry.ActorUsername,
		TargetUsername: entry.TargetUsername,
		Action:         string(entry.Action),
		TargetRole:     string(entry.TargetRole),
		CreatedAt:      entry.CreatedAt,
	}
}

// ListAuditLogsResponse represents a list of audit log entries in API responses.
type ListAuditLogsResponse struct {
	Data []AuditLogResponse `json:"data"`
}

// MapAuditLogsToListResponse converts a slice of domain audit log entries to a list API response.
func MapAuditLogsToListResponse(entries []*accessDomain.AuditLog) ListAuditLogsResponse {
	auditLogResponses := make([]AuditLogResponse, 0, len(entries))
	for _, entry := range entries {
		auditLogResponses = append(auditLogResponses, MapAuditLogToResponse(entry))
	}
	return ListAuditLogsResponse{
		Data: auditLogResponses,
	}
}
