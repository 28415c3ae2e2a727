package usecase

import (
	"context"
	"fmt"
	"time"

	accessDomain "github.com/keypanel/keypanel/internal/access/domain"
	accessService "github.com/keypanel/keypanel/internal/access/service"
	"github.com/keypanel/keypanel/internal/errors"
)

// DefaultAuthUseCase implements AuthUseCase backed by a KeyRepository.
type DefaultAuthUseCase struct {
	keyRepository KeyRepository
	secretService accessService.SecretService
}

// Authenticate verifies the username/secret pair against the key store.
func (d *DefaultAuthUseCase) Authenticate(ctx context.Context, username, secret string) (*accessDomain.Key, error) {
	key, err := d.keyRepository.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, accessDomain.ErrKeyNotFound) {
			return nil, accessDomain.ErrInvalidKey
		}
		return nil, fmt.Errorf("DefaultAuthUseCase.Authenticate: %w", err)
	}

	if !d.secretService.Compare(secret, key.Value) {
		return nil, accessDomain.ErrInvalidKey
	}

	if key.Expired(time.Now().UTC()) {
		return nil, accessDomain.ErrKeyExpired
	}

	return key, nil
}

// NewDefaultAuthUseCase creates a new DefaultAuthUseCase.
func NewDefaultAuthUseCase(keyRepository KeyRepository, secretService accessService.SecretService) *DefaultAuthUseCase {
	return &DefaultAuthUseCase{keyRepository: keyRepository, secretService: secretService}
}
