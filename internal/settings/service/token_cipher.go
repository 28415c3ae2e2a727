// Package service provides bot token encryption backed by gocloud.dev/secrets.
package service

import (
	"context"
	"fmt"

	"gocloud.dev/secrets"

	// Register all keeper provider drivers
	_ "gocloud.dev/secrets/awskms"
	_ "gocloud.dev/secrets/azurekeyvault"
	_ "gocloud.dev/secrets/gcpkms"
	_ "gocloud.dev/secrets/hashivault"
	_ "gocloud.dev/secrets/localsecrets"
)

// TokenCipher encrypts and decrypts the bot token before it reaches storage.
type TokenCipher interface {
	// Encrypt converts a plaintext token into ciphertext for storage.
	Encrypt(ctx context.Context, plaintext string) ([]byte, error)

	// Decrypt converts stored ciphertext back into the plaintext token.
	Decrypt(ctx context.Context, ciphertext []byte) (string, error)

	// Close releases any resources held by the cipher.
	Close() error
}

// keeperTokenCipher implements TokenCipher using a gocloud.dev secrets keeper.
type keeperTokenCipher struct {
	keeper *secrets.Keeper
}

// NewKeeperTokenCipher opens a keeper for the configured provider using the keyURI.
// Supports: gcpkms://, awskms://, azurekeyvault://, hashivault://, base64key://
func NewKeeperTokenCipher(ctx context.Context, keyURI string) (TokenCipher, error) {
	keeper, err := secrets.OpenKeeper(ctx, keyURI)
	if err != nil {
		return nil, fmt.Errorf("failed to open keeper: %w", err)
	}
	return &keeperTokenCipher{keeper: keeper}, nil
}

func (c *keeperTokenCipher) Encrypt(ctx context.Context, plaintext string) ([]byte, error) {
	ciphertext, err := c.keeper.Encrypt(ctx, []byte(plaintext))
	if err != nil {
		return nil, fmt.Errorf("failed to encrypt token: %w", err)
	}
	return ciphertext, nil
}

func (c *keeperTokenCipher) Decrypt(ctx context.Context, ciphertext []byte) (string, error) {
	plaintext, err := c.keeper.Decrypt(ctx, ciphertext)
	if err != nil {
		return "", fmt.Errorf("failed to decrypt token: %w", err)
	}
	return string(plaintext), nil
}

func (c *keeperTokenCipher) Close() error {
	return c.keeper.Close()
}

// plaintextTokenCipher implements TokenCipher without encryption. Used when no
// keeper key URI is configured.
type plaintextTokenCipher struct{}

// NewPlaintextTokenCipher creates a cipher that stores the token as-is.
func NewPlaintextTokenCipher() TokenCipher {
	return &plaintextTokenCipher{}
}

func (c *plaintextTokenCipher) Encrypt(_ context.Context, plaintext string) ([]byte, error) {
	return []byte(plaintext), nil
}

func (c *plaintextTokenCipher) Decrypt(_ context.Context, ciphertext []byte) (string, error) {
	return string(ciphertext), nil
}

func (c *plaintextTokenCipher) Close() error {
	return nil
}
