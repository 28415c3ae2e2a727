package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestKey_Expired(t *testing.T) {
	now := time.Now().UTC()

	t.Run("NilExpirationNeverExpires", func(t *testing.T) {
		k := &Key{ExpiresAt: nil}
		assert.False(t, k.Expired(now))
	})

	t.Run("PastExpiration", func(t *testing.T) {
		past := now.Add(-time.Second)
		k := &Key{ExpiresAt: &past}
		assert.True(t, k.Expired(now))
	})

	t.Run("FutureExpiration", func(t *testing.T) {
		future := now.Add(time.Hour)
		k := &Key{ExpiresAt: &future}
		assert.False(t, k.Expired(now))
	})
}

func TestAuditAction_Valid(t *testing.T) {
	assert.True(t, AuditActionCreated.Valid())
	assert.True(t, AuditActionDeleted.Valid())
	assert.False(t, AuditAction("updated").Valid())
}
