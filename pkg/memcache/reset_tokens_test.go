package memcache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestResetTokensSingleUse(t *testing.T) {
	store := NewResetTokens()
	store.Set("token-1", "ana@test.dev", time.Minute)

	assert.Equal(t, "ana@test.dev", store.Consume("token-1"))
	assert.Equal(t, "", store.Consume("token-1"))
}

func TestResetTokensExpiry(t *testing.T) {
	store := NewResetTokens()
	store.Set("token-1", "ana@test.dev", -time.Second)

	assert.Equal(t, "", store.Consume("token-1"))
}

func TestResetTokensUnknown(t *testing.T) {
	store := NewResetTokens()
	assert.Equal(t, "", store.Consume("nope"))
}
