package middleware

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsIPBlockedFailsOpenWithoutRedis(t *testing.T) {
	blocked, err := IsIPBlocked("203.0.113.9")
	assert.NoError(t, err)
	assert.False(t, blocked)
}
