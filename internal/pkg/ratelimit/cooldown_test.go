package ratelimit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCooldownTry(t *testing.T) {
	c := NewCooldown(time.Minute)

	wait, ok := c.Try("client-a")
	assert.True(t, ok)
	assert.Zero(t, wait)

	wait, ok = c.Try("client-a")
	assert.False(t, ok)
	assert.Greater(t, wait, time.Duration(0))
	assert.LessOrEqual(t, wait, time.Minute)

	// Other keys have their own window.
	_, ok = c.Try("client-b")
	assert.True(t, ok)
}

func TestCooldownExpires(t *testing.T) {
	c := NewCooldown(20 * time.Millisecond)

	_, ok := c.Try("client-a")
	assert.True(t, ok)

	time.Sleep(30 * time.Millisecond)

	_, ok = c.Try("client-a")
	assert.True(t, ok, "an expired window allows the next submission")
}

func TestCooldownReset(t *testing.T) {
	c := NewCooldown(time.Minute)

	_, ok := c.Try("client-a")
	assert.True(t, ok)

	c.Reset("client-a")

	_, ok = c.Try("client-a")
	assert.True(t, ok)
}
