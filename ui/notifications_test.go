package ui

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotificationsLatest(t *testing.T) {
	n := NewNotifications()

	_, ok := n.Latest()
	assert.False(t, ok)

	n.Success("Switched to region: us-west-2")
	n.Error("Failed to switch profile: production")

	latest, ok := n.Latest()
	require.True(t, ok)
	assert.Equal(t, "Failed to switch profile: production", latest.Message)
	assert.Equal(t, LevelError, latest.Level)
	assert.False(t, latest.Timestamp.IsZero())
}

func TestNotificationsBounded(t *testing.T) {
	n := NewNotifications()
	for i := 0; i < 9; i++ {
		n.Info(fmt.Sprintf("message %d", i))
	}

	all := n.All()
	require.Len(t, all, maxNotifications)
	assert.Equal(t, "message 4", all[0].Message)
	assert.Equal(t, "message 8", all[len(all)-1].Message)
}

func TestNotificationsClear(t *testing.T) {
	n := NewNotifications()
	n.Warning("low disk")
	n.Clear()

	assert.Empty(t, n.All())
	_, ok := n.Latest()
	assert.False(t, ok)
}

func TestNotificationsExpire(t *testing.T) {
	n := NewNotifications()
	n.Info("old news")

	// Nothing is older than a cutoff in the past.
	n.ExpireBefore(time.Now().Add(-time.Minute))
	assert.Len(t, n.All(), 1)

	// Everything is older than a cutoff in the future.
	n.ExpireBefore(time.Now().Add(time.Minute))
	assert.Empty(t, n.All())
}

func TestNotificationsRender(t *testing.T) {
	n := NewNotifications()
	assert.Empty(t, n.Render())

	n.Success("Switched to profile: production")
	out := n.Render()
	assert.Contains(t, out, "✓")
	assert.Contains(t, out, "Switched to profile: production")

	n.Error("boom")
	out = n.Render()
	assert.Contains(t, out, "✗")
	assert.Contains(t, out, "boom")
}
