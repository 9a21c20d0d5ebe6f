package lambda

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hackathon-demo-api/internal/config"
)

func testConfig() *config.Config {
	return &config.Config{
		Environment: "test",
		Port:        "8080",
		Defaults: config.DefaultsConfig{
			GuestName:     "Gast",
			NatureKeyword: "nature",
		},
	}
}

func TestConnectionManager_Lifecycle(t *testing.T) {
	cm := &ConnectionManager{}
	ctx := context.Background()

	assert.False(t, cm.IsHealthy(), "uninitialized manager must not be healthy")

	require.NoError(t, cm.Initialize(testConfig()))
	assert.True(t, cm.IsHealthy())

	first, err := cm.GetContainer(ctx)
	require.NoError(t, err)
	require.NotNil(t, first)
	assert.Equal(t, "test", first.Config.Environment)

	second, err := cm.GetContainer(ctx)
	require.NoError(t, err)
	assert.Same(t, first, second, "warm invocations must reuse the container")

	require.NoError(t, cm.Cleanup())
	assert.False(t, cm.IsHealthy())

	rebuilt, err := cm.GetContainer(ctx)
	require.NoError(t, err)
	require.NotNil(t, rebuilt)
	assert.NotSame(t, first, rebuilt)
	assert.NotNil(t, rebuilt.Services)
}

func TestConnectionManager_InitializeTwice(t *testing.T) {
	cm := &ConnectionManager{}

	require.NoError(t, cm.Initialize(testConfig()))
	other := testConfig()
	other.Environment = "other"
	require.NoError(t, cm.Initialize(other))

	container, err := cm.GetContainer(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "test", container.Config.Environment)
}

func TestConnectionManager_Stale(t *testing.T) {
	cm := &ConnectionManager{}
	require.NoError(t, cm.Initialize(testConfig()))

	cm.mu.Lock()
	cm.lastUsed = time.Now().Add(-2 * staleAfter)
	cm.mu.Unlock()
	assert.False(t, cm.IsHealthy())

	cm.UpdateLastUsed()
	assert.True(t, cm.IsHealthy())
}

func TestGetConnectionManager_Singleton(t *testing.T) {
	assert.Same(t, GetConnectionManager(), GetConnectionManager())
}
