package db

import (
	"context"
	"testing"
	"time"

	"code.cloudfoundry.org/clock/fakeclock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryRedisClient_EvictsExpiredEntries(t *testing.T) {
	// Setup
	clk := fakeclock.NewFakeClock(time.Date(2023, 12, 19, 9, 0, 0, 0, time.UTC))
	m := NewMemoryRedisClient(context.Background(), clk)

	require.NoError(t, m.Set("forecast_v1:sylhet:56", "a", time.Minute))
	require.NoError(t, m.Set("forecast_v1:dhaka:56", "b", time.Minute))
	require.NoError(t, m.Set("pinned", "c", 0))
	clk.Increment(2 * time.Minute)

	// Act
	_, err := m.Keys("forecast_v1:*")
	require.NoError(t, err)

	// Assert
	assert.Len(t, m.data, 1)
	assert.Contains(t, m.data, "pinned")
}

func TestMemoryRedisClient_SetSweepsExpiredEntries(t *testing.T) {
	clk := fakeclock.NewFakeClock(time.Date(2023, 12, 19, 9, 0, 0, 0, time.UTC))
	m := NewMemoryRedisClient(context.Background(), clk)

	for _, city := range []string{"sylhet", "dhaka", "chittagong"} {
		require.NoError(t, m.Set("forecast_v1:"+city+":56", "x", time.Minute))
	}
	clk.Increment(time.Minute)

	require.NoError(t, m.Set("forecast_v1:khulna:56", "y", time.Minute))

	assert.Len(t, m.data, 1)
	assert.Contains(t, m.data, "forecast_v1:khulna:56")
}

func TestGlobToRegexp_Invalid(t *testing.T) {
	_, err := globToRegexp("forecast_v1:[abc")
	assert.Error(t, err)
}
