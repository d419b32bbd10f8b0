package idempotent

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalIdempotencyService_Exists(t *testing.T) {
	t.Parallel()
	svc := NewLocalService(time.Minute)

	exists, err := svc.Exists(t.Context(), "evt-1:PUSH:U1")
	require.NoError(t, err)
	assert.False(t, exists)

	exists, err = svc.Exists(t.Context(), "evt-1:PUSH:U1")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = svc.Exists(t.Context(), "evt-1:EMAIL:U1")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestLocalIdempotencyService_Expired(t *testing.T) {
	t.Parallel()
	svc := NewLocalService(50 * time.Millisecond)

	exists, err := svc.Exists(t.Context(), "k")
	require.NoError(t, err)
	assert.False(t, exists)

	time.Sleep(100 * time.Millisecond)
	exists, err = svc.Exists(t.Context(), "k")
	require.NoError(t, err)
	assert.False(t, exists)
}
