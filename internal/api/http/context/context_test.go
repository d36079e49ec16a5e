package context

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestManager_RequestID(t *testing.T) {
	m := NewManager()

	_, ok := m.GetRequestIDFromContext(context.Background())
	assert.False(t, ok)

	ctx := m.SetRequestIDToContext(context.Background(), "req-1")
	id, ok := m.GetRequestIDFromContext(ctx)
	assert.True(t, ok)
	assert.Equal(t, "req-1", id)

	ctx = m.SetRequestIDToContext(ctx, "")
	_, ok = m.GetRequestIDFromContext(ctx)
	assert.False(t, ok)
}
