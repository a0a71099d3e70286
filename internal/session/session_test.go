package session

import (
	"context"
	"testing"

	"github.com/specialistvlad/hclspec/internal/declare"
	"github.com/stretchr/testify/require"
)

func TestSession_CloseClearsSharedContexts(t *testing.T) {
	ctx := context.Background()
	s := New(ctx)
	require.NoError(t, s.Shared().Register("X", &declare.Declaration{Name: "X"}))
	require.Equal(t, 1, s.Shared().Len())

	require.NoError(t, s.Close(ctx))
	require.True(t, s.Closed())
	require.Zero(t, s.Shared().Len())

	// Closing twice is harmless.
	require.NoError(t, s.Close(ctx))
}

func TestSession_IsolatedRegistries(t *testing.T) {
	ctx := context.Background()
	a, b := New(ctx), New(ctx)
	require.NoError(t, a.Shared().Register("X", &declare.Declaration{Name: "X"}))

	_, ok := b.Shared().Lookup("X")
	require.False(t, ok)
}
