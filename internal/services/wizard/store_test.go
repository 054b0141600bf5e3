package wizard

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hexadigitall/internal/services/pricing"
)

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	t.Run("missing session", func(t *testing.T) {
		_, err := store.Get(ctx, "nope")
		assert.ErrorIs(t, err, ErrSessionNotFound)
	})

	t.Run("save and load", func(t *testing.T) {
		session := &Session{ID: "s1", Step: StepPlatform, Selection: pricing.NewSelection()}
		require.NoError(t, store.Save(ctx, session))

		loaded, err := store.Get(ctx, "s1")
		require.NoError(t, err)
		assert.Equal(t, StepPlatform, loaded.Step)
	})

	t.Run("loads are copies", func(t *testing.T) {
		loaded, err := store.Get(ctx, "s1")
		require.NoError(t, err)
		loaded.Step = StepReview

		again, err := store.Get(ctx, "s1")
		require.NoError(t, err)
		assert.Equal(t, StepPlatform, again.Step)
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, store.Delete(ctx, "s1"))
		_, err := store.Get(ctx, "s1")
		assert.ErrorIs(t, err, ErrSessionNotFound)
	})
}
