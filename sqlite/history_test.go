package sqlite_test

import (
	"context"
	"testing"

	"github.com/fwojciec/helpview"
	"github.com/fwojciec/helpview/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHistoryService(t *testing.T) {
	t.Parallel()

	t.Run("loads empty history before first save", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewHistoryService(setupTestDB(t))

		h, err := svc.LoadHistory(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 0, h.Len())
		assert.Equal(t, -1, h.Position())
	})

	t.Run("round trips entries and position", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewHistoryService(setupTestDB(t))
		ctx := context.Background()

		h := helpview.NewHistory[helpview.Location]()
		h.NavigateTo("file:///m/a.html")
		h.NavigateTo("file:///m/b.html")
		h.NavigateTo("file:///m/c.html")
		h.Back()
		require.NoError(t, svc.SaveHistory(ctx, h))

		loaded, err := svc.LoadHistory(ctx)
		require.NoError(t, err)
		assert.Equal(t, h.Entries(), loaded.Entries())
		assert.Equal(t, 1, loaded.Position())
		assert.True(t, loaded.IsForwardActive())
	})

	t.Run("save replaces previous history", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewHistoryService(setupTestDB(t))
		ctx := context.Background()

		first := helpview.NewHistory[helpview.Location]()
		first.NavigateTo("file:///m/a.html")
		first.NavigateTo("file:///m/b.html")
		require.NoError(t, svc.SaveHistory(ctx, first))

		second := helpview.NewHistory[helpview.Location]()
		second.NavigateTo("file:///m/z.html")
		require.NoError(t, svc.SaveHistory(ctx, second))

		loaded, err := svc.LoadHistory(ctx)
		require.NoError(t, err)
		assert.Equal(t, []helpview.Location{"file:///m/z.html"}, loaded.Entries())
		assert.Equal(t, 0, loaded.Position())
	})

	t.Run("saves empty history", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewHistoryService(setupTestDB(t))
		ctx := context.Background()

		h := helpview.NewHistory[helpview.Location]()
		h.NavigateTo("file:///m/a.html")
		require.NoError(t, svc.SaveHistory(ctx, h))
		require.NoError(t, svc.SaveHistory(ctx, helpview.NewHistory[helpview.Location]()))

		loaded, err := svc.LoadHistory(ctx)
		require.NoError(t, err)
		assert.Equal(t, 0, loaded.Len())
	})
}
