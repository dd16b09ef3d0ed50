package browse_test

import (
	"context"
	"testing"

	"github.com/fwojciec/helpview"
	"github.com/fwojciec/helpview/browse"
	"github.com/fwojciec/helpview/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupBrowser(t *testing.T, renderer helpview.Renderer) *browse.Browser {
	t.Helper()

	lib := browse.NewLibrary()
	lib.RegisterOpener("file", memOpener(map[helpview.Location]string{
		"file:///m/home.html":  "<h1>Home</h1>",
		"file:///m/intro.html": "<h1>Intro</h1>",
		"file:///m/setup.html": "<h1>Setup</h1>",
	}))
	require.NoError(t, lib.AddHelpset(context.Background(), &helpview.Helpset{
		Title:  "Manual",
		HomeID: "home",
		Mappings: []helpview.DocumentMapping{
			{Target: "broken", URL: "gone.html"},
		},
		TOC: []*helpview.TOCItem{
			{Label: "Intro", Target: "intro"},
			{Label: "Setup", Target: "setup"},
		},
	}, mustParseURL(t, "file:///m/")))

	return browse.NewBrowser(lib, renderer)
}

func TestBrowser_Navigation(t *testing.T) {
	t.Parallel()

	t.Run("back and forward do not record entries", func(t *testing.T) {
		t.Parallel()

		b := setupBrowser(t, nil)
		ctx := context.Background()

		_, err := b.Home(ctx)
		require.NoError(t, err)
		_, err = b.DisplayPageForTarget(ctx, "intro")
		require.NoError(t, err)
		_, err = b.DisplayPageForTarget(ctx, "setup")
		require.NoError(t, err)

		page, err := b.Back(ctx)
		require.NoError(t, err)
		require.NotNil(t, page)
		assert.Equal(t, helpview.Location("file:///m/intro.html"), page.Location)
		assert.Equal(t, "<h1>Intro</h1>", page.Content)

		page, err = b.Forward(ctx)
		require.NoError(t, err)
		require.NotNil(t, page)
		assert.Equal(t, helpview.Location("file:///m/setup.html"), page.Location)

		assert.Equal(t, 3, b.History.Len())
		assert.False(t, b.History.IsForwardActive())
	})

	t.Run("navigating after back truncates forward entries", func(t *testing.T) {
		t.Parallel()

		b := setupBrowser(t, nil)
		ctx := context.Background()

		_, _ = b.DisplayPageForTarget(ctx, "home")
		_, _ = b.DisplayPageForTarget(ctx, "intro")
		_, _ = b.Back(ctx)
		_, err := b.DisplayPageForTarget(ctx, "setup")
		require.NoError(t, err)

		assert.Equal(t, []helpview.Location{"file:///m/home.html", "file:///m/setup.html"}, b.History.Entries())
		target, ok := b.CurrentTarget()
		require.True(t, ok)
		assert.Equal(t, "setup", target)
	})

	t.Run("back at start returns nil page", func(t *testing.T) {
		t.Parallel()

		b := setupBrowser(t, nil)

		page, err := b.Back(context.Background())
		require.NoError(t, err)
		assert.Nil(t, page)

		page, err = b.Current(context.Background())
		require.NoError(t, err)
		assert.Nil(t, page)
	})

	t.Run("unknown target is not recorded", func(t *testing.T) {
		t.Parallel()

		b := setupBrowser(t, nil)

		_, err := b.DisplayPageForTarget(context.Background(), "nope")
		require.Error(t, err)
		assert.Equal(t, helpview.ENOTFOUND, helpview.ErrorCode(err))
		assert.Equal(t, 0, b.History.Len())
	})
}

func TestBrowser_ErrorPage(t *testing.T) {
	t.Parallel()

	b := setupBrowser(t, nil)

	page, err := b.DisplayPageForTarget(context.Background(), "broken")
	require.NoError(t, err)
	assert.Equal(t, "Error loading page", page.Title)
	assert.Contains(t, page.Content, "gone.html")
	assert.Equal(t, 1, b.History.Len(), "failed loads still occupy a history slot")
}

func TestBrowser_Renderer(t *testing.T) {
	t.Parallel()

	var gotHTML string
	renderer := &mock.Renderer{
		RenderFn: func(_ context.Context, loc helpview.Location, html string) (*helpview.Page, error) {
			gotHTML = html
			return &helpview.Page{Location: loc, Title: "Rendered"}, nil
		},
	}
	b := setupBrowser(t, renderer)

	page, err := b.Follow(context.Background(), "file:///m/intro.html")
	require.NoError(t, err)
	assert.Equal(t, "Rendered", page.Title)
	assert.Equal(t, "<h1>Intro</h1>", gotHTML)
}

func TestBrowser_RenderFailure(t *testing.T) {
	t.Parallel()

	renderer := &mock.Renderer{
		RenderFn: func(_ context.Context, loc helpview.Location, html string) (*helpview.Page, error) {
			if loc == "file:///m/setup.html" {
				return nil, helpview.Errorf(helpview.ECONTENT, "converting page")
			}
			return &helpview.Page{Location: loc, Title: "Rendered"}, nil
		},
	}
	b := setupBrowser(t, renderer)
	ctx := context.Background()

	_, err := b.DisplayPageForTarget(ctx, "intro")
	require.NoError(t, err)

	page, err := b.DisplayPageForTarget(ctx, "setup")
	require.NoError(t, err)
	require.NotNil(t, page)
	assert.Equal(t, "Error loading page", page.Title)
	assert.Equal(t, helpview.Location("file:///m/setup.html"), page.Location)
	assert.Contains(t, page.Content, "converting page")
	assert.Equal(t, 2, b.History.Len())

	page, err = b.Back(ctx)
	require.NoError(t, err)
	require.NotNil(t, page)
	assert.Equal(t, helpview.Location("file:///m/intro.html"), page.Location)
	assert.Equal(t, "Rendered", page.Title)
}

func TestBrowser_HomeWithoutHelpset(t *testing.T) {
	t.Parallel()

	b := browse.NewBrowser(browse.NewLibrary(), nil)

	_, err := b.Home(context.Background())
	require.Error(t, err)
	assert.Equal(t, helpview.ENOTFOUND, helpview.ErrorCode(err))
}
