package helpview_test

import (
	"testing"

	"github.com/fwojciec/helpview"
	"github.com/stretchr/testify/assert"
)

func TestResultSet(t *testing.T) {
	t.Parallel()

	t.Run("keeps links sorted by label", func(t *testing.T) {
		t.Parallel()

		var set helpview.ResultSet
		set.Add(helpview.LinkInfo{Label: "Printing", Target: "print"})
		set.Add(helpview.LinkInfo{Label: "Installation", Target: "install"})
		set.Add(helpview.LinkInfo{Label: "Menus", Target: "menus"})

		assert.Equal(t, []helpview.LinkInfo{
			{Label: "Installation", Target: "install"},
			{Label: "Menus", Target: "menus"},
			{Label: "Printing", Target: "print"},
		}, set.Links())
	})

	t.Run("first target wins for duplicate labels", func(t *testing.T) {
		t.Parallel()

		var set helpview.ResultSet
		assert.True(t, set.Add(helpview.LinkInfo{Label: "Foo", Target: "t1"}))
		assert.False(t, set.Add(helpview.LinkInfo{Label: "Foo", Target: "t2"}))

		assert.Equal(t, 1, set.Len())
		assert.Equal(t, []helpview.LinkInfo{{Label: "Foo", Target: "t1"}}, set.Links())
	})

	t.Run("ordering is case sensitive", func(t *testing.T) {
		t.Parallel()

		var set helpview.ResultSet
		set.Add(helpview.LinkInfo{Label: "apple"})
		set.Add(helpview.LinkInfo{Label: "Banana"})

		links := set.Links()
		assert.Equal(t, "Banana", links[0].Label)
		assert.Equal(t, "apple", links[1].Label)
	})

	t.Run("links returns a copy", func(t *testing.T) {
		t.Parallel()

		var set helpview.ResultSet
		set.Add(helpview.LinkInfo{Label: "A"})
		links := set.Links()
		links[0].Label = "changed"

		assert.Equal(t, "A", set.Links()[0].Label)
	})
}
