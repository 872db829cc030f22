package browser

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func numbered(t *testing.T, n int) *Browser {
	t.Helper()
	dir := t.TempDir()
	for i := 0; i < n; i++ {
		require.NoError(t, os.WriteFile(filepath.Join(dir, fmt.Sprintf("f%02d", i)), nil, 0644))
	}
	return New(dir, false)
}

func TestSelectNextClamps(t *testing.T) {
	b := numbered(t, 5)
	total := b.TotalEntries()

	for i := 0; i < total+10; i++ {
		b.SelectNext()
	}
	assert.Equal(t, total-1, b.SelectedIndex())

	for i := 0; i < total+10; i++ {
		b.SelectPrevious()
	}
	assert.Equal(t, 0, b.SelectedIndex())
}

func TestSelectFirstLast(t *testing.T) {
	b := numbered(t, 5)
	b.SelectLast()
	assert.Equal(t, b.TotalEntries()-1, b.SelectedIndex())
	b.SelectFirst()
	assert.Equal(t, 0, b.SelectedIndex())
}

func TestPaging(t *testing.T) {
	b := numbered(t, 20)

	b.PageDown(8)
	assert.Equal(t, 8, b.SelectedIndex())
	b.PageDown(100)
	assert.Equal(t, b.TotalEntries()-1, b.SelectedIndex())
	b.PageUp(5)
	assert.Equal(t, b.TotalEntries()-6, b.SelectedIndex())
	b.PageUp(100)
	assert.Equal(t, 0, b.SelectedIndex())
}

func TestSelectIndexClamps(t *testing.T) {
	b := numbered(t, 3)
	b.SelectIndex(-4)
	assert.Equal(t, 0, b.SelectedIndex())
	b.SelectIndex(99)
	assert.Equal(t, b.TotalEntries()-1, b.SelectedIndex())
}

func TestUpdateScroll(t *testing.T) {
	b := numbered(t, 30)
	height := 10

	b.UpdateScroll(height)
	assert.Equal(t, 0, b.ScrollOffset())

	b.SelectIndex(12)
	b.UpdateScroll(height)
	assert.Equal(t, 3, b.ScrollOffset())

	// moving within the viewport leaves the offset alone
	b.SelectIndex(5)
	b.UpdateScroll(height)
	assert.Equal(t, 3, b.ScrollOffset())

	b.SelectIndex(1)
	b.UpdateScroll(height)
	assert.Equal(t, 1, b.ScrollOffset())

	for i := 0; i < 30; i++ {
		b.SelectIndex(i)
		b.UpdateScroll(height)
		assert.LessOrEqual(t, b.ScrollOffset(), b.SelectedIndex())
		assert.Less(t, b.SelectedIndex(), b.ScrollOffset()+height)
	}

	b.UpdateScroll(0)
	assert.Equal(t, 0, b.ScrollOffset())
}

func TestUpdateScrollEmptyListing(t *testing.T) {
	b := &Browser{scroll: 4}
	b.UpdateScroll(10)
	assert.Equal(t, 0, b.ScrollOffset())
	b.SelectLast()
	assert.Equal(t, 0, b.SelectedIndex())
}
