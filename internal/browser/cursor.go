package browser

// Cursor movement never reloads. None of these adjust the scroll offset; call
// UpdateScroll afterwards when the result is going to be drawn.

func (b *Browser) SelectNext() {
	if b.selected < len(b.entries)-1 {
		b.selected++
	}
}

func (b *Browser) SelectPrevious() {
	if b.selected > 0 {
		b.selected--
	}
}

func (b *Browser) SelectFirst() {
	b.selected = 0
}

func (b *Browser) SelectLast() {
	b.selected = max(len(b.entries)-1, 0)
}

// PageDown moves the cursor n rows down, stopping at the last entry.
func (b *Browser) PageDown(n int) {
	b.SelectIndex(b.selected + n)
}

// PageUp moves the cursor n rows up, stopping at the first entry.
func (b *Browser) PageUp(n int) {
	b.SelectIndex(b.selected - n)
}

// SelectIndex moves the cursor to index, clamped to the listing.
func (b *Browser) SelectIndex(index int) {
	b.selected = max(min(index, len(b.entries)-1), 0)
}

// SelectByName moves the cursor to the entry called name.
func (b *Browser) SelectByName(name string) bool {
	i := b.IndexOf(name)
	if i < 0 {
		return false
	}
	b.selected = i
	return true
}

// UpdateScroll shifts the scroll offset as little as possible so the cursor is
// inside a viewport of the given height.
func (b *Browser) UpdateScroll(height int) {
	if len(b.entries) == 0 || height <= 0 {
		b.scroll = 0
		return
	}
	if b.selected < b.scroll {
		b.scroll = b.selected
	} else if b.selected >= b.scroll+height {
		b.scroll = b.selected - height + 1
	}
}
