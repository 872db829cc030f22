package browser

import "sort"

type SortMode int

const (
	SortName SortMode = iota
	SortSize
	SortDate
	SortType
)

func (s SortMode) String() string {
	switch s {
	case SortName:
		return "name"
	case SortSize:
		return "size"
	case SortDate:
		return "date"
	case SortType:
		return "type"
	}
	return "unknown"
}

// Next follows the ring type, name, size, date, type.
func (s SortMode) Next() SortMode {
	switch s {
	case SortType:
		return SortName
	case SortName:
		return SortSize
	case SortSize:
		return SortDate
	default:
		return SortType
	}
}

// ParseSortMode is the inverse of String.
func ParseSortMode(name string) (SortMode, bool) {
	for _, m := range []SortMode{SortName, SortSize, SortDate, SortType} {
		if m.String() == name {
			return m, true
		}
	}
	return SortType, false
}

// sortEntries orders entries by mode with ".." pinned first. Equal keys fall
// back to the name so the order never depends on the previous mode.
func sortEntries(entries []Entry, mode SortMode) {
	sort.SliceStable(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		if a.IsParent() != b.IsParent() {
			return a.IsParent()
		}

		switch mode {
		case SortSize:
			if a.IsDir != b.IsDir {
				return a.IsDir
			}
			if a.Size != b.Size {
				return a.Size > b.Size
			}
		case SortDate:
			if !a.ModTime.Equal(b.ModTime) {
				return a.ModTime.After(b.ModTime)
			}
		case SortType:
			if a.IsDir != b.IsDir {
				return a.IsDir
			}
		}
		return a.Name < b.Name
	})
}
