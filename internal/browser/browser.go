// Package browser holds the state of one directory listing: its entries, the
// cursor, the scroll position and the last error. Every filesystem mutation goes
// through a Browser and ends with a reload, so the listing never drifts from disk.
package browser

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/sahilm/fuzzy"

	"github.com/LFroesch/fx/internal/logger"
)

const parentName = ".."

var (
	ErrNotFound        = errors.New("path does not exist")
	ErrNotADirectory   = errors.New("not a directory")
	ErrUnreadable      = errors.New("cannot read directory")
	ErrInvalidName     = errors.New("invalid name")
	ErrAlreadyExists   = errors.New("already exists")
	ErrIndexOutOfRange = errors.New("index is out of range")
	ErrEntryVanished   = errors.New("file or folder no longer exists")
	ErrParentEntry     = errors.New("the parent entry cannot be modified")
	ErrNothingToPaste  = errors.New("at least one file is required to paste")
	ErrPasteIntoSelf   = errors.New("cannot paste a directory into itself")
)

// Entry is one row of a listing.
type Entry struct {
	Name         string
	Path         string
	IsDir        bool
	IsSymlink    bool
	IsExecutable bool
	IsHidden     bool
	Size         int64
	ModTime      time.Time
}

// IsParent reports whether e is the synthetic ".." row.
func (e Entry) IsParent() bool {
	return e.Name == parentName
}

// Browser is not safe for concurrent use.
type Browser struct {
	currentPath string
	entries     []Entry
	selected    int
	scroll      int
	showHidden  bool
	sortMode    SortMode
	err         error
}

// New loads path, falling back to the working directory when path cannot be
// listed. The original failure stays visible through ErrorMessage.
func New(path string, showHidden bool) *Browser {
	b := &Browser{showHidden: showHidden, sortMode: SortType}
	if b.LoadDirectory(path) {
		return b
	}

	firstErr := b.err
	logger.Warn("Cannot open %s: %v, falling back to working directory", path, firstErr)
	if cwd, err := os.Getwd(); err == nil && b.LoadDirectory(cwd) {
		b.err = firstErr
	}
	return b
}

// LoadDirectory replaces the listing with the contents of path. On failure the
// previous listing is kept and the error is recorded.
func (b *Browser) LoadDirectory(path string) bool {
	b.err = nil
	if err := b.load(path); err != nil {
		return b.fail(err)
	}
	return true
}

// Refresh reloads the current directory.
func (b *Browser) Refresh() bool {
	return b.LoadDirectory(b.currentPath)
}

func (b *Browser) load(path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrUnreadable, path, err)
	}

	info, err := os.Stat(abs)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return fmt.Errorf("%w: %w", ErrUnreadable, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%w: %s", ErrNotADirectory, path)
	}

	canonical, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return fmt.Errorf("%w: cannot resolve path: %w", ErrUnreadable, err)
	}

	dirents, err := os.ReadDir(canonical)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrUnreadable, err)
	}

	entries := make([]Entry, 0, len(dirents)+1)
	if parent := filepath.Dir(canonical); parent != canonical {
		entries = append(entries, Entry{Name: parentName, Path: parent, IsDir: true})
	}

	for _, d := range dirents {
		name := d.Name()
		if !b.showHidden && strings.HasPrefix(name, ".") {
			continue
		}
		entry, err := readEntry(canonical, name)
		if err != nil {
			logger.Warn("Skipping entry %s: %v", filepath.Join(canonical, name), err)
			continue
		}
		entries = append(entries, entry)
	}

	sortEntries(entries, b.sortMode)

	b.currentPath = canonical
	b.entries = entries
	b.selected = 0
	b.scroll = 0
	return nil
}

// lstat is swapped in tests to make single entries unreadable.
var lstat = os.Lstat

func readEntry(dir, name string) (Entry, error) {
	path := filepath.Join(dir, name)
	linfo, err := lstat(path)
	if err != nil {
		return Entry{}, err
	}

	entry := Entry{
		Name:      name,
		Path:      path,
		IsHidden:  strings.HasPrefix(name, "."),
		IsSymlink: linfo.Mode()&fs.ModeSymlink != 0,
	}

	info := linfo
	if entry.IsSymlink {
		// dangling links keep the link's own metadata
		if target, err := os.Stat(path); err == nil {
			info = target
		}
	}

	entry.IsDir = info.IsDir()
	entry.ModTime = info.ModTime()
	if !entry.IsDir {
		entry.Size = info.Size()
		entry.IsExecutable = isExecutable(name, info.Mode())
	}
	return entry, nil
}

func isExecutable(name string, mode fs.FileMode) bool {
	if runtime.GOOS == "windows" {
		switch strings.ToLower(filepath.Ext(name)) {
		case ".exe", ".bat", ".cmd", ".com":
			return true
		}
		return false
	}
	return mode&0111 != 0
}

// NavigateUp loads the parent directory. It returns false at the filesystem root.
func (b *Browser) NavigateUp() bool {
	parent := filepath.Dir(b.currentPath)
	if parent == b.currentPath {
		return false
	}
	return b.LoadDirectory(parent)
}

// NavigateInto loads the directory at index.
func (b *Browser) NavigateInto(index int) bool {
	if index < 0 || index >= len(b.entries) || !b.entries[index].IsDir {
		return false
	}
	target := b.entries[index].Path
	return b.LoadDirectory(target)
}

// ToggleHidden flips the hidden-file filter and reloads.
func (b *Browser) ToggleHidden() bool {
	b.showHidden = !b.showHidden
	if !b.Refresh() {
		b.showHidden = !b.showHidden
		return false
	}
	return true
}

// CycleSortMode advances the sort ring and re-sorts in place. The cursor keeps
// its index, not its file.
func (b *Browser) CycleSortMode() SortMode {
	b.sortMode = b.sortMode.Next()
	sortEntries(b.entries, b.sortMode)
	return b.sortMode
}

// SetSortMode re-sorts the listing with mode.
func (b *Browser) SetSortMode(mode SortMode) {
	b.sortMode = mode
	sortEntries(b.entries, b.sortMode)
}

func (b *Browser) fail(err error) bool {
	b.err = err
	return false
}

// HasError reports whether the last operation failed.
func (b *Browser) HasError() bool {
	return b.err != nil
}

// ErrorMessage returns the last operation's error text, or "".
func (b *Browser) ErrorMessage() string {
	if b.err == nil {
		return ""
	}
	return b.err.Error()
}

// ClearError drops the recorded error.
func (b *Browser) ClearError() {
	b.err = nil
}

// Entries returns the current listing. Callers must not modify it, and it is
// invalidated by the next reload.
func (b *Browser) Entries() []Entry {
	return b.entries
}

// Entry returns a copy of the entry at index.
func (b *Browser) Entry(index int) (Entry, bool) {
	if index < 0 || index >= len(b.entries) {
		return Entry{}, false
	}
	return b.entries[index], true
}

func (b *Browser) CurrentPath() string { return b.currentPath }
func (b *Browser) SelectedIndex() int { return b.selected }
func (b *Browser) ScrollOffset() int { return b.scroll }
func (b *Browser) ShowHidden() bool { return b.showHidden }
func (b *Browser) SortMode() SortMode { return b.sortMode }
func (b *Browser) TotalEntries() int { return len(b.entries) }
func (b *Browser) SelectedEntry() (Entry, bool) { return b.Entry(b.selected) }

// SelectedPath returns the path of the selected entry.
func (b *Browser) SelectedPath() (string, bool) {
	e, ok := b.SelectedEntry()
	return e.Path, ok
}

func (b *Browser) IsSelectedDirectory() bool {
	e, ok := b.SelectedEntry()
	return ok && e.IsDir
}

// DirectoryCount counts directories, not including "..".
func (b *Browser) DirectoryCount() int {
	n := 0
	for _, e := range b.entries {
		if e.IsDir && !e.IsParent() {
			n++
		}
	}
	return n
}

func (b *Browser) FileCount() int {
	n := 0
	for _, e := range b.entries {
		if !e.IsDir {
			n++
		}
	}
	return n
}

// IndexOf returns the index of the entry called name, or -1.
func (b *Browser) IndexOf(name string) int {
	for i, e := range b.entries {
		if e.Name == name {
			return i
		}
	}
	return -1
}

// SelectFuzzy moves the cursor to the best fuzzy match for query.
func (b *Browser) SelectFuzzy(query string) bool {
	if query == "" {
		return false
	}
	names := make([]string, len(b.entries))
	for i, e := range b.entries {
		if !e.IsParent() {
			names[i] = e.Name
		}
	}
	matches := fuzzy.Find(query, names)
	if len(matches) == 0 {
		return false
	}
	b.selected = matches[0].Index
	return true
}
