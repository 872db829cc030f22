package browser

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/LFroesch/fx/internal/fileops"
	"github.com/LFroesch/fx/internal/logger"
)

// CreateFile creates an empty file in the current directory and selects it.
func (b *Browser) CreateFile(name string) bool {
	return b.create(name, false)
}

// CreateDirectory creates a directory in the current directory and selects it.
func (b *Browser) CreateDirectory(name string) bool {
	return b.create(name, true)
}

func (b *Browser) create(name string, dir bool) bool {
	b.err = nil
	kind := "file"
	if dir {
		kind = "directory"
	}

	if err := fileops.ValidateName(name); err != nil {
		return b.fail(fmt.Errorf("%w: %w", ErrInvalidName, err))
	}
	if fileops.Exists(filepath.Join(b.currentPath, name)) {
		return b.fail(fmt.Errorf("%s %q %w", kind, name, ErrAlreadyExists))
	}

	var err error
	if dir {
		err = fileops.CreateDir(b.currentPath, name)
	} else {
		err = fileops.CreateFile(b.currentPath, name)
	}
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return b.fail(fmt.Errorf("%s %q %w", kind, name, ErrAlreadyExists))
		}
		return b.fail(fmt.Errorf("failed to create %s: %w", kind, err))
	}

	return b.reloadSelecting(name)
}

// RenameEntry renames the entry at index to newName and selects it.
func (b *Browser) RenameEntry(index int, newName string) bool {
	b.err = nil
	if err := fileops.ValidateName(newName); err != nil {
		return b.fail(fmt.Errorf("%w: %w", ErrInvalidName, err))
	}
	entry, err := b.mutableEntry(index)
	if err != nil {
		return b.fail(err)
	}

	if err := fileops.Rename(entry.Path, newName); err != nil {
		if errors.Is(err, fs.ErrExist) {
			return b.fail(fmt.Errorf("%q %w", newName, ErrAlreadyExists))
		}
		return b.fail(fmt.Errorf("failed to rename %s: %w", entry.Name, err))
	}

	return b.reloadSelecting(newName)
}

// RemoveEntry deletes the entry at index, recursively for directories. The
// cursor keeps its index when it still fits the new listing.
func (b *Browser) RemoveEntry(index int) bool {
	b.err = nil
	entry, err := b.mutableEntry(index)
	if err != nil {
		return b.fail(err)
	}
	if !fileops.Exists(entry.Path) {
		return b.fail(fmt.Errorf("%s: %w", entry.Name, ErrEntryVanished))
	}

	// a symlink is removed as a link even when it points at a directory
	if err := fileops.Remove(entry.Path, entry.IsDir && !entry.IsSymlink); err != nil {
		return b.fail(fmt.Errorf("failed to remove %s: %w", entry.Name, err))
	}

	previous := b.selected
	if err := b.load(b.currentPath); err != nil {
		return b.fail(err)
	}
	b.SelectIndex(previous)
	return true
}

// ExecutePaste copies each source into the current directory. Every source is
// attempted; the first failure is reported and the listing is reloaded once.
//
// Cut is accepted but pasted as a copy: sources are never deleted.
func (b *Browser) ExecutePaste(sources []string, isCut bool) bool {
	b.err = nil
	if len(sources) == 0 {
		return b.fail(ErrNothingToPaste)
	}
	if isCut {
		logger.Warn("Cut of %d item(s) pasted as copy, sources kept", len(sources))
	}

	var firstErr error
	firstPasted := ""
	for _, src := range sources {
		name, err := b.pasteOne(src)
		if err != nil {
			logger.Warn("Paste of %s failed: %v", src, err)
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		if firstPasted == "" {
			firstPasted = name
		}
	}

	if err := b.load(b.currentPath); err != nil {
		return b.fail(err)
	}
	if firstPasted != "" {
		b.SelectByName(firstPasted)
	}
	if firstErr != nil {
		return b.fail(firstErr)
	}
	return true
}

func (b *Browser) pasteOne(src string) (string, error) {
	name := filepath.Base(src)
	info, err := os.Lstat(src)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("%w: %s", ErrNotFound, src)
		}
		return "", fmt.Errorf("cannot read %s: %w", src, err)
	}

	if info.IsDir() {
		if resolved, err := filepath.EvalSymlinks(src); err == nil && fileops.IsWithin(b.currentPath, resolved) {
			return "", fmt.Errorf("%w: %s", ErrPasteIntoSelf, name)
		}
	}

	dst := filepath.Join(b.currentPath, name)
	if fileops.Exists(dst) {
		return "", fmt.Errorf("%q %w", name, ErrAlreadyExists)
	}
	if err := fileops.CopyFileOrDir(src, dst); err != nil {
		return "", fmt.Errorf("failed to paste %s: %w", name, err)
	}
	return name, nil
}

// mutableEntry returns a copy of the entry at index, rejecting the ".." row.
func (b *Browser) mutableEntry(index int) (Entry, error) {
	entry, ok := b.Entry(index)
	if !ok {
		return Entry{}, fmt.Errorf("%w: %d", ErrIndexOutOfRange, index)
	}
	if entry.IsParent() {
		return Entry{}, ErrParentEntry
	}
	return entry, nil
}

func (b *Browser) reloadSelecting(name string) bool {
	if err := b.load(b.currentPath); err != nil {
		return b.fail(err)
	}
	b.SelectByName(name)
	return true
}
