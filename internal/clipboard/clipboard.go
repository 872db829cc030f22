// Package clipboard keeps a list of files on the system clipboard as a
// text/uri-list, so paths survive between fx instances and other programs.
package clipboard

import (
	"errors"
	"fmt"
	"net/url"
	"path/filepath"
	"strings"

	"github.com/atotto/clipboard"
)

type Operation int

const (
	OpNone Operation = iota
	OpCopy
	OpCut
)

func (o Operation) String() string {
	switch o {
	case OpCopy:
		return "copy"
	case OpCut:
		return "cut"
	}
	return "none"
}

var ErrEmpty = errors.New("clipboard holds no files")

// backend is the system clipboard.
type backend interface {
	WriteAll(text string) error
	ReadAll() (string, error)
}

type systemBackend struct{}

func (systemBackend) WriteAll(text string) error { return clipboard.WriteAll(text) }
func (systemBackend) ReadAll() (string, error) { return clipboard.ReadAll() }

// Files pairs the system clipboard with the pending operation.
type Files struct {
	sys backend
	op  Operation
}

func New() *Files {
	return &Files{sys: systemBackend{}}
}

// Copy places paths on the clipboard for copying.
func (f *Files) Copy(paths []string) error {
	return f.set(paths, OpCopy)
}

// Cut places paths on the clipboard for moving.
func (f *Files) Cut(paths []string) error {
	return f.set(paths, OpCut)
}

func (f *Files) set(paths []string, op Operation) error {
	if len(paths) == 0 {
		return ErrEmpty
	}
	if err := f.sys.WriteAll(EncodeURIList(paths)); err != nil {
		return fmt.Errorf("write clipboard: %w", err)
	}
	f.op = op
	return nil
}

// Paths reads the clipboard back. It returns the operation recorded by the
// last Copy or Cut, or OpCopy when the files came from another program.
func (f *Files) Paths() ([]string, Operation, error) {
	text, err := f.sys.ReadAll()
	if err != nil {
		return nil, OpNone, fmt.Errorf("read clipboard: %w", err)
	}
	paths := DecodeURIList(text)
	if len(paths) == 0 {
		return nil, OpNone, ErrEmpty
	}
	op := f.op
	if op == OpNone {
		op = OpCopy
	}
	return paths, op, nil
}

// Clear forgets the pending operation, e.g. after a cut has been pasted.
func (f *Files) Clear() {
	f.op = OpNone
}

// EncodeURIList renders paths as file:// URIs, one per line.
func EncodeURIList(paths []string) string {
	var b strings.Builder
	for _, p := range paths {
		u := url.URL{Scheme: "file", Path: filepath.ToSlash(p)}
		b.WriteString(u.String())
		b.WriteString("\n")
	}
	return b.String()
}

// DecodeURIList accepts file:// URIs or absolute paths, one per line. Comment
// lines and anything else are skipped.
func DecodeURIList(text string) []string {
	var paths []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		switch {
		case line == "" || strings.HasPrefix(line, "#"):
			continue
		case strings.HasPrefix(line, "file://"):
			u, err := url.Parse(line)
			if err != nil || u.Path == "" {
				continue
			}
			paths = append(paths, filepath.FromSlash(u.Path))
		case filepath.IsAbs(line):
			paths = append(paths, line)
		}
	}
	return paths
}
