package fileops

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// ErrUnsupportedType is returned when copying anything but a regular file,
// directory or symlink.
var ErrUnsupportedType = errors.New("unsupported file type")

// Exists reports whether path exists, without following a final symlink.
func Exists(path string) bool {
	_, err := os.Lstat(path)
	return err == nil
}

// ValidateName rejects names that are empty or contain a separator or NUL.
func ValidateName(name string) error {
	if name == "" {
		return errors.New("name cannot be empty")
	}
	if strings.ContainsAny(name, "/\\\x00") {
		return errors.New("invalid characters in name")
	}
	return nil
}

// Rename renames a file or directory within its directory
func Rename(oldPath, newName string) error {
	newPath := filepath.Join(filepath.Dir(oldPath), newName)
	if Exists(newPath) {
		return fs.ErrExist
	}
	return os.Rename(oldPath, newPath)
}

// CreateFile creates a new empty file, failing if anything already exists at the path.
func CreateFile(dir, name string) error {
	path := filepath.Join(dir, name)
	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		return err
	}
	return file.Close()
}

// CreateDir creates a new directory
func CreateDir(dir, name string) error {
	path := filepath.Join(dir, name)
	return os.Mkdir(path, 0755)
}

// Remove deletes a file, or a directory and everything below it.
func Remove(path string, isDir bool) error {
	if isDir {
		return os.RemoveAll(path)
	}
	return os.Remove(path)
}

// CopyFileOrDir copies src to dst. dst must not exist yet.
func CopyFileOrDir(src, dst string) error {
	srcInfo, err := os.Lstat(src)
	if err != nil {
		return err
	}
	if Exists(dst) {
		return fmt.Errorf("%s: %w", dst, fs.ErrExist)
	}

	if srcInfo.IsDir() && IsWithin(dst, src) {
		return fmt.Errorf("cannot copy %s into itself", src)
	}
	return copyEntry(src, dst, srcInfo)
}

// copyEntry copies one filesystem object by kind. Pipes, sockets and devices
// are refused: reading them can block or never end.
func copyEntry(src, dst string, info fs.FileInfo) error {
	mode := info.Mode()
	switch {
	case mode&os.ModeSymlink != 0:
		return copySymlink(src, dst)
	case mode.IsDir():
		return copyDir(src, dst, mode.Perm())
	case mode.IsRegular():
		return copyFile(src, dst, mode.Perm())
	}
	return fmt.Errorf("%s: %w", src, ErrUnsupportedType)
}

// IsWithin reports whether path equals dir or lies below it.
func IsWithin(path, dir string) bool {
	rel, err := filepath.Rel(dir, path)
	if err != nil {
		return false
	}
	return rel == "." || (rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)))
}

func copyFile(src, dst string, perm fs.FileMode) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_EXCL, perm)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

func copySymlink(src, dst string) error {
	target, err := os.Readlink(src)
	if err != nil {
		return err
	}
	return os.Symlink(target, dst)
}

func copyDir(src, dst string, perm fs.FileMode) error {
	if err := os.Mkdir(dst, perm|0700); err != nil {
		return err
	}

	entries, err := os.ReadDir(src)
	if err != nil {
		return err
	}

	for _, entry := range entries {
		srcPath := filepath.Join(src, entry.Name())
		dstPath := filepath.Join(dst, entry.Name())

		info, err := os.Lstat(srcPath)
		if err != nil {
			return err
		}
		if err := copyEntry(srcPath, dstPath, info); err != nil {
			return err
		}
	}

	return nil
}
