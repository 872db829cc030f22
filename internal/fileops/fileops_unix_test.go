//go:build unix

package fileops

import (
	"errors"
	"os"
	"path/filepath"
	"syscall"
	"testing"
	"time"
)

func TestCopyRefusesFIFO(t *testing.T) {
	tempDir := t.TempDir()
	fifo := filepath.Join(tempDir, "pipe")
	if err := syscall.Mkfifo(fifo, 0644); err != nil {
		t.Skipf("mkfifo unavailable: %v", err)
	}

	done := make(chan error, 1)
	go func() { done <- CopyFileOrDir(fifo, filepath.Join(tempDir, "pipe-copy")) }()

	select {
	case err := <-done:
		if !errors.Is(err, ErrUnsupportedType) {
			t.Errorf("expected ErrUnsupportedType, got %v", err)
		}
	case <-time.After(3 * time.Second):
		t.Fatal("copying a FIFO blocked")
	}

	if Exists(filepath.Join(tempDir, "pipe-copy")) {
		t.Error("nothing should be created for a FIFO")
	}
}

func TestCopyDirRefusesNestedFIFO(t *testing.T) {
	tempDir := t.TempDir()
	src := filepath.Join(tempDir, "src")
	if err := os.Mkdir(src, 0755); err != nil {
		t.Fatal(err)
	}
	if err := syscall.Mkfifo(filepath.Join(src, "pipe"), 0644); err != nil {
		t.Skipf("mkfifo unavailable: %v", err)
	}

	done := make(chan error, 1)
	go func() { done <- CopyFileOrDir(src, filepath.Join(tempDir, "dst")) }()

	select {
	case err := <-done:
		if !errors.Is(err, ErrUnsupportedType) {
			t.Errorf("expected ErrUnsupportedType, got %v", err)
		}
	case <-time.After(3 * time.Second):
		t.Fatal("copying a directory holding a FIFO blocked")
	}
}

func TestCopyRefusesCharDevice(t *testing.T) {
	if _, err := os.Stat("/dev/zero"); err != nil {
		t.Skip("no /dev/zero")
	}
	err := CopyFileOrDir("/dev/zero", filepath.Join(t.TempDir(), "zero"))
	if !errors.Is(err, ErrUnsupportedType) {
		t.Errorf("expected ErrUnsupportedType, got %v", err)
	}
}
