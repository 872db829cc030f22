package fileops

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func TestCreateFile(t *testing.T) {
	tempDir := t.TempDir()

	if err := CreateFile(tempDir, "testfile.txt"); err != nil {
		t.Fatalf("CreateFile failed: %v", err)
	}

	filePath := filepath.Join(tempDir, "testfile.txt")
	if _, err := os.Stat(filePath); os.IsNotExist(err) {
		t.Error("File was not created")
	}

	// creating an existing file must not truncate it
	os.WriteFile(filePath, []byte("keep"), 0644)
	if err := CreateFile(tempDir, "testfile.txt"); !errors.Is(err, fs.ErrExist) {
		t.Errorf("Expected ErrExist when creating existing file, got %v", err)
	}
	if data, _ := os.ReadFile(filePath); string(data) != "keep" {
		t.Error("Existing file was truncated")
	}
}

func TestCreateDir(t *testing.T) {
	tempDir := t.TempDir()

	if err := CreateDir(tempDir, "testdir"); err != nil {
		t.Fatalf("CreateDir failed: %v", err)
	}

	info, err := os.Stat(filepath.Join(tempDir, "testdir"))
	if err != nil {
		t.Fatalf("Directory was not created: %v", err)
	}
	if !info.IsDir() {
		t.Error("Created path is not a directory")
	}

	if err := CreateDir(tempDir, "testdir"); err == nil {
		t.Error("Expected error when creating existing directory")
	}
}

func TestValidateName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"plain", "notes.txt", false},
		{"spaces", "my notes.txt", false},
		{"empty", "", true},
		{"slash", "a/b", true},
		{"backslash", `a\b`, true},
		{"nul", "a\x00b", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateName(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateName(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestRename(t *testing.T) {
	tempDir := t.TempDir()

	oldPath := filepath.Join(tempDir, "oldname.txt")
	os.WriteFile(oldPath, []byte("test content"), 0644)

	if err := Rename(oldPath, "newname.txt"); err != nil {
		t.Fatalf("Rename failed: %v", err)
	}

	newPath := filepath.Join(tempDir, "newname.txt")
	if _, err := os.Stat(newPath); os.IsNotExist(err) {
		t.Error("Renamed file does not exist")
	}
	if _, err := os.Stat(oldPath); !os.IsNotExist(err) {
		t.Error("Old file still exists after rename")
	}

	anotherFile := filepath.Join(tempDir, "another.txt")
	os.WriteFile(anotherFile, []byte("another"), 0644)
	if err := Rename(newPath, "another.txt"); !errors.Is(err, fs.ErrExist) {
		t.Errorf("Expected ErrExist when renaming onto existing file, got %v", err)
	}
	if data, _ := os.ReadFile(anotherFile); string(data) != "another" {
		t.Error("Rename overwrote the existing file")
	}
}

func TestRemove(t *testing.T) {
	tempDir := t.TempDir()

	file := filepath.Join(tempDir, "file.txt")
	os.WriteFile(file, []byte("x"), 0644)
	if err := Remove(file, false); err != nil {
		t.Fatalf("Remove file failed: %v", err)
	}
	if Exists(file) {
		t.Error("File still exists")
	}

	dir := filepath.Join(tempDir, "tree")
	os.MkdirAll(filepath.Join(dir, "a", "b"), 0755)
	os.WriteFile(filepath.Join(dir, "a", "b", "leaf.txt"), []byte("x"), 0644)
	if err := Remove(dir, true); err != nil {
		t.Fatalf("Remove dir failed: %v", err)
	}
	if Exists(dir) {
		t.Error("Directory still exists")
	}
}

func TestCopyFile(t *testing.T) {
	tempDir := t.TempDir()

	srcPath := filepath.Join(tempDir, "source.txt")
	content := []byte("test content")
	os.WriteFile(srcPath, content, 0600)

	dstPath := filepath.Join(tempDir, "dest.txt")
	if err := CopyFileOrDir(srcPath, dstPath); err != nil {
		t.Fatalf("CopyFileOrDir failed: %v", err)
	}

	dstContent, err := os.ReadFile(dstPath)
	if err != nil {
		t.Fatalf("Destination file was not created: %v", err)
	}
	if string(dstContent) != string(content) {
		t.Error("Copied file content doesn't match original")
	}

	if runtime.GOOS != "windows" {
		info, _ := os.Stat(dstPath)
		if info.Mode().Perm() != 0600 {
			t.Errorf("Permissions not preserved: %v", info.Mode().Perm())
		}
	}

	if err := CopyFileOrDir(srcPath, dstPath); !errors.Is(err, fs.ErrExist) {
		t.Errorf("Expected ErrExist when destination exists, got %v", err)
	}
}

func TestCopyDir(t *testing.T) {
	tempDir := t.TempDir()

	srcDir := filepath.Join(tempDir, "srcdir")
	os.Mkdir(srcDir, 0755)
	os.WriteFile(filepath.Join(srcDir, "file1.txt"), []byte("content1"), 0644)

	subdir := filepath.Join(srcDir, "subdir")
	os.Mkdir(subdir, 0755)
	os.WriteFile(filepath.Join(subdir, "file2.txt"), []byte("content2"), 0644)

	dstDir := filepath.Join(tempDir, "dstdir")
	if err := CopyFileOrDir(srcDir, dstDir); err != nil {
		t.Fatalf("CopyFileOrDir failed: %v", err)
	}

	if _, err := os.Stat(filepath.Join(dstDir, "file1.txt")); os.IsNotExist(err) {
		t.Error("file1.txt was not copied")
	}
	data, err := os.ReadFile(filepath.Join(dstDir, "subdir", "file2.txt"))
	if err != nil || string(data) != "content2" {
		t.Errorf("subdir/file2.txt was not copied: %v", err)
	}
}

func TestCopyDirIntoItself(t *testing.T) {
	tempDir := t.TempDir()

	srcDir := filepath.Join(tempDir, "src")
	os.Mkdir(srcDir, 0755)

	if err := CopyFileOrDir(srcDir, filepath.Join(srcDir, "src")); err == nil {
		t.Error("Expected error when copying a directory into itself")
	}
}

func TestCopySymlink(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("symlinks need privileges on windows")
	}
	tempDir := t.TempDir()

	target := filepath.Join(tempDir, "target.txt")
	os.WriteFile(target, []byte("x"), 0644)
	link := filepath.Join(tempDir, "link")
	if err := os.Symlink(target, link); err != nil {
		t.Fatal(err)
	}

	dst := filepath.Join(tempDir, "link-copy")
	if err := CopyFileOrDir(link, dst); err != nil {
		t.Fatalf("CopyFileOrDir failed: %v", err)
	}
	got, err := os.Readlink(dst)
	if err != nil {
		t.Fatalf("copy is not a symlink: %v", err)
	}
	if got != target {
		t.Errorf("link target = %q, want %q", got, target)
	}
}

func TestIsWithin(t *testing.T) {
	tests := []struct {
		path, dir string
		want      bool
	}{
		{"/a/b", "/a", true},
		{"/a", "/a", true},
		{"/a/b/c", "/a", true},
		{"/ab", "/a", false},
		{"/", "/a", false},
		{"/a/..b", "/a", true},
	}

	for _, tt := range tests {
		if got := IsWithin(filepath.FromSlash(tt.path), filepath.FromSlash(tt.dir)); got != tt.want {
			t.Errorf("IsWithin(%q, %q) = %v, want %v", tt.path, tt.dir, got, tt.want)
		}
	}
}
