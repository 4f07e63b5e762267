package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"
	"github.com/go-git/go-billy/v5/util"
)

const (
	readmePath = "README.md"
	libPath    = "src/lib.rs"
)

var errInvalidUTF8 = errors.New("content is not valid UTF-8")

// workspace resolves every relative path against a single base directory.
type workspace struct {
	fs   billy.Filesystem
	root string
}

func openWorkspace(root string) *workspace {
	return &workspace{fs: osfs.New(root), root: root}
}

func newWorkspace(fs billy.Filesystem) *workspace {
	return &workspace{fs: fs, root: fs.Root()}
}

func (w *workspace) path(name string) string {
	return filepath.Join(w.root, filepath.FromSlash(name))
}

func (w *workspace) readLines(name string) ([]string, error) {
	data, err := util.ReadFile(w.fs, name)
	if err != nil {
		return nil, err
	}
	if !utf8.Valid(data) {
		return nil, errInvalidUTF8
	}
	return splitLines(string(data)), nil
}

// overwrite replaces the content of an existing file. A failure part way
// through leaves the file truncated.
func (w *workspace) overwrite(name string, lines []string) (err error) {
	f, err := w.fs.OpenFile(name, os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	for _, line := range lines {
		if _, err := f.Write([]byte(line)); err != nil {
			return err
		}
	}
	return nil
}

// entryPointDir returns the directory holding the running binary. Binaries
// built by `go run` live in a throwaway go-build directory, so the working
// directory stands in for them.
func entryPointDir() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("locate executable: %w", err)
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	dir := filepath.Dir(exe)
	if isGoRunDir(dir) {
		return os.Getwd()
	}
	return dir, nil
}

func isGoRunDir(dir string) bool {
	for _, part := range strings.Split(filepath.ToSlash(dir), "/") {
		if strings.HasPrefix(part, "go-build") {
			return true
		}
	}
	return false
}
