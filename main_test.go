package main

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func newTestApp(t *testing.T, root string, stdout io.Writer) *cliApp {
	t.Helper()
	return &cliApp{
		stdout: stdout,
		logger: newLogger(io.Discard),
		locate: func() (string, error) { return root, nil },
		openFS: openWorkspace,
	}
}

func writeProject(t *testing.T, readme, lib string) string {
	t.Helper()
	root := t.TempDir()
	if err := os.MkdirAll(filepath.Join(root, "src"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(root, "README.md"), []byte(readme), 0o644); err != nil {
		t.Fatalf("write readme: %v", err)
	}
	if err := os.WriteFile(filepath.Join(root, "src", "lib.rs"), []byte(lib), 0o644); err != nil {
		t.Fatalf("write lib: %v", err)
	}
	return root
}

func readLib(t *testing.T, root string) string {
	t.Helper()
	content, err := os.ReadFile(filepath.Join(root, "src", "lib.rs"))
	if err != nil {
		t.Fatalf("read lib: %v", err)
	}
	return string(content)
}

func TestRootCommandRewritesLib(t *testing.T) {
	root := writeProject(t, "Hello\n", "//! old\n//! doc\nfn main() {}\n")
	var buf bytes.Buffer
	if err := newTestApp(t, root, &buf).execute(nil); err != nil {
		t.Fatalf("execute: %v", err)
	}
	if got, want := buf.String(), ">>>>>>\n//! old\n//! doc\n<<<<<<\n"; got != want {
		t.Fatalf("backup output = %q, want %q", got, want)
	}
	if got, want := readLib(t, root), "//! Hello\n\nfn main() {}\n"; got != want {
		t.Fatalf("lib.rs = %q, want %q", got, want)
	}
}

func TestRootCommandIgnoresWorkingDirectory(t *testing.T) {
	root := writeProject(t, "Title\n", "fn main() {}\n")
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })
	if err := newTestApp(t, root, io.Discard).execute(nil); err != nil {
		t.Fatalf("execute: %v", err)
	}
	if got, want := readLib(t, root), "//! Title\n\nfn main() {}\n"; got != want {
		t.Fatalf("lib.rs = %q, want %q", got, want)
	}
}

func TestRootCommandMissingReadme(t *testing.T) {
	root := writeProject(t, "", "fn main() {}\n")
	if err := os.Remove(filepath.Join(root, "README.md")); err != nil {
		t.Fatalf("remove: %v", err)
	}
	var buf bytes.Buffer
	err := newTestApp(t, root, &buf).execute(nil)
	if !errors.Is(err, ErrReadSource) {
		t.Fatalf("expected ErrReadSource, got %v", err)
	}
	if buf.Len() != 0 {
		t.Fatalf("expected no backup output, got %q", buf.String())
	}
	assertContains(t, err.Error(), "README.md")
}

func TestRootCommandUnwritableTarget(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("permission bits are not enforced for root")
	}
	root := writeProject(t, "Hello\n", "//! old\nfn main() {}\n")
	lib := filepath.Join(root, "src", "lib.rs")
	if err := os.Chmod(lib, 0o444); err != nil {
		t.Fatalf("chmod: %v", err)
	}
	var buf bytes.Buffer
	err := newTestApp(t, root, &buf).execute(nil)
	if !errors.Is(err, ErrWriteTarget) {
		t.Fatalf("expected ErrWriteTarget, got %v", err)
	}
	assertContains(t, buf.String(), ">>>>>>\n//! old\n<<<<<<\n")
	if got := readLib(t, root); got != "//! old\nfn main() {}\n" {
		t.Fatalf("lib.rs changed: %q", got)
	}
}

func TestRootCommandRejectsArguments(t *testing.T) {
	root := writeProject(t, "Hello\n", "")
	if err := newTestApp(t, root, io.Discard).execute([]string{"README.md"}); err == nil {
		t.Fatalf("expected positional arguments to be rejected")
	}
}

func TestCheckCommand(t *testing.T) {
	root := writeProject(t, "Hello\n", "fn main() {}\n")
	app := newTestApp(t, root, io.Discard)
	if err := app.execute([]string{"check"}); !errors.Is(err, ErrOutOfSync) {
		t.Fatalf("expected ErrOutOfSync, got %v", err)
	}
	if err := app.execute(nil); err != nil {
		t.Fatalf("sync: %v", err)
	}
	var buf bytes.Buffer
	app.stdout = &buf
	if err := app.execute([]string{"check"}); err != nil {
		t.Fatalf("check after sync: %v", err)
	}
	if buf.String() != "up to date\n" {
		t.Fatalf("unexpected check output %q", buf.String())
	}
}

func TestLocateFailure(t *testing.T) {
	app := newTestApp(t, "", io.Discard)
	want := errors.New("no executable")
	app.locate = func() (string, error) { return "", want }
	if err := app.execute(nil); !errors.Is(err, want) {
		t.Fatalf("expected locate error, got %v", err)
	}
}

func TestIsGoRunDir(t *testing.T) {
	cases := map[string]bool{
		"/tmp/go-build1234/b001/exe": true,
		"/usr/local/bin":             false,
		"/home/dev/project":          false,
	}
	for dir, want := range cases {
		if got := isGoRunDir(filepath.FromSlash(dir)); got != want {
			t.Errorf("isGoRunDir(%q) = %v, want %v", dir, got, want)
		}
	}
}

func assertContains(t *testing.T, haystack, needle string) {
	t.Helper()
	if !strings.Contains(haystack, needle) {
		t.Fatalf("expected output to contain %q\n\n%s", needle, haystack)
	}
}

func TestHelpFlag(t *testing.T) {
	var buf bytes.Buffer
	if err := run([]string{"--help"}, &buf); err != nil {
		t.Fatalf("run: %v", err)
	}
	out := buf.String()
	assertContains(t, out, "doc-sync [flags]")
	assertContains(t, out, "check       Verify the src/lib.rs doc header matches README.md")
	assertContains(t, out, "completion  Generate shell completion scripts")
}

func TestVersionFlag(t *testing.T) {
	var buf bytes.Buffer
	if err := run([]string{"--version"}, &buf); err != nil {
		t.Fatalf("run: %v", err)
	}
	assertContains(t, buf.String(), Version)
}

func TestCompletionCommand(t *testing.T) {
	var buf bytes.Buffer
	if err := run([]string{"completion", "bash"}, &buf); err != nil {
		t.Fatalf("run: %v", err)
	}
	if buf.Len() == 0 {
		t.Fatalf("expected completion output")
	}
	assertContains(t, buf.String(), "__start_doc-sync")
}

func TestGenDocsCommand(t *testing.T) {
	tmp := t.TempDir()
	if err := run([]string{"gen-docs", tmp}, io.Discard); err != nil {
		t.Fatalf("run: %v", err)
	}
	files, err := os.ReadDir(tmp)
	if err != nil {
		t.Fatalf("readdir: %v", err)
	}
	var foundRoot, foundCheck bool
	for _, f := range files {
		switch f.Name() {
		case "doc-sync.md":
			foundRoot = true
		case "doc-sync_check.md":
			foundCheck = true
		}
	}
	if !foundRoot || !foundCheck {
		t.Fatalf("expected doc-sync.md and doc-sync_check.md in docs output, got %v", files)
	}
}
