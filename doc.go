// # doc-sync
//
// `doc-sync` writes a crate's `README.md` into the leading `//!` doc comment
// of `src/lib.rs`, so the rustdoc landing page and the README never drift
// apart.
//
// Every README line becomes `//! ` followed by the line, untouched. The
// existing header of `src/lib.rs` (the run of `//!` and blank lines at the
// very top) is replaced by that block and one blank line; everything after
// the first other line is kept byte for byte, including any `//!` lines
// further down.
//
// ## Usage
//
// Place the binary in the crate root and run it from anywhere:
//
//	./doc-sync
//
// `README.md` and `src/lib.rs` are resolved against the directory holding the
// binary. Under `go run` the working directory is used instead.
//
// Before `src/lib.rs` is overwritten, the header being dropped is printed to
// stdout between sentinel lines:
//
//	>>>>>>
//	//! Old crate docs
//
//	<<<<<<
//
// Copy the lines back if something important was lost. Running the tool a
// second time prints the block written by the first run and leaves the file
// unchanged.
//
// ## Commands
//
//   - `doc-sync`: rewrite the header.
//   - `doc-sync check`: exit non-zero when the header is stale, without writing.
//   - `doc-sync completion [bash|zsh|fish|powershell]`: shell completion.
//   - `doc-sync gen-docs DIR`: Markdown reference for the CLI.
//
// ## Failures
//
// A missing or undecodable `README.md` aborts before anything is printed. A
// missing `src/lib.rs` aborts before anything is written. A write failure is
// reported after the backup was printed; the file may be left truncated.
package main
