package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
)

var (
	// ErrReadSource reports that README.md could not be read or decoded.
	ErrReadSource = errors.New("read source document")
	// ErrReadTarget reports that the target file could not be read or decoded.
	ErrReadTarget = errors.New("read target document")
	// ErrWriteTarget reports a failed overwrite. The target may be truncated.
	ErrWriteTarget = errors.New("write target document")
	// ErrOutOfSync is returned by check when the doc header is stale.
	ErrOutOfSync = errors.New("doc header is out of sync with README")
)

const (
	backupStart = ">>>>>>"
	backupEnd   = "<<<<<<"
)

type synchronizer struct {
	ws     *workspace
	stdout io.Writer
	logger *slog.Logger
}

// Sync rewrites the target header from the README. The stripped header is
// printed to stdout before the target is touched.
func (s *synchronizer) Sync(ctx context.Context) (syncResult, error) {
	readme, target, err := s.load()
	if err != nil {
		return syncResult{}, err
	}
	result := synchronize(readme, target)
	if err := writeBackup(s.stdout, result.Backup); err != nil {
		return result, err
	}
	if err := s.ws.overwrite(libPath, result.Content); err != nil {
		return result, fmt.Errorf("%w %s: %w", ErrWriteTarget, s.ws.path(libPath), err)
	}
	s.logger.InfoContext(ctx, "synchronized doc header",
		slog.String("target", s.ws.path(libPath)),
		slog.Int("readme_lines", len(readme)),
		slog.Int("backup_lines", len(result.Backup)),
		slog.Int("body_lines", len(result.Content)-len(readme)-1),
	)
	return result, nil
}

// Check reports ErrOutOfSync when running Sync would change the target.
func (s *synchronizer) Check(ctx context.Context) error {
	readme, target, err := s.load()
	if err != nil {
		return err
	}
	result := synchronize(readme, target)
	if strings.Join(result.Content, "") != strings.Join(target, "") {
		s.logger.DebugContext(ctx, "doc header differs",
			slog.Int("header_lines", len(result.Backup)),
			slog.Int("expected_lines", len(result.Content)),
			slog.Int("actual_lines", len(target)),
		)
		return fmt.Errorf("%w: %s", ErrOutOfSync, s.ws.path(libPath))
	}
	return nil
}

func (s *synchronizer) load() (readme, target []string, err error) {
	readme, err = s.ws.readLines(readmePath)
	if err != nil {
		return nil, nil, fmt.Errorf("%w %s: %w", ErrReadSource, s.ws.path(readmePath), err)
	}
	target, err = s.ws.readLines(libPath)
	if err != nil {
		return nil, nil, fmt.Errorf("%w %s: %w", ErrReadTarget, s.ws.path(libPath), err)
	}
	return readme, target, nil
}

func writeBackup(w io.Writer, lines []string) error {
	var b strings.Builder
	b.WriteString(backupStart + "\n")
	for _, line := range lines {
		b.WriteString(line)
	}
	if n := len(lines); n > 0 && !strings.HasSuffix(lines[n-1], "\n") {
		b.WriteByte('\n')
	}
	b.WriteString(backupEnd + "\n")
	_, err := io.WriteString(w, b.String())
	return err
}
