package main

import (
	"context"
	"io"
	"log/slog"
	"os"
)

type cliApp struct {
	stdout io.Writer
	logger *slog.Logger
	// locate returns the base directory README.md and src/lib.rs live in.
	locate func() (string, error)
	// openFS builds the workspace for a base directory.
	openFS func(root string) *workspace
}

func run(argv []string, stdout io.Writer) error {
	app := &cliApp{
		stdout: stdout,
		logger: newLogger(os.Stderr),
		locate: entryPointDir,
		openFS: openWorkspace,
	}
	return app.execute(argv)
}

func (app *cliApp) execute(argv []string) error {
	cmd := newRootCmd(app)
	cmd.SetArgs(argv)
	return cmd.Execute()
}

func newLogger(w io.Writer) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelInfo}))
}

func (app *cliApp) synchronizer() (*synchronizer, error) {
	root, err := app.locate()
	if err != nil {
		return nil, err
	}
	return &synchronizer{
		ws:     app.openFS(root),
		stdout: app.stdout,
		logger: app.logger.With(slog.String("base", root)),
	}, nil
}

func (app *cliApp) sync(ctx context.Context) error {
	s, err := app.synchronizer()
	if err != nil {
		return err
	}
	_, err = s.Sync(ctx)
	return err
}

func (app *cliApp) check(ctx context.Context) error {
	s, err := app.synchronizer()
	if err != nil {
		return err
	}
	if err := s.Check(ctx); err != nil {
		return err
	}
	_, err = io.WriteString(app.stdout, "up to date\n")
	return err
}
