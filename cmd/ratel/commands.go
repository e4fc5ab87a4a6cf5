package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/simonhull/ratel"
	"github.com/simonhull/ratel/internal/config"
	"github.com/simonhull/ratel/internal/library"
	"github.com/simonhull/ratel/internal/watcher"
)

// errTagsFailed reports that at least one file in "ratel tag" was unreadable.
var errTagsFailed = errors.New("one or more tags could not be read")

func (a *app) scanner() *library.Scanner {
	return library.NewScanner(a.log.Logger, library.Options{
		Charset: a.cfg.CharsetMap(),
		Workers: a.cfg.Library.Workers,
	})
}

func (a *app) list(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("list", flag.ContinueOnError)
	fs.SetOutput(a.stderr)
	asJSON := fs.Bool("json", false, "Print one JSON object per line")
	if err := fs.Parse(args); err != nil {
		return usageError{msg: err.Error()}
	}
	if fs.NArg() > 0 {
		return usageError{msg: "list takes no arguments"}
	}

	rows, err := a.scanner().Scan(ctx, a.cfg.Library.MusicDir)
	if err != nil {
		return err
	}

	if *asJSON {
		return writeJSON(a.stdout, rows)
	}
	return writeTable(a.stdout, rows)
}

func (a *app) tag(args []string) error {
	if len(args) == 0 {
		return usageError{msg: "tag needs at least one file"}
	}

	failed := false
	for i, path := range args {
		if i > 0 {
			fmt.Fprintln(a.stdout)
		}

		tag, err := ratel.Extract(path, ratel.WithCharset(a.cfg.CharsetMap()))
		switch {
		case err == nil:
			writeTag(a.stdout, tag)
		case errors.Is(err, ratel.ErrNotPresent):
			fmt.Fprintf(a.stdout, "%s: no ID3v1 tag\n", filepath.Base(path))
		default:
			a.log.Error("failed to read tag", "path", path, "error", err)
			failed = true
		}
	}

	if failed {
		return errTagsFailed
	}
	return nil
}

func (a *app) folder(args []string) error {
	state := a.cfg.Library.StateFile

	switch len(args) {
	case 0:
		saved, err := config.LoadFolder(state)
		if err != nil {
			return err
		}
		if saved == "" {
			fmt.Fprintf(a.stdout, "%s (not persisted)\n", a.cfg.Library.MusicDir)
			return nil
		}
		fmt.Fprintln(a.stdout, saved)
		return nil
	case 1:
	default:
		return usageError{msg: "folder takes at most one path"}
	}

	dir, err := filepath.Abs(args[0])
	if err != nil {
		return err
	}
	info, err := os.Stat(dir)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return fmt.Errorf("%s is not a directory", dir)
	}

	if err := config.SaveFolder(state, dir); err != nil {
		return err
	}
	a.log.Info("music folder saved", "folder", dir, "state_file", state)
	fmt.Fprintln(a.stdout, dir)
	return nil
}

func (a *app) watch(ctx context.Context) error {
	dir := a.cfg.Library.MusicDir
	scanner := a.scanner()

	w, err := watcher.New(a.log.Logger, watcher.Options{SettleDelay: a.cfg.Watch.SettleDelay})
	if err != nil {
		return err
	}
	defer w.Close()

	if err := w.Watch(dir); err != nil {
		return err
	}
	w.Start(ctx)

	relist := func() error {
		rows, err := scanner.Scan(ctx, dir)
		if err != nil {
			return err
		}
		return writeTable(a.stdout, rows)
	}

	if err := relist(); err != nil {
		return err
	}
	a.log.Info("watching music folder", "folder", dir)

	for {
		select {
		case <-ctx.Done():
			a.log.Info("stopped watching")
			return nil
		case ev, ok := <-w.Events():
			if !ok {
				return nil
			}
			a.log.Info("music folder changed", "files", len(ev.Paths))
			fmt.Fprintln(a.stdout)
			if err := relist(); err != nil {
				return err
			}
		case err, ok := <-w.Errors():
			if ok {
				a.log.Warn("watcher error", "error", err)
			}
		}
	}
}

func (a *app) version() {
	info := ratel.GetVersionInfo()
	fmt.Fprintf(a.stdout, "ratel %s\n", info.Version)
	fmt.Fprintf(a.stdout, "  commit: %s\n", info.GitCommit)
	fmt.Fprintf(a.stdout, "  built:  %s\n", info.BuildTime)
	fmt.Fprintf(a.stdout, "  go:     %s\n", info.GoVersion)
}
