// Command ratel lists a music folder and reads ID3v1 tags.
//
// Usage:
//
//	ratel [flags] <command> [args]
//
// Commands:
//
//	list [-json]     print the library listing
//	tag <file>...    print the ID3v1 tag of each file
//	folder [path]    print or set the persisted music folder
//	watch            print the listing and again on every change
//	version          print version information
//
// Run "ratel -h" for the flags. Every flag also has a RATEL_* environment
// variable.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/term"

	"github.com/simonhull/ratel/internal/config"
	"github.com/simonhull/ratel/internal/logger"
)

const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// app carries what every command needs.
type app struct {
	cfg    *config.Config
	log    *logger.Logger
	stdout io.Writer
	stderr io.Writer
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	cfg, rest, err := config.Load(args, stderr)
	if errors.Is(err, flag.ErrHelp) {
		usage(stderr)
		return exitOK
	}
	if err != nil {
		fmt.Fprintf(stderr, "ratel: %v\n", err)
		return exitUsage
	}

	a := &app{
		cfg: cfg,
		log: logger.New(logger.Config{
			Writer:      stderr,
			Environment: cfg.App.Environment,
			Level:       logger.ParseLevel(cfg.Logger.Level),
			NoColor:     noColor(stderr),
		}),
		stdout: stdout,
		stderr: stderr,
	}

	if len(rest) == 0 {
		usage(stderr)
		return exitUsage
	}

	cmd, cmdArgs := rest[0], rest[1:]
	switch cmd {
	case "list":
		err = a.list(ctx, cmdArgs)
	case "tag":
		err = a.tag(cmdArgs)
	case "folder":
		err = a.folder(cmdArgs)
	case "watch":
		err = a.watch(ctx)
	case "version":
		a.version()
	default:
		fmt.Fprintf(stderr, "ratel: unknown command %q\n", cmd)
		usage(stderr)
		return exitUsage
	}

	var ue usageError
	switch {
	case err == nil:
		return exitOK
	case errors.As(err, &ue):
		fmt.Fprintf(stderr, "ratel %s: %v\n", cmd, err)
		return exitUsage
	case errors.Is(err, context.Canceled):
		return exitOK
	default:
		fmt.Fprintf(stderr, "ratel %s: %v\n", cmd, err)
		return exitError
	}
}

// noColor reports whether log output to w should be plain text.
func noColor(w io.Writer) bool {
	if os.Getenv("NO_COLOR") != "" {
		return true
	}
	f, ok := w.(*os.File)
	return !ok || !term.IsTerminal(int(f.Fd()))
}

// usageError marks bad command-line input.
type usageError struct {
	msg string
}

func (e usageError) Error() string {
	return e.msg
}

func usage(w io.Writer) {
	fmt.Fprint(w, `Usage: ratel [flags] <command> [args]

Commands:
  list [-json]     print the library listing
  tag <file>...    print the ID3v1 tag of each file
  folder [path]    print or set the persisted music folder
  watch            print the listing and again on every change
  version          print version information
`)
}
