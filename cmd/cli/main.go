// Command cli answers one currency query from the command line.
//
//	cli [-copy] 100 usd to eur,gbp
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"

	"github.com/amirasaad/fxquery/infra/initializer"
	"github.com/amirasaad/fxquery/pkg/app"
	"github.com/amirasaad/fxquery/pkg/config"
	"github.com/amirasaad/fxquery/pkg/service/converter"
	"github.com/fatih/color"
	"github.com/google/uuid"
	"golang.org/x/term"
)

// Exit codes.
const (
	exitOK = iota
	exitNoResults
	exitUsage
	exitFailure
)

// logLevel keeps diagnostics on stderr to warnings and above.
const logLevel = slog.LevelWarn

func main() {
	os.Exit(run())
}

func run() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	quietStartupLogs()
	cfg, err := config.Load(".env")
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to load configuration:", err)
		return exitFailure
	}
	cfg.Log.Level = int(logLevel)

	deps, err := initializer.InitializeDependencies(cfg, os.Stderr)
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to initialize dependencies:", err)
		return exitFailure
	}
	deps.Logger = deps.Logger.With("request_id", uuid.NewString())

	colored := term.IsTerminal(int(os.Stdout.Fd()))
	return execute(ctx, app.New(deps, cfg), os.Args[1:], os.Stdout, os.Stderr, colored)
}

// quietStartupLogs raises the default logger to logLevel so that
// configuration loading stays silent. It returns the previous level.
func quietStartupLogs() slog.Level {
	return slog.SetLogLoggerLevel(logLevel)
}

// execute handles one invocation and returns the process exit code.
func execute(
	ctx context.Context,
	a *app.App,
	args []string,
	stdout, stderr io.Writer,
	colored bool,
) int {
	fs := flag.NewFlagSet("cli", flag.ContinueOnError)
	fs.SetOutput(stderr)
	copyFirst := fs.Bool("copy", false, "print only the first result's value")
	fs.Usage = func() {
		fmt.Fprintln(stderr, "Usage: cli [-copy] <amount> <from> [to] <targets>")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return exitUsage
	}
	if fs.NArg() == 0 {
		fs.Usage()
		return exitUsage
	}

	search := strings.Join(fs.Args(), " ")
	results := a.ConverterService.Handle(ctx, a.Request(search, "", ""))
	if len(results) == 0 {
		fmt.Fprintf(stderr, "%q is not a currency query\n", search)
		return exitNoResults
	}

	if *copyFirst {
		err := results[0].Activate(ctx, writerClipboard{w: stdout})
		if errors.Is(err, converter.ErrNoAction) {
			fmt.Fprintln(stderr, results[0].Title)
			return exitFailure
		}
		if err != nil {
			fmt.Fprintln(stderr, "copy failed:", err)
			return exitFailure
		}
		return exitOK
	}

	render(stdout, results, colored)
	if results[0].Kind == converter.KindNotice {
		return exitFailure
	}
	return exitOK
}

// writerClipboard stands in for a system clipboard by printing the text.
type writerClipboard struct {
	w io.Writer
}

func (c writerClipboard) Copy(_ context.Context, text string) error {
	_, err := fmt.Fprintln(c.w, text)
	return err
}

func render(w io.Writer, results []converter.Result, colored bool) {
	title := color.New(color.FgGreen, color.Bold)
	notice := color.New(color.FgYellow)
	sub := color.New(color.Faint)
	for _, c := range []*color.Color{title, notice, sub} {
		if colored {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}

	for _, r := range results {
		if r.Kind == converter.KindNotice {
			notice.Fprintln(w, r.Title) //nolint:errcheck
			continue
		}
		title.Fprintln(w, r.Title) //nolint:errcheck
		if r.SubTitle != "" {
			sub.Fprintln(w, "  "+r.SubTitle) //nolint:errcheck
		}
	}
}
