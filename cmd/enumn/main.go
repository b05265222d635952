package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"sort"

	"github.com/alecthomas/kong"
	"golang.org/x/sys/unix"

	"github.com/panda131456/enumn/internal/declfile"
	"github.com/panda131456/enumn/internal/enumngen"
)

type CLI struct {
	Verbose bool `help:"Log progress to stderr." short:"v"`

	Gen     GenCmd     `cmd:"" default:"withargs" help:"Generate conversion functions for Go packages."`
	Plan    PlanCmd    `cmd:"" help:"Derive conversions from a YAML declaration file."`
	Version VersionCmd `cmd:"" help:"Print version information."`
}

type GenCmd struct {
	Patterns []string `arg:"" optional:"" default:"." help:"Package patterns to process."`
	Out      string   `help:"Output file name in each package." short:"o" default:"enumn_gen.go"`
	Tags     string   `help:"Comma-separated build tags." short:"b"`
	Tests    bool     `help:"Include tests." short:"t"`
	Color    string   `help:"Colorize errors." short:"c" enum:"auto,always,never" default:"auto"`
}

func (c *GenCmd) Run(ctx context.Context) error {
	wd, err := os.Getwd()
	if err != nil {
		return err
	}

	color := false
	switch c.Color {
	case "auto":
		color = isatty()
	case "always":
		color = true
	}

	slog.Debug("loading packages", "patterns", c.Patterns, "tags", c.Tags, "tests", c.Tests)
	outs, err := enumngen.Main(ctx, wd, os.Environ(), c.Tags, c.Tests, c.Out, c.Patterns)
	if err != nil {
		message := err.Error()
		if color {
			message = colorize(message)
		}
		fmt.Fprintln(os.Stderr, message)
		os.Exit(1)
	}
	if len(outs) == 0 {
		slog.Debug("no //enumn:derive declarations found")
	}

	paths := make([]string, 0, len(outs))
	for out := range outs {
		paths = append(paths, out)
	}
	sort.Strings(paths)

	for _, out := range paths {
		if err := os.WriteFile(out, outs[out], 0o644); err != nil {
			return err
		}

		if relOut, err := filepath.Rel(wd, out); err == nil {
			out = relOut
		}
		fmt.Println("Generated:", out)
	}
	return nil
}

type PlanCmd struct {
	File string `arg:"" type:"existingfile" help:"YAML declaration file."`
	Out  string `help:"Write the plan to this file instead of stdout." short:"o" type:"path"`
}

func (c *PlanCmd) Run() error {
	data, err := os.ReadFile(c.File)
	if err != nil {
		return fmt.Errorf("failed to read declaration file: %w", err)
	}

	doc, err := declfile.Read(c.File, data)
	if err != nil {
		return err
	}
	convs, err := doc.Derive()
	if err != nil {
		return err
	}
	slog.Debug("derived conversions", "file", c.File, "count", len(convs))

	w := os.Stdout
	if c.Out != "" {
		f, err := os.Create(c.Out)
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
	}
	return declfile.WritePlans(w, convs)
}

type VersionCmd struct{}

func (c *VersionCmd) Run() error {
	v := version()
	if v == "" {
		v = "devel"
	}
	fmt.Println(v)
	return nil
}

func main() {
	enumngen.Version = version()

	cli := &CLI{}
	kctx := kong.Parse(cli,
		kong.Name("enumn"),
		kong.Description("Generate integer to enum conversion functions."),
		kong.UsageOnError(),
		kong.BindTo(context.Background(), (*context.Context)(nil)),
	)

	level := slog.LevelInfo
	if cli.Verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	err := kctx.Run()
	kctx.FatalIfErrorf(err)
}

// isatty reports whether the program is running in a terminal. If it is true,
// we can use ANSI color codes.
func isatty() bool {
	_, err := unix.IoctlGetWinsize(int(os.Stderr.Fd()), unix.TIOCGWINSZ)
	return err == nil
}

var rePos = regexp.MustCompile(`(?m)^[^\s:]+:\d+:\d+:`)

// colorize adds ANSI color codes to the message. Source positions are
// highlighted.
func colorize(message string) string {
	const (
		bold  = "\033[1m"
		red   = "\033[31m"
		reset = "\033[0m"
	)
	return rePos.ReplaceAllStringFunc(message, func(pos string) string {
		return bold + red + pos + reset
	})
}
