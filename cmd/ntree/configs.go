package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/goccy/go-yaml"
	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"

	"github.com/KimNorgaard/go-ntree"
)

type MainConfig struct {
	Indent   int    `cli:"name=indent desc='spaces per nesting level (default 2)'"`
	MaxDepth int    `cli:"name=max-depth desc='maximum array nesting (default 1000)'"`
	Strict   bool   `cli:"name=strict desc='reject content after the top-level node'"`
	Verbose  bool   `cli:"name=v aliases=verbose desc='log debug output to stderr'"`
	Color    bool   `cli:"name=color desc='color diagnostics'"`
	Config   string `cli:"name=config desc='YAML file with option defaults'"`

	Out      string
	CloseOut func() error

	// Stderr receives diagnostics and log output.
	Stderr io.Writer
	Log    *slog.Logger

	Main *cli.Command
}

func newMainConfig() *MainConfig {
	return &MainConfig{
		Indent:   2,
		MaxDepth: 1000,
		Stderr:   os.Stderr,
	}
}

// FileConfig is the YAML form of the global options. Options given on the
// command line take precedence.
type FileConfig struct {
	Indent   *int  `yaml:"indent"`
	MaxDepth *int  `yaml:"max-depth"`
	Strict   *bool `yaml:"strict"`
	Color    *bool `yaml:"color"`
}

func (cfg *MainConfig) applyFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("could not read config %q: %w", path, err)
	}
	var fc FileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fmt.Errorf("could not decode config %q: %w", path, err)
	}
	if fc.Indent != nil && !cfg.isSet("indent") {
		cfg.Indent = *fc.Indent
	}
	if fc.MaxDepth != nil && !cfg.isSet("max-depth") {
		cfg.MaxDepth = *fc.MaxDepth
	}
	if fc.Strict != nil && !cfg.isSet("strict") {
		cfg.Strict = *fc.Strict
	}
	if fc.Color != nil && !cfg.isSet("color") {
		cfg.Color = *fc.Color
	}
	return nil
}

// isSet reports whether the named global option was given on the command
// line.
func (cfg *MainConfig) isSet(name string) bool {
	if cfg.Main == nil {
		return false
	}
	for _, opt := range cfg.Main.Opts {
		if opt.Name == name {
			return opt.Value != nil
		}
	}
	return false
}

func (cfg *MainConfig) loadOpts() []ntree.Option {
	opts := []ntree.Option{
		ntree.MaxDepth(cfg.MaxDepth),
		ntree.WithLogger(cfg.logger()),
	}
	if cfg.Strict {
		opts = append(opts, ntree.DisallowTrailingData())
	}
	return opts
}

func (cfg *MainConfig) printOpts() []ntree.Option {
	return []ntree.Option{
		ntree.IndentStep(cfg.Indent),
		ntree.WithLogger(cfg.logger()),
	}
}

func (cfg *MainConfig) logger() *slog.Logger {
	if cfg.Log == nil {
		cfg.Log = newLogger(cfg.stderr(), cfg.Verbose)
	}
	return cfg.Log
}

func (cfg *MainConfig) stderr() io.Writer {
	if cfg.Stderr == nil {
		return os.Stderr
	}
	return cfg.Stderr
}

// colored reports whether diagnostics written to w should be colored.
func (cfg *MainConfig) colored(w io.Writer) bool {
	if cfg.Color {
		return true
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}

func (cfg *MainConfig) paint(w io.Writer, attr color.Attribute) func(...any) string {
	c := color.New(attr)
	if cfg.colored(w) {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
	return c.SprintFunc()
}

// diag writes a diagnostic line to stderr.
func (cfg *MainConfig) diag(format string, args ...any) {
	w := cfg.stderr()
	red := cfg.paint(w, color.FgRed)
	fmt.Fprintln(w, red(fmt.Sprintf(format, args...)))
}

type PrintConfig struct {
	*MainConfig

	Print *cli.Command
}

type CheckConfig struct {
	*MainConfig

	Quiet bool `cli:"name=q aliases=quiet desc='only report failures'"`
	Check *cli.Command
}

type DiffConfig struct {
	*MainConfig

	Diff *cli.Command
}
