// Package main is the entry point for the blockdown block editor.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/dshills/blockdown/internal/block"
	"github.com/dshills/blockdown/internal/config"
	"github.com/dshills/blockdown/internal/editor"
	"github.com/dshills/blockdown/internal/toolbar"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
)

type options struct {
	configPath  string
	from        string
	to          string
	output      string
	edit        bool
	logLevel    string
	showVersion bool
	input       string
}

func main() {
	os.Exit(run())
}

func run() int {
	opts := parseFlags()

	if opts.showVersion {
		fmt.Printf("blockdown %s (%s)\n", version, commit)
		return 0
	}

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	if opts.logLevel != "" {
		cfg.LogLevel = opts.logLevel
	}

	log := editor.NewLogger(editor.ParseLogLevel(cfg.LogLevel), os.Stderr)

	tb, closeToolbar, err := loadToolbar(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	defer closeToolbar()

	ed := editor.New(
		editor.WithToolbar(tb),
		editor.WithLogger(log),
		editor.WithDefaultKind(cfg.DefaultBlockType()),
	)

	// An edit session without an input file starts on the editor's
	// initial empty paragraph instead of draining stdin.
	if !opts.edit || opts.input != "" {
		src, err := readInput(opts.input)
		switch {
		case err != nil && opts.edit && errors.Is(err, fs.ErrNotExist):
			// Editing a file that does not exist yet starts empty.
		case err != nil:
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		default:
			if err := importDocument(ed, opts.from, src); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				return 1
			}
		}
	}

	if opts.edit {
		return runEdit(ed, cfg, opts)
	}

	out, err := exportDocument(ed, opts.to)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	if err := writeOutput(opts.output, out); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func parseFlags() options {
	var opts options

	flag.StringVar(&opts.configPath, "config", defaultConfigPath(), "configuration file")
	flag.StringVar(&opts.from, "from", "md", "input format: md or html")
	flag.StringVar(&opts.to, "to", "html", "output format: md or html")
	flag.StringVar(&opts.output, "o", "", "output file (default stdout)")
	flag.BoolVar(&opts.edit, "edit", false, "open an interactive editing session")
	flag.StringVar(&opts.logLevel, "log-level", "", "override the configured log level")
	flag.BoolVar(&opts.showVersion, "version", false, "print version and exit")
	flag.Parse()

	opts.input = flag.Arg(0)
	return opts
}

func defaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "blockdown.toml"
	}
	return filepath.Join(dir, "blockdown", "blockdown.toml")
}

// loadToolbar builds the configured toolbar sink. Without a script the
// built-in no-op toolbar applies.
func loadToolbar(cfg config.Config) (block.Toolbar, func(), error) {
	if cfg.ToolbarScript == "" {
		return block.NopToolbar{}, func() {}, nil
	}
	lt, err := toolbar.LoadLua(cfg.ToolbarScript)
	if err != nil {
		return nil, nil, err
	}
	return lt, lt.Close, nil
}

func readInput(path string) (string, error) {
	if path == "" || path == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}
	return string(data), nil
}

func importDocument(ed *editor.Editor, format, src string) error {
	switch format {
	case "md", "markdown":
		ed.FromMarkdown(src)
		return nil
	case "html":
		return ed.FromHTML(src)
	default:
		return fmt.Errorf("unknown input format %q", format)
	}
}

func exportDocument(ed *editor.Editor, format string) (string, error) {
	switch format {
	case "md", "markdown":
		return ed.Markdown(), nil
	case "html":
		return ed.HTML(), nil
	default:
		return "", fmt.Errorf("unknown output format %q", format)
	}
}

func writeOutput(path, content string) error {
	if path == "" || path == "-" {
		_, err := fmt.Println(content)
		return err
	}
	return os.WriteFile(path, []byte(content+"\n"), 0o644)
}
