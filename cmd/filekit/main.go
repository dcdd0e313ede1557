// Command filekit reads JSON, YAML, and CSV files and tests regular
// expressions against a sample sentence.
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/alecthomas/kingpin.v2"

	"github.com/bjaus/filekit"
	"github.com/bjaus/filekit/internal/render"
)

const sampleText = "the quick brown fox jumps over 13 lazy dogs"

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "filekit: %v\n", err)
		os.Exit(1)
	}
}

type cli struct {
	input       string
	pattern     string
	csv         string
	headers     bool
	border      string
	tableFormat string
	output      string
	indent      int
	logLevel    string
}

func parseArgs(args []string, stderr io.Writer) (*cli, error) {
	var c cli
	app := kingpin.New("filekit", "Read JSON, YAML, and CSV files and test regular expressions.")
	app.UsageWriter(stderr)
	app.ErrorWriter(stderr)
	app.Flag("input", "Path to a JSON or YAML file to read.").Short('i').StringVar(&c.input)
	app.Flag("pattern", "A regex pattern to test against sample text.").Short('p').StringVar(&c.pattern)
	app.Flag("csv", "Path to a CSV file to print as a table.").Short('c').StringVar(&c.csv)
	app.Flag("headers", "Skip the first CSV record as a header.").BoolVar(&c.headers)
	app.Flag("border", "Table border style.").Default("rounded").EnumVar(&c.border, "rounded", "ascii", "none")
	app.Flag("table-format", "Output format for --csv tables.").Default(string(render.Table)).EnumVar(&c.tableFormat, formatNames()...)
	app.Flag("output", "Output format for --input documents.").Short('o').EnumVar(&c.output, "json", "yaml")
	app.Flag("indent", "Indentation width for JSON and YAML output.").Default("0").IntVar(&c.indent)
	app.Flag("log-level", "Log level.").Default("warn").EnumVar(&c.logLevel, "debug", "info", "warn", "error")
	if _, err := app.Parse(args); err != nil {
		return nil, err
	}
	if c.indent < 0 {
		return nil, fmt.Errorf("--indent must not be negative, got %d", c.indent)
	}
	return &c, nil
}

func formatNames() []string {
	var names []string
	for _, f := range render.Formats() {
		names = append(names, f.String())
	}
	return names
}

func run(args []string, stdout, stderr io.Writer) error {
	c, err := parseArgs(args, stderr)
	if err != nil {
		return err
	}
	logger := newLogger(stderr, c.logLevel)

	if c.pattern != "" {
		if err := testPattern(stdout, c.pattern); err != nil {
			return err
		}
	}
	if c.input != "" {
		if err := printDocument(stdout, logger, c.input, c.output, render.WithIndent(c.indent)); err != nil {
			return err
		}
	}
	if c.csv != "" {
		if err := printTable(stdout, logger, c); err != nil {
			return err
		}
	}
	return nil
}

func testPattern(w io.Writer, pattern string) error {
	found, err := filekit.Matches(sampleText, pattern)
	var ce *filekit.CompileError
	switch {
	case errors.As(err, &ce):
		_, err = fmt.Fprintf(w, "invalid pattern: %v\n", ce.Err)
	case err != nil:
		return err
	default:
		_, err = fmt.Fprintf(w, "pattern found? %t\n", found)
	}
	return err
}

func printDocument(w io.Writer, logger *slog.Logger, path, output string, opts ...render.Option) error {
	var (
		label string
		f     filekit.Format
		out   render.Format
	)
	switch filepath.Ext(path) {
	case ".json":
		label, f, out = "Read JSON:", filekit.JSON, render.JSON
	case ".yaml", ".yml":
		label, f, out = "Read YAML:", filekit.YAML, render.YAML
	default:
		_, err := fmt.Fprintln(w, "Unsupported input type")
		return err
	}
	if output != "" {
		var err error
		if out, err = render.ParseFormat(output); err != nil {
			return err
		}
	}
	logger.Debug("loading document", "path", path, "format", f)
	v, err := filekit.Load[any](path, f)
	if err != nil {
		return err
	}
	// JSON stays on the label line; YAML starts on the next one.
	sep := " "
	if out == render.YAML {
		sep = "\n"
	}
	if _, err := io.WriteString(w, label+sep); err != nil {
		return err
	}
	if err := render.Write(w, out, v, opts...); err != nil {
		return fmt.Errorf("render %s: %w", path, err)
	}
	return nil
}

func printTable(w io.Writer, logger *slog.Logger, c *cli) error {
	style, ok := render.ParseBorder(c.border)
	if !ok {
		return fmt.Errorf("unknown border style %q", c.border)
	}
	f, err := render.ParseFormat(c.tableFormat)
	if err != nil {
		return err
	}
	logger.Debug("loading table", "path", c.csv, "headers", c.headers)
	table, err := filekit.LoadTable(c.csv, c.headers)
	if err != nil {
		return err
	}
	logger.Debug("loaded table", "path", c.csv, "rows", len(table))
	return render.WriteRows(w, f, table, render.WithBorder(style), render.WithIndent(c.indent))
}
