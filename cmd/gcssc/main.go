// Package main implements the GCSS front-end command. It scans or parses a
// .gcss file and writes the token stream or the syntax tree.
package main

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/npillmayer/schuko/tracing"

	"github.com/KappaDesigns/Kappa-GCSS/internal/config"
	"github.com/KappaDesigns/Kappa-GCSS/internal/logs"
	"github.com/KappaDesigns/Kappa-GCSS/internal/syntax"
)

// Version information
const Version = "0.1.0-dev"

// Header is written at the top of every output file unless disabled.
const Header = "//KAPPA-GCSS CONSTRAINT BASED CSS \n" +
	"//CREATED WITH 💖 @ https://github.com/KappaDesigns/Kappa-GCSS\n"

// options holds the command-line flags. Empty strings mean "not given".
type options struct {
	emitTokens bool
	emitAST    bool
	astFormat  string
	configPath string
	logLevel   string
	trace      string
	version    bool
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes gcssc with args and returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	var opts options
	fs := flag.NewFlagSet("gcssc", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.BoolVar(&opts.emitTokens, "emit-tokens", false, "Output token stream")
	fs.BoolVar(&opts.emitAST, "emit-ast", false, "Output AST (default)")
	fs.StringVar(&opts.astFormat, "ast-format", "", "AST output format (text, json or tree)")
	fs.StringVar(&opts.configPath, "config", "", "CUE configuration file (default "+config.DefaultFile+" if present)")
	fs.StringVar(&opts.logLevel, "log-level", "", "Log level (debug, info, warn or error)")
	fs.StringVar(&opts.trace, "trace", "", "Parser trace level (debug, info or error)")
	fs.BoolVar(&opts.version, "version", false, "Print version")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "GCSS front end %s\n\n", Version)
		fmt.Fprintf(stderr, "Usage: gcssc [options] <input.gcss> [output]\n\n")
		fmt.Fprintf(stderr, "Options:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 1
	}

	if opts.version {
		fmt.Fprintf(stdout, "gcssc version %s\n", Version)
		fmt.Fprintf(stdout, "go version %s\n", runtime.Version())
		return 0
	}

	cfg, err := loadConfig(opts)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}
	level, err := logs.ParseLevel(cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}
	logger := logs.New(logs.Options{Writer: stderr, Level: level, Journal: cfg.Journal})
	traceLogger := logs.New(logs.Options{Writer: stderr, Level: slog.LevelDebug, Journal: cfg.Journal})
	logs.Install(traceLogger.With("trace", "gcss.syntax"), tracing.TraceLevelFromString(cfg.TraceLevel))

	rest := fs.Args()
	if len(rest) == 0 || len(rest) > 2 {
		fmt.Fprintln(stderr, "error: expected an input file and an optional output file")
		fmt.Fprintln(stderr, "usage: gcssc [options] <input.gcss> [output]")
		return 1
	}
	input := rest[0]

	if err := verifyInput(input); err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}
	src, err := os.ReadFile(input)
	if err != nil {
		fmt.Fprintf(stderr, "error: reading input: %v\n", err)
		return 1
	}

	start := time.Now()
	var buf bytes.Buffer
	switch cfg.Emit {
	case "tokens":
		err = runEmitTokens(&buf, input, src)
	default:
		err = runEmitAST(&buf, input, src, cfg.ASTFormat)
	}
	if err != nil {
		// Tokens scanned before a lexing error still go to stdout; an
		// output file is only created on success.
		if len(rest) == 1 {
			_, _ = stdout.Write(buf.Bytes())
		}
		fmt.Fprintf(stderr, "%v\n", err)
		logger.Debug("failed", "file", input, "error", err)
		return 1
	}

	if len(rest) == 2 {
		logger.Debug("writing output", "path", rest[1])
		if err := writeOutput(rest[1], cfg.Header, buf.Bytes()); err != nil {
			fmt.Fprintf(stderr, "error: %v\n", err)
			return 1
		}
	} else if _, err := stdout.Write(buf.Bytes()); err != nil {
		fmt.Fprintf(stderr, "error: writing output: %v\n", err)
		return 1
	}
	logger.Info("done", "file", input, "emit", cfg.Emit, "elapsed", time.Since(start))
	return 0
}

// loadConfig reads the configuration file and applies flags on top of it.
// A missing default file is not an error; a missing explicit file is.
func loadConfig(opts options) (config.Config, error) {
	path := opts.configPath
	if path == "" {
		path = config.DefaultFile
	}
	cfg, err := config.Load(path)
	if err != nil {
		if opts.configPath != "" || !errors.Is(err, config.ErrNotFound) {
			return cfg, err
		}
		cfg = config.Default()
	}

	switch {
	case opts.emitTokens:
		cfg.Emit = "tokens"
	case opts.emitAST:
		cfg.Emit = "ast"
	}
	if opts.astFormat != "" {
		cfg.ASTFormat = opts.astFormat
	}
	if opts.logLevel != "" {
		cfg.LogLevel = opts.logLevel
	}
	if opts.trace != "" {
		cfg.TraceLevel = opts.trace
	}

	switch cfg.ASTFormat {
	case "text", "json", "tree":
	default:
		return cfg, fmt.Errorf("unknown AST format %q (want text, json or tree)", cfg.ASTFormat)
	}
	return cfg, nil
}

// verifyInput checks that the input file exists.
func verifyInput(path string) error {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("input file %q does not exist", path)
		}
		return fmt.Errorf("checking input: %w", err)
	}
	return nil
}

// writeOutput writes body to the file at path, preceded by the GCSS
// header if header is set.
func writeOutput(path string, header bool, body []byte) (err error) {
	f, err := openOutput(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("closing output: %w", cerr)
		}
	}()

	if header {
		if _, err := io.WriteString(f, Header+"\n"); err != nil {
			return fmt.Errorf("writing output: %w", err)
		}
	}
	if _, err := f.Write(body); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	return nil
}

// openOutput creates or truncates the output file, creating missing
// parent directories first.
func openOutput(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("creating output: %w", err)
	}
	return f, nil
}

// runEmitAST parses src and writes the syntax tree in the given format.
func runEmitAST(w io.Writer, filename string, src []byte, format string) error {
	sheet, err := syntax.Parse(filename, src)
	if err != nil {
		return err
	}

	switch format {
	case "json":
		return syntax.FprintJSON(w, sheet)
	case "tree":
		return syntax.Ftree(w, sheet)
	default:
		syntax.Fprint(w, sheet)
	}
	return nil
}

// runEmitTokens scans src and prints all tokens with positions. Tokens
// scanned before a lexing error are printed before the error is returned.
func runEmitTokens(w io.Writer, filename string, src []byte) error {
	toks, err := syntax.Tokenize(filename, src)

	// Print header
	fmt.Fprintf(w, "%-20s %-12s %s\n", "POSITION", "TOKEN", "LITERAL")
	fmt.Fprintf(w, "%-20s %-12s %s\n", strings.Repeat("-", 20), strings.Repeat("-", 12), strings.Repeat("-", 20))

	for _, tok := range toks {
		fmt.Fprintf(w, "%-20s %-12s %s\n", tok.Pos, tok.Kind, formatLiteral(tok.Text))
	}
	return err
}

// formatLiteral quotes a token text with control characters made visible.
func formatLiteral(lit string) string {
	if lit == "" {
		return "\"\""
	}

	var b strings.Builder
	b.WriteRune('"')
	for _, r := range lit {
		switch r {
		case '\n':
			b.WriteString("\\n")
		case '\t':
			b.WriteString("\\t")
		case '\r':
			b.WriteString("\\r")
		case '\\':
			b.WriteString("\\\\")
		case '"':
			b.WriteString("\\\"")
		default:
			b.WriteRune(r)
		}
	}
	b.WriteRune('"')
	return b.String()
}
