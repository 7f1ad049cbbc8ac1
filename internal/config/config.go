// Package config loads gcssc settings from an optional CUE file.
//
// A configuration file looks like this:
//
//	emit:       "ast"
//	astFormat:  "tree"
//	logLevel:   "debug"
//	traceLevel: "info"
//	header:     false
//
// The file is validated against a closed schema, so unknown fields and
// values outside the allowed sets are rejected.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
)

// DefaultFile is the configuration file looked up in the working
// directory when no -config flag is given.
const DefaultFile = "gcss.cue"

//go:embed schema.cue
var schemaSrc string

// ErrNotFound is returned by Load when the configuration file does not exist.
var ErrNotFound = errors.New("config file not found")

// Config holds the settings that can be given in a configuration file.
type Config struct {
	Emit       string `json:"emit"`       // "ast" or "tokens"
	ASTFormat  string `json:"astFormat"`  // "text", "json" or "tree"
	LogLevel   string `json:"logLevel"`   // slog level name
	TraceLevel string `json:"traceLevel"` // schuko trace level name
	Journal    bool   `json:"journal"`    // also log to the systemd journal
	Header     bool   `json:"header"`     // write the GCSS header comment to output files
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		Emit:       "ast",
		ASTFormat:  "text",
		LogLevel:   "warn",
		TraceLevel: "error",
		Journal:    false,
		Header:     true,
	}
}

// Load reads and validates the CUE file at path. Fields not present in
// the file keep their default values.
func Load(path string) (Config, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return Default(), fmt.Errorf("reading config: %w", err)
	}
	return Parse(path, content)
}

// Parse compiles content as CUE, validates it against the schema and
// merges it over Default. filename is used in error messages only.
func Parse(filename string, content []byte) (Config, error) {
	cfg := Default()

	ctx := cuecontext.New()
	schema := ctx.CompileString("close({" + schemaSrc + "})")
	if err := schema.Err(); err != nil {
		return cfg, fmt.Errorf("compiling config schema: %w", err)
	}

	value := ctx.CompileBytes(content, cue.Filename(filename))
	if err := value.Err(); err != nil {
		return cfg, fmt.Errorf("compiling %s: %w", filename, err)
	}
	value = schema.Unify(value)
	if err := value.Validate(cue.Concrete(true)); err != nil {
		return cfg, fmt.Errorf("validating %s: %w", filename, err)
	}

	for _, f := range []struct {
		path   string
		target any
	}{
		{"emit", &cfg.Emit},
		{"astFormat", &cfg.ASTFormat},
		{"logLevel", &cfg.LogLevel},
		{"traceLevel", &cfg.TraceLevel},
		{"journal", &cfg.Journal},
		{"header", &cfg.Header},
	} {
		if err := assign(value, f.path, f.target); err != nil {
			return Default(), fmt.Errorf("decoding %s: %w", filename, err)
		}
	}
	return cfg, nil
}

// assign decodes the field at path into target if the field is present.
func assign(root cue.Value, path string, target any) error {
	v := root.LookupPath(cue.ParsePath(path))
	if !v.Exists() {
		return nil
	}
	return v.Decode(target)
}
