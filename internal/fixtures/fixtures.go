// Package fixtures decodes expression and alignment fixtures from YAML or
// TOML and replays them against the expr and editdist packages.
package fixtures

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/dnc/expr"
)

// Sentinel errors for fixture loading.
var (
	// ErrUnknownFormat indicates a file extension other than .yaml, .yml or .toml.
	ErrUnknownFormat = errors.New("fixtures: unknown file format")

	// ErrBadFixture indicates a fixture with an unknown dialect, grammar,
	// division policy or error name, or one without an expectation.
	ErrBadFixture = errors.New("fixtures: invalid fixture")
)

//go:embed default.yaml
var defaultYAML []byte

// Format is a fixture file encoding.
type Format int

const (
	FormatYAML Format = iota
	FormatTOML
)

// String returns the format name.
func (f Format) String() string {
	if f == FormatTOML {
		return "toml"
	}

	return "yaml"
}

// Expression is one evaluator fixture.
// Exactly one of Want and Error must be set.
type Expression struct {
	Text    string   `yaml:"text" toml:"text"`
	Dialect string   `yaml:"dialect,omitempty" toml:"dialect,omitempty"`
	Grammar string   `yaml:"grammar,omitempty" toml:"grammar,omitempty"`
	DivZero string   `yaml:"divzero,omitempty" toml:"divzero,omitempty"`
	Want    *float64 `yaml:"want,omitempty" toml:"want,omitempty"`
	Error   string   `yaml:"error,omitempty" toml:"error,omitempty"`
}

// Alignment is one edit-distance fixture. An empty Script is not checked.
type Alignment struct {
	X        string `yaml:"x" toml:"x"`
	Y        string `yaml:"y" toml:"y"`
	Distance int    `yaml:"distance" toml:"distance"`
	Script   string `yaml:"script,omitempty" toml:"script,omitempty"`
}

// Set is the top-level fixture document.
type Set struct {
	Expressions []Expression `yaml:"expressions" toml:"expressions"`
	Alignments  []Alignment  `yaml:"alignments" toml:"alignments"`
}

// errorNames maps fixture error names to evaluator sentinels.
var errorNames = map[string]error{
	"parse":    expr.ErrParse,
	"eof":      expr.ErrUnexpectedEOF,
	"paren":    expr.ErrUnbalancedParen,
	"token":    expr.ErrUnexpectedToken,
	"literal":  expr.ErrBadLiteral,
	"trailing": expr.ErrTrailingTokens,
	"divzero":  expr.ErrDivisionByZero,
}

// DetectFormat determines the format from the file extension.
func DetectFormat(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, path)
	}
}

// Decode parses data in the given format and validates every fixture.
func Decode(data []byte, format Format) (Set, error) {
	var set Set
	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, &set); err != nil {
			return Set{}, fmt.Errorf("fixtures: YAML parse error: %w", err)
		}
	case FormatTOML:
		if err := toml.Unmarshal(data, &set); err != nil {
			return Set{}, fmt.Errorf("fixtures: TOML parse error: %w", err)
		}
	default:
		return Set{}, fmt.Errorf("%w: %d", ErrUnknownFormat, int(format))
	}

	if err := set.validate(); err != nil {
		return Set{}, err
	}

	return set, nil
}

// Load reads and decodes a fixture file.
func Load(path string) (Set, error) {
	format, err := DetectFormat(path)
	if err != nil {
		return Set{}, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Set{}, fmt.Errorf("fixtures: read %s: %w", path, err)
	}

	return Decode(data, format)
}

// Default returns the embedded fixture set.
func Default() (Set, error) {
	return Decode(defaultYAML, FormatYAML)
}

// validate checks every fixture resolves to options and has one expectation.
func (s Set) validate() error {
	for i, e := range s.Expressions {
		if _, err := e.Options(); err != nil {
			return fmt.Errorf("expression %d (%q): %w", i, e.Text, err)
		}
		if (e.Want == nil) == (e.Error == "") {
			return fmt.Errorf("%w: expression %d (%q) needs exactly one of want or error", ErrBadFixture, i, e.Text)
		}
		if e.Error != "" {
			if _, ok := errorNames[e.Error]; !ok {
				return fmt.Errorf("%w: expression %d: unknown error %q", ErrBadFixture, i, e.Error)
			}
		}
		if e.Error == "divzero" && strings.EqualFold(e.DivZero, "ieee") {
			return fmt.Errorf("%w: expression %d: divzero error cannot occur under ieee division", ErrBadFixture, i)
		}
	}
	for i, a := range s.Alignments {
		if a.Distance < 0 {
			return fmt.Errorf("%w: alignment %d: negative distance", ErrBadFixture, i)
		}
	}

	return nil
}

// Options resolves the textual dialect, grammar and division policy.
// Empty strings select the evaluator defaults.
func (e Expression) Options() (expr.Options, error) {
	opts := expr.DefaultOptions()
	var err error
	if opts.Dialect, err = ParseDialect(e.Dialect); err != nil {
		return opts, err
	}
	if opts.Grammar, err = ParseGrammar(e.Grammar); err != nil {
		return opts, err
	}
	if opts.DivZero, err = ParseDivZero(e.DivZero); err != nil {
		return opts, err
	}

	return opts, nil
}

// ParseDialect accepts "", "infix" or "prefix".
func ParseDialect(s string) (expr.Dialect, error) {
	switch strings.ToLower(s) {
	case "", "infix":
		return expr.Infix, nil
	case "prefix":
		return expr.Prefix, nil
	default:
		return expr.Infix, fmt.Errorf("%w: unknown dialect %q", ErrBadFixture, s)
	}
}

// ParseGrammar accepts "", "right" or "paired".
func ParseGrammar(s string) (expr.Grammar, error) {
	switch strings.ToLower(s) {
	case "", "right":
		return expr.RightRecursive, nil
	case "paired":
		return expr.PairedTerms, nil
	default:
		return expr.RightRecursive, fmt.Errorf("%w: unknown grammar %q", ErrBadFixture, s)
	}
}

// ParseDivZero accepts "", "error" or "ieee".
func ParseDivZero(s string) (expr.DivZeroPolicy, error) {
	switch strings.ToLower(s) {
	case "", "error":
		return expr.DivZeroError, nil
	case "ieee":
		return expr.DivZeroIEEE, nil
	default:
		return expr.DivZeroError, fmt.Errorf("%w: unknown division policy %q", ErrBadFixture, s)
	}
}
