// Package config loads the optional advisor configuration file.
//
// The file is YAML. Before decoding, it is unified with an embedded CUE
// schema so that malformed settings are rejected with a field-level message
// instead of surfacing later as odd runtime behavior.
package config

import (
	_ "embed"
	"fmt"
	"os"
	"unicode/utf8"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueyaml "cuelang.org/go/encoding/yaml"
	"gopkg.in/yaml.v3"

	"github.com/mideakin/advisor/internal/catalog"
)

//go:embed schema.cue
var schemaSource string

// Config holds the advisor settings. The zero value is a valid
// configuration: no default catalog, comma delimiter.
type Config struct {
	Catalog CatalogConfig `yaml:"catalog"`
	Export  ExportConfig  `yaml:"export"`
}

// CatalogConfig configures catalog sources.
type CatalogConfig struct {
	// Path is the default catalog file used by one-shot commands when no
	// file argument is given.
	Path string `yaml:"path"`
	// Delimiter is the field separator, a single character. Empty means
	// comma.
	Delimiter string `yaml:"delimiter"`
}

// ExportConfig configures the snapshot export.
type ExportConfig struct {
	// Path is the default SQLite database written by the export command.
	Path string `yaml:"path"`
}

// DelimiterRune returns the configured delimiter as a rune, defaulting to a
// comma.
func (c CatalogConfig) DelimiterRune() rune {
	if c.Delimiter == "" {
		return catalog.DefaultDelimiter
	}
	r, _ := utf8.DecodeRuneInString(c.Delimiter)
	return r
}

// ValidationError reports a config file that does not satisfy the schema.
type ValidationError struct {
	Path    string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid config %s: %s", e.Path, e.Message)
}

// Load reads the YAML config at path, validates it against the embedded
// schema, and decodes it.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading config: %w", err)
	}
	if err := validate(path, data); err != nil {
		return Config{}, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("decoding config: %w", err)
	}
	return cfg, nil
}

// validate unifies the file with the embedded schema. The schema is a CUE
// definition, so it is closed: unknown fields are rejected along with
// ill-typed values.
func validate(path string, data []byte) error {
	ctx := cuecontext.New()

	schema := ctx.CompileString(schemaSource)
	if err := schema.Err(); err != nil {
		return fmt.Errorf("compiling config schema: %w", err)
	}
	schema = schema.LookupPath(cue.ParsePath("#Config"))
	if err := schema.Err(); err != nil {
		return fmt.Errorf("config schema is missing #Config: %w", err)
	}

	file, err := cueyaml.Extract(path, data)
	if err != nil {
		return &ValidationError{Path: path, Message: err.Error()}
	}
	value := ctx.BuildFile(file)
	if err := value.Err(); err != nil {
		return &ValidationError{Path: path, Message: err.Error()}
	}

	unified := schema.Unify(value)
	if err := unified.Validate(cue.Concrete(true)); err != nil {
		return &ValidationError{Path: path, Message: err.Error()}
	}
	return nil
}
