package config

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/hashicorp/go-multierror"
	"gopkg.in/yaml.v3"

	"github.com/mkarray/mkarray/pkg/log"
)

// Manifest describes one packing run. It can be loaded from a YAML file as an
// alternative to the positional command line.
type Manifest struct {
	// Destination is the base name for the generated files and the archive.
	Destination string `yaml:"destination"`
	// Label names the count macro, the record type and the entry array.
	Label string `yaml:"label"`
	// Prolog is inserted verbatim at the top of the assembly output.
	Prolog string `yaml:"as_prolog"`
	// Section is the section directive line of the assembly output.
	Section string `yaml:"section"`
	// Deflate compresses every source with raw DEFLATE.
	Deflate bool `yaml:"deflate"`
	// Sources are the files to embed, in output order.
	Sources []string `yaml:"sources"`
	// Logging contains logging configuration.
	Logging LoggingConfig `yaml:"logging"`
}

// LoggingConfig configures logging behavior.
type LoggingConfig struct {
	// Level is the log level (debug, info, warn, error).
	Level string `yaml:"level"`
	// Path is the log file path. Empty means stderr.
	Path string `yaml:"path"`
}

var identRe = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// Load reads and decodes the manifest at path. Unknown keys are rejected.
//
// Returns:
//   - *Manifest: The decoded manifest, without defaults applied.
//   - error: An error if the file cannot be read or parsed.
func Load(path string) (*Manifest, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	defer f.Close()

	var m Manifest
	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&m); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return &m, nil
}

// ApplyDefaults fills in values that were left empty.
func ApplyDefaults(m *Manifest) {
	if m.Logging.Level == "" {
		m.Logging.Level = "info"
	}
}

// Validate checks the manifest and reports every problem it finds.
//
// Returns:
//   - error: A multierror listing all problems, or nil if the manifest is valid.
func Validate(m *Manifest) error {
	var merr *multierror.Error

	if m.Destination == "" {
		merr = multierror.Append(merr, fmt.Errorf("destination cannot be empty"))
	}

	switch {
	case m.Label == "":
		merr = multierror.Append(merr, fmt.Errorf("label cannot be empty"))
	case !identRe.MatchString(m.Label):
		merr = multierror.Append(merr, fmt.Errorf("label %q must be a C identifier (letters, digits and underscores, not starting with a digit)", m.Label))
	}

	for i, src := range m.Sources {
		if strings.TrimSpace(src) == "" {
			merr = multierror.Append(merr, fmt.Errorf("source #%d is empty", i+1))
		}
	}

	if !log.ValidLevel(m.Logging.Level) {
		merr = multierror.Append(merr, fmt.Errorf("invalid logging level: %s (allowed: %s)", m.Logging.Level, strings.Join(log.Levels, ", ")))
	}

	return merr.ErrorOrNil()
}
