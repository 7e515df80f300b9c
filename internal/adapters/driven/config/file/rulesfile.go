package file

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/custodia-labs/discrepancy-finder/internal/core/domain"
	"github.com/custodia-labs/discrepancy-finder/internal/rules"
)

// DefaultFileName is the rule set file name inside the config directory.
const DefaultFileName = "rules.toml"

// ErrFileExists is returned when saving would overwrite an existing file.
var ErrFileExists = errors.New("rule set file already exists")

// ruleSetDocument is the TOML layout of a rule set file:
//
//	[[rules]]
//	name = "TitleLength"
//	min_length = 2
type ruleSetDocument struct {
	Rules []map[string]any `toml:"rules"`
}

// RuleSetFile reads and writes a rule set as TOML.
type RuleSetFile struct {
	filePath string
}

// NewRuleSetFile creates a rule set file handle.
// If path is empty, defaults to ~/.discrepancy-finder/rules.toml.
func NewRuleSetFile(path string) (*RuleSetFile, error) {
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		path = filepath.Join(home, ".discrepancy-finder", DefaultFileName)
	}
	return &RuleSetFile{filePath: path}, nil
}

// Path returns the rule set file path.
func (f *RuleSetFile) Path() string {
	return f.filePath
}

// Exists reports whether the file is present.
func (f *RuleSetFile) Exists() bool {
	_, err := os.Stat(f.filePath)
	return err == nil
}

// Load reads the rule configurations in file order.
func (f *RuleSetFile) Load() ([]rules.Config, error) {
	data, err := os.ReadFile(f.filePath)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// Save writes configs to the file. An existing file is only replaced
// when overwrite is set.
func (f *RuleSetFile) Save(configs []rules.Config, overwrite bool) error {
	if !overwrite && f.Exists() {
		return fmt.Errorf("%w: %s", ErrFileExists, f.filePath)
	}

	data, err := Marshal(configs)
	if err != nil {
		return err
	}

	// Ensure directory exists
	if err := os.MkdirAll(filepath.Dir(f.filePath), 0700); err != nil {
		return err
	}
	return os.WriteFile(f.filePath, data, 0600)
}

// Parse decodes a TOML rule set.
func Parse(data []byte) ([]rules.Config, error) {
	var doc ruleSetDocument
	if err := toml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing rule set: %w", err)
	}

	configs := make([]rules.Config, 0, len(doc.Rules))
	for i, entry := range doc.Rules {
		name, _ := entry["name"].(string)
		if name == "" {
			return nil, fmt.Errorf("%w: rule %d has no name", domain.ErrInvalidInput, i+1)
		}

		params := make(map[string]any, len(entry)-1)
		for key, value := range entry {
			if key == "name" {
				continue
			}
			params[key] = normaliseValue(value)
		}
		configs = append(configs, rules.Config{Name: name, Params: params})
	}
	return configs, nil
}

// Marshal encodes configs as a TOML rule set.
func Marshal(configs []rules.Config) ([]byte, error) {
	doc := ruleSetDocument{Rules: make([]map[string]any, 0, len(configs))}
	for _, cfg := range configs {
		entry := make(map[string]any, len(cfg.Params)+1)
		for key, value := range cfg.Params {
			entry[key] = value
		}
		entry["name"] = cfg.Name
		doc.Rules = append(doc.Rules, entry)
	}

	data, err := toml.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("encoding rule set: %w", err)
	}
	return data, nil
}

// normaliseValue converts TOML local dates and datetimes to UTC times.
func normaliseValue(value any) any {
	switch v := value.(type) {
	case toml.LocalDate:
		return time.Date(v.Year, time.Month(v.Month), v.Day, 0, 0, 0, 0, time.UTC)
	case toml.LocalDateTime:
		return v.AsTime(time.UTC)
	default:
		return value
	}
}
