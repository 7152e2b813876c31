// Package rules loads banks of check definitions from JSON and
// YAML files and validates them against a check engine before
// use.
package rules

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"digital.vasic.typecheck/pkg/assertion"
)

// Bank is the on-disk structure for a bank of check
// definitions.
type Bank struct {
	Version string                 `json:"version" yaml:"version"`
	Checks  []assertion.Definition `json:"checks" yaml:"checks"`
}

// CheckResolver reports whether a check type is known. The
// assertion.DefaultEngine satisfies it.
type CheckResolver interface {
	HasEvaluator(checkType string) bool
}

// LoadBankFromFile reads a single bank file. The extension
// selects the codec: .yaml/.yml parse as YAML, everything else
// as JSON.
func LoadBankFromFile(path string) (*Bank, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf(
			"failed to read bank file %s: %w", path, err,
		)
	}

	var bank Bank

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &bank); err != nil {
			return nil, fmt.Errorf(
				"failed to parse YAML bank %s: %w",
				path, err,
			)
		}
	default:
		if err := json.Unmarshal(data, &bank); err != nil {
			return nil, fmt.Errorf(
				"failed to parse JSON bank %s: %w",
				path, err,
			)
		}
	}

	return &bank, nil
}

// LoadBanksFromDir loads all .json, .yaml, and .yml bank files
// from a directory. It does not recurse into subdirectories.
func LoadBanksFromDir(dir string) ([]*Bank, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf(
			"failed to read directory %s: %w", dir, err,
		)
	}

	var banks []*Bank

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		ext := strings.ToLower(filepath.Ext(entry.Name()))
		if ext != ".json" && ext != ".yaml" && ext != ".yml" {
			continue
		}

		p := filepath.Join(dir, entry.Name())
		bank, err := LoadBankFromFile(p)
		if err != nil {
			return nil, fmt.Errorf(
				"failed to load %s: %w", p, err,
			)
		}

		banks = append(banks, bank)
	}

	return banks, nil
}

// Validate checks every definition in the bank against the
// resolver: the check type must be registered, and the element
// checks named by array_of and one_of parameters must resolve
// too.
func Validate(bank *Bank, resolver CheckResolver) error {
	for i, def := range bank.Checks {
		if !resolver.HasEvaluator(def.Type) {
			return fmt.Errorf(
				"check %d (target %s): unknown check type: %s",
				i, def.Target, def.Type,
			)
		}

		switch def.Type {
		case "array_of":
			name := strings.TrimSpace(def.Param)
			if !resolver.HasEvaluator(name) {
				return fmt.Errorf(
					"check %d (target %s): unknown element check: %s",
					i, def.Target, name,
				)
			}
		case "one_of":
			for _, raw := range strings.Split(def.Param, ",") {
				name := strings.TrimSpace(raw)
				if !resolver.HasEvaluator(name) {
					return fmt.Errorf(
						"check %d (target %s): unknown check in one_of: %s",
						i, def.Target, name,
					)
				}
			}
		case "type_is":
			if strings.TrimSpace(def.Param) == "" {
				return fmt.Errorf(
					"check %d (target %s): type_is requires a param",
					i, def.Target,
				)
			}
		}
	}

	return nil
}
