package evaluation

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v2"
)

//go:embed golden_cases.yaml
var defaultGoldenCases []byte

// DefaultGoldenCases returns the cases labeled against the bundled catalog
func DefaultGoldenCases() ([]GoldenCase, error) {
	return ParseGoldenCases(defaultGoldenCases)
}

// LoadGoldenCases reads and parses a golden case set from a YAML file.
func LoadGoldenCases(path string) ([]GoldenCase, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read golden cases file: %w", err)
	}
	return ParseGoldenCases(data)
}

// ParseGoldenCases decodes and validates a golden case set
func ParseGoldenCases(data []byte) ([]GoldenCase, error) {
	var cases []GoldenCase
	if err := yaml.UnmarshalStrict(data, &cases); err != nil {
		return nil, fmt.Errorf("failed to parse golden cases: %w", err)
	}
	if err := ValidateGoldenCases(cases); err != nil {
		return nil, err
	}
	return cases, nil
}

// ValidateGoldenCases checks that all golden cases have required fields and valid values.
func ValidateGoldenCases(cases []GoldenCase) error {
	seen := make(map[string]struct{}, len(cases))

	for i, c := range cases {
		if c.ID == "" {
			return fmt.Errorf("case at index %d: missing id", i)
		}
		if _, dup := seen[c.ID]; dup {
			return fmt.Errorf("case at index %d: duplicate id %q", i, c.ID)
		}
		seen[c.ID] = struct{}{}

		if len(c.Symptoms) == 0 {
			return fmt.Errorf("case %q: no symptoms selected", c.ID)
		}
		if len(c.ExpectedDiseases) == 0 {
			return fmt.Errorf("case %q: no expected diseases", c.ID)
		}
		if !c.Difficulty.IsValid() {
			return fmt.Errorf("case %q: invalid difficulty %q (must be easy/medium/hard)", c.ID, c.Difficulty)
		}
	}

	return nil
}
