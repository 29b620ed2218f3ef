// Package plan loads the YAML manifest describing a batch of statements.
package plan

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Statement is one statement file to process. Year is only required for
// layouts whose statements omit the year (mlgita).
type Statement struct {
	File   string `yaml:"file"`
	Layout string `yaml:"layout"`
	Year   int    `yaml:"year,omitempty"`
}

// Plan is a batch of statements plus an optional output directory.
type Plan struct {
	Output     string      `yaml:"output,omitempty"`
	Statements []Statement `yaml:"statements"`
}

func Load(path string) (*Plan, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read plan file: %w", err)
	}

	var p Plan
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("failed to parse yaml: %w", err)
	}

	if len(p.Statements) == 0 {
		return nil, fmt.Errorf("plan has no statements")
	}
	for i, st := range p.Statements {
		if st.File == "" {
			return nil, fmt.Errorf("statement %d has no file", i+1)
		}
		if st.Layout == "" {
			return nil, fmt.Errorf("statement %d has no layout", i+1)
		}
	}
	return &p, nil
}

func (p *Plan) Print() {
	for i, st := range p.Statements {
		if st.Year != 0 {
			fmt.Printf("[%d] layout=%s file=%s year=%d\n", i+1, st.Layout, st.File, st.Year)
			continue
		}
		fmt.Printf("[%d] layout=%s file=%s\n", i+1, st.Layout, st.File)
	}
}
