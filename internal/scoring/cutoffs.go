package scoring

import (
	_ "embed"
	"fmt"
	"os"
	"sync"

	"gopkg.in/yaml.v3"
)

// Status labels a domain score against its clinical cutoffs.
type Status string

const (
	StatusConcerning Status = "concerning"
	StatusBorderline Status = "borderline"
	StatusTypical    Status = "typical"
)

// DomainCutoff holds the score thresholds for one domain. Borderline is nil
// for two-tier domains (impact), which classify straight into
// concerning/typical.
type DomainCutoff struct {
	Borderline *int `yaml:"borderline"`
	Concerning int  `yaml:"concerning"`
}

// CutoffTable maps domains to their clinical thresholds. The table is
// configuration, not code: the engine never hard-codes a threshold.
type CutoffTable struct {
	Version int                     `yaml:"version"`
	Domains map[string]DomainCutoff `yaml:"domains"`
}

// Classify assigns a status to a score. Classification is monotonic: a
// higher score never moves toward typical.
func (t *CutoffTable) Classify(domain string, score int) (Status, error) {
	c, ok := t.Domains[domain]
	if !ok {
		return "", fmt.Errorf("no cutoffs configured for domain %q", domain)
	}
	switch {
	case score >= c.Concerning:
		return StatusConcerning, nil
	case c.Borderline != nil && score >= *c.Borderline:
		return StatusBorderline, nil
	default:
		return StatusTypical, nil
	}
}

//go:embed cutoffs.yaml
var defaultCutoffsYAML []byte

var (
	defaultOnce    sync.Once
	defaultCutoffs *CutoffTable
	defaultErr     error
)

// DefaultCutoffs returns the cutoff table shipped with the binary.
func DefaultCutoffs() (*CutoffTable, error) {
	defaultOnce.Do(func() {
		defaultCutoffs, defaultErr = parseCutoffs(defaultCutoffsYAML)
		if defaultErr != nil {
			defaultErr = fmt.Errorf("embedded cutoff table: %w", defaultErr)
		}
	})
	return defaultCutoffs, defaultErr
}

// LoadCutoffs reads a cutoff table from a YAML file, for deployments that
// source their own clinical thresholds.
func LoadCutoffs(path string) (*CutoffTable, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read cutoff table: %w", err)
	}
	t, err := parseCutoffs(raw)
	if err != nil {
		return nil, fmt.Errorf("cutoff table %s: %w", path, err)
	}
	return t, nil
}

func parseCutoffs(raw []byte) (*CutoffTable, error) {
	var t CutoffTable
	if err := yaml.Unmarshal(raw, &t); err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}
	if len(t.Domains) == 0 {
		return nil, fmt.Errorf("no domains defined")
	}
	for domain, c := range t.Domains {
		if c.Concerning < 0 {
			return nil, fmt.Errorf("domain %q: negative concerning threshold", domain)
		}
		if c.Borderline != nil && *c.Borderline > c.Concerning {
			return nil, fmt.Errorf("domain %q: borderline above concerning", domain)
		}
	}
	return &t, nil
}
