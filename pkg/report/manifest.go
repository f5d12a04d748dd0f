// Package report records what a generation run produced, so later commands
// (submit, status) can find the artifacts and track the jobs they became.
package report

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/pepconf/goatgen/pkg/config"
	"github.com/pepconf/goatgen/pkg/render"
)

// ManifestName is the manifest file name inside the output directory
const ManifestName = "goatgen_manifest.yaml"

// Manifest describes one generation run
type Manifest struct {
	RunID        string    `yaml:"run_id"`
	GeneratedAt  time.Time `yaml:"generated_at"`
	Variant      string    `yaml:"variant"`
	Method       string    `yaml:"method"`
	Molecules    []string  `yaml:"molecules"`
	InputFiles   []string  `yaml:"input_files"`
	JobScripts   []string  `yaml:"job_scripts"`
	SubmitHelper string    `yaml:"submit_helper"`

	// JobIDs is filled in after submission
	JobIDs []string `yaml:"job_ids,omitempty"`
}

// New builds a manifest for a generation run over the given molecules and
// artifacts
func New(cfg *config.Config, molecules []string, artifacts []render.Artifact) *Manifest {
	m := &Manifest{
		RunID:       uuid.NewString(),
		GeneratedAt: time.Now().UTC(),
		Variant:     string(cfg.Goat.Variant),
		Method:      cfg.Method.Name,
		Molecules:   molecules,
	}
	for _, a := range artifacts {
		switch {
		case a.Filename == render.SubmitHelperName:
			m.SubmitHelper = a.Filename
		case a.Executable:
			m.JobScripts = append(m.JobScripts, a.Filename)
		default:
			m.InputFiles = append(m.InputFiles, a.Filename)
		}
	}
	return m
}

// Save writes the manifest into the output directory
func (m *Manifest) Save(dir string) error {
	data, err := yaml.Marshal(m)
	if err != nil {
		return fmt.Errorf("failed to marshal manifest: %w", err)
	}
	path := filepath.Join(dir, ManifestName)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write manifest: %w", err)
	}
	return nil
}

// Load reads the manifest from an output directory
func Load(dir string) (*Manifest, error) {
	path := filepath.Join(dir, ManifestName)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("no manifest found in %s (run generate first)", dir)
		}
		return nil, fmt.Errorf("failed to read manifest: %w", err)
	}

	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to parse manifest: %w", err)
	}
	return &m, nil
}

// RecordJobIDs stores the submitted job ids and rewrites the manifest
func (m *Manifest) RecordJobIDs(dir string, jobIDs []string) error {
	m.JobIDs = jobIDs
	return m.Save(dir)
}
