// Package report holds the presentation adapters: the console renderer and
// the persisted profile artifact. The engine's data model stays untouched
// here; every ColumnProfile attribute round-trips through the artifact.
package report

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"

	"dq-check/internal/model"
)

// Artifact is the durable output of one profiling run.
type Artifact struct {
	RunID       string              `json:"run_id"`
	GeneratedAt time.Time           `json:"generated_at"`
	Source      *model.LoadMeta     `json:"source,omitempty"`
	Profile     *model.TableProfile `json:"profile"`
	Findings    []model.Finding     `json:"findings,omitempty"`
}

// NewArtifact stamps a profile with a fresh run ID and UTC timestamp.
func NewArtifact(profile *model.TableProfile, source *model.LoadMeta, findings []model.Finding) *Artifact {
	return &Artifact{
		RunID:       uuid.NewString(),
		GeneratedAt: time.Now().UTC(),
		Source:      source,
		Profile:     profile,
		Findings:    findings,
	}
}

// Write serializes the artifact as indented JSON.
func (a *Artifact) Write(path string) error {
	data, err := json.MarshalIndent(a, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal profile artifact: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
