package repositories

import (
	_ "embed"
	"fmt"

	"github.com/rohits-web03/roboshow/internal/models"
	"gopkg.in/yaml.v3"
)

//go:embed fixtures/projects.yaml
var sampleProjectsYAML []byte

// SampleProjects decodes the bundled gallery fixtures. The aggregate fields
// are preset and do not match the short feedback lists.
func SampleProjects() ([]models.Project, error) {
	var projects []models.Project
	if err := yaml.Unmarshal(sampleProjectsYAML, &projects); err != nil {
		return nil, fmt.Errorf("failed to decode sample projects: %w", err)
	}
	return projects, nil
}
