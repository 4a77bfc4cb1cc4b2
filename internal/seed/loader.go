package seed

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/vmedia/showreel/internal/domain"
)

// Loader reads an operator-supplied seed dataset from a YAML file.
// The file overrides the bundled defaults; the shape mirrors domain.Dataset.
type Loader struct {
	filePath string
}

// NewLoader creates a seed loader for filePath.
func NewLoader(filePath string) *Loader {
	return &Loader{
		filePath: filePath,
	}
}

// Load reads and parses the seed file. Entries missing required fields are
// dropped with no error so one bad row cannot block startup; the profile is
// merged over the bundled record so partial files stay field-complete.
func (l *Loader) Load() (domain.Dataset, error) {
	data, err := os.ReadFile(l.filePath)
	if err != nil {
		return domain.Dataset{}, fmt.Errorf("failed to read seed file: %w", err)
	}

	var ds domain.Dataset
	if err := yaml.Unmarshal(data, &ds); err != nil {
		return domain.Dataset{}, fmt.Errorf("failed to parse seed yaml: %w", err)
	}

	def := Default()

	kept := make([]domain.Entry, 0, len(ds.Entries))
	for _, e := range ds.Entries {
		if e.Validate() == nil {
			kept = append(kept, e)
		}
	}
	if len(kept) == 0 {
		kept = def.Entries
	}

	return domain.Dataset{
		Entries: kept,
		Profile: domain.MergeProfileDefaults(ds.Profile, def.Profile),
	}, nil
}
