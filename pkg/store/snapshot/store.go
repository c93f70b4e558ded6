package snapshot

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/fin-tools/expense-atlas/pkg/adapters"
	"github.com/fin-tools/expense-atlas/pkg/models/api"
	"github.com/fin-tools/expense-atlas/pkg/models/domain"
)

// Load reads an analyzer snapshot from a JSON file and maps it to the domain
// model. The file carries the analyzer's wire format, so field tolerance
// (non-numeric amounts and the like) is handled by the adapter, not here.
func Load(path string) (domain.AnalysisResult, error) {
	f, err := os.Open(path)
	if err != nil {
		return domain.AnalysisResult{}, fmt.Errorf("failed to open snapshot: %w", err)
	}
	defer f.Close()

	var res api.AnalysisResult
	if err := json.NewDecoder(f).Decode(&res); err != nil {
		return domain.AnalysisResult{}, fmt.Errorf("failed to decode snapshot %s: %w", path, err)
	}

	return adapters.MapAnalysisResultApiToDomain(res), nil
}
