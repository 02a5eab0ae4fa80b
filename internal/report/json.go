package report

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/bayneri/boxoffice/internal/evaluate"
)

func WriteJSON(path string, payload interface{}) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')
	return os.WriteFile(path, data, 0644)
}

// WriteSummaryJSON writes the result in the shape ReadResults expects back.
func WriteSummaryJSON(path string, result evaluate.Result) error {
	if result.SchemaVersion == "" {
		result.SchemaVersion = evaluate.SchemaVersion
	}
	if result.Notes == nil {
		result.Notes = []string{}
	}
	return WriteJSON(path, result)
}
