package batch

import (
	"encoding/json"
	"os"
)

// ManifestEntry represents one written image in the output manifest.
type ManifestEntry struct {
	Name   string `json:"name"`
	Kind   string `json:"kind"`
	Frame  int    `json:"frame,omitempty"`
	TimeMS int64  `json:"time_ms,omitempty"`
	Image  string `json:"image"`
}

// WriteManifest writes manifest.json listing the jobs that succeeded.
// results must be parallel to jobs.
func WriteManifest(path string, jobs []Job, results []Result) error {
	entries := make([]ManifestEntry, 0, len(jobs))
	for i, j := range jobs {
		if i < len(results) && !results[i].Success {
			continue
		}
		entries = append(entries, ManifestEntry{
			Name:   j.Name,
			Kind:   j.Kind,
			Frame:  j.Frame,
			TimeMS: j.At.Milliseconds(),
			Image:  j.Path,
		})
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
