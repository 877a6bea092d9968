package storage

import (
	"encoding/json"
	"io"

	"github.com/san-kum/ferrosim/internal/ferro"
)

type ExportData struct {
	Preset   string             `json:"preset"`
	Dt       float64            `json:"dt"`
	Duration float64            `json:"duration"`
	Steps    int                `json:"steps"`
	Samples  []ferro.Sample     `json:"samples"`
	Metrics  map[string]float64 `json:"metrics"`
}

// ExportJSON writes a stored run to w as indented JSON.
func ExportJSON(w io.Writer, meta *RunMetadata, samples []ferro.Sample) error {
	data := ExportData{
		Preset:   meta.Preset,
		Dt:       meta.Dt,
		Duration: meta.Duration,
		Steps:    len(samples),
		Samples:  samples,
		Metrics:  meta.Metrics,
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}
