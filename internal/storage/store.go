package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/san-kum/ferrosim/internal/ferro"
	"github.com/san-kum/ferrosim/internal/sweep"
)

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RunMetadata struct {
	ID        string             `json:"id"`
	Preset    string             `json:"preset"`
	Timestamp time.Time          `json:"timestamp"`
	Dt        float64            `json:"dt"`
	Duration  float64            `json:"duration"`
	StartX    float64            `json:"start_x"`
	ScanSpeed float64            `json:"scan_speed"`
	Coupling  float64            `json:"coupling"`
	Metrics   map[string]float64 `json:"metrics"`
}

var seriesHeader = []string{"time", "position", "polarization", "magnetization", "strain", "energy"}

func (s *Store) Save(preset string, cfg sweep.Config, coupling float64, result *sweep.Result) (string, error) {
	runID := fmt.Sprintf("%s_%d", preset, time.Now().Unix())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:        runID,
		Preset:    preset,
		Timestamp: time.Now(),
		Dt:        cfg.Dt,
		Duration:  cfg.Duration,
		StartX:    cfg.StartX,
		ScanSpeed: cfg.ScanSpeed,
		Coupling:  coupling,
		Metrics:   result.Metrics,
	}

	metaFile, err := os.Create(filepath.Join(runDir, "metadata.json"))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	csvFile, err := os.Create(filepath.Join(runDir, "series.csv"))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	defer w.Flush()

	if err := w.Write(seriesHeader); err != nil {
		return "", err
	}

	for _, smp := range result.Samples {
		row := []string{
			strconv.FormatFloat(smp.Time, 'g', -1, 64),
			strconv.FormatFloat(smp.Position, 'g', -1, 64),
			strconv.FormatFloat(smp.Polarization, 'g', -1, 64),
			strconv.FormatFloat(smp.Magnetization, 'g', -1, 64),
			strconv.FormatFloat(smp.Strain, 'g', -1, 64),
			strconv.FormatFloat(smp.Energy, 'g', -1, 64),
		}
		if err := w.Write(row); err != nil {
			return "", err
		}
	}

	return runID, nil
}

func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		data, err := os.ReadFile(filepath.Join(s.baseDir, entry.Name(), "metadata.json"))
		if err != nil {
			continue
		}

		var meta RunMetadata
		if err := json.Unmarshal(data, &meta); err != nil {
			continue
		}

		runs = append(runs, meta)
	}

	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, "metadata.json"))
	if err != nil {
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}

	return &meta, nil
}

func (s *Store) LoadSeries(runID string) ([]ferro.Sample, error) {
	file, err := os.Open(filepath.Join(s.baseDir, runID, "series.csv"))
	if err != nil {
		return nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}

	if len(records) < 2 {
		return []ferro.Sample{}, nil
	}

	samples := make([]ferro.Sample, 0, len(records)-1)
	for _, record := range records[1:] {
		if len(record) < len(seriesHeader) {
			continue
		}

		vals := make([]float64, len(seriesHeader))
		ok := true
		for i := range vals {
			v, err := strconv.ParseFloat(record[i], 64)
			if err != nil {
				ok = false
				break
			}
			vals[i] = v
		}
		if !ok {
			continue
		}

		samples = append(samples, ferro.Sample{
			Time:          vals[0],
			Position:      vals[1],
			Polarization:  vals[2],
			Magnetization: vals[3],
			Strain:        vals[4],
			Energy:        vals[5],
		})
	}

	return samples, nil
}
