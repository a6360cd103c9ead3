package storage

import (
	"encoding/json"
	"io"
	"os"
	"path/filepath"
)

type ExportData struct {
	RunMetadata
	Temperatures   []float64 `json:"temperature_trace"`
	Energies       []float64 `json:"energies"`
	Magnetizations []int     `json:"magnetizations"`
	Accepted       []int     `json:"accepted"`
	Final          [][]int   `json:"final_lattice"`
}

// ExportJSON writes a run's metadata, trace and final lattice as one
// indented JSON document.
func (s *Store) ExportJSON(w io.Writer, runID string) error {
	meta, err := s.Load(runID)
	if err != nil {
		return err
	}
	tr, err := s.LoadTrace(runID)
	if err != nil {
		return err
	}
	final, err := s.LoadFinal(runID)
	if err != nil {
		return err
	}

	data := ExportData{
		RunMetadata:    *meta,
		Temperatures:   tr.Temperatures,
		Energies:       tr.Energies,
		Magnetizations: tr.Magnetizations,
		Accepted:       tr.Accepted,
		Final:          final.ToRows(),
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}

// ExportCSV copies a run's trace file to w.
func (s *Store) ExportCSV(w io.Writer, runID string) error {
	f, err := os.Open(filepath.Join(s.baseDir, runID, traceFile))
	if err != nil {
		return s.notFound(runID, err)
	}
	defer f.Close()

	_, err = io.Copy(w, f)
	return err
}
