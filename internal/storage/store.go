package storage

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/san-kum/isingsim/internal/ising"
	"github.com/san-kum/isingsim/internal/lattice"
	"github.com/san-kum/isingsim/internal/metrics"
)

const (
	metadataFile = "metadata.json"
	traceFile    = "trace.csv"
	finalFile    = "final.txt"
)

var (
	ErrRunNotFound  = errors.New("storage: run not found")
	ErrCorruptTrace = errors.New("storage: corrupt trace")
)

var traceHeader = []string{"cycle", "temperature", "energy", "magnetization", "accepted"}

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
	ID              string             `json:"id"`
	Timestamp       time.Time          `json:"timestamp"`
	Seed            int64              `json:"seed"`
	Rows            int                `json:"rows"`
	Cols            int                `json:"cols"`
	NCycles         int                `json:"ncycles"`
	Temperatures    []float64          `json:"temperatures"`
	SpinInteraction float64            `json:"spin_interaction"`
	ExternalField   float64            `json:"external_field"`
	Init            string             `json:"init"`
	Sweeps          int                `json:"sweeps"`
	Elapsed         float64            `json:"elapsed_seconds"`
	Metrics         map[string]float64 `json:"metrics"`
	// Summaries holds one entry per temperature of a schedule.
	Summaries []metrics.TemperatureSummary `json:"summaries,omitempty"`
}

// Save writes meta, the per-sweep trace and the final lattice of res under a
// fresh run directory and returns the run ID. ID, Timestamp, Rows, Cols and
// Sweeps are filled in from res.
func (s *Store) Save(meta RunMetadata, res *ising.Result) (string, error) {
	meta.ID = "ising_" + uuid.NewString()[:8]
	meta.Timestamp = time.Now()
	meta.Rows = res.Final.Rows()
	meta.Cols = res.Final.Cols()
	meta.Sweeps = res.Len()

	runDir := filepath.Join(s.baseDir, meta.ID)
	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}
	if err := writeRun(runDir, meta, res); err != nil {
		os.RemoveAll(runDir)
		return "", err
	}
	return meta.ID, nil
}

func writeRun(runDir string, meta RunMetadata, res *ising.Result) error {
	if err := writeJSON(filepath.Join(runDir, metadataFile), meta); err != nil {
		return err
	}

	csvFile, err := os.Create(filepath.Join(runDir, traceFile))
	if err != nil {
		return err
	}
	if err := WriteTraceCSV(csvFile, &res.Trace); err != nil {
		csvFile.Close()
		return err
	}
	if err := csvFile.Close(); err != nil {
		return err
	}

	final := []byte(res.Final.String())
	return os.WriteFile(filepath.Join(runDir, finalFile), final, 0644)
}

// List returns every readable run, newest first.
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

		meta, err := s.Load(entry.Name())
		if err != nil {
			continue
		}
		runs = append(runs, *meta)
	}

	sort.Slice(runs, func(i, j int) bool {
		return runs[i].Timestamp.After(runs[j].Timestamp)
	})
	return runs, nil
}

// Latest returns the ID of the most recent run.
func (s *Store) Latest() (string, error) {
	runs, err := s.List()
	if err != nil {
		return "", err
	}
	if len(runs) == 0 {
		return "", ErrRunNotFound
	}
	return runs[0].ID, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := s.read(runID, metadataFile)
	if err != nil {
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, fmt.Errorf("storage: %s metadata: %w", runID, err)
	}
	return &meta, nil
}

// LoadTrace reads the per-sweep series of a run.
func (s *Store) LoadTrace(runID string) (*ising.Trace, error) {
	meta, err := s.Load(runID)
	if err != nil {
		return nil, err
	}

	file, err := os.Open(filepath.Join(s.baseDir, runID, traceFile))
	if err != nil {
		return nil, s.notFound(runID, err)
	}
	defer file.Close()

	tr, err := ReadTraceCSV(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", runID, err)
	}
	tr.Sites = meta.Rows * meta.Cols
	return tr, nil
}

// LoadFinal reads the lattice as it stood after the last sweep.
func (s *Store) LoadFinal(runID string) (*lattice.Lattice, error) {
	data, err := s.read(runID, finalFile)
	if err != nil {
		return nil, err
	}
	return lattice.Parse(string(data))
}

func (s *Store) read(runID, name string) ([]byte, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, name))
	if err != nil {
		return nil, s.notFound(runID, err)
	}
	return data, nil
}

func (s *Store) notFound(runID string, err error) error {
	if errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%w: %s", ErrRunNotFound, runID)
	}
	return err
}

// WriteTraceCSV writes one row per sweep with a header line.
func WriteTraceCSV(w io.Writer, t *ising.Trace) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(traceHeader); err != nil {
		return err
	}

	for i := 0; i < t.Len(); i++ {
		row := []string{
			strconv.Itoa(i),
			strconv.FormatFloat(t.Temperatures[i], 'g', -1, 64),
			strconv.FormatFloat(t.Energies[i], 'g', -1, 64),
			strconv.Itoa(t.Magnetizations[i]),
			strconv.Itoa(t.Accepted[i]),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// ReadTraceCSV parses the output of WriteTraceCSV. Sites is left zero.
func ReadTraceCSV(r io.Reader) (*ising.Trace, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = len(traceHeader)

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptTrace, err)
	}

	tr := &ising.Trace{}
	if len(records) < 2 {
		return tr, nil
	}

	for i, record := range records[1:] {
		temp, err1 := strconv.ParseFloat(record[1], 64)
		energy, err2 := strconv.ParseFloat(record[2], 64)
		mag, err3 := strconv.Atoi(record[3])
		acc, err4 := strconv.Atoi(record[4])
		if err := errors.Join(err1, err2, err3, err4); err != nil {
			return nil, fmt.Errorf("%w: row %d: %v", ErrCorruptTrace, i+1, err)
		}

		tr.Temperatures = append(tr.Temperatures, temp)
		tr.Energies = append(tr.Energies, energy)
		tr.Magnetizations = append(tr.Magnetizations, mag)
		tr.Accepted = append(tr.Accepted, acc)
	}
	return tr, nil
}

func writeJSON(path string, v any) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
