package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"github.com/san-kum/motorwave/internal/wave"
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
	Demo      string             `json:"demo"`
	Variant   string             `json:"variant"`
	Mode      string             `json:"mode"`
	Scenario  string             `json:"scenario,omitempty"`
	Timestamp time.Time          `json:"timestamp"`
	Step      float64            `json:"step"`
	Frames    int                `json:"frames"`
	Channels  int                `json:"channels"`
	Params    wave.Params        `json:"params"`
	Axis      float64            `json:"axis,omitempty"`
	Metrics   map[string]float64 `json:"metrics,omitempty"`
}

// Duration is the simulated time covered by the run.
func (m *RunMetadata) Duration() float64 {
	return float64(m.Frames) * m.Step
}

// Save writes metadata.json and frames.csv into a new run directory and
// returns the run id. ID, Timestamp and Frames are filled in by Save.
func (s *Store) Save(meta RunMetadata, frames []wave.Frame) (string, error) {
	now := time.Now()
	runID := fmt.Sprintf("%s_%d", meta.Demo, now.UnixMilli())
	runDir := filepath.Join(s.baseDir, runID)
	for n := 1; ; n++ {
		if _, err := os.Stat(runDir); os.IsNotExist(err) {
			break
		}
		runID = fmt.Sprintf("%s_%d_%d", meta.Demo, now.UnixMilli(), n)
		runDir = filepath.Join(s.baseDir, runID)
	}

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta.ID = runID
	meta.Timestamp = now
	meta.Frames = len(frames)
	if meta.Channels == 0 && len(frames) > 0 {
		meta.Channels = len(frames[0].Values)
	}

	err := writeFile(filepath.Join(runDir, "metadata.json"), func(w io.Writer) error {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(meta)
	})
	if err != nil {
		return "", err
	}

	err = writeFile(filepath.Join(runDir, "frames.csv"), func(w io.Writer) error {
		return WriteFramesCSV(w, frames)
	})
	if err != nil {
		return "", err
	}
	return runID, nil
}

// writeFile creates path, runs write on it and reports the close error.
func writeFile(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// WriteFramesCSV writes a time column followed by one column per channel.
func WriteFramesCSV(out io.Writer, frames []wave.Frame) error {
	w := csv.NewWriter(out)

	if len(frames) == 0 {
		return nil
	}

	header := []string{"time"}
	for i := range frames[0].Values {
		header = append(header, fmt.Sprintf("ch%d", i))
	}
	if err := w.Write(header); err != nil {
		return err
	}

	for _, fr := range frames {
		row := []string{strconv.FormatFloat(fr.Time, 'f', 6, 64)}
		for _, v := range fr.Values {
			row = append(row, strconv.FormatFloat(v, 'f', 6, 64))
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
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
		meta, err := s.Load(entry.Name())
		if err != nil {
			continue
		}
		runs = append(runs, *meta)
	}

	sort.Slice(runs, func(i, j int) bool { return runs[i].Timestamp.Before(runs[j].Timestamp) })
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

func (s *Store) LoadFrames(runID string) ([]wave.Frame, error) {
	file, err := os.Open(filepath.Join(s.baseDir, runID, "frames.csv"))
	if err != nil {
		return nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	r.FieldsPerRecord = -1

	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) < 2 {
		return []wave.Frame{}, nil
	}

	frames := make([]wave.Frame, 0, len(records)-1)
	for i, record := range records[1:] {
		if len(record) == 0 {
			continue
		}
		t, err := strconv.ParseFloat(record[0], 64)
		if err != nil {
			return nil, fmt.Errorf("frames.csv row %d: %w", i+2, err)
		}
		values := make(wave.Vector, 0, len(record)-1)
		for _, field := range record[1:] {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, fmt.Errorf("frames.csv row %d: %w", i+2, err)
			}
			values = append(values, v)
		}
		frames = append(frames, wave.Frame{Step: i, Time: t, Values: values})
	}
	return frames, nil
}

// Channel extracts one channel of a recording as a series.
func Channel(frames []wave.Frame, ch int) ([]float64, error) {
	out := make([]float64, len(frames))
	for i, f := range frames {
		if ch < 0 || ch >= len(f.Values) {
			return nil, fmt.Errorf("channel %d out of range (frame has %d)", ch, len(f.Values))
		}
		out[i] = f.Values[ch]
	}
	return out, nil
}
