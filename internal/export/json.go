package export

import (
	"encoding/json"
	"io"
	"os"

	"github.com/san-kum/motorwave/internal/storage"
	"github.com/san-kum/motorwave/internal/wave"
)

type ExportData struct {
	ID       string             `json:"id"`
	Demo     string             `json:"demo"`
	Variant  string             `json:"variant"`
	Mode     string             `json:"mode"`
	Step     float64            `json:"step"`
	Frames   int                `json:"frames"`
	Channels int                `json:"channels"`
	Params   wave.Params        `json:"params"`
	Metrics  map[string]float64 `json:"metrics,omitempty"`
	Times    []float64          `json:"times"`
	Values   [][]float64        `json:"values"`
}

func newExportData(meta *storage.RunMetadata, frames []wave.Frame) ExportData {
	data := ExportData{
		ID:       meta.ID,
		Demo:     meta.Demo,
		Variant:  meta.Variant,
		Mode:     meta.Mode,
		Step:     meta.Step,
		Frames:   len(frames),
		Channels: meta.Channels,
		Params:   meta.Params,
		Metrics:  meta.Metrics,
		Times:    make([]float64, len(frames)),
		Values:   make([][]float64, len(frames)),
	}
	for i, f := range frames {
		data.Times[i] = f.Time
		data.Values[i] = f.Values
	}
	return data
}

func WriteJSON(w io.Writer, meta *storage.RunMetadata, frames []wave.Frame) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(newExportData(meta, frames))
}

func ExportJSON(path string, meta *storage.RunMetadata, frames []wave.Frame) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := WriteJSON(file, meta, frames); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}
