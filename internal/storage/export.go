package storage

import (
	"encoding/json"
	"io"

	"github.com/san-kum/paraflect/internal/scene"
)

// ExportData is the JSON export shape of a saved run.
type ExportData struct {
	ID            string        `json:"id"`
	Mode          string        `json:"mode"`
	Focus         float64       `json:"focus"`
	Rays          int           `json:"rays"`
	Hits          int           `json:"hits"`
	Misses        int           `json:"misses"`
	FocusSpread   float64       `json:"focus_spread"`
	AxisDeviation float64       `json:"axis_deviation"`
	Segments      []segmentJSON `json:"segments"`
}

type segmentJSON struct {
	Ray  int     `json:"ray"`
	Kind string  `json:"kind"`
	AX   float64 `json:"ax"`
	AY   float64 `json:"ay"`
	BX   float64 `json:"bx"`
	BY   float64 `json:"by"`
}

// ExportJSON writes a run as indented JSON.
func ExportJSON(w io.Writer, meta *RunMetadata, segs []scene.LabeledSegment) error {
	data := ExportData{
		ID:            meta.ID,
		Mode:          meta.Mode,
		Focus:         meta.Focus,
		Rays:          meta.Rays,
		Hits:          meta.Hits,
		Misses:        meta.Misses,
		FocusSpread:   meta.FocusSpread,
		AxisDeviation: meta.AxisDeviation,
		Segments:      make([]segmentJSON, len(segs)),
	}
	for i, s := range segs {
		data.Segments[i] = segmentJSON{
			Ray: s.Ray, Kind: s.Kind,
			AX: s.A.X, AY: s.A.Y,
			BX: s.B.X, BY: s.B.Y,
		}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}
