// Package storage persists traced runs under a data directory, one
// subdirectory per run holding metadata.json and segments.csv.
package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"github.com/san-kum/paraflect/internal/geom"
	"github.com/san-kum/paraflect/internal/scene"
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

// RunMetadata describes one saved trace.
type RunMetadata struct {
	ID            string    `json:"id"`
	Timestamp     time.Time `json:"timestamp"`
	Mode          string    `json:"mode"`
	Focus         float64   `json:"focus"`
	Rays          int       `json:"rays"`
	SpanLo        float64   `json:"span_lo"`
	SpanHi        float64   `json:"span_hi"`
	Hits          int       `json:"hits"`
	Misses        int       `json:"misses"`
	FocusSpread   float64   `json:"focus_spread"`
	AxisDeviation float64   `json:"axis_deviation"`
}

// Save writes a trace and the scene that produced it, returning the
// new run id.
func (s *Store) Save(sc scene.Scene, tr scene.Trace) (string, error) {
	runID := fmt.Sprintf("%s_%d", sc.Mode, time.Now().Unix())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:            runID,
		Timestamp:     time.Now(),
		Mode:          sc.Mode.String(),
		Focus:         sc.Focus,
		Rays:          sc.Rays,
		SpanLo:        sc.SpanLo,
		SpanHi:        sc.SpanHi,
		Hits:          tr.Stats.Hits,
		Misses:        tr.Stats.Misses,
		FocusSpread:   tr.Stats.FocusSpread,
		AxisDeviation: tr.Stats.AxisDeviation,
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

	csvFile, err := os.Create(filepath.Join(runDir, "segments.csv"))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	defer w.Flush()

	if err := w.Write([]string{"ray", "kind", "ax", "ay", "bx", "by"}); err != nil {
		return "", err
	}
	for _, seg := range tr.Segments() {
		row := []string{
			strconv.Itoa(seg.Ray),
			seg.Kind,
			formatF(seg.A.X), formatF(seg.A.Y),
			formatF(seg.B.X), formatF(seg.B.Y),
		}
		if err := w.Write(row); err != nil {
			return "", err
		}
	}

	return runID, nil
}

// List returns metadata for every run, newest first.
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

	sort.Slice(runs, func(i, j int) bool {
		return runs[i].Timestamp.After(runs[j].Timestamp)
	})
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

// LoadSegments reads back the drawn segments of a run.
func (s *Store) LoadSegments(runID string) ([]scene.LabeledSegment, error) {
	file, err := os.Open(filepath.Join(s.baseDir, runID, "segments.csv"))
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
		return []scene.LabeledSegment{}, nil
	}

	segs := make([]scene.LabeledSegment, 0, len(records)-1)
	for _, rec := range records[1:] {
		if len(rec) != 6 {
			continue
		}
		ray, err := strconv.Atoi(rec[0])
		if err != nil {
			continue
		}
		vals := make([]float64, 4)
		bad := false
		for i, f := range rec[2:] {
			v, err := strconv.ParseFloat(f, 64)
			if err != nil {
				bad = true
				break
			}
			vals[i] = v
		}
		if bad {
			continue
		}
		segs = append(segs, scene.LabeledSegment{
			Ray:  ray,
			Kind: rec[1],
			Segment: scene.Segment{
				A: geom.Vec2{X: vals[0], Y: vals[1]},
				B: geom.Vec2{X: vals[2], Y: vals[3]},
			},
		})
	}
	return segs, nil
}

func formatF(v float64) string {
	return strconv.FormatFloat(v, 'f', 6, 64)
}
