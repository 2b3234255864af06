// Package region defines the canonical region shape and its ingestion
// from the upstream analysis service. Upstream payloads vary field names
// between exports; everything is normalized here, at the boundary, so no
// other package ever sees an alias.
package region

import (
	"encoding/json"
	"fmt"
	"math"
	"os"

	"github.com/google/uuid"
	"gonum.org/v1/gonum/stat"

	"region-editor/pkg/geometry"
)

// Region is one analysis area: a labeled, closed polygon over the photo
// with the upstream model's confidence and area estimate. The area
// estimate is caller-owned and never recomputed here.
type Region struct {
	ID           string             `json:"id"`
	Label        string             `json:"label"`
	Confidence   float64            `json:"confidence"`
	Boundary     []geometry.Point2D `json:"boundary"`
	AreaSqFt     float64            `json:"area_sqft"`
	UserModified bool               `json:"user_modified,omitempty"`
}

// Band classifies a confidence value for display.
type Band int

const (
	BandLow Band = iota
	BandMedium
	BandHigh
)

// String returns the band name.
func (b Band) String() string {
	switch b {
	case BandHigh:
		return "high"
	case BandMedium:
		return "medium"
	default:
		return "low"
	}
}

// ConfidenceBand classifies confidence against the given thresholds.
func ConfidenceBand(confidence, high, medium float64) Band {
	switch {
	case confidence >= high:
		return BandHigh
	case confidence >= medium:
		return BandMedium
	default:
		return BandLow
	}
}

// New creates a user-defined region with a fresh id. User-drawn regions
// carry full confidence; there is no model to doubt.
func New(label string, boundary []geometry.Point2D) Region {
	return Region{
		ID:           uuid.NewString(),
		Label:        label,
		Confidence:   1.0,
		Boundary:     boundary,
		UserModified: true,
	}
}

// rawVertex tolerates missing or null coordinates in upstream payloads.
type rawVertex struct {
	X *float64 `json:"x"`
	Y *float64 `json:"y"`
}

// rawRegion mirrors the upstream payload with every field-name alias
// observed in exports.
type rawRegion struct {
	ID         string      `json:"id"`
	Label      string      `json:"label"`
	Confidence float64     `json:"confidence"`
	Boundary   []rawVertex `json:"boundary"`

	AreaSqFt        *float64 `json:"area_sqft"`
	EstimatedSqFt   *float64 `json:"estimated_area_sqft"`
	AIEstimatedArea *float64 `json:"ai_estimated_area"`

	UserModified bool `json:"user_modified"`
}

type file struct {
	Regions []rawRegion `json:"regions"`
}

// Normalize converts a raw upstream region to the canonical shape.
// Non-finite and incomplete vertices are dropped; if fewer than three
// valid vertices remain the region is unusable and an error is returned.
func (r rawRegion) normalize() (Region, error) {
	boundary := make([]geometry.Point2D, 0, len(r.Boundary))
	for _, v := range r.Boundary {
		if v.X == nil || v.Y == nil {
			continue
		}
		p := geometry.Point2D{X: *v.X, Y: *v.Y}
		if !p.IsFinite() {
			continue
		}
		boundary = append(boundary, p)
	}
	if len(boundary) < 3 {
		return Region{}, fmt.Errorf("region %s: %d valid vertices, need at least 3", r.ID, len(boundary))
	}

	area := 0.0
	for _, alias := range []*float64{r.AreaSqFt, r.EstimatedSqFt, r.AIEstimatedArea} {
		if alias != nil && !math.IsNaN(*alias) {
			area = *alias
			break
		}
	}

	confidence := r.Confidence
	if math.IsNaN(confidence) || confidence < 0 {
		confidence = 0
	} else if confidence > 1 {
		confidence = 1
	}

	id := r.ID
	if id == "" {
		id = uuid.NewString()
	}

	return Region{
		ID:           id,
		Label:        r.Label,
		Confidence:   confidence,
		Boundary:     boundary,
		AreaSqFt:     area,
		UserModified: r.UserModified,
	}, nil
}

// Parse decodes an upstream region list, normalizing every entry.
// Unusable regions are reported in the second return value rather than
// failing the whole load.
func Parse(data []byte) ([]Region, []error, error) {
	var f file
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, nil, fmt.Errorf("decode regions: %w", err)
	}

	regions := make([]Region, 0, len(f.Regions))
	var dropped []error
	for _, raw := range f.Regions {
		r, err := raw.normalize()
		if err != nil {
			dropped = append(dropped, err)
			continue
		}
		regions = append(regions, r)
	}
	return regions, dropped, nil
}

// Load reads and normalizes a region file.
func Load(path string) ([]Region, []error, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, err
	}
	return Parse(data)
}

// Save writes regions as indented JSON in the canonical shape.
func Save(path string, regions []Region) error {
	out := struct {
		Regions []Region `json:"regions"`
	}{Regions: regions}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// MeanConfidence returns the average confidence across regions, or 0 for
// an empty list. Logged at load time as a quick quality signal.
func MeanConfidence(regions []Region) float64 {
	if len(regions) == 0 {
		return 0
	}
	values := make([]float64, len(regions))
	for i, r := range regions {
		values[i] = r.Confidence
	}
	return stat.Mean(values, nil)
}
