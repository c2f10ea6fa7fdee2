package harbor

import (
	"context"
	"errors"
	"fmt"

	"github.com/seaward-io/seaward/internal/geo"
)

// LandClassifier reports whether a coordinate sits over land. External
// collaborator; the validator treats a classifier failure as open water and
// falls back to harbor proximity alone.
type LandClassifier interface {
	IsLand(ctx context.Context, c geo.Coordinate) (bool, error)
}

// ValidationResult is the outcome of validating one coordinate.
type ValidationResult struct {
	IsValid       bool    `json:"is_valid"`
	IsLand        bool    `json:"is_land"`
	NearestHarbor *Harbor `json:"nearest_harbor,omitempty"`
	DistanceKm    float64 `json:"distance_km,omitempty"`
	Message       string  `json:"message"`
}

// ValidatorConfig carries the distance thresholds for validation. All values
// are in kilometers.
type ValidatorConfig struct {
	// ValidWithinKm is the "basically at a harbor" threshold.
	ValidWithinKm float64
	// SnapSearchKm bounds the nearest-harbor suggestion for water points.
	SnapSearchKm float64
	// LandSearchKm is the generous guidance radius used for land points.
	LandSearchKm float64
}

// DefaultValidatorConfig returns the production thresholds.
func DefaultValidatorConfig() ValidatorConfig {
	return ValidatorConfig{
		ValidWithinKm: 5,
		SnapSearchKm:  50,
		LandSearchKm:  200,
	}
}

// Validator decides whether a coordinate is a usable harbor location and
// offers the nearest harbor as a snap suggestion when it is not.
type Validator struct {
	gaz  *Gazetteer
	land LandClassifier
	cfg  ValidatorConfig
}

// NewValidator constructs a Validator. land may be nil, in which case every
// coordinate is treated as water.
func NewValidator(gaz *Gazetteer, land LandClassifier, cfg ValidatorConfig) *Validator {
	return &Validator{gaz: gaz, land: land, cfg: cfg}
}

// Validate checks whether c is open water at a known harbor. Out-of-range
// coordinates and the (0,0) sentinel are rejected before any distance work.
func (v *Validator) Validate(ctx context.Context, c geo.Coordinate) (ValidationResult, error) {
	if err := c.Validate(); err != nil {
		return ValidationResult{}, err
	}

	if v.onLand(ctx, c) {
		res := ValidationResult{IsLand: true}
		if h, dist, err := v.gaz.Nearest(c, v.cfg.LandSearchKm); err == nil {
			res.NearestHarbor = &h
			res.DistanceKm = dist
			res.Message = fmt.Sprintf("cannot validate this location — it is on land; nearest known harbor is %s, %.1f km away", h.DisplayName(), dist)
		} else {
			res.Message = fmt.Sprintf("cannot validate this location — it is on land with no known harbor within %.0f km", v.cfg.LandSearchKm)
		}
		return res, nil
	}

	h, dist, err := v.gaz.Nearest(c, v.cfg.SnapSearchKm)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return ValidationResult{
				Message: fmt.Sprintf("no nearby harbors found within %.0f km", v.cfg.SnapSearchKm),
			}, nil
		}
		return ValidationResult{}, err
	}

	res := ValidationResult{NearestHarbor: &h, DistanceKm: dist}
	if dist <= v.cfg.ValidWithinKm {
		res.IsValid = true
		res.Message = fmt.Sprintf("valid harbor location near %s", h.Name)
	} else {
		res.Message = fmt.Sprintf("not a harbor location — nearest harbor is %s, %.1f km away", h.DisplayName(), dist)
	}
	return res, nil
}

func (v *Validator) onLand(ctx context.Context, c geo.Coordinate) bool {
	if v.land == nil {
		return false
	}
	land, err := v.land.IsLand(ctx, c)
	if err != nil {
		// Best effort: an unreachable classifier must not block validation.
		return false
	}
	return land
}
