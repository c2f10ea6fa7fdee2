// Package verdict classifies aggregated hazard and ambient weather data into
// a sailing safety tier with a human-readable rationale.
package verdict

import (
	"fmt"

	"github.com/seaward-io/seaward/internal/hazard"
)

// Tier is the overall safety classification for a location.
type Tier string

const (
	TierSafe          Tier = "SAFE"
	TierCaution       Tier = "CAUTION"
	TierUnsafe        Tier = "UNSAFE"
	TierIndeterminate Tier = "INDETERMINATE"
)

// AmbientConditions carries the local marine weather observation used
// alongside confirmed hazard events. Available is false when the weather
// provider could not be reached; fields are then ignored.
type AmbientConditions struct {
	Available     bool    `json:"available"`
	WindSpeedKmh  float64 `json:"wind_speed_kmh"`
	WindGustsKmh  float64 `json:"wind_gusts_kmh"`
	WaveHeightM   float64 `json:"wave_height_m"`
	VisibilityM   float64 `json:"visibility_m"`
	Description   string  `json:"description,omitempty"`
	WaveDataKnown bool    `json:"wave_data_known"`
}

// Thresholds are the ambient cutoffs used by the classifier.
type Thresholds struct {
	// Hard limits. Exceeding either makes conditions unsafe on their own.
	HardWindKmh float64
	HardWaveM   float64

	// Normal bounds. Conditions inside all of these count as calm.
	NormalWindKmh  float64
	NormalWaveM    float64
	MinVisibilityM float64
}

// DefaultThresholds returns the production cutoffs.
func DefaultThresholds() Thresholds {
	return Thresholds{
		HardWindKmh:    60,
		HardWaveM:      4.0,
		NormalWindKmh:  40,
		NormalWaveM:    2.5,
		MinVisibilityM: 1000,
	}
}

// compoundingTypes escalate a moderate event to CAUTION on their own because
// they compound with marine conditions rather than staying localized.
var compoundingTypes = map[hazard.Type]bool{
	hazard.TypeStorm:      true,
	hazard.TypeTsunami:    true,
	hazard.TypeFlood:      true,
	hazard.TypeEarthquake: true,
}

// Verdict is the classification result.
type Verdict struct {
	Tier Tier `json:"tier"`
	// Rationale explains the single rule that fired, naming the triggering
	// signal.
	Rationale string `json:"rationale"`
	// Caveat is set when the verdict rests on incomplete data.
	Caveat string `json:"caveat,omitempty"`
}

// Classifier applies the tiering rules. Rules are evaluated strictly in
// order; the first match wins and later rules never soften an earlier one.
type Classifier struct {
	thresholds Thresholds
}

// NewClassifier constructs a Classifier with the given thresholds.
func NewClassifier(t Thresholds) *Classifier {
	return &Classifier{thresholds: t}
}

// Classify derives the safety tier from the alert set and ambient conditions.
//
// Rule order:
//  1. any severe or extreme event        -> UNSAFE
//  2. ambient past a hard limit          -> UNSAFE
//  3. moderate event of compounding type -> CAUTION
//  4. any moderate event                 -> CAUTION
//  5. no events and calm ambient         -> SAFE
//  6. otherwise                          -> INDETERMINATE
func (c *Classifier) Classify(set hazard.AlertSet, ambient AmbientConditions) Verdict {
	th := c.thresholds

	if e, ok := worstAtLeast(set, hazard.SeveritySevere); ok {
		return Verdict{
			Tier:      TierUnsafe,
			Rationale: fmt.Sprintf("%s hazard active: %s", e.Severity, e.Title),
			Caveat:    degradedCaveat(set),
		}
	}

	if ambient.Available {
		if ambient.WindSpeedKmh >= th.HardWindKmh {
			return Verdict{
				Tier:      TierUnsafe,
				Rationale: fmt.Sprintf("sustained wind %.0f km/h exceeds the %.0f km/h limit", ambient.WindSpeedKmh, th.HardWindKmh),
				Caveat:    degradedCaveat(set),
			}
		}
		if ambient.WaveDataKnown && ambient.WaveHeightM >= th.HardWaveM {
			return Verdict{
				Tier:      TierUnsafe,
				Rationale: fmt.Sprintf("wave height %.1f m exceeds the %.1f m limit", ambient.WaveHeightM, th.HardWaveM),
				Caveat:    degradedCaveat(set),
			}
		}
	}

	if e, ok := moderateOfType(set, compoundingTypes); ok {
		return Verdict{
			Tier:      TierCaution,
			Rationale: fmt.Sprintf("moderate %s nearby compounds with sea conditions: %s", e.Type, e.Title),
			Caveat:    degradedCaveat(set),
		}
	}

	if e, ok := worstAtLeast(set, hazard.SeverityModerate); ok {
		return Verdict{
			Tier:      TierCaution,
			Rationale: fmt.Sprintf("moderate hazard active: %s", e.Title),
			Caveat:    degradedCaveat(set),
		}
	}

	if noSignificantEvents(set) && c.ambientCalm(ambient) {
		v := Verdict{Tier: TierSafe, Rationale: "no active hazards and conditions within normal bounds"}
		if set.Degraded {
			// Some providers were unreachable; a clean picture from the rest
			// still reads as safe, with the gap called out.
			v.Caveat = set.DegradedNotice()
		}
		return v
	}

	return Verdict{
		Tier:      TierIndeterminate,
		Rationale: "conditions could not be established with confidence",
		Caveat:    degradedCaveat(set),
	}
}

// ambientCalm reports whether ambient conditions sit inside all normal
// bounds. Missing ambient data is treated as calm so that offline weather
// never blocks a SAFE verdict on its own; degraded sourcing is surfaced via
// the caveat instead.
func (c *Classifier) ambientCalm(ambient AmbientConditions) bool {
	if !ambient.Available {
		return true
	}
	th := c.thresholds
	if ambient.WindSpeedKmh >= th.NormalWindKmh {
		return false
	}
	if ambient.WaveDataKnown && ambient.WaveHeightM >= th.NormalWaveM {
		return false
	}
	if ambient.VisibilityM > 0 && ambient.VisibilityM < th.MinVisibilityM {
		return false
	}
	return true
}

func worstAtLeast(set hazard.AlertSet, min hazard.Severity) (hazard.Event, bool) {
	for _, e := range set.Events {
		if e.Severity.Rank() >= min.Rank() {
			return e, true
		}
	}
	return hazard.Event{}, false
}

func moderateOfType(set hazard.AlertSet, types map[hazard.Type]bool) (hazard.Event, bool) {
	for _, e := range set.Events {
		if e.Severity == hazard.SeverityModerate && types[e.Type] {
			return e, true
		}
	}
	return hazard.Event{}, false
}

func noSignificantEvents(set hazard.AlertSet) bool {
	for _, e := range set.Events {
		if e.Severity.Rank() >= hazard.SeverityModerate.Rank() {
			return false
		}
	}
	return true
}

func degradedCaveat(set hazard.AlertSet) string {
	if set.Degraded {
		return set.DegradedNotice()
	}
	return ""
}
