package hazard

// adviceByType maps a hazard type to standing mariner guidance. Attached to
// events at the adapter boundary so every presentation layer shows the same
// advice for the same hazard.
var adviceByType = map[Type]string{
	TypeStorm:      "Take immediate shelter in port. Avoid sea travel, secure all equipment, and follow official evacuation instructions.",
	TypeEarthquake: "Expect aftershocks and possible sea-level disturbances near the epicenter. Stay clear of damaged port infrastructure.",
	TypeFlood:      "Move to higher ground. Avoid river mouths and low-lying harbor areas.",
	TypeWildfire:   "Expect reduced visibility from smoke near the coast. Follow local evacuation guidance.",
	TypeTsunami:    "Move to deep water or high ground immediately. Stay away from beaches, harbors, and waterways.",
	TypeHighWind:   "Secure loose gear, reduce sail, and avoid exposed waters until winds subside.",
	TypeFog:        "Reduce speed, use sound signals, and keep radar watch until visibility improves.",
	TypeOther:      "Stay alert and follow local emergency guidance.",
}

// AdviceFor returns the standing guidance for a hazard type.
func AdviceFor(t Type) string {
	if a, ok := adviceByType[t]; ok {
		return a
	}
	return adviceByType[TypeOther]
}
