package config

import "sort"

// DifficultyLabel names a difficulty profile.
type DifficultyLabel string

const (
	DifficultyEasy       DifficultyLabel = "easy"
	DifficultyNormal     DifficultyLabel = "normal"
	DifficultyHard       DifficultyLabel = "hard"
	DifficultyImpossible DifficultyLabel = "impossible"
)

// builtinOrder lists the shipped labels from easiest to hardest.
var builtinOrder = []DifficultyLabel{
	DifficultyEasy,
	DifficultyNormal,
	DifficultyHard,
	DifficultyImpossible,
}

// Lookup returns the profile for a label.
// Unknown labels report false; callers keep whatever profile they had.
func (d DifficultyConfig) Lookup(label DifficultyLabel) (Profile, bool) {
	p, ok := d.Profiles[label]
	return p, ok
}

// IsHardest reports whether label is the hardest difficulty.
func (d DifficultyConfig) IsHardest(label DifficultyLabel) bool {
	return label != "" && label == d.Hardest
}

// Labels returns the configured labels, built-in ones first in ascending
// difficulty, then any custom labels sorted by name.
func (d DifficultyConfig) Labels() []DifficultyLabel {
	labels := make([]DifficultyLabel, 0, len(d.Profiles))
	seen := make(map[DifficultyLabel]bool, len(d.Profiles))
	for _, l := range builtinOrder {
		if _, ok := d.Profiles[l]; ok {
			labels = append(labels, l)
			seen[l] = true
		}
	}

	var custom []DifficultyLabel
	for l := range d.Profiles {
		if !seen[l] {
			custom = append(custom, l)
		}
	}
	sort.Slice(custom, func(i, j int) bool { return custom[i] < custom[j] })

	return append(labels, custom...)
}

// WarnLimit returns the stagnation tick count above which the anti-camp
// warning shows for the given difficulty and threshold.
func (c DroneConfig) WarnLimit(label DifficultyLabel, campThreshold int) float64 {
	fraction := c.AntiCamp.WarnFraction
	if c.Difficulty.IsHardest(label) {
		fraction = c.AntiCamp.WarnFractionHardest
	}
	return float64(campThreshold) * fraction
}
