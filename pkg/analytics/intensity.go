package analytics

import "github.com/jwebster45206/plot-engine/pkg/plot"

// ConflictIntensityAt computes a conflict's dramatic intensity at a
// story position. Intensity is the 1-10 baseline scaled by a
// type-specific band multiplier: internal conflict peaks just before
// the climax, external conflict escalates into the finale, and both
// drop during resolution. The result is not clamped to 10; clamping is
// a presentation decision.
func ConflictIntensityAt(c plot.Conflict, storyPercentage float64) float64 {
	return c.Baseline() * intensityMultiplier(c.Type, storyPercentage)
}

func intensityMultiplier(t plot.ConflictType, pct float64) float64 {
	if t == plot.ConflictInternal {
		switch {
		case pct < 20:
			return 0.3
		case pct < 50:
			return 0.6
		case pct < 75:
			return 0.9
		case pct < 85:
			return 1.2
		default:
			return 0.4 // resolution
		}
	}
	// external, and any unrecognized type
	switch {
	case pct < 10:
		return 0.2
	case pct < 25:
		return 0.5
	case pct < 50:
		return 0.7
	case pct < 75:
		return 1.0
	case pct < 90:
		return 1.3
	default:
		return 0.3 // resolution
	}
}

// ConflictCurveAt samples a conflict's escalation curve at the given
// positions, typically the beat percentages of the structure.
func ConflictCurveAt(c plot.Conflict, positions []float64) ConflictCurve {
	points := make([]CurvePoint, len(positions))
	for i, pos := range positions {
		points[i] = CurvePoint{Position: pos, Intensity: ConflictIntensityAt(c, pos)}
	}
	return ConflictCurve{ConflictID: c.ID, Type: string(c.Type), Points: points}
}

// ConflictCurves samples every conflict of a structure at its beat
// positions. Duplicate beat percentages yield duplicate x-positions;
// chart consumers tolerate them.
func ConflictCurves(ps plot.PlotStructure) []ConflictCurve {
	positions := make([]float64, len(ps.Beats))
	for i, b := range ps.Beats {
		positions[i] = b.Percentage
	}
	curves := make([]ConflictCurve, len(ps.Conflicts))
	for i, c := range ps.Conflicts {
		curves[i] = ConflictCurveAt(c, positions)
	}
	return curves
}
