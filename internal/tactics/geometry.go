package tactics

// Geometry thresholds. All values are in field-percentage units.
const (
	// LateralBalanceTolerance is how far the mean X may drift from the
	// pitch center (50) before the shape is flagged as unbalanced.
	LateralBalanceTolerance = 15.0

	// CompactnessLimit is the maximum goal-to-goal spread before the shape
	// is flagged as stretched.
	CompactnessLimit = 80.0

	// WidthFloor is the minimum touchline-to-touchline spread before the
	// shape is flagged as narrow.
	WidthFloor = 60.0
)

// Geometry rule confidences.
const (
	lateralBalanceConfidence = 85
	compactnessConfidence    = 78
	widthConfidence          = 82
)

// formationShape holds the aggregate geometry of the placed slots.
type formationShape struct {
	avgX    float64
	spreadX float64
	spreadY float64
	slots   int
}

// measureShape computes the shape metrics over slots with a resolved
// position. Returns a zero-slot shape when nothing is placed.
func measureShape(f *Formation) formationShape {
	var shape formationShape
	first := true
	var minX, maxX, minY, maxY, sumX float64
	for _, s := range f.Slots {
		p := s.Position
		if p == nil {
			continue
		}
		if first {
			minX, maxX = p.X, p.X
			minY, maxY = p.Y, p.Y
			first = false
		} else {
			if p.X < minX {
				minX = p.X
			}
			if p.X > maxX {
				maxX = p.X
			}
			if p.Y < minY {
				minY = p.Y
			}
			if p.Y > maxY {
				maxY = p.Y
			}
		}
		sumX += p.X
		shape.slots++
	}
	if shape.slots == 0 {
		return shape
	}
	shape.avgX = sumX / float64(shape.slots)
	shape.spreadX = maxX - minX
	shape.spreadY = maxY - minY
	return shape
}

// AnalyzeGeometry evaluates the balance, compactness, and width rules over
// a formation's placed slots. A formation with no placed slots yields no
// recommendations. Output order is rule-declaration order; the aggregator
// re-sorts later.
func AnalyzeGeometry(f *Formation) []Recommendation {
	if f == nil {
		return nil
	}
	shape := measureShape(f)
	if shape.slots == 0 {
		return nil
	}

	var recs []Recommendation

	drift := shape.avgX - 50
	if drift < 0 {
		drift = -drift
	}
	if drift > LateralBalanceTolerance {
		side := "left"
		if shape.avgX > 50 {
			side = "right"
		}
		recs = append(recs, Recommendation{
			ID:          "geometry-lateral-balance",
			Type:        RecFormation,
			Title:       "Improve Lateral Balance",
			Description: "The formation leans heavily to the " + side + " side of the pitch, leaving the opposite flank exposed.",
			Reasoning:   "Mean horizontal position deviates from the pitch center by more than the balance tolerance.",
			Confidence:  lateralBalanceConfidence,
			Priority:    PriorityMedium,
			Impact:      ImpactModerate,
		})
	}

	if shape.spreadY > CompactnessLimit {
		recs = append(recs, Recommendation{
			ID:          "geometry-compactness",
			Type:        RecTactical,
			Title:       "Increase Formation Compactness",
			Description: "The distance between the deepest and most advanced slots is too large, opening passing lanes between the lines.",
			Reasoning:   "Goal-to-goal spread exceeds the compactness limit.",
			Confidence:  compactnessConfidence,
			Priority:    PriorityMedium,
			Impact:      ImpactSignificant,
		})
	}

	if shape.spreadX < WidthFloor {
		recs = append(recs, Recommendation{
			ID:          "geometry-width",
			Type:        RecTactical,
			Title:       "Utilize Field Width",
			Description: "The formation is narrow, making it easier for the opposition to congest central areas.",
			Reasoning:   "Touchline-to-touchline spread is below the width floor.",
			Confidence:  widthConfidence,
			Priority:    PriorityMedium,
			Impact:      ImpactModerate,
		})
	}

	return recs
}
