package quiz

const (
	PassingTotalScore    = 14
	PassingCriticalScore = 6
)

type Result struct {
	TotalScore     int
	CriticalScore  int
	CategoryScores map[Category]int
	Passed         bool
}

// Display keys and multipliers used by the applicant summary screen. They only shape the
// numbers shown to the walker and never influence Passed.
const (
	DisplayBehavior = "comportamiento"
	DisplaySafety   = "seguridad"
	DisplayCritical = "criticas"

	behaviorMultiplier = 17
	safetyMultiplier   = 17
	criticalMultiplier = 33
	displayCap         = 100
)

// DisplayScores scales category points into percent-like values capped at 100.
// The critical entry counts correct critical answers rather than their points.
func (r Result) DisplayScores() map[string]int {
	criticalAnswers := 0
	for _, c := range Categories {
		if c.IsCritical() {
			criticalAnswers += r.CategoryScores[c] / c.Weight()
		}
	}
	return map[string]int{
		DisplayBehavior: capDisplay(r.CategoryScores[CategoryBehavior] * behaviorMultiplier),
		DisplaySafety:   capDisplay(r.CategoryScores[CategorySafety] * safetyMultiplier),
		DisplayCritical: capDisplay(criticalAnswers * criticalMultiplier),
	}
}

func capDisplay(v int) int {
	return min(v, displayCap)
}

type scorer struct {
	total      int
	critical   int
	categories map[Category]int
}

func newScorer() scorer {
	categories := make(map[Category]int, len(Categories))
	for _, c := range Categories {
		categories[c] = 0
	}
	return scorer{categories: categories}
}

func (s *scorer) add(q Question, option int) {
	if option != q.Correct {
		return
	}
	w := q.Weight()
	s.total += w
	if q.Category.IsCritical() {
		s.critical += w
	}
	s.categories[q.Category] += w
}

func (s *scorer) result() Result {
	categories := make(map[Category]int, len(s.categories))
	for c, v := range s.categories {
		categories[c] = v
	}
	return Result{
		TotalScore:     s.total,
		CriticalScore:  s.critical,
		CategoryScores: categories,
		Passed:         s.total >= PassingTotalScore && s.critical >= PassingCriticalScore,
	}
}
