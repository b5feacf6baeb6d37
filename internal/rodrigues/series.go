package rodrigues

// DefaultSeriesThreshold is the switchover angle above which the series
// evaluator defers to the closed forms. The comparison is signed
// (theta > threshold), so negative angles always use the expansion.
const DefaultSeriesThreshold = 0.25

// seriesTerms is the number of Taylor terms summed; the truncation error of
// the deepest expansion is O(θ¹²/13!), far below float64 resolution on the
// expansion range.
const seriesTerms = 6

// Series evaluates the coefficients by truncated Taylor expansion below the
// switchover threshold, removing the 0/0 singularity of the closed forms
// entirely.
type Series struct {
	// Threshold is the switchover angle; closed forms are used for
	// theta > Threshold.
	Threshold float64

	direct ClosedForm
}

// NewSeries creates a series evaluator with the default switchover threshold.
func NewSeries() *Series {
	return &Series{Threshold: DefaultSeriesThreshold}
}

// Name returns "series".
func (*Series) Name() string { return "series" }

// A0 has no singularity to expand around; it always uses the closed form.
func (s *Series) A0(theta float64) float64 { return s.direct.A0(theta) }

func (s *Series) A1(theta float64) float64 {
	if theta > s.Threshold {
		return s.direct.A1(theta)
	}
	return s.ai(1, theta)
}

func (s *Series) A2(theta float64) float64 {
	if theta > s.Threshold {
		return s.direct.A2(theta)
	}
	return s.ai(2, theta)
}

func (s *Series) B0(theta float64) float64 {
	if theta > s.Threshold {
		return s.direct.B0(theta)
	}
	return s.bi(0, theta)
}

func (s *Series) B1(theta float64) float64 {
	if theta > s.Threshold {
		return s.direct.B1(theta)
	}
	return s.bi(1, theta)
}

func (s *Series) B2(theta float64) float64 {
	if theta > s.Threshold {
		return s.direct.B2(theta)
	}
	return s.bi(2, theta)
}

// thetaPowers returns the even powers θ², θ⁴, ..., θ¹⁰ consumed by the
// expansions.
func thetaPowers(theta float64) (t2, t4, t6, t8, t10 float64) {
	t2 = theta * theta
	t4 = t2 * t2
	t6 = t2 * t4
	t8 = t4 * t4
	t10 = t8 * t2
	return
}

// ai sums the expansion a_i(θ) = Σ_j (−1)^j θ^(2j) / (2j+i)!.
func (s *Series) ai(i int, theta float64) float64 {
	t2, t4, t6, t8, t10 := thetaPowers(theta)
	terms := [seriesTerms]float64{1, -t2, t4, -t6, t8, -t10}
	var res float64
	for j := 0; j < seriesTerms; j++ {
		res += terms[j] * invFactorials[2*j+i]
	}
	return res
}

// bi sums the expansion b_i(θ) = Σ_j (−1)^(j+1) (2j+2) θ^(2j) / (2j+2+i)!.
func (s *Series) bi(i int, theta float64) float64 {
	t2, t4, t6, t8, t10 := thetaPowers(theta)
	terms := [seriesTerms]float64{-2, 4 * t2, -6 * t4, 8 * t6, -10 * t8, 12 * t10}
	var res float64
	for j := 0; j < seriesTerms; j++ {
		// Deepest factorial index: 2 + 2*5 + 2 = 14, inside the table.
		res += terms[j] * invFactorials[2+2*j+i]
	}
	return res
}
