package orchestration

// BuildGrid returns the evaluation angles: points values spaced by step,
// centered on center. With an odd point count the center angle itself is on
// the grid; with an even count the grid extends one extra step below it. The
// index arithmetic is integer, so for the default configuration (101 points,
// step 1e-2, center 0) the midpoint is exactly 0.
func BuildGrid(points int, step, center float64) []float64 {
	thetas := make([]float64, points)
	m := -points / 2
	for i := 0; i < points; i++ {
		thetas[i] = center + float64(m)*step
		m++
	}
	return thetas
}
