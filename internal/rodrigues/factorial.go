package rodrigues

import "github.com/ncw/gmp"

// nFactorials is the size of the inverse-factorial table. The deepest series
// term indexes invFactorials[2 + 2*5 + 2] = 14, so 15 entries suffice.
const nFactorials = 15

// invFactorials holds 1/n! for n in [0, nFactorials). Built once before use
// from exact integer factorials and never mutated.
var invFactorials = buildInvFactorials()

func buildInvFactorials() [nFactorials]float64 {
	var table [nFactorials]float64
	table[0] = 1
	f := gmp.NewInt(1)
	for n := int64(1); n < nFactorials; n++ {
		f.Mul(f, gmp.NewInt(n))
		table[n] = 1 / float64(f.Int64())
	}
	return table
}
