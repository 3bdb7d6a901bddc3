package sparse

import "math"

// MulVec computes y ← Ax (overwrite=true zeroes y first) or y ← y + Ax
// (overwrite=false). Columns with x[j] == 0 are skipped entirely, which
// matters during Phase I where the sparse work vector is mostly zero.
func (c *CSC) MulVec(y, x []float64, overwrite bool) {
	if len(x) != c.ncols || len(y) != c.nrows {
		panic(ErrShape)
	}
	if overwrite {
		for i := range y {
			y[i] = 0
		}
	}
	for j := 0; j < c.ncols; j++ {
		xj := x[j]
		if xj == 0 {
			continue
		}
		lo, hi := c.ColPtr[j], c.ColPtr[j+1]
		for k := lo; k < hi; k++ {
			y[c.RowIdx[k]] += c.Values[k] * xj
		}
	}
}

// MulVecTrans computes y ← Aᵀx (overwrite=true zeroes y first) or
// y ← y + Aᵀx. Iterates columns of A directly — no CSR build required,
// since Aᵀ's rows are A's columns.
func (c *CSC) MulVecTrans(y, x []float64, overwrite bool) {
	if len(x) != c.nrows || len(y) != c.ncols {
		panic(ErrShape)
	}
	if overwrite {
		for j := range y {
			y[j] = 0
		}
	}
	for j := 0; j < c.ncols; j++ {
		lo, hi := c.ColPtr[j], c.ColPtr[j+1]
		var sum float64
		for k := lo; k < hi; k++ {
			sum += c.Values[k] * x[c.RowIdx[k]]
		}
		y[j] += sum
	}
}

// DotSparseDense returns the dot product of a sparse (idx, val) pair and a
// dense vector, iterating only the sparse side.
func DotSparseDense(idx []int32, val []float64, dense []float64) float64 {
	var sum float64
	for k, i := range idx {
		sum += val[k] * dense[i]
	}
	return sum
}

// DotSparseSparse merges two ascending-index sparse vectors and sums the
// element-wise product over shared indices, in the manner of the teacher's
// dotSparseSparse for sparse Vector x sparse Vector.
func DotSparseSparse(aIdx []int32, aVal []float64, bIdx []int32, bVal []float64) float64 {
	var sum float64
	var i, j int
	for i < len(aIdx) && j < len(bIdx) {
		switch {
		case aIdx[i] == bIdx[j]:
			sum += aVal[i] * bVal[j]
			i++
			j++
		case aIdx[i] < bIdx[j]:
			i++
		default:
			j++
		}
	}
	return sum
}

// NormKind selects which vector norm Norm computes.
type NormKind int

const (
	NormL1 NormKind = iota
	NormL2
	NormInf
)

// Norm computes the L1/L2/L∞ norm of a dense vector selected by kind. L2
// uses Kahan-compensated summation of squares (see numeric.KahanSum) before
// taking the square root, keeping error O(ε) instead of O(nε) on long
// vectors. Overflow on pathologically large vectors is permitted to surface
// as +Inf; rescaling to avoid it is a possible future optimization, not
// implemented here.
func Norm(v []float64, kind NormKind) float64 {
	switch kind {
	case NormL1:
		var sum float64
		for _, x := range v {
			sum += math.Abs(x)
		}
		return sum
	case NormInf:
		var max float64
		for _, x := range v {
			if a := math.Abs(x); a > max {
				max = a
			}
		}
		return max
	default: // NormL2
		sum, c := 0.0, 0.0
		for _, x := range v {
			sq := x * x
			y := sq - c
			t := sum + y
			c = (t - sum) - y
			sum = t
		}
		return math.Sqrt(sum)
	}
}
