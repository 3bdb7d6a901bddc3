// Package sparse provides the dual CSC/CSR sparse matrix layer used by the
// simplex core: a column-major primary store for FTRAN/BTRAN column
// extraction, with an optional row-major adjunct built lazily for
// row-oriented constraint queries.
package sparse

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/sparselp/engine/numeric"
)

// ErrRowAccess and ErrColAccess are panic values for out-of-range index
// access, in the style of gonum's matrix.ErrRowAccess/ErrColAccess.
var (
	ErrRowAccess = errors.New("sparse: row index out of range")
	ErrColAccess = errors.New("sparse: column index out of range")
	ErrShape     = errors.New("sparse: dimension mismatch")
)

// ErrOutOfMemory names a workspace-budget failure. No function in this
// package returns it: the CSR build (RowView) has no error result, and an
// allocation failure there surfaces as a Go runtime panic.
var ErrOutOfMemory = errors.New("sparse: workspace allocation exceeded budget")

// Sense encodes a constraint relational operator.
type Sense byte

const (
	LessEqual    Sense = '<'
	Equal        Sense = '='
	GreaterEqual Sense = '>'
)

// CSC is a Compressed Sparse Column matrix: the primary storage format for
// the constraint matrix A. Columns are stored contiguously, which matches
// the access pattern of FTRAN (column extraction) and y←Ax with a mostly
// dense x.
//
// ColPtr has length n+1 and is monotone non-decreasing with
// ColPtr[n] == nnz. RowIdx and Values both have length nnz; within a
// column, RowIdx is not required to be sorted.
type CSC struct {
	nrows, ncols int
	ColPtr       []int64
	RowIdx       []int32
	Values       []float64

	csr      *CSR
	rowReady bool
}

var _ mat.Matrix = (*CSC)(nil)

// NewCSC builds a CSC matrix over the supplied backing slices. The slices
// are used directly (not copied); mutating them after construction
// invalidates any CSR adjunct already built and the caller must call
// InvalidateRowView.
func NewCSC(nrows, ncols int, colPtr []int64, rowIdx []int32, values []float64) *CSC {
	if nrows < 0 {
		panic(ErrRowAccess)
	}
	if ncols < 0 {
		panic(ErrColAccess)
	}
	if len(colPtr) != ncols+1 {
		panic(fmt.Errorf("%w: colPtr length %d, want %d", ErrShape, len(colPtr), ncols+1))
	}
	if len(rowIdx) != len(values) {
		panic(fmt.Errorf("%w: rowIdx/values length mismatch", ErrShape))
	}
	return &CSC{nrows: nrows, ncols: ncols, ColPtr: colPtr, RowIdx: rowIdx, Values: values}
}

// Dims implements mat.Matrix.
func (c *CSC) Dims() (r, cc int) { return c.nrows, c.ncols }

// At implements mat.Matrix. It is a linear scan within the column; callers
// needing repeated random access should convert to a dense working copy.
func (c *CSC) At(i, j int) float64 {
	if uint(i) >= uint(c.nrows) {
		panic(ErrRowAccess)
	}
	if uint(j) >= uint(c.ncols) {
		panic(ErrColAccess)
	}
	for k := c.ColPtr[j]; k < c.ColPtr[j+1]; k++ {
		if int(c.RowIdx[k]) == i {
			return c.Values[k]
		}
	}
	return 0
}

// T returns the transpose as a view. Because CSR is column/row dual to CSC,
// transposing is a relabeling: it wraps the CSC itself so that Dims/At
// read as transposed; no CSR adjunct is built.
func (c *CSC) T() mat.Matrix {
	return transposeView{m: c}
}

// NNZ returns the number of stored (structurally non-zero) entries.
func (c *CSC) NNZ() int { return len(c.Values) }

// Col returns the (rowIdx, values) slices for column j without copying.
func (c *CSC) Col(j int) (rowIdx []int32, values []float64) {
	if uint(j) >= uint(c.ncols) {
		panic(ErrColAccess)
	}
	lo, hi := c.ColPtr[j], c.ColPtr[j+1]
	return c.RowIdx[lo:hi], c.Values[lo:hi]
}

// transposeView presents a CSC (or CSR) matrix transposed without copying,
// satisfying mat.Matrix for use with gonum helpers that accept a generic
// Matrix.
type transposeView struct {
	m mat.Matrix
}

func (t transposeView) Dims() (r, c int) {
	c, r = t.m.Dims()
	return r, c
}

func (t transposeView) At(i, j int) float64 { return t.m.At(j, i) }

func (t transposeView) T() mat.Matrix { return t.m }

// FromTriplets builds a CSC matrix from unordered (row, col, value)
// triplets, in the manner of the teacher's COO "creational" format feeding
// an "operational" CSR/CSC format. Duplicate (row, col) pairs are summed.
func FromTriplets(nrows, ncols int, rows, cols []int32, values []float64) *CSC {
	if len(rows) != len(cols) || len(rows) != len(values) {
		panic(fmt.Errorf("%w: triplet slices must be equal length", ErrShape))
	}

	counts := make([]int64, ncols+1)
	for _, j := range cols {
		counts[j+1]++
	}
	for j := 0; j < ncols; j++ {
		counts[j+1] += counts[j]
	}

	nnz := len(values)
	rowIdx := make([]int32, nnz)
	vals := make([]float64, nnz)
	cursor := make([]int64, ncols)
	copy(cursor, counts[:ncols])

	for k := range values {
		j := cols[k]
		pos := cursor[j]
		rowIdx[pos] = rows[k]
		vals[pos] = values[k]
		cursor[j]++
	}

	c := &CSC{nrows: nrows, ncols: ncols, ColPtr: counts, RowIdx: rowIdx, Values: vals}
	c.coalesce()
	return c
}

// coalesce sums duplicate (row, col) entries within each column in place,
// shrinking RowIdx/Values to the deduplicated length, then canonicalizes
// each column's surviving entries into ascending row order. Triplets arrive
// in whatever order the caller supplied them, so without this pass a
// column's stored order would be insertion order, not row order; the sort
// makes FromTriplets output independent of caller ordering. (RowView's
// reverse-iteration transpose yields ascending columns within each row
// whatever the row order inside a column.)
func (c *CSC) coalesce() {
	write := int64(0)
	newPtr := make([]int64, c.ncols+1)
	seen := make(map[int32]int64, 8)

	for j := 0; j < c.ncols; j++ {
		newPtr[j] = write
		lo, hi := c.ColPtr[j], c.ColPtr[j+1]
		for k := range seen {
			delete(seen, k)
		}
		for k := lo; k < hi; k++ {
			r := c.RowIdx[k]
			if pos, ok := seen[r]; ok {
				c.Values[pos] += c.Values[k]
				continue
			}
			seen[r] = write
			c.RowIdx[write] = r
			c.Values[write] = c.Values[k]
			write++
		}
	}
	newPtr[c.ncols] = write
	c.ColPtr = newPtr
	c.RowIdx = c.RowIdx[:write]
	c.Values = c.Values[:write]

	for j := 0; j < c.ncols; j++ {
		lo, hi := newPtr[j], newPtr[j+1]
		numeric.SortIntsValues(c.RowIdx[lo:hi], c.Values[lo:hi])
	}
}

// InvalidateRowView discards the CSR adjunct, forcing the next RowView call
// to rebuild it. Call after mutating ColPtr/RowIdx/Values directly.
func (c *CSC) InvalidateRowView() {
	c.csr = nil
	c.rowReady = false
}
