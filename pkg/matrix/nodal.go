package matrix

import (
	"fmt"

	"github.com/edp1096/sparse"
)

// NodalMatrix wraps a sparse complex modified nodal admittance system.
// Indices are 1 based; index 0 is the ground node and is dropped on
// stamping, which keeps the callers free of ground special cases.
type NodalMatrix struct {
	Size         int
	matrix       *sparse.Matrix
	rhs          []float64
	rhsImag      []float64
	solution     []float64
	solutionImag []float64
	config       *sparse.Configuration
}

// NewNodal creates an empty complex system with size unknowns.
func NewNodal(size int) (*NodalMatrix, error) {
	config := &sparse.Configuration{
		Real:                    true,
		Complex:                 true,
		SeparatedComplexVectors: false,
		Expandable:              true,
		Translate:               true,
		ModifiedNodal:           true,
		TiesMultiplier:          5,
		PrinterWidth:            140,
	}

	mat, err := sparse.Create(int64(size), config)
	if err != nil {
		return nil, fmt.Errorf("creating sparse matrix: %v", err)
	}

	// Prime every position once. Clear keeps the pattern, so later stamps
	// reuse the elements and factoring never meets a missing diagonal even
	// on source branch rows.
	for i := 1; i <= size; i++ {
		for j := 1; j <= size; j++ {
			mat.GetElement(int64(i), int64(j))
		}
	}

	// With SeparatedComplexVectors off the real vectors carry interleaved
	// real and imag parts and the imag vectors are placeholders.
	vectorSize := (size + 1) * 2
	return &NodalMatrix{
		Size:         size,
		matrix:       mat,
		rhs:          make([]float64, vectorSize), // 1 based indexing
		rhsImag:      make([]float64, 1),
		solution:     make([]float64, vectorSize),
		solutionImag: make([]float64, 1),
		config:       config,
	}, nil
}

// Add accumulates value into entry (i, j). Ground entries are dropped.
func (m *NodalMatrix) Add(i, j int, value complex128) {
	if i == 0 || j == 0 {
		return
	}
	if i < 0 || j < 0 || i > m.Size || j > m.Size {
		fmt.Printf("Warning: matrix index out of bounds (i=%d, j=%d, size=%d)\n", i, j, m.Size)
		return
	}
	element := m.matrix.GetElement(int64(i), int64(j))
	element.Real += real(value)
	element.Imag += imag(value)
}

// AddRHS accumulates value into right hand side entry i. The ground entry
// is dropped.
func (m *NodalMatrix) AddRHS(i int, value complex128) {
	if i == 0 {
		return
	}
	if i < 0 || i > m.Size {
		fmt.Printf("Warning: RHS index out of bounds (i=%d, size=%d)\n", i, m.Size)
		return
	}
	m.rhs[2*i] += real(value)
	m.rhs[2*i+1] += imag(value)
}

// Clear zeroes the matrix and the right hand side but keeps the sparse
// pattern, so a restamp and solve cycle does not reallocate.
func (m *NodalMatrix) Clear() {
	m.matrix.Clear()
	for i := range m.rhs {
		m.rhs[i] = 0
	}
	for i := range m.rhsImag {
		m.rhsImag[i] = 0
	}
}

// Solve factors the system and solves it for the current right hand side.
func (m *NodalMatrix) Solve() error {
	if err := m.matrix.Factor(); err != nil {
		return fmt.Errorf("matrix factorization failed: %v", err)
	}

	var err error
	m.solution, m.solutionImag, err = m.matrix.SolveComplex(m.rhs, m.rhsImag)
	if err != nil {
		return fmt.Errorf("matrix solve failed: %v", err)
	}
	return nil
}

// Solution returns unknown i of the last solve. The solution vector is
// interleaved like the right hand side, real part at 2*i and imaginary part
// at 2*i+1.
func (m *NodalMatrix) Solution(i int) complex128 {
	if i <= 0 || i > m.Size {
		return 0
	}
	return complex(m.solution[2*i], m.solution[2*i+1])
}

// Destroy releases the underlying sparse storage.
func (m *NodalMatrix) Destroy() {
	if m.matrix != nil {
		m.matrix.Destroy()
	}
}
