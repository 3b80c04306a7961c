package core

import (
	"fmt"
	"math"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
)

// maxMatrixSize bounds both dimensions; 4x4 covers every affine transform.
const maxMatrixSize = 4

// Matrix is an immutable row-major grid of at most 4x4 floats.
// Operations on incompatible shapes return defined but meaningless values
// instead of failing: a zero 4x4 for products, NaN for determinants and
// out-of-range reads, a zero matrix for singular inverses.
type Matrix struct {
	width, height int
	data          [maxMatrixSize * maxMatrixSize]float64
}

// NewMatrix creates a width x height matrix from row-major values.
// Missing values are zero and extra values are ignored. Dimensions
// outside [1, 4] produce the default zero 4x4 matrix.
func NewMatrix(width, height int, values ...float64) Matrix {
	if width < 1 || height < 1 || width > maxMatrixSize || height > maxMatrixSize {
		return zeroMatrix(maxMatrixSize, maxMatrixSize)
	}
	m := zeroMatrix(width, height)
	for i := 0; i < len(values) && i < width*height; i++ {
		m.data[(i/width)*maxMatrixSize+i%width] = values[i]
	}
	return m
}

// NewMatrixFromRows creates a matrix from a slice of equally sized rows
func NewMatrixFromRows(rows [][]float64) Matrix {
	if len(rows) == 0 {
		return zeroMatrix(maxMatrixSize, maxMatrixSize)
	}
	values := make([]float64, 0, len(rows)*len(rows[0]))
	for _, row := range rows {
		if len(row) != len(rows[0]) {
			return zeroMatrix(maxMatrixSize, maxMatrixSize)
		}
		values = append(values, row...)
	}
	return NewMatrix(len(rows[0]), len(rows), values...)
}

// Identity returns the n x n identity matrix
func Identity(n int) Matrix {
	if n < 1 || n > maxMatrixSize {
		return zeroMatrix(maxMatrixSize, maxMatrixSize)
	}
	m := zeroMatrix(n, n)
	for i := 0; i < n; i++ {
		m.data[i*maxMatrixSize+i] = 1
	}
	return m
}

// Identity4 returns the 4x4 identity matrix
func Identity4() Matrix {
	return Identity(4)
}

// MatrixFromMat4 converts a column-major mathgl matrix into a Matrix
func MatrixFromMat4(m mgl64.Mat4) Matrix {
	out := zeroMatrix(4, 4)
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			out.data[row*maxMatrixSize+col] = m.At(row, col)
		}
	}
	return out
}

func zeroMatrix(width, height int) Matrix {
	return Matrix{width: width, height: height}
}

// Width returns the number of columns
func (m Matrix) Width() int { return m.width }

// Height returns the number of rows
func (m Matrix) Height() int { return m.height }

// IsSquare reports whether the matrix has as many rows as columns
func (m Matrix) IsSquare() bool { return m.width == m.height }

// At returns the element at row, col or NaN when out of range
func (m Matrix) At(row, col int) float64 {
	if row < 0 || col < 0 || row >= m.height || col >= m.width {
		return math.NaN()
	}
	return m.data[row*maxMatrixSize+col]
}

// With returns a copy of the matrix with one element replaced
func (m Matrix) With(row, col int, value float64) Matrix {
	if row < 0 || col < 0 || row >= m.height || col >= m.width {
		return m
	}
	m.data[row*maxMatrixSize+col] = value
	return m
}

// Mat4 converts a 4x4 matrix to mathgl's column-major layout.
// Any other shape converts to the zero matrix.
func (m Matrix) Mat4() mgl64.Mat4 {
	var out mgl64.Mat4
	if m.width != 4 || m.height != 4 {
		return out
	}
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			out[col*4+row] = m.data[row*maxMatrixSize+col]
		}
	}
	return out
}

// Multiply returns m x other. Mismatched shapes return the zero 4x4 matrix.
func (m Matrix) Multiply(other Matrix) Matrix {
	if m.width != other.height || m.width == 0 {
		return zeroMatrix(maxMatrixSize, maxMatrixSize)
	}
	result := zeroMatrix(other.width, m.height)
	for row := 0; row < m.height; row++ {
		for col := 0; col < other.width; col++ {
			sum := 0.0
			for i := 0; i < m.width; i++ {
				sum += m.data[row*maxMatrixSize+i] * other.data[i*maxMatrixSize+col]
			}
			result.data[row*maxMatrixSize+col] = sum
		}
	}
	return result
}

// MultiplyTuple returns m x t. Only 4x4 matrices transform tuples;
// any other shape returns the zero tuple.
func (m Matrix) MultiplyTuple(t Tuple) Tuple {
	if m.width != 4 || m.height != 4 {
		return Tuple{}
	}
	d := &m.data
	return Tuple{
		X: d[0]*t.X + d[1]*t.Y + d[2]*t.Z + d[3]*t.W,
		Y: d[4]*t.X + d[5]*t.Y + d[6]*t.Z + d[7]*t.W,
		Z: d[8]*t.X + d[9]*t.Y + d[10]*t.Z + d[11]*t.W,
		W: d[12]*t.X + d[13]*t.Y + d[14]*t.Z + d[15]*t.W,
	}
}

// MultiplyPoint transforms a point (translation applies)
func (m Matrix) MultiplyPoint(p Point3) Point3 {
	return m.MultiplyTuple(p.Tuple()).Point()
}

// MultiplyVec transforms a vector (translation is ignored)
func (m Matrix) MultiplyVec(v Vec3) Vec3 {
	return m.MultiplyTuple(v.Tuple()).Vec3()
}

// Transpose swaps rows and columns
func (m Matrix) Transpose() Matrix {
	result := zeroMatrix(m.height, m.width)
	for row := 0; row < m.height; row++ {
		for col := 0; col < m.width; col++ {
			result.data[col*maxMatrixSize+row] = m.data[row*maxMatrixSize+col]
		}
	}
	return result
}

// Submatrix returns a copy with one row and one column removed
func (m Matrix) Submatrix(row, col int) Matrix {
	if !m.IsSquare() || m.width < 2 {
		return zeroMatrix(maxMatrixSize, maxMatrixSize)
	}
	result := zeroMatrix(m.width-1, m.height-1)
	idx := 0
	for y := 0; y < m.height; y++ {
		if y == row {
			continue
		}
		for x := 0; x < m.width; x++ {
			if x == col {
				continue
			}
			result.data[(idx/result.width)*maxMatrixSize+idx%result.width] = m.data[y*maxMatrixSize+x]
			idx++
		}
	}
	return result
}

// Minor is the determinant of the submatrix at row, col
func (m Matrix) Minor(row, col int) float64 {
	return m.Submatrix(row, col).Determinant()
}

// Cofactor is the signed minor at row, col
func (m Matrix) Cofactor(row, col int) float64 {
	minor := m.Minor(row, col)
	if (row+col)%2 == 1 {
		return -minor
	}
	return minor
}

// Determinant expands along row 0. Non-square matrices yield NaN.
func (m Matrix) Determinant() float64 {
	if !m.IsSquare() || m.width == 0 {
		return math.NaN()
	}
	switch m.width {
	case 1:
		return m.data[0]
	case 2:
		return m.data[0]*m.data[maxMatrixSize+1] - m.data[1]*m.data[maxMatrixSize]
	}
	det := 0.0
	for col := 0; col < m.width; col++ {
		det += m.data[col] * m.Cofactor(0, col)
	}
	return det
}

// IsInvertible reports whether the determinant is non-zero
func (m Matrix) IsInvertible() bool {
	det := m.Determinant()
	return det != 0 && !math.IsNaN(det)
}

// Inverse returns the adjugate divided by the determinant. A singular
// matrix returns the zero matrix of the same shape; callers must not
// assume the result undoes m.
func (m Matrix) Inverse() Matrix {
	if !m.IsSquare() || m.width == 0 {
		return zeroMatrix(maxMatrixSize, maxMatrixSize)
	}
	det := m.Determinant()
	if det == 0 || math.IsNaN(det) {
		return zeroMatrix(m.width, m.height)
	}
	if m.width == 1 {
		return NewMatrix(1, 1, 1/det)
	}
	result := zeroMatrix(m.width, m.height)
	for row := 0; row < m.height; row++ {
		for col := 0; col < m.width; col++ {
			// transposed store turns the cofactor matrix into the adjugate
			result.data[col*maxMatrixSize+row] = m.Cofactor(row, col) / det
		}
	}
	return result
}

// Equals compares shape and every element within FloatEpsilon
func (m Matrix) Equals(other Matrix) bool {
	if m.width != other.width || m.height != other.height {
		return false
	}
	for row := 0; row < m.height; row++ {
		for col := 0; col < m.width; col++ {
			if !FloatEquals(m.data[row*maxMatrixSize+col], other.data[row*maxMatrixSize+col]) {
				return false
			}
		}
	}
	return true
}

func (m Matrix) String() string {
	var sb strings.Builder
	for row := 0; row < m.height; row++ {
		sb.WriteString("|")
		for col := 0; col < m.width; col++ {
			fmt.Fprintf(&sb, " %8.4f", m.data[row*maxMatrixSize+col])
		}
		sb.WriteString(" |\n")
	}
	return sb.String()
}
