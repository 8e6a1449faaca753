package grid

const (
	MatrixDays  = 7
	MatrixHours = 24

	// MaxPriorityValue is the largest value a matrix cell may hold.
	MaxPriorityValue = 4
)

// PriorityMatrix is a participant's per-hour availability, one row per day
// in canonical order. Zero means unavailable.
type PriorityMatrix [][]int

// NewPriorityMatrix returns a zeroed 7x24 matrix.
func NewPriorityMatrix() PriorityMatrix {
	m := make(PriorityMatrix, MatrixDays)
	for d := range m {
		m[d] = make([]int, MatrixHours)
	}
	return m
}

// IsWellFormed reports whether m is exactly 7x24 with every value in 0..4.
func (m PriorityMatrix) IsWellFormed() bool {
	if len(m) != MatrixDays {
		return false
	}
	for _, row := range m {
		if len(row) != MatrixHours {
			return false
		}
		for _, v := range row {
			if v < 0 || v > MaxPriorityValue {
				return false
			}
		}
	}
	return true
}
