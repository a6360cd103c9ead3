package lattice

import (
	"strings"
)

// Spin is the orientation of a single lattice site.
type Spin int8

const (
	Up   Spin = 1
	Down Spin = -1
)

// Valid reports whether s is one of Up or Down.
func (s Spin) Valid() bool { return s == Up || s == Down }

// Float64Source yields uniform values in [0, 1).
type Float64Source interface {
	Float64() float64
}

// Lattice is a toroidal 2D grid of spins stored in row-major order.
type Lattice struct {
	rows, cols int
	spins      []Spin
}

// New allocates a lattice with every spin Up.
func New(rows, cols int) (*Lattice, error) {
	return Uniform(rows, cols, Up)
}

// Uniform allocates a lattice with every spin set to s.
func Uniform(rows, cols int, s Spin) (*Lattice, error) {
	if rows <= 0 || cols <= 0 {
		return nil, &DimensionError{Rows: rows, Cols: cols}
	}
	if !s.Valid() {
		return nil, &SpinError{Value: int(s)}
	}
	l := &Lattice{rows: rows, cols: cols, spins: make([]Spin, rows*cols)}
	for i := range l.spins {
		l.spins[i] = s
	}
	return l, nil
}

// Random allocates a lattice where each site is Up when a draw from r
// exceeds one half and Down otherwise. Draws are taken in row-major order.
func Random(rows, cols int, r Float64Source) (*Lattice, error) {
	l, err := New(rows, cols)
	if err != nil {
		return nil, err
	}
	for i := range l.spins {
		if r.Float64() > 0.5 {
			l.spins[i] = Up
		} else {
			l.spins[i] = Down
		}
	}
	return l, nil
}

// FromRows builds a lattice from a rectangular slice of rows.
func FromRows(data [][]int) (*Lattice, error) {
	if len(data) == 0 {
		return nil, &DimensionError{Rows: 0, Cols: 0}
	}
	rows, cols := len(data), len(data[0])
	l, err := New(rows, cols)
	if err != nil {
		return nil, err
	}
	for r, row := range data {
		if len(row) != cols {
			return nil, &DimensionError{Rows: rows, Cols: len(row)}
		}
		for c, v := range row {
			if err := l.Set(r, c, Spin(v)); err != nil {
				return nil, &SpinError{Row: r, Col: c, Value: v}
			}
		}
	}
	return l, nil
}

func (l *Lattice) Rows() int { return l.rows }
func (l *Lattice) Cols() int { return l.cols }

// Size returns the number of sites.
func (l *Lattice) Size() int { return len(l.spins) }

// Index returns the linear slice index for (row, col) after wrapping.
func (l *Lattice) Index(row, col int) int {
	row, col = l.Wrap(row, col)
	return row*l.cols + col
}

// Wrap applies toroidal wrapping to the provided coordinates.
func (l *Lattice) Wrap(row, col int) (int, int) {
	row = (row%l.rows + l.rows) % l.rows
	col = (col%l.cols + l.cols) % l.cols
	return row, col
}

// At returns the spin at (row, col), wrapping out-of-range coordinates.
func (l *Lattice) At(row, col int) Spin {
	return l.spins[l.Index(row, col)]
}

// Set writes s at (row, col).
func (l *Lattice) Set(row, col int, s Spin) error {
	if !s.Valid() {
		return &SpinError{Row: row, Col: col, Value: int(s)}
	}
	l.spins[l.Index(row, col)] = s
	return nil
}

// Flip inverts the spin at (row, col) and returns the new value.
func (l *Lattice) Flip(row, col int) Spin {
	i := l.Index(row, col)
	l.spins[i] = -l.spins[i]
	return l.spins[i]
}

// NeighborSum returns the sum of the four nearest neighbours of (row, col):
// below, right, above, left. Neighbours wrap around the lattice edges and
// may include the site itself on narrow lattices.
func (l *Lattice) NeighborSum(row, col int) int {
	return int(l.At(row+1, col)) +
		int(l.At(row, col+1)) +
		int(l.At(row-1, col)) +
		int(l.At(row, col-1))
}

// Spins exposes a read-only copy of the backing slice.
func (l *Lattice) Spins() []Spin {
	out := make([]Spin, len(l.spins))
	copy(out, l.spins)
	return out
}

// Clone returns an independent deep copy.
func (l *Lattice) Clone() *Lattice {
	c := &Lattice{rows: l.rows, cols: l.cols, spins: make([]Spin, len(l.spins))}
	copy(c.spins, l.spins)
	return c
}

// CopyFrom overwrites l with the spins of src. Shapes must match.
func (l *Lattice) CopyFrom(src *Lattice) error {
	if src.rows != l.rows || src.cols != l.cols {
		return &DimensionError{Rows: src.rows, Cols: src.cols}
	}
	copy(l.spins, src.spins)
	return nil
}

// Negate flips every spin.
func (l *Lattice) Negate() {
	for i := range l.spins {
		l.spins[i] = -l.spins[i]
	}
}

// Equal reports whether both lattices have the same shape and spins.
func (l *Lattice) Equal(o *Lattice) bool {
	if o == nil || l.rows != o.rows || l.cols != o.cols {
		return false
	}
	for i := range l.spins {
		if l.spins[i] != o.spins[i] {
			return false
		}
	}
	return true
}

// Validate checks that every site holds -1 or +1.
func (l *Lattice) Validate() error {
	if l.rows <= 0 || l.cols <= 0 || len(l.spins) != l.rows*l.cols {
		return &DimensionError{Rows: l.rows, Cols: l.cols}
	}
	for i, s := range l.spins {
		if !s.Valid() {
			return &SpinError{Row: i / l.cols, Col: i % l.cols, Value: int(s)}
		}
	}
	return nil
}

// ToRows returns the lattice as a plain integer grid.
func (l *Lattice) ToRows() [][]int {
	out := make([][]int, l.rows)
	for r := range out {
		out[r] = make([]int, l.cols)
		for c := range out[r] {
			out[r][c] = int(l.spins[r*l.cols+c])
		}
	}
	return out
}

// String renders Up as '+' and Down as '-', one row per line.
func (l *Lattice) String() string {
	var sb strings.Builder
	sb.Grow(l.rows * (l.cols + 1))
	for r := 0; r < l.rows; r++ {
		for c := 0; c < l.cols; c++ {
			if l.spins[r*l.cols+c] == Up {
				sb.WriteByte('+')
			} else {
				sb.WriteByte('-')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Parse reads the String form back into a lattice.
func Parse(s string) (*Lattice, error) {
	lines := strings.Fields(s)
	data := make([][]int, 0, len(lines))
	for r, line := range lines {
		row := make([]int, len(line))
		for c, ch := range line {
			switch ch {
			case '+':
				row[c] = 1
			case '-':
				row[c] = -1
			default:
				return nil, &SpinError{Row: r, Col: c, Value: int(ch)}
			}
		}
		data = append(data, row)
	}
	return FromRows(data)
}
