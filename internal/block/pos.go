package block

// Pos is a block position, world-absolute unless stated otherwise.
type Pos struct {
	X, Y, Z int
}

func (p Pos) Add(q Pos) Pos {
	return Pos{p.X + q.X, p.Y + q.Y, p.Z + q.Z}
}

func (p Pos) Sub(q Pos) Pos {
	return Pos{p.X - q.X, p.Y - q.Y, p.Z - q.Z}
}

// MinCorner returns the component-wise minimum of a and b.
func MinCorner(a, b Pos) Pos {
	return Pos{minInt(a.X, b.X), minInt(a.Y, b.Y), minInt(a.Z, b.Z)}
}

// MaxCorner returns the component-wise maximum of a and b.
func MaxCorner(a, b Pos) Pos {
	return Pos{maxInt(a.X, b.X), maxInt(a.Y, b.Y), maxInt(a.Z, b.Z)}
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
