package geo

import (
	"math"
)

// A 2D Vector with components (x, y) based on the origin
type Vector []float64

func NewVector(components ...float64) Vector {
	return components
}

func (a Vector) Add(b Vector) Vector {
	c := make(Vector, len(a))
	for i := range a {
		c[i] = a[i] + b[i]
	}
	return c
}

func (a Vector) Minus(b Vector) Vector {
	c := make(Vector, len(a))
	for i := range a {
		c[i] = a[i] - b[i]
	}
	return c
}

func (a Vector) Multiply(v float64) Vector {
	c := make(Vector, len(a))
	for i := range a {
		c[i] = a[i] * v
	}
	return c
}

func (a Vector) Length() float64 {
	sum := 0.0
	for _, comp := range a {
		sum += comp * comp
	}
	return math.Sqrt(sum)
}

func (a Vector) IsZero() bool {
	return a.Length() == 0
}

// Unit returns the unit Vector pointing in the same direction.
// The zero Vector has no direction, so it is returned as is.
func (a Vector) Unit() Vector {
	l := a.Length()
	if l == 0 {
		return a.Multiply(0)
	}
	c := make(Vector, len(a))
	for i := range a {
		c[i] = a[i] / l
	}
	return c
}

// Normal returns the vector rotated 90 degrees counter-clockwise (on a y-down canvas, clockwise).
func (a Vector) Normal() Vector {
	return NewVector(-a[1], a[0])
}

func (a Vector) ToPoint() *Point {
	return &Point{a[0], a[1]}
}

func (a Vector) equals(b Vector) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
