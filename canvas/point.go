package canvas

import "math"

// Point is a position or vector in pixels. X grows to the right and Y
// grows downwards, as on the output image.
type Point struct {
	X, Y float64
}

// Pt is a convenience function to create a Point.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Add returns the sum of two points (vector addition).
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the difference of two points (vector subtraction).
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Mul returns the point scaled by a scalar.
func (p Point) Mul(s float64) Point {
	return Point{X: p.X * s, Y: p.Y * s}
}

// Dot returns the dot product of two vectors.
func (p Point) Dot(q Point) float64 {
	return p.X*q.X + p.Y*q.Y
}

// Cross returns the 2D cross product (scalar).
func (p Point) Cross(q Point) float64 {
	return p.X*q.Y - p.Y*q.X
}

// Length returns the length of the vector.
func (p Point) Length() float64 {
	return math.Hypot(p.X, p.Y)
}

// Distance returns the distance between two points.
func (p Point) Distance(q Point) float64 {
	return p.Sub(q).Length()
}

// Polar returns the point at distance r from p in direction a.
// Directions are in radians, clockwise from straight up.
func (p Point) Polar(r, a float64) Point {
	return Point{
		X: p.X + r*math.Sin(a),
		Y: p.Y - r*math.Cos(a),
	}
}

// Bearing returns the direction of the vector in radians, clockwise from
// straight up, in the range [-π, π].
func (p Point) Bearing() float64 {
	return math.Atan2(p.X, -p.Y)
}
