package manif

import (
	"math"
)

type Vec2[T Scalar] struct {
	X T
	Y T
}

// V2 returns the vector ⟨x, y⟩.
func V2[T Scalar](x, y T) Vec2[T] {
	return Vec2[T]{X: x, Y: y}
}

// Splat returns the vector's x and y coordinates.
func (v Vec2[T]) Splat() (T, T) {
	return v.X, v.Y
}

// Dot returns the dot product of v and o.
func (v Vec2[T]) Dot(o Vec2[T]) T {
	return v.X*o.X + v.Y*o.Y
}

// Cross returns the z component of the cross product of v and o.
func (v Vec2[T]) Cross(o Vec2[T]) T {
	return v.X*o.Y - v.Y*o.X
}

// Norm returns the magnitude of the vector.
func (v Vec2[T]) Norm() T {
	return hypot(v.X, v.Y)
}

// Norm2 returns the squared magnitude of the vector.
//
// This function is more efficient than squaring the result of [Vec2.Norm],
// but it can overflow or underflow for very large or very small vectors.
func (v Vec2[T]) Norm2() T {
	return v.Dot(v)
}

// Normalize returns a vector of magnitude 1 with the same direction as v.
// It returns [ErrDegenerate] if v has zero or non-finite magnitude.
func (v Vec2[T]) Normalize() (Vec2[T], error) {
	arr := [2]T{v.X, v.Y}
	if !normalize(arr[:]) {
		return Vec2[T]{}, opError("normalize", ErrDegenerate)
	}
	return Vec2[T]{arr[0], arr[1]}, nil
}

func (v Vec2[T]) Add(o Vec2[T]) Vec2[T] {
	return Vec2[T]{
		X: v.X + o.X,
		Y: v.Y + o.Y,
	}
}

func (v Vec2[T]) Sub(o Vec2[T]) Vec2[T] {
	return Vec2[T]{
		X: v.X - o.X,
		Y: v.Y - o.Y,
	}
}

func (v Vec2[T]) Mul(f T) Vec2[T] {
	return Vec2[T]{
		X: v.X * f,
		Y: v.Y * f,
	}
}

// Negate returns a new vector with the signs of x and y flipped.
func (v Vec2[T]) Negate() Vec2[T] {
	return Vec2[T]{
		X: -v.X,
		Y: -v.Y,
	}
}

// IsInf reports whether at least one of x and y is infinite.
func (v Vec2[T]) IsInf() bool {
	return math.IsInf(float64(v.X), 0) || math.IsInf(float64(v.Y), 0)
}

// IsNaN reports whether at least one of x and y is NaN.
func (v Vec2[T]) IsNaN() bool {
	return math.IsNaN(float64(v.X)) || math.IsNaN(float64(v.Y))
}

type Vec3[T Scalar] struct {
	X T
	Y T
	Z T
}

// V3 returns the vector ⟨x, y, z⟩.
func V3[T Scalar](x, y, z T) Vec3[T] {
	return Vec3[T]{X: x, Y: y, Z: z}
}

// Unit vectors along the coordinate axes.
func UnitX[T Scalar]() Vec3[T] { return Vec3[T]{X: 1} }
func UnitY[T Scalar]() Vec3[T] { return Vec3[T]{Y: 1} }
func UnitZ[T Scalar]() Vec3[T] { return Vec3[T]{Z: 1} }

// Splat returns the vector's x, y and z coordinates.
func (v Vec3[T]) Splat() (T, T, T) {
	return v.X, v.Y, v.Z
}

// Dot returns the dot product of v and o.
func (v Vec3[T]) Dot(o Vec3[T]) T {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z
}

// Cross returns the cross product v × o.
func (v Vec3[T]) Cross(o Vec3[T]) Vec3[T] {
	return Vec3[T]{
		X: v.Y*o.Z - v.Z*o.Y,
		Y: v.Z*o.X - v.X*o.Z,
		Z: v.X*o.Y - v.Y*o.X,
	}
}

// Norm returns the magnitude of the vector.
func (v Vec3[T]) Norm() T {
	return hypot(v.X, v.Y, v.Z)
}

// Norm2 returns the squared magnitude of the vector. Unlike [Vec3.Norm], it
// can overflow or underflow for very large or very small vectors.
func (v Vec3[T]) Norm2() T {
	return v.Dot(v)
}

// Normalize returns a vector of magnitude 1 with the same direction as v.
// It returns [ErrDegenerate] if v has zero or non-finite magnitude.
func (v Vec3[T]) Normalize() (Vec3[T], error) {
	arr := [3]T{v.X, v.Y, v.Z}
	if !normalize(arr[:]) {
		return Vec3[T]{}, opError("normalize", ErrDegenerate)
	}
	return Vec3[T]{arr[0], arr[1], arr[2]}, nil
}

func (v Vec3[T]) Add(o Vec3[T]) Vec3[T] {
	return Vec3[T]{
		X: v.X + o.X,
		Y: v.Y + o.Y,
		Z: v.Z + o.Z,
	}
}

func (v Vec3[T]) Sub(o Vec3[T]) Vec3[T] {
	return Vec3[T]{
		X: v.X - o.X,
		Y: v.Y - o.Y,
		Z: v.Z - o.Z,
	}
}

func (v Vec3[T]) Mul(f T) Vec3[T] {
	return Vec3[T]{
		X: v.X * f,
		Y: v.Y * f,
		Z: v.Z * f,
	}
}

// Negate returns a new vector with all signs flipped.
func (v Vec3[T]) Negate() Vec3[T] {
	return Vec3[T]{
		X: -v.X,
		Y: -v.Y,
		Z: -v.Z,
	}
}

// IsInf reports whether at least one of x, y and z is infinite.
func (v Vec3[T]) IsInf() bool {
	return math.IsInf(float64(v.X), 0) || math.IsInf(float64(v.Y), 0) || math.IsInf(float64(v.Z), 0)
}

// IsNaN reports whether at least one of x, y and z is NaN.
func (v Vec3[T]) IsNaN() bool {
	return math.IsNaN(float64(v.X)) || math.IsNaN(float64(v.Y)) || math.IsNaN(float64(v.Z))
}
