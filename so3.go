package manif

import (
	"math"
	"math/rand/v2"
)

// SO3 is a rotation in 3D space, stored as the unit quaternion
// w + xi + yj + zk.
//
// A quaternion q and its negation -q describe the same rotation. No
// operation picks one sign over the other, and callers comparing rotations
// have to account for that.
//
// The zero value is not a valid rotation; use [IdentitySO3] instead. Values
// are immutable. Every method returns a new rotation.
type SO3[T Scalar] struct {
	w, x, y, z T
}

// IdentitySO3 returns the rotation that leaves every vector unchanged.
func IdentitySO3[T Scalar]() SO3[T] {
	return SO3[T]{w: 1}
}

// SO3FromQuaternion returns the rotation described by the quaternion
// w + xi + yj + zk after normalizing it. It returns [ErrDegenerate] if the
// quaternion is zero.
func SO3FromQuaternion[T Scalar](w, x, y, z T) (SO3[T], error) {
	arr := [4]T{w, x, y, z}
	if !normalize(arr[:]) {
		return SO3[T]{}, opError("SO3FromQuaternion", ErrDegenerate)
	}
	return SO3[T]{w: arr[0], x: arr[1], y: arr[2], z: arr[3]}, nil
}

// SO3FromAxisAngle returns the rotation by angle radians about axis,
// following the right-hand rule. The axis doesn't need to have unit length,
// but it returns [ErrDegenerate] if axis is the zero vector.
func SO3FromAxisAngle[T Scalar](axis Vec3[T], angle T) (SO3[T], error) {
	n, err := axis.Normalize()
	if err != nil {
		return SO3[T]{}, opError("SO3FromAxisAngle", ErrDegenerate)
	}
	return fromUnitAxisAngle(n, angle), nil
}

func fromUnitAxisAngle[T Scalar](axis Vec3[T], angle T) SO3[T] {
	s, c := sincos(angle / 2)
	return SO3[T]{
		w: c,
		x: s * axis.X,
		y: s * axis.Y,
		z: s * axis.Z,
	}.normalized()
}

// SO3FromEuler returns the rotation described by the intrinsic Z-Y-X
// (yaw, pitch, roll) Euler angles, in radians. Applied to a vector, the roll
// about the x axis happens first, then the pitch about the y axis, then the
// yaw about the z axis.
func SO3FromEuler[T Scalar](roll, pitch, yaw T) SO3[T] {
	qRoll := fromUnitAxisAngle(UnitX[T](), roll)
	qPitch := fromUnitAxisAngle(UnitY[T](), pitch)
	qYaw := fromUnitAxisAngle(UnitZ[T](), yaw)
	return qYaw.Compose(qPitch).Compose(qRoll)
}

// SO3FromRotationMatrix returns the rotation described by m, which must be
// a rotation matrix. The result is normalized to absorb small deviations
// from orthogonality. It returns [ErrDegenerate] if m contains NaN or
// infinite values.
func SO3FromRotationMatrix[T Scalar](m Mat3[T]) (SO3[T], error) {
	// Shepperd's method: branch on the largest of the trace and the diagonal
	// elements to avoid dividing by a small number.
	var w, x, y, z T
	if tr := m[0] + m[4] + m[8]; tr > 0 {
		s := 0.5 / sqrt(tr+1)
		w = 0.25 / s
		x = (m[7] - m[5]) * s
		y = (m[2] - m[6]) * s
		z = (m[3] - m[1]) * s
	} else if m[0] > m[4] && m[0] > m[8] {
		s := 2 * sqrt(1+m[0]-m[4]-m[8])
		w = (m[7] - m[5]) / s
		x = 0.25 * s
		y = (m[1] + m[3]) / s
		z = (m[2] + m[6]) / s
	} else if m[4] > m[8] {
		s := 2 * sqrt(1+m[4]-m[0]-m[8])
		w = (m[2] - m[6]) / s
		x = (m[1] + m[3]) / s
		y = 0.25 * s
		z = (m[5] + m[7]) / s
	} else {
		s := 2 * sqrt(1+m[8]-m[0]-m[4])
		w = (m[3] - m[1]) / s
		x = (m[2] + m[6]) / s
		y = (m[5] + m[7]) / s
		z = 0.25 * s
	}
	q, err := SO3FromQuaternion(w, x, y, z)
	if err != nil {
		return SO3[T]{}, opError("SO3FromRotationMatrix", ErrDegenerate)
	}
	return q, nil
}

// RandomSO3 returns a rotation drawn uniformly from SO(3), using src as the
// source of randomness. A nil src uses the global generator.
func RandomSO3[T Scalar](src rand.Source) SO3[T] {
	var arr [4]T
	randomUnit(src, arr[:])
	return SO3[T]{w: arr[0], x: arr[1], y: arr[2], z: arr[3]}
}

// W returns the real part of the quaternion, cos(θ/2).
func (q SO3[T]) W() T { return q.w }

// X returns the i component of the quaternion.
func (q SO3[T]) X() T { return q.x }

// Y returns the j component of the quaternion.
func (q SO3[T]) Y() T { return q.y }

// Z returns the k component of the quaternion.
func (q SO3[T]) Z() T { return q.z }

// Array returns w, x, y and z.
func (q SO3[T]) Array() [4]T {
	return [4]T{q.w, q.x, q.y, q.z}
}

// Norm returns the magnitude of the stored quaternion. It is one up to
// rounding error.
func (q SO3[T]) Norm() T {
	return hypot(q.w, q.x, q.y, q.z)
}

// Compose returns the rotation that applies o first, then q. This is the
// Hamilton product q ⊗ o.
func (q SO3[T]) Compose(o SO3[T]) SO3[T] {
	return SO3[T]{
		w: q.w*o.w - q.x*o.x - q.y*o.y - q.z*o.z,
		x: q.w*o.x + q.x*o.w + q.y*o.z - q.z*o.y,
		y: q.w*o.y - q.x*o.z + q.y*o.w + q.z*o.x,
		z: q.w*o.z + q.x*o.y - q.y*o.x + q.z*o.w,
	}.normalized()
}

// Inverse returns the rotation that undoes q, its conjugate.
func (q SO3[T]) Inverse() SO3[T] {
	return SO3[T]{w: q.w, x: -q.x, y: -q.y, z: -q.z}
}

// Rotate applies the rotation to v, computing q v q⁻¹ without forming the
// rotation matrix.
func (q SO3[T]) Rotate(v Vec3[T]) Vec3[T] {
	qxx := q.x * q.x
	qyy := q.y * q.y
	qzz := q.z * q.z
	qxy := q.x * q.y
	qxz := q.x * q.z
	qyz := q.y * q.z
	qwx := q.w * q.x
	qwy := q.w * q.y
	qwz := q.w * q.z
	return Vec3[T]{
		X: v.X + 2*(-(qyy+qzz)*v.X+(qxy-qwz)*v.Y+(qxz+qwy)*v.Z),
		Y: v.Y + 2*((qxy+qwz)*v.X-(qxx+qzz)*v.Y+(qyz-qwx)*v.Z),
		Z: v.Z + 2*((qxz-qwy)*v.X+(qyz+qwx)*v.Y-(qxx+qyy)*v.Z),
	}
}

// Matrix returns the rotation matrix R such that R·v equals q.Rotate(v).
func (q SO3[T]) Matrix() Mat3[T] {
	w, x, y, z := q.w, q.x, q.y, q.z
	return Mat3[T]{
		1 - 2*(y*y+z*z), 2 * (x*y - w*z), 2 * (x*z + w*y),
		2 * (x*y + w*z), 1 - 2*(x*x+z*z), 2 * (y*z - w*x),
		2 * (x*z - w*y), 2 * (y*z + w*x), 1 - 2*(x*x+y*y),
	}
}

// AxisAngle returns a unit rotation axis and an angle in [0, 2π] such that
// SO3FromAxisAngle(axis, angle) describes the same rotation as q. For the
// identity, the axis is the x axis and the angle is zero.
func (q SO3[T]) AxisAngle() (Vec3[T], T) {
	v := Vec3[T]{q.x, q.y, q.z}
	axis, err := v.Normalize()
	if err != nil {
		return UnitX[T](), 0
	}
	return axis, 2 * atan2(v.Norm(), q.w)
}

// Roll returns the rotation about the x axis, in radians, of the Z-Y-X Euler
// decomposition used by [SO3FromEuler].
func (q SO3[T]) Roll() T {
	return atan2(2*(q.w*q.x+q.y*q.z), 1-2*(q.x*q.x+q.y*q.y))
}

// Pitch returns the rotation about the y axis, in radians, in the range
// [-π/2, π/2].
//
// Near gimbal lock, rounding error can push the sine of the pitch slightly
// outside [-1, 1]. The result then saturates at ±π/2.
func (q SO3[T]) Pitch() T {
	val := 2 * (q.w*q.y - q.x*q.z)
	if abs(val) > 1 {
		return copysign(T(math.Pi/2), val)
	}
	return asin(val)
}

// Yaw returns the rotation about the z axis, in radians.
func (q SO3[T]) Yaw() T {
	return atan2(2*(q.w*q.z+q.x*q.y), 1-2*(q.y*q.y+q.z*q.z))
}

// Euler returns the roll, pitch and yaw of q. See [SO3.Roll], [SO3.Pitch] and
// [SO3.Yaw].
func (q SO3[T]) Euler() (roll, pitch, yaw T) {
	return q.Roll(), q.Pitch(), q.Yaw()
}

func (q SO3[T]) normalized() SO3[T] {
	arr := q.Array()
	if !normalize(arr[:]) {
		return q
	}
	return SO3[T]{w: arr[0], x: arr[1], y: arr[2], z: arr[3]}
}
