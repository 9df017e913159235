// Package manif provides the rotation groups SO(2) and SO(3) and the rigid
// transformation groups SE(2) and SE(3), as used for state representations in
// robotics, computer vision and estimation code.
//
// # Representations
//
// [SO2] stores a planar rotation as a unit complex number (cos θ, sin θ).
// [SO3] stores a spatial rotation as a unit quaternion (w, x, y, z). [SE2] and
// [SE3] pair one of those rotations with a translation vector.
//
// All types are generic over a [Scalar], so the same code serves float32 and
// float64 pipelines. All types are immutable values and safe for concurrent
// use.
//
// # Unit norm
//
// Every constructor either produces a unit value by construction (such as
// [SO2FromAngle]) or normalizes its input (such as [SO2FromComplex]).
// Composition re-normalizes its result, so that rounding error doesn't
// accumulate over long chains of compositions. Constructors that normalize
// return [ErrDegenerate] when given a zero vector, instead of producing NaNs.
//
// Unit quaternions double cover SO(3): q and -q describe the same rotation.
// This package never picks a canonical sign.
//
// # Conventions
//
// Compose follows function composition: a.Compose(b) applies b first, then a.
// Thus a.Compose(b).Rotate(v) == a.Rotate(b.Rotate(v)).
//
// Euler angles use the intrinsic Z-Y-X convention. [SO3FromEuler] composes
// yaw ⊗ pitch ⊗ roll, and [SO3.Roll], [SO3.Pitch] and [SO3.Yaw] invert it for
// pitch in (-π/2, π/2). At gimbal lock, the pitch saturates at ±π/2 and roll
// and yaw can no longer be told apart.
//
// # Randomness
//
// RandomSO2, RandomSO3, RandomSE2 and RandomSE3 draw from a [math/rand/v2.Source].
// A nil source uses the global generator. Sources that aren't safe for
// concurrent use must not be shared between goroutines.
//
// # gonum
//
// Vectors, matrices and quaternions convert to and from their
// [gonum.org/v1/gonum] counterparts, see [Vec3.R3], [Mat3.Dense] and
// [SO3.Quat].
package manif
