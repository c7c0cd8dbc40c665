// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package hmd

import "math"

// Vec3 is a 3-component vector of float64.
//
// When returned from EulerFromQuaternion, X is yaw, Y is pitch and Z is
// roll, in radians.
type Vec3 struct {
	X, Y, Z float64
}

// Quat is a rotation quaternion with real part W.
type Quat struct {
	W, X, Y, Z float64
}

// IdentityQuat returns the quaternion of no rotation.
func IdentityQuat() Quat {
	return Quat{W: 1}
}

// Len returns the norm of q.
func (q Quat) Len() float64 {
	return math.Sqrt(q.W*q.W + q.X*q.X + q.Y*q.Y + q.Z*q.Z)
}

// Mat34 is a row-major 3x4 rigid transform: a 3x3 rotation in the first
// three columns and a translation in the fourth, as reported for tracked
// device poses.
type Mat34 [3][4]float32

// IdentityMat34 returns the transform of no rotation and no translation.
func IdentityMat34() Mat34 {
	return Mat34{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
	}
}

// Translation returns the fourth column of m.
func (m Mat34) Translation() Vec3 {
	return Vec3{X: float64(m[0][3]), Y: float64(m[1][3]), Z: float64(m[2][3])}
}

// QuaternionFromMatrix extracts the rotation of m as a quaternion.
//
// When the trace is positive the real part dominates and is extracted
// first. Otherwise the branch is chosen by the largest diagonal element,
// which keeps the divisor away from zero for rotations near 180 degrees.
func QuaternionFromMatrix(m Mat34) Quat {
	a := &m
	var q Quat

	trace := a[0][0] + a[1][1] + a[2][2]
	switch {
	case trace > 0:
		s := 0.5 / sqrt32(trace+1)
		q.W = float64(0.25 / s)
		q.X = float64((a[2][1] - a[1][2]) * s)
		q.Y = float64((a[0][2] - a[2][0]) * s)
		q.Z = float64((a[1][0] - a[0][1]) * s)

	case a[0][0] > a[1][1] && a[0][0] > a[2][2]:
		s := 2 * sqrt32(1+a[0][0]-a[1][1]-a[2][2])
		q.W = float64((a[2][1] - a[1][2]) / s)
		q.X = float64(0.25 * s)
		q.Y = float64((a[0][1] + a[1][0]) / s)
		q.Z = float64((a[0][2] + a[2][0]) / s)

	case a[1][1] > a[2][2]:
		s := 2 * sqrt32(1+a[1][1]-a[0][0]-a[2][2])
		q.W = float64((a[0][2] - a[2][0]) / s)
		q.X = float64((a[0][1] + a[1][0]) / s)
		q.Y = float64(0.25 * s)
		q.Z = float64((a[1][2] + a[2][1]) / s)

	default:
		s := 2 * sqrt32(1+a[2][2]-a[0][0]-a[1][1])
		q.W = float64((a[1][0] - a[0][1]) / s)
		q.X = float64((a[0][2] + a[2][0]) / s)
		q.Y = float64((a[1][2] + a[2][1]) / s)
		q.Z = float64(0.25 * s)
	}
	return q
}

// EulerFromQuaternion decomposes q into yaw, pitch and roll.
//
// The runtime's axes are permuted first so that the engine's up axis is
// the yaw axis: the runtime's Z becomes the roll axis, X the pitch axis and
// Y the yaw axis.
func EulerFromQuaternion(q Quat) Vec3 {
	q0 := q.W
	q2 := q.X
	q3 := q.Y
	q1 := q.Z

	roll := math.Atan2(2*(q0*q1+q2*q3), 1-2*(q1*q1+q2*q2))
	pitch := math.Asin(clampUnit(2 * (q0*q2 - q3*q1)))
	yaw := math.Atan2(2*(q0*q3+q1*q2), 1-2*(q2*q2+q3*q3))

	return Vec3{X: yaw, Y: pitch, Z: roll}
}

// EulerFromMatrix returns the yaw, pitch and roll of the rotation in m.
func EulerFromMatrix(m Mat34) Vec3 {
	return EulerFromQuaternion(QuaternionFromMatrix(m))
}

func sqrt32(v float32) float32 {
	return float32(math.Sqrt(float64(v)))
}

// clampUnit keeps asin arguments that drift past ±1 through rounding from
// producing NaN.
func clampUnit(v float64) float64 {
	return math.Max(-1, math.Min(1, v))
}
