// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package hmd adapts a head-mounted display runtime to the stereo presenter.
//
// The package has two halves:
//
//   - Pose math: neutral Vec3, Quat and Mat34 value types with the
//     conversions from a 3x4 tracking matrix to a quaternion and from a
//     quaternion to yaw, pitch and roll. These have no dependency on any
//     HMD SDK, so the branch selection and axis permutation are testable on
//     their own.
//   - Session: the lifecycle of one compositor connection. A Session
//     initializes lazily, creates one texture per eye on first use, copies
//     the rendered eye image into it and submits it to the compositor, and
//     retrieves tracked poses once per frame.
//
// The SDK itself stays behind the Runtime, System and Compositor
// interfaces; bindings convert their vector and matrix types at that edge.
//
// # Failure Handling
//
// Runtime failures never stop the render loop. Initialization failures are
// logged and retried on the next frame; submission and pose failures are
// logged and that operation is skipped for the current frame.
package hmd
