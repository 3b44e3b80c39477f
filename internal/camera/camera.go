// Package camera holds the fixed camera intrinsic matrices and builds the
// view-from-calibrated transform consumed by the projection pipeline.
// Estimating the calibration angles themselves happens upstream; this package
// only turns the delivered roll/pitch/yaw into a usable view matrix.
package camera

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/moncler0578/OPENPILOT/internal/geom"
)

// Intrinsics of the narrow (road) camera: 910px focal length on a 1164x874
// frame, principal point at the frame centre.
var FcamIntrinsics = geom.Mat3{
	910, 0, 1164.0 / 2,
	0, 910, 874.0 / 2,
	0, 0, 1,
}

// Intrinsics of the wide camera: 620px focal length on a 1928x1208 frame.
var EcamIntrinsics = geom.Mat3{
	620, 0, 1928.0 / 2,
	0, 620, 1208.0 / 2,
	0, 0, 1,
}

// Intrinsics selects the intrinsic matrix for the active camera.
func Intrinsics(wide bool) geom.Mat3 {
	if wide {
		return EcamIntrinsics
	}
	return FcamIntrinsics
}

// viewFromDevice reorders device axes (x forward, y left, z up) into camera
// viewing axes (x right, y down, z forward).
var viewFromDevice = geom.Mat3{
	0, 1, 0,
	0, 0, 1,
	1, 0, 0,
}

// RotFromEuler builds the rotation matrix for intrinsic roll/pitch/yaw
// angles (radians), composed as Rz(yaw) * Ry(pitch) * Rx(roll).
func RotFromEuler(roll, pitch, yaw float64) geom.Mat3 {
	rx := rotX(roll)
	ry := rotY(pitch)
	rz := rotZ(yaw)

	var m mat.Dense
	m.Mul(rz, ry)
	m.Mul(&m, rx)

	var out geom.Mat3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			out[i*3+j] = m.At(i, j)
		}
	}
	return out
}

// ViewFromCalib composes the calibration rotation with the device-to-view
// axis reorder, producing the matrix that maps calibrated vehicle space into
// camera-view space.
func ViewFromCalib(roll, pitch, yaw float64) geom.Mat3 {
	return viewFromDevice.Mul(RotFromEuler(roll, pitch, yaw))
}

func rotX(a float64) *mat.Dense {
	s, c := math.Sincos(a)
	return mat.NewDense(3, 3, []float64{
		1, 0, 0,
		0, c, -s,
		0, s, c,
	})
}

func rotY(a float64) *mat.Dense {
	s, c := math.Sincos(a)
	return mat.NewDense(3, 3, []float64{
		c, 0, s,
		0, 1, 0,
		-s, 0, c,
	})
}

func rotZ(a float64) *mat.Dense {
	s, c := math.Sincos(a)
	return mat.NewDense(3, 3, []float64{
		c, -s, 0,
		s, c, 0,
		0, 0, 1,
	})
}
