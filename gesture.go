package evergreen

import "math"

// Landmark is one normalized hand landmark: x and y in [0, 1] relative to
// the video frame, z a relative depth. The layout follows the common
// 21-point hand model.
type Landmark struct {
	X, Y, Z float64
}

// Landmark indices used by the classifier.
const (
	landmarkWrist     = 0
	landmarkThumbTip  = 4
	landmarkIndexTip  = 8
	landmarkMiddleTip = 12
	landmarkRingTip   = 16
	landmarkPinkyTip  = 20

	handLandmarkCount = 21
)

// GestureResult is the gesture bridge's per-frame output: a discrete label
// plus the index fingertip as a normalized cursor. Cursor is nil when no
// hand was detected.
type GestureResult struct {
	Gesture Gesture
	Cursor  *Vec2
}

// ClassifyHand maps one hand's landmarks to a gesture. The classification
// runs on two measurements: the thumb-to-index fingertip distance, and the
// mean fingertip-to-wrist distance as a proxy for how open the palm is.
// The pinch check runs first and wins independently of the palm measure.
func ClassifyHand(cfg Config, landmarks []Landmark) GestureResult {
	if len(landmarks) < handLandmarkCount {
		return GestureResult{Gesture: GestureNone}
	}

	wrist := landmarks[landmarkWrist]
	tips := [4]Landmark{
		landmarks[landmarkIndexTip],
		landmarks[landmarkMiddleTip],
		landmarks[landmarkRingTip],
		landmarks[landmarkPinkyTip],
	}
	var mean float64
	for _, tip := range tips {
		mean += landmarkDist(tip, wrist)
	}
	mean /= 4

	pinchDist := landmarkDist(landmarks[landmarkThumbTip], landmarks[landmarkIndexTip])

	cursor := &Vec2{landmarks[landmarkIndexTip].X, landmarks[landmarkIndexTip].Y}

	switch {
	case pinchDist < cfg.PinchThreshold:
		return GestureResult{Gesture: GesturePinch, Cursor: cursor}
	case mean < cfg.FistThreshold:
		return GestureResult{Gesture: GestureClosedFist, Cursor: cursor}
	case mean > cfg.PalmThreshold:
		return GestureResult{Gesture: GestureOpenPalm, Cursor: cursor}
	default:
		return GestureResult{Gesture: GesturePointing, Cursor: cursor}
	}
}

func landmarkDist(a, b Landmark) float64 {
	dx := a.X - b.X
	dy := a.Y - b.Y
	dz := a.Z - b.Z
	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}
