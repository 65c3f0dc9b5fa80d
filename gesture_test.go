package evergreen

import (
	"math"
	"testing"
)

// makeHand builds a synthetic landmark set where the four fingertips sit
// exactly meanDist from the wrist and the thumb tip sits exactly
// thumbIndexDist from the index tip.
func makeHand(meanDist, thumbIndexDist float64) []Landmark {
	lm := make([]Landmark, handLandmarkCount)
	for _, tip := range []int{landmarkIndexTip, landmarkMiddleTip, landmarkRingTip, landmarkPinkyTip} {
		lm[tip] = Landmark{X: meanDist}
	}
	lm[landmarkThumbTip] = Landmark{X: meanDist - thumbIndexDist}
	return lm
}

func TestClassifyHandTable(t *testing.T) {
	cfg := DefaultConfig()
	tests := []struct {
		name           string
		meanDist       float64
		thumbIndexDist float64
		want           Gesture
	}{
		{"pinch wins regardless of palm size", 0.5, 0.03, GesturePinch},
		{"pinch with closed palm", 0.15, 0.03, GesturePinch},
		{"closed fist", 0.15, 0.2, GestureClosedFist},
		{"open palm", 0.5, 0.2, GestureOpenPalm},
		{"pointing", 0.3, 0.2, GesturePointing},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := ClassifyHand(cfg, makeHand(tt.meanDist, tt.thumbIndexDist))
			if res.Gesture != tt.want {
				t.Errorf("gesture = %v, want %v", res.Gesture, tt.want)
			}
			if res.Cursor == nil {
				t.Fatal("cursor must be set when a hand is present")
			}
			if res.Cursor.X != tt.meanDist || res.Cursor.Y != 0 {
				t.Errorf("cursor = %+v, want index fingertip (%v, 0)", res.Cursor, tt.meanDist)
			}
		})
	}
}

func TestClassifyHandNoLandmarks(t *testing.T) {
	cfg := DefaultConfig()
	for _, lm := range [][]Landmark{nil, {}, make([]Landmark, 5)} {
		res := ClassifyHand(cfg, lm)
		if res.Gesture != GestureNone {
			t.Errorf("gesture = %v, want none", res.Gesture)
		}
		if res.Cursor != nil {
			t.Errorf("cursor = %+v, want nil", res.Cursor)
		}
	}
}

func TestClassifyHandUses3DDistance(t *testing.T) {
	cfg := DefaultConfig()
	lm := make([]Landmark, handLandmarkCount)
	// Fingertips displaced only in z: mean distance 0.5 -> open palm.
	for _, tip := range []int{landmarkIndexTip, landmarkMiddleTip, landmarkRingTip, landmarkPinkyTip} {
		lm[tip] = Landmark{Z: 0.5}
	}
	lm[landmarkThumbTip] = Landmark{X: 0.3, Z: 0.5}
	res := ClassifyHand(cfg, lm)
	if res.Gesture != GestureOpenPalm {
		t.Errorf("gesture = %v, want open_palm", res.Gesture)
	}
}

func TestLandmarkDist(t *testing.T) {
	got := landmarkDist(Landmark{1, 2, 2}, Landmark{0, 0, 0})
	if math.Abs(got-3) > 1e-12 {
		t.Errorf("landmarkDist = %v, want 3", got)
	}
}
