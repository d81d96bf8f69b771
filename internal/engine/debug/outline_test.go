package debug

import (
	"testing"

	"github.com/Faultbox/rlb/pkg/math"
)

func TestOutlineSegments(t *testing.T) {
	base := []math.Vec3{{X: 0}, {X: 1}, {Y: 1}}
	segs := OutlineSegments(base, 2)

	if len(segs) != 9 {
		t.Fatalf("expected 9 segments, got %d", len(segs))
	}

	// Bottom ring closes back to base[0]
	if segs[2].Start != base[2] || segs[2].End != base[0] {
		t.Errorf("bottom ring not closed: %v", segs[2])
	}
	// Top ring is lifted
	if segs[3].Start.Z != 2 || segs[3].End.Z != 2 {
		t.Errorf("top ring not lifted: %v", segs[3])
	}
	// Vertical edges run bottom to top
	for i, s := range segs[6:] {
		if s.Start != base[i] || s.End != base[i].Lift(2) {
			t.Errorf("vertical edge %d: got %v", i, s)
		}
	}
}

func TestOutlineSegmentsDegenerate(t *testing.T) {
	if segs := OutlineSegments(nil, 1); segs != nil {
		t.Errorf("expected nil for empty base, got %v", segs)
	}
	if segs := OutlineSegments([]math.Vec3{{X: 1}}, 1); segs != nil {
		t.Errorf("expected nil for single point, got %v", segs)
	}
}

func TestOutlineSegmentsSkipsRepeatedPoints(t *testing.T) {
	// base[1] repeats base[0]: the bottom and top edges between them vanish.
	base := []math.Vec3{{X: 0}, {X: 0}, {X: 1}, {Y: 1}}
	segs := OutlineSegments(base, 1)

	if len(segs) != 10 {
		t.Fatalf("expected 10 segments, got %d", len(segs))
	}
	for i, s := range segs {
		if s.Degenerate() {
			t.Errorf("segment %d is zero-length: %v", i, s)
		}
	}
}

func TestOutlineSegmentsZeroHeight(t *testing.T) {
	base := []math.Vec3{{X: 0}, {X: 1}, {Y: 1}}
	segs := OutlineSegments(base, 0)

	// Both rings survive; vertical edges collapse to points.
	if len(segs) != 6 {
		t.Fatalf("expected 6 segments, got %d", len(segs))
	}
}

func TestSegmentDegenerate(t *testing.T) {
	tests := []struct {
		name string
		seg  Segment
		want bool
	}{
		{"same point", Segment{math.Vec3{X: 1, Y: 2, Z: 3}, math.Vec3{X: 1, Y: 2, Z: 3}}, true},
		{"within epsilon", Segment{math.Vec3{X: 0.5}, math.Vec3{X: 0.5 + 1e-7}}, true},
		{"unit length", Segment{math.Vec3{}, math.Vec3{Z: 1}}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.seg.Degenerate(); got != tt.want {
				t.Errorf("Degenerate() = %v, want %v", got, tt.want)
			}
		})
	}
}
