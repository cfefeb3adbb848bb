package geom

import (
	"math"
	"reflect"
	"testing"
)

func TestParallelBundleSpacing(t *testing.T) {
	rays := ParallelBundle(5, -3, 3)
	if len(rays) != 5 {
		t.Fatalf("expected 5 rays, got %d", len(rays))
	}

	wantX := []float64{-3, -1.5, 0, 1.5, 3}
	for i, r := range rays {
		if math.Abs(r.Origin.X-wantX[i]) > 1e-12 {
			t.Errorf("ray %d: expected x=%f, got %f", i, wantX[i], r.Origin.X)
		}
		if r.Origin.Y != bundleHeight {
			t.Errorf("ray %d: expected origin height %f, got %f", i, bundleHeight, r.Origin.Y)
		}
		if r.Dir.X != 0 || r.Dir.Y != -1 {
			t.Errorf("ray %d: expected direction (0,-1), got %v", i, r.Dir)
		}
	}
}

func TestParallelBundleEdgeCounts(t *testing.T) {
	single := ParallelBundle(1, -3, 3)
	if len(single) != 1 || single[0].Origin.X != -3 {
		t.Errorf("expected one ray at lo, got %v", single)
	}
	if ParallelBundle(0, -3, 3) != nil {
		t.Error("expected nil for zero count")
	}
}

func TestFocalBundleFromFocus(t *testing.T) {
	p, _ := NewParabola(2.0)
	rays := FocalBundle(p, 7)
	if len(rays) != 7 {
		t.Fatalf("expected 7 rays, got %d", len(rays))
	}

	for i, r := range rays {
		if r.Origin != p.FocusPoint() {
			t.Errorf("ray %d: expected origin at focus, got %v", i, r.Origin)
		}
		if math.Abs(r.Dir.Len()-1.0) > 1e-12 {
			t.Errorf("ray %d: direction not unit length: %f", i, r.Dir.Len())
		}
	}

	// First ray aims at the curve point above x=-3.
	target := Vec2{-3, p.PointOnCurve(-3)}
	want := target.Sub(p.FocusPoint()).Normalize()
	if math.Abs(rays[0].Dir.X-want.X) > 1e-12 || math.Abs(rays[0].Dir.Y-want.Y) > 1e-12 {
		t.Errorf("expected first direction %v, got %v", want, rays[0].Dir)
	}
}

func TestBundlesAreIdempotent(t *testing.T) {
	p, _ := NewParabola(1.0)

	a := ParallelBundle(5, -3, 3)
	b := ParallelBundle(5, -3, 3)
	if !reflect.DeepEqual(a, b) {
		t.Error("parallel bundle not deterministic")
	}

	fa := FocalBundle(p, 5)
	fb := FocalBundle(p, 5)
	if !reflect.DeepEqual(fa, fb) {
		t.Error("focal bundle not deterministic")
	}
}
