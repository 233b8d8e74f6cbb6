package geometry

import (
	"errors"
	"math"
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
)

func randomScene(sampler core.Sampler, n int) []Hittable {
	objects := make([]Hittable, 0, n+3)
	for i := 0; i < n; i++ {
		center := core.RandomVec3(sampler, -3, 3)
		objects = append(objects, NewSphere(center, core.RandomRange(sampler, 0.05, 0.4), nil))
	}
	objects = append(objects,
		NewXZRect(-3, 3, -3, 3, -3.5, nil),
		NewMovingSphere(core.NewVec3(0, 0, 0), core.NewVec3(0, 0.5, 0), 0, 1, 0.3, nil),
		NewTranslate(NewRotateY(NewBox(core.NewVec3(0, 0, 0), core.NewVec3(1, 1, 1), nil), 20), core.NewVec3(2, 2, 2)),
	)
	return objects
}

func TestBVH_MatchesLinearList(t *testing.T) {
	sampler := newTestSampler(5)
	objects := randomScene(sampler, 120)

	list := NewHittableList(objects...)
	bvh, err := NewBVH(objects, 0, 1, sampler)
	if err != nil {
		t.Fatalf("NewBVH failed: %v", err)
	}

	for i, ray := range randomRays(sampler, 2000) {
		want, wantHit := list.Hit(ray, 0.001, math.Inf(1), nil)
		got, gotHit := bvh.Hit(ray, 0.001, math.Inf(1), nil)
		if wantHit != gotHit {
			t.Fatalf("ray %d: list hit=%v, BVH hit=%v", i, wantHit, gotHit)
		}
		if !wantHit {
			continue
		}
		if math.Abs(want.T-got.T) > 1e-9 {
			t.Errorf("ray %d: list t=%f, BVH t=%f", i, want.T, got.T)
		}
		if !want.Point.Equals(got.Point, 1e-9) || !want.Normal.Equals(got.Normal, 1e-9) {
			t.Errorf("ray %d: list point/normal %v/%v, BVH %v/%v", i, want.Point, want.Normal, got.Point, got.Normal)
		}
	}

	axisRay := core.NewRay(core.NewVec3(0, 10, 0), core.NewVec3(0, -1, 0))
	want, wantHit := list.Hit(axisRay, 0.001, math.Inf(1), nil)
	got, gotHit := bvh.Hit(axisRay, 0.001, math.Inf(1), nil)
	if wantHit != gotHit || (wantHit && (want.T != got.T || want.Point != got.Point || want.Normal != got.Normal)) {
		t.Errorf("axis-parallel ray: list %+v (%v), BVH %+v (%v)", want, wantHit, got, gotHit)
	}
}

func TestBVH_BoxEnclosesObjects(t *testing.T) {
	sampler := newTestSampler(6)
	objects := randomScene(sampler, 40)

	bvh, err := NewBVH(objects, 0, 1, sampler)
	if err != nil {
		t.Fatalf("NewBVH failed: %v", err)
	}

	root, ok := bvh.BoundingBox(0, 1)
	if !ok {
		t.Fatal("BVH should always have a box")
	}
	for i, object := range objects {
		box, _ := object.BoundingBox(0, 1)
		if !root.Contains(box) {
			t.Errorf("object %d box %v not contained in root %v", i, box, root)
		}
	}
}

func TestBVH_SmallSpans(t *testing.T) {
	a := NewSphere(core.NewVec3(0, 0, -2), 0.5, nil)
	b := NewSphere(core.NewVec3(0, 0, -5), 0.5, nil)

	single, err := NewBVH([]Hittable{a}, 0, 1, newTestSampler(1))
	if err != nil {
		t.Fatalf("NewBVH failed: %v", err)
	}
	if single.Left != single.Right {
		t.Error("Single-object node should hold the object on both sides")
	}

	pair, err := NewBVH([]Hittable{b, a}, 0, 1, newTestSampler(1))
	if err != nil {
		t.Fatalf("NewBVH failed: %v", err)
	}
	hit, isHit := pair.Hit(core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1)), 0.001, math.Inf(1), nil)
	if !isHit || math.Abs(hit.T-1.5) > 1e-9 {
		t.Errorf("Expected nearest hit at t=1.5, got %v (hit=%v)", hit, isHit)
	}
}

func TestBVH_DoesNotReorderInput(t *testing.T) {
	sampler := newTestSampler(8)
	objects := randomScene(sampler, 30)
	original := make([]Hittable, len(objects))
	copy(original, objects)

	if _, err := NewBVH(objects, 0, 1, sampler); err != nil {
		t.Fatalf("NewBVH failed: %v", err)
	}
	for i := range objects {
		if objects[i] != original[i] {
			t.Fatalf("Input slice reordered at index %d", i)
		}
	}
}

func TestBVH_Errors(t *testing.T) {
	if _, err := NewBVH(nil, 0, 1, newTestSampler(1)); !errors.Is(err, ErrEmptyBVH) {
		t.Errorf("Expected ErrEmptyBVH, got %v", err)
	}

	objects := []Hittable{NewSphere(core.NewVec3(0, 0, 0), 1, nil), unboundedHittable{}}
	node, err := NewBVH(objects, 0, 1, newTestSampler(1))
	if !errors.Is(err, ErrNoBoundingBox) {
		t.Errorf("Expected ErrNoBoundingBox, got %v", err)
	}
	if node != nil {
		t.Error("No hierarchy should be built when an object has no box")
	}

	defer func() {
		if recover() == nil {
			t.Error("MustBVH should panic on a missing box")
		}
	}()
	MustBVH(objects, 0, 1, newTestSampler(1))
}

func TestNewBVHFromList(t *testing.T) {
	list := NewHittableList(NewSphere(core.NewVec3(0, 0, -2), 0.5, nil))
	bvh, err := NewBVHFromList(list, 0, 1, newTestSampler(1))
	if err != nil {
		t.Fatalf("NewBVHFromList failed: %v", err)
	}
	if _, isHit := bvh.Hit(core.NewRay(core.Vec3{}, core.NewVec3(0, 0, -1)), 0.001, math.Inf(1), nil); !isHit {
		t.Error("Expected hit")
	}
}
