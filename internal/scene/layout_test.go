package scene

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func distances(eye mgl32.Vec3, boxes []Box) []float32 {
	out := make([]float32, len(boxes))
	for i, b := range boxes {
		out[i] = eye.Sub(b.Position).Len()
	}
	return out
}

func TestSortBackToFrontDescending(t *testing.T) {
	eyes := []mgl32.Vec3{
		{0, 0, 3},
		{9, 2, 0},
		{-15, 1, -4},
		{0, 20, 0},
	}
	for _, eye := range eyes {
		sorted := SortBackToFront(eye, Panes)
		if len(sorted) != len(Panes) {
			t.Fatalf("got %d panes, want %d", len(sorted), len(Panes))
		}
		d := distances(eye, sorted)
		for i := 1; i < len(d); i++ {
			if d[i] > d[i-1] {
				t.Errorf("eye %v: distance[%d]=%v > distance[%d]=%v", eye, i, d[i], i-1, d[i-1])
			}
		}
	}
}

func TestSortBackToFrontFarthestFirst(t *testing.T) {
	// standing just inside the +x pane, the -x pane is farthest
	sorted := SortBackToFront(mgl32.Vec3{9, 2.5, 0}, Panes)
	if sorted[0].Position != (mgl32.Vec3{-9.75, 2.5, 0}) {
		t.Errorf("first = %v, want the -x pane", sorted[0].Position)
	}
	if sorted[len(sorted)-1].Position != (mgl32.Vec3{9.75, 2.5, 0}) {
		t.Errorf("last = %v, want the +x pane", sorted[len(sorted)-1].Position)
	}
}

func TestSortBackToFrontKeepsTies(t *testing.T) {
	// from the center the two z panes are equidistant, as are the two x panes
	sorted := SortBackToFront(mgl32.Vec3{0, 2.5, 0}, Panes)
	want := []mgl32.Vec3{
		{9.75, 2.5, 0},
		{-9.75, 2.5, 0},
		{0, 2.5, 4.75},
		{0, 2.5, -4.75},
	}
	for i := range want {
		if sorted[i].Position != want[i] {
			t.Errorf("sorted[%d] = %v, want %v", i, sorted[i].Position, want[i])
		}
	}
}

func TestSortBackToFrontLeavesInput(t *testing.T) {
	in := []Box{
		{Position: mgl32.Vec3{1, 0, 0}},
		{Position: mgl32.Vec3{5, 0, 0}},
	}
	SortBackToFront(mgl32.Vec3{}, in)
	if in[0].Position.X() != 1 || in[1].Position.X() != 5 {
		t.Errorf("input reordered: %v", in)
	}
}

func TestSortBackToFrontEmpty(t *testing.T) {
	if got := SortBackToFront(mgl32.Vec3{}, nil); len(got) != 0 {
		t.Errorf("got %v, want empty", got)
	}
}

func TestBoxModel(t *testing.T) {
	b := Box{Position: mgl32.Vec3{9.5, 2.5, 4.5}, Scale: mgl32.Vec3{1, 5, 1}}
	corner := b.Model().Mul4x1(mgl32.Vec4{0.5, 0.5, 0.5, 1}).Vec3()
	if !approxVec(corner, mgl32.Vec3{10, 5, 5}) {
		t.Errorf("corner = %v, want (10,5,5)", corner)
	}
	center := b.Model().Mul4x1(mgl32.Vec4{0, 0, 0, 1}).Vec3()
	if !approxVec(center, b.Position) {
		t.Errorf("center = %v, want %v", center, b.Position)
	}
}
