package scene

import (
	"sort"

	"github.com/go-gl/mathgl/mgl32"
)

// Box is a unit cube placed by translation then scale.
type Box struct {
	Position mgl32.Vec3
	Scale    mgl32.Vec3
}

// Model returns the box's model matrix. Translation is applied after
// scaling, so the scale stays about the box's own center.
func (b Box) Model() mgl32.Mat4 {
	return mgl32.Translate3D(b.Position.X(), b.Position.Y(), b.Position.Z()).
		Mul4(mgl32.Scale3D(b.Scale.X(), b.Scale.Y(), b.Scale.Z()))
}

var Floor = Box{Scale: mgl32.Vec3{20, 0.25, 10}}

var Pillars = []Box{
	{Position: mgl32.Vec3{9.5, 2.5, 4.5}, Scale: mgl32.Vec3{1, 5, 1}},
	{Position: mgl32.Vec3{9.5, 2.5, -4.5}, Scale: mgl32.Vec3{1, 5, 1}},
	{Position: mgl32.Vec3{-9.5, 2.5, -4.5}, Scale: mgl32.Vec3{1, 5, 1}},
	{Position: mgl32.Vec3{-9.5, 2.5, 4.5}, Scale: mgl32.Vec3{1, 5, 1}},
}

// Panes are the translucent walls between the pillars.
var Panes = []Box{
	{Position: mgl32.Vec3{9.75, 2.5, 0}, Scale: mgl32.Vec3{0.5, 5, 8}},
	{Position: mgl32.Vec3{-9.75, 2.5, 0}, Scale: mgl32.Vec3{0.5, 5, 8}},
	{Position: mgl32.Vec3{0, 2.5, 4.75}, Scale: mgl32.Vec3{18, 5, 0.5}},
	{Position: mgl32.Vec3{0, 2.5, -4.75}, Scale: mgl32.Vec3{18, 5, 0.5}},
}

// SortBackToFront returns a copy of boxes ordered farthest first from eye,
// which is the order blending needs. Boxes at equal distance keep their
// relative order.
func SortBackToFront(eye mgl32.Vec3, boxes []Box) []Box {
	sorted := make([]Box, len(boxes))
	copy(sorted, boxes)
	sort.SliceStable(sorted, func(i, j int) bool {
		return eye.Sub(sorted[i].Position).Len() > eye.Sub(sorted[j].Position).Len()
	})
	return sorted
}
