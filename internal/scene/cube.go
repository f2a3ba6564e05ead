package scene

import "github.com/go-gl/mathgl/mgl32"

// CubeStride is the number of floats per cube vertex: position, normal,
// texture coordinates.
const CubeStride = 8

// CubeVertexCount is two triangles for each of six faces.
const CubeVertexCount = 36

type cubeFace struct {
	normal, u, v mgl32.Vec3
}

// u x v == normal for every face, so triangles wind counter-clockwise when
// seen from outside and survive back-face culling.
var cubeFaces = []cubeFace{
	{normal: mgl32.Vec3{0, 0, -1}, u: mgl32.Vec3{-1, 0, 0}, v: mgl32.Vec3{0, 1, 0}},
	{normal: mgl32.Vec3{0, 0, 1}, u: mgl32.Vec3{1, 0, 0}, v: mgl32.Vec3{0, 1, 0}},
	{normal: mgl32.Vec3{-1, 0, 0}, u: mgl32.Vec3{0, 0, 1}, v: mgl32.Vec3{0, 1, 0}},
	{normal: mgl32.Vec3{1, 0, 0}, u: mgl32.Vec3{0, 0, -1}, v: mgl32.Vec3{0, 1, 0}},
	{normal: mgl32.Vec3{0, -1, 0}, u: mgl32.Vec3{1, 0, 0}, v: mgl32.Vec3{0, 0, 1}},
	{normal: mgl32.Vec3{0, 1, 0}, u: mgl32.Vec3{1, 0, 0}, v: mgl32.Vec3{0, 0, -1}},
}

var quadCorners = [6][2]float32{
	{0, 0}, {1, 0}, {1, 1},
	{1, 1}, {0, 1}, {0, 0},
}

// CubeVertices builds an interleaved unit cube centered on the origin. The
// top face's texture coordinates are multiplied by topTiling so a
// stretched floor can repeat its texture instead of smearing it.
func CubeVertices(topTiling mgl32.Vec2) []float32 {
	out := make([]float32, 0, CubeVertexCount*CubeStride)
	for _, f := range cubeFaces {
		tiling := mgl32.Vec2{1, 1}
		if f.normal.Y() > 0 {
			tiling = topTiling
		}
		for _, st := range quadCorners {
			p := f.normal.Mul(0.5).
				Add(f.u.Mul(st[0] - 0.5)).
				Add(f.v.Mul(st[1] - 0.5))
			out = append(out,
				p.X(), p.Y(), p.Z(),
				f.normal.X(), f.normal.Y(), f.normal.Z(),
				st[0]*tiling.X(), st[1]*tiling.Y(),
			)
		}
	}
	return out
}

// FloorTiling repeats the floor texture once per world unit of the floor's
// top face.
var FloorTiling = mgl32.Vec2{Floor.Scale.X(), Floor.Scale.Z()}
