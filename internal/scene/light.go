package scene

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

type PointLight struct {
	Position mgl32.Vec3
	Ambient  mgl32.Vec3
	Diffuse  mgl32.Vec3
	Specular mgl32.Vec3

	Constant  float32
	Linear    float32
	Quadratic float32
}

// SpotLight is a point light restricted to a cone. CutOff and OuterCutOff
// are half-angles in degrees; intensity fades between them.
type SpotLight struct {
	PointLight
	Direction   mgl32.Vec3
	CutOff      float32
	OuterCutOff float32
}

type Lighting struct {
	Point       PointLight
	Spot        SpotLight
	Blinn       bool
	SpotEnabled bool
}

// WindowAmbient is the ambient term used for the glass panes, tinted blue.
var WindowAmbient = mgl32.Vec3{0.1, 0.1, 0.5}

func DefaultLighting() Lighting {
	return Lighting{
		Point: PointLight{
			Position:  mgl32.Vec3{0, 3, 0},
			Ambient:   mgl32.Vec3{0.05, 0.05, 0.05},
			Diffuse:   mgl32.Vec3{0.4, 0.4, 0.4},
			Specular:  mgl32.Vec3{0.5, 0.5, 0.5},
			Constant:  0.5,
			Linear:    0.1,
			Quadratic: 0.05,
		},
		Spot: SpotLight{
			PointLight: PointLight{
				Ambient:   mgl32.Vec3{0, 0, 0},
				Diffuse:   mgl32.Vec3{1, 1, 1},
				Specular:  mgl32.Vec3{1, 1, 1},
				Constant:  1,
				Linear:    0.09,
				Quadratic: 0.032,
			},
			CutOff:      12.5,
			OuterCutOff: 15,
		},
		Blinn: true,
	}
}

// Attenuation returns the light's falloff factor at distance d.
func (l PointLight) Attenuation(d float32) float32 {
	denom := l.Constant + l.Linear*d + l.Quadratic*d*d
	if denom <= 0 {
		return 1
	}
	return 1 / denom
}

// Clamp keeps both angles in [0, 90] with CutOff never above OuterCutOff.
func (s *SpotLight) Clamp() {
	s.CutOff = mgl32.Clamp(s.CutOff, 0, 90)
	s.OuterCutOff = mgl32.Clamp(s.OuterCutOff, 0, 90)
	if s.CutOff > s.OuterCutOff {
		s.CutOff = s.OuterCutOff
	}
}

// WidenOuter raises OuterCutOff to meet a CutOff that was pushed past it.
// Use it when the inner angle is the one being edited.
func (s *SpotLight) WidenOuter() {
	s.CutOff = mgl32.Clamp(s.CutOff, 0, 90)
	if s.OuterCutOff < s.CutOff {
		s.OuterCutOff = s.CutOff
	}
	s.Clamp()
}

// Cosines returns the cone angles in the form the fragment shader compares
// against.
func (s SpotLight) Cosines() (inner, outer float32) {
	return float32(math.Cos(float64(mgl32.DegToRad(s.CutOff)))),
		float32(math.Cos(float64(mgl32.DegToRad(s.OuterCutOff))))
}

// Follow attaches the spotlight to the camera, flashlight style.
func (s *SpotLight) Follow(c *Camera) {
	s.Position = c.Position()
	s.Direction = c.Front()
}
