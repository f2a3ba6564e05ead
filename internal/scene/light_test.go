package scene

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestAttenuation(t *testing.T) {
	l := PointLight{Constant: 1, Linear: 0.5, Quadratic: 0.25}
	tests := []struct {
		d, want float32
	}{
		{0, 1},
		{2, 1.0 / 3.0},
		{4, 1.0 / 7.0},
	}
	for _, tt := range tests {
		if got := l.Attenuation(tt.d); !approx(got, tt.want) {
			t.Errorf("Attenuation(%v) = %v, want %v", tt.d, got, tt.want)
		}
	}

	var zero PointLight
	if got := zero.Attenuation(3); got != 1 {
		t.Errorf("zero light Attenuation = %v, want 1", got)
	}
}

func TestSpotCosines(t *testing.T) {
	s := SpotLight{CutOff: 60, OuterCutOff: 90}
	inner, outer := s.Cosines()
	if !approx(inner, 0.5) {
		t.Errorf("inner = %v, want 0.5", inner)
	}
	if !approx(outer, 0) {
		t.Errorf("outer = %v, want 0", outer)
	}
}

func TestSpotClamp(t *testing.T) {
	tests := []struct {
		name               string
		cut, outer         float32
		wantCut, wantOuter float32
	}{
		{"ordered", 10, 20, 10, 20},
		{"inverted", 30, 20, 20, 20},
		{"too wide", 100, 120, 90, 90},
		{"negative", -5, 10, 0, 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := SpotLight{CutOff: tt.cut, OuterCutOff: tt.outer}
			s.Clamp()
			if s.CutOff != tt.wantCut || s.OuterCutOff != tt.wantOuter {
				t.Errorf("got %v/%v, want %v/%v", s.CutOff, s.OuterCutOff, tt.wantCut, tt.wantOuter)
			}
		})
	}
}

func TestSpotWidenOuter(t *testing.T) {
	tests := []struct {
		name               string
		cut, outer         float32
		wantCut, wantOuter float32
	}{
		{"ordered", 10, 20, 10, 20},
		{"inner past outer", 30, 20, 30, 30},
		{"inner past range", 95, 20, 90, 90},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := SpotLight{CutOff: tt.cut, OuterCutOff: tt.outer}
			s.WidenOuter()
			if s.CutOff != tt.wantCut || s.OuterCutOff != tt.wantOuter {
				t.Errorf("got %v/%v, want %v/%v", s.CutOff, s.OuterCutOff, tt.wantCut, tt.wantOuter)
			}
		})
	}
}

func TestSpotFollowsCamera(t *testing.T) {
	c := NewCamera(mgl32.Vec3{1, 2, 3})
	var s SpotLight
	s.Follow(c)
	if s.Position != c.Position() || s.Direction != c.Front() {
		t.Errorf("spot at %v facing %v, camera at %v facing %v", s.Position, s.Direction, c.Position(), c.Front())
	}
	if math.IsNaN(float64(s.Direction.Len())) {
		t.Error("direction is NaN")
	}
}
