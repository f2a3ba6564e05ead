package scene

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func newTestState() *ProgramState {
	return NewProgramState(DefaultConfig())
}

func TestStateRoundTrip(t *testing.T) {
	s := newTestState()
	s.ClearColor = mgl32.Vec3{0.1, 0.25, 0.9}
	s.OverlayEnabled = true
	s.Camera.SetPosition(mgl32.Vec3{4, 1.5, -2})
	s.Camera.SetFront(mgl32.Vec3{1, 0, 0})
	s.BackpackPosition = mgl32.Vec3{0, 1, 0}
	s.BackpackScale = 2.5
	s.Lighting.Point.Ambient = mgl32.Vec3{0.3, 0.3, 0.3}
	s.Lighting.Point.Quadratic = 0.2
	s.Lighting.Spot.CutOff = 10
	s.Lighting.Spot.OuterCutOff = 20
	s.Lighting.Blinn = false
	s.Lighting.SpotEnabled = true

	path := filepath.Join(t.TempDir(), "program_state.txt")
	if err := s.SaveToFile(path); err != nil {
		t.Fatalf("SaveToFile: %v", err)
	}

	got := newTestState()
	if err := got.LoadFromFile(path); err != nil {
		t.Fatalf("LoadFromFile: %v", err)
	}

	if got.ClearColor != s.ClearColor {
		t.Errorf("ClearColor = %v, want %v", got.ClearColor, s.ClearColor)
	}
	if !got.OverlayEnabled {
		t.Error("OverlayEnabled = false, want true")
	}
	if got.Camera.Position() != s.Camera.Position() {
		t.Errorf("camera position = %v, want %v", got.Camera.Position(), s.Camera.Position())
	}
	if !approxVec(got.Camera.Front(), mgl32.Vec3{1, 0, 0}) {
		t.Errorf("camera front = %v, want (1,0,0)", got.Camera.Front())
	}
	if !mgl32.FloatEqualThreshold(got.Camera.Yaw(), 0, epsilon) {
		t.Errorf("camera yaw = %v, want 0", got.Camera.Yaw())
	}
	if got.BackpackPosition != s.BackpackPosition || got.BackpackScale != s.BackpackScale {
		t.Errorf("backpack = %v x%v, want %v x%v", got.BackpackPosition, got.BackpackScale, s.BackpackPosition, s.BackpackScale)
	}
	if got.Lighting != s.Lighting {
		t.Errorf("Lighting = %+v, want %+v", got.Lighting, s.Lighting)
	}
}

func TestStateFileIsOneValuePerLine(t *testing.T) {
	s := newTestState()
	var buf bytes.Buffer
	if err := s.Write(&buf); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	var front mgl32.Vec3
	if want := len(s.fields(&front)); len(lines) != want {
		t.Fatalf("got %d lines, want %d", len(lines), want)
	}
	if lines[0] != "0.2" {
		t.Errorf("first line = %q, want %q", lines[0], "0.2")
	}
	// overlay flag
	if lines[3] != "0" {
		t.Errorf("overlay line = %q, want %q", lines[3], "0")
	}
}

func TestLoadMissingFileKeepsDefaults(t *testing.T) {
	s := newTestState()
	want := s.ClearColor
	if err := s.LoadFromFile(filepath.Join(t.TempDir(), "missing.txt")); err != nil {
		t.Fatalf("LoadFromFile: %v", err)
	}
	if s.ClearColor != want {
		t.Errorf("ClearColor = %v, want %v", s.ClearColor, want)
	}
}

func TestReadMalformedToken(t *testing.T) {
	s := newTestState()
	err := s.Read(strings.NewReader("0.1 0.2 abc 1"))
	if err == nil {
		t.Fatal("Read succeeded on a malformed token")
	}
	if !strings.Contains(err.Error(), "clear_color.z") {
		t.Errorf("error %q does not name the field", err)
	}
	want := mgl32.Vec3{0.1, 0.2, 0.3}
	if s.ClearColor != want {
		t.Errorf("ClearColor = %v, want %v", s.ClearColor, want)
	}
}

func TestReadRejectsNonFinite(t *testing.T) {
	// default state as text, with one slot replaced
	tokens := func(t *testing.T, index int, value string) string {
		t.Helper()
		var buf bytes.Buffer
		if err := newTestState().Write(&buf); err != nil {
			t.Fatal(err)
		}
		fields := strings.Fields(buf.String())
		fields[index] = value
		return strings.Join(fields, " ")
	}

	tests := []struct {
		name  string
		index int
		value string
		field string
	}{
		{"front NaN", 7, "NaN", "camera.front.x"},
		{"front Inf", 8, "+Inf", "camera.front.y"},
		{"cutoff NaN", 22, "NaN", "spot.cutoff"},
		{"outer cutoff -Inf", 23, "-Inf", "spot.outer_cutoff"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestState()
			err := s.Read(strings.NewReader(tokens(t, tt.index, tt.value)))
			if !errors.Is(err, errNonFinite) {
				t.Fatalf("Read error = %v, want non-finite error", err)
			}
			if !strings.Contains(err.Error(), tt.field) {
				t.Errorf("error %q does not name %s", err, tt.field)
			}
			if !approxVec(s.Camera.Front(), mgl32.Vec3{0, 0, -1}) {
				t.Errorf("camera front = %v, want default", s.Camera.Front())
			}
			spot := s.Lighting.Spot
			if spot.CutOff != 12.5 || spot.OuterCutOff != 15 {
				t.Errorf("cutoffs = %v/%v, want 12.5/15", spot.CutOff, spot.OuterCutOff)
			}
		})
	}
}

func TestReadTruncatedInput(t *testing.T) {
	s := newTestState()
	before := s.Lighting
	if err := s.Read(strings.NewReader("0.5\n0.5\n0.5\n1\n")); err != nil {
		t.Fatalf("Read: %v", err)
	}
	if s.ClearColor != (mgl32.Vec3{0.5, 0.5, 0.5}) {
		t.Errorf("ClearColor = %v", s.ClearColor)
	}
	if !s.OverlayEnabled {
		t.Error("OverlayEnabled = false, want true")
	}
	if s.Lighting != before {
		t.Errorf("Lighting changed to %+v", s.Lighting)
	}
	if !approxVec(s.Camera.Front(), mgl32.Vec3{0, 0, -1}) {
		t.Errorf("camera front = %v, want default", s.Camera.Front())
	}
}

func TestReadClampsSpotCutoffs(t *testing.T) {
	s := newTestState()
	var buf bytes.Buffer
	s.Lighting.Spot.CutOff = 40
	s.Lighting.Spot.OuterCutOff = 30
	if err := s.Write(&buf); err != nil {
		t.Fatal(err)
	}
	got := newTestState()
	if err := got.Read(&buf); err != nil {
		t.Fatal(err)
	}
	if got.Lighting.Spot.CutOff != 30 {
		t.Errorf("CutOff = %v, want 30", got.Lighting.Spot.CutOff)
	}
}

func TestSaveToFileBadPath(t *testing.T) {
	s := newTestState()
	path := filepath.Join(t.TempDir(), "no-such-dir", "state.txt")
	if err := s.SaveToFile(path); err == nil {
		t.Error("SaveToFile succeeded into a missing directory")
	}
	if _, err := os.Stat(path); err == nil {
		t.Error("file was created")
	}
}
