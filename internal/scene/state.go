// Package scene holds the state behind the rendered scene: camera, lights,
// layout, the debug panel and the on-disk program state.
package scene

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"math"
	"os"
	"strconv"

	"github.com/go-gl/mathgl/mgl32"
)

// ProgramState is everything the debug panel edits plus the camera pose.
// It survives restarts through SaveToFile and LoadFromFile.
type ProgramState struct {
	ClearColor        mgl32.Vec3
	OverlayEnabled    bool
	CameraMouseUpdate bool
	Camera            *Camera
	BackpackPosition  mgl32.Vec3
	BackpackScale     float32
	Lighting          Lighting
}

func NewProgramState(cfg Config) *ProgramState {
	cam := NewCamera(cfg.Camera.StartPosition())
	cam.SetSpeed(cfg.Camera.Speed)
	cam.SetSensitivity(cfg.Camera.Sensitivity)
	return &ProgramState{
		ClearColor:        mgl32.Vec3{0.2, 0.3, 0.3},
		CameraMouseUpdate: true,
		Camera:            cam,
		BackpackScale:     1,
		Lighting:          DefaultLighting(),
	}
}

var errNonFinite = errors.New("value is not finite")

// stateField is one float in the state file.
type stateField struct {
	name string
	get  func() float32
	set  func(float32)
}

func floatField(name string, p *float32) stateField {
	return stateField{name, func() float32 { return *p }, func(v float32) { *p = v }}
}

func boolField(name string, p *bool) stateField {
	return stateField{
		name: name,
		get: func() float32 {
			if *p {
				return 1
			}
			return 0
		},
		set: func(v float32) { *p = v != 0 },
	}
}

func vecFields(name string, v *mgl32.Vec3) []stateField {
	return []stateField{
		floatField(name+".x", &v[0]),
		floatField(name+".y", &v[1]),
		floatField(name+".z", &v[2]),
	}
}

// fields lists the file layout in order. front is staged separately so the
// camera can rebuild yaw and pitch from it once loading is done.
func (s *ProgramState) fields(front *mgl32.Vec3) []stateField {
	l := &s.Lighting
	var out []stateField
	out = append(out, vecFields("clear_color", &s.ClearColor)...)
	out = append(out, boolField("overlay", &s.OverlayEnabled))
	out = append(out, vecFields("camera.position", &s.Camera.position)...)
	out = append(out, vecFields("camera.front", front)...)
	out = append(out, vecFields("point.ambient", &l.Point.Ambient)...)
	out = append(out, vecFields("point.diffuse", &l.Point.Diffuse)...)
	out = append(out, vecFields("point.specular", &l.Point.Specular)...)
	out = append(out,
		floatField("point.constant", &l.Point.Constant),
		floatField("point.linear", &l.Point.Linear),
		floatField("point.quadratic", &l.Point.Quadratic),
		floatField("spot.cutoff", &l.Spot.CutOff),
		floatField("spot.outer_cutoff", &l.Spot.OuterCutOff),
		boolField("blinn", &l.Blinn),
		boolField("spot.enabled", &l.SpotEnabled),
	)
	out = append(out, vecFields("backpack.position", &s.BackpackPosition)...)
	out = append(out, floatField("backpack.scale", &s.BackpackScale))
	return out
}

func (s *ProgramState) SaveToFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create state file: %w", err)
	}
	defer f.Close()

	if err := s.Write(f); err != nil {
		return fmt.Errorf("write state file %s: %w", path, err)
	}
	return f.Close()
}

// Write emits one value per line in field order.
func (s *ProgramState) Write(w io.Writer) error {
	front := s.Camera.Front()
	bw := bufio.NewWriter(w)
	for _, f := range s.fields(&front) {
		bw.WriteString(strconv.FormatFloat(float64(f.get()), 'g', -1, 32))
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

// LoadFromFile restores state saved by SaveToFile. A missing file leaves
// the state untouched and is not an error.
func (s *ProgramState) LoadFromFile(path string) error {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("open state file: %w", err)
	}
	defer f.Close()

	if err := s.Read(f); err != nil {
		return fmt.Errorf("read state file %s: %w", path, err)
	}
	return nil
}

// Read consumes whitespace-delimited values in field order. NaN and Inf
// count as malformed. Values read before a malformed token are kept. A short input keeps the defaults for
// the fields it does not reach.
func (s *ProgramState) Read(r io.Reader) error {
	front := s.Camera.Front()
	defer func() {
		s.Camera.SetFront(front)
		s.Lighting.Spot.Clamp()
	}()

	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)
	for _, f := range s.fields(&front) {
		if !sc.Scan() {
			return sc.Err()
		}
		v, err := strconv.ParseFloat(sc.Text(), 32)
		if err != nil {
			return fmt.Errorf("field %s: %w", f.name, err)
		}
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("field %s: %w", f.name, errNonFinite)
		}
		f.set(float32(v))
	}
	return nil
}
