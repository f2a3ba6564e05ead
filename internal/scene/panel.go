package scene

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// Row is one editable line of the debug panel.
type Row interface {
	Line() string
	// Adjust nudges the row one step; sign is +1 or -1.
	Adjust(sign float32)
}

// Slider moves one or more floats together within [Min, Max].
type Slider struct {
	Label    string
	Values   []*float32
	Min, Max float32
	Step     float32
	// OnChange runs after every adjustment.
	OnChange func()
}

func (s *Slider) Adjust(sign float32) {
	for _, v := range s.Values {
		*v = mgl32.Clamp(*v+sign*s.Step, s.Min, s.Max)
	}
	if s.OnChange != nil {
		s.OnChange()
	}
}

func (s *Slider) Line() string {
	switch len(s.Values) {
	case 1:
		return fmt.Sprintf("%s: %.3f", s.Label, *s.Values[0])
	case 3:
		return fmt.Sprintf("%s: (%.2f, %.2f, %.2f)", s.Label, *s.Values[0], *s.Values[1], *s.Values[2])
	}
	return s.Label
}

type Checkbox struct {
	Label string
	Value *bool
}

// Adjust flips the box regardless of direction.
func (c *Checkbox) Adjust(float32) { *c.Value = !*c.Value }

func (c *Checkbox) Line() string {
	mark := " "
	if *c.Value {
		mark = "x"
	}
	return fmt.Sprintf("[%s] %s", mark, c.Label)
}

// Panel is the F1 debug overlay: a list of rows with one selected, followed
// by read-only camera info.
type Panel struct {
	state    *ProgramState
	rows     []Row
	selected int
}

func NewPanel(s *ProgramState) *Panel {
	l := &s.Lighting
	widenOuter := func() { l.Spot.WidenOuter() }
	narrowInner := func() { l.Spot.Clamp() }
	p := &Panel{state: s}
	p.rows = []Row{
		&Slider{Label: "Background red", Values: []*float32{&s.ClearColor[0]}, Max: 1, Step: 0.05},
		&Slider{Label: "Background green", Values: []*float32{&s.ClearColor[1]}, Max: 1, Step: 0.05},
		&Slider{Label: "Background blue", Values: []*float32{&s.ClearColor[2]}, Max: 1, Step: 0.05},
		&Slider{Label: "Backpack x", Values: []*float32{&s.BackpackPosition[0]}, Min: -20, Max: 20, Step: 0.1},
		&Slider{Label: "Backpack y", Values: []*float32{&s.BackpackPosition[1]}, Min: -20, Max: 20, Step: 0.1},
		&Slider{Label: "Backpack z", Values: []*float32{&s.BackpackPosition[2]}, Min: -20, Max: 20, Step: 0.1},
		&Slider{Label: "Backpack scale", Values: []*float32{&s.BackpackScale}, Min: 0.1, Max: 4, Step: 0.05},
		&Slider{Label: "pointLight.ambient", Values: vecPtrs(&l.Point.Ambient), Max: 1, Step: 0.01},
		&Slider{Label: "pointLight.diffuse", Values: vecPtrs(&l.Point.Diffuse), Max: 1, Step: 0.05},
		&Slider{Label: "pointLight.specular", Values: vecPtrs(&l.Point.Specular), Max: 1, Step: 0.05},
		&Slider{Label: "pointLight.constant", Values: []*float32{&l.Point.Constant}, Max: 1, Step: 0.05},
		&Slider{Label: "pointLight.linear", Values: []*float32{&l.Point.Linear}, Max: 1, Step: 0.05},
		&Slider{Label: "pointLight.quadratic", Values: []*float32{&l.Point.Quadratic}, Max: 1, Step: 0.05},
		&Slider{Label: "spotLight.cutOff", Values: []*float32{&l.Spot.CutOff}, Max: 90, Step: 1, OnChange: widenOuter},
		&Slider{Label: "spotLight.outerCutOff", Values: []*float32{&l.Spot.OuterCutOff}, Max: 90, Step: 1, OnChange: narrowInner},
		&Checkbox{Label: "Blinn-Phong", Value: &l.Blinn},
		&Checkbox{Label: "Flashlight", Value: &l.SpotEnabled},
		&Checkbox{Label: "Camera mouse update", Value: &s.CameraMouseUpdate},
	}
	return p
}

func vecPtrs(v *mgl32.Vec3) []*float32 {
	return []*float32{&v[0], &v[1], &v[2]}
}

func (p *Panel) Visible() bool { return p.state.OverlayEnabled }

// Toggle shows or hides the panel and reports the new visibility. Showing
// it stops mouse-look so the cursor can be used freely.
func (p *Panel) Toggle() bool {
	s := p.state
	s.OverlayEnabled = !s.OverlayEnabled
	if s.OverlayEnabled {
		s.CameraMouseUpdate = false
	}
	return s.OverlayEnabled
}

func (p *Panel) Selected() int { return p.selected }

func (p *Panel) Next() {
	p.selected = (p.selected + 1) % len(p.rows)
}

func (p *Panel) Prev() {
	p.selected = (p.selected - 1 + len(p.rows)) % len(p.rows)
}

func (p *Panel) Adjust(sign float32) {
	p.rows[p.selected].Adjust(sign)
}

// Lines renders the panel as text, selected row marked with '>'.
func (p *Panel) Lines() []string {
	lines := make([]string, 0, len(p.rows)+6)
	lines = append(lines, "Settings (F1 to close, arrows to edit)")
	for i, r := range p.rows {
		marker := "  "
		if i == p.selected {
			marker = "> "
		}
		lines = append(lines, marker+r.Line())
	}
	c := p.state.Camera
	pos, front := c.Position(), c.Front()
	lines = append(lines,
		"",
		"Camera info",
		fmt.Sprintf("Camera position: (%.2f, %.2f, %.2f)", pos.X(), pos.Y(), pos.Z()),
		fmt.Sprintf("(Yaw, Pitch): (%.2f, %.2f)", c.Yaw(), c.Pitch()),
		fmt.Sprintf("Camera front: (%.2f, %.2f, %.2f)", front.X(), front.Y(), front.Z()),
	)
	return lines
}
