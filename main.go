package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/braheezy/glass-pavilion/internal/logger"
	"github.com/braheezy/glass-pavilion/internal/scene"
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"
)

func init() {
	// This is needed to arrange that main() runs on main thread.
	runtime.LockOSThread()
}

func main() {
	configPath := flag.String("config", "resources/config.yaml", "path to the YAML config file")
	debug := flag.Bool("debug", false, "enable development logging")
	flag.Parse()

	if err := logger.Init(*debug); err != nil {
		fmt.Fprintln(os.Stderr, "init logger:", err)
		os.Exit(1)
	}
	defer logger.Sync()

	cfg, err := scene.LoadConfig(*configPath)
	if err != nil {
		logger.Log.Fatal("could not load config", zap.String("path", *configPath), zap.Error(err))
	}
	if cfg.Debug && !*debug {
		if err := logger.Init(true); err != nil {
			logger.Log.Fatal("could not switch to debug logging", zap.Error(err))
		}
	}

	if err := run(cfg); err != nil {
		logger.Log.Fatal("scene failed", zap.Error(err))
	}
}

// app holds what the GLFW callbacks need between frames.
type app struct {
	cfg   scene.Config
	state *scene.ProgramState
	panel *scene.Panel

	width, height int
	firstMouse    bool
	lastX, lastY  float64
	deltaTime     float32
}

func run(cfg scene.Config) error {
	/*
	 * GLFW init and configure
	 */
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("init glfw: %w", err)
	}
	// Free resources used by GLFW when the program exits.
	defer glfw.Terminate()
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	// required on macOS, harmless elsewhere
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	window, err := glfw.CreateWindow(cfg.Window.Width, cfg.Window.Height, cfg.Window.Title, nil, nil)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()

	/*
	 * Load OS-specific OpenGL function pointers
	 */
	if err := gl.Init(); err != nil {
		return fmt.Errorf("init gl: %w", err)
	}
	logger.Log.Info("OpenGL initialized", zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))))

	state := scene.NewProgramState(cfg)
	if err := state.LoadFromFile(cfg.Paths.State); err != nil {
		logger.Log.Warn("could not restore program state", zap.Error(err))
	}

	a := &app{
		cfg:        cfg,
		state:      state,
		panel:      scene.NewPanel(state),
		width:      cfg.Window.Width,
		height:     cfg.Window.Height,
		firstMouse: true,
	}

	window.SetFramebufferSizeCallback(a.framebufferSizeCallback)
	window.SetCursorPosCallback(a.mouseCallback)
	window.SetScrollCallback(a.scrollCallback)
	window.SetKeyCallback(a.keyCallback)
	// tell GLFW to capture our mouse
	window.SetInputMode(glfw.CursorMode, glfw.CursorDisabled)
	if state.OverlayEnabled {
		window.SetInputMode(glfw.CursorMode, glfw.CursorNormal)
	}

	/*
	 * configure global opengl state
	 */
	gl.Enable(gl.DEPTH_TEST)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.Enable(gl.CULL_FACE)
	gl.CullFace(gl.BACK)

	/*
	 * build and compile shaders
	 */
	lightingShader, err := LoadShader(cfg.Paths.Shaders, "floor")
	if err != nil {
		return err
	}
	defer lightingShader.delete()
	windowShader, err := LoadShader(cfg.Paths.Shaders, "window")
	if err != nil {
		return err
	}
	defer windowShader.delete()
	textShader, err := LoadShader(cfg.Paths.Shaders, "text")
	if err != nil {
		return err
	}
	defer textShader.delete()
	modelShader, err := LoadShader(cfg.Paths.Shaders, "model")
	if err != nil {
		return err
	}
	defer modelShader.delete()

	/*
	 * load textures and geometry
	 */
	texturePath := func(name string) string { return filepath.Join(cfg.Paths.Textures, name) }
	floorMap := loadTexture(texturePath("floor.jpg"))
	wallMap := loadTexture(texturePath("marble.jpg"))
	glassMap := loadTexture(texturePath("glass.png"))
	defer func() {
		textures := []uint32{floorMap, wallMap, glassMap}
		gl.DeleteTextures(int32(len(textures)), &textures[0])
	}()

	cube := newCubeMesh(scene.CubeVertices(unitTiling))
	defer cube.delete()
	floor := newCubeMesh(scene.CubeVertices(scene.FloorTiling))
	defer floor.delete()

	backpack, err := LoadModel(cfg.Paths.Models)
	if err != nil {
		logger.Log.Warn("backpack model not loaded", zap.String("path", cfg.Paths.Models), zap.Error(err))
	} else {
		defer backpack.delete()
	}

	/*
	 * shader configuration
	 */
	for _, s := range []*Shader{lightingShader, windowShader} {
		s.use()
		s.setInt("material.diffuse", 0)
		s.setInt("material.specular", 1)
	}

	text := NewTextRenderer(textShader)
	defer text.delete()
	if err := text.Load(cfg.Paths.Font, overlayFontSize); err != nil {
		logger.Log.Warn("overlay font not loaded, using built-in font", zap.Error(err))
		if err := text.Load("", overlayFontSize); err != nil {
			return err
		}
	}
	debugOverlay := &overlay{panel: a.panel, text: text}

	if cfg.Paths.AmbientSound != "" {
		track, err := playAmbient(cfg.Paths.AmbientSound)
		if err != nil {
			logger.Log.Warn("ambient sound disabled", zap.Error(err))
		} else {
			defer track.close()
		}
	}

	/*
	 * render loop
	 */
	var lastFrame float32
	for !window.ShouldClose() {
		currentFrame := float32(glfw.GetTime())
		a.deltaTime = currentFrame - lastFrame
		lastFrame = currentFrame

		a.processInput(window)

		bg := state.ClearColor
		gl.ClearColor(bg.X(), bg.Y(), bg.Z(), 1.0)
		gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

		cam := state.Camera
		state.Lighting.Spot.Follow(cam)
		frame := frameUniforms{
			projection: cam.Projection(a.aspect()),
			view:       cam.ViewMatrix(),
			viewPos:    cam.Position(),
			lighting:   state.Lighting,
		}
		frame.apply(lightingShader, nil)
		frame.apply(windowShader, &scene.WindowAmbient)

		floor.draw(lightingShader, floorMap, scene.Floor)
		for _, pillar := range scene.Pillars {
			cube.draw(lightingShader, wallMap, pillar)
		}

		if backpack != nil {
			frame.apply(modelShader, nil)
			p := state.BackpackPosition
			s := state.BackpackScale
			modelShader.setMat4("model", mgl32.Translate3D(p.X(), p.Y(), p.Z()).Mul4(mgl32.Scale3D(s, s, s)))
			backpack.Draw(modelShader)
		}

		// Translucent panes go last, farthest first, so each blends over
		// everything behind it.
		for _, pane := range scene.SortBackToFront(cam.Position(), scene.Panes) {
			cube.draw(windowShader, glassMap, pane)
		}

		debugOverlay.draw(a.width, a.height)

		// Swap the color buffer and poll for input events.
		window.SwapBuffers()
		glfw.PollEvents()
	}

	if err := state.SaveToFile(a.cfg.Paths.State); err != nil {
		logger.Log.Warn("could not save program state", zap.Error(err))
	}
	return nil
}

func (a *app) aspect() float32 {
	if a.height == 0 {
		return a.cfg.Aspect()
	}
	return float32(a.width) / float32(a.height)
}

// processInput handles keys that act for as long as they are held.
func (a *app) processInput(w *glfw.Window) {
	if w.GetKey(glfw.KeyEscape) == glfw.Press {
		w.SetShouldClose(true)
	}

	cam := a.state.Camera
	if w.GetKey(glfw.KeyW) == glfw.Press {
		cam.ProcessKeyboard(scene.Forward, a.deltaTime)
	}
	if w.GetKey(glfw.KeyS) == glfw.Press {
		cam.ProcessKeyboard(scene.Backward, a.deltaTime)
	}
	if w.GetKey(glfw.KeyA) == glfw.Press {
		cam.ProcessKeyboard(scene.Left, a.deltaTime)
	}
	if w.GetKey(glfw.KeyD) == glfw.Press {
		cam.ProcessKeyboard(scene.Right, a.deltaTime)
	}
}

// framebufferSizeCallback is called when the gl viewport is resized.
func (a *app) framebufferSizeCallback(w *glfw.Window, width int, height int) {
	gl.Viewport(0, 0, int32(width), int32(height))
	a.width, a.height = width, height
}

func (a *app) mouseCallback(w *glfw.Window, xpos, ypos float64) {
	if a.firstMouse {
		a.lastX, a.lastY = xpos, ypos
		a.firstMouse = false
	}

	xOffset := float32(xpos - a.lastX)
	// reversed since y-coordinates go from bottom to top
	yOffset := float32(a.lastY - ypos)
	a.lastX, a.lastY = xpos, ypos

	if a.state.CameraMouseUpdate {
		a.state.Camera.ProcessMouseMovement(xOffset, yOffset, true)
	}
}

func (a *app) scrollCallback(w *glfw.Window, xOffset, yOffset float64) {
	a.state.Camera.ProcessMouseScroll(float32(yOffset))
}

// keyCallback handles keys that act once per press.
func (a *app) keyCallback(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	if action == glfw.Release {
		return
	}

	switch key {
	case glfw.KeyF1:
		if action != glfw.Press {
			return
		}
		if a.panel.Toggle() {
			w.SetInputMode(glfw.CursorMode, glfw.CursorNormal)
		} else {
			w.SetInputMode(glfw.CursorMode, glfw.CursorDisabled)
			a.firstMouse = true
		}
	case glfw.KeyB:
		if action == glfw.Press {
			a.state.Lighting.Blinn = !a.state.Lighting.Blinn
			logger.Log.Debug("lighting model", zap.Bool("blinn", a.state.Lighting.Blinn))
		}
	case glfw.KeyF:
		if action == glfw.Press {
			a.state.Lighting.SpotEnabled = !a.state.Lighting.SpotEnabled
		}
	}

	if !a.panel.Visible() {
		return
	}
	// arrow keys auto-repeat while the panel is open
	switch key {
	case glfw.KeyUp:
		a.panel.Prev()
	case glfw.KeyDown:
		a.panel.Next()
	case glfw.KeyLeft:
		a.panel.Adjust(-1)
	case glfw.KeyRight:
		a.panel.Adjust(1)
	}
}
