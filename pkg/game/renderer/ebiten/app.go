package ebiten

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"stardrift/pkg/engine/console"
)

const panSpeed = 4

// App is the Ebiten game: a pannable starfield with the drop-down console
// over it. While the console is open it owns the keyboard; otherwise the
// arrow keys pan the field.
type App struct {
	scene    *Scene
	console  *console.Console
	capture  *Capture
	renderer *Renderer

	width  int
	height int
}

// NewApp assembles the game from its parts.
func NewApp(scene *Scene, c *console.Console, capture *Capture, renderer *Renderer) *App {
	return &App{
		scene:    scene,
		console:  c,
		capture:  capture,
		renderer: renderer,
	}
}

// Update advances one tick: toggle handling, then either console input or
// scene panning, then the console's own per-tick work.
func (a *App) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyBackquote) {
		a.console.Toggle()
	}

	if a.console.IsOpen() {
		a.capture.Update()
		ProcessKeys(a.console)
	} else {
		a.panFromKeys()
	}

	a.console.Update(image.Pt(a.width, a.height), a.scene.PanOffset())
	return nil
}

func (a *App) panFromKeys() {
	var dx, dy int
	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		dx -= panSpeed
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		dx += panSpeed
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		dy -= panSpeed
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		dy += panSpeed
	}
	a.scene.Pan(dx, dy)
}

// Draw paints the scene and composites the console frame over it.
func (a *App) Draw(screen *ebiten.Image) {
	a.scene.Draw(screen)
	a.renderer.Draw(screen, a.console.Frame())
}

// Layout reports the logical screen size and remembers it for Update.
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	a.width = outsideWidth
	a.height = outsideHeight
	return outsideWidth, outsideHeight
}
