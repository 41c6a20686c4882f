package main

import (
	"errors"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/generators"
	"github.com/faiface/beep/speaker"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/ncruces/zenity"

	"github.com/iburimskiy/particle-field/internal/config"
	"github.com/iburimskiy/particle-field/internal/field"
)

const toneFrequency = 880

// game is the demo host: an alarm-clock style screen with the particle
// field as its background. The real application supplies its own UI on
// top; here a status line stands in for it.
type game struct {
	field *field.Field

	// alarm tone
	tone       *beep.Ctrl
	soundReady bool

	dark     bool
	alarming bool

	// input edge detection
	prevKey map[ebiten.Key]bool

	w, h    int
	lastErr error
}

func NewGame() *game {
	g := &game{
		prevKey: map[ebiten.Key]bool{},
		dark:    true,
		w:       config.WindowWidth,
		h:       config.WindowHeight,
	}
	g.field = field.New(g.w, g.h, g.dark)
	g.field.SetDoubleTapHandler(g.dismissAlarm)

	if err := g.initTone(); err != nil {
		// No speaker is fine; the demo runs silent.
		g.lastErr = err
	}
	return g
}

// initTone prepares a paused sine streamer on the speaker so arming the
// alarm is just a Ctrl flip.
func (g *game) initTone() error {
	sr := beep.SampleRate(44100)
	if err := speaker.Init(sr, sr.N(time.Second/20)); err != nil {
		return err
	}
	tone, err := generators.SinTone(sr, toneFrequency)
	if err != nil {
		return err
	}
	g.tone = &beep.Ctrl{Streamer: tone, Paused: true}
	speaker.Play(g.tone)
	g.soundReady = true
	return nil
}

func (g *game) setAlarming(on bool) {
	g.alarming = on
	g.field.SetAlarming(on)
	if g.soundReady {
		speaker.Lock()
		g.tone.Paused = !on
		speaker.Unlock()
	}
}

// dismissAlarm is wired to the field's double-tap gesture.
func (g *game) dismissAlarm() {
	if !g.alarming {
		return
	}
	g.setAlarming(false)
	if err := zenity.Notify("Alarm dismissed", zenity.Title("particle-field")); err != nil {
		g.lastErr = err
	}
}

func (g *game) Update() error {

	justPressed := func(k ebiten.Key) bool {
		pressed := ebiten.IsKeyPressed(k)
		jp := pressed && !g.prevKey[k]
		g.prevKey[k] = pressed
		return jp
	}

	if justPressed(ebiten.KeyD) {
		g.dark = !g.dark
		g.field.SetDark(g.dark)
	}
	if justPressed(ebiten.KeyA) {
		g.setAlarming(!g.alarming)
	}
	if justPressed(ebiten.KeyEscape) || justPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}

	g.field.Resize(g.w, g.h)
	g.field.Update()

	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	g.field.Draw(screen)

	status := "D: dark/light, A: ring alarm, Esc/Q: quit"
	if g.alarming {
		status = "Alarm ringing - double-click to dismiss"
	}
	if g.lastErr != nil {
		status += " | Error: " + g.lastErr.Error()
	}
	ebitenutil.DebugPrintAt(screen, status, 12, 12)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.w, g.h = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}

func main() {
	ebiten.SetWindowSize(config.WindowWidth, config.WindowHeight)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowTitle("Particle Field - D: theme, A: alarm, Esc/Q: quit")

	g := NewGame()
	defer g.field.Stop()

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		panic(err)
	}
}
