// Package game is the ebiten front end of the flock: it renders the latest
// snapshot pushed by the FlockActor and turns mouse input and widget changes
// into actor commands.
package game

import (
	"context"
	"fmt"
	"image/color"
	"math"
	"math/rand/v2"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/lao-tseu-is-alive/go-flock/pb"
	"github.com/lao-tseu-is-alive/go-flock/pkg/flock"
	"github.com/lao-tseu-is-alive/go-flock/pkg/simulation"
	"github.com/lao-tseu-is-alive/go-flock/pkg/ui"
	golog "github.com/tochemey/goakt/v3/log"
)

// PanelWidth is the width of the control panel drawn right of the world.
const PanelWidth = 200

const (
	predatorRadius = 30
	spawnCooldown  = 5 // ticks between boids spawned while dragging
)

var (
	backgroundColor = color.RGBA{R: 39, G: 48, B: 61, A: 255}
	boidColor       = color.RGBA{R: 98, G: 135, B: 84, A: 255}
	debugColor      = color.RGBA{R: 230, G: 60, B: 60, A: 255}
	coneColor       = color.RGBA{R: 230, G: 60, B: 60, A: 90}
	predatorColor   = color.RGBA{R: 255, G: 204, B: 0, A: 255}
)

// Mode says what a click in the world does.
type Mode int

const (
	ModeCreate  Mode = iota // spawn boids under the cursor
	ModeScatter             // move the predator under the cursor
)

type Game struct {
	ctx       context.Context
	client    *simulation.Client
	snapshots <-chan *pb.WorldSnapshot
	lastState *pb.WorldSnapshot
	logger    golog.Logger
	rng       *rand.Rand

	width, height float64
	mode          Mode
	cooldown      int

	// UI Controls
	panel            *ui.UIPanel
	widgetCreate     *ui.Button
	widgetScatter    *ui.Button
	widgetSpeed      *ui.Slider
	widgetInertia    *ui.Slider
	widgetWeights    *ui.TriangleSelector
	widgetDebug      *ui.Checkbox
	initialSpeed     float64
	initialInertia   float64
	resetRequested   bool
	lastCommandError error

	// Timing instrumentation
	lastUpdateDuration time.Duration
	lastDrawDuration   time.Duration
	updateAvg          float64 // Rolling average in ms
	drawAvg            float64 // Rolling average in ms
}

// SpeedFromSlider maps the speed slider [0, 100] to a boid speed.
func SpeedFromSlider(v float64) float64 { return v / 10 }

// SliderFromSpeed is the inverse of SpeedFromSlider.
func SliderFromSpeed(s float64) float64 { return s * 10 }

// InertiaFromSlider maps the inertia slider [0, 100] to inertia, 100 being
// the stiffest flock.
func InertiaFromSlider(v float64) float64 { return 1 - v/100 }

// SliderFromInertia is the inverse of InertiaFromSlider.
func SliderFromInertia(i float64) float64 { return (1 - i) * 100 }

// New builds the game for a flock already spawned behind client. snapshots is
// the channel the actor pushes to after every tick.
func New(ctx context.Context, client *simulation.Client, snapshots <-chan *pb.WorldSnapshot, cfg *simulation.Config, logger golog.Logger) *Game {
	if logger == nil {
		logger = golog.DiscardLogger
	}
	g := &Game{
		ctx:            ctx,
		client:         client,
		snapshots:      snapshots,
		lastState:      &pb.WorldSnapshot{}, // Avoid nil pointer
		logger:         logger,
		rng:            rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
		width:          cfg.WorldWidth,
		height:         cfg.WorldHeight,
		initialSpeed:   SliderFromSpeed(cfg.Speed),
		initialInertia: SliderFromInertia(cfg.Inertia),
	}

	panel := ui.NewUIPanel(cfg.WorldWidth, 0, PanelWidth, cfg.WorldHeight)
	panel.Title = "Boids"

	panel.AddSection("Mouse")
	g.widgetCreate = panel.AddButton("Create", func() { g.setMode(ModeCreate) })
	g.widgetScatter = panel.AddButton("Scatter", func() { g.setMode(ModeScatter) })
	panel.EndSection()

	panel.AddSection("Flocking")
	g.widgetSpeed = panel.AddSlider("Speed", 0, 100, g.initialSpeed)
	g.widgetInertia = panel.AddSlider("Inertia", 0, 100, g.initialInertia)
	g.widgetWeights = panel.AddTriangle("Weights")
	panel.EndSection()

	panel.AddSection("View")
	g.widgetDebug = panel.AddCheckbox("Debug", false)
	panel.AddButton("Reset", func() { g.resetRequested = true })
	panel.EndSection()

	g.panel = panel
	g.setMode(ModeCreate)
	return g
}

func (g *Game) setMode(m Mode) {
	g.mode = m
	g.widgetCreate.Active = m == ModeCreate
	g.widgetScatter.Active = m == ModeScatter
}

// Mode returns the current click mode.
func (g *Game) Mode() Mode {
	return g.mode
}

func (g *Game) Update() error {
	start := time.Now()
	defer func() {
		g.lastUpdateDuration = time.Since(start)
		// Rolling average (exponential moving average)
		g.updateAvg = g.updateAvg*0.95 + float64(g.lastUpdateDuration.Microseconds())/1000.0*0.05
	}()

	// 1. Update UI Panel, buttons fire their callbacks here
	g.panel.Update()
	if g.resetRequested {
		g.resetRequested = false
		g.reset()
	}
	g.sendParameters()

	// 2. Mouse in the world area
	mx, my := ebiten.CursorPosition()
	x, y := float64(mx), float64(my)
	if x >= 0 && x < g.width && y >= 0 && y < g.height {
		g.handleWorldInput(x, y,
			inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
			ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft))
	}

	// 3. Retrieve Latest State (Non-blocking)
	select {
	case snap := <-g.snapshots:
		g.lastState = snap
	default:
		// Use previous state if new one isn't ready
	}

	// 4. Trigger Simulation Step
	g.check(g.client.Tick(g.ctx))
	return nil
}

// sendParameters forwards the widgets that moved since the previous frame.
func (g *Game) sendParameters() {
	var u flock.ParamUpdate
	if g.widgetSpeed.Changed() {
		u.Speed = flock.Float(SpeedFromSlider(g.widgetSpeed.Value))
	}
	if g.widgetInertia.Changed() {
		u.Inertia = flock.Float(InertiaFromSlider(g.widgetInertia.Value))
	}
	if g.widgetWeights.Changed() {
		w := g.widgetWeights.Weights().Update()
		u.SeparationWeight, u.AlignmentWeight, u.CohesionWeight = w.SeparationWeight, w.AlignmentWeight, w.CohesionWeight
	}
	g.check(g.client.UpdateParameters(g.ctx, u))
}

// handleWorldInput applies a click at (x, y) in the current mode. A held
// button in create mode keeps spawning, one boid every spawnCooldown ticks.
func (g *Game) handleWorldInput(x, y float64, justPressed, pressed bool) {
	switch g.mode {
	case ModeCreate:
		if justPressed {
			g.cooldown = spawnCooldown
			g.spawn(x, y)
			return
		}
		if !pressed {
			return
		}
		if g.cooldown > 0 {
			g.cooldown--
			return
		}
		g.cooldown = spawnCooldown
		g.spawn(x, y)
	case ModeScatter:
		if justPressed {
			g.check(g.client.SetPredatorTarget(g.ctx, x, y))
		}
	}
}

func (g *Game) spawn(x, y float64) {
	vx := g.rng.Float64()*6 - 3
	vy := g.rng.Float64()*6 - 3
	g.check(g.client.SpawnBoid(g.ctx, x, y, vx, vy))
}

// reset restores the flock and puts every widget back where it started.
func (g *Game) reset() {
	g.check(g.client.Reset(g.ctx))
	g.widgetSpeed.Reset(g.initialSpeed)
	g.widgetInertia.Reset(g.initialInertia)
	g.widgetWeights.Reset()
	g.logger.Info("flock reset from the panel")
}

func (g *Game) check(err error) {
	if err != nil && (g.lastCommandError == nil || err.Error() != g.lastCommandError.Error()) {
		g.logger.Warnf("command not delivered: %v", err)
	}
	g.lastCommandError = err
}

func (g *Game) Draw(screen *ebiten.Image) {
	start := time.Now()
	defer func() {
		g.lastDrawDuration = time.Since(start)
		g.drawAvg = g.drawAvg*0.95 + float64(g.lastDrawDuration.Microseconds())/1000.0*0.05
	}()

	screen.Fill(backgroundColor)
	state := g.lastState

	// 1. Debug overlay for the first boid
	if g.widgetDebug.Value && len(state.GetBoids()) > 0 {
		g.drawDebug(screen, state)
	}

	// 2. Boids
	for i, b := range state.GetBoids() {
		clr := boidColor
		if i == 0 && g.widgetDebug.Value {
			clr = debugColor
		}
		drawBoid(screen, b, clr)
	}

	// 3. Predator, fading out with its life
	if p := state.GetPredator(); p.GetLife() > 0 {
		clr := predatorColor
		clr.A = PredatorAlpha(p.GetLife())
		vector.StrokeCircle(screen,
			float32(p.GetPosition().GetX()), float32(p.GetPosition().GetY()),
			predatorRadius, 2, clr, true)
	}

	// 4. Draw UI Panel
	g.panel.Draw(screen)

	// Display timing breakdown for performance analysis
	msg := fmt.Sprintf("FPS: %.2f\nTPS: %.2f\nBoids: %d\nTick: %d\n\nUpdate: %.2fms\nDraw:   %.2fms",
		ebiten.ActualFPS(),
		ebiten.ActualTPS(),
		len(state.GetBoids()),
		state.GetTick(),
		g.updateAvg,
		g.drawAvg)
	ebitenutil.DebugPrintAt(screen, msg, 10, 10)
}

// drawDebug draws the view cone of the first boid and a line to each of its neighbors.
func (g *Game) drawDebug(screen *ebiten.Image, state *pb.WorldSnapshot) {
	first := state.GetBoids()[0]
	params := state.GetParameters()
	x, y := float32(first.GetPosition().GetX()), float32(first.GetPosition().GetY())

	half := params.GetViewAngle() / 2
	heading := first.GetHeading()
	var path vector.Path
	path.MoveTo(x, y)
	path.Arc(x, y, float32(params.GetNeighborhoodRadius()), float32(heading-half), float32(heading+half), vector.Clockwise)
	path.Close()
	vs, is := path.AppendVerticesAndIndicesForFilling(nil, nil)
	for i := range vs {
		vs[i].SrcX, vs[i].SrcY = 1, 1
		vs[i].ColorR = float32(coneColor.R) / 255
		vs[i].ColorG = float32(coneColor.G) / 255
		vs[i].ColorB = float32(coneColor.B) / 255
		vs[i].ColorA = float32(coneColor.A) / 255
	}
	screen.DrawTriangles(vs, is, whiteImage(), &ebiten.DrawTrianglesOptions{})

	for _, pos := range NeighborPositions(state, first) {
		vector.StrokeLine(screen, x, y, float32(pos.GetX()), float32(pos.GetY()), 1, debugColor, true)
	}
}

// NeighborPositions resolves the neighbor IDs of b against the boids of state.
func NeighborPositions(state *pb.WorldSnapshot, b *pb.BoidState) []*pb.Vector2D {
	ids := b.GetNeighborIds()
	if len(ids) == 0 {
		return nil
	}
	byID := make(map[string]*pb.Vector2D, len(state.GetBoids()))
	for _, o := range state.GetBoids() {
		byID[o.GetId()] = o.GetPosition()
	}
	out := make([]*pb.Vector2D, 0, len(ids))
	for _, id := range ids {
		if p, ok := byID[id]; ok {
			out = append(out, p)
		}
	}
	return out
}

// PredatorAlpha fades the predator ring over its last 20 ticks.
func PredatorAlpha(life int32) uint8 {
	a := float64(life) / 20
	if a > 1 {
		a = 1
	}
	if a < 0 {
		a = 0
	}
	return uint8(math.Round(a * 255))
}

// boidShape is the arrowhead drawn for a boid heading along +x.
var boidShape = [4][2]float64{{10, 0}, {-10, 6}, {-8, 0}, {-10, -6}}

// BoidVertices returns the arrowhead of a boid at (x, y) rotated to heading.
func BoidVertices(x, y, heading float64) [4][2]float64 {
	sin, cos := math.Sincos(heading)
	var out [4][2]float64
	for i, p := range boidShape {
		out[i] = [2]float64{
			x + p[0]*cos - p[1]*sin,
			y + p[0]*sin + p[1]*cos,
		}
	}
	return out
}

func drawBoid(screen *ebiten.Image, b *pb.BoidState, clr color.RGBA) {
	pts := BoidVertices(b.GetPosition().GetX(), b.GetPosition().GetY(), b.GetHeading())
	vertices := make([]ebiten.Vertex, len(pts))
	for i, p := range pts {
		vertices[i] = ebiten.Vertex{
			DstX: float32(p[0]),
			DstY: float32(p[1]),
			SrcX: 1, SrcY: 1,
			ColorR: float32(clr.R) / 255,
			ColorG: float32(clr.G) / 255,
			ColorB: float32(clr.B) / 255,
			ColorA: 1,
		}
	}
	// two triangles, tip to each half of the notched tail
	indices := []uint16{0, 1, 2, 0, 2, 3}
	screen.DrawTriangles(vertices, indices, whiteImage(), &ebiten.DrawTrianglesOptions{})
}

var white *ebiten.Image

func whiteImage() *ebiten.Image {
	if white == nil {
		white = ebiten.NewImage(3, 3)
		white.Fill(color.White)
	}
	return white
}

func (g *Game) Layout(w, h int) (int, int) {
	return int(g.width) + PanelWidth, int(g.height)
}
