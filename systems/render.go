package systems

import (
	"image"
	"image/color"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/splitsecond/splitsecond/components"
	cfg "github.com/splitsecond/splitsecond/config"
	"github.com/splitsecond/splitsecond/shared/gamemath"
	"github.com/splitsecond/splitsecond/shared/grapple"
	"github.com/splitsecond/splitsecond/shared/movement"
	"github.com/splitsecond/splitsecond/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	whiteSubImage *ebiten.Image

	quadVertices = make([]ebiten.Vertex, 4)
	quadIndices  = []uint16{0, 1, 2, 0, 2, 3}
	quadOp       = &ebiten.DrawTrianglesOptions{}
)

// solidImage returns the inner pixel of a white 3x3 image, so sampling never
// touches the texture edge.
func solidImage() *ebiten.Image {
	if whiteSubImage == nil {
		img := ebiten.NewImage(3, 3)
		img.Fill(color.White)
		whiteSubImage = img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	}
	return whiteSubImage
}

// topDownView maps world X/Z onto the screen around the player, rotated so
// the view direction points up.
type topDownView struct {
	center         mgl64.Vec3
	forward, right mgl64.Vec3
	scale          float64
	cx, cy         float64
}

func newTopDownView(center mgl64.Vec3, yaw, fov float64, width, height int) topDownView {
	forward, right := gamemath.YawBasis(yaw)
	scale := cfg.Render.PixelsPerUnit
	if fov > 0 {
		scale *= cfg.Camera.BaseFOV / fov
	}
	return topDownView{
		center:  center,
		forward: forward,
		right:   right,
		scale:   scale,
		cx:      float64(width) / 2,
		cy:      float64(height) / 2,
	}
}

func (v topDownView) project(p mgl64.Vec3) (float32, float32) {
	d := gamemath.Horizontal(p.Sub(v.center))
	x := v.cx + d.Dot(v.right)*v.scale
	y := v.cy - d.Dot(v.forward)*v.scale
	return float32(x), float32(y)
}

// DrawLevel renders the level from above, centered on the player.
func DrawLevel(e *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(cfg.Render.Background)

	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	player := components.Player.Get(playerEntry)
	physics := components.Physics.Get(playerEntry)

	yaw, fov := player.Input.Yaw, cfg.Camera.BaseFOV
	if rig := cameraRig(e); rig != nil {
		yaw, fov = rig.Yaw(), rig.FOV()
	}
	view := newTopDownView(player.Last.Position, yaw, fov, screen.Bounds().Dx(), screen.Bounds().Dy())

	if levelEntry, ok := components.Level.First(e.World); ok {
		if level := components.Level.Get(levelEntry).CurrentLevel; level != nil {
			for _, block := range level.Terrain {
				drawBox(screen, view, block.Min, block.Max, terrainColor(block.Max.Y()))
			}
		}
	}

	components.Object.Each(e.World, func(entry *donburi.Entry) {
		if clr, ok := objectColor(entry); ok {
			box := components.Object.Get(entry)
			drawBox(screen, view, box.Min(), box.Max(), clr)
		}
	})

	drawPlayer(screen, view, player.Last, physics)
}

func objectColor(entry *donburi.Entry) (color.RGBA, bool) {
	switch {
	case entry.HasComponent(tags.FinishLine):
		return cfg.Render.FinishLine, true
	case entry.HasComponent(tags.Platform):
		return cfg.Render.Platform, true
	case entry.HasComponent(tags.Wall):
		return cfg.Render.Wall, true
	case entry.HasComponent(tags.GrapplePoint):
		return cfg.Render.GrapplePoint, true
	}
	return color.RGBA{}, false
}

func drawPlayer(screen *ebiten.Image, view topDownView, last movement.Snapshot, physics *components.PhysicsData) {
	px, py := view.project(last.Position)

	if physics.Grapple.State() != grapple.Idle {
		if attach, ok := physics.Grapple.AttachPoint(); ok {
			ax, ay := view.project(attach)
			vector.StrokeLine(screen, px, py, ax, ay, 2, cfg.Render.Tether, true)
		}
	}

	clr := cfg.Render.Player
	if last.Sliding {
		clr = cfg.Render.PlayerSlide
	}
	radius := float32(cfg.Player.Radius * view.scale)
	vector.DrawFilledCircle(screen, px, py, radius, clr, true)
	// The view always faces up, so the heading marker does too.
	vector.StrokeLine(screen, px, py, px, py-radius*2, 2, cfg.Render.Heading, true)
}

// drawBox fills the footprint of min..max.
func drawBox(screen *ebiten.Image, view topDownView, min, max mgl64.Vec3, clr color.RGBA) {
	corners := [4]mgl64.Vec3{
		{min.X(), 0, min.Z()},
		{max.X(), 0, min.Z()},
		{max.X(), 0, max.Z()},
		{min.X(), 0, max.Z()},
	}
	r, g, b, a := float32(clr.R)/255, float32(clr.G)/255, float32(clr.B)/255, float32(clr.A)/255
	for i, c := range corners {
		x, y := view.project(c)
		quadVertices[i] = ebiten.Vertex{
			DstX: x, DstY: y,
			SrcX: 1, SrcY: 1,
			ColorR: r, ColorG: g, ColorB: b, ColorA: a,
		}
	}
	screen.DrawTriangles(quadVertices, quadIndices, solidImage(), quadOp)
}

// terrainColor shades a column by its top height.
func terrainColor(top float64) color.RGBA {
	t := gamemath.Clamp01(top / cfg.Render.HeightRange)
	lo, hi := cfg.Render.TerrainLow, cfg.Render.TerrainHigh
	mix := func(a, b uint8) uint8 {
		return uint8(gamemath.Lerp(float64(a), float64(b), t) + 0.5)
	}
	return color.RGBA{R: mix(lo.R, hi.R), G: mix(lo.G, hi.G), B: mix(lo.B, hi.B), A: 255}
}
