package systems

import (
	"github.com/automoto/platproto/components"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	drawOp = &ebiten.DrawImageOptions{}
)

// cullPadding keeps sprites from popping in at the screen edges.
const cullPadding = 64.0

type view struct {
	camX, camY             float64 // screen offset for world coordinates
	minX, maxX, minY, maxY float64 // padded visible world rect
}

func cameraView(ecs *ecs.ECS, screen *ebiten.Image) (view, bool) {
	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok {
		return view{}, false // No camera yet
	}
	camera := components.Camera.Get(cameraEntry)
	width, height := float64(screen.Bounds().Dx()), float64(screen.Bounds().Dy())

	return view{
		camX: width/2 - camera.Position.X,
		camY: height/2 - camera.Position.Y,
		minX: camera.Position.X - width/2 - cullPadding,
		maxX: camera.Position.X + width/2 + cullPadding,
		minY: camera.Position.Y - height/2 - cullPadding,
		maxY: camera.Position.Y + height/2 + cullPadding,
	}, true
}

func (v view) culled(o *components.ObjectData) bool {
	return o.X+o.W < v.minX || o.X > v.maxX || o.Y+o.H < v.minY || o.Y > v.maxY
}

// DrawBackdrop clears the screen to the variant's background colour.
func DrawBackdrop(ecs *ecs.ECS, screen *ebiten.Image) {
	entry, ok := components.Variant.First(ecs.World)
	if !ok {
		return
	}
	if v := components.Variant.Get(entry); v.Variant != nil && v.Background.Color != nil {
		screen.Fill(v.Background.Color)
	}
}

// DrawAnimated renders entities with an Animation component based on their
// current frame, anchored at the bottom-centre of the collision box.
func DrawAnimated(ecs *ecs.ECS, screen *ebiten.Image) {
	v, ok := cameraView(ecs, screen)
	if !ok {
		return
	}

	components.Animation.Each(ecs.World, func(e *donburi.Entry) {
		o := components.Object.Get(e)
		if v.culled(o) {
			return
		}

		animData := components.Animation.Get(e)
		img := animData.CurrentFrame()
		if img == nil {
			return
		}
		size := animData.FrameSizes[animData.CurrentSheet]

		drawOp.GeoM.Reset()
		drawOp.ColorScale.Reset()

		// Characters: anchor at bottom-center so feet line up with collision box
		drawOp.GeoM.Translate(-float64(size.Width)/2, -float64(size.Height))

		if e.HasComponent(components.SquashStretch) {
			ss := components.SquashStretch.Get(e)
			drawOp.GeoM.Scale(ss.ScaleX, ss.ScaleY)
		}

		if e.HasComponent(components.State) {
			if components.State.Get(e).Machine.Facing().FlipX() {
				drawOp.GeoM.Scale(-1, 1)
			}
		}

		drawOp.GeoM.Translate(o.X+o.W/2, o.Y+o.H)
		drawOp.GeoM.Translate(v.camX, v.camY)

		screen.DrawImage(img, drawOp)
	})
}

// DrawSprites renders single-image entities rotated about their pivot and
// centred on their collision box.
func DrawSprites(ecs *ecs.ECS, screen *ebiten.Image) {
	v, ok := cameraView(ecs, screen)
	if !ok {
		return
	}

	components.Sprite.Each(ecs.World, func(e *donburi.Entry) {
		o := components.Object.Get(e)
		if v.culled(o) {
			return
		}

		sprite := components.Sprite.Get(e)
		if sprite.Image == nil {
			return
		}

		drawOp.GeoM.Reset()
		drawOp.ColorScale.Reset()

		drawOp.GeoM.Translate(-sprite.PivotX, -sprite.PivotY)
		if sprite.FlipX {
			drawOp.GeoM.Scale(-1, 1)
		}
		drawOp.GeoM.Rotate(sprite.Rotation)
		drawOp.GeoM.Translate(o.X+o.W/2, o.Y+o.H/2)
		drawOp.GeoM.Translate(v.camX, v.camY)

		drawOp.ColorScale.ScaleAlpha(float32(sprite.Alpha))

		screen.DrawImage(sprite.Image, drawOp)
	})
}
