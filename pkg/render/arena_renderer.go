// pkg/render/arena_renderer.go
package render

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-arena-shooter/internal/component"
	"go-arena-shooter/internal/config"
	"go-arena-shooter/internal/entity"
	"go-arena-shooter/pkg/gridmap"
)

// SpriteSource отдает картинку по ключу. Промах означает, что рисуется векторная замена.
type SpriteSource interface {
	Get(key string) (*ebiten.Image, bool)
}

// ExplosionKeyFunc переводит номер кадра взрыва в ключ спрайта
type ExplosionKeyFunc func(frame int) string

// Context — то, что рендерер получает от сессии на каждый кадр
type Context struct {
	WeaponSprite    string
	WeaponScale     float64
	FrameMultiplier float64
	PlayerDead      bool
}

type ArenaRenderer struct {
	grid         *gridmap.Grid
	sprites      SpriteSource
	explosionKey ExplosionKeyFunc
	colors       ArenaColors
	screenWidth  int
	screenHeight int
	mapImage     *ebiten.Image // Предрендеренная арена
}

func NewArenaRenderer(grid *gridmap.Grid, sprites SpriteSource, explosionKey ExplosionKeyFunc, colors ArenaColors, screenWidth, screenHeight int) *ArenaRenderer {
	r := &ArenaRenderer{
		grid:         grid,
		sprites:      sprites,
		explosionKey: explosionKey,
		colors:       colors,
		screenWidth:  screenWidth,
		screenHeight: screenHeight,
		mapImage:     ebiten.NewImage(screenWidth, screenHeight),
	}
	// Стены не меняются, поэтому карта рисуется один раз
	r.RenderMapImage()
	return r
}

// RenderMapImage создает предрендеренное изображение фона и стен
func (r *ArenaRenderer) RenderMapImage() {
	r.mapImage.Fill(r.colors.Background)
	for _, c := range r.grid.Walls() {
		x, y, w, h := r.grid.CellRect(c)
		vector.DrawFilledRect(r.mapImage, float32(x), float32(y), float32(w), float32(h), r.colors.Wall, false)
		vector.StrokeRect(r.mapImage, float32(x), float32(y), float32(w), float32(h), r.colors.StrokeWidth, r.colors.WallStroke, true)
	}
}

// Draw рисует кадр: карту, предметы, эффекты, снаряды и акторов
func (r *ArenaRenderer) Draw(screen *ebiten.Image, w *entity.World, ctx Context) {
	screen.DrawImage(r.mapImage, nil)
	now := w.Time

	for _, p := range w.Pickups {
		r.drawPickup(screen, p, now, ctx)
	}
	for _, d := range w.Dashes {
		r.drawDash(screen, d, now)
	}
	for _, e := range w.Enemies {
		if !e.Dead {
			r.drawActor(screen, e, "", 1, 1)
		}
	}
	if p := w.Player; p != nil {
		alpha := 1.0
		if ctx.PlayerDead {
			alpha = 0.35
		}
		r.drawActor(screen, p, ctx.WeaponSprite, ctx.WeaponScale, alpha)
	}
	for _, p := range w.Projectiles {
		r.drawProjectile(screen, p)
	}
	for _, p := range w.Particles {
		c := Fade(r.colors.Particle, p.Alpha(now))
		vector.DrawFilledCircle(screen, float32(p.X), float32(p.Y), float32(p.Size), c, true)
	}
	for _, e := range w.Explosions {
		r.drawExplosion(screen, e)
	}
}

// drawSprite рисует картинку по центру (x, y), вписав ее в w×h и повернув на angle
func (r *ArenaRenderer) drawSprite(screen *ebiten.Image, key string, x, y, w, h, angle, alpha float64) bool {
	img, ok := r.sprites.Get(key)
	if !ok || img == nil {
		return false
	}
	b := img.Bounds()
	iw, ih := float64(b.Dx()), float64(b.Dy())
	if iw == 0 || ih == 0 {
		return false
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-iw/2, -ih/2)
	op.GeoM.Scale(w/iw, h/ih)
	op.GeoM.Rotate(angle)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleAlpha(float32(alpha))
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(img, op)
	return true
}

func (r *ArenaRenderer) drawActor(screen *ebiten.Image, a *component.Actor, weapon string, weaponScale, alpha float64) {
	x, y := a.X+a.Shake.DX, a.Y+a.Shake.DY

	if !r.drawSprite(screen, a.Sprite, x, y, a.Width, a.Height, 0, alpha) {
		body := r.colors.EnemyBody
		switch {
		case a.IsPlayer():
			body = r.colors.PlayerBody
		case a.Variant == component.VariantFire:
			body = r.colors.FireBody
		}
		vector.DrawFilledCircle(screen, float32(x), float32(y), float32(a.Width/2-4), Fade(body, alpha), true)
		vector.StrokeCircle(screen, float32(x), float32(y), float32(a.Width/2-4), 2, Fade(DarkenColor(body), alpha), true)
	}

	if a.IsPlayer() && !a.Dead {
		if weapon == "" {
			weapon, weaponScale = config.SpriteWeapon, 1
		}
		gx := x + math.Cos(a.Angle)*config.BarrelSize/2
		gy := y + math.Sin(a.Angle)*config.BarrelSize/2
		gw, gh := config.BarrelSize*weaponScale, config.BarrelSize/2*weaponScale
		if !r.drawSprite(screen, weapon, gx, gy, gw, gh, a.Angle, alpha) {
			ex := x + math.Cos(a.Angle)*config.BarrelSize*weaponScale
			ey := y + math.Sin(a.Angle)*config.BarrelSize*weaponScale
			vector.StrokeLine(screen, float32(x), float32(y), float32(ex), float32(ey), float32(6*weaponScale), r.colors.Text, true)
		}
	}

	r.drawHealthBar(screen, a, x, y)
}

func (r *ArenaRenderer) drawHealthBar(screen *ebiten.Image, a *component.Actor, x, y float64) {
	frac := a.HealthFraction()
	bx := float32(x - config.HealthBarWidth/2)
	by := float32(y - a.Height/2 - 10)
	vector.DrawFilledRect(screen, bx, by, config.HealthBarWidth, config.HealthBarHeight, r.colors.BarBack, false)
	vector.DrawFilledRect(screen, bx, by, float32(config.HealthBarWidth*frac), config.HealthBarHeight, r.colors.HealthColor(frac), false)
}

func (r *ArenaRenderer) drawProjectile(screen *ebiten.Image, p *component.Projectile) {
	if p.Type == component.ProjectileUlt {
		for _, tp := range p.Trail {
			vector.DrawFilledCircle(screen, float32(tp.X), float32(tp.Y), float32(p.Size/2), Fade(r.colors.UltTrail, tp.Alpha), true)
		}
		angle := math.Atan2(p.VY, p.VX)
		if r.drawSprite(screen, config.SpriteUltBullet, p.X, p.Y, p.Size*3, p.Size*1.5, angle, 1) {
			return
		}
		vector.DrawFilledCircle(screen, float32(p.X), float32(p.Y), float32(p.Size), r.colors.UltTrail, true)
		vector.DrawFilledCircle(screen, float32(p.X), float32(p.Y), float32(p.Size/2), r.colors.UltCore, true)
		return
	}
	vector.DrawFilledCircle(screen, float32(p.X), float32(p.Y), float32(p.Size/2), p.Color, true)
}

func (r *ArenaRenderer) drawPickup(screen *ebiten.Image, p *component.Pickup, now float64, ctx Context) {
	alpha := 1.0
	// мигает последние полторы секунды
	if p.Remaining(now) < 1.5 && math.Mod(now*8, 2) < 1 {
		alpha = 0.3
	}
	fm := ctx.FrameMultiplier
	if fm <= 0 {
		fm = 1
	}
	bob := math.Sin(now*4*fm) * 3
	key, clr := "pickup/heal", r.colors.Heal
	if p.Kind == component.PickupBuff {
		key, clr = "pickup/buff", r.colors.Buff
	}
	if r.drawSprite(screen, key, p.X, p.Y+bob, 40, 40, 0, alpha) {
		return
	}
	vector.DrawFilledCircle(screen, float32(p.X), float32(p.Y+bob), 14, Fade(clr, alpha), true)
	vector.StrokeCircle(screen, float32(p.X), float32(p.Y+bob), 14, 2, Fade(DarkenColor(clr), alpha), true)
}

func (r *ArenaRenderer) drawDash(screen *ebiten.Image, d *component.DashEffect, now float64) {
	fade := d.Alpha(now)
	for _, s := range d.Segments {
		a := s.Alpha * fade
		vector.StrokeLine(screen, float32(s.X1), float32(s.Y1), float32(s.X2), float32(s.Y2), float32(s.Width*2.2), Fade(r.colors.DashGlow, a*0.6), true)
		vector.StrokeLine(screen, float32(s.X1), float32(s.Y1), float32(s.X2), float32(s.Y2), float32(s.Width), Fade(r.colors.DashCore, a), true)
	}
}

func (r *ArenaRenderer) drawExplosion(screen *ebiten.Image, e *component.Explosion) {
	if r.explosionKey != nil && r.drawSprite(screen, r.explosionKey(e.Frame), e.X, e.Y, e.Size, e.Size, 0, 1) {
		return
	}
	progress := float64(e.Frame) / float64(max(e.Frames, 1))
	radius := e.Size / 2 * (0.3 + 0.7*progress)
	vector.DrawFilledCircle(screen, float32(e.X), float32(e.Y), float32(radius), Fade(r.colors.DashGlow, 1-progress), true)
}
