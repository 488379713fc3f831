// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth  = 1000
	ScreenHeight = 1000
	CellSize     = 50.0
	ArenaMargin  = 45.0 // акторы не выходят за [margin, size-margin]
	MaxDeltaTime = 0.06

	// Геометрия спрайта актора
	ActorWidth        = 70.0
	ActorHeight       = 70.0
	FireVariantExtraW = 30.0
	FireVariantExtraH = 40.0
	BarrelSize        = 35.0
	PlayerHitRadius   = 35.0

	CountdownSeconds = 3
	GameOverDelay    = 1.0 // секунды между смертельным попаданием и экраном конца игры

	ParticleCount    = 30
	ParticleLifetime = 2.0
	ExplosionFrames  = 136
	ExplosionSize    = 96.0

	ShakeSteps    = 6
	ShakeInterval = 0.03
	ShakeAmount   = 4.0

	UltTrailLength = 8
	UltTrailFade   = 0.86
	UltWeaponScale = 1.5

	HealthBarWidth  = 30.0
	HealthBarHeight = 4.0

	DefaultVolume = 100
	VolumeStep    = 10
)

// Ключи спрайтов рендерера. Отсутствующий ключ не ошибка.
const (
	SpriteWeapon    = "weapon/default"
	SpriteUltWeapon = "weapon/ult"
	SpriteUltBullet = "bullet/ult"
	SpriteFireEnemy = "enemy/fire"
)

// EnemySprites выбираются случайно для обычных врагов
var EnemySprites = []string{"enemy/0", "enemy/1", "enemy/2"}

var (
	BackgroundColor   = color.RGBA{247, 244, 146, 255}
	WallColor         = color.RGBA{246, 255, 164, 255}
	WallStrokeColor   = color.RGBA{200, 190, 90, 255}
	PlayerBulletCol   = color.RGBA{200, 170, 1, 255}
	FireBulletColor   = color.RGBA{255, 140, 0, 255}
	ParticleColor     = color.RGBA{255, 0, 0, 255}
	DashCoreColor     = color.RGBA{255, 251, 1, 255}
	DashGlowColor     = color.RGBA{255, 145, 0, 255}
	HealColor         = color.RGBA{230, 60, 90, 255}
	BuffColor         = color.RGBA{150, 90, 40, 255}
	HealthBarBack     = color.RGBA{51, 51, 51, 255}
	HealthHighColor   = color.RGBA{0, 255, 0, 255}
	HealthMidColor    = color.RGBA{255, 255, 0, 255}
	HealthLowColor    = color.RGBA{255, 0, 0, 255}
	TextDarkColor     = color.RGBA{20, 20, 30, 255}
	TextLightColor    = color.RGBA{240, 240, 240, 255}
	OverlayColor      = color.RGBA{0, 0, 0, 140}
	PlayerBodyColor   = color.RGBA{90, 60, 160, 255}
	EnemyBodyColor    = color.RGBA{60, 120, 60, 255}
	FireBodyColor     = color.RGBA{220, 80, 20, 255}
	UltTrailColor     = color.RGBA{255, 120, 0, 255}
	UltCoreColor      = color.RGBA{255, 245, 230, 255}
	EnemyBulletColors = []color.RGBA{
		{235, 64, 52, 255},
		{99, 90, 25, 255},
		{179, 74, 9, 255},
		{10, 99, 73, 255},
		{11, 24, 82, 255},
		{56, 6, 19, 255},
		{0, 0, 0, 255},
	}
)

// FrameMultiplier компенсирует скорость игры на медленных экранах: ниже 65 тиков в
// секунду всё движется в 1.5 раза быстрее.
func FrameMultiplier(tps float64) float64 {
	if tps >= 65 {
		return 1
	}
	return 1.5
}
