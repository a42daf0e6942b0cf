package parameter

import "time"

// Enemy
const (
	// EnemySteps is the default sample count for authored enemy curves
	EnemySteps = 120

	// EnemyHealth is hit points for a standard enemy
	EnemyHealth = 1

	// EnemyContactDamage is dealt to the player on body collision
	EnemyContactDamage = 1

	EnemyHalfWidth  = 6.0
	EnemyHalfHeight = 5.0

	// EnemyFireCooldown gates fire signals that arrive closer together than this
	EnemyFireCooldown = 400 * time.Millisecond

	// EnemyFrameDelay is the animation frame period
	EnemyFrameDelay = 200 * time.Millisecond

	// EnemyFrameCount is the number of animation frames per enemy sprite
	EnemyFrameCount = 2
)

// Player
const (
	PlayerHealth = 3

	PlayerHalfWidth  = 7.0
	PlayerHalfHeight = 6.0

	// PlayerCoreHalfSize is the small core box that stays hittable by projectiles
	PlayerCoreHalfSize = 2.0

	// PlayerSpeed is world units moved per input step
	PlayerSpeed = 6.0

	// PlayerFireCooldown is the minimum time between player shots
	PlayerFireCooldown = 250 * time.Millisecond

	// PlayerInvulnerability is the grace period after an effective hit
	PlayerInvulnerability = 2 * time.Second
)

// Projectile
const (
	// ProjectileSpeed is world units per tick
	ProjectileSpeed = 5.0

	ProjectileDamage = 1

	ProjectileHalfWidth  = 1.0
	ProjectileHalfHeight = 2.0
)

// Waves
const (
	// WaveRespawnDelay is the pause between a cleared field and the next formation
	WaveRespawnDelay = 3 * time.Second
)
