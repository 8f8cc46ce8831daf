package gamemode

import "time"

const (
	MaxFrameDelta = 250 * time.Millisecond // longer frames are cut to this

	PlayerSpeed         = 600.0 // units per second per held axis
	CandySpeed          = 250.0
	CandySpawnPeriod    = 660 * time.Millisecond
	InitialCandies      = 3
	MaxCandy            = 100
	DebugGrowFactor     = 1.1 // per frame while the grow key is held
	BounceSoundCooldown = 0.1 // seconds between bounce sounds of one candy

	AttractRadius      = 200.0
	AttractMinDistance = 25.0 // floor so the pull stays finite
	AttractStrength    = 400.0

	CollisionOverlap = -20.0 // adjusted distance at or below this eats the candy
	GrowthPerCandy   = 0.03

	MinScale = 1.0
	MaxScale = 6.0

	EndSpeed       = 400.0
	EndArriveDist  = 1.0
	EndStepDamping = 0.9

	PoopDuration = 2.0 // seconds

	TitlePulseRate   = 2.772 // matched by ear to the title music
	TitlePulseAmount = 1.5
)
