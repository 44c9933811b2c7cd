package game

// Ball
const (
	BallStartX     = 400
	BallStartY     = 25
	BallRadius     = 20
	BallGravity    = 15.0
	BallAgility    = 3
	BallMaxSpeed   = 10
	EnergyLoss     = 1.0
	XFriction      = 0.9
	FrictionCutoff = 0.8
)

// Default fixed step.
const TimeStep = 0.2

// Platforms
const (
	PlatformWidth       = 140
	PlatformHeight      = 20
	PlatformDy          = 3.0
	PlatformPatrolSpeed = 1.0
	PatrolHalfWidth     = 200
	MovingMargin        = 100
	RespawnY            = -300.0
	MovingEvery         = 3
)

// Scrolling and game over
const (
	HighestPoint    = 200
	FlySpeed        = 20.0
	GameOverDrift   = 6.0
	GameOverCeiling = -100.0
)

// Items
const (
	ItemRadius      = 10
	ItemDy          = 2.0
	ItemRespawnGap  = 100
	ItemRespawnSpan = 300
)
