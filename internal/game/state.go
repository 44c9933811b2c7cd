package game

type Screen int

const (
	ScreenMenu Screen = iota
	ScreenGame
)

func (s Screen) String() string {
	switch s {
	case ScreenMenu:
		return "MENU"
	case ScreenGame:
		return "GAME"
	default:
		return "UNKNOWN"
	}
}

type PlatformKind int

const (
	Static PlatformKind = iota
	Moving
)

// GameState is the whole world. It is sent to the client every tick and
// replaces whatever the client had before.
type GameState struct {
	SessionID string     `json:"sessionId" msgpack:"sid"`
	Screen    Screen     `json:"screen" msgpack:"scr"`
	Tick      uint64     `json:"tick" msgpack:"t"`
	Score     float64    `json:"score" msgpack:"sc"`
	Width     int        `json:"width" msgpack:"w"`
	Height    int        `json:"height" msgpack:"h"`
	Ball      Ball       `json:"ball" msgpack:"b"`
	Platforms []Platform `json:"platforms" msgpack:"p"`
	Items     []Item     `json:"items" msgpack:"i"`
}

func (s *GameState) WindowWidth() int  { return s.Width }
func (s *GameState) WindowHeight() int { return s.Height }

type Ball struct {
	X          int     `json:"x" msgpack:"x"`
	Y          int     `json:"y" msgpack:"y"`
	Dx         float64 `json:"dx" msgpack:"dx"`
	Dy         float64 `json:"dy" msgpack:"dy"`
	Radius     int     `json:"radius" msgpack:"r"`
	Gravity    float64 `json:"gravity" msgpack:"g"`
	Agility    int     `json:"agility" msgpack:"a"`
	MaxSpeed   int     `json:"maxSpeed" msgpack:"ms"`
	Permission bool    `json:"permission" msgpack:"pm"`
	FlyPower   int     `json:"flyPower" msgpack:"fp"`
	GameOver   bool    `json:"gameOver" msgpack:"go"`
}

// Platform covers both the static and the patrolling variant. X1, X2 and Dx
// only mean something when Kind is Moving.
type Platform struct {
	Kind   PlatformKind `json:"kind" msgpack:"k"`
	X      float64      `json:"x" msgpack:"x"`
	Y      float64      `json:"y" msgpack:"y"`
	Width  int          `json:"width" msgpack:"w"`
	Height int          `json:"height" msgpack:"h"`
	Dy     float64      `json:"dy" msgpack:"dy"`
	Dx     float64      `json:"dx" msgpack:"dx"`
	X1     float64      `json:"x1" msgpack:"x1"`
	X2     float64      `json:"x2" msgpack:"x2"`
	IsNull bool         `json:"isNull" msgpack:"n"`
}

type Item struct {
	X      float64 `json:"x" msgpack:"x"`
	Y      float64 `json:"y" msgpack:"y"`
	Dy     float64 `json:"dy" msgpack:"dy"`
	Radius int     `json:"radius" msgpack:"r"`
}

func (b Ball) Floor(height int) int {
	return height - b.Radius - 1
}

// Clone returns a deep copy, safe to hand to another goroutine.
func (s *GameState) Clone() *GameState {
	c := *s
	c.Platforms = append([]Platform(nil), s.Platforms...)
	c.Items = append([]Item(nil), s.Items...)
	return &c
}
