package netwrk

import "skyball/internal/game"

type Kind int

const (
	KindInvalid Kind = iota
	KindState
	KindKey
	KindClick
)

func (k Kind) String() string {
	switch k {
	case KindState:
		return "state"
	case KindKey:
		return "key"
	case KindClick:
		return "click"
	default:
		return "invalid"
	}
}

type Point struct {
	X float32 `msgpack:"x"`
	Y float32 `msgpack:"y"`
}

// Message carries exactly one of a whole game state (server to client), a
// key token or a click (client to server). There is no type tag on the wire;
// the kind is whichever field is present.
type Message struct {
	State *game.GameState `msgpack:"s,omitempty"`
	Key   string          `msgpack:"k,omitempty"`
	Click *Point          `msgpack:"c,omitempty"`
}

func StateMessage(s *game.GameState) Message { return Message{State: s} }

func KeyMessage(key string) Message { return Message{Key: key} }

func ClickMessage(x, y float32) Message { return Message{Click: &Point{X: x, Y: y}} }

func (m Message) Kind() Kind {
	set := 0
	kind := KindInvalid
	if m.State != nil {
		set++
		kind = KindState
	}
	if m.Key != "" {
		set++
		kind = KindKey
	}
	if m.Click != nil {
		set++
		kind = KindClick
	}
	if set != 1 {
		return KindInvalid
	}
	return kind
}
