package netwrk

import (
	"fmt"

	"google.golang.org/protobuf/proto"

	"skyball/internal/game"
	"skyball/internal/netwrk/pb"
)

// ProtoCodec writes messages as a pb.Envelope; see pb/skyball.proto.
type ProtoCodec struct{}

func (ProtoCodec) Name() string { return "proto" }

func (ProtoCodec) Encode(m Message) ([]byte, error) {
	env := &pb.Envelope{}
	switch m.Kind() {
	case KindKey:
		env.Body = &pb.Envelope_Key{Key: m.Key}
	case KindClick:
		env.Body = &pb.Envelope_Click{Click: &pb.Point{X: m.Click.X, Y: m.Click.Y}}
	case KindState:
		env.Body = &pb.Envelope_State{State: stateToPB(m.State)}
	default:
		return nil, ErrMalformed
	}
	return proto.Marshal(env)
}

func (ProtoCodec) Decode(b []byte) (Message, error) {
	var env pb.Envelope
	if err := proto.Unmarshal(b, &env); err != nil {
		return Message{}, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	var m Message
	switch body := env.Body.(type) {
	case *pb.Envelope_Key:
		m.Key = body.Key
	case *pb.Envelope_Click:
		if body.Click != nil {
			m.Click = &Point{X: body.Click.X, Y: body.Click.Y}
		}
	case *pb.Envelope_State:
		if body.State != nil {
			m.State = stateFromPB(body.State)
		}
	}
	if m.Kind() == KindInvalid {
		return Message{}, ErrMalformed
	}
	return m, nil
}

func stateToPB(s *game.GameState) *pb.GameState {
	out := &pb.GameState{
		SessionId: s.SessionID,
		Screen:    int32(s.Screen),
		Tick:      s.Tick,
		Score:     s.Score,
		Width:     int32(s.Width),
		Height:    int32(s.Height),
		Ball: &pb.Ball{
			X:          int32(s.Ball.X),
			Y:          int32(s.Ball.Y),
			Dx:         s.Ball.Dx,
			Dy:         s.Ball.Dy,
			Radius:     int32(s.Ball.Radius),
			Gravity:    s.Ball.Gravity,
			Agility:    int32(s.Ball.Agility),
			MaxSpeed:   int32(s.Ball.MaxSpeed),
			Permission: s.Ball.Permission,
			FlyPower:   int32(s.Ball.FlyPower),
			GameOver:   s.Ball.GameOver,
		},
		Platforms: make([]*pb.Platform, 0, len(s.Platforms)),
		Items:     make([]*pb.Item, 0, len(s.Items)),
	}
	for _, p := range s.Platforms {
		out.Platforms = append(out.Platforms, &pb.Platform{
			Kind:   int32(p.Kind),
			X:      p.X,
			Y:      p.Y,
			Width:  int32(p.Width),
			Height: int32(p.Height),
			Dy:     p.Dy,
			Dx:     p.Dx,
			X1:     p.X1,
			X2:     p.X2,
			IsNull: p.IsNull,
		})
	}
	for _, it := range s.Items {
		out.Items = append(out.Items, &pb.Item{X: it.X, Y: it.Y, Dy: it.Dy, Radius: int32(it.Radius)})
	}
	return out
}

func stateFromPB(s *pb.GameState) *game.GameState {
	b := s.GetBall()
	out := &game.GameState{
		SessionID: s.GetSessionId(),
		Screen:    game.Screen(s.GetScreen()),
		Tick:      s.GetTick(),
		Score:     s.GetScore(),
		Width:     int(s.GetWidth()),
		Height:    int(s.GetHeight()),
		Ball: game.Ball{
			X:          int(b.GetX()),
			Y:          int(b.GetY()),
			Dx:         b.GetDx(),
			Dy:         b.GetDy(),
			Radius:     int(b.GetRadius()),
			Gravity:    b.GetGravity(),
			Agility:    int(b.GetAgility()),
			MaxSpeed:   int(b.GetMaxSpeed()),
			Permission: b.GetPermission(),
			FlyPower:   int(b.GetFlyPower()),
			GameOver:   b.GetGameOver(),
		},
	}
	for _, p := range s.GetPlatforms() {
		out.Platforms = append(out.Platforms, game.Platform{
			Kind:   game.PlatformKind(p.GetKind()),
			X:      p.GetX(),
			Y:      p.GetY(),
			Width:  int(p.GetWidth()),
			Height: int(p.GetHeight()),
			Dy:     p.GetDy(),
			Dx:     p.GetDx(),
			X1:     p.GetX1(),
			X2:     p.GetX2(),
			IsNull: p.GetIsNull(),
		})
	}
	for _, it := range s.GetItems() {
		out.Items = append(out.Items, game.Item{X: it.GetX(), Y: it.GetY(), Dy: it.GetDy(), Radius: int(it.GetRadius())})
	}
	return out
}
