package netwrk

import (
	"errors"
	"fmt"

	"github.com/vmihailenco/msgpack/v5"
)

var ErrMalformed = errors.New("malformed message")

// Codec turns messages into frame payloads and back. Both peers must use the
// same one.
type Codec interface {
	Encode(Message) ([]byte, error)
	Decode([]byte) (Message, error)
	Name() string
}

func NewCodec(name string) (Codec, error) {
	switch name {
	case "", "proto":
		return ProtoCodec{}, nil
	case "msgpack":
		return MsgpackCodec{}, nil
	default:
		return nil, fmt.Errorf("unknown codec %q", name)
	}
}

type MsgpackCodec struct{}

func (MsgpackCodec) Name() string { return "msgpack" }

func (MsgpackCodec) Encode(m Message) ([]byte, error) {
	if m.Kind() == KindInvalid {
		return nil, ErrMalformed
	}
	return msgpack.Marshal(&m)
}

func (MsgpackCodec) Decode(b []byte) (Message, error) {
	var m Message
	if err := msgpack.Unmarshal(b, &m); err != nil {
		return Message{}, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if m.Kind() == KindInvalid {
		return Message{}, ErrMalformed
	}
	return m, nil
}
