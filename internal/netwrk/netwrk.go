package netwrk

import (
	"errors"
	"fmt"
)

var ErrFrameTooLarge = errors.New("frame exceeds maximum size")

const DefaultMaxFrameSize = 1 << 20

// Conn is one connected peer that moves whole frames.
type Conn interface {
	ReadFrame() ([]byte, error)
	WriteFrame([]byte) error
	Close() error
	RemoteAddr() string
}

type Listener interface {
	Accept() (Conn, error)
	Close() error
	Addr() string
}

// Listen opens a listener for transport "tcp" or "ws" on addr.
func Listen(transport, addr string, maxFrame int) (Listener, error) {
	if maxFrame <= 0 {
		maxFrame = DefaultMaxFrameSize
	}
	switch transport {
	case "", "tcp":
		return listenStream(addr, maxFrame)
	case "ws":
		return listenWebsocket(addr, maxFrame)
	default:
		return nil, fmt.Errorf("unknown transport %q", transport)
	}
}

func Dial(transport, addr string, maxFrame int) (Conn, error) {
	if maxFrame <= 0 {
		maxFrame = DefaultMaxFrameSize
	}
	switch transport {
	case "", "tcp":
		return dialStream(addr, maxFrame)
	case "ws":
		return dialWebsocket(addr, maxFrame)
	default:
		return nil, fmt.Errorf("unknown transport %q", transport)
	}
}
