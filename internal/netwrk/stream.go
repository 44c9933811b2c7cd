package netwrk

import (
	"bufio"
	"errors"
	"fmt"
	"net"

	"google.golang.org/protobuf/encoding/protodelim"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

// streamConn frames a byte stream as size-delimited protobuf messages, each
// frame wrapped in a BytesValue.
type streamConn struct {
	conn     net.Conn
	r        *bufio.Reader
	w        *bufio.Writer
	maxFrame int
}

func NewStreamConn(conn net.Conn, maxFrame int) Conn {
	if maxFrame <= 0 {
		maxFrame = DefaultMaxFrameSize
	}
	return &streamConn{
		conn:     conn,
		r:        bufio.NewReader(conn),
		w:        bufio.NewWriter(conn),
		maxFrame: maxFrame,
	}
}

// Pipe returns two connected in-memory stream conns.
func Pipe(maxFrame int) (Conn, Conn) {
	a, b := net.Pipe()
	return NewStreamConn(a, maxFrame), NewStreamConn(b, maxFrame)
}

func (s *streamConn) ReadFrame() ([]byte, error) {
	var frame wrapperspb.BytesValue
	opts := protodelim.UnmarshalOptions{MaxSize: int64(s.maxFrame)}
	if err := opts.UnmarshalFrom(s.r, &frame); err != nil {
		var tooLarge *protodelim.SizeTooLargeError
		if errors.As(err, &tooLarge) {
			return nil, fmt.Errorf("%w: %d > %d", ErrFrameTooLarge, tooLarge.Size, s.maxFrame)
		}
		return nil, err
	}
	if frame.Value == nil {
		return []byte{}, nil
	}
	return frame.Value, nil
}

func (s *streamConn) WriteFrame(frame []byte) error {
	msg := wrapperspb.Bytes(frame)
	if size := proto.Size(msg); size > s.maxFrame {
		return fmt.Errorf("%w: %d > %d", ErrFrameTooLarge, size, s.maxFrame)
	}

	if _, err := protodelim.MarshalTo(s.w, msg); err != nil {
		return err
	}
	return s.w.Flush()
}

func (s *streamConn) Close() error { return s.conn.Close() }

func (s *streamConn) RemoteAddr() string { return s.conn.RemoteAddr().String() }

type streamListener struct {
	ln       net.Listener
	maxFrame int
}

func listenStream(addr string, maxFrame int) (Listener, error) {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, err
	}
	return &streamListener{ln: ln, maxFrame: maxFrame}, nil
}

func (l *streamListener) Accept() (Conn, error) {
	conn, err := l.ln.Accept()
	if err != nil {
		return nil, err
	}
	return NewStreamConn(conn, l.maxFrame), nil
}

func (l *streamListener) Close() error { return l.ln.Close() }

func (l *streamListener) Addr() string { return l.ln.Addr().String() }

func dialStream(addr string, maxFrame int) (Conn, error) {
	conn, err := net.Dial("tcp", addr)
	if err != nil {
		return nil, err
	}
	return NewStreamConn(conn, maxFrame), nil
}
