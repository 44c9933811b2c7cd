package netwrk

import (
	"errors"
	"net"
	"sync"
	"testing"
	"time"

	"skyball/internal/game"
)

type fakeConn struct {
	in       chan []byte
	out      chan []byte
	writing  chan struct{}
	gate     chan struct{}
	failRead error

	mu        sync.Mutex
	failWrite error

	closed    chan struct{}
	closeOnce sync.Once
}

func newFakeConn() *fakeConn {
	return &fakeConn{
		in:     make(chan []byte, 16),
		out:    make(chan []byte, 16),
		closed: make(chan struct{}),
	}
}

func (f *fakeConn) ReadFrame() ([]byte, error) {
	if f.failRead != nil {
		return nil, f.failRead
	}
	select {
	case b := <-f.in:
		return b, nil
	case <-f.closed:
		return nil, net.ErrClosed
	}
}

func (f *fakeConn) WriteFrame(b []byte) error {
	if f.writing != nil {
		f.writing <- struct{}{}
	}
	if f.gate != nil {
		<-f.gate
	}

	f.mu.Lock()
	err := f.failWrite
	f.mu.Unlock()
	if err != nil {
		return err
	}

	cp := make([]byte, len(b))
	copy(cp, b)
	f.out <- cp
	return nil
}

func (f *fakeConn) Close() error {
	f.closeOnce.Do(func() { close(f.closed) })
	return nil
}

func (f *fakeConn) RemoteAddr() string { return "fake" }

func waitFor(t *testing.T, what string, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for !cond() {
		if time.Now().After(deadline) {
			t.Fatalf("timed out waiting for %s", what)
		}
		time.Sleep(time.Millisecond)
	}
}

func encodeKey(t *testing.T, key string) []byte {
	t.Helper()
	b, err := ProtoCodec{}.Encode(KeyMessage(key))
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	return b
}

func TestChannelWriteFailureIsTerminal(t *testing.T) {
	fc := newFakeConn()
	fc.failWrite = errors.New("broken pipe")
	ch := NewChannel(fc, ProtoCodec{}, Options{})

	ch.Send(KeyMessage("a"))
	waitFor(t, "channel to stop", func() bool { return !ch.Running() })

	fc.in <- encodeKey(t, "d")

	for i := 0; i < 3; i++ {
		if ch.Send(KeyMessage("a")) {
			t.Fatalf("send %d succeeded after write failure", i)
		}
		if _, ok := ch.TryReceive(); ok {
			t.Fatalf("receive %d returned a message after write failure", i)
		}
	}

	done := make(chan error, 1)
	go func() {
		_, err := ch.WaitForMessage()
		done <- err
	}()
	select {
	case err := <-done:
		if !errors.Is(err, ErrChannelClosed) {
			t.Fatalf("WaitForMessage err=%v want %v", err, ErrChannelClosed)
		}
	case <-time.After(time.Second):
		t.Fatalf("WaitForMessage blocked on a dead channel")
	}
}

func TestChannelReadFailureIsTerminal(t *testing.T) {
	fc := newFakeConn()
	fc.failRead = errors.New("connection reset")
	ch := NewChannel(fc, ProtoCodec{}, Options{})

	waitFor(t, "channel to stop", func() bool { return !ch.Running() })
	if ch.Send(KeyMessage("a")) {
		t.Fatalf("send succeeded after read failure")
	}
}

func TestChannelPreservesStreamOrder(t *testing.T) {
	fc := newFakeConn()
	ch := NewChannel(fc, ProtoCodec{}, Options{})
	defer ch.Close()

	keys := []string{"a", "d", "p", "r", "a"}
	for _, k := range keys {
		fc.in <- encodeKey(t, k)
	}

	var got []string
	waitFor(t, "all messages", func() bool {
		for {
			m, ok := ch.TryReceive()
			if !ok {
				return len(got) == len(keys)
			}
			got = append(got, m.Key)
		}
	})
	for i := range keys {
		if got[i] != keys[i] {
			t.Fatalf("order: got=%v want=%v", got, keys)
		}
	}
}

func TestChannelDropsMalformedAndKeepsReading(t *testing.T) {
	fc := newFakeConn()
	ch := NewChannel(fc, ProtoCodec{}, Options{})
	defer ch.Close()

	fc.in <- []byte{0xff, 0xff}
	fc.in <- []byte{}
	fc.in <- encodeKey(t, "d")

	m, err := ch.WaitForMessage()
	if err != nil {
		t.Fatalf("WaitForMessage: %v", err)
	}
	if m.Key != "d" {
		t.Fatalf("got %+v, want key d", m)
	}
	if !ch.Running() {
		t.Fatalf("malformed frame stopped the channel")
	}
}

func TestChannelTryReceiveDoesNotBlock(t *testing.T) {
	ch := NewChannel(newFakeConn(), ProtoCodec{}, Options{})
	defer ch.Close()

	start := time.Now()
	if _, ok := ch.TryReceive(); ok {
		t.Fatalf("received from an empty channel")
	}
	if time.Since(start) > 100*time.Millisecond {
		t.Fatalf("TryReceive blocked")
	}
}

func TestChannelSendQueueDropsOldest(t *testing.T) {
	fc := newFakeConn()
	fc.writing = make(chan struct{}, 8)
	fc.gate = make(chan struct{})
	ch := NewChannel(fc, ProtoCodec{}, Options{SendQueue: 2})
	defer ch.Close()

	ch.Send(KeyMessage("1"))
	<-fc.writing // writer holds "1"

	for _, k := range []string{"2", "3", "4", "5"} {
		if !ch.Send(KeyMessage(k)) {
			t.Fatalf("send %s reported a broken channel", k)
		}
	}
	if ch.Dropped() != 2 {
		t.Fatalf("dropped: got=%d want=%d", ch.Dropped(), 2)
	}

	close(fc.gate)
	var got []string
	for len(got) < 3 {
		select {
		case b := <-fc.out:
			m, err := ProtoCodec{}.Decode(b)
			if err != nil {
				t.Fatalf("decode written frame: %v", err)
			}
			got = append(got, m.Key)
		case <-time.After(time.Second):
			t.Fatalf("timed out, written so far: %v", got)
		}
	}
	if got[0] != "1" || got[1] != "4" || got[2] != "5" {
		t.Fatalf("written: got=%v want=[1 4 5]", got)
	}
}

func TestChannelPipeExchange(t *testing.T) {
	a, b := Pipe(DefaultMaxFrameSize)
	server := NewChannel(a, ProtoCodec{}, Options{})
	client := NewChannel(b, ProtoCodec{}, Options{})
	defer server.Close()
	defer client.Close()

	s := &game.GameState{Screen: game.ScreenGame, Width: 800, Height: 800, Ball: game.NewBall(1, 2)}
	if !server.Send(StateMessage(s)) {
		t.Fatalf("server send failed")
	}
	m, err := client.WaitForMessage()
	if err != nil {
		t.Fatalf("client wait: %v", err)
	}
	if m.Kind() != KindState || m.State.Ball.X != 1 || m.State.Ball.Y != 2 {
		t.Fatalf("client got %+v", m)
	}

	client.Send(ClickMessage(3, 4))
	m, err = server.WaitForMessage()
	if err != nil {
		t.Fatalf("server wait: %v", err)
	}
	if m.Kind() != KindClick || m.Click.X != 3 {
		t.Fatalf("server got %+v", m)
	}
}

func TestChannelPeerCloseStopsChannel(t *testing.T) {
	a, b := Pipe(DefaultMaxFrameSize)
	server := NewChannel(a, ProtoCodec{}, Options{})
	client := NewChannel(b, ProtoCodec{}, Options{})

	client.Close()

	waitFor(t, "server to notice", func() bool { return !server.Running() })
	if server.Send(KeyMessage("a")) {
		t.Fatalf("send succeeded to a closed peer")
	}
}
