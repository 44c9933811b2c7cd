package netwrk

import (
	"errors"
	"io"
	"log/slog"
	"net"
	"sync"
	"sync/atomic"
)

var ErrChannelClosed = errors.New("channel closed")

const DefaultQueueSize = 256

type Options struct {
	// SendQueue bounds the outbound queue. When it is full the oldest queued
	// frame is dropped.
	SendQueue int
	// RecvQueue bounds the inbound queue. When it is full the reader stops
	// reading until the consumer catches up.
	RecvQueue int
	Logger    *slog.Logger
}

// Channel wraps one connected peer. A reader goroutine decodes inbound frames
// into a queue and a writer goroutine drains the outbound queue onto the
// connection. The first read or write error stops both for good.
type Channel struct {
	conn  Conn
	codec Codec
	log   *slog.Logger

	inbox  chan Message
	outbox chan []byte
	done   chan struct{}

	sendMu    sync.Mutex
	closeOnce sync.Once
	running   atomic.Bool
	dropped   atomic.Uint64
}

func NewChannel(conn Conn, codec Codec, opts Options) *Channel {
	if opts.SendQueue <= 0 {
		opts.SendQueue = DefaultQueueSize
	}
	if opts.RecvQueue <= 0 {
		opts.RecvQueue = DefaultQueueSize
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if codec == nil {
		codec = ProtoCodec{}
	}

	c := &Channel{
		conn:   conn,
		codec:  codec,
		log:    opts.Logger.With(slog.String("peer", conn.RemoteAddr())),
		inbox:  make(chan Message, opts.RecvQueue),
		outbox: make(chan []byte, opts.SendQueue),
		done:   make(chan struct{}),
	}
	c.running.Store(true)

	go c.readLoop()
	go c.writeLoop()

	return c
}

func (c *Channel) Running() bool { return c.running.Load() }

// Dropped is the number of outbound frames discarded because the send queue
// was full.
func (c *Channel) Dropped() uint64 { return c.dropped.Load() }

// Send queues m for the writer. It returns false once the connection is known
// to be broken; callers should end the session rather than retry. A message
// that cannot be encoded is logged and dropped.
func (c *Channel) Send(m Message) bool {
	if !c.running.Load() {
		return false
	}

	frame, err := c.codec.Encode(m)
	if err != nil {
		c.log.Error("dropping unencodable message", slog.String("kind", m.Kind().String()), slog.Any("error", err))
		return true
	}

	c.sendMu.Lock()
	defer c.sendMu.Unlock()
	for {
		select {
		case c.outbox <- frame:
			return c.running.Load()
		default:
		}

		select {
		case <-c.outbox:
			c.dropped.Add(1)
			c.log.Debug("send queue full, dropped oldest frame")
		default:
		}
	}
}

// TryReceive returns the next queued message without blocking. Once the
// channel has stopped it always reports nothing.
func (c *Channel) TryReceive() (Message, bool) {
	if !c.running.Load() {
		return Message{}, false
	}
	select {
	case m := <-c.inbox:
		return m, true
	default:
		return Message{}, false
	}
}

// WaitForMessage blocks until a message arrives or the channel stops.
func (c *Channel) WaitForMessage() (Message, error) {
	if !c.running.Load() {
		return Message{}, ErrChannelClosed
	}
	select {
	case m := <-c.inbox:
		return m, nil
	case <-c.done:
		return Message{}, ErrChannelClosed
	}
}

func (c *Channel) Close() error {
	c.shutdown()
	return nil
}

func (c *Channel) shutdown() {
	c.closeOnce.Do(func() {
		c.running.Store(false)
		close(c.done)
		if err := c.conn.Close(); err != nil {
			c.log.Debug("closing connection", slog.Any("error", err))
		}
	})
}

func (c *Channel) fail(op string, err error) {
	select {
	case <-c.done:
		// Already closed locally; the error is just the fallout.
		return
	default:
	}

	if errors.Is(err, io.EOF) || errors.Is(err, net.ErrClosed) {
		c.log.Info("peer disconnected", slog.String("op", op))
	} else {
		c.log.Warn("connection lost", slog.String("op", op), slog.Any("error", err))
	}
	c.shutdown()
}

func (c *Channel) readLoop() {
	for {
		frame, err := c.conn.ReadFrame()
		if err != nil {
			c.fail("read", err)
			return
		}

		m, err := c.codec.Decode(frame)
		if err != nil {
			c.log.Warn("dropping malformed message", slog.Int("bytes", len(frame)), slog.Any("error", err))
			continue
		}

		select {
		case c.inbox <- m:
		case <-c.done:
			return
		}
	}
}

func (c *Channel) writeLoop() {
	for {
		select {
		case <-c.done:
			return
		case frame := <-c.outbox:
			if err := c.conn.WriteFrame(frame); err != nil {
				c.fail("write", err)
				return
			}
		}
	}
}
