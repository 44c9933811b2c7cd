package netwrk

import (
	"errors"
	"log/slog"
	"net"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
)

const wsPath = "/ws"

var upgrader = websocket.Upgrader{
	// Game clients are not browsers; accept any origin.
	CheckOrigin: func(r *http.Request) bool { return true },
}

type wsConn struct {
	conn *websocket.Conn
}

func newWsConn(conn *websocket.Conn, maxFrame int) Conn {
	conn.SetReadLimit(int64(maxFrame))
	return &wsConn{conn: conn}
}

// ReadFrame returns the next binary message. Text and control messages are
// skipped.
func (c *wsConn) ReadFrame() ([]byte, error) {
	for {
		mt, data, err := c.conn.ReadMessage()
		if err != nil {
			return nil, err
		}
		if mt == websocket.BinaryMessage {
			return data, nil
		}
	}
}

func (c *wsConn) WriteFrame(frame []byte) error {
	return c.conn.WriteMessage(websocket.BinaryMessage, frame)
}

func (c *wsConn) Close() error { return c.conn.Close() }

func (c *wsConn) RemoteAddr() string { return c.conn.RemoteAddr().String() }

type wsListener struct {
	ln    net.Listener
	srv   *http.Server
	conns chan Conn
	done  chan struct{}
	once  sync.Once
}

func listenWebsocket(addr string, maxFrame int) (Listener, error) {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, err
	}

	l := &wsListener{
		ln:    ln,
		conns: make(chan Conn),
		done:  make(chan struct{}),
	}

	mux := http.NewServeMux()
	mux.HandleFunc(wsPath, func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			slog.Warn("websocket upgrade failed", slog.Any("error", err))
			return
		}
		select {
		case l.conns <- newWsConn(conn, maxFrame):
		case <-l.done:
			conn.Close()
		}
	})
	l.srv = &http.Server{Handler: mux}

	go func() {
		if err := l.srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("websocket listener stopped", slog.Any("error", err))
		}
	}()

	return l, nil
}

func (l *wsListener) Accept() (Conn, error) {
	select {
	case c := <-l.conns:
		return c, nil
	case <-l.done:
		return nil, net.ErrClosed
	}
}

func (l *wsListener) Close() error {
	var err error
	l.once.Do(func() {
		close(l.done)
		err = l.srv.Close()
	})
	return err
}

func (l *wsListener) Addr() string { return l.ln.Addr().String() }

func dialWebsocket(addr string, maxFrame int) (Conn, error) {
	conn, _, err := websocket.DefaultDialer.Dial("ws://"+addr+wsPath, nil)
	if err != nil {
		return nil, err
	}
	return newWsConn(conn, maxFrame), nil
}
