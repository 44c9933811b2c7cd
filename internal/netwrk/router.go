package netwrk

type Handler interface {
	HandleMessage(Message)
}

type HandlerFunc func(Message)

func (f HandlerFunc) HandleMessage(m Message) { f(m) }

// Router feeds everything a channel has received to one handler. It keeps no
// state of its own.
type Router struct {
	ch      *Channel
	handler Handler
}

func NewRouter(ch *Channel, h Handler) *Router {
	return &Router{ch: ch, handler: h}
}

func (r *Router) Channel() *Channel { return r.ch }

// DrainAndDispatch hands every queued message to the handler until the queue
// is observed empty. It returns false when the channel has stopped, which
// means the session is over.
func (r *Router) DrainAndDispatch() bool {
	if !r.ch.Running() {
		return false
	}
	for {
		m, ok := r.ch.TryReceive()
		if !ok {
			return true
		}
		r.handler.HandleMessage(m)
	}
}

// WaitAndDispatch blocks for a single message and dispatches it.
func (r *Router) WaitAndDispatch() bool {
	m, err := r.ch.WaitForMessage()
	if err != nil {
		return false
	}
	r.handler.HandleMessage(m)
	return true
}
