package evergreen

import (
	"fmt"
	"net/http"
	"os"
	"sync/atomic"

	"github.com/gorilla/websocket"
)

// GestureMailbox is a latest-wins single-slot mailbox for gesture results.
// The tracker loop publishes at its own rate; the interaction step reads the
// most recent value each tick, tolerating staleness up to one tracker
// period. No queue: a backlog of stale gestures would only add lag.
type GestureMailbox struct {
	v atomic.Pointer[GestureResult]
}

// Publish stores the most recent result, replacing any unread one.
func (m *GestureMailbox) Publish(r GestureResult) {
	m.v.Store(&r)
}

// Latest returns the most recently published result. ok is false if nothing
// has been published yet.
func (m *GestureMailbox) Latest() (GestureResult, bool) {
	p := m.v.Load()
	if p == nil {
		return GestureResult{}, false
	}
	return *p, true
}

// handFrame is the wire format an external hand tracker sends per video
// frame: a monotonically increasing timestamp and the detected hand's
// landmarks, empty when no hand is visible.
type handFrame struct {
	TimestampMS int64      `json:"timestampMs"`
	Landmarks   []Landmark `json:"landmarks"`
}

// GestureServer accepts a websocket connection from a hand tracker,
// classifies each incoming landmark frame, and publishes the result to a
// mailbox. It implements http.Handler; mount it on any mux.
type GestureServer struct {
	cfg      Config
	mailbox  *GestureMailbox
	upgrader websocket.Upgrader
}

// NewGestureServer creates a server publishing into mailbox.
func NewGestureServer(cfg Config, mailbox *GestureMailbox) *GestureServer {
	return &GestureServer{
		cfg:     cfg,
		mailbox: mailbox,
		upgrader: websocket.Upgrader{
			// The tracker page may be served from anywhere local.
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// ServeHTTP upgrades the connection and consumes landmark frames until the
// tracker disconnects. Frames with non-increasing timestamps are dropped.
// On disconnect a none result is published so the cursor marker disappears.
func (s *GestureServer) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "[evergreen] gesture upgrade: %v\n", err)
		return
	}
	defer conn.Close()
	defer s.mailbox.Publish(GestureResult{Gesture: GestureNone})

	var lastTS int64 = -1
	for {
		var frame handFrame
		if err := conn.ReadJSON(&frame); err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				_, _ = fmt.Fprintf(os.Stderr, "[evergreen] gesture read: %v\n", err)
			}
			return
		}
		if frame.TimestampMS <= lastTS {
			continue
		}
		lastTS = frame.TimestampMS
		s.mailbox.Publish(ClassifyHand(s.cfg, frame.Landmarks))
	}
}
