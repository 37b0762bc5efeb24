package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/katalvlaran/labyrinth/grid"
	"github.com/katalvlaran/labyrinth/maze"
	"github.com/katalvlaran/labyrinth/render"
)

// Time allowed to write a message to the peer.
const writeWait = 10 * time.Second

// errPeerGone marks a frame that could not be written to the client.
var errPeerGone = errors.New("stream peer gone")

// peerGone reports whether err means the client disconnected, either seen
// by the read pump (context cancelled) or by a failed write.
func peerGone(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, errPeerGone)
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// Stream message types.
const (
	MessageStart = "start"
	MessageStep  = "step"
	MessageDone  = "done"
	MessageError = "error"
)

// StreamMessage is one frame of a generation stream. A stream is a start
// frame, one step frame per transition, then a done frame carrying the full
// maze, or an error frame.
type StreamMessage struct {
	Type    string           `json:"type"`
	ID      uuid.UUID        `json:"id"`
	Rows    int              `json:"rows,omitempty"`
	Cols    int              `json:"cols,omitempty"`
	Seed    int64            `json:"seed,omitempty"`
	Step    *maze.StepEvent  `json:"step,omitempty"`
	Result  *maze.Result     `json:"result,omitempty"`
	Maze    *render.Document `json:"maze,omitempty"`
	Message string           `json:"message,omitempty"`
}

// stream upgrades to WebSocket and carves a maze live, pacing steps by
// delay_ms (or the configured delay). Closing the socket cancels generation.
func (s *Server) stream(c *gin.Context) {
	q, err := s.parseQuery(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, APIError{Message: err.Error()})
		return
	}
	delay := s.cfg.Delay
	if q.DelayMS != nil {
		delay = time.Duration(*q.DelayMS) * time.Millisecond
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		s.logger.Error().Err(err).Msg("websocket upgrade failed")
		return
	}
	defer conn.Close()

	ctx, cancel := context.WithCancel(c.Request.Context())
	defer cancel()
	// the client never sends; any read error means it went away
	go func() {
		defer cancel()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	id := uuid.New()
	send := func(msg StreamMessage) error {
		msg.ID = id
		conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := conn.WriteJSON(msg); err != nil {
			cancel()
			return fmt.Errorf("%w: %v", errPeerGone, err)
		}
		return nil
	}

	g, err := grid.New(q.Rows, q.Cols)
	if err != nil {
		_ = send(StreamMessage{Type: MessageError, Message: err.Error()})
		return
	}
	opts := append(q.options(ctx),
		maze.WithDelay(delay),
		maze.WithLogger(s.logger),
		maze.WithOnStep(func(ev maze.StepEvent) error {
			return send(StreamMessage{Type: MessageStep, Step: &ev})
		}),
	)
	gen, err := maze.NewGenerator(g, opts...)
	if err != nil {
		_ = send(StreamMessage{Type: MessageError, Message: err.Error()})
		return
	}

	res := gen.Result()
	if err = send(StreamMessage{Type: MessageStart, Rows: q.Rows, Cols: q.Cols, Seed: res.Seed}); err != nil {
		s.logger.Debug().Str("stream", id.String()).Err(err).Msg("stream closed by client")
		return
	}
	result, err := gen.Run()
	if err != nil {
		if peerGone(err) {
			s.logger.Debug().Str("stream", id.String()).Int("steps", result.Steps).Msg("stream closed by client")
			return
		}
		s.logger.Error().Str("stream", id.String()).Err(err).Msg("stream generation failed")
		_ = send(StreamMessage{Type: MessageError, Message: err.Error()})
		return
	}

	doc, err := render.NewDocument(g, result.Seed)
	if err != nil {
		_ = send(StreamMessage{Type: MessageError, Message: err.Error()})
		return
	}
	doc.ID = id
	if err = send(StreamMessage{Type: MessageDone, Result: result, Maze: doc}); err != nil {
		return
	}
	conn.WriteControl(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, "maze complete"),
		time.Now().Add(writeWait))
}
