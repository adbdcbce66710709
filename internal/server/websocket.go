package server

import (
	"encoding/json"
	"net/http"

	"github.com/Kiaaa-Bai/CourierVerse/internal/game"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// Response is sent back to the client that issued an action.
type Response struct {
	Action string         `json:"action"`
	OK     bool           `json:"ok"`
	Error  string         `json:"error,omitempty"`
	Kind   string         `json:"kind,omitempty"`
	Result *game.Result   `json:"result,omitempty"`
	State  *game.Snapshot `json:"state,omitempty"`
}

// HandleWebsocket turns each JSON message {"action": ...} into a game command.
func HandleWebsocket(b *Broadcaster, log *zap.SugaredLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			log.Warnf("ws upgrade error: %v", err)
			return
		}

		ctx := c.Request.Context()
		client := NewClient(conn)
		b.Register(ctx, client)
		defer b.Unregister(ctx, client)

		for {
			msgType, msg, err := conn.ReadMessage()
			if err != nil {
				return
			}
			if msgType != websocket.TextMessage {
				continue
			}

			var cmd game.Command
			if err := json.Unmarshal(msg, &cmd); err != nil {
				log.Debugf("ws json parse error: %v", err)
				client.Send(Response{Action: "error", Error: "malformed message", Kind: "bad_request"})
				continue
			}
			if cmd.Kind == "" {
				continue
			}

			reply, err := b.Submit(ctx, cmd)
			if err != nil {
				return
			}

			resp := Response{Action: string(cmd.Kind) + "_response", OK: reply.Err == nil}
			if reply.Err != nil {
				resp.Error = reply.Err.Error()
				resp.Kind = errorKind(reply.Err)
			} else {
				resp.Result = &reply.Result
			}
			if cmd.Kind == game.CommandState {
				resp.State = &reply.Snapshot
			}

			if err := client.Send(resp); err != nil {
				log.Warnf("ws reply error: %v", err)
				return
			}
		}
	}
}
