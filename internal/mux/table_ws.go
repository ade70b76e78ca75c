package mux

import (
	"net/http"
	"time"

	"github.com/HugoManns/pokerhands-tests/pkg/table"
	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
)

const writeWait = time.Second * 10
const pongWait = time.Second * 60
const pingPeriod = pongWait * 9 / 10

// payloadIn is a message from the client
type payloadIn struct {
	Action string `json:"action"`
}

// payloadOut is a message to the client
type payloadOut struct {
	Type      string       `json:"type"`
	Round     *table.Round `json:"round,omitempty"`
	CardsLeft int          `json:"cardsLeft"`
	Message   string       `json:"message,omitempty"`
}

func (m *Mux) getTableUUIDWS() http.HandlerFunc {
	upgrader := &websocket.Upgrader{
		CheckOrigin: func(r *http.Request) bool {
			return true
		},
	}

	return func(w http.ResponseWriter, r *http.Request) {
		tbl := r.Context().Value(ctxTableKey).(*table.Table)
		log := logrus.WithField("uuid", tbl.UUID)

		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			log.WithError(err).Error("could not upgrade connection")
			return
		}

		_ = conn.SetReadDeadline(time.Now().Add(pongWait))
		conn.SetPongHandler(func(string) error {
			_ = conn.SetReadDeadline(time.Now().Add(pongWait))
			return nil
		})

		done := make(chan bool)
		defer func() {
			close(done)
			_ = conn.Close()
		}()

		go webSocketPingLoop(conn, done)
		webSocketReadLoop(conn, tbl, log)
	}
}

// webSocketPingLoop keeps the connection alive
// WriteControl is safe to call concurrently with the read loop's writes.
func webSocketPingLoop(conn *websocket.Conn, done chan bool) {
	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait)); err != nil {
				return
			}
		case <-done:
			return
		}
	}
}

func webSocketReadLoop(conn *websocket.Conn, tbl *table.Table, log logrus.FieldLogger) {
	for {
		var msg payloadIn
		if err := conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				log.WithError(err).Error("could not read message")
			}

			return
		}

		out := handleMessage(tbl, msg)
		log.WithField("type", out.Type).Trace("sending message to client")

		_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := conn.WriteJSON(out); err != nil {
			log.WithError(err).Error("could not write message")
			return
		}
	}
}

func handleMessage(tbl *table.Table, msg payloadIn) payloadOut {
	switch msg.Action {
	case "deal":
		round, err := tbl.PlayRound()
		if err != nil {
			return payloadOut{Type: "error", Message: err.Error(), CardsLeft: tbl.CardsLeft()}
		}

		return payloadOut{Type: "round", Round: round, CardsLeft: tbl.CardsLeft()}
	case "status":
		return payloadOut{Type: "status", CardsLeft: tbl.CardsLeft()}
	default:
		return payloadOut{Type: "error", Message: "unknown action: " + msg.Action, CardsLeft: tbl.CardsLeft()}
	}
}
