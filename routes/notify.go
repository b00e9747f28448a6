package routes

import (
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"
)

// The front end keeps one socket open per page purely to detect the server
// going away; a close or failed ping triggers its disconnected banner. No
// application data flows over this socket.

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

const pingInterval = 30 * time.Second

func (h *Handler) handleNotifySocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.WithField("err", err).Warn("websocket upgrade failed")
		return
	}

	go readPump(conn)
	go pingPump(conn)
}

// readPump discards inbound frames so pong and close frames get processed.
func readPump(conn *websocket.Conn) {
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}

func pingPump(conn *websocket.Conn) {
	defer conn.Close()

	ticker := time.NewTicker(pingInterval)
	defer ticker.Stop()

	for range ticker.C {
		if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
			return
		}
	}
}
