package bookings

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
	"github.com/julienschmidt/httprouter"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		// Allow all origins — adjust for production if needed
		return true
	},
}

var (
	subscribers = make(map[string][]*websocket.Conn)
	mu          sync.Mutex
)

type wsMessage struct {
	Type string `json:"type"`
	Date string `json:"date"`
}

// HandleWS subscribes a client to booking updates for one date. Whenever
// a booking lands on that date, every subscriber receives an update
// message and is expected to refetch availability.
func HandleWS(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	date := ps.ByName("date")

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		http.Error(w, "WebSocket upgrade failed", http.StatusBadRequest)
		return
	}

	mu.Lock()
	subscribers[date] = append(subscribers[date], conn)
	mu.Unlock()

	for {
		// This keeps the connection alive until the client disconnects
		_, _, err := conn.ReadMessage()
		if err != nil {
			break
		}
	}

	// Clean up on disconnect
	mu.Lock()
	conns := subscribers[date]
	newList := make([]*websocket.Conn, 0, len(conns))
	for _, c := range conns {
		if c != conn {
			newList = append(newList, c)
		}
	}
	subscribers[date] = newList
	mu.Unlock()

	conn.Close()
}

func broadcastUpdate(date string) {
	msg := wsMessage{Type: "update", Date: date}
	data, _ := json.Marshal(msg)

	mu.Lock()
	defer mu.Unlock()

	conns := subscribers[date]
	newList := conns[:0]

	for _, conn := range conns {
		if err := conn.WriteMessage(websocket.TextMessage, data); err == nil {
			newList = append(newList, conn)
		} else {
			conn.Close()
		}
	}

	subscribers[date] = newList
}
