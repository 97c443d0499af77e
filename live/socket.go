package live

import (
	"log"
	"net/http"

	"earlobe/middleware"

	"github.com/gorilla/websocket"
	"github.com/julienschmidt/httprouter"
)

var upgrader = websocket.Upgrader{CheckOrigin: func(r *http.Request) bool { return true }}

// AdminSocket upgrades an admin connection and streams moderation notices.
// Browsers cannot set headers on websocket dials, so the token rides in the
// query string.
func AdminSocket(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	token := r.URL.Query().Get("token")
	claims, err := middleware.ValidateJWT("Bearer " + token)
	if err != nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}
	isAdmin := false
	for _, role := range claims.Role {
		if role == "admin" {
			isAdmin = true
			break
		}
	}
	if !isAdmin {
		http.Error(w, "Admin access required", http.StatusForbidden)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Println("upgrade:", err)
		return
	}

	client := &Client{
		Send:   make(chan []byte, 256),
		Room:   roomAdmin,
		UserID: claims.UserID,
	}
	defaultHub.register <- client

	go writePump(conn, client)
	go readPump(conn, client)
}

func writePump(conn *websocket.Conn, c *Client) {
	defer conn.Close()
	for msg := range c.Send {
		if err := conn.WriteMessage(websocket.TextMessage, msg); err != nil {
			break
		}
	}
}

// readPump discards inbound frames; the admin stream is one-way. Reading is
// still required to notice closes and pongs.
func readPump(conn *websocket.Conn, c *Client) {
	defer func() {
		defaultHub.unregister <- c
		conn.Close()
	}()
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}
}
