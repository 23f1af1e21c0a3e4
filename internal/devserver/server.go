// Package devserver exposes a running Renderer's host mutations over a
// websocket, and serves previously captured snapshot.Trace values over
// HTTP, for a browser-based devtools console to consume.
package devserver

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"

	"github.com/renderkit-go/renderkit/internal/snapshot"
)

// Server wires a chi router exposing the dev console's HTTP and websocket
// surface.
type Server struct {
	Router *chi.Mux

	store    snapshot.Store
	upgrader websocket.Upgrader

	mu      sync.Mutex
	clients map[*websocket.Conn]struct{}
}

// NewServer builds a Server backed by store, used to serve previously
// captured traces at GET /traces/{id}. Call BroadcastMutation to stream a
// live recording to every connected /ws client.
func NewServer(store snapshot.Store) *Server {
	s := &Server{
		store:   store,
		clients: make(map[*websocket.Conn]struct{}),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
	}

	r := chi.NewRouter()
	r.Get("/healthz", s.handleHealthz)
	r.Get("/ws", s.handleWS)
	r.Get("/traces/{id}", s.handleGetTrace)
	r.Post("/traces", s.handlePostTrace)
	s.Router = r

	return s
}

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
}

// handleWS upgrades to a websocket connection and registers it to receive
// BroadcastMutation messages until the client disconnects.
func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}

	s.mu.Lock()
	s.clients[conn] = struct{}{}
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		delete(s.clients, conn)
		s.mu.Unlock()
		conn.Close()
	}()

	// The connection is write-only from the server's side; drain reads so
	// the client's close/ping control frames are processed.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}

// BroadcastMutation sends m as a JSON text message to every connected
// websocket client.
func (s *Server) BroadcastMutation(m snapshot.Mutation) {
	data, err := json.Marshal(m)
	if err != nil {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for conn := range s.clients {
		if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
			conn.Close()
			delete(s.clients, conn)
		}
	}
}

func (s *Server) handleGetTrace(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	trace, err := s.store.Load(id)
	if err != nil {
		switch err {
		case snapshot.ErrNotFound:
			http.Error(w, "trace not found", http.StatusNotFound)
		case snapshot.ErrInvalidID:
			http.Error(w, "invalid trace id", http.StatusBadRequest)
		default:
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(trace)
}

// handlePostTrace saves the request body as a new trace. Any "id" field in
// the body is ignored: Save always assigns a fresh server-side ID, so a
// client can't steer which file on disk gets written.
func (s *Server) handlePostTrace(w http.ResponseWriter, r *http.Request) {
	var t snapshot.Trace
	if err := json.NewDecoder(r.Body).Decode(&t); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	id, err := s.store.Save(t)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"id": id})
}
