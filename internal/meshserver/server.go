// Package meshserver streams generated surface buffers over WebSocket.
//
// A client sends one JSON Request per mesh and receives either a binary
// message holding the buffer in meshio raw format, or a JSON Reply with an
// error.
package meshserver

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/Faultbox/projective/internal/config"
	"github.com/Faultbox/projective/internal/logger"
	"github.com/Faultbox/projective/pkg/meshio"
	"github.com/Faultbox/projective/pkg/surface"
)

// Request asks for one mesh. Empty string fields take config defaults.
type Request struct {
	Surface   string `json:"surface"`
	USegments int    `json:"u"`
	VSegments int    `json:"v"`
	Shading   string `json:"shading"`
	Layout    string `json:"layout"`
	Closure   string `json:"closure"`
}

// Reply is sent as text when a request cannot be served.
type Reply struct {
	Error string `json:"error"`
}

// SurfaceInfo describes one catalog entry for the /surfaces listing.
type SurfaceInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Server serves mesh requests.
type Server struct {
	maxSegments int
	log         *zap.Logger
	upgrader    websocket.Upgrader

	mu      sync.Mutex
	clients map[*websocket.Conn]struct{}
}

// New creates a server that refuses grids larger than maxSegments per axis.
func New(maxSegments int) *Server {
	return &Server{
		maxSegments: maxSegments,
		log:         logger.Named("meshserver"),
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		clients: make(map[*websocket.Conn]struct{}),
	}
}

// Handler returns the HTTP routes: /ws for meshes, /surfaces for the catalog.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.handleWebSocket)
	mux.HandleFunc("/surfaces", s.handleSurfaces)
	return mux
}

// Clients returns the number of open connections.
func (s *Server) Clients() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.clients)
}

func (s *Server) handleSurfaces(w http.ResponseWriter, r *http.Request) {
	var list []SurfaceInfo
	for _, e := range surface.Catalog() {
		list = append(list, SurfaceInfo{Name: e.Name, Description: e.Description})
	}
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(list); err != nil {
		s.log.Warn("writing surface list", zap.Error(err))
	}
}

func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.Warn("websocket upgrade failed", zap.Error(err))
		return
	}
	defer conn.Close()

	s.mu.Lock()
	s.clients[conn] = struct{}{}
	s.mu.Unlock()
	defer func() {
		s.mu.Lock()
		delete(s.clients, conn)
		s.mu.Unlock()
	}()

	remote := zap.String("remote", conn.RemoteAddr().String())
	s.log.Info("client connected", remote)

	for {
		var req Request
		if err := conn.ReadJSON(&req); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				s.log.Warn("websocket read failed", remote, zap.Error(err))
			}
			break
		}

		if err := s.serve(conn, req); err != nil {
			s.log.Warn("request failed", remote, zap.String("surface", req.Surface), zap.Error(err))
			if err := conn.WriteJSON(Reply{Error: err.Error()}); err != nil {
				break
			}
		}
	}
	s.log.Info("client disconnected", remote)
}

// serve generates one mesh and writes it as a binary message.
func (s *Server) serve(conn *websocket.Conn, req Request) error {
	sc, err := s.surfaceConfig(req)
	if err != nil {
		return err
	}
	entry, opts, err := sc.Generator()
	if err != nil {
		return err
	}

	start := time.Now()
	buf := surface.New(entry.Function, opts).Generate(sc.USegments, sc.VSegments)
	elapsed := time.Since(start)

	w, err := conn.NextWriter(websocket.BinaryMessage)
	if err != nil {
		return err
	}
	if err := meshio.WriteRaw(w, buf); err != nil {
		w.Close()
		return err
	}
	if err := w.Close(); err != nil {
		return err
	}

	s.log.Debug("mesh sent",
		zap.String("surface", entry.Name),
		zap.Int("u_segments", sc.USegments),
		zap.Int("v_segments", sc.VSegments),
		zap.Int("triangles", buf.TriangleCount()),
		zap.Duration("duration", elapsed),
	)
	return nil
}

func (s *Server) surfaceConfig(req Request) (config.SurfaceConfig, error) {
	sc := config.Default().Surface
	if req.Surface != "" {
		sc.Name = req.Surface
	}
	if req.USegments != 0 {
		sc.USegments = req.USegments
	}
	if req.VSegments != 0 {
		sc.VSegments = req.VSegments
	}
	if req.Shading != "" {
		sc.Shading = req.Shading
	}
	if req.Layout != "" {
		sc.Layout = req.Layout
	}
	if req.Closure != "" {
		sc.Closure = req.Closure
	}

	if sc.USegments > s.maxSegments || sc.VSegments > s.maxSegments {
		return sc, fmt.Errorf("grid %dx%d exceeds limit %d", sc.USegments, sc.VSegments, s.maxSegments)
	}
	return sc, nil
}
