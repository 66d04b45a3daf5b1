package meshserver

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/websocket"

	"github.com/Faultbox/projective/pkg/meshio"
	"github.com/Faultbox/projective/pkg/surface"
)

func dial(t *testing.T, srv *httptest.Server) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	t.Cleanup(func() { conn.Close() })
	return conn
}

func TestServeMesh(t *testing.T) {
	srv := httptest.NewServer(New(64).Handler())
	defer srv.Close()
	conn := dial(t, srv)

	req := Request{Surface: "torus", USegments: 6, VSegments: 5, Shading: "flat", Layout: "interleaved"}
	if err := conn.WriteJSON(req); err != nil {
		t.Fatal(err)
	}

	kind, data, err := conn.ReadMessage()
	if err != nil {
		t.Fatal(err)
	}
	if kind != websocket.BinaryMessage {
		t.Fatalf("message type = %d, want binary", kind)
	}
	buf, err := meshio.ReadRaw(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("ReadRaw() error = %v", err)
	}
	if got, want := len(buf.Data), 48*6*5; got != want {
		t.Errorf("len(Data) = %d, want %d", got, want)
	}
	if buf.Layout != surface.LayoutInterleaved {
		t.Errorf("Layout = %v, want interleaved", buf.Layout)
	}

	// The same request yields the same bytes.
	if err := conn.WriteJSON(req); err != nil {
		t.Fatal(err)
	}
	_, again, err := conn.ReadMessage()
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(data, again) {
		t.Error("regenerated mesh differs")
	}
}

func TestServeErrors(t *testing.T) {
	srv := httptest.NewServer(New(32).Handler())
	defer srv.Close()
	conn := dial(t, srv)

	tests := []struct {
		name string
		req  Request
		want string
	}{
		{"unknown surface", Request{Surface: "klein", USegments: 8, VSegments: 8}, "unknown surface"},
		{"too large", Request{Surface: "boy", USegments: 33, VSegments: 8}, "exceeds limit"},
		{"bad shading", Request{Surface: "boy", USegments: 8, VSegments: 8, Shading: "phong"}, "phong"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := conn.WriteJSON(tt.req); err != nil {
				t.Fatal(err)
			}
			var reply Reply
			if err := conn.ReadJSON(&reply); err != nil {
				t.Fatal(err)
			}
			if !strings.Contains(reply.Error, tt.want) {
				t.Errorf("Error = %q, want it to mention %q", reply.Error, tt.want)
			}
		})
	}
}

func TestSurfaceList(t *testing.T) {
	srv := httptest.NewServer(New(32).Handler())
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/surfaces")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	var list []SurfaceInfo
	if err := json.NewDecoder(resp.Body).Decode(&list); err != nil {
		t.Fatal(err)
	}
	if len(list) != len(surface.Names()) {
		t.Errorf("got %d surfaces, want %d", len(list), len(surface.Names()))
	}
}
