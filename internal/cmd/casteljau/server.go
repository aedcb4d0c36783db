package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"sync"

	"honnef.co/go/casteljau"
	"honnef.co/go/casteljau/render"
)

// Server hosts the drawing surface in a browser. The page forwards pointer
// and input events to the API and reloads the rendered frame after each
// change.
//
// The scene is single-threaded; all access to it goes through mu.
type Server struct {
	log *slog.Logger

	mu        sync.Mutex
	scene     *casteljau.Scene
	renderer  *render.Renderer
	scale     float64
	hitRadius float64
}

// NewServer returns a server for the initial scene described by cfg.
func NewServer(cfg Config, style render.Style, log *slog.Logger) *Server {
	return &Server{
		log:       log,
		scene:     casteljau.NewScene(cfg.Order, cfg.T, nil),
		renderer:  render.New(style),
		scale:     cfg.Scale,
		hitRadius: style.ControlRadius + style.OutlineWidth + cfg.HitSlop,
	}
}

// Handler returns the server's HTTP handler.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.handlePage)
	mux.HandleFunc("GET /frame.png", s.handleFrame)
	mux.HandleFunc("GET /api/state", s.handleState)
	mux.HandleFunc("POST /api/pointer", s.handlePointer)
	mux.HandleFunc("POST /api/t", s.handleT)
	mux.HandleFunc("POST /api/order", s.handleOrder)
	return mux
}

// PointerEvent is a pointer event on the surface. X and Y are relative to the
// top left corner of the element showing the frame; Width and Height are that
// element's size, or zero if it hasn't been measured yet.
type PointerEvent struct {
	Type   string  `json:"type"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// State is the JSON representation of the scene.
type State struct {
	Order    int            `json:"order"`
	T        float64        `json:"t"`
	Dragging int            `json:"dragging"`
	Points   [][2]float64   `json:"points"`
	Levels   [][][2]float64 `json:"levels"`
	Value    [2]float64     `json:"value"`
	// Left and Right are the control points of the curve split at T.
	Left  [][2]float64 `json:"left"`
	Right [][2]float64 `json:"right"`
}

func pair(pt casteljau.Point) [2]float64 { return [2]float64{pt.X, pt.Y} }

func pairs(pts []casteljau.Point) [][2]float64 {
	out := make([][2]float64, len(pts))
	for i, pt := range pts {
		out[i] = pair(pt)
	}
	return out
}

func newState(f casteljau.Frame) State {
	st := State{
		Order:    f.Order,
		T:        f.T,
		Dragging: f.Dragging,
		Levels:   make([][][2]float64, len(f.Levels)),
	}
	for k, level := range f.Levels {
		st.Levels[k] = pairs(level)
	}
	left, right := f.Halves()
	st.Left, st.Right = pairs(left), pairs(right)
	if len(st.Levels) > 0 {
		st.Points = st.Levels[0]
	}
	if pt, ok := f.CurvePoint(); ok {
		st.Value = pair(pt)
	}
	return st
}

// applyPointer routes a pointer event to the controller. It must be called
// with mu held.
func (s *Server) applyPointer(ev PointerEvent) error {
	ctrl := s.scene.Controller()
	vp := casteljau.NewViewport(casteljau.Sz(ev.Width, ev.Height))
	ctrl.SetSurface(vp)
	screen := casteljau.Pt(ev.X, ev.Y)

	switch ev.Type {
	case "down":
		at, ok := vp.ScreenToLogical(screen)
		if !ok {
			s.log.Debug("pointer down before surface was measured")
			return nil
		}
		if i, ok := casteljau.HitTest(s.scene.ControlPoints().Points(), at, s.hitRadius); ok {
			ctrl.PointerDown(i)
		}
	case "move":
		ctrl.PointerMove(screen)
	case "up":
		ctrl.PointerUp()
	case "leave":
		ctrl.PointerLeave()
	default:
		return fmt.Errorf("unknown pointer event type %q", ev.Type)
	}
	return nil
}

func (s *Server) handlePointer(w http.ResponseWriter, r *http.Request) {
	var ev PointerEvent
	if !s.decode(w, r, &ev) {
		return
	}
	s.mu.Lock()
	err := s.applyPointer(ev)
	st := newState(s.scene.Frame())
	s.mu.Unlock()
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	s.writeJSON(w, st)
}

func (s *Server) handleT(w http.ResponseWriter, r *http.Request) {
	var req struct {
		T *float64 `json:"t"`
	}
	if !s.decode(w, r, &req) {
		return
	}
	if req.T == nil {
		http.Error(w, "missing t", http.StatusBadRequest)
		return
	}
	s.mu.Lock()
	s.scene.SetT(*req.T)
	st := newState(s.scene.Frame())
	s.mu.Unlock()
	s.writeJSON(w, st)
}

func (s *Server) handleOrder(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Order any `json:"order"`
	}
	if !s.decode(w, r, &req) {
		return
	}
	s.mu.Lock()
	if n, ok := casteljau.ParseOrder(req.Order); ok {
		s.scene.Controller().SetOrder(n)
	} else {
		s.log.Warn("ignoring malformed order", slog.Any("order", req.Order))
	}
	st := newState(s.scene.Frame())
	s.mu.Unlock()
	s.writeJSON(w, st)
}

func (s *Server) handleState(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	st := newState(s.scene.Frame())
	s.mu.Unlock()
	s.writeJSON(w, st)
}

func (s *Server) handleFrame(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	if err := s.WritePNG(&buf); err != nil {
		s.log.Error("rendering frame", slog.Any("err", err))
		http.Error(w, "rendering failed", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "no-store")
	_, _ = w.Write(buf.Bytes())
}

// WritePNG renders the current frame to w.
func (s *Server) WritePNG(w io.Writer) error {
	s.mu.Lock()
	img, xf := render.NewImage(s.scale)
	s.renderer.Render(img, s.scene.Frame(), xf)
	s.mu.Unlock()
	return render.EncodePNG(w, img)
}

func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write([]byte(page))
}

func (s *Server) decode(w http.ResponseWriter, r *http.Request, v any) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, 1<<16))
	dec.UseNumber()
	if err := dec.Decode(v); err != nil {
		http.Error(w, fmt.Sprintf("invalid request: %s", err), http.StatusBadRequest)
		return false
	}
	return true
}

func (s *Server) writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.log.Debug("writing response", slog.Any("err", err))
	}
}
