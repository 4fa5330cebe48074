package server

import (
	"context"
	"encoding/json"
	"errors"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	apperr "github.com/matzehuels/forcegraph/pkg/errors"
	"github.com/matzehuels/forcegraph/pkg/graph"
	"github.com/matzehuels/forcegraph/pkg/observability"
	"github.com/matzehuels/forcegraph/pkg/render/nodelink"
	"github.com/matzehuels/forcegraph/pkg/viewer"
)

const shutdownTimeout = 5 * time.Second

// Options configures [NewHandler].
type Options struct {
	Logger  *log.Logger
	Version string
	// Detailed adds world coordinates to node labels in /graph.svg.
	Detailed bool
}

// Health is the /healthz response.
type Health struct {
	Status   string `json:"status"`
	Version  string `json:"version,omitempty"`
	LayoutID string `json:"layout_id"`
	Nodes    int    `json:"nodes"`
	Edges    int    `json:"edges"`
}

type handler struct {
	layout graph.Layout
	opts   Options
	logger *log.Logger

	svgOnce sync.Once
	svg     []byte
	svgErr  error
}

// NewHandler returns the HTTP routes for st. The state is snapshotted;
// later changes to st are not served.
func NewHandler(st *viewer.State, opts Options) http.Handler {
	h := &handler{
		layout: st.Layout(),
		opts:   opts,
		logger: opts.Logger,
	}
	if h.logger == nil {
		h.logger = log.Default()
	}
	h.layout.ID = uuid.NewString()

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(h.observe)
	r.Use(h.layoutHeader)

	r.Get("/healthz", h.health)
	r.Get("/api/layout", h.getLayout)
	r.Get("/graph.svg", h.graphSVG)
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/graph.svg", http.StatusFound)
	})
	return r
}

func (h *handler) health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, Health{
		Status:   "ok",
		Version:  h.opts.Version,
		LayoutID: h.layout.ID,
		Nodes:    len(h.layout.Nodes),
		Edges:    len(h.layout.Edges),
	})
}

func (h *handler) getLayout(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, h.layout)
}

func (h *handler) graphSVG(w http.ResponseWriter, _ *http.Request) {
	h.svgOnce.Do(func() {
		h.svg, h.svgErr = nodelink.RenderSVG(nodelink.ToDOT(h.layout, nodelink.Options{Detailed: h.opts.Detailed}))
	})
	if h.svgErr != nil {
		h.logger.Error("render svg", "err", h.svgErr)
		http.Error(w, "render failed", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "image/svg+xml")
	_, _ = w.Write(h.svg)
}

func (h *handler) layoutHeader(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Layout-Id", h.layout.ID)
		next.ServeHTTP(w, r)
	})
}

// observe logs each request and reports it to the HTTP hooks.
func (h *handler) observe(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		elapsed := time.Since(start)
		h.logger.Debug("request", "method", r.Method, "path", r.URL.Path, "status", status, "duration", elapsed)
		observability.HTTP().OnResponse(r.Context(), r.Method, r.URL.Path, status, elapsed)
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// Display serves states over HTTP. It implements [viewer.Display].
type Display struct {
	// Addr is the listen address, e.g. ":8080". Port 0 picks a free port.
	Addr string
	Options

	// Ready, if set, is called with the bound address once listening.
	Ready func(addr string)
}

// Show centres st for its fitted area and serves it until ctx is done.
func (d *Display) Show(ctx context.Context, st *viewer.State) error {
	if !st.Initialized {
		st.Center(st.Width, st.Height)
	}
	logger := d.Logger
	if logger == nil {
		logger = log.Default()
	}

	ln, err := net.Listen("tcp", d.Addr)
	if err != nil {
		return apperr.Wrap(apperr.ErrCodeDisplay, err, "listen on %s", d.Addr)
	}
	srv := &http.Server{
		Handler:           NewHandler(st, d.Options),
		ReadHeaderTimeout: 10 * time.Second,
	}

	addr := ln.Addr().String()
	logger.Info("serving graph", "addr", addr)
	if d.Ready != nil {
		d.Ready(addr)
	}

	errc := make(chan error, 1)
	go func() { errc <- srv.Serve(ln) }()

	select {
	case err := <-errc:
		return apperr.Wrap(apperr.ErrCodeDisplay, err, "serve")
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return apperr.Wrap(apperr.ErrCodeDisplay, err, "shutdown")
	}
	if err := <-errc; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return apperr.Wrap(apperr.ErrCodeDisplay, err, "serve")
	}
	logger.Info("server stopped")
	return nil
}
