package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"

	"github.com/katalvlaran/lvlgen/export"
	"github.com/katalvlaran/lvlgen/generator"
	"github.com/katalvlaran/lvlgen/rng"
	"github.com/katalvlaran/lvlgen/store"
)

// Option configures a Server.
type Option func(*Server)

// WithStore enables save, load and list requests.
func WithStore(s store.Storage) Option { return func(srv *Server) { srv.store = s } }

// WithLogger sets the server logger; it is also handed to the generator.
func WithLogger(l *slog.Logger) Option { return func(srv *Server) { srv.log = l } }

// WithBaseSeed fixes the seed from which request seeds are derived.
func WithBaseSeed(seed int64) Option { return func(srv *Server) { srv.base = seed } }

// WithDefaults replaces the parameters request overrides are applied to.
func WithDefaults(p generator.Params) Option { return func(srv *Server) { srv.defaults = p } }

// Server answers level requests over websocket.
type Server struct {
	store    store.Storage
	log      *slog.Logger
	base     int64
	counter  atomic.Uint64
	defaults generator.Params
	gen      *generator.Generator
	upgrader websocket.Upgrader
}

// New builds a Server. Without WithBaseSeed the base seed is the start time.
func New(opts ...Option) *Server {
	srv := &Server{
		log:      slog.New(slog.NewTextHandler(io.Discard, nil)),
		base:     time.Now().UnixNano(),
		defaults: generator.DefaultParams(),
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
	for _, opt := range opts {
		opt(srv)
	}
	srv.gen = generator.New(generator.WithLogger(srv.log))
	return srv
}

// Handler routes /ws to the websocket endpoint.
func (srv *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", srv.ServeWS)
	return mux
}

// ServeWS upgrades the request and serves frames until the peer leaves.
func (srv *Server) ServeWS(w http.ResponseWriter, r *http.Request) {
	ws, err := srv.upgrader.Upgrade(w, r, nil)
	if err != nil {
		srv.log.Warn("upgrade failed", "err", err)
		return
	}
	remote := ws.RemoteAddr().String()
	srv.log.Info("client connected", "remote", remote)

	conn := NewConnection(ws, srv.log)
	go conn.WritePump()
	conn.ReadPump(&handler{srv: srv, ctx: r.Context()})

	srv.log.Info("client disconnected", "remote", remote)
}

// NextSeed derives the seed for a request that did not name one.
func (srv *Server) NextSeed() int64 {
	return rng.DeriveSeed(srv.base, srv.counter.Add(1))
}

// handler serves one connection.
type handler struct {
	srv *Server
	ctx context.Context
}

// HandleMessage dispatches on the frame type.
func (h *handler) HandleMessage(conn *Connection, message []byte) {
	var msg inbound
	if err := json.Unmarshal(message, &msg); err != nil {
		h.fail(conn, CodeBadMessage, err)
		return
	}
	switch msg.Type {
	case MessageTypeGenerate:
		h.handleGenerate(conn, msg.Payload)
	case MessageTypeLoad:
		h.handleLoad(conn, msg.Payload)
	case MessageTypeList:
		h.handleList(conn)
	default:
		h.fail(conn, CodeUnknownType, fmt.Errorf("unknown message type %q", msg.Type))
	}
}

func (h *handler) handleGenerate(conn *Connection, payload json.RawMessage) {
	var req GenerateMessage
	if len(payload) > 0 {
		if err := json.Unmarshal(payload, &req); err != nil {
			h.fail(conn, CodeBadMessage, err)
			return
		}
	}
	p, err := h.srv.params(req.Params)
	if err != nil {
		h.fail(conn, CodeInvalidParams, err)
		return
	}
	if req.Save {
		if h.srv.store == nil {
			h.fail(conn, CodeNoStore, errors.New("no store configured"))
			return
		}
		if err := store.ValidateName(req.Name); err != nil {
			h.fail(conn, CodeInvalidName, err)
			return
		}
	}

	lvl, err := h.srv.gen.Generate(p)
	if err != nil {
		code := CodeGenerationFailed
		if errors.Is(err, generator.ErrInvalidParams) {
			code = CodeInvalidParams
		}
		h.fail(conn, code, err)
		return
	}
	doc := export.FromLevel(lvl)

	if req.Save {
		if err := h.srv.store.SaveLevel(h.ctx, req.Name, doc); err != nil {
			h.fail(conn, CodeStoreFailed, err)
			return
		}
		h.srv.log.Info("level saved", "name", req.Name, "seed", doc.Seed)
	}
	conn.SendMessage(BaseMessage{Type: MessageTypeLevel, Payload: doc})
}

func (h *handler) handleLoad(conn *Connection, payload json.RawMessage) {
	if h.srv.store == nil {
		h.fail(conn, CodeNoStore, errors.New("no store configured"))
		return
	}
	var req LoadMessage
	if err := json.Unmarshal(payload, &req); err != nil {
		h.fail(conn, CodeBadMessage, err)
		return
	}
	doc, err := h.srv.store.LoadLevel(h.ctx, req.Name)
	switch {
	case errors.Is(err, store.ErrInvalidName):
		h.fail(conn, CodeInvalidName, err)
		return
	case errors.Is(err, store.ErrNotFound):
		h.fail(conn, CodeNotFound, err)
		return
	case err != nil:
		h.fail(conn, CodeStoreFailed, err)
		return
	}
	conn.SendMessage(BaseMessage{Type: MessageTypeLevel, Payload: doc})
}

func (h *handler) handleList(conn *Connection) {
	if h.srv.store == nil {
		h.fail(conn, CodeNoStore, errors.New("no store configured"))
		return
	}
	names, err := h.srv.store.ListLevels(h.ctx)
	if err != nil {
		h.fail(conn, CodeStoreFailed, err)
		return
	}
	if names == nil {
		names = []string{}
	}
	conn.SendMessage(BaseMessage{Type: MessageTypeLevels, Payload: LevelsMessage{Names: names}})
}

func (h *handler) fail(conn *Connection, code string, err error) {
	h.srv.log.Debug("request failed", "code", code, "err", err)
	conn.SendMessage(BaseMessage{Type: MessageTypeError, Payload: ErrorMessage{Code: code, Message: err.Error()}})
}

// params applies overrides to the defaults. A missing seed is derived from
// the base seed and the request counter.
func (srv *Server) params(overrides json.RawMessage) (generator.Params, error) {
	p := srv.defaults
	// fresh pointers so overrides never write through to the defaults
	if p.Trend != nil {
		t := *p.Trend
		p.Trend = &t
	}
	if p.Start != nil {
		st := *p.Start
		p.Start = &st
	}
	var seed struct {
		Seed *int64 `json:"seed"`
	}
	if len(overrides) > 0 {
		if err := json.Unmarshal(overrides, &p); err != nil {
			return p, err
		}
		if err := json.Unmarshal(overrides, &seed); err != nil {
			return p, err
		}
	}
	if seed.Seed == nil {
		p.Seed = srv.NextSeed()
	}
	return p, nil
}
