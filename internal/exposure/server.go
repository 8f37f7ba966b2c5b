package exposure

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"go.uber.org/zap"

	"github.com/five82/facet/internal/dispatch"
	"github.com/five82/facet/internal/protocol"
	"github.com/five82/facet/internal/semantic"
)

// DefaultBind is the loopback address the API listens on by default.
const DefaultBind = "127.0.0.1:8081"

const (
	maxBodyBytes    = 1 << 20
	shutdownTimeout = 2 * time.Second
)

// Dispatcher executes actions received over HTTP. *dispatch.Dispatcher
// implements it.
type Dispatcher interface {
	Dispatch(ctx context.Context, a protocol.Action) dispatch.Result
	DispatchText(ctx context.Context, text string) []dispatch.Result
}

var _ Dispatcher = (*dispatch.Dispatcher)(nil)

// ActionResult reports one dispatched action.
type ActionResult struct {
	Action  json.RawMessage `json:"action,omitempty"`
	Outcome string          `json:"outcome"`
	Segment string          `json:"segment,omitempty"`
	Error   string          `json:"error,omitempty"`
}

// DispatchResponse is the body returned by POST /actions and POST /text.
type DispatchResponse struct {
	Results []ActionResult `json:"results"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// Options configures a Server. Dispatcher and View are required.
type Options struct {
	Bind       string
	Dispatcher Dispatcher
	// View returns the semantic tree currently on screen.
	View   func() semantic.Node
	Logger *zap.Logger
}

// Server is the exposure HTTP API.
type Server struct {
	bind       string
	dispatcher Dispatcher
	view       func() semantic.Node
	log        *zap.Logger
	actions    *jsonschema.Schema
	text       *jsonschema.Schema
}

// NewServer compiles the request schemas and returns a Server.
func NewServer(opts Options) (*Server, error) {
	if opts.Dispatcher == nil {
		return nil, errors.New("exposure server requires a dispatcher")
	}
	if opts.View == nil {
		return nil, errors.New("exposure server requires a view source")
	}
	actions, err := compileSchema("actions", actionsSchema)
	if err != nil {
		return nil, err
	}
	text, err := compileSchema("text", textSchema)
	if err != nil {
		return nil, err
	}
	bind := opts.Bind
	if bind == "" {
		bind = DefaultBind
	}
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	return &Server{
		bind:       bind,
		dispatcher: opts.Dispatcher,
		view:       opts.View,
		log:        log,
		actions:    actions,
		text:       text,
	}, nil
}

// Handler returns the API routes.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /schema", s.handleSchema)
	mux.HandleFunc("GET /instructions", s.handleInstructions)
	mux.HandleFunc("GET /view", s.handleView)
	mux.HandleFunc("POST /actions", s.handleActions)
	mux.HandleFunc("POST /text", s.handleText)
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set(VersionHeader, ProtocolVersion)
		s.log.Debug("exposure request", zap.String("method", r.Method), zap.String("path", r.URL.Path))
		mux.ServeHTTP(w, r)
	})
}

// ListenAndServe listens on the configured bind address and serves until
// ctx is cancelled.
func (s *Server) ListenAndServe(ctx context.Context) error {
	var lc net.ListenConfig
	ln, err := lc.Listen(ctx, "tcp", s.bind)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", s.bind, err)
	}
	return s.Serve(ctx, ln)
}

// Serve serves on ln until ctx is cancelled, then shuts down gracefully.
// It returns nil after a clean shutdown.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{Handler: s.Handler(), ReadHeaderTimeout: 5 * time.Second}
	s.log.Info("exposure api listening", zap.String("addr", ln.Addr().String()))

	errCh := make(chan error, 1)
	go func() { errCh <- srv.Serve(ln) }()

	select {
	case err := <-errCh:
		return fmt.Errorf("serve exposure api: %w", err)
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		err := srv.Shutdown(shutdownCtx)
		<-errCh
		if err != nil {
			return fmt.Errorf("shutdown exposure api: %w", err)
		}
		return nil
	}
}

func (s *Server) handleSchema(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, BuildSchema())
}

func (s *Server) handleInstructions(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/markdown; charset=utf-8")
	_, _ = io.WriteString(w, Instructions())
}

func (s *Server) handleView(w http.ResponseWriter, _ *http.Request) {
	raw, err := s.view().Marshal()
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write(raw)
}

func (s *Server) handleActions(w http.ResponseWriter, r *http.Request) {
	raw, ok := s.readValid(w, r, s.actions)
	if !ok {
		return
	}
	var body struct {
		Actions []json.RawMessage `json:"actions"`
	}
	if err := json.Unmarshal(raw, &body); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	// Decode everything first so a bad entry rejects the whole batch.
	actions := make([]protocol.Action, 0, len(body.Actions))
	for i, payload := range body.Actions {
		a, err := protocol.Decode(string(payload))
		if err != nil {
			writeError(w, http.StatusUnprocessableEntity, fmt.Errorf("actions[%d]: %w", i, err))
			return
		}
		actions = append(actions, a)
	}
	results := make([]dispatch.Result, 0, len(actions))
	for _, a := range actions {
		results = append(results, s.dispatcher.Dispatch(r.Context(), a))
	}
	s.log.Info("dispatched actions from api", zap.Int("count", len(results)))
	writeJSON(w, http.StatusOK, toResponse(results))
}

func (s *Server) handleText(w http.ResponseWriter, r *http.Request) {
	raw, ok := s.readValid(w, r, s.text)
	if !ok {
		return
	}
	var body struct {
		Text string `json:"text"`
	}
	if err := json.Unmarshal(raw, &body); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	results := s.dispatcher.DispatchText(r.Context(), body.Text)
	writeJSON(w, http.StatusOK, toResponse(results))
}

// readValid reads the request body and validates it against schema. On
// failure it writes the error response and returns false.
func (s *Server) readValid(w http.ResponseWriter, r *http.Request, schema *jsonschema.Schema) ([]byte, bool) {
	raw, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		writeError(w, http.StatusRequestEntityTooLarge, err)
		return nil, false
	}
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var doc any
	if err := dec.Decode(&doc); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("decode body: %w", err))
		return nil, false
	}
	if err := schema.Validate(doc); err != nil {
		s.log.Debug("rejected request body", zap.String("path", r.URL.Path), zap.Error(err))
		writeError(w, http.StatusBadRequest, fmt.Errorf("schema validation failed: %w", err))
		return nil, false
	}
	return raw, true
}

func toResponse(results []dispatch.Result) DispatchResponse {
	out := DispatchResponse{Results: make([]ActionResult, 0, len(results))}
	for _, res := range results {
		ar := ActionResult{Outcome: res.Outcome.String(), Segment: res.Segment}
		if res.Action != nil {
			if raw, err := protocol.Marshal(res.Action); err == nil {
				ar.Action = raw
			}
		}
		if res.Err != nil {
			ar.Error = res.Err.Error()
		}
		out.Results = append(out.Results, ar)
	}
	return out
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, errorResponse{Error: err.Error()})
}
