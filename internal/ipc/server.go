package ipc

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"os"
	"path/filepath"
	"sync"
	"time"

	"deskresolve/internal/wm"
	"deskresolve/pkg/core"
)

// requestTimeout bounds how long a client may take to send its request.
const requestTimeout = 5 * time.Second

// Backoff bounds after a failed Accept on a listener that is still open.
const (
	minAcceptDelay = 5 * time.Millisecond
	maxAcceptDelay = time.Second
)

// Windows is the window service the daemon exposes.
type Windows interface {
	Backend() (wm.Backend, error)
	ListWindows(ctx context.Context) ([]wm.Window, error)
	FocusWindow(ctx context.Context, address string) error
}

// Icons is the icon resolver the daemon exposes.
type Icons interface {
	Resolve(token string) (string, bool)
}

// Server answers one JSON request per connection on a unix socket.
type Server struct {
	path    string
	windows Windows
	icons   Icons
	log     core.Logger

	mu       sync.Mutex
	listener net.Listener
	closed   bool
	wg       sync.WaitGroup
}

func NewServer(path string, windows Windows, icons Icons, log core.Logger) *Server {
	return &Server{path: path, windows: windows, icons: icons, log: log}
}

// Listen binds the socket, replacing a stale socket file.
func (s *Server) Listen() error {
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove existing socket file: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("failed to create socket directory: %w", err)
	}

	listener, err := net.Listen("unix", s.path)
	if err != nil {
		return fmt.Errorf("failed to start socket server: %w", err)
	}

	s.mu.Lock()
	s.listener = listener
	s.mu.Unlock()

	s.log.Info("Socket server started", "path", s.path)
	return nil
}

// Serve accepts connections until ctx is cancelled or Close is called.
// Listen must have succeeded first.
func (s *Server) Serve(ctx context.Context) error {
	s.mu.Lock()
	listener := s.listener
	s.mu.Unlock()
	if listener == nil {
		return errors.New("socket server is not listening")
	}

	stop := context.AfterFunc(ctx, func() { _ = s.Close() })
	defer stop()

	var delay time.Duration
	for {
		conn, err := listener.Accept()
		if err != nil {
			if s.isClosed() {
				s.wg.Wait()
				return nil
			}
			if delay == 0 {
				delay = minAcceptDelay
			} else {
				delay = min(delay*2, maxAcceptDelay)
			}
			s.log.Error("Failed to accept connection", err, "retry_in", delay.String())
			select {
			case <-time.After(delay):
			case <-ctx.Done():
			}
			continue
		}
		delay = 0

		s.wg.Add(1)
		go func() {
			defer s.wg.Done()
			s.handleConnection(ctx, conn)
		}()
	}
}

// ListenAndServe combines Listen and Serve.
func (s *Server) ListenAndServe(ctx context.Context) error {
	if err := s.Listen(); err != nil {
		return err
	}
	return s.Serve(ctx)
}

// Close stops accepting connections and removes the socket file.
func (s *Server) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed || s.listener == nil {
		return nil
	}
	s.closed = true
	err := s.listener.Close()
	s.log.Info("Socket server stopped", "path", s.path)
	return err
}

func (s *Server) isClosed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closed
}

func (s *Server) handleConnection(ctx context.Context, conn net.Conn) {
	defer conn.Close()

	_ = conn.SetReadDeadline(time.Now().Add(requestTimeout))

	var req Request
	if err := json.NewDecoder(conn).Decode(&req); err != nil {
		s.log.Error("Failed to decode request", err)
		return
	}
	s.log.Debug("Received request", "command", req.Command)

	resp := s.Handle(ctx, req)

	if err := json.NewEncoder(conn).Encode(resp); err != nil {
		s.log.Error("Failed to encode response", err)
	} else {
		s.log.Debug("Response sent successfully", "command", req.Command, "status", resp.Status)
	}
}

// Handle executes one request.
func (s *Server) Handle(ctx context.Context, req Request) Response {
	switch req.Command {
	case CmdPing:
		return Response{Status: StatusSuccess, Message: "pong"}

	case CmdBackend:
		backend, err := s.windows.Backend()
		if err != nil {
			return errorResponse(err)
		}
		return Response{Status: StatusSuccess, Backend: backend.Name()}

	case CmdListWindows:
		windows, err := s.windows.ListWindows(ctx)
		if err != nil {
			return errorResponse(err)
		}
		if windows == nil {
			windows = []wm.Window{}
		}
		return Response{Status: StatusSuccess, Windows: windows}

	case CmdFocusWindow:
		if req.Address == "" {
			return errorResponse(errors.New("focus_window requires an address"))
		}
		if err := s.windows.FocusWindow(ctx, req.Address); err != nil {
			return errorResponse(err)
		}
		return Response{Status: StatusSuccess, Message: "Window focused"}

	case CmdResolveIcon:
		if req.Token == "" {
			return errorResponse(errors.New("resolve_icon requires a token"))
		}
		path, found := s.icons.Resolve(req.Token)
		return Response{Status: StatusSuccess, Icon: path, Found: found}

	default:
		s.log.Warn("Unknown command received", "command", req.Command)
		return Response{Status: StatusError, Message: fmt.Sprintf("unknown command: %q", req.Command)}
	}
}

func errorResponse(err error) Response {
	return Response{Status: StatusError, Message: err.Error()}
}
