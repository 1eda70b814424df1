package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/bubbletea"
	"github.com/google/uuid"

	"github.com/vovakirdan/swiftbox/internal/core"
)

// SSHServerConfig configures the SSH server.
type SSHServerConfig struct {
	// Address is the host:port to listen on.
	Address string

	// HostKeyPath is the host key file; generated on first start when missing.
	// Empty means ~/.swiftbox/host_key.
	HostKeyPath string

	// IdleTimeout closes connections without input for this long.
	IdleTimeout time.Duration

	// TickRate is the game tick rate for remote sessions.
	TickRate int
}

// DefaultSSHServerConfig returns the defaults used by `swiftbox serve`.
func DefaultSSHServerConfig() SSHServerConfig {
	return SSHServerConfig{
		Address:     ":23234",
		IdleTimeout: 30 * time.Minute,
		TickRate:    core.DefaultConfig().TickRate,
	}
}

type sessionIDKey struct{}

// SSHServer serves the toolkit session to every SSH client. All clients
// share env.Store, so they share one leaderboard.
type SSHServer struct {
	config SSHServerConfig
	env    Env
	server *ssh.Server
}

// NewSSHServer prepares the host key location and the wish server.
func NewSSHServer(cfg SSHServerConfig, env Env) (*SSHServer, error) {
	hostKeyPath := cfg.HostKeyPath
	if hostKeyPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("ssh: cannot get home directory: %w", err)
		}
		hostKeyPath = filepath.Join(home, ".swiftbox", "host_key")
	}
	if err := os.MkdirAll(filepath.Dir(hostKeyPath), 0o700); err != nil {
		return nil, fmt.Errorf("ssh: cannot create host key directory: %w", err)
	}

	srv := &SSHServer{config: cfg, env: env}

	server, err := wish.NewServer(
		wish.WithAddress(cfg.Address),
		wish.WithHostKeyPath(hostKeyPath),
		wish.WithIdleTimeout(cfg.IdleTimeout),
		wish.WithMiddleware(
			bubbletea.Middleware(srv.teaHandler),
			srv.loggingMiddleware,
		),
	)
	if err != nil {
		return nil, fmt.Errorf("ssh: cannot create server: %w", err)
	}

	srv.server = server
	return srv, nil
}

// teaHandler builds the session model for one connection.
func (s *SSHServer) teaHandler(sess ssh.Session) (tea.Model, []tea.ProgramOption) {
	id, _ := sess.Context().Value(sessionIDKey{}).(string)

	pty, _, ok := sess.Pty()
	if !ok {
		s.env.logger().Warn("no PTY requested", "session", id, "user", sess.User())
		wish.Fatalln(sess, "swiftbox needs an interactive terminal; connect with ssh -t")
		return nil, nil
	}

	cfg := core.RuntimeConfig{
		ScreenW:  pty.Window.Width,
		ScreenH:  pty.Window.Height,
		TickRate: s.config.TickRate,
	}

	return NewSessionModel(s.env, cfg, id), []tea.ProgramOption{tea.WithAltScreen()}
}

// loggingMiddleware tags the connection with a session ID and logs its lifetime.
func (s *SSHServer) loggingMiddleware(next ssh.Handler) ssh.Handler {
	return func(sess ssh.Session) {
		id := uuid.NewString()
		sess.Context().SetValue(sessionIDKey{}, id)

		logger := s.env.logger().With("session", id, "user", sess.User())
		logger.Info("session started", "remote", sess.RemoteAddr().String())
		start := time.Now()

		next(sess)

		logger.Info("session ended", "duration", time.Since(start).Round(time.Second))
	}
}

// ListenAndServe serves until ctx is cancelled, then shuts down gracefully.
func (s *SSHServer) ListenAndServe(ctx context.Context) error {
	logger := s.env.logger()
	logger.Info("starting SSH server", "address", s.config.Address)

	errCh := make(chan error, 1)
	go func() {
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("ssh: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	return s.Shutdown()
}

// Shutdown stops accepting connections and waits up to ten seconds for
// open sessions.
func (s *SSHServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return s.server.Shutdown(ctx)
}

// Addr returns the configured listen address.
func (s *SSHServer) Addr() string {
	return s.config.Address
}
