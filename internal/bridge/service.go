package bridge

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/danmuck/bridgectl/internal/console"
	"github.com/danmuck/bridgectl/internal/host"
	"github.com/danmuck/bridgectl/internal/observability"
	"github.com/danmuck/bridgectl/internal/transport"
	"github.com/rs/zerolog"
)

var ErrInvalidServiceConfig = errors.New("bridge: invalid service config")

// ServiceConfig configures the bridge console runtime.
type ServiceConfig struct {
	Name           string
	Serial         transport.SerialConfig
	UseStdio       bool
	BlockingWrites bool
	MaxWriteStalls int
	AdminAddr      string
	AdminToken     string
	CorsOrigins    []string
}

// Bridge service defaults for a USB CDC serial link.
func DefaultServiceConfig() ServiceConfig {
	return ServiceConfig{
		Name:           "bridge.local",
		Serial:         transport.DefaultSerialConfig(),
		BlockingWrites: false,
		MaxWriteStalls: 1024,
		AdminAddr:      "",
	}
}

// Validate enforces required service fields.
func (c ServiceConfig) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return fmt.Errorf("%w: missing name", ErrInvalidServiceConfig)
	}
	if !c.UseStdio && strings.TrimSpace(c.Serial.Device) == "" {
		return fmt.Errorf("%w: missing serial device", ErrInvalidServiceConfig)
	}
	if !c.UseStdio && c.Serial.Baud <= 0 {
		return fmt.Errorf("%w: baud must be positive", ErrInvalidServiceConfig)
	}
	if c.MaxWriteStalls < 0 {
		return fmt.Errorf("%w: max_write_stalls must not be negative", ErrInvalidServiceConfig)
	}
	return nil
}

// Service seals console drafts and runs them through an Executor.
type Service struct {
	cfg  ServiceConfig
	exec Executor
	log  zerolog.Logger
}

func NewService(cfg ServiceConfig, exec Executor) *Service {
	if exec == nil {
		exec = NewLoopback()
	}
	return &Service{
		cfg:  cfg,
		exec: exec,
		log:  observability.Component("bridgectl", "bridge"),
	}
}

func (s *Service) Config() ServiceConfig {
	return s.cfg
}

// Execute seals req and hands it to the executor. Drafts that fail to seal
// never reach the executor.
func (s *Service) Execute(ctx context.Context, req *host.Request) (host.Valid, Result, error) {
	valid, err := req.Seal()
	if err != nil {
		return host.Valid{}, Result{}, err
	}

	start := time.Now()
	res, err := s.exec.Execute(ctx, valid)
	observability.RecordCommand(s.cfg.Name, valid.Interface().String(), valid.Operation().String(), err == nil, time.Since(start))
	if err != nil {
		s.log.Warn().Err(err).Stringer("request", valid).Msg("bridge request failed")
		return valid, Result{}, err
	}
	s.log.Info().Stringer("request", valid).Stringer("result", res).Msg("bridge request executed")
	return valid, res, nil
}

// Reject records a line rejected before validation.
func (s *Service) Reject(err error) {
	observability.RecordRejection(s.cfg.Name, console.ReasonLabel(err))
}

// MenuShown records a menu alias line.
func (s *Service) MenuShown() {
	observability.RecordMenu(s.cfg.Name)
}

// Serve runs the line loop on port until ctx is done or the port reaches
// EOF. Reads are abandoned when ctx ends; the port is closed as well so
// devices that support it unblock immediately.
func (s *Service) Serve(ctx context.Context, port transport.Port) error {
	out := transport.NewWriter(port,
		transport.WithBlocking(s.cfg.BlockingWrites),
		transport.WithMaxStalls(s.cfg.MaxWriteStalls),
		transport.WithLogger(s.log),
	)
	con := console.New(out, s.log)
	interactive := transport.IsInteractive(port)

	stop := context.AfterFunc(ctx, func() {
		_ = port.Close()
	})
	defer stop()

	s.log.Info().Str("name", s.cfg.Name).Bool("interactive", interactive).Msg("bridge console serving")
	if interactive {
		con.PrintMenu()
	}

	lines := NewLineReader(transport.NewContextReader(ctx, port))
	for {
		buf, err := lines.Next()
		if ctx.Err() != nil {
			s.log.Info().Msg("bridge console stopped")
			return nil
		}
		if err != nil {
			switch {
			case errors.Is(err, console.ErrLineTooLong):
				s.Reject(err)
				con.Reply(err)
				continue
			case errors.Is(err, transport.ErrReadTimeout), errors.Is(err, io.ErrNoProgress):
				continue
			case errors.Is(err, io.EOF):
				s.log.Info().Msg("bridge console stopped")
				return nil
			default:
				return fmt.Errorf("bridge: read line: %w", err)
			}
		}

		menu := s.serveLine(ctx, con, &buf)
		if interactive && !menu {
			con.Prompt()
		}
	}
}

func (s *Service) serveLine(ctx context.Context, con *console.Console, buf *console.Buffer) bool {
	req, err := con.Handle(buf)
	if err != nil {
		s.Reject(err)
		con.Reply(err)
		return false
	}
	if req == nil {
		s.MenuShown()
		return true
	}

	_, res, err := s.Execute(ctx, req)
	if err != nil {
		con.Reply(err)
		return false
	}
	con.Send(res.String())
	return false
}
