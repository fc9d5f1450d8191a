package remote

import (
	"context"
	"log"
	"net/http"
	"net/rpc"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/xid"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"escprint/internal/joblog"
	"escprint/pkg/bitmap"
	"escprint/pkg/proto"
)

func Proxy(dev proto.Control, srv *http.Server, jobs *joblog.Journal, logger *zap.Logger, lifecycle fx.Lifecycle) error {
	svc := &Service{dev: dev, jobs: jobs, logger: logger}
	if err := rpc.Register(svc); err != nil {
		return err
	}

	rpc.HandleHTTP()

	lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				if err := srv.ListenAndServe(); err != http.ErrServerClosed {
					log.Fatal(err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			if jobs != nil {
				defer func() {
					_ = jobs.Close()
				}()
			}
			return srv.Shutdown(ctx)
		},
	})

	return nil
}

// Service exposes one printer over net/rpc. Calls serialize on a mutex: the
// device pipeline feeds a single strip of paper.
type Service struct {
	mu     sync.Mutex
	dev    proto.Control
	jobs   *joblog.Journal
	logger *zap.Logger
}

func (s *Service) Print(req *PrintRequest, _ *EmptyResponse) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	src, err := bitmap.NewSource(req.Pix, req.Width, req.Height, bitmap.Layout(req.Layout))
	if err != nil {
		return err
	}

	id := xid.New().String()
	start := time.Now()
	err = s.dev.Print(src)

	s.logger.With(
		zap.String("job", id),
		zap.Int("w", req.Width),
		zap.Int("h", req.Height),
		zap.String("cost", time.Since(start).String()),
		zap.Error(err),
	).Info("print")

	s.record(id, req, err)

	return err
}

func (s *Service) Feed(lines uint8, _ *EmptyResponse) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.dev.Feed(lines)
}

func (s *Service) Command(name string, _ *EmptyResponse) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch name {
	case "cut":
		return s.dev.Cut()
	}

	return errors.New("unknown command")
}

func (s *Service) record(id string, req *PrintRequest, result error) {
	if s.jobs == nil {
		return
	}

	entry := joblog.Entry{
		ID:     id,
		Source: "rpc",
		Width:  req.Width,
		Height: req.Height,
		Layout: req.Layout,
		Bytes:  len(req.Pix),
		Status: "done",
	}
	if result != nil {
		entry.Status = "failed"
		entry.Error = result.Error()
	}

	if err := s.jobs.Append(entry); err != nil {
		s.logger.With(zap.Error(err)).Info("journal write failed")
	}
}
