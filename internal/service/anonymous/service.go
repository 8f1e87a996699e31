// Package anonymous tracks browser visitors and their workspaces.
package anonymous

import (
	"context"
	"time"

	"github.com/google/uuid"
	"guarashopp-storefront/internal/logger"
	"guarashopp-storefront/internal/workspace"
)

// Builder creates the workspace of a visitor seen for the first time since
// start or eviction.
type Builder func(ctx context.Context, visitorID string) *workspace.Workspace

// idleSweeper drops persisted client state nobody touched since before.
type idleSweeper interface {
	DeleteIdle(ctx context.Context, before time.Time) (int64, error)
}

type Service struct {
	build     Builder
	visitors  *registry
	sweeper   idleSweeper
	idleTTL   time.Duration
	retention time.Duration
	logger    *logger.Logger
	now       func() time.Time
}

// New keeps workspaces in memory for idleTTL after their last request and
// persisted state for retention. A nil sweeper keeps persisted state forever.
func New(build Builder, sweeper idleSweeper, idleTTL, retention time.Duration, log *logger.Logger) *Service {
	if log == nil {
		log = logger.Nop()
	}
	return &Service{
		build:     build,
		visitors:  newRegistry(),
		sweeper:   sweeper,
		idleTTL:   idleTTL,
		retention: retention,
		logger:    log,
		now:       time.Now,
	}
}

// NewVisitorID issues a time-ordered id for a browser without a cookie.
func (s *Service) NewVisitorID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

// Workspace returns the visitor's workspace, building and restoring it on
// first use.
func (s *Service) Workspace(ctx context.Context, visitorID string) *workspace.Workspace {
	ws, created := s.visitors.touch(visitorID, s.now(), func() *workspace.Workspace {
		return s.build(context.WithoutCancel(ctx), visitorID)
	})
	if created {
		s.logger.Debug().Str("visitor", visitorID).Msg("workspace created")
	}
	return ws
}

func (s *Service) Len() int {
	return s.visitors.len()
}

// Sweep evicts idle workspaces and deletes expired persisted state.
func (s *Service) Sweep(ctx context.Context) {
	now := s.now()
	evicted := s.visitors.evictIdle(now.Add(-s.idleTTL))
	for _, ws := range evicted {
		ws.Close()
	}
	if len(evicted) > 0 {
		s.logger.Info().Int("count", len(evicted)).Msg("evicted idle visitors")
	}
	if s.sweeper == nil || s.retention <= 0 {
		return
	}
	n, err := s.sweeper.DeleteIdle(ctx, now.Add(-s.retention))
	if err != nil {
		s.logger.Error().Err(err).Msg("delete idle client state failed")
		return
	}
	if n > 0 {
		s.logger.Info().Int64("rows", n).Msg("deleted idle client state")
	}
}

// Run sweeps every interval until ctx is done.
func (s *Service) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.Sweep(ctx)
		}
	}
}
