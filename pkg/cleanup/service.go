// Package cleanup provides data retention for the discovery backend.
package cleanup

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/confscout/scout/pkg/feedback"
)

const (
	defaultInterval        = 15 * time.Minute
	defaultCallLogMaxAge   = 7 * 24 * time.Hour
	callLogFilenamePattern = "*.json"
)

// Service periodically enforces retention policies:
//   - Marks stale in-progress feedback sessions as abandoned
//   - Removes LLM call-log files past their age limit
//
// All operations are idempotent and safe to run from multiple replicas.
type Service struct {
	feedback *feedback.Service
	logDir   string
	logger   *slog.Logger

	interval      time.Duration
	callLogMaxAge time.Duration
	now           func() time.Time

	cancel context.CancelFunc
	done   chan struct{}
}

// NewService creates a new cleanup service. logDir may be empty to disable
// call-log pruning.
func NewService(feedbackSvc *feedback.Service, logDir string, logger *slog.Logger) *Service {
	return &Service{
		feedback:      feedbackSvc,
		logDir:        logDir,
		logger:        logger.With("component", "cleanup"),
		interval:      defaultInterval,
		callLogMaxAge: defaultCallLogMaxAge,
		now:           time.Now,
	}
}

// Start launches the background cleanup loop.
func (s *Service) Start(ctx context.Context) {
	if s.cancel != nil {
		return
	}
	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})

	go s.run(ctx)

	s.logger.Info("Cleanup service started",
		"interval", s.interval,
		"call_log_max_age", s.callLogMaxAge,
		"call_log_dir", s.logDir)
}

// Stop signals the cleanup loop to exit and waits for it to finish.
func (s *Service) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
	s.logger.Info("Cleanup service stopped")
}

func (s *Service) run(ctx context.Context) {
	defer close(s.done)

	s.runAll(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.runAll(ctx)
		}
	}
}

func (s *Service) runAll(ctx context.Context) {
	s.abandonStaleSessions(ctx)
	s.pruneCallLogs()
}

func (s *Service) abandonStaleSessions(ctx context.Context) {
	count, err := s.feedback.AbandonStale(ctx)
	if err != nil {
		s.logger.Error("Retention: abandoning stale feedback sessions failed", "error", err)
		return
	}
	if count > 0 {
		s.logger.Info("Retention: abandoned stale feedback sessions", "count", count)
	}
}

// pruneCallLogs removes call-log files whose modification time is older than
// the age limit. Files that vanish between listing and removal are ignored.
func (s *Service) pruneCallLogs() {
	if s.logDir == "" {
		return
	}
	matches, err := filepath.Glob(filepath.Join(s.logDir, callLogFilenamePattern))
	if err != nil {
		s.logger.Error("Retention: listing call logs failed", "dir", s.logDir, "error", err)
		return
	}

	cutoff := s.now().Add(-s.callLogMaxAge)
	removed := 0
	for _, path := range matches {
		info, err := os.Stat(path)
		if err != nil {
			continue
		}
		if info.ModTime().After(cutoff) {
			continue
		}
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			s.logger.Error("Retention: removing call log failed", "path", path, "error", err)
			continue
		}
		removed++
	}
	if removed > 0 {
		s.logger.Info("Retention: pruned old call logs", "count", removed, "dir", s.logDir)
	}
}
