package daemon

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/username/vacation-hub/internal/config"
	"github.com/username/vacation-hub/internal/report"
	"github.com/username/vacation-hub/internal/vacation"
	"github.com/username/vacation-hub/pkg/dateutil"
)

// Reporter computes the dashboard the daemon snapshots
type Reporter interface {
	Dashboard(ctx context.Context, p vacation.Period) (*vacation.Dashboard, error)
}

// Daemon takes scheduled absence snapshots
type Daemon struct {
	reporter  Reporter
	schedule  string
	outputDir string
	logger    *zap.Logger
	now       func() time.Time

	mu          sync.Mutex // Protect against concurrent runs
	running     bool
	lastRunTime time.Time
	lastFile    string
}

// NewDaemon creates a daemon for the report section of cfg
func NewDaemon(cfg config.ReportConfig, reporter Reporter, logger *zap.Logger) (*Daemon, error) {
	if _, err := cron.ParseStandard(cfg.Schedule); err != nil {
		return nil, fmt.Errorf("invalid report schedule %q: %w", cfg.Schedule, err)
	}

	return &Daemon{
		reporter:  reporter,
		schedule:  cfg.Schedule,
		outputDir: cfg.OutputDir,
		logger:    logger.Named("daemon"),
		now:       time.Now,
	}, nil
}

// Run schedules snapshots and blocks until ctx is cancelled
func (d *Daemon) Run(ctx context.Context) error {
	c := cron.New()

	_, err := c.AddFunc(d.schedule, func() {
		if _, err := d.RunOnce(ctx); err != nil {
			d.logger.Error("Scheduled snapshot failed", zap.Error(err))
		}
	})
	if err != nil {
		return fmt.Errorf("failed to schedule snapshot: %w", err)
	}

	c.Start()
	for _, entry := range c.Entries() {
		d.logger.Info("Next snapshot scheduled",
			zap.String("schedule", d.schedule),
			zap.Time("next_run", entry.Next))
	}

	<-ctx.Done()
	d.logger.Info("Daemon stopping")
	<-c.Stop().Done()
	d.logger.Info("Daemon stopped")
	return nil
}

// RunOnce takes one snapshot of the current month.
// It returns the written CSV path, empty when no output directory is configured.
func (d *Daemon) RunOnce(ctx context.Context) (string, error) {
	d.mu.Lock()
	if d.running {
		d.mu.Unlock()
		d.logger.Warn("Snapshot already running, skipping concurrent execution")
		return "", fmt.Errorf("snapshot already in progress")
	}
	d.running = true
	d.mu.Unlock()

	defer func() {
		d.mu.Lock()
		d.running = false
		d.mu.Unlock()
	}()

	dash, err := d.reporter.Dashboard(ctx, vacation.Period{})
	if err != nil {
		return "", fmt.Errorf("failed to compute dashboard: %w", err)
	}

	d.logger.Info("Absence snapshot",
		zap.String("period_start", dateutil.FormatISO(dash.Absence.Start)),
		zap.String("period_end", dateutil.FormatISO(dash.Absence.End)),
		zap.Int("team_size", dash.Absence.TeamSize),
		zap.Int("absent_days", dash.Absence.AbsentWorkingDays),
		zap.Int("present_days", dash.Absence.PresentWorkingDays),
		zap.Float64("absence_ratio", dash.Absence.AbsenceRatio),
		zap.Int("collisions", len(dash.Collisions)))

	for _, s := range dash.Stats {
		if s.Remaining == 0 {
			d.logger.Info("Quota exhausted",
				zap.String("name", s.Name),
				zap.Int("days_booked", s.DaysBooked))
		}
	}

	path := ""
	if d.outputDir != "" {
		path, err = d.writeCSV(dash)
		if err != nil {
			return "", err
		}
		d.logger.Info("Snapshot written", zap.String("path", path))
	}

	d.mu.Lock()
	d.lastRunTime = d.now()
	d.lastFile = path
	d.mu.Unlock()

	return path, nil
}

func (d *Daemon) writeCSV(dash *vacation.Dashboard) (string, error) {
	if err := os.MkdirAll(d.outputDir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create output dir: %w", err)
	}

	path := filepath.Join(d.outputDir, fmt.Sprintf("stats-%s.csv", dateutil.FormatISO(d.now())))
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return "", fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	if err := report.WriteCSV(f, dash.Stats, dash.Quota); err != nil {
		return "", err
	}
	return path, f.Close()
}

// GetStatus returns daemon status
func (d *Daemon) GetStatus() map[string]interface{} {
	d.mu.Lock()
	defer d.mu.Unlock()

	status := map[string]interface{}{
		"schedule": d.schedule,
		"running":  d.running,
	}
	if !d.lastRunTime.IsZero() {
		status["last_run"] = d.lastRunTime.Format(time.RFC3339)
	}
	if d.lastFile != "" {
		status["last_file"] = d.lastFile
	}
	if sched, err := cron.ParseStandard(d.schedule); err == nil {
		status["next_run"] = sched.Next(d.now()).Format(time.RFC3339)
	}
	return status
}
