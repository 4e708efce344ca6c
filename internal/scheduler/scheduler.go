package scheduler

import (
	"context"
	"fmt"
	"log"

	"github.com/robfig/cron/v3"

	"NiftyPulse/internal/collector"
	"NiftyPulse/internal/notifier"
)

// Scheduler runs the recurring market tasks: the post-close daily report
// and a periodic cache/store refresh.
type Scheduler struct {
	Cron      *cron.Cron
	Collector *collector.Collector
	Notifier  *notifier.TelegramNotifier
	Ctx       context.Context
}

// NewScheduler creates a new Scheduler.
func NewScheduler(ctx context.Context, col *collector.Collector, tn *notifier.TelegramNotifier) *Scheduler {
	return &Scheduler{
		Cron:      cron.New(cron.WithSeconds()),
		Collector: col,
		Notifier:  tn,
		Ctx:       ctx,
	}
}

// RegisterAll registers the daily report and refresh tasks.
func (s *Scheduler) RegisterAll(dailyCron, refreshCron string) error {
	if _, err := s.Cron.AddFunc(dailyCron, s.dailyReportTask); err != nil {
		return fmt.Errorf("register daily report task: %w", err)
	}
	if _, err := s.Cron.AddFunc(refreshCron, s.refreshTask); err != nil {
		return fmt.Errorf("register refresh task: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	log.Println("[INFO] scheduler started")
}

// Stop stops the cron scheduler gracefully.
func (s *Scheduler) Stop() {
	s.Cron.Stop()
	log.Println("[INFO] scheduler stopped")
}

// RunDailyNow executes the daily report immediately (manual trigger /
// RUN_ON_START).
func (s *Scheduler) RunDailyNow() {
	s.dailyReportTask()
}

func (s *Scheduler) dailyReportTask() {
	log.Println("[INFO] running daily report task")
	_, record, err := s.Collector.Snapshot()
	if err != nil {
		log.Printf("[ERROR] daily snapshot: %v", err)
		s.trySend(fmt.Sprintf("❌ Daily analysis failed: %v", err))
		return
	}
	s.trySend(notifier.FormatDailyReport(s.Collector.Symbol, record))
}

// refreshTask warms the fetch cache and the candle store so off-schedule
// HTTP requests are served without an upstream round trip.
func (s *Scheduler) refreshTask() {
	candles, err := s.Collector.Candles()
	if err != nil {
		log.Printf("[WARN] refresh candles: %v", err)
		return
	}
	log.Printf("[INFO] refreshed %d candles for %s", len(candles), s.Collector.Symbol)
}

// HandleCommand processes a user command and returns a reply.
func (s *Scheduler) HandleCommand(command string) string {
	switch command {
	case "/analysis", "/report":
		_, record, err := s.Collector.Snapshot()
		if err != nil {
			return fmt.Sprintf("Analysis unavailable: %v", err)
		}
		return notifier.FormatDailyReport(s.Collector.Symbol, record)
	case "/levels":
		_, record, err := s.Collector.Snapshot()
		if err != nil {
			return fmt.Sprintf("Levels unavailable: %v", err)
		}
		return notifier.FormatLevels(record)
	default:
		return "Available commands:\n• /analysis — full daily analysis\n• /levels — support & resistance zones"
	}
}

func (s *Scheduler) trySend(text string) {
	if !s.Notifier.Enabled() {
		return
	}
	if err := s.Notifier.SendWithRetry(s.Ctx, text, 3); err != nil {
		log.Printf("[ERROR] send notification: %v", err)
	}
}
