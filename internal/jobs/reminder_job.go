package jobs

import (
	"context"
	"log/slog"
	"time"

	"orderbot/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// DefaultReminderSchedule runs the reminder job every 30 seconds.
const DefaultReminderSchedule = "*/30 * * * * *"

// ReminderSender is the command handler the job drives.
type ReminderSender interface {
	Handle(ctx context.Context, cmd commands.SendDueRemindersCommand) error
}

// ReminderJob periodically sends due delivery reminders.
type ReminderJob struct {
	sender   ReminderSender
	schedule string
	batch    int
	timeout  time.Duration
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewReminderJob creates the job. An empty schedule means
// DefaultReminderSchedule, a non-positive batch means
// commands.DefaultReminderBatch. Each run is bounded by timeout.
func NewReminderJob(sender ReminderSender, schedule string, batch int, timeout time.Duration, logger *slog.Logger) *ReminderJob {
	if schedule == "" {
		schedule = DefaultReminderSchedule
	}
	if batch <= 0 {
		batch = commands.DefaultReminderBatch
	}
	if timeout <= 0 {
		timeout = time.Minute
	}

	logger = logger.With("component", "reminder_job")
	return &ReminderJob{
		sender:   sender,
		schedule: schedule,
		batch:    batch,
		timeout:  timeout,
		cron: cron.New(
			cron.WithSeconds(),
			cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)),
		),
		logger: logger,
	}
}

// Run sends one batch. The cron entry calls it; tests call it directly.
func (j *ReminderJob) Run() {
	ctx, cancel := context.WithTimeout(context.Background(), j.timeout)
	defer cancel()

	cmd, err := commands.NewSendDueRemindersCommand(j.batch)
	if err != nil {
		j.logger.ErrorContext(ctx, "Reminder job misconfigured", "error", err)
		return
	}

	if err = j.sender.Handle(ctx, cmd); err != nil {
		j.logger.ErrorContext(ctx, "Reminder job failed", "error", err)
	}
}

// Start schedules the job.
func (j *ReminderJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, j.Run); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Reminder job started", "schedule", j.schedule)
	return nil
}

// Stop stops scheduling and waits for a running batch to finish.
func (j *ReminderJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Reminder job stopped")
}
