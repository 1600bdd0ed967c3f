// Package jobs provides scheduled background tasks for the order bot.
//
// Jobs use github.com/robfig/cron/v3 with second precision. Overlapping runs
// of the same job are skipped rather than queued.
//
// # Available Jobs
//
// ReminderJob - sends delivery reminders whose due time has passed and marks
// them Sent. Runs on REMINDER_SCHEDULE, every 30 seconds by default.
//
// # Usage
//
//	reminderJob := jobs.NewReminderJob(handler, cfg.ReminderSchedule, cfg.ReminderBatch, time.Minute, logger)
//	jobManager := jobs.NewJobManager(reminderJob)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// Failed runs are logged and retried on the next tick. Failed job starts stop
// the jobs already running.
package jobs
