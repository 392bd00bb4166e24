package cron

import (
	"context"
	"log/slog"
	"time"

	"github.com/lucasschmidt015/ponto-tracker-api/internal/domain/workingday"
	"github.com/lucasschmidt015/ponto-tracker-api/internal/pkg/clock"
)

type AttendanceJobs struct {
	workingDayService workingday.WorkingDayService
	clock             clock.Clock
}

func NewAttendanceJobs(workingDayService workingday.WorkingDayService, clk clock.Clock) *AttendanceJobs {
	return &AttendanceJobs{
		workingDayService: workingDayService,
		clock:             clk,
	}
}

func (j *AttendanceJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("close_stale_working_days", 1*time.Hour, j.CloseStaleWorkingDays)
}

// CloseStaleWorkingDays finishes every working day left open on a previous
// date, summing worked minutes from its approved entries.
func (j *AttendanceJobs) CloseStaleWorkingDays(ctx context.Context) error {
	// Only run at business-timezone midnight (00:00-00:59)
	now := j.clock.Now()
	if now.Hour() != 0 {
		return nil
	}

	slog.Info("Cron: Starting close stale working days job")

	closed, err := j.workingDayService.CloseoutStaleDays(ctx, now)
	if err != nil {
		return err
	}

	slog.Info("Cron: Closed stale working days", "count", closed)
	return nil
}
