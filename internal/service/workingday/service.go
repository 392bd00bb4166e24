package workingday

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/lucasschmidt015/ponto-tracker-api/internal/domain/entry"
	"github.com/lucasschmidt015/ponto-tracker-api/internal/domain/workingday"
	"github.com/lucasschmidt015/ponto-tracker-api/internal/pkg/clock"
	"github.com/lucasschmidt015/ponto-tracker-api/internal/pkg/database"
)

type WorkingDayServiceImpl struct {
	db *database.DB
	workingday.WorkingDayRepository
	entry.EntryRepository
	clock  clock.Clock
	logger *slog.Logger
}

func NewWorkingDayService(
	db *database.DB,
	workingDayRepo workingday.WorkingDayRepository,
	entryRepo entry.EntryRepository,
	clk clock.Clock,
	logger *slog.Logger,
) workingday.WorkingDayService {
	return &WorkingDayServiceImpl{
		db:                   db,
		WorkingDayRepository: workingDayRepo,
		EntryRepository:      entryRepo,
		clock:                clk,
		logger:               logger,
	}
}

// EnsureWorkingDay implements workingday.WorkingDayService.
func (w *WorkingDayServiceImpl) EnsureWorkingDay(ctx context.Context, userID string, companyID string, workedDate time.Time) (workingday.WorkingDay, error) {
	workedDate = clock.StartOfDay(workedDate)

	day, err := w.WorkingDayRepository.GetOpenByUserAndDate(ctx, userID, workedDate)
	if err == nil {
		return day, nil
	}
	if !errors.Is(err, workingday.ErrWorkingDayNotFound) {
		return workingday.WorkingDay{}, fmt.Errorf("failed to look up open working day: %w", err)
	}

	day, err = w.WorkingDayRepository.Create(ctx, workingday.WorkingDay{
		ID:         uuid.New().String(),
		UserID:     userID,
		CompanyID:  companyID,
		WorkedDate: workedDate,
		WorkedTime: 0,
		Finished:   false,
	})
	if err == nil {
		return day, nil
	}
	if !errors.Is(err, workingday.ErrOpenDayExists) {
		return workingday.WorkingDay{}, fmt.Errorf("failed to create working day: %w", err)
	}

	// Lost the insert race; the winner's row is the one to use.
	day, err = w.WorkingDayRepository.GetOpenByUserAndDate(ctx, userID, workedDate)
	if err != nil {
		return workingday.WorkingDay{}, fmt.Errorf("failed to fetch working day after insert race: %w", err)
	}
	return day, nil
}

// CloseoutStaleDays implements workingday.WorkingDayService.
func (w *WorkingDayServiceImpl) CloseoutStaleDays(ctx context.Context, asOf time.Time) (int, error) {
	cutoff := clock.StartOfDay(asOf)

	stale, err := w.WorkingDayRepository.ListUnfinishedBefore(ctx, cutoff)
	if err != nil {
		return 0, fmt.Errorf("failed to list unfinished working days: %w", err)
	}

	closed := 0
	for _, day := range stale {
		entries, err := w.EntryRepository.ListApprovedByWorkingDay(ctx, day.ID)
		if err != nil {
			w.logger.Error("failed to list approved entries for working day",
				slog.String("working_day_id", day.ID),
				slog.String("error", err.Error()))
			continue
		}

		times := make([]time.Time, 0, len(entries))
		for _, en := range entries {
			times = append(times, en.EntryTime.In(w.clock.Location()))
		}

		minutes := workingday.SumWorkedMinutes(times)
		if err := w.WorkingDayRepository.Finish(ctx, day.ID, minutes); err != nil {
			w.logger.Error("failed to finish working day",
				slog.String("working_day_id", day.ID),
				slog.String("error", err.Error()))
			continue
		}
		closed++
	}

	return closed, nil
}

// List implements workingday.WorkingDayService.
func (w *WorkingDayServiceImpl) List(ctx context.Context, filter workingday.ListWorkingDaysFilter) ([]workingday.WorkingDayResponse, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	days, err := w.WorkingDayRepository.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list working days: %w", err)
	}

	responses := make([]workingday.WorkingDayResponse, 0, len(days))
	for _, day := range days {
		responses = append(responses, toResponse(day))
	}
	return responses, nil
}

func toResponse(day workingday.WorkingDay) workingday.WorkingDayResponse {
	return workingday.WorkingDayResponse{
		ID:         day.ID,
		UserID:     day.UserID,
		CompanyID:  day.CompanyID,
		WorkedDate: clock.FormatDate(day.WorkedDate),
		WorkedTime: day.WorkedTime,
		Finished:   day.Finished,
	}
}
