package entry

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lucasschmidt015/ponto-tracker-api/internal/domain/approval"
	"github.com/lucasschmidt015/ponto-tracker-api/internal/domain/company"
	"github.com/lucasschmidt015/ponto-tracker-api/internal/domain/entry"
	"github.com/lucasschmidt015/ponto-tracker-api/internal/domain/user"
	"github.com/lucasschmidt015/ponto-tracker-api/internal/domain/workingday"
	"github.com/lucasschmidt015/ponto-tracker-api/internal/pkg/clock"
	"github.com/lucasschmidt015/ponto-tracker-api/internal/pkg/database"
	"github.com/lucasschmidt015/ponto-tracker-api/internal/pkg/geo"
	"github.com/lucasschmidt015/ponto-tracker-api/internal/pkg/validator"
	"github.com/lucasschmidt015/ponto-tracker-api/internal/repository/postgresql"
)

type EntryServiceImpl struct {
	db *database.DB
	entry.EntryRepository
	company.CompanyRepository
	user.UserRepository
	workingDayService workingday.WorkingDayService
	approvalService   approval.ApprovalService
	clock             clock.Clock
}

func NewEntryService(
	db *database.DB,
	entryRepo entry.EntryRepository,
	companyRepo company.CompanyRepository,
	userRepo user.UserRepository,
	workingDayService workingday.WorkingDayService,
	approvalService approval.ApprovalService,
	clk clock.Clock,
) entry.EntryService {
	return &EntryServiceImpl{
		db:                db,
		EntryRepository:   entryRepo,
		CompanyRepository: companyRepo,
		UserRepository:    userRepo,
		workingDayService: workingDayService,
		approvalService:   approvalService,
		clock:             clk,
	}
}

// RegisterEntry implements entry.EntryService.
func (e *EntryServiceImpl) RegisterEntry(ctx context.Context, req entry.RegisterEntryRequest) (entry.EntryResponse, error) {
	if err := req.Validate(); err != nil {
		return entry.EntryResponse{}, err
	}

	requester, err := e.UserRepository.GetByID(ctx, req.UserID)
	if err != nil {
		return entry.EntryResponse{}, err
	}
	if requester.CompanyID != req.CompanyID {
		return entry.EntryResponse{}, user.ErrUserNotFound
	}

	now := e.clock.Now()

	// The per-minute check runs before any mutation so the common duplicate
	// case never opens a transaction. The unique index on entries backs this
	// up under concurrency.
	start, end := clock.MinuteBounds(now)
	exists, err := e.EntryRepository.ExistsForUserBetween(ctx, req.UserID, start, end)
	if err != nil {
		return entry.EntryResponse{}, fmt.Errorf("failed to check for same-minute entry: %w", err)
	}
	if exists {
		return entry.EntryResponse{}, entry.ErrDuplicateEntryInMinute
	}

	inRange, err := e.ValidateLocation(ctx, req.CompanyID, req.Latitude, req.Longitude)
	if err != nil {
		return entry.EntryResponse{}, err
	}

	var created entry.Entry
	err = postgresql.WithTransaction(ctx, e.db, func(txCtx context.Context) error {
		day, err := e.workingDayService.EnsureWorkingDay(txCtx, req.UserID, req.CompanyID, clock.StartOfDay(now))
		if err != nil {
			return err
		}

		created, err = e.EntryRepository.Create(txCtx, entry.Entry{
			ID:           uuid.New().String(),
			UserID:       req.UserID,
			WorkingDayID: day.ID,
			EntryTime:    now,
			Latitude:     req.Latitude,
			Longitude:    req.Longitude,
			IsApproved:   inRange,
		})
		if err != nil {
			return err
		}

		if !inRange {
			if _, err := e.approvalService.CreatePendingApproval(txCtx, created.ID); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return entry.EntryResponse{}, err
	}

	return toResponse(created), nil
}

// ListEntriesForUserOnDate implements entry.EntryService.
func (e *EntryServiceImpl) ListEntriesForUserOnDate(ctx context.Context, userID string, date time.Time) ([]entry.EntryResponse, error) {
	date = date.In(e.clock.Location())
	entries, err := e.EntryRepository.ListForUserBetween(ctx, userID, clock.StartOfDay(date), clock.EndOfDay(date))
	if err != nil {
		return nil, fmt.Errorf("failed to list entries: %w", err)
	}

	responses := make([]entry.EntryResponse, 0, len(entries))
	for _, en := range entries {
		responses = append(responses, toResponse(en))
	}
	return responses, nil
}

// ValidateLocation implements entry.EntryService.
func (e *EntryServiceImpl) ValidateLocation(ctx context.Context, companyID string, latitude, longitude *string) (bool, error) {
	comp, err := e.CompanyRepository.GetByID(ctx, companyID)
	if err != nil {
		return false, err
	}

	// Companies that allow out-of-range entry, or that never configured a
	// geofence center, accept any location.
	if comp.AllowEntryOutRange || !comp.HasGeofence() {
		return true, nil
	}

	// A configured geofence with no caller coordinates is always out of range.
	if latitude == nil || *latitude == "" || longitude == nil || *longitude == "" {
		return false, nil
	}

	lat, ok := validator.ParseLatitude(*latitude)
	if !ok {
		return false, nil
	}
	lon, ok := validator.ParseLongitude(*longitude)
	if !ok {
		return false, nil
	}
	centerLat, ok := validator.ParseLatitude(*comp.Latitude)
	if !ok {
		return false, fmt.Errorf("company %s has a malformed geofence latitude", comp.ID)
	}
	centerLon, ok := validator.ParseLongitude(*comp.Longitude)
	if !ok {
		return false, fmt.Errorf("company %s has a malformed geofence longitude", comp.ID)
	}

	distance := geo.DistanceMeters(lat, lon, centerLat, centerLon)
	return distance <= comp.RangeMeters(), nil
}

func toResponse(en entry.Entry) entry.EntryResponse {
	return entry.EntryResponse{
		ID:           en.ID,
		UserID:       en.UserID,
		WorkingDayID: en.WorkingDayID,
		EntryTime:    en.EntryTime.Format(time.RFC3339),
		Latitude:     en.Latitude,
		Longitude:    en.Longitude,
		IsApproved:   en.IsApproved,
	}
}
