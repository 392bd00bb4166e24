package postgresql_test

import (
	"context"
	"io"
	"log/slog"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/lucasschmidt015/ponto-tracker-api/internal/domain/workingday"
	"github.com/lucasschmidt015/ponto-tracker-api/internal/pkg/clock"
	"github.com/lucasschmidt015/ponto-tracker-api/internal/pkg/database"
	"github.com/lucasschmidt015/ponto-tracker-api/internal/pkg/migrate"
	"github.com/lucasschmidt015/ponto-tracker-api/internal/repository/postgresql"
	workingdayservice "github.com/lucasschmidt015/ponto-tracker-api/internal/service/workingday"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	testDB     *database.DB
	testDBOnce sync.Once
)

func openTestDB(t *testing.T) *database.DB {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	testDBOnce.Do(func() {
		require.NoError(t, migrate.Up(dsn))

		db, err := database.NewPostgreSQLDB(dsn)
		require.NoError(t, err)
		testDB = db
	})
	return testDB
}

func seedUser(t *testing.T, ctx context.Context, db *database.DB) (userID, companyID string) {
	t.Helper()

	companyID = uuid.New().String()
	userID = uuid.New().String()

	_, err := db.Exec(ctx, `
		INSERT INTO companies (id, name) VALUES ($1, 'Test Company')
	`, companyID)
	require.NoError(t, err)

	_, err = db.Exec(ctx, `
		INSERT INTO users (id, company_id, name, email, password)
		VALUES ($1, $2, 'Test Worker', $3, 'not-a-real-hash')
	`, userID, companyID, userID+"@example.com")
	require.NoError(t, err)

	return userID, companyID
}

// A lost insert must not abort the surrounding transaction: the refetch of
// the winner's row runs on the same transaction right after the conflict.
func TestWorkingDayCreateConflictKeepsTransactionUsable(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	userID, companyID := seedUser(t, ctx, db)
	repo := postgresql.NewWorkingDayRepository(db)

	date := time.Date(2026, time.March, 9, 0, 0, 0, 0, time.UTC)

	winner, err := repo.Create(ctx, workingday.WorkingDay{
		ID:         uuid.New().String(),
		UserID:     userID,
		CompanyID:  companyID,
		WorkedDate: date,
	})
	require.NoError(t, err)

	err = postgresql.WithTransaction(ctx, db, func(txCtx context.Context) error {
		_, err := repo.Create(txCtx, workingday.WorkingDay{
			ID:         uuid.New().String(),
			UserID:     userID,
			CompanyID:  companyID,
			WorkedDate: date,
		})
		require.ErrorIs(t, err, workingday.ErrOpenDayExists)

		got, err := repo.GetOpenByUserAndDate(txCtx, userID, date)
		require.NoError(t, err)
		assert.Equal(t, winner.ID, got.ID)
		return nil
	})
	require.NoError(t, err)
}

// Two registrations racing on the same user and date, each inside its own
// real transaction, must converge on a single working day with neither
// caller erroring.
func TestEnsureWorkingDayConcurrentTransactions(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	userID, companyID := seedUser(t, ctx, db)

	date := time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC)
	svc := workingdayservice.NewWorkingDayService(
		db,
		postgresql.NewWorkingDayRepository(db),
		postgresql.NewEntryRepository(db),
		clock.Fixed{Time: date},
		slog.New(slog.NewTextHandler(io.Discard, nil)),
	)

	ids := make([]string, 2)
	errs := make([]error, 2)
	var wg sync.WaitGroup
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errs[i] = postgresql.WithTransaction(ctx, db, func(txCtx context.Context) error {
				day, err := svc.EnsureWorkingDay(txCtx, userID, companyID, date)
				if err != nil {
					return err
				}
				ids[i] = day.ID
				return nil
			})
		}(i)
	}
	wg.Wait()

	require.NoError(t, errs[0])
	require.NoError(t, errs[1])
	assert.Equal(t, ids[0], ids[1])
}
