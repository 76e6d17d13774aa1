package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"

	"cospace/infras/otel"
	"cospace/infras/postgres"
	"cospace/internal/domains/booking/model"
	paymentModel "cospace/internal/domains/payment/model"
	"cospace/shared/constant"
	gDto "cospace/shared/dto"
	"cospace/shared/logger"
	gRepo "cospace/shared/repository"
)

// ErrBookingConflict reports that the requested interval overlaps an active
// booking on the same workspace. It covers both the fast-path overlap check
// and the exclusion constraint raised at commit time, so callers observe one
// error regardless of which mechanism caught the race.
var ErrBookingConflict = errors.New("workspace is not available for the selected interval")

type Booking interface {
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Booking, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Booking, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)

	HasOverlap(ctx context.Context, workspaceID string, start, end time.Time, excludeBookingID string) (bool, error)
	BookedWorkspaceIDs(ctx context.Context, start, end time.Time) (map[string]struct{}, error)
	CreateWithPayment(ctx context.Context, booking model.Booking, payment paymentModel.Payment) error
	Cancel(ctx context.Context, booking model.Booking) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Booking]
	paymentRepo gRepo.Repository[paymentModel.Payment]
	db          *postgres.Connection
	otel        otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Booking {
	return &repositoryImpl{
		Repository:  gRepo.NewRepository[model.Booking](model.EntityName, model.TableName, model.FieldID, db, otel),
		paymentRepo: gRepo.NewRepository[paymentModel.Payment](paymentModel.EntityName, paymentModel.TableName, paymentModel.FieldID, db, otel),
		db:          db,
		otel:        otel,
	}
}

// HasOverlap reports whether any active booking on the workspace intersects
// the half-open interval [start, end). Touching endpoints do not overlap.
// It always reads live store state; results are never cached.
func (repo *repositoryImpl) HasOverlap(ctx context.Context, workspaceID string, start, end time.Time, excludeBookingID string) (exists bool, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.HasOverlap")
	defer scope.End()
	defer scope.TraceIfError(err)

	query := `SELECT EXISTS(
		SELECT 1 FROM bookings
		WHERE workspace_id = $1
		AND cancelled = FALSE
		AND start_time < $3
		AND end_time > $2
		AND ($4 = '' OR id::text <> $4)
	)`
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	err = repo.db.Read.GetContext(ctx, &exists, query, workspaceID, start, end, excludeBookingID)
	if err != nil {
		logger.ErrorWithStack(err)

		return false, fmt.Errorf("failed to check booking overlap: %w", err)
	}

	return exists, nil
}

// BookedWorkspaceIDs returns the set of workspaces with at least one active
// booking overlapping [start, end), computed in a single query.
func (repo *repositoryImpl) BookedWorkspaceIDs(ctx context.Context, start, end time.Time) (res map[string]struct{}, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.BookedWorkspaceIDs")
	defer scope.End()
	defer scope.TraceIfError(err)

	query := `SELECT DISTINCT workspace_id FROM bookings
		WHERE cancelled = FALSE
		AND start_time < $2
		AND end_time > $1`
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	var ids []string
	if err = repo.db.Read.SelectContext(ctx, &ids, query, start, end); err != nil {
		logger.ErrorWithStack(err)

		return nil, fmt.Errorf("failed to list booked workspaces: %w", err)
	}

	res = make(map[string]struct{}, len(ids))
	for _, id := range ids {
		res[id] = struct{}{}
	}

	return res, nil
}

// CreateWithPayment inserts the booking and its payment row in one
// transaction: both rows become durable together or neither does. The
// bookings_no_overlap exclusion constraint re-checks the interval at commit
// time; a violation from a concurrent writer surfaces as ErrBookingConflict.
func (repo *repositoryImpl) CreateWithPayment(ctx context.Context, booking model.Booking, payment paymentModel.Payment) (err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.CreateWithPayment")
	defer scope.End()
	defer scope.TraceIfError(err)

	tx, err := repo.db.Write.BeginTxx(ctx, nil)
	if err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to begin booking transaction: %w", err)
	}

	defer tx.Rollback() //nolint:errcheck

	if err = repo.InsertTx(ctx, tx, booking); err != nil {
		return translateConflict(err)
	}

	if err = repo.paymentRepo.InsertTx(ctx, tx, payment); err != nil {
		return fmt.Errorf("failed to insert payment: %w", err)
	}

	if err = tx.Commit(); err != nil {
		logger.ErrorWithStack(err)

		return translateConflict(fmt.Errorf("failed to commit booking transaction: %w", err))
	}

	return nil
}

// Cancel marks the booking cancelled. The update is unconditional, which
// makes re-cancellation a no-op; occupancy needs no separate release step
// because it is always recomputed from active bookings.
func (repo *repositoryImpl) Cancel(ctx context.Context, booking model.Booking) (err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.Cancel")
	defer scope.End()
	defer scope.TraceIfError(err)

	query := `UPDATE bookings
		SET cancelled = TRUE, modified_at = :modified_at, modified_by = :modified_by
		WHERE id = :id`
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	args := map[string]any{
		"id":          booking.ID,
		"modified_at": booking.ModifiedAt,
		"modified_by": booking.ModifiedBy,
	}

	if _, err = repo.db.Write.NamedExecContext(ctx, query, args); err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to cancel booking: %w", err)
	}

	return nil
}

func translateConflict(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && string(pqErr.Code) == constant.PqErrorCodeExclusionViolation {
		return ErrBookingConflict
	}

	return err
}
