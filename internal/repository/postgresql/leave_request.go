package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/cmlabs-hris/hris-admin-go/internal/domain/leave"
	"github.com/cmlabs-hris/hris-admin-go/internal/pkg/database"
)

const leaveRequestColumns = `id, employee_id, leave_type_id, start_date, end_date, reason, status, applied_at, decided_at`

type leaveRequestRepositoryImpl struct {
	db *database.DB
}

func NewLeaveRequestRepository(db *database.DB) leave.LeaveRequestRepository {
	return &leaveRequestRepositoryImpl{db: db}
}

func scanLeaveRequest(row scanner) (leave.LeaveRequest, error) {
	var r leave.LeaveRequest
	err := row.Scan(
		&r.ID, &r.EmployeeID, &r.LeaveTypeID, &r.StartDate, &r.EndDate,
		&r.Reason, &r.Status, &r.AppliedAt, &r.DecidedAt,
	)
	return r, noRows(err, leave.ErrLeaveRequestNotFound)
}

func leaveRequestError(err error) error {
	if name, ok := constraintViolation(err, codeForeignKeyViolation); ok {
		if name == "leave_requests_leave_type_id_fkey" {
			return leave.ErrLeaveTypeNotFound
		}
		return leave.ErrEmployeeNotFound
	}
	return err
}

// List implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) List(ctx context.Context) ([]leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)
	query := `SELECT ` + leaveRequestColumns + ` FROM leave_requests ORDER BY id`
	return queryAll(ctx, q, query, scanLeaveRequest)
}

// GetByID implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) GetByID(ctx context.Context, id string) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)
	query := `SELECT ` + leaveRequestColumns + ` FROM leave_requests WHERE id = $1`
	return scanLeaveRequest(q.QueryRow(ctx, query, id))
}

// Create implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) Create(ctx context.Context, req leave.LeaveRequest) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)
	if req.ID == "" {
		req.ID = newID()
	}

	query := `
		INSERT INTO leave_requests (
			id, employee_id, leave_type_id, start_date, end_date,
			reason, status, applied_at, decided_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	_, err := q.Exec(ctx, query,
		req.ID, req.EmployeeID, req.LeaveTypeID, req.StartDate, req.EndDate,
		req.Reason, string(req.Status), req.AppliedAt, req.DecidedAt,
	)
	if err != nil {
		return leave.LeaveRequest{}, fmt.Errorf("failed to insert leave request: %w", leaveRequestError(err))
	}
	return req, nil
}

// Update implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) Update(ctx context.Context, id string, patch leave.Patch) (leave.LeaveRequest, error) {
	set := map[string]any{}
	if patch.Status != nil {
		set["status"] = string(*patch.Status)
	}
	if patch.DecidedAt != nil {
		set["decided_at"] = *patch.DecidedAt
	}
	return updateReturning(ctx, GetQuerier(ctx, r.db), "leave_requests", leaveRequestColumns, id, set, scanLeaveRequest)
}

// Decide implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) Decide(ctx context.Context, id string, patch leave.Patch) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)
	set := map[string]any{}
	if patch.Status != nil {
		set["status"] = string(*patch.Status)
	}
	if patch.DecidedAt != nil {
		set["decided_at"] = *patch.DecidedAt
	}

	query, args, err := psql.Update("leave_requests").
		SetMap(set).
		Where(squirrel.Eq{"id": id, "status": string(leave.StatusPending)}).
		Suffix("RETURNING " + leaveRequestColumns).
		ToSql()
	if err != nil {
		return leave.LeaveRequest{}, fmt.Errorf("error building query: %w", err)
	}

	decided, err := scanLeaveRequest(q.QueryRow(ctx, query, args...))
	if errors.Is(err, leave.ErrLeaveRequestNotFound) {
		// Nothing matched: either the request is gone or it was already decided.
		if _, getErr := r.GetByID(ctx, id); getErr != nil {
			return leave.LeaveRequest{}, getErr
		}
		return leave.LeaveRequest{}, leave.ErrLeaveRequestAlreadyProcessed
	}
	return decided, err
}

// Delete implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, GetQuerier(ctx, r.db), "leave_requests", id, leave.ErrLeaveRequestNotFound)
}
