package postgresql

import (
	"context"
	"fmt"

	"github.com/cmlabs-hris/hris-admin-go/internal/domain/leave"
	"github.com/cmlabs-hris/hris-admin-go/internal/pkg/database"
)

const leaveTypeColumns = `id, name, max_days, color, created_at`

type leaveTypeRepositoryImpl struct {
	db *database.DB
}

func NewLeaveTypeRepository(db *database.DB) leave.LeaveTypeRepository {
	return &leaveTypeRepositoryImpl{db: db}
}

func scanLeaveType(row scanner) (leave.LeaveType, error) {
	var lt leave.LeaveType
	err := row.Scan(&lt.ID, &lt.Name, &lt.MaxDays, &lt.Color, &lt.CreatedAt)
	return lt, noRows(err, leave.ErrLeaveTypeNotFound)
}

// List implements leave.LeaveTypeRepository.
func (l *leaveTypeRepositoryImpl) List(ctx context.Context) ([]leave.LeaveType, error) {
	q := GetQuerier(ctx, l.db)
	query := `SELECT ` + leaveTypeColumns + ` FROM leave_types ORDER BY created_at, id`
	return queryAll(ctx, q, query, scanLeaveType)
}

// GetByID implements leave.LeaveTypeRepository.
func (l *leaveTypeRepositoryImpl) GetByID(ctx context.Context, id string) (leave.LeaveType, error) {
	q := GetQuerier(ctx, l.db)
	query := `SELECT ` + leaveTypeColumns + ` FROM leave_types WHERE id = $1`
	return scanLeaveType(q.QueryRow(ctx, query, id))
}

// Create implements leave.LeaveTypeRepository.
func (l *leaveTypeRepositoryImpl) Create(ctx context.Context, leaveType leave.LeaveType) (leave.LeaveType, error) {
	q := GetQuerier(ctx, l.db)
	if leaveType.ID == "" {
		leaveType.ID = newID()
	}

	query := `
		INSERT INTO leave_types (id, name, max_days, color, created_at)
		VALUES ($1, $2, $3, $4, NOW())
		RETURNING created_at
	`
	err := q.QueryRow(ctx, query,
		leaveType.ID, leaveType.Name, leaveType.MaxDays, leaveType.Color,
	).Scan(&leaveType.CreatedAt)
	if err != nil {
		if _, ok := constraintViolation(err, codeUniqueViolation); ok {
			return leave.LeaveType{}, leave.ErrLeaveTypeNameExists
		}
		return leave.LeaveType{}, fmt.Errorf("failed to insert leave type: %w", err)
	}
	return leaveType, nil
}
