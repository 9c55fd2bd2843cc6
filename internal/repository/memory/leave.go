package memory

import (
	"context"
	"strings"

	"github.com/cmlabs-hris/hris-admin-go/internal/domain/leave"
)

type leaveTypeRepositoryImpl struct {
	store *store[leave.LeaveType]
}

func NewLeaveTypeRepository(seed []leave.LeaveType) leave.LeaveTypeRepository {
	return &leaveTypeRepositoryImpl{
		store: newStore(seed, func(t leave.LeaveType) string { return t.ID }, leave.ErrLeaveTypeNotFound),
	}
}

func (r *leaveTypeRepositoryImpl) List(ctx context.Context) ([]leave.LeaveType, error) {
	return r.store.list(), nil
}

func (r *leaveTypeRepositoryImpl) GetByID(ctx context.Context, id string) (leave.LeaveType, error) {
	return r.store.get(id)
}

func (r *leaveTypeRepositoryImpl) Create(ctx context.Context, newType leave.LeaveType) (leave.LeaveType, error) {
	if newType.ID == "" {
		newType.ID = newID()
	}
	newType.CreatedAt = now()
	return r.store.insert(newType, func(existing, t leave.LeaveType) error {
		if strings.EqualFold(existing.Name, t.Name) {
			return leave.ErrLeaveTypeNameExists
		}
		return nil
	})
}

type leaveRequestRepositoryImpl struct {
	store *store[leave.LeaveRequest]
}

func NewLeaveRequestRepository(seed []leave.LeaveRequest) leave.LeaveRequestRepository {
	return &leaveRequestRepositoryImpl{
		store: newStore(seed, func(r leave.LeaveRequest) string { return r.ID }, leave.ErrLeaveRequestNotFound).
			withClone(func(r leave.LeaveRequest) leave.LeaveRequest {
				r.DecidedAt = clonePtr(r.DecidedAt)
				return r
			}),
	}
}

func (r *leaveRequestRepositoryImpl) List(ctx context.Context) ([]leave.LeaveRequest, error) {
	return r.store.list(), nil
}

func (r *leaveRequestRepositoryImpl) GetByID(ctx context.Context, id string) (leave.LeaveRequest, error) {
	return r.store.get(id)
}

func (r *leaveRequestRepositoryImpl) Create(ctx context.Context, newRequest leave.LeaveRequest) (leave.LeaveRequest, error) {
	if newRequest.ID == "" {
		newRequest.ID = newID()
	}
	return r.store.insert(newRequest, nil)
}

func (r *leaveRequestRepositoryImpl) Update(ctx context.Context, id string, patch leave.Patch) (leave.LeaveRequest, error) {
	return r.store.update(id, patch.Apply, nil)
}

// Decide implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) Decide(ctx context.Context, id string, patch leave.Patch) (leave.LeaveRequest, error) {
	return r.store.updateIf(id, func(current leave.LeaveRequest) error {
		if current.Status != leave.StatusPending {
			return leave.ErrLeaveRequestAlreadyProcessed
		}
		return nil
	}, patch.Apply, nil)
}

func (r *leaveRequestRepositoryImpl) Delete(ctx context.Context, id string) error {
	return r.store.remove(id)
}
