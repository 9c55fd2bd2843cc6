package leave

import "context"

type LeaveTypeRepository interface {
	List(ctx context.Context) ([]LeaveType, error)
	GetByID(ctx context.Context, id string) (LeaveType, error)
	Create(ctx context.Context, newType LeaveType) (LeaveType, error)
}

type LeaveRequestRepository interface {
	List(ctx context.Context) ([]LeaveRequest, error)
	GetByID(ctx context.Context, id string) (LeaveRequest, error)
	Create(ctx context.Context, newRequest LeaveRequest) (LeaveRequest, error)
	Update(ctx context.Context, id string, patch Patch) (LeaveRequest, error)
	// Decide applies patch only while the request is still pending and
	// returns ErrLeaveRequestAlreadyProcessed otherwise.
	Decide(ctx context.Context, id string, patch Patch) (LeaveRequest, error)
	Delete(ctx context.Context, id string) error
}
