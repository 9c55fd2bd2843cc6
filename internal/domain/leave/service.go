package leave

import "context"

type LeaveService interface {
	ListTypes(ctx context.Context) ([]LeaveTypeResponse, error)
	CreateType(ctx context.Context, req CreateLeaveTypeRequest) (LeaveTypeResponse, error)

	ListRequests(ctx context.Context, req ListLeaveRequestsRequest) (ListLeaveRequestResponse, error)
	SubmitRequest(ctx context.Context, req SubmitLeaveRequest) (LeaveRequestResponse, error)
	// ApproveRequest and RejectRequest only act on pending requests.
	ApproveRequest(ctx context.Context, id string) (LeaveRequestResponse, error)
	RejectRequest(ctx context.Context, id string) (LeaveRequestResponse, error)

	Dashboard(ctx context.Context) (DashboardResponse, error)
}
