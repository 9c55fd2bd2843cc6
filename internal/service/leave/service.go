package leave

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/cmlabs-hris/hris-admin-go/internal/domain/leave"
	"github.com/cmlabs-hris/hris-admin-go/internal/pkg/listquery"
	"github.com/cmlabs-hris/hris-admin-go/internal/service/directory"
)

type LeaveServiceImpl struct {
	typeRepo    leave.LeaveTypeRepository
	requestRepo leave.LeaveRequestRepository
	directory   *directory.Loader
	now         func() time.Time
}

func NewLeaveService(typeRepo leave.LeaveTypeRepository, requestRepo leave.LeaveRequestRepository, directory *directory.Loader) leave.LeaveService {
	return &LeaveServiceImpl{
		typeRepo:    typeRepo,
		requestRepo: requestRepo,
		directory:   directory,
		now:         time.Now,
	}
}

// ListTypes implements leave.LeaveService.
func (s *LeaveServiceImpl) ListTypes(ctx context.Context) ([]leave.LeaveTypeResponse, error) {
	types, err := s.typeRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave types: %w", err)
	}
	resp := make([]leave.LeaveTypeResponse, 0, len(types))
	for _, t := range types {
		resp = append(resp, leave.NewLeaveTypeResponse(t))
	}
	return resp, nil
}

// CreateType implements leave.LeaveService.
func (s *LeaveServiceImpl) CreateType(ctx context.Context, req leave.CreateLeaveTypeRequest) (leave.LeaveTypeResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveTypeResponse{}, err
	}
	created, err := s.typeRepo.Create(ctx, req.ToEntity())
	if err != nil {
		if errors.Is(err, leave.ErrLeaveTypeNameExists) {
			return leave.LeaveTypeResponse{}, err
		}
		return leave.LeaveTypeResponse{}, fmt.Errorf("failed to create leave type: %w", err)
	}
	slog.Info("Leave type created", "leave_type_id", created.ID, "name", created.Name)
	return leave.NewLeaveTypeResponse(created), nil
}

func (s *LeaveServiceImpl) views(ctx context.Context) ([]leave.RequestView, error) {
	dir, err := s.directory.Load(ctx)
	if err != nil {
		return nil, err
	}
	types, err := s.typeRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave types: %w", err)
	}
	requests, err := s.requestRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave requests: %w", err)
	}

	typeNames := make(map[string]string, len(types))
	for _, t := range types {
		typeNames[t.ID] = t.Name
	}
	views := make([]leave.RequestView, len(requests))
	for i, r := range requests {
		views[i] = leave.RequestView{LeaveRequest: r, TypeName: typeNames[r.LeaveTypeID]}
		if e, ok := dir.Employee(r.EmployeeID); ok {
			views[i].EmployeeName = e.FullName()
			views[i].EmployeeCode = e.EmployeeCode
		}
	}
	return views, nil
}

// ListRequests implements leave.LeaveService.
func (s *LeaveServiceImpl) ListRequests(ctx context.Context, req leave.ListLeaveRequestsRequest) (leave.ListLeaveRequestResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.ListLeaveRequestResponse{}, err
	}

	views, err := s.views(ctx)
	if err != nil {
		return leave.ListLeaveRequestResponse{}, err
	}

	result, summary := listquery.Run(views, req.Query())

	items := make([]leave.LeaveRequestResponse, 0, len(result.Items))
	for _, v := range result.Items {
		items = append(items, leave.NewLeaveRequestResponse(v))
	}
	return leave.ListLeaveRequestResponse{Items: items, Summary: summary, Meta: result.Meta()}, nil
}

// SubmitRequest implements leave.LeaveService.
func (s *LeaveServiceImpl) SubmitRequest(ctx context.Context, req leave.SubmitLeaveRequest) (leave.LeaveRequestResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	leaveType, err := s.typeRepo.GetByID(ctx, req.LeaveTypeID)
	if err != nil {
		if errors.Is(err, leave.ErrLeaveTypeNotFound) {
			return leave.LeaveRequestResponse{}, err
		}
		return leave.LeaveRequestResponse{}, fmt.Errorf("failed to get leave type: %w", err)
	}

	dir, err := s.directory.Load(ctx)
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}
	emp, ok := dir.Employee(req.EmployeeID)
	if !ok {
		return leave.LeaveRequestResponse{}, leave.ErrEmployeeNotFound
	}

	newRequest := req.ToEntity(s.now().UTC())
	if newRequest.Days() > leaveType.MaxDays {
		return leave.LeaveRequestResponse{}, leave.ErrExceedsMaxDays
	}

	existing, err := s.requestRepo.List(ctx)
	if err != nil {
		return leave.LeaveRequestResponse{}, fmt.Errorf("failed to list leave requests: %w", err)
	}
	for _, r := range existing {
		if r.EmployeeID != newRequest.EmployeeID || r.Status == leave.StatusRejected {
			continue
		}
		if !r.StartDate.After(newRequest.EndDate) && !newRequest.StartDate.After(r.EndDate) {
			return leave.LeaveRequestResponse{}, leave.ErrOverlappingRequest
		}
	}

	created, err := s.requestRepo.Create(ctx, newRequest)
	if err != nil {
		return leave.LeaveRequestResponse{}, fmt.Errorf("failed to create leave request: %w", err)
	}

	slog.Info("Leave request submitted", "leave_request_id", created.ID, "employee_id", created.EmployeeID, "days", created.Days())
	return leave.NewLeaveRequestResponse(leave.RequestView{
		LeaveRequest: created,
		EmployeeName: emp.FullName(),
		EmployeeCode: emp.EmployeeCode,
		TypeName:     leaveType.Name,
	}), nil
}

// ApproveRequest implements leave.LeaveService.
func (s *LeaveServiceImpl) ApproveRequest(ctx context.Context, id string) (leave.LeaveRequestResponse, error) {
	return s.decide(ctx, id, leave.StatusApproved)
}

// RejectRequest implements leave.LeaveService.
func (s *LeaveServiceImpl) RejectRequest(ctx context.Context, id string) (leave.LeaveRequestResponse, error) {
	return s.decide(ctx, id, leave.StatusRejected)
}

func (s *LeaveServiceImpl) decide(ctx context.Context, id string, status leave.Status) (leave.LeaveRequestResponse, error) {
	request, err := s.requestRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, leave.ErrLeaveRequestNotFound) {
			return leave.LeaveRequestResponse{}, err
		}
		return leave.LeaveRequestResponse{}, fmt.Errorf("failed to get leave request by ID: %w", err)
	}

	if request.Status != leave.StatusPending {
		return leave.LeaveRequestResponse{}, leave.ErrLeaveRequestAlreadyProcessed
	}

	decidedAt := s.now().UTC()
	if _, err := s.requestRepo.Decide(ctx, id, leave.Patch{Status: &status, DecidedAt: &decidedAt}); err != nil {
		if errors.Is(err, leave.ErrLeaveRequestAlreadyProcessed) || errors.Is(err, leave.ErrLeaveRequestNotFound) {
			return leave.LeaveRequestResponse{}, err
		}
		return leave.LeaveRequestResponse{}, fmt.Errorf("failed to update leave request: %w", err)
	}

	slog.Info("Leave request decided", "leave_request_id", id, "status", status)
	return s.respond(ctx, id)
}

// Dashboard implements leave.LeaveService.
func (s *LeaveServiceImpl) Dashboard(ctx context.Context) (leave.DashboardResponse, error) {
	views, err := s.views(ctx)
	if err != nil {
		return leave.DashboardResponse{}, err
	}

	summary := listquery.Summarize(views, leave.FacetFields)

	recent := slices.Clone(views)
	slices.SortStableFunc(recent, func(a, b leave.RequestView) int {
		return cmp.Compare(b.AppliedAt.UnixNano(), a.AppliedAt.UnixNano())
	})
	recent = recent[:min(len(recent), leave.RecentLimit)]

	resp := leave.DashboardResponse{
		Total:    summary.TotalCount,
		Pending:  summary.Count(leave.FieldStatus, string(leave.StatusPending)),
		Approved: summary.Count(leave.FieldStatus, string(leave.StatusApproved)),
		Rejected: summary.Count(leave.FieldStatus, string(leave.StatusRejected)),
		ByType:   summary.Counts[leave.FieldType],
		Recent:   make([]leave.LeaveRequestResponse, 0, len(recent)),
	}
	for _, v := range recent {
		resp.Recent = append(resp.Recent, leave.NewLeaveRequestResponse(v))
	}
	return resp, nil
}

func (s *LeaveServiceImpl) respond(ctx context.Context, id string) (leave.LeaveRequestResponse, error) {
	views, err := s.views(ctx)
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}
	i := slices.IndexFunc(views, func(v leave.RequestView) bool { return v.ID == id })
	if i < 0 {
		return leave.LeaveRequestResponse{}, leave.ErrLeaveRequestNotFound
	}
	return leave.NewLeaveRequestResponse(views[i]), nil
}
