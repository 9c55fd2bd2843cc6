package http

import (
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/hris-admin-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hris-admin-go/internal/handler/http/response"
)

type AttendanceHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	PunchIn(w http.ResponseWriter, r *http.Request)
	PunchOut(w http.ResponseWriter, r *http.Request)
	MarkManual(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &attendanceHandlerImpl{attendanceService: attendanceService}
}

// List implements AttendanceHandler.
func (h *attendanceHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	p := parseListParams(r)
	req := attendance.ListAttendanceRequest{
		Search:   p.search,
		Status:   p.facet(attendance.FieldStatus),
		Date:     p.facet(attendance.FieldDate),
		Employee: p.facet(attendance.FieldEmployee),
		Page:     p.page,
		Limit:    p.limit,
	}

	result, err := h.attendanceService.ListRecords(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.List(w, result, result.Meta)
}

// PunchIn implements AttendanceHandler.
func (h *attendanceHandlerImpl) PunchIn(w http.ResponseWriter, r *http.Request) {
	var req attendance.PunchInRequest
	if err := decodeJSON(r, &req); err != nil {
		slog.Error("PunchIn decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	employeeID, ok := actingEmployee(w, r, req.EmployeeID)
	if !ok {
		return
	}
	req.EmployeeID = employeeID

	record, err := h.attendanceService.PunchIn(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Punched in successfully", record)
}

// PunchOut implements AttendanceHandler.
func (h *attendanceHandlerImpl) PunchOut(w http.ResponseWriter, r *http.Request) {
	var req attendance.PunchOutRequest
	if err := decodeJSON(r, &req); err != nil {
		slog.Error("PunchOut decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	employeeID, ok := actingEmployee(w, r, req.EmployeeID)
	if !ok {
		return
	}
	req.EmployeeID = employeeID

	record, err := h.attendanceService.PunchOut(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Punched out successfully", record)
}

// MarkManual implements AttendanceHandler.
func (h *attendanceHandlerImpl) MarkManual(w http.ResponseWriter, r *http.Request) {
	var req attendance.ManualAttendanceRequest
	if err := decodeJSON(r, &req); err != nil {
		slog.Error("MarkManual decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	record, err := h.attendanceService.MarkManual(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Attendance recorded successfully", record)
}
