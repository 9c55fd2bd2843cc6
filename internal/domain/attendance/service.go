package attendance

import (
	"context"
	"time"
)

type AttendanceService interface {
	ListRecords(ctx context.Context, req ListAttendanceRequest) (ListAttendanceResponse, error)
	PunchIn(ctx context.Context, req PunchInRequest) (RecordResponse, error)
	PunchOut(ctx context.Context, req PunchOutRequest) (RecordResponse, error)
	// MarkManual replaces any record the employee has for the date.
	MarkManual(ctx context.Context, req ManualAttendanceRequest) (RecordResponse, error)
	// MarkAbsentees records Absent for active employees without a record on day.
	MarkAbsentees(ctx context.Context, day time.Time) (int, error)
}
