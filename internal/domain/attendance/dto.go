package attendance

import (
	"strings"
	"time"

	"github.com/cmlabs-hris/hris-admin-go/internal/pkg/listquery"
	"github.com/cmlabs-hris/hris-admin-go/internal/pkg/validator"
)

const (
	DefaultPageSize = 10
	DefaultLocation = "Mumbai Port"
	clockLayout     = "15:04"
)

type PunchInRequest struct {
	EmployeeID string `json:"employee_id" validate:"required"`
	Location   string `json:"location" validate:"max=100"`
}

func (r *PunchInRequest) Validate() error {
	errs := validator.ValidateStruct(r)
	return errs.Err()
}

type PunchOutRequest struct {
	EmployeeID string `json:"employee_id" validate:"required"`
}

func (r *PunchOutRequest) Validate() error {
	errs := validator.ValidateStruct(r)
	return errs.Err()
}

type ManualAttendanceRequest struct {
	EmployeeID string `json:"employee_id" validate:"required"`
	Date       string `json:"date" validate:"required"`
	PunchIn    string `json:"punch_in"`
	PunchOut   string `json:"punch_out"`
	Status     string `json:"status"`
	Location   string `json:"location" validate:"max=100"`
}

func (r *ManualAttendanceRequest) Validate() error {
	errs := validator.ValidateStruct(r)

	if r.Status != "" {
		validator.CheckOneOf(&errs, "status", []string{r.Status}, Statuses)
	}
	if r.Date != "" {
		if _, ok := validator.IsValidDate(r.Date); !ok {
			errs.Add("date", "date must be YYYY-MM-DD")
		}
	}
	in, okIn := parseClock(r.PunchIn)
	if r.PunchIn != "" && !okIn {
		errs.Add("punch_in", "punch_in must be HH:MM")
	}
	out, okOut := parseClock(r.PunchOut)
	if r.PunchOut != "" && !okOut {
		errs.Add("punch_out", "punch_out must be HH:MM")
	}
	if okIn && okOut && !out.After(in) {
		errs.Add("punch_out", ErrInvalidTimeRange.Error())
	}
	if r.PunchOut != "" && r.PunchIn == "" {
		errs.Add("punch_in", "punch_in is required with punch_out")
	}
	if r.Status == "" && (r.PunchIn == "" || r.PunchOut == "") {
		errs.Add("status", "status is required unless punch_in and punch_out are given")
	}

	return errs.Err()
}

// ToEntity converts a validated request. Without an explicit status the
// worked hours decide it.
func (r *ManualAttendanceRequest) ToEntity() Record {
	day, _ := validator.IsValidDate(r.Date)
	rec := Record{
		EmployeeID: r.EmployeeID,
		Date:       Day(day),
		Status:     Status(r.Status),
		Location:   strings.TrimSpace(r.Location),
		Manual:     true,
	}
	if in, ok := parseClock(r.PunchIn); ok {
		at := onDay(rec.Date, in)
		rec.PunchIn = &at
	}
	if out, ok := parseClock(r.PunchOut); ok {
		at := onDay(rec.Date, out)
		rec.PunchOut = &at
	}
	if rec.PunchIn != nil && rec.PunchOut != nil {
		rec.TotalHours, rec.Overtime = Worked(*rec.PunchIn, *rec.PunchOut)
		if rec.Status == "" {
			rec.Status = Classify(rec.TotalHours)
		}
	}
	return rec
}

func parseClock(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	t, err := time.Parse(clockLayout, s)
	return t, err == nil
}

func onDay(day, clock time.Time) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(), clock.Hour(), clock.Minute(), 0, 0, time.UTC)
}

// Patch holds the fields of an update; nil fields are left untouched.
type Patch struct {
	PunchOut   *time.Time
	TotalHours *float64
	Overtime   *float64
	Status     *Status
}

func (p Patch) Apply(r *Record) {
	if p.PunchOut != nil {
		out := *p.PunchOut
		r.PunchOut = &out
	}
	if p.TotalHours != nil {
		r.TotalHours = *p.TotalHours
	}
	if p.Overtime != nil {
		r.Overtime = *p.Overtime
	}
	if p.Status != nil {
		r.Status = *p.Status
	}
}

type ListAttendanceRequest struct {
	Search   string
	Status   []string
	Date     []string
	Employee []string
	Page     int
	Limit    int
}

func (r *ListAttendanceRequest) Validate() error {
	var errs validator.ValidationErrors
	validator.CheckOneOf(&errs, FieldStatus, r.Status, Statuses)
	validator.CheckNotBlank(&errs, FieldEmployee, r.Employee)
	for _, d := range r.Date {
		if _, ok := validator.IsValidDate(d); !ok {
			errs.Add(FieldDate, "'"+d+"' is not a YYYY-MM-DD date")
			break
		}
	}
	return errs.Err()
}

func (r *ListAttendanceRequest) Query() listquery.Query {
	limit := r.Limit
	if limit == 0 {
		limit = DefaultPageSize
	}
	return listquery.Query{
		Search: r.Search,
		Fields: SearchFields,
		Facets: listquery.Facets{
			FieldStatus:   r.Status,
			FieldDate:     r.Date,
			FieldEmployee: r.Employee,
		},
		Page: listquery.Page{Number: r.Page, Size: limit},
		// Per-day and per-employee counts are not shown as filter options.
		SummaryFacets: []string{FieldStatus},
	}
}

type RecordResponse struct {
	ID           string  `json:"id"`
	EmployeeID   string  `json:"employee_id"`
	EmployeeName string  `json:"employee_name"`
	EmployeeCode string  `json:"employee_code"`
	Date         string  `json:"date"`
	PunchIn      *string `json:"punch_in,omitempty"`
	PunchOut     *string `json:"punch_out,omitempty"`
	TotalHours   float64 `json:"total_hours"`
	Overtime     float64 `json:"overtime"`
	Status       string  `json:"status"`
	Location     string  `json:"location,omitempty"`
	Manual       bool    `json:"manual"`
}

func NewRecordResponse(v View) RecordResponse {
	resp := RecordResponse{
		ID:           v.ID,
		EmployeeID:   v.EmployeeID,
		EmployeeName: v.EmployeeName,
		EmployeeCode: v.EmployeeCode,
		Date:         v.Date.Format(time.DateOnly),
		TotalHours:   v.TotalHours,
		Overtime:     v.Overtime,
		Status:       string(v.Status),
		Location:     v.Location,
		Manual:       v.Manual,
	}
	if v.PunchIn != nil {
		in := v.PunchIn.Format(clockLayout)
		resp.PunchIn = &in
	}
	if v.PunchOut != nil {
		out := v.PunchOut.Format(clockLayout)
		resp.PunchOut = &out
	}
	return resp
}

type ListAttendanceResponse struct {
	Items   []RecordResponse  `json:"items"`
	Summary listquery.Summary `json:"summary"`
	Meta    listquery.Meta    `json:"-"`
}
