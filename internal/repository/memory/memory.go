package memory

import (
	"context"
	"sync"

	"github.com/cmlabs-hris/hris-admin-go/internal/fixtures"
	"github.com/cmlabs-hris/hris-admin-go/internal/repository"
)

// New builds every repository seeded from set.
func New(set *fixtures.Set) repository.Repositories {
	return repository.Repositories{
		Employees:     NewEmployeeRepository(set.Employees),
		Departments:   NewDepartmentRepository(set.Departments),
		Designations:  NewDesignationRepository(set.Designations),
		LeaveTypes:    NewLeaveTypeRepository(set.LeaveTypes),
		LeaveRequests: NewLeaveRequestRepository(set.LeaveRequests),
		Payroll:       NewPayrollRepository(set.Payroll),
		Attendance:    NewAttendanceRepository(set.Attendance),
		Users:         NewUserRepository(set.Users),
		Tx:            &transactor{},
	}
}

// transactor serializes transactional blocks. Stores have no rollback, so a
// failing fn leaves its earlier writes in place.
type transactor struct {
	mu sync.Mutex
}

func (t *transactor) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	return fn(ctx)
}
