package department

import "time"

type Department struct {
	ID          string
	Name        string
	Head        string
	Description string
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

const (
	StatusActive   = "Active"
	StatusInactive = "Inactive"
)

var Statuses = []string{StatusActive, StatusInactive}

// Status renders IsActive as the facet value.
func (d Department) Status() string {
	if d.IsActive {
		return StatusActive
	}
	return StatusInactive
}
