package dashboard

type DashboardResponse struct {
	TotalEmployees      int                   `json:"total_employees"`
	PresentToday        int                   `json:"present_today"`
	OnLeaveToday        int                   `json:"on_leave_today"`
	PendingApprovals    int                   `json:"pending_approvals"`
	TotalDepartments    int                   `json:"total_departments"`
	NewJoinersThisMonth int                   `json:"new_joiners_this_month"`
	Departments         []DepartmentHeadcount `json:"departments"`
}

type DepartmentHeadcount struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Headcount int    `json:"headcount"`
}
