package leave

// SubmitLeaveRequest is the submission body shared by every role surface.
type SubmitLeaveRequest struct {
	EmployeeCode string `json:"employeeCode" binding:"required"`
	FromDate     string `json:"fromDate" binding:"required"`
	ToDate       string `json:"toDate" binding:"required"`
	LeaveReason  string `json:"leaveReason" binding:"required"`
}

// ChangeStatusRequest carries an approval decision. Status is a closed
// enumeration; anything else is rejected at the binding layer instead of
// being silently treated as a rejection.
type ChangeStatusRequest struct {
	LeaveID string `json:"leaveId" binding:"required"`
	Status  string `json:"status" binding:"required,oneof=Approved Rejected"`
}

const DecisionApproved = "Approved"
