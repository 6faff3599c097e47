package leave

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Origin tells which approval chain a record belongs to. Employee-originated
// records go Manager then HR; staff records (Manager/HR/HR-Manager submitters)
// go Partner then HR.
type Origin string

const (
	OriginEmployee Origin = "employee"
	OriginStaff    Origin = "staff"
)

const (
	StatusPending         = "Pending"
	StatusManagerApproved = "Manager Approved"
	StatusManagerRejected = "Manager Rejected"
	StatusPartnerApproved = "Partner Approved"
	StatusPartnerRejected = "Partner Rejected"
	StatusHRApproved      = "HR Approved"
	StatusHRRejected      = "HR Rejected"
)

// Ledger column headers, in sheet order. The staff ledger has no manager code
// column; everything else is shared.
var (
	EmployeeLeaveHeaders = []string{
		"Leave ID",
		"Role",
		"Employee Code",
		"Employee Name",
		"WhatsApp Number",
		"Email",
		"Designation",
		"Department",
		"Work Location",
		"From Date",
		"To Date",
		"Leave Reason",
		"Manager Employee Code",
		"Status",
		"Submission Date",
		"Last Updated",
	}

	StaffLeaveHeaders = []string{
		"Leave ID",
		"Role",
		"Employee Code",
		"Employee Name",
		"WhatsApp Number",
		"Email",
		"Designation",
		"Department",
		"Work Location",
		"From Date",
		"To Date",
		"Leave Reason",
		"Status",
		"Submission Date",
		"Last Updated",
	}
)

// Record is one leave application. ID is immutable once generated; only
// Status and LastUpdated change after creation. Dates are YYYY-MM-DD.
type Record struct {
	ID             string `json:"leaveId"`
	Role           string `json:"role"` // submitter role literal: Employee|Manager|HR
	Code           string `json:"employeeCode"`
	Name           string `json:"employeeName"`
	WhatsApp       string `json:"whatsappNumber"`
	Email          string `json:"email"`
	Designation    string `json:"designation"`
	Department     string `json:"department"`
	WorkLocation   string `json:"workLocation"`
	FromDate       string `json:"fromDate"`
	ToDate         string `json:"toDate"`
	Reason         string `json:"leaveReason"`
	ManagerCode    string `json:"managerEmployeeCode,omitempty"` // employee-origin only
	Status         string `json:"status"`
	SubmissionDate string `json:"submissionDate"`
	LastUpdated    string `json:"lastUpdated"`
}

// GenerateLeaveID builds a timestamp-plus-random id like LV-1717430400000-9F3A.
// Uniqueness is probabilistic, which is acceptable: ids are only ever matched
// exactly, never looked up by range.
func GenerateLeaveID() string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))[:4]
	return fmt.Sprintf("LV-%d-%s", time.Now().UnixMilli(), suffix)
}

func recordToRow(rec Record) map[string]string {
	return map[string]string{
		"Leave ID":              rec.ID,
		"Role":                  rec.Role,
		"Employee Code":         rec.Code,
		"Employee Name":         rec.Name,
		"WhatsApp Number":       rec.WhatsApp,
		"Email":                 rec.Email,
		"Designation":           rec.Designation,
		"Department":            rec.Department,
		"Work Location":         rec.WorkLocation,
		"From Date":             rec.FromDate,
		"To Date":               rec.ToDate,
		"Leave Reason":          rec.Reason,
		"Manager Employee Code": rec.ManagerCode,
		"Status":                rec.Status,
		"Submission Date":       rec.SubmissionDate,
		"Last Updated":          rec.LastUpdated,
	}
}

func recordFromRow(row map[string]string) Record {
	return Record{
		ID:             row["Leave ID"],
		Role:           row["Role"],
		Code:           row["Employee Code"],
		Name:           row["Employee Name"],
		WhatsApp:       row["WhatsApp Number"],
		Email:          row["Email"],
		Designation:    row["Designation"],
		Department:     row["Department"],
		WorkLocation:   row["Work Location"],
		FromDate:       row["From Date"],
		ToDate:         row["To Date"],
		Reason:         row["Leave Reason"],
		ManagerCode:    row["Manager Employee Code"],
		Status:         row["Status"],
		SubmissionDate: row["Submission Date"],
		LastUpdated:    row["Last Updated"],
	}
}
