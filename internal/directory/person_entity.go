package directory

// Role names one of the five rosters.
type Role string

const (
	RoleEmployee  Role = "Employee"
	RoleManager   Role = "Manager"
	RoleHR        Role = "HR"
	RoleHRManager Role = "HR-Manager"
	RolePartner   Role = "Partner"
)

// DisplayName is the role label used in user-facing messages.
func (r Role) DisplayName() string {
	return string(r)
}

// Roster column headers, in sheet order.
var PersonHeaders = []string{
	"Employee Code",
	"Employee Name",
	"WhatsApp Number",
	"Email",
	"Designation",
	"Department",
	"Work Location",
	"Password",
}

// Person is one roster entry. Rosters are read-only at runtime; edits happen
// out of band in the source sheets. Password is the plaintext credential the
// rosters carry; login deliberately returns it unchanged.
type Person struct {
	Code         string `json:"employeeCode"`
	Name         string `json:"employeeName"`
	WhatsApp     string `json:"whatsappNumber"`
	Email        string `json:"email"`
	Designation  string `json:"designation"`
	Department   string `json:"department"`
	WorkLocation string `json:"workLocation"`
	Password     string `json:"password"`
}

func personFromRow(row map[string]string) Person {
	return Person{
		Code:         row["Employee Code"],
		Name:         row["Employee Name"],
		WhatsApp:     row["WhatsApp Number"],
		Email:        row["Email"],
		Designation:  row["Designation"],
		Department:   row["Department"],
		WorkLocation: row["Work Location"],
		Password:     row["Password"],
	}
}
