package events

const (
	LeaveNotificationsTopic = "leave.notifications"

	LeaveNotificationRequestedEvent = "leave_notification_requested"
)

// LeaveNotificationRequested asks the notifier to deliver one templated
// WhatsApp message. Vars are keyed by template position ("1", "2", ...), the
// addressing the messaging gateway expects.
type LeaveNotificationRequested struct {
	LeaveID  string            `json:"leaveId"`
	Template string            `json:"template"`
	To       string            `json:"to"` // whatsapp:+<countrycode><number>
	Vars     map[string]string `json:"vars"`
}
