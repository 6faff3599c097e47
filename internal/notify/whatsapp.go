package notify

import (
	"strings"
	"unicode"
)

// Template keys, a fixed closed set. Each maps to a Twilio content SID via
// configuration.
const (
	TemplateNewLeaveRequest    = "new_leave_request"
	TemplateManagerApproval    = "manager_approval"
	TemplateManagerRejection   = "manager_rejection"
	TemplateHRApprovalHRLeave  = "hr_approval_hr_leave"
	TemplateHRRejectionHRLeave = "hr_rejection_hr_leave"
	TemplateHRApprovalRegular  = "hr_approval_regular"
	TemplateHRRejectionRegular = "hr_rejection_regular"
	TemplatePartnerApproval    = "partner_approval"
	TemplatePartnerRejection   = "partner_rejection"
	TemplateHRLeaveSubmission  = "hr_leave_submission"
)

// TemplateKeys lists every known template key.
var TemplateKeys = []string{
	TemplateNewLeaveRequest,
	TemplateManagerApproval,
	TemplateManagerRejection,
	TemplateHRApprovalHRLeave,
	TemplateHRRejectionHRLeave,
	TemplateHRApprovalRegular,
	TemplateHRRejectionRegular,
	TemplatePartnerApproval,
	TemplatePartnerRejection,
	TemplateHRLeaveSubmission,
}

// FormatWhatsAppNumber normalizes a raw contact to the gateway's
// "whatsapp:+<countrycode><number>" form. Numbers without a country code are
// assumed Indian (+91). Returns "" when the input is empty.
func FormatWhatsAppNumber(raw string) string {
	if raw == "" {
		return ""
	}

	var b strings.Builder
	for _, r := range raw {
		if unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	cleaned := b.String()

	switch {
	case strings.HasPrefix(cleaned, "0"):
		return "whatsapp:+91" + cleaned[1:]
	case len(cleaned) == 10:
		return "whatsapp:+91" + cleaned
	case strings.HasPrefix(cleaned, "91") && len(cleaned) == 12:
		return "whatsapp:+" + cleaned
	case strings.HasPrefix(raw, "+91"):
		return "whatsapp:" + raw
	default:
		return "whatsapp:+" + cleaned
	}
}
