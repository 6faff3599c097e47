package apperror

const (
	// Client errors (4xx)
	CodeInvalidInput   = "INVALID_INPUT"
	CodeNotFound       = "NOT_FOUND"
	CodeAlreadyPending = "ALREADY_PENDING"
	CodeInvalidState   = "INVALID_STATE"

	// Server errors (5xx)
	// CodeRosterGap marks approver-resolution failures caused by roster data,
	// not by user input.
	CodeRosterGap     = "ROSTER_GAP"
	CodeInternalError = "INTERNAL_ERROR"
)
