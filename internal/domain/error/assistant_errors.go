package error

import "errors"

// Assistant dispatch and resolution errors.
var (
	// ErrMalformedArguments is returned when tool-call arguments are not valid
	// structured data for the declared tool.
	ErrMalformedArguments = errors.New("malformed tool arguments")

	// ErrCalendarNotConnected is returned when a calendar tool is invoked
	// before the calendar has been authorized.
	ErrCalendarNotConnected = errors.New("calendar not connected")

	// ErrNoMatchingEvents is returned when event resolution finds nothing.
	ErrNoMatchingEvents = errors.New("no matching events")

	// ErrUpstreamUnavailable is returned when the calendar service or the
	// chat-completion service failed or timed out.
	ErrUpstreamUnavailable = errors.New("upstream service unavailable")

	// ErrNothingPending is returned when a confirm call arrives with no
	// pending action and no inline payload.
	ErrNothingPending = errors.New("nothing pending to confirm")
)

// AssistantErrorCode defines error codes for assistant errors.
// Format: AST-XXYYYY where XX is category and YYYY is specific error.
type AssistantErrorCode string

const (
	// Dispatch errors (01XXXX)
	ErrCodeMalformedArguments AssistantErrorCode = "AST-010001"
	ErrCodeNotConnected       AssistantErrorCode = "AST-010002"
	ErrCodeNoMatchingEvents   AssistantErrorCode = "AST-010003"
	ErrCodeNothingPending     AssistantErrorCode = "AST-010004"

	// Upstream errors (02XXXX)
	ErrCodeUpstreamUnavailable AssistantErrorCode = "AST-020001"
)

// AssistantError represents a dispatch or resolution error with a code.
type AssistantError struct {
	Code    AssistantErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *AssistantError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *AssistantError) Unwrap() error {
	return e.Err
}

// NewAssistantError creates a new AssistantError with the given code and message.
func NewAssistantError(code AssistantErrorCode, message string, err error) *AssistantError {
	return &AssistantError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
