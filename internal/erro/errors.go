package erro

const ClassroomServiceUnavalaible = "Classroom-Service is unavailable"
const RequestTimedOut = "Request timed out"

const (
	ClientErrorType       = "Client"
	UnauthorizedErrorType = "Unauthorized"
	ForbiddenErrorType    = "Forbidden"
	NotFoundErrorType     = "NotFound"
	ConflictErrorType     = "Conflict"
	ServerErrorType       = "Server"
)
const ErrorType = "type"
const ErrorMessage = "message"

const (
	ErrorInvalidDataReq          = "Invalid data in request's body"
	ErrorInvalidDinamicParameter = "Invalid dinamic parameter"
	ErrorInvalidQueryParameter   = "Invalid query parameter"
	ErrorReadAll                 = "ReadAll error"
	ErrorRequiredUserID          = "UserID in request is required!"
	ErrorInvalidUserIDFormat     = "Invalid userID format in request"
	ErrorTooManyRequests         = "Too Many Requests"
	ErrorRouteNotFound           = "Route not found"
	ErrorMethodNotAllowed        = "Method not allowed"
	ErrorMissingField            = "%s is required"
	ErrorInvalidField            = "%s has invalid format"
	ErrorInvalidTimeRange        = "start_time must be before end_time"
	ErrorSameParticipant         = "Instructor and student must be different users"
	ErrorNotMember               = "You are not a member of this organization"
	ErrorNotPrivileged           = "Your role in this organization does not allow this action"
	ErrorInstructorNotMember     = "Instructor is not a member of this organization"
	ErrorStudentNotMember        = "Student is not a member of this organization"
	ErrorNotParticipant          = "Only the instructor or the student of this session can do that"
	ErrorSessionNotFound         = "Session not found"
	ErrorMembershipNotFound      = "Membership not found"
	ErrorInstructorNotAvailable  = "Instructor not available"
	ErrorBookingInProgress       = "Another booking for this instructor is in progress, try again"
	ErrorUnknownParticipant      = "Unknown organization, instructor or student"
	ErrorAfterReqSessions        = "Error after request into classroom_sessions: %v"
	ErrorAfterReqMembers         = "Error after request into organization_members: %v"
	ErrorScan                    = "Scan error: %v"
	ErrorSetMembership           = "Set membership-cache error: %v"
	ErrorGetMembership           = "Get membership-cache error: %v"
	ErrorSetLock                 = "Set booking-lock error: %v"
	ErrorDelLock                 = "Del booking-lock error: %v"
	ErrorMarshal                 = "Data marshal error: %v"
	ErrorUnmarshal               = "Data unmarshal error: %v"
	ErrorOverflowTaskQ           = "Notification task queue is full"
	ErrorContextCanceled         = "Context canceled"
	ErrorPublish                 = "Publish session event error: %v"
	ErrorSendEmail               = "Send email error: %v"
	ErrorRenderEmail             = "Render email error: %v"
)

type CustomError struct {
	Message string `json:"message"`
	Type    string `json:"type"`
}

func (e *CustomError) Error() string {
	return e.Type + ": " + e.Message
}

func ServerError(reason string) *CustomError {
	return &CustomError{Message: reason, Type: ServerErrorType}
}
func ClientError(reason string) *CustomError {
	return &CustomError{Message: reason, Type: ClientErrorType}
}
func UnauthorizedError(reason string) *CustomError {
	return &CustomError{Message: reason, Type: UnauthorizedErrorType}
}
func ForbiddenError(reason string) *CustomError {
	return &CustomError{Message: reason, Type: ForbiddenErrorType}
}
func NotFoundError(reason string) *CustomError {
	return &CustomError{Message: reason, Type: NotFoundErrorType}
}
func ConflictError(reason string) *CustomError {
	return &CustomError{Message: reason, Type: ConflictErrorType}
}
