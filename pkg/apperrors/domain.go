package apperrors

import (
	"net/http"
)

// =========================================================================
// Factories (wrap repository errors)
// =========================================================================

// ErrNotFound wraps a repository "not found" (e.g. gorm.ErrRecordNotFound).
func ErrNotFound(err error, domain string) *AppError {
	return Wrap(err, CodeNotFound, domain, "Resource not found", http.StatusNotFound)
}

// ErrConflict is the generic 409.
func ErrConflict(err error, domain, message string) *AppError {
	return Wrap(err, CodeConflict, domain, message, http.StatusConflict)
}

// ErrInvalidOperation is the generic 400 for operations that make no sense in the current state.
func ErrInvalidOperation(domain, message string) *AppError {
	return New(CodeInvalidOperation, domain, message, http.StatusBadRequest)
}

// =========================================================================
// Predefined errors
// =========================================================================

// --- Auth & registration ---

var ErrWeakPassword = New(
	CodeValidationFailed,
	"validation",
	"Password must be at least 8 characters long",
	http.StatusBadRequest,
)

var ErrEmailAlreadyExists = New(
	CodeAlreadyExists,
	"auth",
	"An account with this email already exists",
	http.StatusConflict,
)

var ErrInvalidCredentials = New(
	CodeInvalidCredentials,
	"auth",
	"Invalid email or password",
	http.StatusUnauthorized,
)

var ErrInvalidToken = New(
	CodeInvalidToken,
	"auth",
	"Invalid or expired token",
	http.StatusUnauthorized,
)

// ErrInvalidUserRole is returned when a role is neither creator nor talent,
// or when an operation is not available to the caller's role.
var ErrInvalidUserRole = New(
	CodeInvalidOperation,
	"business_logic",
	"Invalid user role for this operation",
	http.StatusBadRequest,
)

// ErrInvitationRequired guards talent self-registration.
var ErrInvitationRequired = New(
	CodeInviteRequired,
	"auth",
	"Talent registration is invite-only. Please contact us to get an invitation.",
	http.StatusForbidden,
)

var ErrTooManyAttempts = New(
	CodeLimitExceeded,
	"auth",
	"Too many sign-up attempts. Please try again later.",
	http.StatusTooManyRequests,
)

// --- Marketplace ---

var ErrUserNotFound = New(CodeNotFound, "user", "User not found", http.StatusNotFound)

var ErrJobNotFound = New(CodeNotFound, "job", "Job posting not found", http.StatusNotFound)

var ErrApplicationNotFound = New(CodeNotFound, "application", "Application not found", http.StatusNotFound)

var ErrProjectNotFound = New(CodeNotFound, "project", "Project not found", http.StatusNotFound)

var ErrJobNotOpen = New(
	CodeInvalidStatus,
	"job",
	"Job posting is not open for applications",
	http.StatusConflict,
)

var ErrAlreadyApplied = New(
	CodeAlreadyExists,
	"application",
	"You have already applied to this job",
	http.StatusConflict,
)

var ErrCannotApplyToOwnJob = New(
	CodeInvalidOperation,
	"application",
	"Cannot apply to your own job posting",
	http.StatusBadRequest,
)

var ErrInvalidStatusTransition = New(
	CodeInvalidStatus,
	"business_logic",
	"Status transition is not allowed",
	http.StatusConflict,
)

var ErrNotProjectParticipant = New(
	CodeForbidden,
	"project",
	"Only project participants can perform this action",
	http.StatusForbidden,
)

var ErrProjectNotCompleted = New(
	CodeInvalidStatus,
	"review",
	"Reviews can only be left on completed projects",
	http.StatusConflict,
)

var ErrReviewAlreadyExists = New(
	CodeAlreadyExists,
	"review",
	"You have already reviewed this project",
	http.StatusConflict,
)

var ErrInsufficientPermissions = New(
	CodeForbidden,
	"auth",
	"Insufficient permissions",
	http.StatusForbidden,
)

var ErrInvalidEmail = New(
	CodeValidationFailed,
	"validation",
	"Please enter a valid email address",
	http.StatusBadRequest,
)
