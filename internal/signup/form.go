package signup

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"time"

	"creatorcrewz/internal/logger"
	"creatorcrewz/pkg/apperrors"
)

var (
	ErrInvalidRole          = errors.New("signup: role must be creator or talent")
	ErrRoleAlreadySelected  = errors.New("signup: role already selected")
	ErrSubmissionInProgress = errors.New("signup: submission already in progress")
)

const (
	SubmitLabelIdle    = "Create account"
	SubmitLabelPending = "Creating account..."

	genericErrorMessage = "Something went wrong while creating your account. Please try again."
)

// Credentials are handed to the AccountCreator on submit.
type Credentials struct {
	Email    string
	Password string
	Role     Role
}

// Session is the authenticated handle returned by a successful account creation.
type Session struct {
	UserID    string
	Token     string
	Role      Role
	ExpiresAt time.Time
}

// AccountCreator creates an account and signs it in.
type AccountCreator interface {
	CreateAccount(ctx context.Context, cred Credentials) (*Session, error)
}

type AccountCreatorFunc func(ctx context.Context, cred Credentials) (*Session, error)

func (f AccountCreatorFunc) CreateAccount(ctx context.Context, cred Credentials) (*Session, error) {
	return f(ctx, cred)
}

type SubmitResult int

const (
	// SubmitIgnored: no role selected, nothing happened.
	SubmitIgnored SubmitResult = iota
	// SubmitBlocked: the role is invite-only.
	SubmitBlocked
	// SubmitInFlight: a previous submission has not finished yet.
	SubmitInFlight
	SubmitFailed
	SubmitSucceeded
)

func (r SubmitResult) String() string {
	switch r {
	case SubmitIgnored:
		return "ignored"
	case SubmitBlocked:
		return "blocked"
	case SubmitInFlight:
		return "in_flight"
	case SubmitFailed:
		return "failed"
	case SubmitSucceeded:
		return "succeeded"
	default:
		return "unknown"
	}
}

// FormView is a point-in-time copy of what the sign-up page renders.
// The password is intentionally not part of it.
type FormView struct {
	Stage            Stage
	Role             Role
	RoleName         string
	Email            string
	Submitting       bool
	SubmitEnabled    bool
	SubmitLabel      string
	ShowInviteNotice bool
	Error            string
}

// Form is the two-stage sign-up form: pick a role, then enter credentials.
type Form struct {
	mu         sync.Mutex
	role       Role
	email      string
	password   string
	submitting bool
	lastError  string
	session    *Session
}

// NewForm starts on the credentials step when hint names a role, otherwise on role choice.
func NewForm(hint string) *Form {
	return &Form{role: ParseRoleHint(hint)}
}

func (f *Form) Stage() Stage {
	f.mu.Lock()
	defer f.mu.Unlock()
	return stageFor(f.role)
}

func (f *Form) Role() Role {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.role
}

func (f *Form) Email() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.email
}

func (f *Form) Password() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.password
}

func (f *Form) IsSubmitting() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.submitting
}

// Error is the last account-creation failure message, empty when none.
func (f *Form) Error() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.lastError
}

// Session returns the session from the last successful submit, or nil.
func (f *Form) Session() *Session {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.session == nil {
		return nil
	}
	s := *f.session
	return &s
}

// SelectRole moves from role choice to the credentials step.
func (f *Form) SelectRole(r Role) error {
	if !r.Selected() {
		return ErrInvalidRole
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	if stageFor(f.role) != StageChoosingRole {
		return ErrRoleAlreadySelected
	}
	f.role = r
	return nil
}

// ChangeRole goes back to role choice. Typed email and password are kept.
func (f *Form) ChangeRole() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.role = RoleUnselected
}

func (f *Form) SetEmail(email string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.email = email
}

func (f *Form) SetPassword(password string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.password = password
}

func (f *Form) SubmitEnabled() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.submitEnabledLocked()
}

func (f *Form) submitEnabledLocked() bool {
	if f.submitting {
		return false
	}
	switch f.role {
	case RoleCreator:
		return true
	case RoleUnselected, RoleTalent:
		return false
	default:
		return false
	}
}

func (f *Form) ShowInviteNotice() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.role.InviteOnly()
}

func (f *Form) SubmitLabel() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return submitLabel(f.submitting)
}

func submitLabel(submitting bool) string {
	if submitting {
		return SubmitLabelPending
	}
	return SubmitLabelIdle
}

func (f *Form) DismissError() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lastError = ""
}

// Reject shows err on the form without reaching the collaborator, for
// submissions refused before Submit runs.
func (f *Form) Reject(err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lastError = UserMessage(err)
}

func (f *Form) Snapshot() FormView {
	f.mu.Lock()
	defer f.mu.Unlock()

	return FormView{
		Stage:            stageFor(f.role),
		Role:             f.role,
		RoleName:         f.role.DisplayName(),
		Email:            f.email,
		Submitting:       f.submitting,
		SubmitEnabled:    f.submitEnabledLocked(),
		SubmitLabel:      submitLabel(f.submitting),
		ShowInviteNotice: f.role.InviteOnly(),
		Error:            f.lastError,
	}
}

// Submit hands the credentials to creator. The lock is not held during the call,
// the submitting flag keeps a second Submit from reaching creator meanwhile.
func (f *Form) Submit(ctx context.Context, creator AccountCreator) (SubmitResult, error) {
	f.mu.Lock()
	switch f.role {
	case RoleUnselected:
		f.mu.Unlock()
		return SubmitIgnored, nil
	case RoleTalent:
		f.mu.Unlock()
		return SubmitBlocked, nil
	case RoleCreator:
	default:
		f.mu.Unlock()
		return SubmitIgnored, nil
	}
	if f.submitting {
		f.mu.Unlock()
		return SubmitInFlight, ErrSubmissionInProgress
	}

	f.submitting = true
	cred := Credentials{Email: f.email, Password: f.password, Role: f.role}
	f.mu.Unlock()

	session, err := f.create(ctx, creator, cred)

	f.mu.Lock()
	defer f.mu.Unlock()
	f.submitting = false

	if err != nil {
		f.lastError = UserMessage(err)
		logger.CtxWarn(ctx, "Account creation failed", "role", cred.Role.String(), "error", err)
		return SubmitFailed, err
	}

	f.session = session
	f.lastError = ""
	return SubmitSucceeded, nil
}

// create shields the form from a panicking or misbehaving collaborator.
func (f *Form) create(ctx context.Context, creator AccountCreator, cred Credentials) (session *Session, err error) {
	defer func() {
		if r := recover(); r != nil {
			logger.CtxError(ctx, "Account creator panicked", "panic", r)
			session, err = nil, apperrors.InternalError(nil)
		}
	}()

	session, err = creator.CreateAccount(ctx, cred)
	if err == nil && session == nil {
		err = apperrors.InternalError(errors.New("account creator returned no session"))
	}
	return session, err
}

// UserMessage turns an account-creation error into text safe to show on the form.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	if appErr, ok := apperrors.AsAppError(err); ok && appErr.HTTPCode < http.StatusInternalServerError && appErr.Message != "" {
		return appErr.Message
	}
	return genericErrorMessage
}
