package models

type UserRole string
type UserStatus string
type TalentStatus string
type JobType string
type JobStatus string
type ApplicationStatus string
type ProjectStatus string
type PaymentStatus string

const (
	UserRoleCreator UserRole = "creator"
	UserRoleTalent  UserRole = "talent"

	UserStatusActive    UserStatus = "active"
	UserStatusSuspended UserStatus = "suspended"

	TalentStatusOneOff   TalentStatus = "one_off"
	TalentStatusLongTerm TalentStatus = "long_term"
	TalentStatusBoth     TalentStatus = "both"

	JobTypeOneOff   JobType = "one_off"
	JobTypeLongTerm JobType = "long_term"

	JobStatusOpen       JobStatus = "open"
	JobStatusInProgress JobStatus = "in_progress"
	JobStatusCompleted  JobStatus = "completed"
	JobStatusCancelled  JobStatus = "cancelled"

	ApplicationStatusPending   ApplicationStatus = "pending"
	ApplicationStatusAccepted  ApplicationStatus = "accepted"
	ApplicationStatusRejected  ApplicationStatus = "rejected"
	ApplicationStatusWithdrawn ApplicationStatus = "withdrawn"

	ProjectStatusActive    ProjectStatus = "active"
	ProjectStatusCompleted ProjectStatus = "completed"
	ProjectStatusCancelled ProjectStatus = "cancelled"

	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusInEscrow PaymentStatus = "in_escrow"
	PaymentStatusReleased PaymentStatus = "released"
	PaymentStatusRefunded PaymentStatus = "refunded"
)

func (r UserRole) IsValid() bool {
	switch r {
	case UserRoleCreator, UserRoleTalent:
		return true
	default:
		return false
	}
}

func (s TalentStatus) IsValid() bool {
	switch s {
	case TalentStatusOneOff, TalentStatusLongTerm, TalentStatusBoth:
		return true
	default:
		return false
	}
}

// OffersOneOff reports whether a per-job rate is meaningful for this status.
func (s TalentStatus) OffersOneOff() bool {
	return s == TalentStatusOneOff || s == TalentStatusBoth
}

func (t JobType) IsValid() bool {
	switch t {
	case JobTypeOneOff, JobTypeLongTerm:
		return true
	default:
		return false
	}
}
