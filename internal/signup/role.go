package signup

// Role is the account type picked on the sign-up form.
type Role int

const (
	RoleUnselected Role = iota
	RoleCreator
	RoleTalent
)

// ParseRoleHint maps the role query parameter to a Role.
// Only exact "creator" and "talent" preselect a role.
func ParseRoleHint(hint string) Role {
	switch hint {
	case "creator":
		return RoleCreator
	case "talent":
		return RoleTalent
	default:
		return RoleUnselected
	}
}

func (r Role) String() string {
	switch r {
	case RoleUnselected:
		return ""
	case RoleCreator:
		return "creator"
	case RoleTalent:
		return "talent"
	default:
		return ""
	}
}

// DisplayName is the label shown in "Sign up as ...".
func (r Role) DisplayName() string {
	switch r {
	case RoleUnselected:
		return ""
	case RoleCreator:
		return "Content Creator"
	case RoleTalent:
		return "Talent"
	default:
		return ""
	}
}

// InviteOnly reports whether self-service registration is closed for the role.
func (r Role) InviteOnly() bool {
	switch r {
	case RoleUnselected, RoleCreator:
		return false
	case RoleTalent:
		return true
	default:
		return false
	}
}

// Selected reports whether r is Creator or Talent.
func (r Role) Selected() bool {
	switch r {
	case RoleCreator, RoleTalent:
		return true
	case RoleUnselected:
		return false
	default:
		return false
	}
}

// Stage is the step of the form currently shown.
type Stage int

const (
	StageChoosingRole Stage = iota
	StageEnteringCredentials
)

func (s Stage) String() string {
	switch s {
	case StageChoosingRole:
		return "choosing_role"
	case StageEnteringCredentials:
		return "entering_credentials"
	default:
		return "unknown"
	}
}

func stageFor(r Role) Stage {
	if r.Selected() {
		return StageEnteringCredentials
	}
	return StageChoosingRole
}
