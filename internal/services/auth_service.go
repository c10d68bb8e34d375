package services

import (
	"context"
	"errors"
	"time"

	"creatorcrewz/internal/auth"
	"creatorcrewz/internal/logger"
	"creatorcrewz/internal/models"
	"creatorcrewz/internal/repositories"
	"creatorcrewz/internal/services/dto"
	"creatorcrewz/internal/signup"
	"creatorcrewz/internal/validator"
	"creatorcrewz/pkg/apperrors"

	"gorm.io/gorm"
)

// WelcomeMailer sends the post-registration email.
type WelcomeMailer interface {
	SendWelcome(user *models.User) error
}

type AuthService interface {
	Register(db *gorm.DB, req *dto.RegisterRequest) (*dto.AuthResponse, error)
	Login(db *gorm.DB, req *dto.LoginRequest) (*dto.AuthResponse, error)
}

type authService struct {
	userRepo    repositories.UserRepository
	profileRepo repositories.ProfileRepository
	invitations InvitationService
	tokens      *auth.TokenManager
	mailer      WelcomeMailer
	validator   *validator.Validator
	now         func() time.Time
	tx          txFunc
}

func NewAuthService(
	userRepo repositories.UserRepository,
	profileRepo repositories.ProfileRepository,
	invitations InvitationService,
	tokens *auth.TokenManager,
	mailer WelcomeMailer,
	v *validator.Validator,
) AuthService {
	return &authService{
		userRepo:    userRepo,
		profileRepo: profileRepo,
		invitations: invitations,
		tokens:      tokens,
		mailer:      mailer,
		validator:   v,
		now:         time.Now,
		tx:          gormTransaction,
	}
}

// Register creates the user and its role profile in one transaction and signs it in.
// Talent accounts need a valid invitation for the same email.
func (s *authService) Register(db *gorm.DB, req *dto.RegisterRequest) (*dto.AuthResponse, error) {
	req.Email = normalizeEmail(req.Email)

	if err := s.validateRegisterRequest(req); err != nil {
		return nil, err
	}
	if req.Role == models.UserRoleTalent && req.InviteCode == "" {
		return nil, apperrors.ErrInvitationRequired
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	user := &models.User{
		Email:        req.Email,
		PasswordHash: hash,
		Role:         req.Role,
		Status:       models.UserStatusActive,
	}

	err = s.tx(db, func(tx *gorm.DB) error {
		if err := s.userRepo.Create(tx, user); err != nil {
			if errors.Is(err, repositories.ErrUserAlreadyExists) {
				return apperrors.ErrEmailAlreadyExists
			}
			return apperrors.InternalError(err)
		}
		return s.createProfile(tx, user, req)
	})
	if err != nil {
		return nil, err
	}

	logger.Info("User registered", "user_id", user.ID, "role", user.Role)
	s.sendWelcome(user)

	return s.issueToken(user)
}

func (s *authService) Login(db *gorm.DB, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := s.userRepo.FindByEmail(db, normalizeEmail(req.Email))
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.InternalError(err)
	}

	if !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}
	if user.Status != models.UserStatusActive {
		return nil, apperrors.NewForbiddenError("Account is suspended")
	}

	if err := s.userRepo.UpdateLastLogin(db, user.ID, s.now()); err != nil {
		logger.Warn("Failed to update last login", "user_id", user.ID, "error", err)
	}

	return s.issueToken(user)
}

func (s *authService) validateRegisterRequest(req *dto.RegisterRequest) error {
	if err := auth.ValidatePassword(req.Password); err != nil {
		return apperrors.ErrWeakPassword
	}
	if !req.Role.IsValid() {
		return apperrors.ErrInvalidUserRole
	}

	err := s.validator.Validate(req)
	if err == nil {
		return nil
	}

	var vErr *validator.ValidationError
	if !errors.As(err, &vErr) {
		return apperrors.InternalError(err)
	}
	if _, ok := vErr.Errors["email"]; ok {
		return apperrors.ErrInvalidEmail
	}
	return apperrors.ValidationError(vErr.Errors)
}

func (s *authService) createProfile(tx *gorm.DB, user *models.User, req *dto.RegisterRequest) error {
	switch user.Role {
	case models.UserRoleCreator:
		profile := &models.CreatorProfile{UserID: user.ID}
		if req.CompanyName != "" {
			name := req.CompanyName
			profile.CompanyName = &name
		}
		if err := s.profileRepo.CreateCreatorProfile(tx, profile); err != nil {
			return apperrors.InternalError(err)
		}
		return nil

	case models.UserRoleTalent:
		if err := s.invitations.Redeem(tx, user.Email, req.InviteCode, user.ID); err != nil {
			return err
		}
		status := req.TalentStatus
		if status == "" {
			status = models.TalentStatusOneOff
		}
		profile := &models.TalentProfile{
			UserID:    user.ID,
			Status:    status,
			IsInvited: true,
		}
		if err := s.profileRepo.CreateTalentProfile(tx, profile); err != nil {
			return handleRepoError(err)
		}
		return nil

	default:
		return apperrors.ErrInvalidUserRole
	}
}

func (s *authService) issueToken(user *models.User) (*dto.AuthResponse, error) {
	token, expiresAt, err := s.tokens.GenerateToken(user.ID, string(user.Role), user.Email)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return &dto.AuthResponse{
		AccessToken: token,
		ExpiresAt:   expiresAt,
		User:        dto.NewUserDTO(user),
	}, nil
}

// sendWelcome runs in the background; a failed email never fails registration.
func (s *authService) sendWelcome(user *models.User) {
	if s.mailer == nil {
		return
	}
	u := *user
	go func() {
		if err := s.mailer.SendWelcome(&u); err != nil {
			logger.Error("Failed to send welcome email", "user_id", u.ID, "error", err)
		}
	}()
}

// ============================================
// Sign-up form adapter
// ============================================

// AccountCreatorFor lets the sign-up form create accounts through svc.
func AccountCreatorFor(svc AuthService, db *gorm.DB) signup.AccountCreator {
	return signup.AccountCreatorFunc(func(ctx context.Context, cred signup.Credentials) (*signup.Session, error) {
		role, err := userRoleFor(cred.Role)
		if err != nil {
			return nil, err
		}

		conn := db
		if conn != nil {
			conn = conn.WithContext(ctx)
		}
		resp, err := svc.Register(conn, &dto.RegisterRequest{
			Email:    cred.Email,
			Password: cred.Password,
			Role:     role,
		})
		if err != nil {
			return nil, err
		}

		return &signup.Session{
			UserID:    resp.User.ID,
			Token:     resp.AccessToken,
			Role:      cred.Role,
			ExpiresAt: resp.ExpiresAt,
		}, nil
	})
}

func userRoleFor(r signup.Role) (models.UserRole, error) {
	switch r {
	case signup.RoleCreator:
		return models.UserRoleCreator, nil
	case signup.RoleTalent:
		return models.UserRoleTalent, nil
	case signup.RoleUnselected:
		return "", apperrors.ErrInvalidUserRole
	default:
		return "", apperrors.ErrInvalidUserRole
	}
}
