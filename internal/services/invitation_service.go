package services

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"strings"
	"time"

	"creatorcrewz/internal/logger"
	"creatorcrewz/internal/models"
	"creatorcrewz/internal/repositories"
	"creatorcrewz/internal/services/dto"
	"creatorcrewz/internal/validator"
	"creatorcrewz/pkg/apperrors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const DefaultInvitationTTL = 7 * 24 * time.Hour

type InvitationService interface {
	// Issue creates an invitation and returns the plaintext code. Only its hash is stored.
	Issue(db *gorm.DB, email string, ttl time.Duration) (*dto.InvitationResponse, error)
	// Redeem marks the invitation matching email and code as accepted by userID.
	Redeem(db *gorm.DB, email, code, userID string) error
	PruneExpired(db *gorm.DB) (int64, error)
}

type invitationService struct {
	invitationRepo repositories.InvitationRepository
	validator      *validator.Validator
	now            func() time.Time
}

func NewInvitationService(invitationRepo repositories.InvitationRepository, v *validator.Validator) InvitationService {
	return &invitationService{
		invitationRepo: invitationRepo,
		validator:      v,
		now:            time.Now,
	}
}

func (s *invitationService) Issue(db *gorm.DB, email string, ttl time.Duration) (*dto.InvitationResponse, error) {
	email = normalizeEmail(email)
	if err := s.validator.Validate(&dto.IssueInvitationRequest{Email: email}); err != nil {
		var vErr *validator.ValidationError
		if errors.As(err, &vErr) {
			return nil, apperrors.ErrInvalidEmail
		}
		return nil, apperrors.InternalError(err)
	}
	if ttl <= 0 {
		ttl = DefaultInvitationTTL
	}

	code := newInvitationCode()
	inv := &models.Invitation{
		Email:     email,
		CodeHash:  hashInvitationCode(code),
		ExpiresAt: s.now().Add(ttl),
	}
	if err := s.invitationRepo.Create(db, inv); err != nil {
		return nil, apperrors.InternalError(err)
	}

	logger.Info("Invitation issued", "invitation_id", inv.ID, "email", email, "expires_at", inv.ExpiresAt)

	return &dto.InvitationResponse{
		ID:        inv.ID,
		Email:     inv.Email,
		Code:      code,
		ExpiresAt: inv.ExpiresAt,
	}, nil
}

func (s *invitationService) Redeem(db *gorm.DB, email, code, userID string) error {
	code = strings.TrimSpace(code)
	if code == "" {
		return apperrors.ErrInvitationRequired
	}

	now := s.now()
	inv, err := s.invitationRepo.FindUsable(db, normalizeEmail(email), hashInvitationCode(code), now)
	if err != nil {
		if errors.Is(err, repositories.ErrInvitationNotFound) {
			return apperrors.ErrInvitationRequired
		}
		return apperrors.InternalError(err)
	}

	if err := s.invitationRepo.MarkAccepted(db, inv.ID, userID, now); err != nil {
		if errors.Is(err, repositories.ErrInvitationNotFound) {
			return apperrors.ErrInvitationRequired
		}
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *invitationService) PruneExpired(db *gorm.DB) (int64, error) {
	n, err := s.invitationRepo.DeleteExpired(db, s.now())
	if err != nil {
		return 0, apperrors.InternalError(err)
	}
	return n, nil
}

func newInvitationCode() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}

func hashInvitationCode(code string) string {
	sum := sha256.Sum256([]byte(code))
	return hex.EncodeToString(sum[:])
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
