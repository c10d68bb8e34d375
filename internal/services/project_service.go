package services

import (
	"creatorcrewz/internal/logger"
	"creatorcrewz/internal/models"
	"creatorcrewz/internal/repositories"
	"creatorcrewz/internal/services/dto"
	"creatorcrewz/pkg/apperrors"

	"gorm.io/gorm"
)

type ProjectService interface {
	GetProject(db *gorm.DB, userID, projectID string) (*models.Project, error)
	ListProjects(db *gorm.DB, userID string) ([]models.Project, error)
	// AdvancePayment records a payment status change. Only forward moves
	// (pending → in_escrow → released|refunded) are accepted.
	AdvancePayment(db *gorm.DB, userID, projectID string, to models.PaymentStatus) error
	Complete(db *gorm.DB, creatorID, projectID string) error
	Cancel(db *gorm.DB, userID, projectID string) error
	PostMessage(db *gorm.DB, senderID string, req *dto.PostMessageRequest) (*models.Message, error)
	ListMessages(db *gorm.DB, userID, projectID string, limit int) ([]models.Message, error)
}

type projectService struct {
	projectRepo repositories.ProjectRepository
	jobRepo     repositories.JobRepository
	messageRepo repositories.MessageRepository
	tx          txFunc
}

func NewProjectService(
	projectRepo repositories.ProjectRepository,
	jobRepo repositories.JobRepository,
	messageRepo repositories.MessageRepository,
) ProjectService {
	return &projectService{
		projectRepo: projectRepo,
		jobRepo:     jobRepo,
		messageRepo: messageRepo,
		tx:          gormTransaction,
	}
}

func (s *projectService) GetProject(db *gorm.DB, userID, projectID string) (*models.Project, error) {
	return s.participantProject(db, userID, projectID)
}

func (s *projectService) ListProjects(db *gorm.DB, userID string) ([]models.Project, error) {
	projects, err := s.projectRepo.FindByParticipant(db, userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return projects, nil
}

func (s *projectService) AdvancePayment(db *gorm.DB, userID, projectID string, to models.PaymentStatus) error {
	project, err := s.participantProject(db, userID, projectID)
	if err != nil {
		return err
	}
	if !to.IsValid() || !project.PaymentStatus.CanTransitionTo(to) {
		return apperrors.ErrInvalidStatusTransition.WithDetails(map[string]string{
			"from": string(project.PaymentStatus),
			"to":   string(to),
		})
	}

	if err := s.projectRepo.UpdatePaymentStatus(db, projectID, project.PaymentStatus, to); err != nil {
		return handleRepoError(err)
	}
	logger.Info("Project payment status changed", "project_id", projectID, "from", project.PaymentStatus, "to", to)
	return nil
}

// Complete closes an active project and its job. Only the hiring creator may do this.
func (s *projectService) Complete(db *gorm.DB, creatorID, projectID string) error {
	return s.finish(db, creatorID, projectID, models.ProjectStatusCompleted, models.JobStatusCompleted, true)
}

// Cancel is open to either participant.
func (s *projectService) Cancel(db *gorm.DB, userID, projectID string) error {
	return s.finish(db, userID, projectID, models.ProjectStatusCancelled, models.JobStatusCancelled, false)
}

func (s *projectService) finish(db *gorm.DB, userID, projectID string, to models.ProjectStatus, jobTo models.JobStatus, creatorOnly bool) error {
	return s.tx(db, func(tx *gorm.DB) error {
		project, err := s.participantProject(tx, userID, projectID)
		if err != nil {
			return err
		}
		if creatorOnly && project.CreatorID != userID {
			return apperrors.ErrInsufficientPermissions
		}
		if !project.Status.CanTransitionTo(to) {
			return apperrors.ErrInvalidStatusTransition.WithDetails(map[string]string{
				"from": string(project.Status),
				"to":   string(to),
			})
		}
		if err := s.projectRepo.UpdateStatus(tx, projectID, project.Status, to); err != nil {
			return handleRepoError(err)
		}

		job, err := s.jobRepo.FindByID(tx, project.JobID)
		if err != nil {
			return handleRepoError(err)
		}
		if job.Status.CanTransitionTo(jobTo) {
			if err := s.jobRepo.UpdateStatus(tx, job.ID, job.Status, jobTo); err != nil {
				return handleRepoError(err)
			}
		}
		return nil
	})
}

func (s *projectService) PostMessage(db *gorm.DB, senderID string, req *dto.PostMessageRequest) (*models.Message, error) {
	project, err := s.participantProject(db, senderID, req.ProjectID)
	if err != nil {
		return nil, err
	}
	receiverID, _ := project.Counterparty(senderID)

	projectID := project.ID
	msg := &models.Message{
		SenderID:   senderID,
		ReceiverID: receiverID,
		ProjectID:  &projectID,
		Content:    req.Content,
	}
	if err := s.messageRepo.Create(db, msg); err != nil {
		return nil, handleRepoError(err)
	}
	return msg, nil
}

func (s *projectService) ListMessages(db *gorm.DB, userID, projectID string, limit int) ([]models.Message, error) {
	if _, err := s.participantProject(db, userID, projectID); err != nil {
		return nil, err
	}
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	msgs, err := s.messageRepo.FindByProject(db, projectID, limit)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return msgs, nil
}

func (s *projectService) participantProject(db *gorm.DB, userID, projectID string) (*models.Project, error) {
	project, err := s.projectRepo.FindByID(db, projectID)
	if err != nil {
		return nil, handleRepoError(err)
	}
	if !project.IsParticipant(userID) {
		return nil, apperrors.ErrNotProjectParticipant
	}
	return project, nil
}
