package services

import (
	"errors"

	"creatorcrewz/internal/logger"
	"creatorcrewz/internal/models"
	"creatorcrewz/internal/repositories"
	"creatorcrewz/internal/services/dto"
	"creatorcrewz/pkg/apperrors"

	"gorm.io/gorm"
)

type ApplicationService interface {
	Apply(db *gorm.DB, talentID string, req *dto.ApplyRequest) (*models.Application, error)
	Withdraw(db *gorm.DB, talentID, applicationID string) error
	// Accept hires the applicant: the application is accepted, a project is opened
	// and the job moves to in_progress, all in one transaction.
	Accept(db *gorm.DB, creatorID, applicationID string) (*models.Project, error)
	Reject(db *gorm.DB, creatorID, applicationID string) error
	ListForJob(db *gorm.DB, creatorID, jobID string) ([]models.Application, error)
}

type applicationService struct {
	appRepo     repositories.ApplicationRepository
	jobRepo     repositories.JobRepository
	projectRepo repositories.ProjectRepository
	userRepo    repositories.UserRepository
	tx          txFunc
}

func NewApplicationService(
	appRepo repositories.ApplicationRepository,
	jobRepo repositories.JobRepository,
	projectRepo repositories.ProjectRepository,
	userRepo repositories.UserRepository,
) ApplicationService {
	return &applicationService{
		appRepo:     appRepo,
		jobRepo:     jobRepo,
		projectRepo: projectRepo,
		userRepo:    userRepo,
		tx:          gormTransaction,
	}
}

func (s *applicationService) Apply(db *gorm.DB, talentID string, req *dto.ApplyRequest) (*models.Application, error) {
	user, err := s.userRepo.FindByID(db, talentID)
	if err != nil {
		return nil, handleRepoError(err)
	}
	if !user.IsTalent() {
		return nil, apperrors.ErrInvalidUserRole
	}

	job, err := s.jobRepo.FindByID(db, req.JobID)
	if err != nil {
		return nil, handleRepoError(err)
	}
	if job.CreatorID == talentID {
		return nil, apperrors.ErrCannotApplyToOwnJob
	}
	if !job.IsOpen() {
		return nil, apperrors.ErrJobNotOpen
	}

	app := &models.Application{
		JobID:        job.ID,
		TalentID:     talentID,
		CoverLetter:  req.CoverLetter,
		ProposedRate: req.ProposedRate,
		Status:       models.ApplicationStatusPending,
	}
	if err := s.appRepo.Create(db, app); err != nil {
		return nil, handleRepoError(err)
	}

	logger.Info("Application submitted", "application_id", app.ID, "job_id", job.ID, "talent_id", talentID)
	return app, nil
}

func (s *applicationService) Withdraw(db *gorm.DB, talentID, applicationID string) error {
	app, err := s.appRepo.FindByID(db, applicationID)
	if err != nil {
		return handleRepoError(err)
	}
	if app.TalentID != talentID {
		return apperrors.ErrInsufficientPermissions
	}
	return s.moveApplication(db, app, models.ApplicationStatusWithdrawn)
}

func (s *applicationService) Accept(db *gorm.DB, creatorID, applicationID string) (*models.Project, error) {
	var project *models.Project

	err := s.tx(db, func(tx *gorm.DB) error {
		app, job, err := s.ownedApplication(tx, creatorID, applicationID)
		if err != nil {
			return err
		}
		if !job.IsOpen() {
			return apperrors.ErrJobNotOpen
		}

		if err := s.moveApplication(tx, app, models.ApplicationStatusAccepted); err != nil {
			return err
		}
		if _, err := s.appRepo.RejectOthers(tx, job.ID, app.ID); err != nil {
			return apperrors.InternalError(err)
		}
		if err := s.jobRepo.UpdateStatus(tx, job.ID, models.JobStatusOpen, models.JobStatusInProgress); err != nil {
			return handleRepoError(err)
		}

		project = &models.Project{
			JobID:         job.ID,
			CreatorID:     job.CreatorID,
			TalentID:      app.TalentID,
			Title:         job.Title,
			Description:   job.Description,
			Budget:        agreedBudget(job, app),
			Status:        models.ProjectStatusActive,
			PaymentStatus: models.PaymentStatusPending,
		}
		if err := s.projectRepo.Create(tx, project); err != nil {
			if errors.Is(err, repositories.ErrProjectAlreadyExists) {
				return apperrors.ErrJobNotOpen
			}
			return apperrors.InternalError(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Application accepted", "application_id", applicationID, "project_id", project.ID)
	return project, nil
}

func (s *applicationService) Reject(db *gorm.DB, creatorID, applicationID string) error {
	app, _, err := s.ownedApplication(db, creatorID, applicationID)
	if err != nil {
		return err
	}
	return s.moveApplication(db, app, models.ApplicationStatusRejected)
}

func (s *applicationService) ListForJob(db *gorm.DB, creatorID, jobID string) ([]models.Application, error) {
	job, err := s.jobRepo.FindByID(db, jobID)
	if err != nil {
		return nil, handleRepoError(err)
	}
	if job.CreatorID != creatorID {
		return nil, apperrors.ErrInsufficientPermissions
	}
	apps, err := s.appRepo.FindByJob(db, jobID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return apps, nil
}

// ownedApplication loads an application whose job belongs to creatorID.
func (s *applicationService) ownedApplication(db *gorm.DB, creatorID, applicationID string) (*models.Application, *models.JobPosting, error) {
	app, err := s.appRepo.FindByID(db, applicationID)
	if err != nil {
		return nil, nil, handleRepoError(err)
	}
	job, err := s.jobRepo.FindByID(db, app.JobID)
	if err != nil {
		return nil, nil, handleRepoError(err)
	}
	if job.CreatorID != creatorID {
		return nil, nil, apperrors.ErrInsufficientPermissions
	}
	return app, job, nil
}

func (s *applicationService) moveApplication(db *gorm.DB, app *models.Application, to models.ApplicationStatus) error {
	if !app.Status.CanTransitionTo(to) {
		return apperrors.ErrInvalidStatusTransition.WithDetails(map[string]string{
			"from": string(app.Status),
			"to":   string(to),
		})
	}
	if err := s.appRepo.UpdateStatus(db, app.ID, app.Status, to); err != nil {
		return handleRepoError(err)
	}
	app.Status = to
	return nil
}

// agreedBudget is the job budget for one-off jobs, else the applicant's proposed rate, else zero.
func agreedBudget(job *models.JobPosting, app *models.Application) float64 {
	if budget, ok := job.OneOffBudget(); ok {
		return budget
	}
	if app.ProposedRate != nil {
		return *app.ProposedRate
	}
	return 0
}
