package services

import (
	"sort"
	"sync"
	"time"

	"creatorcrewz/internal/models"
	"creatorcrewz/internal/repositories"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// directTx runs fn without a database; the fakes below ignore db.
func directTx(db *gorm.DB, fn func(tx *gorm.DB) error) error {
	return fn(db)
}

func newID(id *string) {
	if *id == "" {
		*id = uuid.NewString()
	}
}

// ============================================
// Users & profiles
// ============================================

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[string]*models.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*models.User{}}
}

func (r *fakeUserRepo) Create(_ *gorm.DB, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == user.Email {
			return repositories.ErrUserAlreadyExists
		}
	}
	newID(&user.ID)
	user.CreatedAt = time.Now()
	cp := *user
	r.users[user.ID] = &cp
	return nil
}

func (r *fakeUserRepo) FindByID(_ *gorm.DB, id string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return nil, repositories.ErrUserNotFound
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) FindByEmail(_ *gorm.DB, email string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repositories.ErrUserNotFound
}

func (r *fakeUserRepo) ExistsByEmail(db *gorm.DB, email string) (bool, error) {
	_, err := r.FindByEmail(db, email)
	return err == nil, nil
}

func (r *fakeUserRepo) Update(_ *gorm.DB, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[user.ID]
	if !ok {
		return repositories.ErrUserNotFound
	}
	u.Email, u.PasswordHash, u.Status = user.Email, user.PasswordHash, user.Status
	return nil
}

func (r *fakeUserRepo) UpdateLastLogin(_ *gorm.DB, userID string, at time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if u, ok := r.users[userID]; ok {
		u.LastLoginAt = &at
	}
	return nil
}

func (r *fakeUserRepo) add(role models.UserRole) *models.User {
	u := &models.User{Email: uuid.NewString() + "@example.com", Role: role, Status: models.UserStatusActive}
	_ = r.Create(nil, u)
	return u
}

type fakeProfileRepo struct {
	mu       sync.Mutex
	creators map[string]*models.CreatorProfile
	talents  map[string]*models.TalentProfile
}

func newFakeProfileRepo() *fakeProfileRepo {
	return &fakeProfileRepo{
		creators: map[string]*models.CreatorProfile{},
		talents:  map[string]*models.TalentProfile{},
	}
}

func (r *fakeProfileRepo) CreateCreatorProfile(_ *gorm.DB, p *models.CreatorProfile) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.creators[p.UserID]; ok {
		return repositories.ErrProfileAlreadyExists
	}
	newID(&p.ID)
	r.creators[p.UserID] = p
	return nil
}

func (r *fakeProfileRepo) CreateTalentProfile(_ *gorm.DB, p *models.TalentProfile) error {
	if err := p.Validate(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.talents[p.UserID]; ok {
		return repositories.ErrProfileAlreadyExists
	}
	newID(&p.ID)
	r.talents[p.UserID] = p
	return nil
}

func (r *fakeProfileRepo) FindCreatorProfileByUserID(_ *gorm.DB, userID string) (*models.CreatorProfile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.creators[userID]
	if !ok {
		return nil, repositories.ErrProfileNotFound
	}
	return p, nil
}

func (r *fakeProfileRepo) FindTalentProfileByUserID(_ *gorm.DB, userID string) (*models.TalentProfile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.talents[userID]
	if !ok {
		return nil, repositories.ErrProfileNotFound
	}
	return p, nil
}

func (r *fakeProfileRepo) UpdateTalentProfile(_ *gorm.DB, p *models.TalentProfile) error {
	if err := p.Validate(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.talents[p.UserID] = p
	return nil
}

// ============================================
// Invitations
// ============================================

type fakeInvitationRepo struct {
	mu   sync.Mutex
	invs map[string]*models.Invitation
}

func newFakeInvitationRepo() *fakeInvitationRepo {
	return &fakeInvitationRepo{invs: map[string]*models.Invitation{}}
}

func (r *fakeInvitationRepo) Create(_ *gorm.DB, inv *models.Invitation) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	newID(&inv.ID)
	cp := *inv
	r.invs[inv.ID] = &cp
	return nil
}

func (r *fakeInvitationRepo) FindUsable(_ *gorm.DB, email, codeHash string, now time.Time) (*models.Invitation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, inv := range r.invs {
		if inv.Email == email && inv.CodeHash == codeHash && inv.IsUsable(now) {
			cp := *inv
			return &cp, nil
		}
	}
	return nil, repositories.ErrInvitationNotFound
}

func (r *fakeInvitationRepo) MarkAccepted(_ *gorm.DB, id, userID string, at time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	inv, ok := r.invs[id]
	if !ok || inv.AcceptedAt != nil {
		return repositories.ErrInvitationNotFound
	}
	inv.AcceptedAt = &at
	inv.AcceptedBy = &userID
	return nil
}

func (r *fakeInvitationRepo) DeleteExpired(_ *gorm.DB, now time.Time) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for id, inv := range r.invs {
		if inv.AcceptedAt == nil && !now.Before(inv.ExpiresAt) {
			delete(r.invs, id)
			n++
		}
	}
	return n, nil
}

// ============================================
// Jobs, applications, projects
// ============================================

type fakeJobRepo struct {
	mu    sync.Mutex
	jobs  map[string]*models.JobPosting
	saved map[[2]string]time.Time
}

func newFakeJobRepo() *fakeJobRepo {
	return &fakeJobRepo{jobs: map[string]*models.JobPosting{}, saved: map[[2]string]time.Time{}}
}

func (r *fakeJobRepo) Create(_ *gorm.DB, job *models.JobPosting) error {
	if err := job.Validate(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if job.Status == "" {
		job.Status = models.JobStatusOpen
	}
	newID(&job.ID)
	job.CreatedAt = time.Now()
	cp := *job
	r.jobs[job.ID] = &cp
	return nil
}

func (r *fakeJobRepo) FindByID(_ *gorm.DB, id string) (*models.JobPosting, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	j, ok := r.jobs[id]
	if !ok {
		return nil, repositories.ErrJobNotFound
	}
	cp := *j
	return &cp, nil
}

func (r *fakeJobRepo) FindOpen(_ *gorm.DB, limit, offset int) ([]models.JobPosting, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var open []models.JobPosting
	for _, j := range r.jobs {
		if j.Status == models.JobStatusOpen {
			open = append(open, *j)
		}
	}
	sort.Slice(open, func(a, b int) bool { return open[a].CreatedAt.After(open[b].CreatedAt) })
	total := int64(len(open))
	if offset >= len(open) {
		return nil, total, nil
	}
	end := offset + limit
	if end > len(open) {
		end = len(open)
	}
	return open[offset:end], total, nil
}

func (r *fakeJobRepo) FindByCreator(_ *gorm.DB, creatorID string) ([]models.JobPosting, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.JobPosting
	for _, j := range r.jobs {
		if j.CreatorID == creatorID {
			out = append(out, *j)
		}
	}
	return out, nil
}

func (r *fakeJobRepo) UpdateStatus(_ *gorm.DB, id string, from, to models.JobStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	j, ok := r.jobs[id]
	if !ok || j.Status != from {
		return repositories.ErrStatusConflict
	}
	j.Status = to
	return nil
}

func (r *fakeJobRepo) SaveJob(_ *gorm.DB, userID, jobID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	key := [2]string{userID, jobID}
	if _, ok := r.saved[key]; !ok {
		r.saved[key] = time.Now()
	}
	return nil
}

func (r *fakeJobRepo) UnsaveJob(_ *gorm.DB, userID, jobID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	key := [2]string{userID, jobID}
	if _, ok := r.saved[key]; !ok {
		return repositories.ErrSavedJobMissing
	}
	delete(r.saved, key)
	return nil
}

func (r *fakeJobRepo) FindSavedByUser(_ *gorm.DB, userID string) ([]models.JobPosting, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.JobPosting
	for key := range r.saved {
		if key[0] == userID {
			if j, ok := r.jobs[key[1]]; ok {
				out = append(out, *j)
			}
		}
	}
	return out, nil
}

func (r *fakeJobRepo) status(id string) models.JobStatus {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.jobs[id].Status
}

type fakeApplicationRepo struct {
	mu   sync.Mutex
	apps map[string]*models.Application
}

func newFakeApplicationRepo() *fakeApplicationRepo {
	return &fakeApplicationRepo{apps: map[string]*models.Application{}}
}

func (r *fakeApplicationRepo) Create(_ *gorm.DB, app *models.Application) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, a := range r.apps {
		if a.JobID == app.JobID && a.TalentID == app.TalentID {
			return repositories.ErrApplicationAlreadyExists
		}
	}
	if app.Status == "" {
		app.Status = models.ApplicationStatusPending
	}
	newID(&app.ID)
	cp := *app
	r.apps[app.ID] = &cp
	return nil
}

func (r *fakeApplicationRepo) FindByID(_ *gorm.DB, id string) (*models.Application, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.apps[id]
	if !ok {
		return nil, repositories.ErrApplicationNotFound
	}
	cp := *a
	return &cp, nil
}

func (r *fakeApplicationRepo) FindByJobAndTalent(_ *gorm.DB, jobID, talentID string) (*models.Application, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, a := range r.apps {
		if a.JobID == jobID && a.TalentID == talentID {
			cp := *a
			return &cp, nil
		}
	}
	return nil, repositories.ErrApplicationNotFound
}

func (r *fakeApplicationRepo) FindByJob(_ *gorm.DB, jobID string) ([]models.Application, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Application
	for _, a := range r.apps {
		if a.JobID == jobID {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (r *fakeApplicationRepo) FindByTalent(_ *gorm.DB, talentID string) ([]models.Application, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Application
	for _, a := range r.apps {
		if a.TalentID == talentID {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (r *fakeApplicationRepo) UpdateStatus(_ *gorm.DB, id string, from, to models.ApplicationStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.apps[id]
	if !ok || a.Status != from {
		return repositories.ErrStatusConflict
	}
	a.Status = to
	return nil
}

func (r *fakeApplicationRepo) RejectOthers(_ *gorm.DB, jobID, acceptedID string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for _, a := range r.apps {
		if a.JobID == jobID && a.ID != acceptedID && a.Status == models.ApplicationStatusPending {
			a.Status = models.ApplicationStatusRejected
			n++
		}
	}
	return n, nil
}

func (r *fakeApplicationRepo) status(id string) models.ApplicationStatus {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.apps[id].Status
}

type fakeProjectRepo struct {
	mu       sync.Mutex
	projects map[string]*models.Project
}

func newFakeProjectRepo() *fakeProjectRepo {
	return &fakeProjectRepo{projects: map[string]*models.Project{}}
}

func (r *fakeProjectRepo) Create(_ *gorm.DB, p *models.Project) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.projects {
		if existing.JobID == p.JobID {
			return repositories.ErrProjectAlreadyExists
		}
	}
	if p.Status == "" {
		p.Status = models.ProjectStatusActive
	}
	if p.PaymentStatus == "" {
		p.PaymentStatus = models.PaymentStatusPending
	}
	newID(&p.ID)
	cp := *p
	r.projects[p.ID] = &cp
	return nil
}

func (r *fakeProjectRepo) FindByID(_ *gorm.DB, id string) (*models.Project, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.projects[id]
	if !ok {
		return nil, repositories.ErrProjectNotFound
	}
	cp := *p
	return &cp, nil
}

func (r *fakeProjectRepo) FindByParticipant(_ *gorm.DB, userID string) ([]models.Project, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Project
	for _, p := range r.projects {
		if p.IsParticipant(userID) {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *fakeProjectRepo) UpdateStatus(_ *gorm.DB, id string, from, to models.ProjectStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.projects[id]
	if !ok || p.Status != from {
		return repositories.ErrStatusConflict
	}
	p.Status = to
	return nil
}

func (r *fakeProjectRepo) UpdatePaymentStatus(_ *gorm.DB, id string, from, to models.PaymentStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.projects[id]
	if !ok || p.PaymentStatus != from {
		return repositories.ErrStatusConflict
	}
	p.PaymentStatus = to
	return nil
}

type fakeReviewRepo struct {
	mu      sync.Mutex
	reviews []*models.Review
}

func (r *fakeReviewRepo) Create(_ *gorm.DB, review *models.Review) error {
	if err := review.Validate(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.reviews {
		if existing.ProjectID == review.ProjectID && existing.ReviewerID == review.ReviewerID {
			return repositories.ErrReviewAlreadyExists
		}
	}
	newID(&review.ID)
	cp := *review
	r.reviews = append(r.reviews, &cp)
	return nil
}

func (r *fakeReviewRepo) FindByProjectAndReviewer(_ *gorm.DB, projectID, reviewerID string) (*models.Review, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, rv := range r.reviews {
		if rv.ProjectID == projectID && rv.ReviewerID == reviewerID {
			cp := *rv
			return &cp, nil
		}
	}
	return nil, repositories.ErrReviewNotFound
}

func (r *fakeReviewRepo) FindByReviewed(_ *gorm.DB, userID string) ([]models.Review, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Review
	for _, rv := range r.reviews {
		if rv.ReviewedID == userID {
			out = append(out, *rv)
		}
	}
	return out, nil
}

func (r *fakeReviewRepo) AverageRating(db *gorm.DB, userID string) (float64, int64, error) {
	reviews, _ := r.FindByReviewed(db, userID)
	if len(reviews) == 0 {
		return 0, 0, nil
	}
	sum := 0
	for _, rv := range reviews {
		sum += rv.Rating
	}
	return float64(sum) / float64(len(reviews)), int64(len(reviews)), nil
}

type fakeMessageRepo struct {
	mu   sync.Mutex
	msgs []models.Message
}

func (r *fakeMessageRepo) Create(_ *gorm.DB, msg *models.Message) error {
	if err := msg.Validate(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	newID(&msg.ID)
	r.msgs = append(r.msgs, *msg)
	return nil
}

func (r *fakeMessageRepo) FindByProject(_ *gorm.DB, projectID string, limit int) ([]models.Message, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Message
	for _, m := range r.msgs {
		if m.ProjectID != nil && *m.ProjectID == projectID {
			out = append(out, m)
		}
	}
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

var (
	_ repositories.UserRepository        = (*fakeUserRepo)(nil)
	_ repositories.ProfileRepository     = (*fakeProfileRepo)(nil)
	_ repositories.InvitationRepository  = (*fakeInvitationRepo)(nil)
	_ repositories.JobRepository         = (*fakeJobRepo)(nil)
	_ repositories.ApplicationRepository = (*fakeApplicationRepo)(nil)
	_ repositories.ProjectRepository     = (*fakeProjectRepo)(nil)
	_ repositories.ReviewRepository      = (*fakeReviewRepo)(nil)
	_ repositories.MessageRepository     = (*fakeMessageRepo)(nil)
)
