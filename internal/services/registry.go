package services

// ServiceContainer holds every service of the application.
type ServiceContainer struct {
	AuthService        AuthService
	InvitationService  InvitationService
	JobService         JobService
	ApplicationService ApplicationService
	ProjectService     ProjectService
	ReviewService      ReviewService
}
