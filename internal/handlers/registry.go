package handlers

// AppHandlers holds every handler of the application.
type AppHandlers struct {
	LandingHandler *LandingHandler
	SignupHandler  *SignupHandler
	AuthHandler    *AuthHandler
	JobHandler     *JobHandler
	HealthHandler  *HealthHandler
}
