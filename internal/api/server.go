package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/yavin/platform/internal/service"
)

type Server struct {
	mx                 *chi.Mux
	userService        service.UserServiceI
	progressService    service.ProgressServiceI
	badgeService       service.BadgeServiceI
	certificateService service.CertificateServiceI
	newsletterService  service.NewsletterServiceI
	feedbackService    service.FeedbackServiceI
	sessions           SessionServiceI
	chat               ChatServiceI
}

type ServicesList struct {
	UserService        service.UserServiceI
	ProgressService    service.ProgressServiceI
	BadgeService       service.BadgeServiceI
	CertificateService service.CertificateServiceI
	NewsletterService  service.NewsletterServiceI
	FeedbackService    service.FeedbackServiceI
	Sessions           SessionServiceI
	Chat               ChatServiceI
}

func New(servicesOptions *ServicesList) *Server {
	s := &Server{
		mx:                 chi.NewMux(),
		userService:        servicesOptions.UserService,
		progressService:    servicesOptions.ProgressService,
		badgeService:       servicesOptions.BadgeService,
		certificateService: servicesOptions.CertificateService,
		newsletterService:  servicesOptions.NewsletterService,
		feedbackService:    servicesOptions.FeedbackService,
		sessions:           servicesOptions.Sessions,
		chat:               servicesOptions.Chat,
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.mx.Use(s.RequestIDMiddleware)
	s.mx.Use(s.SettingUpLoggerMiddleware)
	s.mx.Use(s.SessionMiddleware)
	s.mx.Route("/api", func(r chi.Router) {
		r.Post("/auth/register", s.Register)
		r.Post("/auth/login", s.Login)
		r.Post("/auth/logout", s.Logout)
		r.Get("/auth/me", s.Me)
		r.Post("/quiz", s.SubmitQuiz)
		r.Get("/badges", s.ListBadges)
		r.Get("/search", s.Search)
		r.Post("/newsletter", s.SubscribeNewsletter)
		r.Post("/feedback", s.SubmitFeedback)
		r.Post("/chat", s.Chat)
		r.Group(func(r chi.Router) {
			r.Use(s.RequireUserMiddleware)
			r.Post("/progress", s.UpdateProgress)
			r.Post("/badges/check", s.CheckBadges)
			r.Get("/certificate", s.Certificate)
		})
	})
}

func (s *Server) Run(address string) error {
	return http.ListenAndServe(address, s.mx)
}
