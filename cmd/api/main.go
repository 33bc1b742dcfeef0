// @title Yavin learning platform API
// @description JSON API for the Yavin AI-education site: accounts, progress, XP, badges, certificates
// @BasePath /api
// @schemes http
package main

import (
	"log"

	"github.com/yavin/platform/internal/api"
	"github.com/yavin/platform/internal/gemini"
	"github.com/yavin/platform/internal/repository"
	"github.com/yavin/platform/internal/service"
	"github.com/yavin/platform/pkg/cleanup"
	"github.com/yavin/platform/pkg/config"
	"github.com/yavin/platform/pkg/session"
)

func init() {
	service.InitValidator()
}

func main() {
	defer cleanup.CleanUp()
	cfg := config.New()
	dbCfg := repository.PGCfg{
		Address:  cfg.GetString("POSTGRES_DB_ADDRESS"),
		Username: cfg.GetString("POSTGRES_USER"),
		Password: cfg.GetString("POSTGRES_PASSWORD"),
		DB:       cfg.GetString("POSTGRES_DB"),
	}
	usersRepo := repository.NewUsersRepo(&dbCfg)
	progressRepo := repository.NewProgressRepo(&dbCfg)
	achievementsRepo := repository.NewAchievementsRepo(&dbCfg)
	newsletterRepo := repository.NewNewsletterRepo(&dbCfg)
	feedbackRepo := repository.NewFeedbackRepo(&dbCfg)

	redisClient := session.NewRedisClient(&session.RedisCfg{
		Address:  cfg.GetStringOr("REDIS_ADDRESS", "localhost:6379"),
		Password: cfg.GetString("REDIS_PASSWORD"),
		DB:       cfg.GetIntOr("REDIS_DB", 0),
	})

	serv := api.New(&api.ServicesList{
		UserService:        service.NewUserService(usersRepo, progressRepo),
		ProgressService:    service.NewProgressService(usersRepo, progressRepo),
		BadgeService:       service.NewBadgeService(usersRepo, progressRepo, achievementsRepo),
		CertificateService: service.NewCertificateService(usersRepo, progressRepo),
		NewsletterService:  service.NewNewsletterService(newsletterRepo),
		FeedbackService:    service.NewFeedbackService(feedbackRepo),
		Sessions:           session.New(cfg.GetString("SESSION_SECRET"), redisClient),
		Chat: gemini.New(&gemini.ClientCfg{
			APIKey: cfg.GetString("GEMINI_API_KEY"),
		}),
	})
	err := serv.Run(cfg.GetStringOr("API_ADDRESS", ":8080"))
	if err != nil {
		log.Println("Server error: " + err.Error())
	}
}
