package service

import (
	"context"
	"errors"
	"log"
	"strings"

	errorvalues "github.com/yavin/platform/internal/error_values"
	"github.com/yavin/platform/internal/repository"
	"github.com/yavin/platform/pkg/entity"
)

type NewsletterService struct {
	repo repository.NewsletterRepositoryI
}

func NewNewsletterService(newsletterRepo repository.NewsletterRepositoryI) *NewsletterService {
	if newsletterRepo == nil {
		log.Fatal("on newsletter service provided nil repo")
	}
	return &NewsletterService{
		repo: newsletterRepo,
	}
}

func (ns *NewsletterService) Subscribe(ctx context.Context, email, source string) (string, error) {
	if !strings.Contains(email, "@") || len(email) < 5 {
		return "", errorvalues.ErrInvalidEmail
	}
	if source == "" {
		source = "website"
	}
	found, unsubscribed, err := ns.repo.FindByEmail(ctx, email)
	if err != nil {
		return "", errors.New("repository error: " + err.Error())
	}
	switch {
	case found && unsubscribed:
		if err := ns.repo.Resubscribe(ctx, email); err != nil {
			return "", errors.New("repository error: " + err.Error())
		}
		return "Welcome back! You've been re-subscribed to our newsletter.", nil
	case found:
		return "You're already subscribed to our newsletter!", nil
	default:
		if err := ns.repo.Insert(ctx, email, source); err != nil {
			return "", errors.New("repository error: " + err.Error())
		}
		return "Thanks for subscribing! You'll receive AI insights and updates.", nil
	}
}

type FeedbackService struct {
	repo repository.FeedbackRepositoryI
}

func NewFeedbackService(feedbackRepo repository.FeedbackRepositoryI) *FeedbackService {
	if feedbackRepo == nil {
		log.Fatal("on feedback service provided nil repo")
	}
	return &FeedbackService{
		repo: feedbackRepo,
	}
}

func (fs *FeedbackService) Submit(ctx context.Context, fb *entity.Feedback) error {
	if fb == nil || strings.TrimSpace(fb.Message) == "" {
		return errors.New("feedback message is required")
	}
	if err := fs.repo.Insert(ctx, fb); err != nil {
		return errors.New("repository error: " + err.Error())
	}
	return nil
}
