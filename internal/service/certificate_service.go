package service

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/yavin/platform/internal/catalog"
	"github.com/yavin/platform/internal/repository"
	"github.com/yavin/platform/pkg/entity"
)

const certificatePrefix = "YAVIN"

type CertificateService struct {
	usersRepo    repository.UsersRepositoryI
	progressRepo repository.ProgressRepositoryI
}

func NewCertificateService(usersRepo repository.UsersRepositoryI, progressRepo repository.ProgressRepositoryI) *CertificateService {
	if usersRepo == nil || progressRepo == nil {
		log.Fatal("on certificate service provided nil repos")
	}
	return &CertificateService{
		usersRepo:    usersRepo,
		progressRepo: progressRepo,
	}
}

// Generate is a pure reader over the ledger. Completing all core sections
// yields a deterministic certificate, otherwise the missing section ids
// come back so the caller can show what's left.
func (cs *CertificateService) Generate(ctx context.Context, uid uuid.UUID) (*entity.Certificate, *entity.CertificateEligibility, error) {
	progress, err := cs.progressRepo.GetByUser(ctx, uid)
	if err != nil {
		return nil, nil, errors.New("repository error: " + err.Error())
	}
	completed := make(map[string]bool, len(progress))
	for _, p := range progress {
		if p.Completed {
			completed[p.SectionID] = true
		}
	}
	remaining := make([]string, 0)
	for _, id := range catalog.CoreSections {
		if !completed[id] {
			remaining = append(remaining, id)
		}
	}
	if len(remaining) > 0 {
		return nil, &entity.CertificateEligibility{
			Eligible:  false,
			Remaining: remaining,
		}, nil
	}
	user, err := cs.usersRepo.FindByID(ctx, uid)
	if err != nil {
		return nil, nil, errors.New("repository error: " + err.Error())
	}
	now := time.Now()
	return &entity.Certificate{
		CertificateID: certificateID(uid, now),
		Name:          displayName(user),
		TotalXP:       user.TotalXP,
		AverageScore:  averageQuizScore(progress),
		IssuedAt:      now,
	}, nil, nil
}

func certificateID(uid uuid.UUID, issued time.Time) string {
	return certificatePrefix + "-" + strings.ToUpper(uid.String()[:8]) + "-" + issued.Format("20060102")
}

func averageQuizScore(progress []entity.Progress) int {
	sum, n := 0, 0
	for _, p := range progress {
		if p.QuizScore != nil {
			sum += *p.QuizScore
			n++
		}
	}
	if n == 0 {
		return 0
	}
	return sum / n
}

func displayName(user *entity.User) string {
	if user.Name != "" {
		return user.Name
	}
	// Fall back to the local part of the email
	if at := strings.Index(user.Email, "@"); at > 0 {
		return user.Email[:at]
	}
	return user.Email
}
