package service

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/yavin/platform/internal/catalog"
	errorvalues "github.com/yavin/platform/internal/error_values"
	"github.com/yavin/platform/internal/repository"
	"github.com/yavin/platform/pkg/entity"
)

const perfectQuizBonus = 50

type ProgressService struct {
	usersRepo    repository.UsersRepositoryI
	progressRepo repository.ProgressRepositoryI
}

func NewProgressService(usersRepo repository.UsersRepositoryI, progressRepo repository.ProgressRepositoryI) *ProgressService {
	if usersRepo == nil || progressRepo == nil {
		log.Fatal("on progress service provided nil repos")
	}
	return &ProgressService{
		usersRepo:    usersRepo,
		progressRepo: progressRepo,
	}
}

func (ps *ProgressService) UpsertProgress(ctx context.Context, uid uuid.UUID, upd *ProgressUpdate) (*entity.ProgressResult, error) {
	section, ok := catalog.SectionByID(upd.SectionID)
	if !ok {
		return nil, errorvalues.ErrInvalidSection
	}
	user, err := ps.usersRepo.FindByID(ctx, uid)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return nil, err
		}
		return nil, errors.New("repository error: " + err.Error())
	}
	// Completion snapshot taken before the write decides the XP award
	wasCompleted := false
	prior, err := ps.progressRepo.GetSection(ctx, uid, upd.SectionID)
	if err != nil && !errors.Is(err, errorvalues.ErrProgressNotFound) {
		return nil, errors.New("repository error: " + err.Error())
	}
	if prior != nil {
		wasCompleted = prior.Completed
	}
	err = ps.progressRepo.UpsertCompletion(ctx, uid, upd.SectionID, upd.Completed, upd.TimeSpent)
	if err != nil {
		return nil, errors.New("repository error: " + err.Error())
	}
	// XP and streak writes are best effort: on failure the request still
	// succeeds with the pre-update values
	xpEarned := 0
	totalXP := user.TotalXP
	if upd.Completed && !wasCompleted {
		xpEarned = section.XP
		if total, err := ps.usersRepo.AddXP(ctx, uid, section.XP); err != nil {
			slog.Warn("xp grant failed on completion", slog.String("uid", uid.String()), slog.String("error", err.Error()))
		} else {
			totalXP = total
		}
	}
	today := time.Now()
	streak := NextStreak(user.LastActivityDate, user.StreakDays, today)
	if err = ps.usersRepo.UpdateStreak(ctx, uid, streak, today); err != nil {
		slog.Warn("streak update failed on progress", slog.String("uid", uid.String()), slog.String("error", err.Error()))
		streak = user.StreakDays
	}
	return &entity.ProgressResult{
		XPEarned:   xpEarned,
		TotalXP:    totalXP,
		StreakDays: streak,
	}, nil
}

func (ps *ProgressService) RecordQuiz(ctx context.Context, uid uuid.UUID, sub *QuizSubmission) (*entity.QuizResult, error) {
	result, err := ps.ScoreOnly(sub)
	if err != nil {
		return nil, err
	}
	result.LoggedIn = true
	err = ps.progressRepo.UpsertQuizScore(ctx, uid, sub.Section, result.Percentage)
	if err != nil {
		return nil, errors.New("repository error: " + err.Error())
	}
	// Every perfect submission grants the bonus, retakes included
	if result.Percentage == 100 {
		result.BonusXP = perfectQuizBonus
		if _, err := ps.usersRepo.AddXP(ctx, uid, perfectQuizBonus); err != nil {
			slog.Warn("bonus xp grant failed", slog.String("uid", uid.String()), slog.String("error", err.Error()))
		}
	}
	return result, nil
}

// ScoreOnly computes the percentage without touching storage, used for
// anonymous submissions
func (ps *ProgressService) ScoreOnly(sub *QuizSubmission) (*entity.QuizResult, error) {
	if sub.Total <= 0 {
		return nil, errorvalues.ErrInvalidQuizTotal
	}
	return &entity.QuizResult{
		Score:      sub.Score,
		Total:      sub.Total,
		Percentage: sub.Score * 100 / sub.Total,
	}, nil
}
