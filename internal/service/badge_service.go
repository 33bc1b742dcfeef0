package service

import (
	"context"
	"errors"
	"log"
	"log/slog"

	"github.com/google/uuid"
	"github.com/yavin/platform/internal/catalog"
	errorvalues "github.com/yavin/platform/internal/error_values"
	"github.com/yavin/platform/internal/repository"
)

type BadgeService struct {
	usersRepo        repository.UsersRepositoryI
	progressRepo     repository.ProgressRepositoryI
	achievementsRepo repository.AchievementsRepositoryI
}

func NewBadgeService(usersRepo repository.UsersRepositoryI, progressRepo repository.ProgressRepositoryI, achievementsRepo repository.AchievementsRepositoryI) *BadgeService {
	if usersRepo == nil || progressRepo == nil || achievementsRepo == nil {
		log.Fatal("on badge service provided nil repos")
	}
	return &BadgeService{
		usersRepo:        usersRepo,
		progressRepo:     progressRepo,
		achievementsRepo: achievementsRepo,
	}
}

// CheckBadges runs every not-yet-granted predicate against a fresh state
// snapshot. Grants go through the conflict-safe insert, so a concurrent
// evaluation for the same user cannot double-grant. Only badges newly
// granted by this call are returned.
func (bs *BadgeService) CheckBadges(ctx context.Context, uid uuid.UUID, trigger string) ([]catalog.Badge, error) {
	grantedIDs, err := bs.achievementsRepo.GrantedIDs(ctx, uid)
	if err != nil {
		return nil, errors.New("repository error: " + err.Error())
	}
	granted := make(map[string]bool, len(grantedIDs))
	for _, id := range grantedIDs {
		granted[id] = true
	}
	state, err := bs.loadState(ctx, uid, trigger)
	if err != nil {
		return nil, err
	}
	newly := make([]catalog.Badge, 0)
	for _, badge := range catalog.Badges {
		if granted[badge.ID] || !badge.Predicate(*state) {
			continue
		}
		inserted, err := bs.achievementsRepo.Grant(ctx, uid, badge.ID)
		if err != nil {
			// Best effort: a failed insert only skips this badge
			slog.Warn("badge grant failed", slog.String("uid", uid.String()), slog.String("badge", badge.ID), slog.String("error", err.Error()))
			continue
		}
		if !inserted {
			// Lost a race against a concurrent check, the badge is granted
			// but not by us
			continue
		}
		if badge.XP > 0 {
			if _, err := bs.usersRepo.AddXP(ctx, uid, badge.XP); err != nil {
				slog.Warn("badge xp grant failed", slog.String("uid", uid.String()), slog.String("badge", badge.ID), slog.String("error", err.Error()))
			}
		}
		newly = append(newly, badge)
	}
	return newly, nil
}

func (bs *BadgeService) EarnedAndAvailable(ctx context.Context, uid uuid.UUID) ([]catalog.Badge, []catalog.Badge, error) {
	grantedIDs, err := bs.achievementsRepo.GrantedIDs(ctx, uid)
	if err != nil {
		return nil, nil, errors.New("repository error: " + err.Error())
	}
	granted := make(map[string]bool, len(grantedIDs))
	for _, id := range grantedIDs {
		granted[id] = true
	}
	earned := make([]catalog.Badge, 0, len(grantedIDs))
	available := make([]catalog.Badge, 0, len(catalog.Badges))
	for _, badge := range catalog.Badges {
		if granted[badge.ID] {
			earned = append(earned, badge)
		} else {
			available = append(available, badge)
		}
	}
	return earned, available, nil
}

func (bs *BadgeService) loadState(ctx context.Context, uid uuid.UUID, trigger string) (*catalog.BadgeState, error) {
	user, err := bs.usersRepo.FindByID(ctx, uid)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return nil, err
		}
		return nil, errors.New("repository error: " + err.Error())
	}
	progress, err := bs.progressRepo.GetByUser(ctx, uid)
	if err != nil {
		return nil, errors.New("repository error: " + err.Error())
	}
	perfect, err := bs.progressRepo.CountPerfect(ctx, uid)
	if err != nil {
		return nil, errors.New("repository error: " + err.Error())
	}
	completed := make(map[string]bool, len(progress))
	for _, p := range progress {
		if p.Completed {
			completed[p.SectionID] = true
		}
	}
	return &catalog.BadgeState{
		Completed:      completed,
		PerfectQuizzes: perfect,
		StreakDays:     user.StreakDays,
		TotalXP:        user.TotalXP,
		Trigger:        trigger,
	}, nil
}
