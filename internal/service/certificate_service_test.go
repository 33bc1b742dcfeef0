package service_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/yavin/platform/internal/repository/mocks"
	"github.com/yavin/platform/internal/service"
	"github.com/yavin/platform/pkg/entity"
)

func completedCore(except ...string) []entity.Progress {
	skip := make(map[string]bool, len(except))
	for _, id := range except {
		skip[id] = true
	}
	progress := make([]entity.Progress, 0)
	for _, id := range []string{"foundations", "learning", "neural", "deep", "modern", "ethics"} {
		if skip[id] {
			continue
		}
		progress = append(progress, entity.Progress{SectionID: id, Completed: true})
	}
	return progress
}

func TestGenerateCertificate(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	usersRepo := mocks.NewMockUsersRepositoryI(ctrl)
	progressRepo := mocks.NewMockProgressRepositoryI(ctrl)
	serv := service.NewCertificateService(usersRepo, progressRepo)
	uid := uuid.New()
	ctx := context.Background()
	t.Run("missing core section blocks eligibility", func(t *testing.T) {
		progressRepo.EXPECT().GetByUser(gomock.Any(), uid).Return(completedCore("ethics"), nil)
		cert, eligibility, err := serv.Generate(ctx, uid)
		assert.NoError(t, err)
		assert.Nil(t, cert)
		assert.Equal(t, entity.CertificateEligibility{Eligible: false, Remaining: []string{"ethics"}}, *eligibility)
	})
	t.Run("optional sections do not gate the certificate", func(t *testing.T) {
		progressRepo.EXPECT().GetByUser(gomock.Any(), uid).Return(completedCore(), nil)
		usersRepo.EXPECT().FindByID(gomock.Any(), uid).Return(&entity.User{
			ID:      uid,
			Email:   "ada@example.com",
			Name:    "Ada",
			TotalXP: 850,
		}, nil)
		cert, eligibility, err := serv.Generate(ctx, uid)
		assert.NoError(t, err)
		assert.Nil(t, eligibility)
		assert.Equal(t, "Ada", cert.Name)
		assert.Equal(t, 850, cert.TotalXP)
		prefix := "YAVIN-" + strings.ToUpper(uid.String()[:8]) + "-"
		assert.Equal(t, prefix+time.Now().Format("20060102"), cert.CertificateID)
	})
	t.Run("name falls back to email local part", func(t *testing.T) {
		progressRepo.EXPECT().GetByUser(gomock.Any(), uid).Return(completedCore(), nil)
		usersRepo.EXPECT().FindByID(gomock.Any(), uid).Return(&entity.User{
			ID:    uid,
			Email: "ada@example.com",
		}, nil)
		cert, _, err := serv.Generate(ctx, uid)
		assert.NoError(t, err)
		assert.Equal(t, "ada", cert.Name)
	})
	t.Run("average over recorded quiz scores", func(t *testing.T) {
		progress := completedCore()
		hundred, eighty := 100, 80
		progress[0].QuizScore = &hundred
		progress[1].QuizScore = &eighty
		progressRepo.EXPECT().GetByUser(gomock.Any(), uid).Return(progress, nil)
		usersRepo.EXPECT().FindByID(gomock.Any(), uid).Return(&entity.User{
			ID:    uid,
			Email: "ada@example.com",
		}, nil)
		cert, _, err := serv.Generate(ctx, uid)
		assert.NoError(t, err)
		assert.Equal(t, 90, cert.AverageScore)
	})
	t.Run("no quizzes yet averages to zero", func(t *testing.T) {
		progressRepo.EXPECT().GetByUser(gomock.Any(), uid).Return(completedCore(), nil)
		usersRepo.EXPECT().FindByID(gomock.Any(), uid).Return(&entity.User{
			ID:    uid,
			Email: "ada@example.com",
		}, nil)
		cert, _, err := serv.Generate(ctx, uid)
		assert.NoError(t, err)
		assert.Equal(t, 0, cert.AverageScore)
	})
	t.Run("repo error", func(t *testing.T) {
		progressRepo.EXPECT().GetByUser(gomock.Any(), uid).Return(nil, errors.New("db error"))
		_, _, err := serv.Generate(ctx, uid)
		assert.Error(t, err)
	})
}
