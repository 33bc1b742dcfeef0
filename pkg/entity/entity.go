package entity

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID               uuid.UUID
	Email            string
	PasswordHash     string
	Name             string
	CreatedAt        time.Time
	StreakDays       int
	TotalXP          int
	LastActivityDate *time.Time
}

// Progress is a single (user, section) ledger row
type Progress struct {
	SectionID        string     `json:"section_id"`
	Completed        bool       `json:"completed"`
	CompletedAt      *time.Time `json:"completed_at,omitempty"`
	TimeSpentSeconds int        `json:"time_spent_seconds"`
	QuizScore        *int       `json:"quiz_score,omitempty"`
	QuizCompletedAt  *time.Time `json:"quiz_completed_at,omitempty"`
}

type BadgeGrant struct {
	BadgeID  string    `json:"badge_id"`
	EarnedAt time.Time `json:"earned_at"`
}

type ProgressResult struct {
	XPEarned   int `json:"xp_earned"`
	TotalXP    int `json:"total_xp"`
	StreakDays int `json:"streak_days"`
}

type QuizResult struct {
	Score      int  `json:"score"`
	Total      int  `json:"total"`
	Percentage int  `json:"percentage"`
	BonusXP    int  `json:"bonus_xp"`
	LoggedIn   bool `json:"logged_in"`
}

type Certificate struct {
	CertificateID string    `json:"certificate_id"`
	Name          string    `json:"name"`
	TotalXP       int       `json:"total_xp"`
	AverageScore  int       `json:"average_score"`
	IssuedAt      time.Time `json:"issued_at"`
}

type Feedback struct {
	UserID  *uuid.UUID
	Name    string
	Email   string
	Rating  int
	Message string
	PageURL string
}

// CertificateEligibility is returned while core sections are still missing
type CertificateEligibility struct {
	Eligible  bool     `json:"eligible"`
	Remaining []string `json:"remaining"`
}
