package catalog

// Trigger tags for events that aren't derivable from stored state
const (
	TriggerPlaygroundRun = "playground_run"
	TriggerChatUsed      = "chat_used"
)

// BadgeState is the snapshot a badge predicate is evaluated against
type BadgeState struct {
	Completed      map[string]bool
	PerfectQuizzes int
	StreakDays     int
	TotalXP        int
	Trigger        string
}

func (st BadgeState) completedCount() int {
	n := 0
	for _, done := range st.Completed {
		if done {
			n++
		}
	}
	return n
}

type Badge struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	XP          int    `json:"xp"`

	Predicate func(BadgeState) bool `json:"-"`
}

// Badges is the fixed achievement catalog. Predicates are independent,
// no badge depends on another badge being granted.
var Badges = []Badge{
	{
		ID: "first-steps", Name: "First Steps", Icon: "🌱", XP: 25,
		Description: "Complete your first section",
		Predicate:   func(st BadgeState) bool { return st.completedCount() >= 1 },
	},
	{
		ID: "quick-learner", Name: "Quick Learner", Icon: "⚡", XP: 50,
		Description: "Complete three sections",
		Predicate:   func(st BadgeState) bool { return st.completedCount() >= 3 },
	},
	{
		ID: "halfway-there", Name: "Halfway There", Icon: "🧭", XP: 75,
		Description: "Complete half of the curriculum",
		Predicate:   func(st BadgeState) bool { return st.completedCount() >= 4 },
	},
	{
		ID: "completionist", Name: "Completionist", Icon: "🏆", XP: 200,
		Description: "Complete every section",
		Predicate:   func(st BadgeState) bool { return st.completedCount() >= len(Sections) },
	},
	{
		ID: "ai-curious", Name: "AI Curious", Icon: "💬", XP: 20,
		Description: "Ask the AI assistant a question",
		Predicate:   func(st BadgeState) bool { return st.Trigger == TriggerChatUsed },
	},
	{
		ID: "deep-diver", Name: "Deep Diver", Icon: "🤿", XP: 50,
		Description: "Complete the Deep Learning section",
		Predicate:   func(st BadgeState) bool { return st.Completed["deep"] },
	},
	{
		ID: "quiz-novice", Name: "Quiz Novice", Icon: "📝", XP: 25,
		Description: "Get a perfect score on a quiz",
		Predicate:   func(st BadgeState) bool { return st.PerfectQuizzes >= 1 },
	},
	{
		ID: "quiz-master", Name: "Quiz Master", Icon: "🎯", XP: 75,
		Description: "Get a perfect score on three quizzes",
		Predicate:   func(st BadgeState) bool { return st.PerfectQuizzes >= 3 },
	},
	{
		ID: "perfectionist", Name: "Perfectionist", Icon: "💎", XP: 150,
		Description: "Get a perfect score on five quizzes",
		Predicate:   func(st BadgeState) bool { return st.PerfectQuizzes >= 5 },
	},
	{
		ID: "on-a-roll", Name: "On a Roll", Icon: "🔥", XP: 30,
		Description: "Keep a three-day learning streak",
		Predicate:   func(st BadgeState) bool { return st.StreakDays >= 3 },
	},
	{
		ID: "week-warrior", Name: "Week Warrior", Icon: "📅", XP: 100,
		Description: "Keep a seven-day learning streak",
		Predicate:   func(st BadgeState) bool { return st.StreakDays >= 7 },
	},
	{
		ID: "unstoppable", Name: "Unstoppable", Icon: "🚀", XP: 300,
		Description: "Keep a thirty-day learning streak",
		Predicate:   func(st BadgeState) bool { return st.StreakDays >= 30 },
	},
	{
		ID: "rising-star", Name: "Rising Star", Icon: "⭐", XP: 50,
		Description: "Earn 500 XP",
		Predicate:   func(st BadgeState) bool { return st.TotalXP >= 500 },
	},
	{
		ID: "knowledge-seeker", Name: "Knowledge Seeker", Icon: "🔭", XP: 100,
		Description: "Earn 1000 XP",
		Predicate:   func(st BadgeState) bool { return st.TotalXP >= 1000 },
	},
	{
		ID: "code-explorer", Name: "Code Explorer", Icon: "🧪", XP: 40,
		Description: "Run code in the playground",
		Predicate:   func(st BadgeState) bool { return st.Trigger == TriggerPlaygroundRun },
	},
}

func BadgeByID(id string) (Badge, bool) {
	for _, b := range Badges {
		if b.ID == id {
			return b, true
		}
	}
	return Badge{}, false
}
