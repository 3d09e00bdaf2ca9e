package domain

type Difficulty string

const (
	DifficultyBeginner     Difficulty = "beginner"
	DifficultyIntermediate Difficulty = "intermediate"
	DifficultyAdvanced     Difficulty = "advanced"
)

// ValidDifficulties is the canonical set of accepted difficulty strings.
var ValidDifficulties = map[string]bool{
	"beginner": true, "intermediate": true, "advanced": true,
}

// Categories lists the course categories offered in the catalog, in display order.
var Categories = []string{"farming", "health", "finance", "technology", "business", "crafts"}

type SubmissionStatus string

const (
	SubmissionSubmitted SubmissionStatus = "submitted"
	SubmissionReviewed  SubmissionStatus = "reviewed"
)

type CourseStatus string

const (
	CourseNotStarted CourseStatus = "not-started"
	CourseInProgress CourseStatus = "in-progress"
	CourseCompleted  CourseStatus = "completed"
)

// SkillLevelLabel is the category-scoped label derived from aggregate progress.
type SkillLevelLabel string

const (
	LevelBeginner     SkillLevelLabel = "Beginner"
	LevelIntermediate SkillLevelLabel = "Intermediate"
	LevelAdvanced     SkillLevelLabel = "Advanced"
)
