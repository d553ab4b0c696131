package planner

// Difficulty is the target difficulty for generated material.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "Easy"
	DifficultyMedium Difficulty = "Medium"
	DifficultyHard   Difficulty = "Hard"
)

// Difficulties lists the selectable difficulty levels in display order.
var Difficulties = []Difficulty{DifficultyEasy, DifficultyMedium, DifficultyHard}

// Language is the output language for generated material.
type Language string

const (
	LanguageEnglish Language = "English"
	LanguageUrdu    Language = "Urdu"
	LanguageArabic  Language = "Arabic"
	LanguageFrench  Language = "French"
	LanguageSpanish Language = "Spanish"
)

// Languages lists the selectable output languages in display order.
var Languages = []Language{
	LanguageEnglish,
	LanguageUrdu,
	LanguageArabic,
	LanguageFrench,
	LanguageSpanish,
}

// Question count bounds for quiz generation.
const (
	MinQuestionCount     = 3
	MaxQuestionCount     = 15
	DefaultQuestionCount = 7
)

// ClampQuestionCount clamps n to the allowed quiz question range.
func ClampQuestionCount(n int) int {
	if n < MinQuestionCount {
		return MinQuestionCount
	}
	if n > MaxQuestionCount {
		return MaxQuestionCount
	}
	return n
}

// InputSet holds the user-supplied parameters for one lesson generation.
// It is read fresh from the form at each request and snapshotted into
// the resulting artifact.
type InputSet struct {
	Subject            string
	Topic              string
	Grade              string
	Duration           string
	LearningObjectives string
	Customization      string // optional
	Difficulty         Difficulty
	Language           Language
	QuizQuestionCount  int
}

// MissingFields returns the names of required fields that are empty.
// Customization is the only optional free-text field.
func (in InputSet) MissingFields() []string {
	var missing []string
	required := []struct {
		name  string
		value string
	}{
		{"Subject", in.Subject},
		{"Topic", in.Topic},
		{"Grade", in.Grade},
		{"Duration", in.Duration},
		{"Learning Objectives", in.LearningObjectives},
	}
	for _, f := range required {
		if f.value == "" {
			missing = append(missing, f.name)
		}
	}
	return missing
}

// ExampleInput returns the demo input set used for quick prefill.
func ExampleInput() InputSet {
	return InputSet{
		Subject:            "Science",
		Topic:              "The Solar System",
		Grade:              "5",
		Duration:           "1 hour",
		LearningObjectives: "Students will be able to list the eight planets, describe their order from the sun, and compare two planets by size and composition.",
		Customization:      "Make it fun and interactive with a quick game and a hands-on mini-model activity.",
		Difficulty:         DifficultyMedium,
		Language:           LanguageEnglish,
		QuizQuestionCount:  DefaultQuestionCount,
	}
}
