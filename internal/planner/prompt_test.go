package planner

import (
	"strings"
	"testing"
)

var sectionHeaders = []string{
	"1. Title & Overview",
	"2. Learning Objectives",
	"3. Required Materials",
	"4. Prior Knowledge",
	"5. Lesson Flow with Time Boxes",
	"6. Interactive Activities",
	"7. Differentiation & Accommodations",
	"8. Assessment",
	"9. Homework or Extension",
	"10. Safety/Notes",
}

func TestBuildLessonPrompt_ContainsFields(t *testing.T) {
	in := ExampleInput()
	prompt := BuildLessonPrompt(in)

	for _, want := range []string{
		"Subject: Science",
		"Topic: The Solar System",
		"Tailor to grade/level: 5",
		"Total duration: 1 hour",
		"Write the ENTIRE output in English.",
		"list the eight planets",
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}

func TestBuildLessonPrompt_AllSectionHeaders(t *testing.T) {
	prompt := BuildLessonPrompt(ExampleInput())

	for _, h := range sectionHeaders {
		if c := strings.Count(prompt, h); c != 1 {
			t.Errorf("expected section header %q exactly once, got %d", h, c)
		}
	}
}

func TestBuildLessonPrompt_DifficultyGuidance(t *testing.T) {
	cases := []struct {
		difficulty Difficulty
		want       string
	}{
		{DifficultyEasy, "simple language"},
		{DifficultyMedium, "balanced depth, some technical vocabulary"},
		{DifficultyHard, "advanced terminology"},
	}

	for _, c := range cases {
		in := ExampleInput()
		in.Difficulty = c.difficulty
		prompt := BuildLessonPrompt(in)
		if !strings.Contains(prompt, c.want) {
			t.Errorf("difficulty %s: prompt missing %q", c.difficulty, c.want)
		}
	}
}

func TestBuildLessonPrompt_UnknownDifficultyFallsBack(t *testing.T) {
	in := ExampleInput()
	in.Difficulty = Difficulty("Brutal")
	prompt := BuildLessonPrompt(in)

	if !strings.Contains(prompt, "Use balanced language and depth.") {
		t.Error("expected generic guidance for unknown difficulty")
	}
	// Still a complete prompt.
	for _, h := range sectionHeaders {
		if !strings.Contains(prompt, h) {
			t.Errorf("prompt missing section header %q", h)
		}
	}
}

func TestBuildLessonPrompt_EmptyCustomizationAllowed(t *testing.T) {
	in := ExampleInput()
	in.Customization = ""
	prompt := BuildLessonPrompt(in)

	if !strings.Contains(prompt, "Customization request:") {
		t.Error("expected customization line even when empty")
	}
}

func TestBuildQuizPrompt_EmbedsLessonVerbatim(t *testing.T) {
	lesson := "# Solar System\n\nThe sun is a star.\n\n| Step | Time |\n|---|---|"
	prompt := BuildQuizPrompt(lesson, "5", LanguageEnglish, DifficultyMedium, 7)

	start := strings.Index(prompt, lessonStartMarker)
	end := strings.Index(prompt, lessonEndMarker)
	if start < 0 || end < 0 || end < start {
		t.Fatal("expected start/end delimiters in order")
	}
	if !strings.Contains(prompt[start:end], lesson) {
		t.Error("expected full lesson text, unmodified, between delimiters")
	}
}

func TestBuildQuizPrompt_StatesQuestionCount(t *testing.T) {
	prompt := BuildQuizPrompt("lesson", "7", LanguageUrdu, DifficultyHard, 12)

	for _, want := range []string{
		"Number of questions: exactly 12",
		"Grade/Level: 7",
		"Language: Urdu",
		"Difficulty: Hard",
		"exactly 1 challenge question",
		"4 options labeled A-D",
		"Answer Key",
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("quiz prompt missing %q", want)
		}
	}
}

func TestClampQuestionCount(t *testing.T) {
	cases := []struct{ in, want int }{
		{0, 3},
		{3, 3},
		{7, 7},
		{15, 15},
		{40, 15},
		{-2, 3},
	}
	for _, c := range cases {
		if got := ClampQuestionCount(c.in); got != c.want {
			t.Errorf("ClampQuestionCount(%d) = %d, want %d", c.in, got, c.want)
		}
	}
}

func TestMissingFields(t *testing.T) {
	in := ExampleInput()
	if missing := in.MissingFields(); len(missing) != 0 {
		t.Fatalf("example input should be complete, missing %v", missing)
	}

	in.Topic = ""
	in.Duration = ""
	missing := in.MissingFields()
	if len(missing) != 2 {
		t.Fatalf("expected 2 missing fields, got %v", missing)
	}
	if missing[0] != "Topic" || missing[1] != "Duration" {
		t.Errorf("unexpected missing fields: %v", missing)
	}

	// Customization is optional.
	in = ExampleInput()
	in.Customization = ""
	if missing := in.MissingFields(); len(missing) != 0 {
		t.Errorf("customization should be optional, got missing %v", missing)
	}
}
