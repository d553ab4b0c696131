package planner

import (
	"fmt"
	"strings"
)

// LessonSystemPrompt frames the model as an instructional designer for
// lesson generation.
const LessonSystemPrompt = `You are an expert instructional designer and teacher. You create detailed, classroom-ready lesson plans.`

// QuizSystemPrompt frames the model as an assessment designer for quiz
// generation.
const QuizSystemPrompt = `You are an assessment designer. You create quizzes strictly from the lesson material you are given.`

// difficultyGuidance selects a guidance clause per difficulty level.
// Unknown values fall back to a generic clause rather than failing;
// prompt building is total over its input.
func difficultyGuidance(d Difficulty) string {
	switch d {
	case DifficultyEasy:
		return "Use simple language, foundational explainers, and concrete everyday examples."
	case DifficultyMedium:
		return "Use balanced depth, some technical vocabulary, and 1-2 brief real-world examples."
	case DifficultyHard:
		return "Use advanced terminology, deeper conceptual links, and include extension tasks for high achievers."
	default:
		return "Use balanced language and depth."
	}
}

// BuildLessonPrompt assembles the lesson generation instruction from an
// input set. Pure string formatting: the caller validates required
// fields, and no value of the input can make this fail.
func BuildLessonPrompt(in InputSet) string {
	var b strings.Builder

	b.WriteString("Create a detailed, classroom-ready LESSON PLAN.\n\n")

	b.WriteString("Constraints & format:\n")
	b.WriteString(fmt.Sprintf("- Write the ENTIRE output in %s.\n", in.Language))
	b.WriteString(fmt.Sprintf("- Tailor to grade/level: %s\n", in.Grade))
	b.WriteString(fmt.Sprintf("- Total duration: %s\n", in.Duration))
	b.WriteString(fmt.Sprintf("- Difficulty level: %s. %s\n", in.Difficulty, difficultyGuidance(in.Difficulty)))
	b.WriteString("- The lesson must be fun, practical, and interactive.\n")
	b.WriteString("- Return ONLY Markdown (no code fences). Use headings, bullets, and tables where helpful.\n")

	b.WriteString(`
Required sections (use clear Markdown headings):
1. Title & Overview (1-2 sentences)
2. Learning Objectives (bulleted, measurable)
3. Required Materials (bulleted)
4. Prior Knowledge (short)
5. Lesson Flow with Time Boxes (table: Step | Time | What to do | Teacher notes)
6. Interactive Activities (2-3 activities; include clear instructions)
7. Differentiation & Accommodations (for mixed ability learners)
8. Assessment (formative + one quick exit ticket)
9. Homework or Extension
10. Safety/Notes (if applicable)
`)

	b.WriteString(fmt.Sprintf("\nSubject: %s\n", in.Subject))
	b.WriteString(fmt.Sprintf("Topic: %s\n", in.Topic))
	b.WriteString(fmt.Sprintf("Learning Objectives: %s\n", in.LearningObjectives))
	b.WriteString(fmt.Sprintf("Customization request: %s\n", in.Customization))

	return b.String()
}

// Delimiters marking the lesson text embedded in a quiz prompt. The
// model is instructed to derive questions only from the enclosed
// content.
const (
	lessonStartMarker = "LESSON PLAN START"
	lessonEndMarker   = "LESSON PLAN END"
)

// BuildQuizPrompt assembles the quiz generation instruction. The lesson
// markdown is embedded verbatim between delimiter markers.
func BuildQuizPrompt(lessonMarkdown string, grade string, language Language, difficulty Difficulty, questionCount int) string {
	var b strings.Builder

	b.WriteString("Based ONLY on the lesson plan content below, create a quiz.\n\n")

	b.WriteString(fmt.Sprintf("- Number of questions: exactly %d\n", questionCount))
	b.WriteString(fmt.Sprintf("- Difficulty: %s\n", difficulty))
	b.WriteString(fmt.Sprintf("- Grade/Level: %s\n", grade))
	b.WriteString(fmt.Sprintf("- Language: %s\n", language))
	b.WriteString("- Mix question types: multiple choice, short answer, and exactly 1 challenge question.\n")
	b.WriteString("- For multiple choice, include 4 options labeled A-D.\n")
	b.WriteString("- Provide an **Answer Key** at the end under a collapsible details block.\n")
	b.WriteString("- Return the quiz as clean Markdown (no code fences).\n")

	b.WriteString("\n" + lessonStartMarker + "\n---\n")
	b.WriteString(lessonMarkdown)
	b.WriteString("\n---\n" + lessonEndMarker + "\n")

	return b.String()
}
