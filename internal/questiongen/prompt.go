package questiongen

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Template argument order: count, age, year band, context block, EMA,
// language or subject.
const englishTemplate = `Generate %[1]d age-appropriate English questions for a %[2]d-year-old student in year band %[3]s.

Context:
%[4]s
- EMA (Expected Mastery Average): %[5]s

Requirements:
- Questions should be appropriate for year band %[3]s
- Difficulty should align with EMA score of %[5]s
- Questions should match the student's English proficiency level
- Return questions in %[6]s

Return a JSON array with %[1]d questions. Each question should have:
- "id": unique identifier
- "question": the question text
- "type": question type (e.g., "multiple_choice", "fill_in_blank", "comprehension", etc.)
- "options": array of answer options (if applicable)
- "correct_answer": the correct answer
- "difficulty": difficulty level
- "explanation": brief explanation of the answer

Format the response as valid JSON only, no markdown formatting.`

const mathTemplate = `Generate %[1]d age-appropriate Math questions for a %[2]d-year-old student in year band %[3]s.

Context:
%[4]s
- EMA (Expected Mastery Average): %[5]s

Requirements:
- Questions should be appropriate for year band %[3]s
- Difficulty should align with EMA score of %[5]s
- Questions should match the student's math proficiency level
- Return questions in %[6]s

Return a JSON array with %[1]d questions. Each question should have:
- "id": unique identifier
- "question": the question text
- "type": question type (e.g., "multiple_choice", "word_problem", "calculation", etc.)
- "options": array of answer options (if applicable)
- "correct_answer": the correct answer
- "difficulty": difficulty level
- "explanation": brief explanation of the solution

Format the response as valid JSON only, no markdown formatting.`

const genericTemplate = `Generate %[1]d age-appropriate %[6]s questions for a %[2]d-year-old student in year band %[3]s.

Context:
%[4]s
- EMA (Expected Mastery Average): %[5]s

Return a JSON array with %[1]d questions. Each question should have:
- "id": unique identifier
- "question": the question text
- "type": question type
- "options": array of answer options (if applicable)
- "correct_answer": the correct answer
- "difficulty": difficulty level
- "explanation": brief explanation

Format the response as valid JSON only, no markdown formatting.`

var standardContextFields = map[string]bool{
	"age":                      true,
	"onboarding_english_score": true,
	"onboarding_math_score":    true,
	"language":                 true,
}

// FormatContext renders the student context as a fixed-order block of
// "- Name: value" lines. Extra fields follow the standard ones in arrival
// order, with their names rewritten to Title Case for display.
func FormatContext(c Context) string {
	lines := []string{fmt.Sprintf("- Age: %d", c.Age)}

	if c.OnboardingEnglishScore != nil {
		lines = append(lines, fmt.Sprintf("- Onboarding English Score: %d", *c.OnboardingEnglishScore))
	}
	if c.OnboardingMathScore != nil {
		lines = append(lines, fmt.Sprintf("- Onboarding Math Score: %d", *c.OnboardingMathScore))
	}
	lines = append(lines, "- Language: "+c.Language)

	for _, f := range c.Extras {
		if f.Value == nil || standardContextFields[f.Name] {
			continue
		}
		lines = append(lines, fmt.Sprintf("- %s: %s", titleCase(f.Name), formatScalar(f.Value)))
	}

	return strings.Join(lines, "\n")
}

// BuildPrompt composes the final model prompt. A caller-supplied template
// takes precedence over the built-in subject templates.
func BuildPrompt(req QuestionRequest) string {
	if req.Template != "" {
		return expandTemplate(req)
	}

	contextBlock := FormatContext(req.Context)
	ema := formatFloat(req.EMA)

	switch strings.ToLower(req.Subject) {
	case "english":
		return fmt.Sprintf(englishTemplate, req.Count, req.Context.Age, req.YearBand, contextBlock, ema, req.Context.Language)
	case "math":
		return fmt.Sprintf(mathTemplate, req.Count, req.Context.Age, req.YearBand, contextBlock, ema, req.Context.Language)
	default:
		return fmt.Sprintf(genericTemplate, req.Count, req.Context.Age, req.YearBand, contextBlock, ema, req.Subject)
	}
}

// reservedPlaceholders always resolve from the request itself and shadow
// any extra request field carrying the same name.
var reservedPlaceholders = map[string]bool{
	"count":     true,
	"subject":   true,
	"year_band": true,
	"ema":       true,
	"age":       true,
	"language":  true,
	"context":   true,
}

// expandTemplate replaces every known {name} placeholder by literal text.
// strings.Replacer makes a single left-to-right pass, so substituted values
// are never re-scanned for placeholders, and unknown {name} tokens survive
// verbatim as a visible signal to the template author.
func expandTemplate(req QuestionRequest) string {
	pairs := []string{
		"{count}", strconv.Itoa(req.Count),
		"{subject}", req.Subject,
		"{year_band}", req.YearBand,
		"{ema}", formatFloat(req.EMA),
		"{age}", strconv.Itoa(req.Context.Age),
		"{language}", req.Context.Language,
		"{context}", FormatContext(req.Context),
	}

	for _, f := range req.Extras {
		if reservedPlaceholders[f.Name] || f.Value == nil {
			continue
		}
		pairs = append(pairs, "{"+f.Name+"}", formatScalar(f.Value))
	}

	return strings.NewReplacer(pairs...).Replace(req.Template)
}

// titleCase rewrites an underscore-separated field name for display,
// e.g. "learning_style" -> "Learning Style".
func titleCase(name string) string {
	words := strings.Split(name, "_")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + strings.ToLower(w[1:])
	}
	return strings.Join(words, " ")
}

func formatScalar(v interface{}) string {
	switch t := v.(type) {
	case string:
		return t
	case json.Number:
		return t.String()
	case bool:
		return strconv.FormatBool(t)
	default:
		return fmt.Sprintf("%v", t)
	}
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
