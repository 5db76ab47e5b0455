package questiongen

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// Field is one open-ended request or context field. Callers may attach
// arbitrary named scalars to a request; arrival order is preserved so prompts
// render the same way the caller wrote them.
type Field struct {
	Name  string
	Value interface{}
}

type Context struct {
	Age                    int
	OnboardingEnglishScore *int
	OnboardingMathScore    *int
	Language               string
	Extras                 []Field
}

type QuestionRequest struct {
	Action   string
	YearBand string
	Subject  string
	Count    int
	EMA      float64
	Context  Context
	Template string
	Extras   []Field
}

type QuestionResponse struct {
	Success   bool                     `json:"success"`
	Questions []map[string]interface{} `json:"questions"`
	Message   string                   `json:"message,omitempty"`
}

func (c *Context) UnmarshalJSON(data []byte) error {
	c.Language = "en"

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	if err := expectObjectStart(dec); err != nil {
		return fmt.Errorf("context: %w", err)
	}

	for dec.More() {
		key, err := nextKey(dec)
		if err != nil {
			return err
		}

		switch key {
		case "age":
			err = dec.Decode(&c.Age)
		case "onboarding_english_score":
			err = dec.Decode(&c.OnboardingEnglishScore)
		case "onboarding_math_score":
			err = dec.Decode(&c.OnboardingMathScore)
		case "language":
			err = dec.Decode(&c.Language)
		default:
			var v interface{}
			if err = dec.Decode(&v); err == nil {
				c.Extras = append(c.Extras, Field{Name: key, Value: v})
			}
		}
		if err != nil {
			return fmt.Errorf("context field %q: %w", key, err)
		}
	}
	return nil
}

func (r *QuestionRequest) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	if err := expectObjectStart(dec); err != nil {
		return fmt.Errorf("request: %w", err)
	}

	for dec.More() {
		key, err := nextKey(dec)
		if err != nil {
			return err
		}

		switch key {
		case "action":
			err = dec.Decode(&r.Action)
		case "year_band":
			err = dec.Decode(&r.YearBand)
		case "subject":
			err = dec.Decode(&r.Subject)
		case "count":
			err = dec.Decode(&r.Count)
		case "ema":
			err = dec.Decode(&r.EMA)
		case "context":
			err = dec.Decode(&r.Context)
		case "template":
			err = dec.Decode(&r.Template)
		default:
			var v interface{}
			if err = dec.Decode(&v); err == nil {
				r.Extras = append(r.Extras, Field{Name: key, Value: v})
			}
		}
		if err != nil {
			return fmt.Errorf("request field %q: %w", key, err)
		}
	}
	return nil
}

func expectObjectStart(dec *json.Decoder) error {
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return errors.New("value must be a JSON object")
	}
	return nil
}

func nextKey(dec *json.Decoder) (string, error) {
	tok, err := dec.Token()
	if err != nil {
		return "", err
	}
	key, ok := tok.(string)
	if !ok {
		return "", fmt.Errorf("unexpected token %v, expected object key", tok)
	}
	return key, nil
}
