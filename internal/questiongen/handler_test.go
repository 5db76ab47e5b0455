package questiongen

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validEnglishBody = `{
	"action": "generate",
	"year_band": "Y5",
	"subject": "English",
	"count": 2,
	"ema": 0.65,
	"context": {"age": 9, "onboarding_english_score": 78, "language": "en"}
}`

func postGenerate(t *testing.T, h *Handler, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/generate", strings.NewReader(body))
	rec := httptest.NewRecorder()
	Routes(h).ServeHTTP(rec, req)
	return rec
}

func TestHandler_GenerateQuestions(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		provider := &stubProvider{response: "```json\n[{\"id\": 1}, {\"id\": 2}]\n```"}
		h := NewHandler(NewService(provider, nil), "english")

		rec := postGenerate(t, h, validEnglishBody)

		require.Equal(t, http.StatusCreated, rec.Code)

		var resp QuestionResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.True(t, resp.Success)
		assert.Len(t, resp.Questions, 2)
		assert.Equal(t, "Successfully generated 2 English questions", resp.Message)
	})

	t.Run("InvalidBody", func(t *testing.T) {
		h := NewHandler(NewService(&stubProvider{}, nil), "english")

		rec := postGenerate(t, h, "{not json")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("WrongAction", func(t *testing.T) {
		h := NewHandler(NewService(&stubProvider{}, nil), "english")

		body := strings.Replace(validEnglishBody, `"generate"`, `"delete"`, 1)
		rec := postGenerate(t, h, body)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "action must be 'generate'")
	})

	t.Run("WrongSubjectForMount", func(t *testing.T) {
		h := NewHandler(NewService(&stubProvider{}, nil), "math")

		rec := postGenerate(t, h, validEnglishBody)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "subject must be 'math'")
	})

	t.Run("SubjectCheckIsCaseInsensitive", func(t *testing.T) {
		provider := &stubProvider{response: `[{"id": 1}]`}
		h := NewHandler(NewService(provider, nil), "english")

		body := strings.Replace(validEnglishBody, `"English"`, `"ENGLISH"`, 1)
		rec := postGenerate(t, h, body)

		assert.Equal(t, http.StatusCreated, rec.Code)
	})

	t.Run("GenericMountAcceptsAnySubject", func(t *testing.T) {
		provider := &stubProvider{response: `[{"id": 1}]`}
		h := NewHandler(NewService(provider, nil), "")

		body := strings.Replace(validEnglishBody, `"English"`, `"History"`, 1)
		rec := postGenerate(t, h, body)

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Contains(t, provider.gotPrompt, "History questions")
	})

	t.Run("NegativeCount", func(t *testing.T) {
		h := NewHandler(NewService(&stubProvider{}, nil), "english")

		body := strings.Replace(validEnglishBody, `"count": 2`, `"count": -1`, 1)
		rec := postGenerate(t, h, body)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("MissingAge", func(t *testing.T) {
		h := NewHandler(NewService(&stubProvider{}, nil), "english")

		body := strings.Replace(validEnglishBody, `"age": 9, `, "", 1)
		rec := postGenerate(t, h, body)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("GenerationFailure", func(t *testing.T) {
		provider := &stubProvider{response: "no structured data here"}
		h := NewHandler(NewService(provider, nil), "english")

		rec := postGenerate(t, h, validEnglishBody)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)

		var resp QuestionResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.False(t, resp.Success)
		assert.Equal(t, "failed to generate questions", resp.Message)
		assert.Empty(t, resp.Questions)
	})
}
