package questiongen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseQuestions(t *testing.T) {
	t.Run("FencedJSONArray", func(t *testing.T) {
		questions, err := ParseQuestions("```json\n[{\"id\": 1}]\n```")

		require.NoError(t, err)
		require.Len(t, questions, 1)
		assert.Equal(t, float64(1), questions[0]["id"])
	})

	t.Run("UntaggedFence", func(t *testing.T) {
		questions, err := ParseQuestions("```\n[{\"id\": \"q1\"}, {\"id\": \"q2\"}]\n```")

		require.NoError(t, err)
		require.Len(t, questions, 2)
		assert.Equal(t, "q1", questions[0]["id"])
	})

	t.Run("BareArray", func(t *testing.T) {
		questions, err := ParseQuestions(`[{"question": "2+2?", "correct_answer": "4"}]`)

		require.NoError(t, err)
		require.Len(t, questions, 1)
		assert.Equal(t, "4", questions[0]["correct_answer"])
	})

	t.Run("QuestionsKeyedObject", func(t *testing.T) {
		questions, err := ParseQuestions(`{"questions": [{"id": 1}, {"id": 2}]}`)

		require.NoError(t, err)
		require.Len(t, questions, 2)
		assert.Equal(t, float64(2), questions[1]["id"])
	})

	t.Run("SingleObjectWrapped", func(t *testing.T) {
		questions, err := ParseQuestions(`{"id": 1, "question": "What is a noun?"}`)

		require.NoError(t, err)
		require.Len(t, questions, 1)
		assert.Equal(t, "What is a noun?", questions[0]["question"])
	})

	t.Run("ArraySalvagedFromProse", func(t *testing.T) {
		questions, err := ParseQuestions(`here is the answer: [{"id": 1}] hope it helps`)

		require.NoError(t, err)
		require.Len(t, questions, 1)
		assert.Equal(t, float64(1), questions[0]["id"])
	})

	t.Run("ProseWithFencedArray", func(t *testing.T) {
		raw := "Sure! Here are your questions:\n[\n  {\"id\": 1},\n  {\"id\": 2}\n]\nLet me know if you need more."

		questions, err := ParseQuestions(raw)

		require.NoError(t, err)
		assert.Len(t, questions, 2)
	})

	t.Run("RecordOrderPreserved", func(t *testing.T) {
		questions, err := ParseQuestions(`[{"id": "a"}, {"id": "b"}, {"id": "c"}]`)

		require.NoError(t, err)
		require.Len(t, questions, 3)
		assert.Equal(t, "a", questions[0]["id"])
		assert.Equal(t, "b", questions[1]["id"])
		assert.Equal(t, "c", questions[2]["id"])
	})

	t.Run("NotJSONAtAll", func(t *testing.T) {
		_, err := ParseQuestions("not json at all")

		assert.ErrorIs(t, err, ErrUnparsable)
	})

	t.Run("EmptyInput", func(t *testing.T) {
		_, err := ParseQuestions("")

		assert.ErrorIs(t, err, ErrUnparsable)
	})

	t.Run("QuestionsKeyNotAnArray", func(t *testing.T) {
		_, err := ParseQuestions(`{"questions": "none"}`)

		assert.ErrorIs(t, err, ErrUnparsable)
	})

	t.Run("ArrayElementNotAnObject", func(t *testing.T) {
		_, err := ParseQuestions(`[1, 2, 3]`)

		assert.ErrorIs(t, err, ErrUnparsable)
	})

	t.Run("BareScalar", func(t *testing.T) {
		_, err := ParseQuestions(`42`)

		assert.ErrorIs(t, err, ErrUnparsable)
	})

	t.Run("MalformedArrayInProse", func(t *testing.T) {
		_, err := ParseQuestions(`the list is [not, valid json] sorry`)

		assert.ErrorIs(t, err, ErrUnparsable)
	})
}

func TestStripFences(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"JSONTagged", "```json\n[]\n```", "[]"},
		{"Untagged", "```\n[]\n```", "[]"},
		{"NoFences", "  [] ", "[]"},
		{"OnlyWhitespace", "  \n ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, stripFences(tt.in))
		})
	}
}
