package history

type QuestionSetWithContextDTO struct {
	*QuestionSet
	StudentContext string `json:"student_context,omitempty"`
}
