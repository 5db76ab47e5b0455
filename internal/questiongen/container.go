package questiongen

import "context"

type QuestionGenContainer struct {
	EnglishHandler *Handler
	MathHandler    *Handler
	GenericHandler *Handler
}

func NewQuestionGenContainer(ctx context.Context, archiver Archiver) (*QuestionGenContainer, error) {
	provider, err := NewGeminiProvider(ctx)
	if err != nil {
		return nil, err
	}
	service := NewService(provider, archiver)

	return &QuestionGenContainer{
		EnglishHandler: NewHandler(service, "english"),
		MathHandler:    NewHandler(service, "math"),
		GenericHandler: NewHandler(service, ""),
	}, nil
}
