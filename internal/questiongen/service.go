package questiongen

import (
	"context"

	"github.com/thinki-app/thinki-lambda/internal/config"
)

// Archiver records generated question sets after the fact. Archiving is
// best-effort and never fails a generation request.
type Archiver interface {
	Archive(ctx context.Context, req QuestionRequest, questions []map[string]interface{}) error
}

type Service interface {
	GenerateQuestions(ctx context.Context, req QuestionRequest) ([]map[string]interface{}, error)
}

type service struct {
	provider Provider
	archiver Archiver
}

// NewService wires the prompt builder, the model provider and the recovery
// parser. archiver may be nil when persistence is disabled.
func NewService(provider Provider, archiver Archiver) Service {
	return &service{provider: provider, archiver: archiver}
}

func (s *service) GenerateQuestions(ctx context.Context, req QuestionRequest) ([]map[string]interface{}, error) {
	log := config.WithContext(ctx)

	prompt := BuildPrompt(req)

	raw, err := s.provider.SendPrompt(ctx, prompt)
	if err != nil {
		return nil, err
	}

	questions, err := ParseQuestions(raw)
	if err != nil {
		log.WithError(err).Errorf("[QUESTIONGEN] failed to recover questions. Raw response:\n%s", raw)
		return nil, err
	}

	// count bounds the result; the model may return more.
	if len(questions) > req.Count {
		questions = questions[:req.Count]
	}

	if s.archiver != nil {
		if err := s.archiver.Archive(ctx, req, questions); err != nil {
			log.WithError(err).Warn("failed to archive generated question set")
		}
	}

	log.Infof("[QUESTIONGEN] generated %d %s questions", len(questions), req.Subject)
	return questions, nil
}
