package history

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/thinki-app/thinki-lambda/internal/auth"
	"github.com/thinki-app/thinki-lambda/internal/config"
	"github.com/thinki-app/thinki-lambda/internal/questiongen"
)

const defaultListLimit = 50

type HistoryService interface {
	// Archive satisfies questiongen.Archiver.
	Archive(ctx context.Context, req questiongen.QuestionRequest, questions []map[string]interface{}) error
	GetQuestionSet(ctx context.Context, id string) (*QuestionSetWithContextDTO, error)
	ListQuestionSets(ctx context.Context, subject string, limit int) ([]*QuestionSet, error)
	DeleteQuestionSet(ctx context.Context, id string) error
}

type historyService struct {
	repo QuestionSetRepository
}

func NewService(repo QuestionSetRepository) HistoryService {
	return &historyService{repo: repo}
}

func (s *historyService) Archive(ctx context.Context, req questiongen.QuestionRequest, questions []map[string]interface{}) error {
	log := config.WithContext(ctx)

	// Student context is PII; only the encrypted rendering is stored.
	encrypted, err := config.Encrypt(questiongen.FormatContext(req.Context))
	if err != nil {
		return fmt.Errorf("failed to encrypt student context: %w", err)
	}

	set := &QuestionSet{
		UserID:         userIDFromContext(ctx),
		Subject:        req.Subject,
		YearBand:       req.YearBand,
		EMA:            req.EMA,
		RequestedCount: req.Count,
		GeneratedCount: len(questions),
		StudentContext: encrypted,
	}

	for i, q := range questions {
		gq := GeneratedQuestion{
			Content:       asString(q["question"]),
			QuestionType:  asString(q["type"]),
			CorrectAnswer: asString(q["correct_answer"]),
			Difficulty:    asString(q["difficulty"]),
			OrderIndex:    i,
		}

		if opts, ok := q["options"]; ok && opts != nil {
			encoded, err := json.Marshal(opts)
			if err != nil {
				return fmt.Errorf("failed to marshal options of question %d: %w", i, err)
			}
			gq.Options = encoded
		}
		if explanation := asString(q["explanation"]); explanation != "" {
			gq.Explanation = &explanation
		}

		set.Questions = append(set.Questions, gq)
	}

	if err := s.repo.Create(set); err != nil {
		return err
	}

	log.WithField("question_set_id", set.ID.String()).Info("archived generated question set")
	return nil
}

func userIDFromContext(ctx context.Context) *uuid.UUID {
	claims, err := auth.GetUserClaimsFromContext(ctx)
	if err != nil {
		return nil
	}
	id, err := uuid.Parse(claims.UserID)
	if err != nil {
		return nil
	}
	return &id
}

func asString(v interface{}) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	default:
		return fmt.Sprintf("%v", t)
	}
}

func (s *historyService) GetQuestionSet(ctx context.Context, id string) (*QuestionSetWithContextDTO, error) {
	log := config.WithContext(ctx)

	set, err := s.repo.GetByID(id)
	if err != nil {
		log.WithError(err).Errorf("failed to fetch question set %s", id)
		return nil, err
	}
	if set == nil {
		return nil, nil
	}

	studentContext, err := config.Decrypt(set.StudentContext)
	if err != nil {
		log.WithError(err).Warnf("failed to decrypt context of question set %s", id)
		studentContext = ""
	}

	return &QuestionSetWithContextDTO{
		QuestionSet:    set,
		StudentContext: studentContext,
	}, nil
}

func (s *historyService) ListQuestionSets(ctx context.Context, subject string, limit int) ([]*QuestionSet, error) {
	log := config.WithContext(ctx)

	if limit <= 0 {
		limit = defaultListLimit
	}

	var (
		sets []*QuestionSet
		err  error
	)
	if subject != "" {
		sets, err = s.repo.ListBySubject(subject, limit)
	} else {
		sets, err = s.repo.ListRecent(limit)
	}
	if err != nil {
		log.WithError(err).Error("failed to list question sets")
		return nil, err
	}

	return sets, nil
}

func (s *historyService) DeleteQuestionSet(ctx context.Context, id string) error {
	log := config.WithContext(ctx)

	if err := s.repo.Delete(id); err != nil {
		log.WithError(err).Errorf("failed to delete question set %s", id)
		return err
	}

	log.WithField("question_set_id", id).Info("question set deleted")
	return nil
}
