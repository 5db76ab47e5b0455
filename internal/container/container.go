package container

import (
	"context"
	"log"
	"os"

	"github.com/thinki-app/thinki-lambda/internal/auth"
	"github.com/thinki-app/thinki-lambda/internal/config"
	"github.com/thinki-app/thinki-lambda/internal/history"
	"github.com/thinki-app/thinki-lambda/internal/questiongen"
)

type Container struct {
	QuestionGenContainer *questiongen.QuestionGenContainer
	HistoryContainer     *history.HistoryContainer
}

func New() *Container {
	config.Init()
	auth.Init()

	ctx := context.Background()

	var historyContainer *history.HistoryContainer
	var archiver questiongen.Archiver

	// Persistence is optional: without a DSN the service only generates.
	if dsn := os.Getenv("DATABASE_DSN"); dsn != "" {
		config.InitCrypto()

		if err := config.Connect(ctx, dsn); err != nil {
			log.Fatalf("failed to connect to DB: %v", err)
		}

		var err error
		historyContainer, err = history.NewHistoryContainer(config.DB)
		if err != nil {
			log.Fatalf("failed to initialize question set history: %v", err)
		}
		archiver = historyContainer.Service
	}

	questionGenContainer, err := questiongen.NewQuestionGenContainer(ctx, archiver)
	if err != nil {
		log.Fatalf("failed to initialize question generator: %v", err)
	}

	return &Container{
		QuestionGenContainer: questionGenContainer,
		HistoryContainer:     historyContainer,
	}
}
