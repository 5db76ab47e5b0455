package main

import (
	"log"
	"net/http"
	"os"

	"github.com/aws/aws-lambda-go/lambda"
	chiadapter "github.com/awslabs/aws-lambda-go-api-proxy/chi"

	"github.com/thinki-app/thinki-lambda/internal/container"
	"github.com/thinki-app/thinki-lambda/internal/history"
	"github.com/thinki-app/thinki-lambda/internal/router"
)

func main() {
	c := container.New()

	var historyHandler *history.Handler
	if c.HistoryContainer != nil {
		historyHandler = c.HistoryContainer.Handler
	}

	r := router.New(router.RouterConfig{
		QuestionGen:    c.QuestionGenContainer,
		HistoryHandler: historyHandler,
	})

	if os.Getenv("AWS_LAMBDA_FUNCTION_NAME") != "" {
		chiLambda := chiadapter.New(r)
		lambda.Start(chiLambda.ProxyWithContext)
		return
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}

	log.Printf("listening on :%s", port)
	if err := http.ListenAndServe(":"+port, r); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
