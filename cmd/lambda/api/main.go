package main

import (
	"context"
	"net/http"

	"github.com/aws/aws-lambda-go/events"
	awslambda "github.com/aws/aws-lambda-go/lambda"
	"github.com/sirupsen/logrus"

	"hackathon-demo-api/internal/config"
	"hackathon-demo-api/internal/handlers"
	"hackathon-demo-api/pkg/lambda"
)

var handle lambda.HandlerFunc

func init() {
	cfg, err := config.GetOptimizedConfig()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}
	if err := config.ConfigureLogging(cfg.Logging); err != nil {
		panic("Failed to configure logging: " + err.Error())
	}

	manager := lambda.GetConnectionManager()
	if err := manager.Initialize(cfg); err != nil {
		panic("Failed to initialize container: " + err.Error())
	}

	container, err := manager.GetContainer(context.Background())
	if err != nil {
		panic("Failed to load container: " + err.Error())
	}

	dispatcher, err := handlers.NewDispatcher(container.Services)
	if err != nil {
		panic("Failed to build dispatcher: " + err.Error())
	}
	handle = dispatcher.HandleRequest
}

func handler(ctx context.Context, event events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	lambda.GetConnectionManager().UpdateLastUsed()

	req := &lambda.Request{
		Method:      event.HTTPMethod,
		Path:        event.Path,
		Headers:     event.Headers,
		QueryParams: event.QueryStringParameters,
		Body:        []byte(event.Body),
	}

	resp, err := handle(ctx, req)
	if err != nil {
		logrus.WithError(err).WithField("path", event.Path).Error("Request handling failed")
		return events.APIGatewayProxyResponse{
			StatusCode: http.StatusInternalServerError,
			Headers:    map[string]string{"Content-Type": "application/json; charset=utf-8"},
			Body:       `{"error":"Internal server error","message":"An internal error occurred"}`,
		}, nil
	}

	return events.APIGatewayProxyResponse{
		StatusCode: resp.StatusCode,
		Headers:    resp.Headers,
		Body:       string(resp.Body),
	}, nil
}

func main() {
	awslambda.Start(handler)
}
