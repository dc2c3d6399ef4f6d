package handlers

import (
	"context"
	"net/http"

	"github.com/aws/aws-lambda-go/events"
	"github.com/sirupsen/logrus"

	"hello-samples/internal/probe"
	"hello-samples/pkg/lambda"
)

// GreetingMessage is the constant message returned alongside the caller's IP
const GreetingMessage = "hello world"

// LocationResponse is the JSON body of a successful IP lookup
type LocationResponse struct {
	Message  string `json:"message"`
	Location string `json:"location"`
}

// CheckIPHandler answers Lambda invocations with the caller's public IP
type CheckIPHandler struct {
	prober probe.Prober
	log    logrus.FieldLogger
}

// NewCheckIPHandler creates a new CheckIPHandler
func NewCheckIPHandler(prober probe.Prober, log logrus.FieldLogger) *CheckIPHandler {
	return &CheckIPHandler{
		prober: prober,
		log:    log,
	}
}

// Handle looks up the public IP and wraps it in an API Gateway response.
// The invocation event is accepted but not read. A failed lookup is logged
// and the prober's error is returned unchanged with no response.
func (h *CheckIPHandler) Handle(ctx context.Context, _ events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	h.log.Info("In handler, about to get the IP address...")

	ip, err := h.prober.Probe(ctx)
	if err != nil {
		h.log.WithError(err).Error("Failed to get the IP address")
		return events.APIGatewayProxyResponse{}, err
	}

	h.log.WithField("location", ip).Info("Successfully got the IP address, returning a response.")

	return lambda.NewJSONResponse(http.StatusOK, LocationResponse{
		Message:  GreetingMessage,
		Location: ip,
	})
}
