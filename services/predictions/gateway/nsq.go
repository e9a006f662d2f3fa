package gateway

import (
	"context"

	"github.com/nycrides/tripcast/internal/pkg/models"
	"github.com/nycrides/tripcast/internal/pkg/nsq"
	"github.com/nycrides/tripcast/services/predictions"
)

type predictionGW struct {
	producer *nsq.Producer
	topic    string
}

// NewPredictionGW creates an NSQ-backed prediction event gateway
func NewPredictionGW(producer *nsq.Producer, topic string) predictions.PredictionGW {
	return &predictionGW{
		producer: producer,
		topic:    topic,
	}
}

func (g *predictionGW) PublishPredictionCompleted(_ context.Context, event models.PredictionEvent) error {
	return g.producer.Publish(g.topic, event)
}
