package kafka

import (
	"encoding/json"

	"github.com/Shopify/sarama"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/Nalina-Ramesh/finova-ai-finance-guide/internal/logger"
	"github.com/Nalina-Ramesh/finova-ai-finance-guide/internal/model/insights"
)

type producerConfig interface {
	Brokers() []string
	InsightsTopic() string
}

type Producer struct {
	producer sarama.SyncProducer
	topic    string
}

func NewProducer(cfg producerConfig) (*Producer, error) {
	config := sarama.NewConfig()
	config.Version = sarama.V2_5_0_0
	config.Producer.RequiredAcks = sarama.WaitForAll
	config.Producer.Return.Successes = true

	producer, err := sarama.NewSyncProducer(cfg.Brokers(), config)
	return &Producer{
		producer: producer,
		topic:    cfg.InsightsTopic(),
	}, err
}

// RequestInsight enqueues one report-generation request, keyed by user
// so per-user requests stay ordered within a partition.
func (p *Producer) RequestInsight(req insights.Request) error {
	payload, err := json.Marshal(req)
	if err != nil {
		return errors.Wrap(err, "marshal insight request")
	}
	_, _, err = p.producer.SendMessage(&sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(req.UserID),
		Value: sarama.ByteEncoder(payload),
	})
	return errors.Wrap(err, "produce insight request")
}

func (p *Producer) Close() {
	err := p.producer.Close()
	if err != nil {
		logger.Error("failed to close producer", zap.Error(err))
	}
}
