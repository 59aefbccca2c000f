package kafka

import (
	"github.com/Shopify/sarama"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"max.ks1230/finance-tracker/internal/logger"
)

type producerConfig interface {
	Brokers() []string
	StatementsTopic() string
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
		topic:    cfg.StatementsTopic(),
	}, err
}

func (p *Producer) RequestStatement(req *StatementRequest) error {
	payload, err := req.ToJSON()
	if err != nil {
		return errors.Wrap(err, "marshal statement request")
	}
	_, _, err = p.producer.SendMessage(&sarama.ProducerMessage{
		Topic: p.topic,
		Value: sarama.ByteEncoder(payload),
	})
	return errors.Wrap(err, "produce statement request")
}

func (p *Producer) Close() {
	err := p.producer.Close()
	if err != nil {
		logger.Error("failed to close producer", zap.Error(err))
	}
}
