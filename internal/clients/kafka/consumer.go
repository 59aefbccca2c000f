package kafka

import (
	"context"
	"fmt"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/Shopify/sarama"
	"max.ks1230/finance-tracker/internal/logger"
)

type consumerConfig interface {
	producerConfig
	ConsumerGroup() string
}

type statementGenerator interface {
	Generate(ctx context.Context, userID int64, period string) (string, error)
}

type statementSink interface {
	CacheStatement(userID int64, period string, statement string) error
}

// Consumer drains the statement request topic, generates each
// statement and drops the result into the sink the API server reads.
type Consumer struct {
	consumerGroup sarama.ConsumerGroup
	topic         string
	generator     statementGenerator
	sink          statementSink
}

func NewConsumer(cfg consumerConfig, generator statementGenerator, sink statementSink) (*Consumer, error) {
	config := sarama.NewConfig()
	config.Version = sarama.V2_5_0_0
	config.Consumer.Offsets.Initial = sarama.OffsetOldest

	consumerGroup, err := sarama.NewConsumerGroup(cfg.Brokers(), cfg.ConsumerGroup(), config)
	return &Consumer{
		consumerGroup: consumerGroup,
		topic:         cfg.StatementsTopic(),
		generator:     generator,
		sink:          sink,
	}, err
}

func (c *Consumer) StartConsuming(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		default:
			err := c.consumerGroup.Consume(ctx, []string{c.topic}, c)
			if err != nil {
				return errors.Wrap(err, fmt.Sprintf("consume from %s", c.topic))
			}
		}
	}
}

func (c *Consumer) Setup(sarama.ConsumerGroupSession) error {
	logger.Info("consumer - setup")
	return nil
}

func (c *Consumer) Cleanup(sarama.ConsumerGroupSession) error {
	logger.Info("consumer - cleanup")
	return nil
}

func (c *Consumer) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for message := range claim.Messages() {
		req, err := StatementRequestFromJSON(message.Value)
		if err != nil {
			logger.Error("cannot unmarshal kafka message", zap.Error(err))
		} else {
			logger.Info(
				"received statement request",
				zap.ByteString("key", message.Key),
				zap.Int64("userID", req.UserID),
				zap.String("period", req.Period),
			)
			c.processRequest(session.Context(), req)
		}
		session.MarkMessage(message, "")
	}

	return nil
}

func (c *Consumer) processRequest(ctx context.Context, req *StatementRequest) {
	text, err := c.generator.Generate(ctx, req.UserID, req.Period)
	if err != nil {
		logger.Error("failed to generate statement", zap.Error(err))
		return
	}
	if err = c.sink.CacheStatement(req.UserID, req.Period, text); err != nil {
		logger.Error("failed to cache statement", zap.Error(err))
	}
}
