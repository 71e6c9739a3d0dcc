package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/CoorayNTL/ead-backend/internal/config"
	"github.com/CoorayNTL/ead-backend/internal/entities"

	"github.com/go-playground/validator/v10"
	"github.com/segmentio/kafka-go"
)

// DeliveryUpdate - событие службы доставки об изменении статуса заказа.
type DeliveryUpdate struct {
	OrderID string `json:"order_id" validate:"required"`
	Status  string `json:"status" validate:"required"`
}

type DeliveryStatusSetter interface {
	SetDeliveryStatus(ctx context.Context, orderID, status string) error
}

type kafkaHandler struct {
	dlq      *kafka.Writer
	reader   *kafka.Reader
	logger   *slog.Logger
	validate *validator.Validate
	dlqTopic string
	setter   DeliveryStatusSetter
}

func NewKafkaHandler(logger *slog.Logger, cfg config.Kafka, setter DeliveryStatusSetter) *kafkaHandler {
	return &kafkaHandler{
		logger: logger.With(slog.String("handler", "kafka")),
		reader: kafka.NewReader(kafka.ReaderConfig{
			Brokers: cfg.Brokers,
			GroupID: cfg.GroupID,
			Topic:   cfg.Topic,
			MaxWait: cfg.ReaderMaxWait,
		}),
		dlq: &kafka.Writer{
			Addr:         kafka.TCP(cfg.Brokers...),
			Balancer:     &kafka.LeastBytes{},
			BatchTimeout: cfg.BatchTimeout,
		},
		validate: validator.New(),
		dlqTopic: cfg.DLQTopic,
		setter:   setter,
	}
}

func (h *kafkaHandler) Consume(ctx context.Context) {
	for {
		m, err := h.reader.FetchMessage(ctx)
		if err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, context.Canceled) {
				break
			} else {
				h.logger.Error("failed to fetch message", slog.Any("error", err))
				continue
			}
		}

		updatesInProgress.Inc()
		start := time.Now()

		// В операции обновления уже есть retry
		if err := h.handleDeliveryUpdate(ctx, m); err != nil {
			h.logger.Error("failed to handle message", slog.Any("error", err))
			updatesFailed.Inc()

			// В библиотеке уже есть retry
			if err := h.WriteToDLQ(ctx, m); err != nil {
				h.logger.Error("failed to write message to DLQ", slog.Any("error", err))
				updatesInProgress.Dec()
				continue
			}
			updatesDLQ.Inc()
		} else {
			updatesProcessed.Inc()
		}

		updateProcessingDuration.Observe(time.Since(start).Seconds())
		updatesInProgress.Dec()

		if err := h.reader.CommitMessages(ctx, m); err != nil {
			h.logger.Error("failed to commit message", slog.Any("error", err))
			commitErrors.Inc()
		}
	}
}

func (h *kafkaHandler) handleDeliveryUpdate(ctx context.Context, m kafka.Message) error {
	var update DeliveryUpdate
	if err := json.Unmarshal(m.Value, &update); err != nil {
		return fmt.Errorf("failed to unmarshal delivery update: %w", err)
	}

	if err := h.validate.Struct(update); err != nil {
		return fmt.Errorf("invalid delivery update: %w", err)
	}

	err := h.setter.SetDeliveryStatus(ctx, update.OrderID, update.Status)
	if errors.Is(err, entities.ErrOrderNotFound) {
		// Заказ неизвестен этому сервису, сообщение уходит в DLQ
		return fmt.Errorf("unknown order %s: %w", update.OrderID, err)
	}
	return err
}

func (h *kafkaHandler) WriteToDLQ(ctx context.Context, m kafka.Message) error {
	m.Topic = h.dlqTopic
	return h.dlq.WriteMessages(ctx, m)
}

func (h *kafkaHandler) Close() error {
	if err := h.reader.Close(); err != nil {
		return err
	}
	return h.dlq.Close()
}
