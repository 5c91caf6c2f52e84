package notification

import (
	"context"
	"log/slog"

	"tankwatch/config"
	deliverycontext "tankwatch/internal/delivery/context"
	"tankwatch/internal/domain/entity"
	"tankwatch/internal/errors"

	"firebase.google.com/go/v4/messaging"
)

// maxMulticastTokens is the FCM limit per multicast request
const maxMulticastTokens = 500

// multicastSender is the part of *messaging.Client used for fan-out
type multicastSender interface {
	SendEachForMulticast(ctx context.Context, message *messaging.MulticastMessage) (*messaging.BatchResponse, error)
}

type fcmService struct {
	client    multicastSender
	batchSize int
	logger    *slog.Logger
}

// NewFCMService creates the push service backed by Firebase Cloud Messaging
func NewFCMService(client *messaging.Client, cfg *config.Config, logger *slog.Logger) *fcmService {
	return newFCMService(client, cfg.Notifier.PushBatchSize, logger)
}

func newFCMService(client multicastSender, batchSize int, logger *slog.Logger) *fcmService {
	if batchSize <= 0 || batchSize > maxMulticastTokens {
		batchSize = maxMulticastTokens
	}

	return &fcmService{
		client:    client,
		batchSize: batchSize,
		logger:    logger,
	}
}

// SendMulticast sends the notification to every token in batches. A batch the transport rejects
// counts all its tokens as failed; an error is returned only when no batch was accepted.
func (s *fcmService) SendMulticast(ctx context.Context, tokens []string, notification *entity.Notification) (*entity.DeliveryReport, error) {
	report := &entity.DeliveryReport{}
	if len(tokens) == 0 {
		return report, nil
	}

	logger := deliverycontext.GetLoggerOrDefault(ctx, s.logger)

	var (
		lastErr  error
		accepted bool
	)
	for start := 0; start < len(tokens); start += s.batchSize {
		batch := tokens[start:min(start+s.batchSize, len(tokens))]

		batchReport, err := s.sendBatch(ctx, batch, notification)
		if err != nil {
			logger.Error("Failed to send multicast batch",
				slog.Int("batch_start", start),
				slog.Int("batch_size", len(batch)),
				slog.Any("error", err),
			)
			lastErr = err
			report.Merge(failedBatch(batch, err))

			continue
		}

		accepted = true
		report.Merge(batchReport)
	}

	if !accepted {
		return report, lastErr
	}

	return report, nil
}

func (s *fcmService) sendBatch(ctx context.Context, batch []string, notification *entity.Notification) (*entity.DeliveryReport, error) {
	message := &messaging.MulticastMessage{
		Tokens: batch,
		Notification: &messaging.Notification{
			Title: notification.Title,
			Body:  notification.Body,
		},
	}

	response, err := s.client.SendEachForMulticast(ctx, message)
	if err != nil {
		return nil, errors.Wrap(err, "failed to send multicast notification")
	}

	report := &entity.DeliveryReport{
		SuccessCount: response.SuccessCount,
		FailureCount: response.FailureCount,
		Results:      make([]entity.TokenResult, 0, len(batch)),
	}
	for idx, sendResponse := range response.Responses {
		if idx >= len(batch) {
			break
		}

		result := entity.TokenResult{Token: batch[idx], Success: sendResponse.Success}
		if sendResponse.Error != nil {
			result.Success = false
			result.Error = sendResponse.Error
			// The token will never work again
			if messaging.IsInvalidArgument(sendResponse.Error) || messaging.IsUnregistered(sendResponse.Error) {
				report.InvalidTokens = append(report.InvalidTokens, batch[idx])
			}
		}
		report.Results = append(report.Results, result)
	}

	return report, nil
}

func failedBatch(batch []string, err error) *entity.DeliveryReport {
	report := &entity.DeliveryReport{
		FailureCount: len(batch),
		Results:      make([]entity.TokenResult, 0, len(batch)),
	}
	for _, token := range batch {
		report.Results = append(report.Results, entity.TokenResult{Token: token, Error: err})
	}

	return report
}
