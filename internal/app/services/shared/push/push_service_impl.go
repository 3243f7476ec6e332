package push

import (
	"context"
	"sync"
	"vasavimart-service/internal/app/contracts"
	"vasavimart-service/internal/pkg/constvars"
	"vasavimart-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

type pushService struct {
	Channel *amqp091.Channel
	Queue   string
	Log     *zap.Logger
}

var (
	pushServiceInstance contracts.PushService
	oncePushService     sync.Once
	pushServiceError    error
)

func NewPushService(rabbitMQConnection *amqp091.Connection, logger *zap.Logger, queue string) (contracts.PushService, error) {
	oncePushService.Do(func() {
		channel, err := rabbitMQConnection.Channel()
		if err != nil {
			pushServiceError = err
			return
		}
		_, err = channel.QueueDeclare(queue, true, false, false, false, nil)
		if err != nil {
			pushServiceError = err
			return
		}
		instance := &pushService{
			Channel: channel,
			Queue:   queue,
			Log:     logger,
		}
		pushServiceInstance = instance
	})
	return pushServiceInstance, pushServiceError
}

func (s *pushService) Publish(ctx context.Context, job *contracts.PushJob) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	body, err := json.Marshal(job)
	if err != nil {
		s.Log.Error("pushService.Publish error marshaling JSON",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return err
	}

	headers := amqp091.Table{
		"message_type":     "JSON",
		"requeue_strategy": "DROP",
	}

	message := amqp091.Publishing{
		ContentType:  constvars.MIMEApplicationJSON,
		Body:         body,
		DeliveryMode: amqp091.Persistent,
		Priority:     0,
		Headers:      headers,
	}

	err = s.Channel.PublishWithContext(ctx, "", s.Queue, false, false, message)
	if err != nil {
		s.Log.Error("pushService.Publish error publishing message",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingQueueNameKey, s.Queue),
			zap.Error(err),
		)
		return exceptions.ErrRabbitMQPublishMessage(err, s.Queue)
	}

	s.Log.Info("pushService.Publish succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingQueueNameKey, s.Queue),
	)

	return nil
}
