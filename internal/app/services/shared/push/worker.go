package push

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"time"
	"vasavimart-service/internal/app/config"
	"vasavimart-service/internal/app/contracts"
	"vasavimart-service/internal/pkg/constvars"
	"vasavimart-service/internal/pkg/dto/requests"
	"vasavimart-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// Worker drains the push queue and delivers each job to the Expo push API.
// Jobs are dropped after a single delivery attempt; a missed notification is
// acceptable, a poison message cycling through the queue is not.
type Worker struct {
	log      *zap.Logger
	cfg      *config.InternalConfig
	conn     *amqp091.Connection
	resolver contracts.ExpoTokenResolver
	client   *http.Client
	stop     chan struct{}
}

func NewWorker(log *zap.Logger, cfg *config.InternalConfig, conn *amqp091.Connection, resolver contracts.ExpoTokenResolver) *Worker {
	timeout := time.Duration(cfg.Expo.RequestTimeoutInSeconds) * time.Second
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Worker{
		log:      log,
		cfg:      cfg,
		conn:     conn,
		resolver: resolver,
		client:   &http.Client{Timeout: timeout},
		stop:     make(chan struct{}),
	}
}

// Start begins consuming the push queue. It returns a stop function to halt
// execution.
func (w *Worker) Start(ctx context.Context) (stop func(), err error) {
	channel, err := w.conn.Channel()
	if err != nil {
		return nil, err
	}
	if _, err := channel.QueueDeclare(w.cfg.RabbitMQ.PushQueue, true, false, false, false, nil); err != nil {
		return nil, err
	}
	deliveries, err := channel.Consume(w.cfg.RabbitMQ.PushQueue, "", false, false, false, false, nil)
	if err != nil {
		return nil, err
	}

	w.log.Info("push worker started",
		zap.String(constvars.LoggingQueueNameKey, w.cfg.RabbitMQ.PushQueue),
	)

	go func() {
		defer channel.Close()
		for {
			select {
			case <-ctx.Done():
				return
			case <-w.stop:
				return
			case delivery, ok := <-deliveries:
				if !ok {
					return
				}
				w.processDelivery(ctx, delivery)
			}
		}
	}()

	return func() {
		close(w.stop)
	}, nil
}

func (w *Worker) processDelivery(ctx context.Context, delivery amqp091.Delivery) {
	// Every exit path acks. See the Worker doc comment.
	defer func() {
		if err := delivery.Ack(false); err != nil {
			w.log.Error("push worker ack failed", zap.Error(err))
		}
	}()

	var job contracts.PushJob
	if err := json.Unmarshal(delivery.Body, &job); err != nil {
		w.log.Error("push worker received malformed job", zap.Error(err))
		return
	}

	token, err := w.resolver.ResolveToken(ctx, job.PhoneNumber)
	if err != nil {
		w.log.Error("push worker token lookup failed",
			zap.String(constvars.LoggingPhoneKey, job.PhoneNumber),
			zap.Error(err),
		)
		return
	}
	if token == "" {
		w.log.Warn("push worker found no registered device",
			zap.String(constvars.LoggingPhoneKey, job.PhoneNumber),
		)
		return
	}

	if err := w.deliver(ctx, token, &job); err != nil {
		w.log.Error("push worker delivery failed",
			zap.String(constvars.LoggingPhoneKey, job.PhoneNumber),
			zap.Error(err),
		)
		return
	}

	w.log.Info("push worker delivered notification",
		zap.String(constvars.LoggingPhoneKey, job.PhoneNumber),
	)
}

func (w *Worker) deliver(ctx context.Context, token string, job *contracts.PushJob) error {
	body, err := json.Marshal(requests.PushNotification{
		To:       token,
		Title:    job.Title,
		Body:     job.Body,
		Sound:    "default",
		Priority: "default",
		Data:     job.Data,
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, w.cfg.Expo.PushUrl, bytes.NewReader(body))
	if err != nil {
		return exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	req.Header.Set(constvars.HeaderAccept, constvars.MIMEApplicationJSON)

	resp, err := w.client.Do(req)
	if err != nil {
		return exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()
	_, _ = io.ReadAll(resp.Body) // drain for connection reuse

	if resp.StatusCode != http.StatusOK {
		w.log.Warn("expo push api returned non-200",
			zap.Int(constvars.LoggingStatusCodeKey, resp.StatusCode),
		)
	}
	return nil
}
