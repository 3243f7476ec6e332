package contracts

import "context"

// PushJob is the unit queued for asynchronous push delivery. The worker
// resolves the Expo token for the phone number at delivery time, so a user
// re-registering a device between enqueue and delivery still gets notified.
type PushJob struct {
	PhoneNumber string            `json:"phoneNumber"`
	Title       string            `json:"title"`
	Body        string            `json:"body"`
	Data        map[string]string `json:"data,omitempty"`
}

// PushService enqueues jobs; delivery happens off the request path.
type PushService interface {
	Publish(ctx context.Context, job *PushJob) error
}

// ExpoTokenResolver maps a phone number to the device's current Expo push
// token. An empty token with a nil error means no device is registered.
type ExpoTokenResolver interface {
	ResolveToken(ctx context.Context, phoneNumber string) (string, error)
}
