package otpgateway

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"
	"vasavimart-service/internal/app/config"
	"vasavimart-service/internal/app/contracts"
	"vasavimart-service/internal/pkg/constvars"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

const (
	providerStatusSuccess = "Success"
	providerOTPMatched    = "OTP Matched"
)

// errMalformedBody marks a 2xx response whose body could not be decoded.
// The provider answered, it just did not confirm anything.
var errMalformedBody = errors.New("provider returned malformed body")

// twoFactorResponse is the provider's wire shape. It never leaves this
// package.
type twoFactorResponse struct {
	Status  string `json:"Status"`
	Details string `json:"Details"`
}

type twoFactorService struct {
	BaseUrl string
	ApiKey  string
	Client  *http.Client
	Limiter *rate.Limiter
	Log     *zap.Logger
}

// NewTwoFactorService wraps the 2factor.in SMS verification API. The
// limiter bounds outbound calls so a burst of logins cannot trip the
// provider's own rate limits.
func NewTwoFactorService(internalConfig *config.InternalConfig, logger *zap.Logger) contracts.OTPGateway {
	timeout := time.Duration(internalConfig.TwoFactor.RequestTimeoutInSeconds) * time.Second
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	rps := internalConfig.TwoFactor.MaxRequestsPerSecond
	if rps <= 0 {
		rps = 5
	}
	return &twoFactorService{
		BaseUrl: internalConfig.TwoFactor.BaseUrl,
		ApiKey:  internalConfig.TwoFactor.APIKey,
		Client:  &http.Client{Timeout: timeout},
		Limiter: rate.NewLimiter(rate.Limit(rps), rps),
		Log:     logger,
	}
}

func (s *twoFactorService) RequestChallenge(ctx context.Context, phoneNumber string) (string, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	endpoint := fmt.Sprintf("%s/%s/SMS/%s/AUTOGEN", s.BaseUrl, s.ApiKey, url.PathEscape(phoneNumber))
	body, err := s.call(ctx, endpoint)
	if err != nil {
		s.Log.Error("twoFactorService.RequestChallenge transport failure",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return "", err
	}

	if body.Status != providerStatusSuccess || body.Details == "" {
		s.Log.Warn("twoFactorService.RequestChallenge provider rejected dispatch",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String("provider_status", body.Status),
		)
		return "", fmt.Errorf("provider rejected OTP dispatch: %s", body.Status)
	}

	return body.Details, nil
}

func (s *twoFactorService) VerifyChallenge(ctx context.Context, sessionID, code string) (bool, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	endpoint := fmt.Sprintf("%s/%s/SMS/VERIFY/%s/%s", s.BaseUrl, s.ApiKey, url.PathEscape(sessionID), url.PathEscape(code))
	body, err := s.call(ctx, endpoint)
	if errors.Is(err, errMalformedBody) {
		// An undecodable 2xx is still an answer from the provider, so it
		// counts as an unconfirmed code, not an outage.
		s.Log.Warn("twoFactorService.VerifyChallenge provider sent undecodable body",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return false, nil
	}
	if err != nil {
		s.Log.Error("twoFactorService.VerifyChallenge transport failure",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return false, err
	}

	// Anything other than an exact provider-confirmed match counts as a
	// mismatch, including malformed or unexpected answers.
	matched := body.Status == providerStatusSuccess && body.Details == providerOTPMatched
	return matched, nil
}

func (s *twoFactorService) call(ctx context.Context, endpoint string) (*twoFactorResponse, error) {
	if err := s.Limiter.Wait(ctx); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}

	resp, err := s.Client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusInternalServerError {
		return nil, fmt.Errorf("provider returned status %d", resp.StatusCode)
	}

	var body twoFactorResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("%w: %v", errMalformedBody, err)
	}
	return &body, nil
}
