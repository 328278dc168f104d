package paymongo

//go:generate go run go.uber.org/mock/mockgen -source=./paymongo.go -destination=./mocks/paymongo_mock.go -package=mocks

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"lodge/config"
	"lodge/infras/otel"
	"lodge/shared/constant"

	"github.com/rs/zerolog/log"
)

const (
	opCreateIntent = "create payment intent"
	opAttachMethod = "attach payment method"
	opGetIntent    = "get payment intent"

	pathPaymentIntents = "/payment_intents"
	captureAutomatic   = "automatic"
	errorSnippetLimit  = 1024
)

// Gateway is the payment provider used for online bookings.
type Gateway interface {
	Enabled() bool
	CreatePaymentIntent(ctx context.Context, req IntentRequest) (Intent, error)
	AttachPaymentMethod(ctx context.Context, intentID string, req AttachRequest) (Intent, error)
	GetPaymentIntent(ctx context.Context, intentID string) (Intent, error)
	VerifyWebhookSignature(payload []byte, header string) error
}

type client struct {
	baseURL         string
	secretKey       string
	webhookSecret   string
	liveMode        bool
	tolerance       time.Duration
	methodsAllowed  []string
	defaultCurrency string
	http            *http.Client
	otel            otel.Otel
	now             func() time.Time
}

func New(cfg *config.Config, otel otel.Otel) Gateway {
	pm := cfg.External.PayMongo

	if pm.SecretKey == "" {
		log.Warn().Msg("PayMongo secret key not set, online payment disabled")
	}

	return &client{
		baseURL:         strings.TrimSuffix(pm.BaseURL, "/"),
		secretKey:       pm.SecretKey,
		webhookSecret:   pm.WebhookSecret,
		liveMode:        pm.LiveMode,
		tolerance:       time.Duration(pm.SignatureToleranceSec) * time.Second,
		methodsAllowed:  pm.PaymentMethodsAllowed,
		defaultCurrency: cfg.Booking.Currency,
		http:            &http.Client{Timeout: time.Duration(pm.TimeoutSeconds) * time.Second},
		otel:            otel,
		now:             time.Now,
	}
}

func (c *client) Enabled() bool {
	return c.secretKey != ""
}

func (c *client) CreatePaymentIntent(ctx context.Context, req IntentRequest) (intent Intent, err error) {
	ctx, scope := c.otel.NewScope(ctx, constant.OtelExternalScopeName, constant.OtelExternalScopeName+".paymongo.CreatePaymentIntent")
	defer scope.End()
	defer scope.TraceIfError(err)

	currency := req.Currency
	if currency == "" {
		currency = c.defaultCurrency
	}

	body := resource[intentAttributes]{}
	body.Data.Attributes = intentAttributes{
		Amount:               ToMinorUnits(req.Amount),
		Currency:             strings.ToUpper(currency),
		Description:          req.Description,
		PaymentMethodAllowed: c.methodsAllowed,
		CaptureType:          captureAutomatic,
		Metadata:             req.Metadata,
	}

	var res resource[intentAttributes]
	if err = c.do(ctx, opCreateIntent, http.MethodPost, pathPaymentIntents, body, &res); err != nil {
		return Intent{}, err
	}

	intent = toIntent(res)
	scope.SetAttribute("paymongo.intent_id", intent.ID)

	return intent, nil
}

func (c *client) AttachPaymentMethod(ctx context.Context, intentID string, req AttachRequest) (intent Intent, err error) {
	ctx, scope := c.otel.NewScope(ctx, constant.OtelExternalScopeName, constant.OtelExternalScopeName+".paymongo.AttachPaymentMethod")
	defer scope.End()
	defer scope.TraceIfError(err)

	body := resource[attachAttributes]{}
	body.Data.Attributes = attachAttributes(req)

	var res resource[intentAttributes]

	endpoint := fmt.Sprintf("%s/%s/attach", pathPaymentIntents, url.PathEscape(intentID))
	if err = c.do(ctx, opAttachMethod, http.MethodPost, endpoint, body, &res); err != nil {
		return Intent{}, err
	}

	return toIntent(res), nil
}

func (c *client) GetPaymentIntent(ctx context.Context, intentID string) (intent Intent, err error) {
	ctx, scope := c.otel.NewScope(ctx, constant.OtelExternalScopeName, constant.OtelExternalScopeName+".paymongo.GetPaymentIntent")
	defer scope.End()
	defer scope.TraceIfError(err)

	var res resource[intentAttributes]

	endpoint := fmt.Sprintf("%s/%s", pathPaymentIntents, url.PathEscape(intentID))
	if err = c.do(ctx, opGetIntent, http.MethodGet, endpoint, nil, &res); err != nil {
		return Intent{}, err
	}

	return toIntent(res), nil
}

func (c *client) VerifyWebhookSignature(payload []byte, header string) error {
	return verifySignature(c.webhookSecret, c.liveMode, c.tolerance, c.now(), payload, header)
}

func (c *client) do(ctx context.Context, op, method, endpoint string, in, out any) error {
	if !c.Enabled() {
		return &Error{Op: op, Message: ErrNotConfigured.Error(), Err: ErrNotConfigured}
	}

	var body io.Reader
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return wrapErr(op, err)
		}

		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+endpoint, body)
	if err != nil {
		return wrapErr(op, err)
	}

	req.SetBasicAuth(c.secretKey, "")
	req.Header.Set("Accept", constant.ContentTypeJSON)

	if in != nil {
		req.Header.Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		var netErr net.Error
		if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
			log.Error().Err(err).Str("op", op).Msg("paymongo request timed out")

			return &Error{Op: op, Message: "gateway timeout", Err: err}
		}

		log.Error().Err(err).Str("op", op).Msg("paymongo request failed")

		return &Error{Op: op, Message: "gateway unavailable", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return decodeAPIError(op, resp)
	}

	if err = json.NewDecoder(resp.Body).Decode(out); err != nil {
		log.Error().Err(err).Str("op", op).Msg("failed to decode paymongo response")

		return &Error{Op: op, StatusCode: resp.StatusCode, Message: ErrMalformedResponse.Error(), Err: errors.Join(ErrMalformedResponse, err)}
	}

	return nil
}

func decodeAPIError(op string, resp *http.Response) *Error {
	snippet, _ := io.ReadAll(io.LimitReader(resp.Body, errorSnippetLimit))

	apiErr := &Error{Op: op, StatusCode: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}

	var decoded apiErrors
	if json.Unmarshal(snippet, &decoded) == nil && len(decoded.Errors) > 0 {
		apiErr.Code = decoded.Errors[0].Code
		apiErr.Message = decoded.Errors[0].Detail
	} else if text := strings.TrimSpace(string(snippet)); text != "" {
		apiErr.Message = text
	}

	log.Error().Int("status", resp.StatusCode).Str("op", op).Str("code", apiErr.Code).Msg("paymongo returned error")

	return apiErr
}
