package payment

import (
	"io"
	"net/http"

	"lodge/infras/otel"
	"lodge/internal/domains/payment/model/dto"
	"lodge/internal/domains/payment/service"
	"lodge/shared/constant"
	"lodge/shared/failure"
	"lodge/shared/validator"
	"lodge/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

const maxWebhookBody = 1 << 20

type Handler struct {
	service service.Payment
	otel    otel.Otel
}

func New(service service.Payment, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/payments", func(routerGroup chi.Router) {
		routerGroup.Post("/create-intent", handler.CreateIntent)
		routerGroup.Get("/intents/{id}", handler.GetIntent)
		routerGroup.Post("/intents/{id}/attach", handler.AttachMethod)
		routerGroup.Post("/webhook", handler.Webhook)
	})
}

// CreateIntent opens a gateway payment intent.
// @Summary Create a payment intent
// @Tags Payment
// @Accept json
// @Produce json
// @Param request body dto.CreateIntentRequest true "Intent request, amount in pesos"
// @Success 200 {object} response.Data[dto.IntentResponse]
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/payments/create-intent [post]
func (handler *Handler) CreateIntent(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateIntent")
	defer scope.End()

	req := dto.CreateIntentRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	res, err := handler.service.CreateIntent(ctx, req)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// GetIntent returns the current state of a payment intent.
// @Summary Get a payment intent
// @Tags Payment
// @Produce json
// @Param id path string true "Payment intent ID"
// @Success 200 {object} response.Data[dto.IntentResponse]
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/payments/intents/{id} [get]
func (handler *Handler) GetIntent(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetIntent")
	defer scope.End()

	res, err := handler.service.GetIntent(ctx, chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// AttachMethod binds a client-side payment method to an intent.
// @Summary Attach a payment method
// @Tags Payment
// @Accept json
// @Produce json
// @Param id path string true "Payment intent ID"
// @Param request body dto.AttachMethodRequest true "Payment method"
// @Success 200 {object} response.Data[dto.IntentResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/payments/intents/{id}/attach [post]
func (handler *Handler) AttachMethod(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".AttachMethod")
	defer scope.End()

	req := dto.AttachMethodRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	res, err := handler.service.AttachMethod(ctx, chi.URLParam(r, constant.RequestParamID), req)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// Webhook receives signed gateway events. The raw body is needed for the signature.
// @Summary Payment gateway webhook
// @Tags Payment
// @Accept json
// @Produce json
// @Param Paymongo-Signature header string true "t=<unix>,te=<hex>,li=<hex>"
// @Success 200 {object} dto.WebhookResponse
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Router /v1/payments/webhook [post]
func (handler *Handler) Webhook(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Webhook")
	defer scope.End()

	payload, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxWebhookBody))
	if err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Msg("failed to read webhook body")
		response.WithError(w, failure.BadRequestFromString("invalid webhook body"))

		return
	}

	if err := handler.service.HandleWebhook(ctx, payload, r.Header.Get(constant.RequestHeaderPayMongoSignature)); err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	response.WithPayload(w, http.StatusOK, dto.WebhookResponse{Received: true})
}
