package api

import (
	"io"
	"net/http"

	reqdto "tour-booking/internal/handler/dto/request"
	resdto "tour-booking/internal/handler/dto/response"
	"tour-booking/internal/handler/httperr"
	"tour-booking/internal/handler/middleware"
	"tour-booking/internal/pkg/errs"
	"tour-booking/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

const (
	signatureHeader = "Stripe-Signature"
	// Processor events are a few KB; anything larger is not a legitimate delivery.
	maxWebhookBody = 1 << 16
)

type PaymentHandler struct {
	cmds   commands.PaymentCommands
	events commands.PaymentEventCommands
}

func NewPaymentHandler(cmds commands.PaymentCommands, events commands.PaymentEventCommands) *PaymentHandler {
	return &PaymentHandler{cmds: cmds, events: events}
}

// @Summary Create payment intent
// @Description Create the processor intent for a pending booking. One payment per booking.
// @Tags payments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateIntentRequest true "Booking to pay"
// @Success 201 {object} resdto.IntentResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /payments/intents [post]
func (h *PaymentHandler) CreateIntent(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}
	var req reqdto.CreateIntentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	res, err := h.cmds.CreateIntent(c.Request.Context(), actor, commands.CreateIntentInput{
		BookingID: req.BookingID,
		RequestID: middleware.GetRequestID(c),
	})
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromIntentResult(res))
}

// @Summary Payment processor webhook
// @Description Signed event delivery from the processor. The raw body is verified before anything is read from it.
// @Tags payments
// @Accept json
// @Produce json
// @Param Stripe-Signature header string true "Processor signature"
// @Success 200 {object} resdto.WebhookAck
// @Failure 400 {object} resdto.WebhookAck
// @Failure 500 {object} resdto.WebhookAck
// @Router /payments/webhook [post]
func (h *PaymentHandler) Webhook(c *gin.Context) {
	payload, err := io.ReadAll(io.LimitReader(c.Request.Body, maxWebhookBody+1))
	if err != nil || len(payload) > maxWebhookBody {
		_ = c.Error(errs.New("unreadable webhook body"))
		c.JSON(http.StatusBadRequest, resdto.WebhookAck{Received: false})
		return
	}

	if _, err := h.events.ApplyEvent(c.Request.Context(), payload, c.GetHeader(signatureHeader)); err != nil {
		_ = c.Error(err)
		status := http.StatusInternalServerError
		if errs.Is(err, errs.ErrSignature) {
			status = http.StatusBadRequest
		}
		c.JSON(status, resdto.WebhookAck{Received: false})
		return
	}
	c.JSON(http.StatusOK, resdto.WebhookAck{Received: true})
}
