package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/fitrack/fitrack-api/internal/api/metrics"
	"github.com/fitrack/fitrack-api/internal/core/domain"
	"github.com/fitrack/fitrack-api/internal/core/ports"
)

// PaymentHandler handles the payment-intent passthrough and payment records.
type PaymentHandler struct {
	paymentService ports.PaymentService
	userService    ports.UserService
}

func NewPaymentHandler(paymentService ports.PaymentService, userService ports.UserService) *PaymentHandler {
	return &PaymentHandler{paymentService: paymentService, userService: userService}
}

type createIntentRequest struct {
	AmountCents int64  `json:"amount_cents" validate:"required,gt=0"`
	Currency    string `json:"currency"     validate:"omitempty,len=3"`
}

type intentResponse struct {
	IntentID     string `json:"intent_id"`
	ClientSecret string `json:"client_secret"`
}

type recordPaymentRequest struct {
	ClassID     string `json:"class_id"     validate:"required"`
	AmountCents int64  `json:"amount_cents" validate:"required,gt=0"`
	Currency    string `json:"currency"     validate:"omitempty,len=3"`
	IntentID    string `json:"intent_id"    validate:"required"`
}

type paymentResponse struct {
	ID         string    `json:"id"`
	Email      string    `json:"email"`
	ClassID    string    `json:"class_id"`
	PriceCents int64     `json:"price_cents"`
	Currency   string    `json:"currency"`
	IntentID   string    `json:"intent_id"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
}

type listPaymentsResponse struct {
	Payments []paymentResponse `json:"payments"`
}

// CreateIntent asks the payment gateway for a new payment intent.
//
// @Summary      Create a payment intent
// @Tags         payments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createIntentRequest  true  "Amount"
// @Success      200   {object}  intentResponse
// @Failure      401   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /payments/intent [post]
func (h *PaymentHandler) CreateIntent(c echo.Context) error {
	if _, err := callerEmail(c); err != nil {
		return err
	}

	var req createIntentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	result, err := h.paymentService.CreateIntent(c.Request().Context(), ports.CreateIntentInput{
		AmountCents: req.AmountCents,
		Currency:    req.Currency,
	})
	if err != nil {
		metrics.PaymentIntentsTotal.WithLabelValues("error").Inc()
		return err
	}

	metrics.PaymentIntentsTotal.WithLabelValues("ok").Inc()
	return c.JSON(http.StatusOK, intentResponse{
		IntentID:     result.IntentID,
		ClientSecret: result.ClientSecret,
	})
}

// Record persists a completed charge for the caller and bumps the booked
// class's booking count.
//
// @Summary      Record a payment
// @Tags         payments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      recordPaymentRequest  true  "Completed charge"
// @Success      201   {object}  paymentResponse
// @Failure      404   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /payments [post]
func (h *PaymentHandler) Record(c echo.Context) error {
	email, err := callerEmail(c)
	if err != nil {
		return err
	}

	var req recordPaymentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	payment, err := h.paymentService.RecordPayment(c.Request().Context(), ports.RecordPaymentInput{
		Email:       email,
		ClassID:     req.ClassID,
		AmountCents: req.AmountCents,
		Currency:    req.Currency,
		IntentID:    req.IntentID,
	})
	if err != nil {
		return err
	}

	metrics.PaymentsRecordedTotal.Inc()
	return c.JSON(http.StatusCreated, toPaymentResponse(payment))
}

// List returns the caller's payment history; admins see all records. The
// caller's role is freshly resolved, never read from the credential.
//
// @Summary      List payments
// @Tags         payments
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  listPaymentsResponse
// @Failure      401  {object}  errorResponse
// @Router       /payments [get]
func (h *PaymentHandler) List(c echo.Context) error {
	email, err := callerEmail(c)
	if err != nil {
		return err
	}

	role, err := h.userService.ResolveRole(c.Request().Context(), email)
	if err != nil {
		if !errors.Is(err, domain.ErrUserNotFound) {
			return err
		}
		// Unknown caller: scope to own (empty) history rather than erroring.
		role = domain.RoleMember
	}

	payments, err := h.paymentService.ListPayments(c.Request().Context(), email, role)
	if err != nil {
		return err
	}

	out := make([]paymentResponse, len(payments))
	for i, p := range payments {
		out[i] = toPaymentResponse(p)
	}
	return c.JSON(http.StatusOK, listPaymentsResponse{Payments: out})
}

func toPaymentResponse(p *domain.Payment) paymentResponse {
	return paymentResponse{
		ID:         p.ID,
		Email:      p.Email,
		ClassID:    p.ClassID,
		PriceCents: p.PriceCents,
		Currency:   p.Currency,
		IntentID:   p.IntentID,
		Status:     p.Status,
		CreatedAt:  p.CreatedAt.UTC(),
	}
}
