package api

import (
	"errors"
	"net/http"

	"rentwheels/internal/domain/payment"
	reqdto "rentwheels/internal/handler/dto/request"
	resdto "rentwheels/internal/handler/dto/response"
	"rentwheels/internal/handler/httperr"
	"rentwheels/internal/handler/middleware"
	"rentwheels/internal/pkg/errs"
	"rentwheels/internal/usecase/commands"
	"rentwheels/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type PaymentHandler struct {
	paymentCommands commands.PaymentCommands
	paymentQueries  queries.PaymentQueries
}

func NewPaymentHandler(paymentCommands commands.PaymentCommands, paymentQueries queries.PaymentQueries) *PaymentHandler {
	return &PaymentHandler{
		paymentCommands: paymentCommands,
		paymentQueries:  paymentQueries,
	}
}

// @Summary Record payment attempt
// @Description Record a payment attempt against a booking
// @Tags payments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Param request body reqdto.RecordPaymentRequest true "Payment attempt"
// @Success 201 {object} resdto.PaymentResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /bookings/{id}/payments [post]
func (h *PaymentHandler) RecordAttempt(c *gin.Context) {
	bookingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid booking ID format",
		})
		return
	}

	requesterID, role, ok := requesterContext(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errs.New("user context missing"), "Internal server error", nil)
		return
	}

	var req reqdto.RecordPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.paymentCommands.RecordAttempt(
		c.Request.Context(), bookingID, payment.Method(req.Method),
		req.AmountCents, req.SenderRef, requesterID, role,
	)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrBookingNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Booking not found",
			})
		case errors.Is(err, commands.ErrAccessDenied):
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Access denied",
			})
		case errors.Is(err, commands.ErrUnknownMethod):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Unsupported payment method",
			})
		case errors.Is(err, commands.ErrAmountMismatch):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Amount does not match the booking total",
			})
		case errors.Is(err, commands.ErrAlreadySettled):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Booking already has a settled payment",
			})
		case errors.Is(err, commands.ErrBookingNotPayable):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Booking can no longer accept payments",
			})
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromPaymentView(view))
}

// @Summary Payment history
// @Description List payment attempts for a booking
// @Tags payments
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {array} resdto.PaymentResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /bookings/{id}/payments [get]
func (h *PaymentHandler) History(c *gin.Context) {
	bookingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid booking ID format",
		})
		return
	}

	requesterID, role, ok := requesterContext(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errs.New("user context missing"), "Internal server error", nil)
		return
	}

	views, err := h.paymentQueries.ListByBookingFor(c.Request.Context(), bookingID, requesterID, role)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrBookingNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Booking not found",
			})
		case errors.Is(err, queries.ErrAccessDenied):
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Access denied",
			})
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	response := make([]*resdto.PaymentResponse, len(views))
	for i, rm := range views {
		response[i] = resdto.FromPaymentView(rm)
	}

	c.JSON(http.StatusOK, response)
}

// @Summary Settlement callback
// @Description Provider webhook resolving an out-of-band transfer
// @Tags payments
// @Accept json
// @Produce json
// @Param request body reqdto.SettlementCallbackRequest true "Settlement outcome"
// @Success 204
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /payments/callback [post]
func (h *PaymentHandler) SettlementCallback(c *gin.Context) {
	var req reqdto.SettlementCallbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	err := h.paymentCommands.ApplySettlement(
		c.Request.Context(), req.TransactionID, commands.SettlementOutcome(req.Outcome),
	)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrPaymentNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Payment record not found",
			})
		case errors.Is(err, commands.ErrInvalidTransition):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Settlement outcome not applicable",
			})
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Mark cash received
// @Description Settle the pending cash attempt at the counter
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 204
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /admin/bookings/{id}/payments/cash [post]
func (h *PaymentHandler) MarkCashReceived(c *gin.Context) {
	bookingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid booking ID format",
		})
		return
	}

	actorID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errs.New("user context missing"), "Internal server error", nil)
		return
	}

	if err := h.paymentCommands.MarkCashReceived(c.Request.Context(), bookingID, actorID); err != nil {
		switch {
		case errors.Is(err, commands.ErrBookingNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Booking not found",
			})
		case errors.Is(err, commands.ErrNotCashBooking):
			c.JSON(http.StatusConflict, gin.H{
				"error": "No pending cash attempt for this booking",
			})
		case errors.Is(err, commands.ErrInvalidTransition):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Status transition not allowed",
			})
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.Status(http.StatusNoContent)
}
