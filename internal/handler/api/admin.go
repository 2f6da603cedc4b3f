package api

import (
	"errors"
	"net/http"

	"rentwheels/internal/domain/booking"
	reqdto "rentwheels/internal/handler/dto/request"
	resdto "rentwheels/internal/handler/dto/response"
	"rentwheels/internal/handler/httperr"
	"rentwheels/internal/handler/middleware"
	"rentwheels/internal/infra/repository"
	"rentwheels/internal/pkg/errs"
	"rentwheels/internal/usecase/commands"
	"rentwheels/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AdminHandler struct {
	adminCommands commands.AdminCommands
	reconciler    commands.ReconcilerCommands
	adminQueries  queries.AdminQueries
}

func NewAdminHandler(
	adminCommands commands.AdminCommands,
	reconciler commands.ReconcilerCommands,
	adminQueries queries.AdminQueries,
) *AdminHandler {
	return &AdminHandler{
		adminCommands: adminCommands,
		reconciler:    reconciler,
		adminQueries:  adminQueries,
	}
}

// @Summary Override booking status
// @Description Force a status on either axis, with a mandatory reason
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Param request body reqdto.OverrideStatusRequest true "Override"
// @Success 204
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /admin/bookings/{id}/override [post]
func (h *AdminHandler) OverrideStatus(c *gin.Context) {
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

	var req reqdto.OverrideStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	switch req.Axis {
	case repository.OverrideAxisRental:
		err = h.adminCommands.ForceRentalStatus(
			c.Request.Context(), bookingID, actorID, booking.RentalStatus(req.Status), req.Reason,
		)
	case repository.OverrideAxisPayment:
		err = h.adminCommands.ForcePaymentStatus(
			c.Request.Context(), bookingID, actorID, booking.PaymentStatus(req.Status), req.Reason,
		)
	default:
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Axis must be rental or payment",
		})
		return
	}

	if err != nil {
		switch {
		case errors.Is(err, commands.ErrBookingNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Booking not found",
			})
		case errors.Is(err, commands.ErrReasonRequired):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Override reason is required",
			})
		case errors.Is(err, commands.ErrInvalidTransition):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Unknown target status",
			})
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Override history
// @Description List the override audit trail for a booking
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {array} resdto.OverrideResponse
// @Failure 400 {object} map[string]string
// @Router /admin/bookings/{id}/overrides [get]
func (h *AdminHandler) ListOverrides(c *gin.Context) {
	bookingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid booking ID format",
		})
		return
	}

	views, err := h.adminQueries.OverridesForBooking(c.Request.Context(), bookingID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	response := make([]*resdto.OverrideResponse, len(views))
	for i, rm := range views {
		response[i] = resdto.FromOverrideView(rm)
	}

	c.JSON(http.StatusOK, response)
}

// @Summary Open anomalies
// @Description List unresolved reconciliation anomalies
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.AnomalyResponse
// @Router /admin/anomalies [get]
func (h *AdminHandler) ListAnomalies(c *gin.Context) {
	views, err := h.adminQueries.OpenAnomalies(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	response := make([]*resdto.AnomalyResponse, len(views))
	for i, rm := range views {
		response[i] = resdto.FromAnomalyView(rm)
	}

	c.JSON(http.StatusOK, response)
}

// @Summary Resolve anomaly
// @Description Mark a reconciliation anomaly as handled
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Anomaly ID"
// @Success 204
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /admin/anomalies/{id}/resolve [post]
func (h *AdminHandler) ResolveAnomaly(c *gin.Context) {
	anomalyID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid anomaly ID format",
		})
		return
	}

	actorID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errs.New("user context missing"), "Internal server error", nil)
		return
	}

	if err := h.adminCommands.ResolveAnomaly(c.Request.Context(), anomalyID, actorID); err != nil {
		switch {
		case errors.Is(err, commands.ErrAnomalyNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Open anomaly not found",
			})
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Audit booking
// @Description Re-run reconciliation checks for one booking
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} map[string]any
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /admin/bookings/{id}/audit [post]
func (h *AdminHandler) AuditBooking(c *gin.Context) {
	bookingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid booking ID format",
		})
		return
	}

	anomalies, err := h.reconciler.Audit(c.Request.Context(), bookingID)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrBookingNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Booking not found",
			})
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"booking_id": bookingID,
		"anomalies":  len(anomalies),
	})
}
