package api

import (
	"context"
	"errors"
	"net/http"

	"rentwheels/internal/domain/booking"
	"rentwheels/internal/domain/reservation"
	reqdto "rentwheels/internal/handler/dto/request"
	resdto "rentwheels/internal/handler/dto/response"
	"rentwheels/internal/handler/httperr"
	"rentwheels/internal/handler/middleware"
	"rentwheels/internal/pkg/errs"
	"rentwheels/internal/pkg/jwt"
	"rentwheels/internal/usecase/commands"
	"rentwheels/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BookingHandler struct {
	bookingCommands   commands.BookingCommands
	lifecycleCommands commands.LifecycleCommands
	bookingQueries    queries.BookingQueries
	validator         *reservation.Validator
}

func NewBookingHandler(
	bookingCommands commands.BookingCommands,
	lifecycleCommands commands.LifecycleCommands,
	bookingQueries queries.BookingQueries,
	validator *reservation.Validator,
) *BookingHandler {
	return &BookingHandler{
		bookingCommands:   bookingCommands,
		lifecycleCommands: lifecycleCommands,
		bookingQueries:    bookingQueries,
		validator:         validator,
	}
}

// @Summary Quote a rental
// @Description Price a prospective rental without creating a booking
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.QuoteRequest true "Quote request"
// @Success 200 {object} resdto.BreakdownResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /bookings/quote [post]
func (h *BookingHandler) Quote(c *gin.Context) {
	var req reqdto.QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	breakdown, err := h.bookingCommands.Quote(
		c.Request.Context(), req.CarID, req.PickupDate, req.DropoffDate,
		booking.InsuranceTier(req.InsuranceTier), req.ServiceIDs,
	)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrCarNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Car not found",
			})
		case errors.Is(err, commands.ErrInvalidRange):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Drop-off must be after pickup",
			})
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromBreakdown(breakdown))
}

// @Summary Validate a wizard step
// @Description Run one reservation wizard gate server-side
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.ValidateStepRequest true "Step and draft"
// @Success 200 {object} map[string]any
// @Failure 400 {object} map[string]string
// @Router /bookings/validate [post]
func (h *BookingHandler) ValidateStep(c *gin.Context) {
	var req reqdto.ValidateStepRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	fields, err := h.validator.ValidateStep(reservation.Step(req.Step), req.Booking.ToDraft())
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Unknown wizard step",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"valid":  fields.Valid(),
		"fields": fields.Messages(),
	})
}

// @Summary Create booking
// @Description Run the wizard gates, freeze the quote and create the booking
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateBookingRequest true "Booking request"
// @Success 201 {object} resdto.BookingResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]any
// @Router /bookings [post]
func (h *BookingHandler) Create(c *gin.Context) {
	renterID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errs.New("user context missing"), "Internal server error", nil)
		return
	}

	var req reqdto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.bookingCommands.Create(c.Request.Context(), req.ToDraft(), renterID)
	if err != nil {
		var ve *commands.ValidationError
		switch {
		case errors.As(err, &ve):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error":  "Validation failed",
				"step":   string(ve.Step),
				"fields": ve.Fields.Messages(),
			})
		case errors.Is(err, commands.ErrCarNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Car not found",
			})
		case errors.Is(err, commands.ErrCarUnavailable):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Car is not available",
			})
		case errors.Is(err, commands.ErrInvalidRange):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Drop-off must be after pickup",
			})
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromBookingView(view))
}

// @Summary Get booking
// @Description Get booking by ID; customers only see their own
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /bookings/{id} [get]
func (h *BookingHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
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

	view, err := h.bookingQueries.GetByIDFor(c.Request.Context(), id, requesterID, role)
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

	c.JSON(http.StatusOK, resdto.FromBookingView(view))
}

// @Summary List own bookings
// @Description List the bookings of the authenticated customer
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.BookingListResponse
// @Router /bookings [get]
func (h *BookingHandler) ListMine(c *gin.Context) {
	renterID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errs.New("user context missing"), "Internal server error", nil)
		return
	}

	items, err := h.bookingQueries.ListByRenter(c.Request.Context(), renterID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, toBookingListResponse(items))
}

// @Summary List all bookings
// @Description Back-office listing with optional status filters
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param rental_status query string false "Rental status filter"
// @Param payment_status query string false "Payment status filter"
// @Success 200 {array} resdto.BookingListResponse
// @Router /admin/bookings [get]
func (h *BookingHandler) ListAll(c *gin.Context) {
	items, err := h.bookingQueries.ListAll(
		c.Request.Context(), c.Query("rental_status"), c.Query("payment_status"),
	)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, toBookingListResponse(items))
}

// @Summary Confirm cash booking
// @Description Confirm a pending cash booking before payment settles
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 204
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /admin/bookings/{id}/confirm [post]
func (h *BookingHandler) ConfirmCash(c *gin.Context) {
	h.lifecycleAction(c, h.lifecycleCommands.ConfirmCashOnPickup)
}

// @Summary Complete booking
// @Description Close out a confirmed booking after drop-off
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 204
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /admin/bookings/{id}/complete [post]
func (h *BookingHandler) Complete(c *gin.Context) {
	h.lifecycleAction(c, h.lifecycleCommands.Complete)
}

// @Summary Cancel booking
// @Description Cancel a pending or confirmed booking; settled payments are refunded
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 204
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /bookings/{id}/cancel [post]
func (h *BookingHandler) Cancel(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
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

	if err := h.lifecycleCommands.Cancel(c.Request.Context(), id, requesterID, role); err != nil {
		respondLifecycleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *BookingHandler) lifecycleAction(c *gin.Context, action func(ctx context.Context, bookingID, actorID uuid.UUID) error) {
	id, err := uuid.Parse(c.Param("id"))
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

	if err := action(c.Request.Context(), id, actorID); err != nil {
		respondLifecycleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func respondLifecycleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrBookingNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Booking not found",
		})
	case errors.Is(err, commands.ErrAccessDenied):
		c.JSON(http.StatusForbidden, gin.H{
			"error": "Access denied",
		})
	case errors.Is(err, commands.ErrNotCashBooking):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Booking is not paying cash",
		})
	case errors.Is(err, commands.ErrInvalidTransition):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Status transition not allowed",
		})
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}

func requesterContext(c *gin.Context) (uuid.UUID, jwt.Role, bool) {
	id, ok := middleware.GetUserID(c)
	if !ok {
		return uuid.Nil, "", false
	}
	role, ok := middleware.GetUserRole(c)
	if !ok {
		return uuid.Nil, "", false
	}
	return id, role, true
}

func toBookingListResponse(items []*queries.BookingListItem) []*resdto.BookingListResponse {
	out := make([]*resdto.BookingListResponse, len(items))
	for i, rm := range items {
		out[i] = resdto.FromBookingListItem(rm)
	}
	return out
}
