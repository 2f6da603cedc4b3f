//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"rentwheels/internal/domain/booking"
	"rentwheels/internal/domain/reservation"
	"rentwheels/internal/handler/api"
	resdto "rentwheels/internal/handler/dto/response"
	"rentwheels/internal/pkg/jwt"
	"rentwheels/internal/usecase/commands"
	"rentwheels/internal/usecase/queries"
	"rentwheels/tests/common/builder"
	"rentwheels/tests/common/httptest"
	"rentwheels/tests/common/testutil"
	commandsmock "rentwheels/tests/mock/commands"
	queriesmock "rentwheels/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingHandlerTestSuite struct {
	suite.Suite
	router        *gin.Engine
	mockCtrl      *gomock.Controller
	mockCommands  *commandsmock.MockBookingCommands
	mockLifecycle *commandsmock.MockLifecycleCommands
	mockQueries   *queriesmock.MockBookingQueries
	handler       *api.BookingHandler
	renterID      uuid.UUID
	adminID       uuid.UUID
}

func (s *BookingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockBookingCommands(s.mockCtrl)
	s.mockLifecycle = commandsmock.NewMockLifecycleCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockBookingQueries(s.mockCtrl)
	s.handler = api.NewBookingHandler(s.mockCommands, s.mockLifecycle, s.mockQueries, reservation.NewValidator())

	s.renterID = uuid.New()
	s.adminID = uuid.New()

	// Mock authentication middleware for testing
	customerAuth := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		c.Set("user_id", s.renterID)
		c.Set("user_role", jwt.RoleCustomer)
		c.Next()
	}
	adminAuth := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		c.Set("user_id", s.adminID)
		c.Set("user_role", jwt.RoleAdmin)
		c.Next()
	}

	s.router.POST("/bookings/quote", customerAuth, s.handler.Quote)
	s.router.POST("/bookings/validate", customerAuth, s.handler.ValidateStep)
	s.router.POST("/bookings", customerAuth, s.handler.Create)
	s.router.GET("/bookings", customerAuth, s.handler.ListMine)
	s.router.GET("/bookings/:id", customerAuth, s.handler.Get)
	s.router.POST("/bookings/:id/cancel", customerAuth, s.handler.Cancel)
	s.router.GET("/admin/bookings", adminAuth, s.handler.ListAll)
	s.router.POST("/admin/bookings/:id/confirm", adminAuth, s.handler.ConfirmCash)
	s.router.POST("/admin/bookings/:id/complete", adminAuth, s.handler.Complete)
}

func (s *BookingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

// ================================================================================
// TestQuote
// ================================================================================

func (s *BookingHandlerTestSuite) TestQuote() {
	url := "/bookings/quote"
	b := builder.NewBookingBuilder()
	reqBody := map[string]any{
		"car_id":         b.CarID.String(),
		"pickup_date":    b.PickupDate,
		"dropoff_date":   b.DropoffDate,
		"insurance_tier": "basic",
	}

	s.Run("success: returns 200 with the itemized breakdown", func() {
		s.mockCommands.EXPECT().
			Quote(gomock.Any(), b.CarID, gomock.Any(), gomock.Any(), booking.InsuranceBasic, gomock.Nil()).
			Return(b.Breakdown, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var body resdto.BreakdownResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(int64(64500), body.SubtotalCents)
		s.Equal(int64(5560), body.TaxCents)
		s.Equal(int64(75060), body.TotalCents)
	})

	s.Run("error: 404 when the car does not exist", func() {
		s.mockCommands.EXPECT().
			Quote(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(booking.PriceBreakdown{}, commands.ErrCarNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Car not found")
	})

	s.Run("error: 400 for an inverted range", func() {
		s.mockCommands.EXPECT().
			Quote(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(booking.PriceBreakdown{}, commands.ErrInvalidRange).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})

	s.Run("error: 400 when a required field is missing", func() {
		requestMap := testutil.DtoMap(s.T(), reqBody, testutil.Field("car_id", nil))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})

	s.Run("error: 401 without a token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		s.Equal(http.StatusUnauthorized, rec.Code)
	})
}

// ================================================================================
// TestValidateStep
// ================================================================================

func (s *BookingHandlerTestSuite) TestValidateStep() {
	url := "/bookings/validate"

	s.Run("success: complete identity step reports valid", func() {
		reqBody := map[string]any{
			"step":    "identity_schedule",
			"booking": builder.NewBookingBuilder().BuildCreateRequestDTO(),
		}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var body struct {
			Valid  bool              `json:"valid"`
			Fields map[string]string `json:"fields"`
		}
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.True(body.Valid)
		s.Empty(body.Fields)
	})

	s.Run("success: failing gate reports per-field errors", func() {
		dto := builder.NewBookingBuilder().
			With(func(b *builder.BookingBuilder) { b.Email = "not-an-email" }).
			BuildCreateRequestDTO()
		reqBody := map[string]any{"step": "identity_schedule", "booking": dto}

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var body struct {
			Valid  bool              `json:"valid"`
			Fields map[string]string `json:"fields"`
		}
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.False(body.Valid)
		s.Contains(body.Fields, "email")
	})

	s.Run("error: 400 for an unknown step", func() {
		reqBody := map[string]any{
			"step":    "checkout",
			"booking": builder.NewBookingBuilder().BuildCreateRequestDTO(),
		}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Unknown wizard step")
	})
}

// ================================================================================
// TestCreate
// ================================================================================

func (s *BookingHandlerTestSuite) TestCreate() {
	url := "/bookings"
	b := builder.NewBookingBuilder()
	reqBody := b.BuildCreateRequestDTO()
	returnView := b.BuildView()

	s.Run("success: returns 201 with the created booking", func() {
		s.mockCommands.EXPECT().
			Create(gomock.Any(), gomock.Any(), s.renterID).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var body resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(returnView.ID, body.ID)
		s.Equal("pending", body.RentalStatus)
		s.Equal("pending", body.PaymentStatus)
		s.Equal(int64(75060), body.Breakdown.TotalCents)
		s.Equal("Pending", body.RentalBadge.Label)
	})

	s.Run("error: 422 carries the failing step and fields", func() {
		fe := reservation.FieldErrors{"email": reservation.ErrInvalidEmail}
		s.mockCommands.EXPECT().
			Create(gomock.Any(), gomock.Any(), s.renterID).
			Return(nil, commands.NewValidationError(reservation.StepIdentitySchedule, fe)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		s.Equal(http.StatusUnprocessableEntity, rec.Code)
		body := map[string]any{}
		httptest.DecodeResponseBody(s.T(), rec.Body, &body)
		s.Equal("identity_schedule", body["step"])
	})

	s.Run("error: 404 when the car does not exist", func() {
		s.mockCommands.EXPECT().
			Create(gomock.Any(), gomock.Any(), s.renterID).
			Return(nil, commands.ErrCarNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Car not found")
	})

	s.Run("error: 409 when the car is unavailable", func() {
		s.mockCommands.EXPECT().
			Create(gomock.Any(), gomock.Any(), s.renterID).
			Return(nil, commands.ErrCarUnavailable).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "not available")
	})

	s.Run("error: 400 when binding fails", func() {
		requestMap := testutil.DtoMap(s.T(), reqBody, testutil.Field("full_name", nil))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})
}

// ================================================================================
// TestGet
// ================================================================================

func (s *BookingHandlerTestSuite) TestGet() {
	returnView := builder.NewBookingBuilder().BuildView()
	url := "/bookings/" + returnView.ID.String()

	s.Run("success: returns 200 with the booking", func() {
		s.mockQueries.EXPECT().
			GetByIDFor(gomock.Any(), returnView.ID, s.renterID, jwt.RoleCustomer).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var body resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(returnView.ID, body.ID)
	})

	s.Run("error: 400 for a malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/not-a-uuid", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid booking ID")
	})

	s.Run("error: 404 when missing", func() {
		s.mockQueries.EXPECT().
			GetByIDFor(gomock.Any(), returnView.ID, s.renterID, jwt.RoleCustomer).
			Return(nil, queries.ErrBookingNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Booking not found")
	})

	s.Run("error: 403 for another customer's booking", func() {
		s.mockQueries.EXPECT().
			GetByIDFor(gomock.Any(), returnView.ID, s.renterID, jwt.RoleCustomer).
			Return(nil, queries.ErrAccessDenied).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Access denied")
	})
}

// ================================================================================
// TestListMine / TestListAll
// ================================================================================

func (s *BookingHandlerTestSuite) TestListMine() {
	items := []*queries.BookingListItem{
		{ID: uuid.New(), CarModel: "Toyota Corolla", TotalCents: 75060, RentalStatus: "pending", PaymentStatus: "pending"},
	}

	s.mockQueries.EXPECT().ListByRenter(gomock.Any(), s.renterID).Return(items, nil).Times(1)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings", nil, "bearer-token")

	var body []resdto.BookingListResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
	s.Len(body, 1)
	s.Equal(items[0].ID, body[0].ID)
	s.Equal("Pending", body[0].RentalBadge.Label)
}

func (s *BookingHandlerTestSuite) TestListAll() {
	s.Run("passes status filters through", func() {
		s.mockQueries.EXPECT().
			ListAll(gomock.Any(), "confirmed", "paid").
			Return([]*queries.BookingListItem{}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			"/admin/bookings?rental_status=confirmed&payment_status=paid", nil, "bearer-token")

		var body []resdto.BookingListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Empty(body)
	})
}

// ================================================================================
// TestLifecycle
// ================================================================================

func (s *BookingHandlerTestSuite) TestConfirmCash() {
	bookingID := uuid.New()
	url := "/admin/bookings/" + bookingID.String() + "/confirm"

	s.Run("success: returns 204", func() {
		s.mockLifecycle.EXPECT().
			ConfirmCashOnPickup(gomock.Any(), bookingID, s.adminID).
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 409 when the booking is not paying cash", func() {
		s.mockLifecycle.EXPECT().
			ConfirmCashOnPickup(gomock.Any(), bookingID, s.adminID).
			Return(commands.ErrNotCashBooking).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "not paying cash")
	})

	s.Run("error: 404 when missing", func() {
		s.mockLifecycle.EXPECT().
			ConfirmCashOnPickup(gomock.Any(), bookingID, s.adminID).
			Return(commands.ErrBookingNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Booking not found")
	})
}

func (s *BookingHandlerTestSuite) TestComplete() {
	bookingID := uuid.New()
	url := "/admin/bookings/" + bookingID.String() + "/complete"

	s.Run("success: returns 204", func() {
		s.mockLifecycle.EXPECT().
			Complete(gomock.Any(), bookingID, s.adminID).
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 409 from pending", func() {
		s.mockLifecycle.EXPECT().
			Complete(gomock.Any(), bookingID, s.adminID).
			Return(commands.ErrInvalidTransition).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "transition not allowed")
	})
}

func (s *BookingHandlerTestSuite) TestCancel() {
	bookingID := uuid.New()
	url := "/bookings/" + bookingID.String() + "/cancel"

	s.Run("success: returns 204", func() {
		s.mockLifecycle.EXPECT().
			Cancel(gomock.Any(), bookingID, s.renterID, jwt.RoleCustomer).
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 403 for another customer's booking", func() {
		s.mockLifecycle.EXPECT().
			Cancel(gomock.Any(), bookingID, s.renterID, jwt.RoleCustomer).
			Return(commands.ErrAccessDenied).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Access denied")
	})

	s.Run("error: 409 once terminal", func() {
		s.mockLifecycle.EXPECT().
			Cancel(gomock.Any(), bookingID, s.renterID, jwt.RoleCustomer).
			Return(commands.ErrInvalidTransition).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "")
	})
}
