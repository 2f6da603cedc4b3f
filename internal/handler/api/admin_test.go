//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"rentwheels/internal/domain/booking"
	"rentwheels/internal/handler/api"
	resdto "rentwheels/internal/handler/dto/response"
	"rentwheels/internal/pkg/jwt"
	"rentwheels/internal/usecase/commands"
	"rentwheels/internal/usecase/queries"
	"rentwheels/internal/usecase/shared"
	"rentwheels/tests/common/httptest"
	"rentwheels/tests/common/testutil"
	commandsmock "rentwheels/tests/mock/commands"
	queriesmock "rentwheels/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AdminHandlerTestSuite struct {
	suite.Suite
	router         *gin.Engine
	mockCtrl       *gomock.Controller
	mockCommands   *commandsmock.MockAdminCommands
	mockReconciler *commandsmock.MockReconcilerCommands
	mockQueries    *queriesmock.MockAdminQueries
	handler        *api.AdminHandler
	adminID        uuid.UUID
}

func (s *AdminHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockAdminCommands(s.mockCtrl)
	s.mockReconciler = commandsmock.NewMockReconcilerCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockAdminQueries(s.mockCtrl)
	s.handler = api.NewAdminHandler(s.mockCommands, s.mockReconciler, s.mockQueries)

	s.adminID = uuid.New()

	adminAuth := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		c.Set("user_id", s.adminID)
		c.Set("user_role", jwt.RoleAdmin)
		c.Next()
	}

	s.router.POST("/admin/bookings/:id/override", adminAuth, s.handler.OverrideStatus)
	s.router.GET("/admin/bookings/:id/overrides", adminAuth, s.handler.ListOverrides)
	s.router.POST("/admin/bookings/:id/audit", adminAuth, s.handler.AuditBooking)
	s.router.GET("/admin/anomalies", adminAuth, s.handler.ListAnomalies)
	s.router.POST("/admin/anomalies/:id/resolve", adminAuth, s.handler.ResolveAnomaly)
}

func (s *AdminHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAdminHandlerSuite(t *testing.T) {
	suite.Run(t, new(AdminHandlerTestSuite))
}

// ================================================================================
// TestOverrideStatus
// ================================================================================

func (s *AdminHandlerTestSuite) TestOverrideStatus() {
	bookingID := uuid.New()
	url := "/admin/bookings/" + bookingID.String() + "/override"
	reqBody := map[string]any{
		"axis":   "rental",
		"status": "completed",
		"reason": "returned late, closed manually",
	}

	s.Run("success: rental axis returns 204", func() {
		s.mockCommands.EXPECT().
			ForceRentalStatus(gomock.Any(), bookingID, s.adminID, booking.RentalCompleted, "returned late, closed manually").
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("success: payment axis returns 204", func() {
		s.mockCommands.EXPECT().
			ForcePaymentStatus(gomock.Any(), bookingID, s.adminID, booking.PaymentRefunded, gomock.Any()).
			Return(nil).Times(1)

		requestMap := testutil.DtoMap(s.T(), reqBody,
			testutil.Field("axis", "payment"), testutil.Field("status", "refunded"))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "bearer-token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 400 for an unknown axis", func() {
		requestMap := testutil.DtoMap(s.T(), reqBody, testutil.Field("axis", "schedule"))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Axis must be")
	})

	s.Run("error: 400 when the reason is missing", func() {
		requestMap := testutil.DtoMap(s.T(), reqBody, testutil.Field("reason", nil))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})

	s.Run("error: 422 when the reason is blank", func() {
		s.mockCommands.EXPECT().
			ForceRentalStatus(gomock.Any(), bookingID, s.adminID, gomock.Any(), gomock.Any()).
			Return(commands.ErrReasonRequired).Times(1)

		requestMap := testutil.DtoMap(s.T(), reqBody, testutil.Field("reason", "   "))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "reason")
	})

	s.Run("error: 422 for an unknown target status", func() {
		s.mockCommands.EXPECT().
			ForceRentalStatus(gomock.Any(), bookingID, s.adminID, gomock.Any(), gomock.Any()).
			Return(commands.ErrInvalidTransition).Times(1)

		requestMap := testutil.DtoMap(s.T(), reqBody, testutil.Field("status", "limbo"))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "Unknown target status")
	})

	s.Run("error: 404 when the booking is missing", func() {
		s.mockCommands.EXPECT().
			ForceRentalStatus(gomock.Any(), bookingID, s.adminID, gomock.Any(), gomock.Any()).
			Return(commands.ErrBookingNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Booking not found")
	})
}

// ================================================================================
// TestListOverrides / TestListAnomalies
// ================================================================================

func (s *AdminHandlerTestSuite) TestListOverrides() {
	bookingID := uuid.New()
	views := []*queries.OverrideView{
		{
			ID:         uuid.New(),
			BookingID:  bookingID,
			ActorID:    s.adminID,
			Axis:       "payment",
			FromStatus: "pending",
			ToStatus:   "paid",
			Reason:     "provider outage, settled by phone",
			CreatedAt:  time.Date(2026, 8, 26, 9, 0, 0, 0, time.UTC),
		},
	}

	s.mockQueries.EXPECT().OverridesForBooking(gomock.Any(), bookingID).Return(views, nil).Times(1)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
		"/admin/bookings/"+bookingID.String()+"/overrides", nil, "bearer-token")

	var body []resdto.OverrideResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
	s.Len(body, 1)
	s.Equal("payment", body[0].Axis)
	s.Equal("provider outage, settled by phone", body[0].Reason)
}

func (s *AdminHandlerTestSuite) TestListAnomalies() {
	views := []*queries.AnomalyView{
		{
			ID:         uuid.New(),
			BookingID:  uuid.New(),
			Kind:       "cancelled_still_paid",
			Detail:     "booking is cancelled while its payment is still paid",
			DetectedAt: time.Date(2026, 8, 26, 9, 0, 0, 0, time.UTC),
		},
	}

	s.mockQueries.EXPECT().OpenAnomalies(gomock.Any()).Return(views, nil).Times(1)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin/anomalies", nil, "bearer-token")

	var body []resdto.AnomalyResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
	s.Len(body, 1)
	s.Equal("cancelled_still_paid", body[0].Kind)
	s.Nil(body[0].ResolvedAt)
}

// ================================================================================
// TestResolveAnomaly / TestAuditBooking
// ================================================================================

func (s *AdminHandlerTestSuite) TestResolveAnomaly() {
	anomalyID := uuid.New()
	url := "/admin/anomalies/" + anomalyID.String() + "/resolve"

	s.Run("success: returns 204", func() {
		s.mockCommands.EXPECT().
			ResolveAnomaly(gomock.Any(), anomalyID, s.adminID).
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 404 when already resolved", func() {
		s.mockCommands.EXPECT().
			ResolveAnomaly(gomock.Any(), anomalyID, s.adminID).
			Return(commands.ErrAnomalyNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Open anomaly not found")
	})
}

func (s *AdminHandlerTestSuite) TestAuditBooking() {
	bookingID := uuid.New()
	url := "/admin/bookings/" + bookingID.String() + "/audit"

	s.Run("success: reports the anomaly count", func() {
		found := []shared.Anomaly{
			{ID: uuid.New(), BookingID: bookingID, Kind: shared.AnomalyCancelledStillPaid},
		}
		s.mockReconciler.EXPECT().Audit(gomock.Any(), bookingID).Return(found, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")

		var body struct {
			BookingID uuid.UUID `json:"booking_id"`
			Anomalies int       `json:"anomalies"`
		}
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(bookingID, body.BookingID)
		s.Equal(1, body.Anomalies)
	})

	s.Run("error: 404 when the booking is missing", func() {
		s.mockReconciler.EXPECT().Audit(gomock.Any(), bookingID).Return(nil, commands.ErrBookingNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Booking not found")
	})
}
