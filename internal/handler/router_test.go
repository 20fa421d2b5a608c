//go:build unit

package handler_test

import (
	"net/http"
	"testing"
	"time"

	"hotel-booking/internal/domain/inventory"
	"hotel-booking/internal/domain/pricing"
	"hotel-booking/internal/domain/user"
	"hotel-booking/internal/handler"
	"hotel-booking/internal/handler/api"
	"hotel-booking/internal/handler/middleware"
	"hotel-booking/internal/handler/validation"
	"hotel-booking/internal/pkg/config"
	"hotel-booking/internal/pkg/jwt"
	"hotel-booking/internal/usecase"
	"hotel-booking/internal/usecase/commands"
	"hotel-booking/tests/common/builder"
	"hotel-booking/tests/common/httptest"
	commandsmock "hotel-booking/tests/mock/commands"
	queriesmock "hotel-booking/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type RouterTestSuite struct {
	suite.Suite
	engine      *gin.Engine
	mockCtrl    *gomock.Controller
	bookingCmds *commandsmock.MockBookingCommands
	bookingQ    *queriesmock.MockBookingQueries
	calCmds     *commandsmock.MockCalendarCommands
	calQ        *queriesmock.MockCalendarQueries
	jwtSvc      *jwt.Service
}

func (s *RouterTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.Require().NoError(validation.Register())
	cfg := config.NewTestConfig()

	s.mockCtrl = gomock.NewController(s.T())
	s.bookingCmds = commandsmock.NewMockBookingCommands(s.mockCtrl)
	s.bookingQ = queriesmock.NewMockBookingQueries(s.mockCtrl)
	s.calCmds = commandsmock.NewMockCalendarCommands(s.mockCtrl)
	s.calQ = queriesmock.NewMockCalendarQueries(s.mockCtrl)
	s.jwtSvc = jwt.NewService(cfg.JWT.Secret, cfg.JWT.Issuer, time.Hour)

	s.engine = gin.New()
	handler.NewRouter(s.engine, cfg, middleware.NewLogger(cfg.Log),
		api.NewBookingHandler(s.bookingCmds, s.bookingQ),
		api.NewCalendarHandler(s.calCmds, s.calQ),
		middleware.NewAuthMiddleware(usecase.NewTokenValidator(s.jwtSvc)))
}

func (s *RouterTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestRouterSuite(t *testing.T) {
	suite.Run(t, new(RouterTestSuite))
}

func (s *RouterTestSuite) tokenFor(role user.Role) string {
	token, err := s.jwtSvc.GenerateToken(uuid.New(), role)
	s.Require().NoError(err)
	return token
}

func (s *RouterTestSuite) TestHealth() {
	rec := httptest.PerformRequest(s.T(), s.engine, http.MethodGet, "/health", nil, "")
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	s.NotEmpty(rec.Header().Get("X-Request-ID"))
}

func (s *RouterTestSuite) TestBookingRoutesAcceptAnonymousCallers() {
	b := builder.NewBookingBuilder()
	s.bookingCmds.EXPECT().CreateBooking(gomock.Any(), gomock.Any()).
		Return(&commands.CreateBookingResult{BookingID: b.ID}, nil).Times(1)
	s.bookingQ.EXPECT().GetBooking(gomock.Any(), b.ID).Return(b.BuildView(), nil).Times(1)

	rec := httptest.PerformRequest(s.T(), s.engine, http.MethodPost, "/bookings", b.BuildRequest(), "")
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, nil)
}

func (s *RouterTestSuite) TestMerchantRoute() {
	roomID := uuid.New()
	path := "/merchant/rooms/" + roomID.String() + "/prices/2030-03-01"
	body := map[string]any{"price": 9000}

	s.Run("401 without token", func() {
		rec := httptest.PerformRequest(s.T(), s.engine, http.MethodPut, path, body, "")
		httptest.AssertErrorCode(s.T(), rec, http.StatusUnauthorized, "UNAUTHORIZED")
	})

	s.Run("403 for guests", func() {
		rec := httptest.PerformRequest(s.T(), s.engine, http.MethodPut, path, body, s.tokenFor(user.RoleGuest))
		httptest.AssertErrorCode(s.T(), rec, http.StatusForbidden, "FORBIDDEN")
	})

	s.Run("200 for merchants", func() {
		s.calCmds.EXPECT().UpsertPrice(gomock.Any(), gomock.Any()).
			Return(&pricing.Entry{RoomID: roomID, Date: time.Date(2030, 3, 1, 0, 0, 0, 0, time.UTC), Price: 9000}, nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.engine, http.MethodPut, path, body, s.tokenFor(user.RoleMerchant))
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})
}

func (s *RouterTestSuite) TestAdminRoute() {
	roomID := uuid.New()
	path := "/admin/rooms/" + roomID.String() + "/inventory/2030-03-01"
	body := map[string]any{"total_units": 4}

	s.Run("403 for merchants", func() {
		rec := httptest.PerformRequest(s.T(), s.engine, http.MethodPut, path, body, s.tokenFor(user.RoleMerchant))
		httptest.AssertErrorCode(s.T(), rec, http.StatusForbidden, "FORBIDDEN")
	})

	s.Run("200 for admins", func() {
		s.calCmds.EXPECT().SetInventory(gomock.Any(), gomock.Any()).
			Return(&inventory.Day{RoomID: roomID, Date: time.Date(2030, 3, 1, 0, 0, 0, 0, time.UTC), TotalUnits: 4}, nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.engine, http.MethodPut, path, body, s.tokenFor(user.RoleAdmin))
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})
}
