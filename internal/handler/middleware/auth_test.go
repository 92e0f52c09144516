//go:build unit

package middleware_test

import (
	"errors"
	"net/http"
	"testing"

	"hotel-booking/internal/domain/user"
	"hotel-booking/internal/handler/middleware"
	"hotel-booking/internal/pkg/cookie"
	"hotel-booking/tests/common/httptest"
	usecasemock "hotel-booking/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AuthMiddlewareTestSuite struct {
	suite.Suite
	router    *gin.Engine
	mockCtrl  *gomock.Controller
	validator *usecasemock.MockTokenValidator
	userID    uuid.UUID
}

func (s *AuthMiddlewareTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	s.mockCtrl = gomock.NewController(s.T())
	s.validator = usecasemock.NewMockTokenValidator(s.mockCtrl)
	s.userID = uuid.New()

	auth := middleware.NewAuthMiddleware(s.validator)
	whoami := func(c *gin.Context) {
		id, ok := middleware.GetUserID(c)
		if !ok {
			c.JSON(http.StatusOK, gin.H{"anonymous": true})
			return
		}
		role, _ := middleware.GetUserRole(c)
		c.JSON(http.StatusOK, gin.H{"userId": id.String(), "role": string(role)})
	}

	s.router.GET("/private", auth.RequireAuth(), whoami)
	s.router.GET("/admin", auth.RequireAuth(), auth.RequireRole(user.RoleAdmin), whoami)
	s.router.GET("/public", auth.OptionalAuth(), whoami)
}

func (s *AuthMiddlewareTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAuthMiddlewareSuite(t *testing.T) {
	suite.Run(t, new(AuthMiddlewareTestSuite))
}

type identity struct {
	Anonymous bool   `json:"anonymous"`
	UserID    string `json:"userId"`
	Role      string `json:"role"`
}

func (s *AuthMiddlewareTestSuite) TestRequireAuth() {
	s.Run("success: bearer token sets the identity", func() {
		s.validator.EXPECT().ValidateToken("good").Return(s.userID, user.RoleUser, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/private", nil, "good")

		var got identity
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &got)
		s.Equal(identity{UserID: s.userID.String(), Role: "user"}, got)
	})

	s.Run("success: cookie wins over the header", func() {
		s.validator.EXPECT().ValidateToken("from-cookie").Return(s.userID, user.RoleUser, nil)

		rec := httptest.PerformRequestWithCookies(s.T(), s.router, http.MethodGet, "/private", nil,
			[]*http.Cookie{{Name: cookie.AccessTokenCookieName, Value: "from-cookie"}}, "from-header")

		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("error: 401 without a token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/private", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Access token required")
	})

	s.Run("error: 401 on an invalid token", func() {
		s.validator.EXPECT().ValidateToken("bad").Return(uuid.Nil, user.Role(""), errors.New("signature is invalid"))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/private", nil, "bad")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Invalid or expired token")
	})
}

func (s *AuthMiddlewareTestSuite) TestRequireRole() {
	s.Run("success: admin passes", func() {
		s.validator.EXPECT().ValidateToken("admin").Return(s.userID, user.RoleAdmin, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin", nil, "admin")
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("error: 403 for a guest", func() {
		s.validator.EXPECT().ValidateToken("guest").Return(s.userID, user.RoleUser, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin", nil, "guest")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Insufficient permissions")
	})
}

func (s *AuthMiddlewareTestSuite) TestOptionalAuth() {
	s.Run("anonymous without a token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/public", nil, "")

		var got identity
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &got)
		s.True(got.Anonymous)
	})

	s.Run("anonymous with an invalid token", func() {
		s.validator.EXPECT().ValidateToken("stale").Return(uuid.Nil, user.Role(""), errors.New("token is expired"))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/public", nil, "stale")

		var got identity
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &got)
		s.True(got.Anonymous)
	})

	s.Run("identified with a valid token", func() {
		s.validator.EXPECT().ValidateToken("good").Return(s.userID, user.RoleUser, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/public", nil, "good")

		var got identity
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &got)
		s.Equal(s.userID.String(), got.UserID)
	})
}
