package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"surfbrew/models"
	"surfbrew/services/user"
)

type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) Register(ctx context.Context, input user.RegisterInput) (*models.User, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserService) Login(ctx context.Context, email, password string) (string, error) {
	args := m.Called(ctx, email, password)
	return args.String(0), args.Error(1)
}

func (m *MockUserService) Authenticate(ctx context.Context, token string) (*models.User, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserService) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func performAuthedRequest(authSvc user.UserService, header string, roles ...string) (*httptest.ResponseRecorder, *gin.Context) {
	gin.SetMode(gin.TestMode)
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/admin/bookings", nil)
	if header != "" {
		c.Request.Header.Set("Authorization", header)
	}

	OperatorAuthMiddleware(authSvc, roles...)(c)
	return rec, c
}

func TestOperatorAuth_MissingHeader(t *testing.T) {
	rec, c := performAuthedRequest(new(MockUserService), "", models.RoleAdmin)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.True(t, c.IsAborted())
}

func TestOperatorAuth_MalformedHeader(t *testing.T) {
	rec, _ := performAuthedRequest(new(MockUserService), "Token abc", models.RoleAdmin)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestOperatorAuth_InvalidToken(t *testing.T) {
	authSvc := new(MockUserService)
	authSvc.On("Authenticate", mock.Anything, "bogus").Return(nil, user.ErrInvalidToken)

	rec, _ := performAuthedRequest(authSvc, "Bearer bogus", models.RoleAdmin)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestOperatorAuth_DisallowedRole(t *testing.T) {
	authSvc := new(MockUserService)
	authSvc.On("Authenticate", mock.Anything, "valid").
		Return(&models.User{ID: "u1", Email: "kai@surfbrew.test", Role: models.RoleCoach}, nil)

	rec, _ := performAuthedRequest(authSvc, "Bearer valid", models.RoleAdmin)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestOperatorAuth_AllowedRoleSetsIdentity(t *testing.T) {
	authSvc := new(MockUserService)
	authSvc.On("Authenticate", mock.Anything, "valid").
		Return(&models.User{ID: "u1", Email: "kai@surfbrew.test", Role: models.RoleCoach}, nil)

	rec, c := performAuthedRequest(authSvc, "Bearer valid",
		models.RoleAdmin, models.RoleCoach, models.RoleSchool)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.False(t, c.IsAborted())
	assert.Equal(t, "u1", c.GetString(CtxUserID))
	assert.Equal(t, "kai@surfbrew.test", c.GetString(CtxUserEmail))
	assert.Equal(t, models.RoleCoach, c.GetString(CtxUserRole))
}
