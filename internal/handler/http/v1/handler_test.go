package v1

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/mgiraldoc/traffic_points_api/internal/config"
	"github.com/mgiraldoc/traffic_points_api/internal/geo"
	"github.com/mgiraldoc/traffic_points_api/internal/models"
	"github.com/mgiraldoc/traffic_points_api/internal/service"
	"github.com/mgiraldoc/traffic_points_api/internal/service/mocks"
)

const testSecret = "test-secret"

// newTestHandler builds a Handler over mocked services and a test router.
func newTestHandler(t *testing.T) (*mocks.MockGeoPointService, *mocks.MockAuthService, *gin.Engine) {
	ctrl := gomock.NewController(t)
	pointMock := mocks.NewMockGeoPointService(ctrl)
	authMock := mocks.NewMockAuthService(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	cfg := &config.Config{
		JWTSecret: testSecret,
		JWTTTL:    time.Hour,
	}

	handler := NewHandler(pointMock, authMock, logger, cfg)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

	return pointMock, authMock, router
}

// bearerToken signs a token for userID with the test secret.
func bearerToken(t *testing.T, userID string) string {
	claims := service.Claims{
		UserID:   userID,
		Username: "tester",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)
	return "Bearer " + token
}

func makeRequest(router *gin.Engine, method, url string, body io.Reader, headers ...map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, url, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, h := range headers {
		for key, value := range h {
			req.Header.Set(key, value)
		}
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func authHeader(t *testing.T, userID string) map[string]string {
	return map[string]string{"Authorization": bearerToken(t, userID)}
}

func TestCreatePoint_Success(t *testing.T) {
	pointMock, _, router := newTestHandler(t)
	pointID := uuid.New()

	pointMock.EXPECT().
		CreatePoint(gomock.Any(), "user-1", gomock.Any()).
		DoAndReturn(func(_ context.Context, ownerID string, input service.CreatePointInput) (*models.GeoPoint, error) {
			assert.Equal(t, 4.6, input.Latitude)
			assert.Equal(t, models.TypeAccidente, input.Type)
			return &models.GeoPoint{
				ID:        pointID,
				Latitude:  input.Latitude,
				Longitude: input.Longitude,
				Type:      input.Type,
				OwnerID:   ownerID,
				CreatedAt: time.Now(),
				UpdatedAt: time.Now(),
			}, nil
		}).
		Times(1)

	body := `{"latitude": 4.6, "longitude": -74.1, "type": "accidente"}`
	w := makeRequest(router, "POST", "/api/v1/points", bytes.NewBufferString(body), authHeader(t, "user-1"))

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp PointResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, pointID, resp.ID)
	assert.Equal(t, "user-1", resp.OwnerID)
}

func TestCreatePoint_MissingToken(t *testing.T) {
	pointMock, _, router := newTestHandler(t)

	pointMock.EXPECT().CreatePoint(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	body := `{"latitude": 4.6, "longitude": -74.1, "type": "accidente"}`
	w := makeRequest(router, "POST", "/api/v1/points", bytes.NewBufferString(body))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestCreatePoint_InvalidJSON(t *testing.T) {
	pointMock, _, router := newTestHandler(t)

	pointMock.EXPECT().CreatePoint(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, "POST", "/api/v1/points", bytes.NewBufferString(`{"latitude":`), authHeader(t, "user-1"))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid request body")
}

func TestCreatePoint_MissingRequiredField(t *testing.T) {
	pointMock, _, router := newTestHandler(t)

	pointMock.EXPECT().CreatePoint(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	// No latitude.
	body := `{"longitude": -74.1, "type": "accidente"}`
	w := makeRequest(router, "POST", "/api/v1/points", bytes.NewBufferString(body), authHeader(t, "user-1"))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreatePoint_ServiceValidationError(t *testing.T) {
	pointMock, _, router := newTestHandler(t)

	pointMock.EXPECT().
		CreatePoint(gomock.Any(), "user-1", gomock.Any()).
		Return(nil, &service.ValidationError{Field: "latitude", Message: "must be between -90 and 90"}).
		Times(1)

	body := `{"latitude": 91, "longitude": -74.1, "type": "accidente"}`
	w := makeRequest(router, "POST", "/api/v1/points", bytes.NewBufferString(body), authHeader(t, "user-1"))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "latitude")
}

func TestListPoints_WithProximityFilter(t *testing.T) {
	pointMock, _, router := newTestHandler(t)

	pointMock.EXPECT().
		FindAll(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, filter *service.ProximityFilter) ([]*models.GeoPoint, error) {
			require.NotNil(t, filter)
			require.NotNil(t, filter.Lat)
			assert.Equal(t, 4.6, *filter.Lat)
			require.NotNil(t, filter.RadiusKm)
			assert.Equal(t, 10.0, *filter.RadiusKm)
			return []*models.GeoPoint{{ID: uuid.New(), Type: models.TypeAccidente}}, nil
		}).
		Times(1)

	w := makeRequest(router, "GET", "/api/v1/points?lat=4.6&lng=-74.1&radius=10", nil, authHeader(t, "user-1"))

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []PointResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp, 1)
}

func TestListPoints_MalformedFilter(t *testing.T) {
	pointMock, _, router := newTestHandler(t)

	pointMock.EXPECT().
		FindAll(gomock.Any(), gomock.Any()).
		Return(nil, &service.ValidationError{Field: "filter", Message: "lat, lng and radius must be supplied together"}).
		Times(1)

	w := makeRequest(router, "GET", "/api/v1/points?radius=10", nil, authHeader(t, "user-1"))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetPoint_NotFound(t *testing.T) {
	pointMock, _, router := newTestHandler(t)
	id := uuid.New()

	pointMock.EXPECT().
		FindByID(gomock.Any(), id).
		Return(nil, service.ErrNotFound).
		Times(1)

	w := makeRequest(router, "GET", "/api/v1/points/"+id.String(), nil, authHeader(t, "user-1"))

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetPoint_InvalidID(t *testing.T) {
	pointMock, _, router := newTestHandler(t)

	pointMock.EXPECT().FindByID(gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, "GET", "/api/v1/points/not-a-uuid", nil, authHeader(t, "user-1"))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetGeoJSON_Success(t *testing.T) {
	pointMock, _, router := newTestHandler(t)

	pointMock.EXPECT().
		GetGeoJSON(gomock.Any()).
		Return(geo.ToFeatureCollection([]*models.GeoPoint{
			{ID: uuid.New(), Latitude: 4.6, Longitude: -74.1, Type: models.TypeAccidente},
		}), nil).
		Times(1)

	w := makeRequest(router, "GET", "/api/v1/points/geojson", nil, authHeader(t, "user-1"))

	assert.Equal(t, http.StatusOK, w.Code)

	var fc geo.FeatureCollection
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &fc))
	assert.Equal(t, "FeatureCollection", fc.Type)
	require.Len(t, fc.Features, 1)
	assert.Equal(t, []float64{-74.1, 4.6}, fc.Features[0].Geometry.Coordinates)
}

func TestGetMyPoints_Empty(t *testing.T) {
	pointMock, _, router := newTestHandler(t)

	pointMock.EXPECT().
		GetUserPoints(gomock.Any(), "user-1").
		Return(&service.UserPointsResult{Points: geo.ToFeatureCollection(nil), Count: 0}, nil).
		Times(1)

	w := makeRequest(router, "GET", "/api/v1/points/user/my-points", nil, authHeader(t, "user-1"))

	assert.Equal(t, http.StatusOK, w.Code)

	var resp UserPointsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 0, resp.Count)
}

func TestUpdatePoint_Forbidden(t *testing.T) {
	pointMock, _, router := newTestHandler(t)
	id := uuid.New()

	pointMock.EXPECT().
		UpdatePoint(gomock.Any(), id, "intruder", gomock.Any()).
		Return(nil, service.ErrForbidden).
		Times(1)

	body := `{"description": "hijacked"}`
	w := makeRequest(router, "PUT", "/api/v1/points/"+id.String(), bytes.NewBufferString(body), authHeader(t, "intruder"))

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestUpdatePoint_PartialFieldsForwarded(t *testing.T) {
	pointMock, _, router := newTestHandler(t)
	id := uuid.New()

	pointMock.EXPECT().
		UpdatePoint(gomock.Any(), id, "user-1", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, _ string, input service.UpdatePointInput) (*models.GeoPoint, error) {
			require.NotNil(t, input.Type)
			assert.Equal(t, models.TypeCongestion, *input.Type)
			assert.Nil(t, input.Latitude)
			assert.Nil(t, input.Longitude)
			return &models.GeoPoint{ID: id, Type: *input.Type, OwnerID: "user-1"}, nil
		}).
		Times(1)

	body := `{"type": "congestión"}`
	w := makeRequest(router, "PUT", "/api/v1/points/"+id.String(), bytes.NewBufferString(body), authHeader(t, "user-1"))

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestDeletePoint_Success(t *testing.T) {
	pointMock, _, router := newTestHandler(t)
	id := uuid.New()

	pointMock.EXPECT().
		DeletePoint(gomock.Any(), id, "user-1").
		Return(nil).
		Times(1)

	w := makeRequest(router, "DELETE", "/api/v1/points/"+id.String(), nil, authHeader(t, "user-1"))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "deleted")
}

func TestDeletePoint_NotFound(t *testing.T) {
	pointMock, _, router := newTestHandler(t)
	id := uuid.New()

	pointMock.EXPECT().
		DeletePoint(gomock.Any(), id, "user-1").
		Return(service.ErrNotFound).
		Times(1)

	w := makeRequest(router, "DELETE", "/api/v1/points/"+id.String(), nil, authHeader(t, "user-1"))

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeletePoint_StorageError(t *testing.T) {
	pointMock, _, router := newTestHandler(t)
	id := uuid.New()

	pointMock.EXPECT().
		DeletePoint(gomock.Any(), id, "user-1").
		Return(errors.Join(service.ErrStorage, errors.New("connection refused"))).
		Times(1)

	w := makeRequest(router, "DELETE", "/api/v1/points/"+id.String(), nil, authHeader(t, "user-1"))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	// Transport detail must not leak to the client.
	assert.NotContains(t, w.Body.String(), "connection refused")
}

func TestRegister_Success(t *testing.T) {
	_, authMock, router := newTestHandler(t)
	userID := uuid.New()

	authMock.EXPECT().
		Register(gomock.Any(), gomock.Any()).
		Return(&models.User{ID: userID, Username: "maria", CreatedAt: time.Now()}, nil).
		Times(1)

	body := `{"username": "maria", "password": "secret123"}`
	w := makeRequest(router, "POST", "/api/v1/auth/register", bytes.NewBufferString(body))

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp UserResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, userID, resp.ID)
	assert.NotContains(t, w.Body.String(), "password")
}

func TestRegister_ShortPassword(t *testing.T) {
	_, authMock, router := newTestHandler(t)

	authMock.EXPECT().Register(gomock.Any(), gomock.Any()).Times(0)

	body := `{"username": "maria", "password": "abc"}`
	w := makeRequest(router, "POST", "/api/v1/auth/register", bytes.NewBufferString(body))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLogin_InvalidCredentials(t *testing.T) {
	_, authMock, router := newTestHandler(t)

	authMock.EXPECT().
		Login(gomock.Any(), "maria", "wrong").
		Return("", service.ErrInvalidCredentials).
		Times(1)

	body := `{"username": "maria", "password": "wrong"}`
	w := makeRequest(router, "POST", "/api/v1/auth/login", bytes.NewBufferString(body))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLogin_Success(t *testing.T) {
	_, authMock, router := newTestHandler(t)

	authMock.EXPECT().
		Login(gomock.Any(), "maria", "secret123").
		Return("signed-token", nil).
		Times(1)

	body := `{"username": "maria", "password": "secret123"}`
	w := makeRequest(router, "POST", "/api/v1/auth/login", bytes.NewBufferString(body))

	assert.Equal(t, http.StatusOK, w.Code)

	var resp LoginResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "signed-token", resp.Token)
}

func TestHealthCheck(t *testing.T) {
	_, _, router := newTestHandler(t)

	w := makeRequest(router, "GET", "/api/v1/system/health", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "ok")
}

func TestAuthMiddleware_BadScheme(t *testing.T) {
	pointMock, _, router := newTestHandler(t)

	pointMock.EXPECT().FindAll(gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, "GET", "/api/v1/points", nil, map[string]string{"Authorization": "Basic abc"})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddleware_ForgedToken(t *testing.T) {
	pointMock, _, router := newTestHandler(t)

	pointMock.EXPECT().FindAll(gomock.Any(), gomock.Any()).Times(0)

	claims := service.Claims{UserID: "user-1"}
	forged, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("wrong-secret"))
	require.NoError(t, err)

	w := makeRequest(router, "GET", "/api/v1/points", nil, map[string]string{"Authorization": "Bearer " + forged})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
