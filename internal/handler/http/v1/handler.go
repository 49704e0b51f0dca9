package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/mgiraldoc/traffic_points_api/internal/config"
	"github.com/mgiraldoc/traffic_points_api/internal/service"
)

type Handler struct {
	pointService service.GeoPointService
	authService  service.AuthService
	logger       *logrus.Logger
	validate     *validator.Validate
	cfg          *config.Config
}

func NewHandler(pointService service.GeoPointService, authService service.AuthService, logger *logrus.Logger, cfg *config.Config) *Handler {
	return &Handler{
		pointService: pointService,
		authService:  authService,
		logger:       logger,
		validate:     validator.New(),
		cfg:          cfg,
	}
}

// respondError maps service error kinds to HTTP statuses.
func respondError(c *gin.Context, err error) {
	switch {
	case service.IsValidationError(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "point not found"})
	case errors.Is(err, service.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": "you do not own this point"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

// @Summary Register a new user
// @Description Create an account able to report traffic points.
// @Tags Auth
// @Accept json
// @Produce json
// @Param user body RegisterRequest true "Registration request"
// @Success 201 {object} UserResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 409 {object} map[string]string "Username already taken"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /auth/register [post]
func (h *Handler) register(c *gin.Context) {
	var input RegisterRequest
	log := h.logger.WithField("method", "register")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.authService.Register(c.Request.Context(), service.RegisterInput{
		Username: input.Username,
		Password: input.Password,
		Email:    input.Email,
	})
	if err != nil {
		if errors.Is(err, service.ErrUsernameTaken) {
			c.JSON(http.StatusConflict, gin.H{"error": "username already taken"})
			return
		}
		log.WithError(err).Error("Failed to register user")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusCreated, ModelToUserResponse(user))
}

// @Summary Log in
// @Description Exchange credentials for a bearer token.
// @Tags Auth
// @Accept json
// @Produce json
// @Param credentials body LoginRequest true "Login request"
// @Success 200 {object} LoginResponse
// @Failure 400 {object} map[string]string "Invalid request body"
// @Failure 401 {object} map[string]string "Invalid credentials"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /auth/login [post]
func (h *Handler) login(c *gin.Context) {
	var input LoginRequest
	log := h.logger.WithField("method", "login")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	token, err := h.authService.Login(c.Request.Context(), input.Username, input.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
			return
		}
		log.WithError(err).Error("Failed to log in user")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, LoginResponse{Token: token})
}

// @Summary Report a new traffic point
// @Description Create a geo-tagged traffic event owned by the authenticated user.
// @Tags Points
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param point body CreatePointRequest true "Point creation request"
// @Success 201 {object} PointResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /points [post]
func (h *Handler) createPoint(c *gin.Context) {
	var input CreatePointRequest
	log := h.logger.WithField("method", "createPoint")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	point, err := h.pointService.CreatePoint(c.Request.Context(), actingUserID(c), CreateRequestToInput(input))
	if err != nil {
		log.WithError(err).Warn("Failed to create point in service")
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, ModelToPointResponse(point))
}

// @Summary List traffic points
// @Description List points, optionally filtered by type and/or proximity. lat, lng and radius must be supplied together.
// @Tags Points
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param type query string false "Point type" Enums(accidente, congestión, obstrucción, otro)
// @Param lat query number false "Center latitude"
// @Param lng query number false "Center longitude"
// @Param radius query number false "Radius in kilometers"
// @Success 200 {array} PointResponse
// @Failure 400 {object} map[string]string "Malformed filter"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /points [get]
func (h *Handler) listPoints(c *gin.Context) {
	log := h.logger.WithField("method", "listPoints")

	var query listPointsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		log.WithError(err).Warn("Failed to bind query parameters")
		c.JSON(http.StatusBadRequest, gin.H{"error": "lat, lng and radius must be valid numbers"})
		return
	}

	points, err := h.pointService.FindAll(c.Request.Context(), query.toFilter())
	if err != nil {
		log.WithError(err).Warn("Failed to list points from service")
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, ModelsToPointResponses(points))
}

// @Summary Get all points as GeoJSON
// @Description Project every stored point into a GeoJSON FeatureCollection.
// @Tags Points
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} geo.FeatureCollection
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /points/geojson [get]
func (h *Handler) getGeoJSON(c *gin.Context) {
	log := h.logger.WithField("method", "getGeoJSON")

	fc, err := h.pointService.GetGeoJSON(c.Request.Context())
	if err != nil {
		log.WithError(err).Error("Failed to build GeoJSON in service")
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, fc)
}

// @Summary Get my points
// @Description Return the authenticated user's points as GeoJSON with a count.
// @Tags Points
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} UserPointsResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /points/user/my-points [get]
func (h *Handler) getMyPoints(c *gin.Context) {
	log := h.logger.WithField("method", "getMyPoints")

	result, err := h.pointService.GetUserPoints(c.Request.Context(), actingUserID(c))
	if err != nil {
		log.WithError(err).Error("Failed to get user points from service")
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, UserPointsResponse{Points: result.Points, Count: result.Count})
}

// @Summary Get a point by ID
// @Description Fetch a single traffic point.
// @Tags Points
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Point ID"
// @Success 200 {object} PointResponse
// @Failure 400 {object} map[string]string "Invalid point ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Point not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /points/{id} [get]
func (h *Handler) getPoint(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid point ID"})
		return
	}
	log := h.logger.WithField("method", "getPoint").WithField("id", id)

	point, err := h.pointService.FindByID(c.Request.Context(), id)
	if err != nil {
		log.WithError(err).Warn("Failed to get point from service")
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, ModelToPointResponse(point))
}

// @Summary Update a point
// @Description Partially update a point owned by the authenticated user. Absent fields stay unchanged.
// @Tags Points
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Point ID"
// @Param point body UpdatePointRequest true "Point update request"
// @Success 200 {object} PointResponse
// @Failure 400 {object} map[string]string "Invalid point ID or request body"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Not the owner"
// @Failure 404 {object} map[string]string "Point not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /points/{id} [put]
func (h *Handler) updatePoint(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid point ID"})
		return
	}
	log := h.logger.WithField("method", "updatePoint").WithField("id", id)

	var input UpdatePointRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	point, err := h.pointService.UpdatePoint(c.Request.Context(), id, actingUserID(c), UpdateRequestToInput(input))
	if err != nil {
		log.WithError(err).Warn("Failed to update point in service")
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, ModelToPointResponse(point))
}

// @Summary Delete a point
// @Description Permanently delete a point owned by the authenticated user.
// @Tags Points
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Point ID"
// @Success 200 {object} map[string]string "Deletion confirmation"
// @Failure 400 {object} map[string]string "Invalid point ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Not the owner"
// @Failure 404 {object} map[string]string "Point not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /points/{id} [delete]
func (h *Handler) deletePoint(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid point ID"})
		return
	}
	log := h.logger.WithField("method", "deletePoint").WithField("id", id)

	if err := h.pointService.DeletePoint(c.Request.Context(), id, actingUserID(c)); err != nil {
		log.WithError(err).Warn("Failed to delete point in service")
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "point deleted successfully"})
}

// @Summary Get application health status
// @Description Get health status of the application
// @Tags System
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string "Status OK"
// @Router /system/health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
