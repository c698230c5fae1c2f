package api

import (
	"net/http"

	reqdto "clinic-booking/internal/handler/dto/request"
	resdto "clinic-booking/internal/handler/dto/response"
	"clinic-booking/internal/pkg/config"
	"clinic-booking/internal/pkg/cookie"
	"clinic-booking/internal/pkg/jwt"
	"clinic-booking/internal/usecase/commands"
	"clinic-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AuthHandler struct {
	commands   commands.AuthCommands
	patients   queries.PatientQueries
	jwtService *jwt.Service
	cookieCfg  config.CookieConfig
}

func NewAuthHandler(
	authCommands commands.AuthCommands,
	patientQueries queries.PatientQueries,
	jwtService *jwt.Service,
	cfg config.Config,
) *AuthHandler {
	return &AuthHandler{
		commands:   authCommands,
		patients:   patientQueries,
		jwtService: jwtService,
		cookieCfg:  cfg.Cookie,
	}
}

// @Summary Register patient
// @Description Create a patient account and queue the confirmation email
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.RegisterRequest true "Registration"
// @Success 201 {object} resdto.PatientResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req reqdto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err, "Invalid request format")
		return
	}

	view, err := h.commands.Register(c.Request.Context(), req.ToInput())
	if err != nil {
		respondError(c, err)
		return
	}

	res, err := resdto.FromPatientView(view)
	if err != nil {
		respondError(c, err)
		return
	}
	c.Header("Location", "/api/admin/patients/"+view.ID.String())
	c.JSON(http.StatusCreated, res)
}

// @Summary Confirm account
// @Tags auth
// @Produce json
// @Param token path string true "Confirmation token"
// @Success 200 {object} map[string]string
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/auth/confirm/{token} [get]
func (h *AuthHandler) Confirm(c *gin.Context) {
	token, err := uuid.Parse(c.Param("token"))
	if err != nil {
		badRequest(c, err, "Invalid confirmation token format")
		return
	}

	if err := h.commands.Confirm(c.Request.Context(), token); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "confirmed"})
}

// @Summary Login
// @Description Login with email and password. The token is also set as an HttpOnly cookie.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.LoginRequest true "Login request"
// @Success 200 {object} resdto.LoginResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /api/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req reqdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err, "Invalid request format")
		return
	}

	credentials, err := req.ToDomain()
	if err != nil {
		badRequest(c, err, "Invalid request data")
		return
	}

	result, err := h.commands.Login(c.Request.Context(), credentials)
	if err != nil {
		respondError(c, err)
		return
	}

	cookie.SetAccessToken(c, h.cookieCfg, result.AccessToken, h.jwtService.TokenDuration())
	c.JSON(http.StatusOK, resdto.LoginResponse{
		AccessToken: result.AccessToken,
		ExpiresAt:   result.ExpiresAt,
		Patient:     resdto.FromActor(result.Actor),
	})
}

// @Summary Logout
// @Description Clears the access token cookie. Tokens are stateless and expire on their own.
// @Tags auth
// @Security BearerAuth
// @Success 204 "No Content"
// @Router /api/auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	cookie.ClearAccessToken(c, h.cookieCfg)
	c.Status(http.StatusNoContent)
}

// @Summary Current patient
// @Description Profile of the caller with upcoming visits
// @Tags auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} resdto.PatientDetailResponse
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}

	view, err := h.patients.Me(c.Request.Context(), actor)
	if err != nil {
		respondError(c, err)
		return
	}

	res, err := resdto.FromPatientDetail(view)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}
