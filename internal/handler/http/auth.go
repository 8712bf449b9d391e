package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/workpulse/workpulse-backend-go/internal/domain/auth"
	"github.com/workpulse/workpulse-backend-go/internal/handler/http/response"
	"github.com/workpulse/workpulse-backend-go/internal/pkg/jwt"
	"github.com/workpulse/workpulse-backend-go/internal/pkg/oauth"
)

type AuthHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
	LoginWithGoogle(w http.ResponseWriter, r *http.Request)
	OAuthCallbackGoogle(w http.ResponseWriter, r *http.Request)
	Refresh(w http.ResponseWriter, r *http.Request)
	Logout(w http.ResponseWriter, r *http.Request)
}

type authHandlerImpl struct {
	authService   auth.AuthService
	jwtService    jwt.Service
	googleService oauth.GoogleService
}

func NewAuthHandler(authService auth.AuthService, jwtService jwt.Service, googleService oauth.GoogleService) AuthHandler {
	return &authHandlerImpl{
		authService:   authService,
		jwtService:    jwtService,
		googleService: googleService,
	}
}

// Register implements AuthHandler.
func (h *authHandlerImpl) Register(w http.ResponseWriter, r *http.Request) {
	var req auth.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.authService.Register(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	h.setRefreshCookie(w, result)
	response.Created(w, "Registration successful", result)
}

// Login implements AuthHandler.
func (h *authHandlerImpl) Login(w http.ResponseWriter, r *http.Request) {
	var req auth.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.authService.Login(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	h.setRefreshCookie(w, result)
	response.SuccessWithMessage(w, "Login successful", result)
}

// LoginWithGoogle implements AuthHandler. Redirects the browser into the
// Google consent flow.
func (h *authHandlerImpl) LoginWithGoogle(w http.ResponseWriter, r *http.Request) {
	state := h.googleService.GenerateState(r.UserAgent())
	http.Redirect(w, r, h.googleService.RedirectURL(state), http.StatusTemporaryRedirect)
}

// OAuthCallbackGoogle implements AuthHandler.
func (h *authHandlerImpl) OAuthCallbackGoogle(w http.ResponseWriter, r *http.Request) {
	code := r.URL.Query().Get("code")
	if code == "" {
		response.BadRequest(w, "Missing authorization code", nil)
		return
	}

	result, err := h.authService.LoginWithGoogle(r.Context(), code)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	h.setRefreshCookie(w, result)
	response.SuccessWithMessage(w, "Login successful", result)
}

// Refresh implements AuthHandler. The refresh token travels in an HttpOnly
// cookie, never in the JSON body.
func (h *authHandlerImpl) Refresh(w http.ResponseWriter, r *http.Request) {
	cookie, err := r.Cookie("refresh_token")
	if err != nil {
		response.Unauthorized(w, "Missing refresh token")
		return
	}

	result, err := h.authService.Refresh(r.Context(), cookie.Value)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	h.setRefreshCookie(w, result)
	response.SuccessWithMessage(w, "Token refreshed", result)
}

// Logout implements AuthHandler.
func (h *authHandlerImpl) Logout(w http.ResponseWriter, r *http.Request) {
	cookie, err := r.Cookie("refresh_token")
	if err == nil {
		if err := h.authService.Logout(r.Context(), cookie.Value); err != nil {
			response.HandleError(w, err)
			return
		}
	}

	expired := h.jwtService.RefreshTokenCookie("", time.Now().Add(-time.Hour).Unix())
	http.SetCookie(w, expired)

	response.SuccessWithMessage(w, "Logout successful", nil)
}

func (h *authHandlerImpl) setRefreshCookie(w http.ResponseWriter, result auth.TokenResponse) {
	http.SetCookie(w, h.jwtService.RefreshTokenCookie(result.RefreshToken, result.RefreshTokenExpiresAt))
}
