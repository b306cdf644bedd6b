package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/aussiebroadwan/taskboard/internal/board/service"
	"github.com/aussiebroadwan/taskboard/internal/board/store"
	"github.com/aussiebroadwan/taskboard/pkg/boardsdk"
	"github.com/aussiebroadwan/taskboard/pkg/httpx"
	"github.com/aussiebroadwan/taskboard/pkg/jwtx"
	"github.com/aussiebroadwan/taskboard/pkg/slogx"
)

type SessionHandler struct {
	SessionService *service.SessionService
}

// HandleLogin godoc
//
//	@Summary		Login Endpoint
//	@Description	Validate credentials against the user directory and start a session. On success the response carries a bearer token and the session record; the token is never persisted server-side, only its fingerprint.
//	@Tags			Session
//	@Accept			json
//	@Produce		json
//	@Param			request	body		boardsdk.LoginRequest	true	"Credentials"
//	@Success		200		{object}	boardsdk.LoginResponse	"access_token, token_type, expires_in, session"
//	@Failure		400		{object}	boardsdk.ErrorResponse	"error, error_description"
//	@Failure		401		{object}	boardsdk.ErrorResponse	"error, error_description"
//	@Failure		500		{object}	boardsdk.ErrorResponse	"error, error_description"
//	@Router			/v1/session/login [post].
func (h *SessionHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req boardsdk.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteJSON(w, http.StatusBadRequest, boardsdk.ErrorResponse{
			Error:            boardsdk.ErrorCodeInvalidRequest,
			ErrorDescription: "Invalid JSON body",
		})
		return
	}
	if req.Email == "" || req.Password == "" {
		httpx.WriteJSON(w, http.StatusBadRequest, boardsdk.ErrorResponse{
			Error:            boardsdk.ErrorCodeInvalidRequest,
			ErrorDescription: "email and password are required",
		})
		return
	}

	result, err := h.SessionService.Login(ctx, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidCredentials):
			// Unknown email and wrong password collapse into one answer.
			httpx.WriteJSON(w, http.StatusUnauthorized, boardsdk.ErrorResponse{
				Error:            boardsdk.ErrorCodeUnauthorized,
				ErrorDescription: "Invalid email or password",
			})
		default:
			log.Error("login failed", "err", err)
			httpx.WriteJSON(w, http.StatusInternalServerError, boardsdk.ErrorResponse{
				Error:            boardsdk.ErrorCodeServerError,
				ErrorDescription: "Failed to log in",
			})
		}
		return
	}

	ttl := h.SessionService.AccessTTL
	if ttl <= 0 {
		ttl = jwtx.DefaultAccessTokenTTL
	}

	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusOK, boardsdk.LoginResponse{
		AccessToken: result.Token,
		TokenType:   "Bearer",
		ExpiresIn:   int(ttl.Seconds()),
		Session:     toSessionDTO(result.Session),
	})
}

// HandleMe godoc
//
//	@Summary		Current Session Endpoint
//	@Description	Return the persisted session record for the authenticated caller
//	@Tags			Session
//	@Produce		json
//	@Success		200	{object}	boardsdk.SessionInfo	"session record"
//	@Failure		401	{object}	boardsdk.ErrorResponse	"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/session [get].
func (h *SessionHandler) HandleMe(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	sess, err := h.SessionService.Resume(ctx)
	if err != nil {
		if errors.Is(err, service.ErrNotLoggedIn) || errors.Is(err, store.ErrNotFound) {
			httpx.WriteJSON(w, http.StatusUnauthorized, boardsdk.ErrorResponse{
				Error:            boardsdk.ErrorCodeUnauthorized,
				ErrorDescription: "No active session",
			})
			return
		}
		slogx.FromContext(ctx).Error("session resume failed", "err", err)
		httpx.WriteJSON(w, http.StatusInternalServerError, boardsdk.ErrorResponse{
			Error:            boardsdk.ErrorCodeServerError,
			ErrorDescription: "Failed to load session",
		})
		return
	}

	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusOK, toSessionDTO(sess))
}

// HandleLogout godoc
//
//	@Summary		Logout Endpoint
//	@Description	Remove the persisted session record. The bearer token remains valid until expiry but no longer maps to a session.
//	@Tags			Session
//	@Produce		json
//	@Success		204	"session removed"
//	@Failure		500	{object}	boardsdk.ErrorResponse	"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/session [delete].
func (h *SessionHandler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := h.SessionService.Logout(ctx); err != nil && !errors.Is(err, store.ErrNotFound) {
		slogx.FromContext(ctx).Error("logout failed", "err", err)
		httpx.WriteJSON(w, http.StatusInternalServerError, boardsdk.ErrorResponse{
			Error:            boardsdk.ErrorCodeServerError,
			ErrorDescription: "Failed to log out",
		})
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// HandleResetPassword godoc
//
//	@Summary		Password Reset Endpoint
//	@Description	Request a password reset link. The response is identical whether or not the email is known, so the endpoint cannot be used to probe the directory.
//	@Tags			Session
//	@Accept			json
//	@Produce		json
//	@Param			request	body		boardsdk.ResetPasswordRequest	true	"Reset request"
//	@Success		200		{object}	boardsdk.MessageResponse		"message"
//	@Failure		400		{object}	boardsdk.ErrorResponse			"error, error_description"
//	@Router			/v1/session/reset-password [post].
func (h *SessionHandler) HandleResetPassword(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req boardsdk.ResetPasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteJSON(w, http.StatusBadRequest, boardsdk.ErrorResponse{
			Error:            boardsdk.ErrorCodeInvalidRequest,
			ErrorDescription: "Invalid JSON body",
		})
		return
	}
	if req.Email == "" {
		httpx.WriteJSON(w, http.StatusBadRequest, boardsdk.ErrorResponse{
			Error:            boardsdk.ErrorCodeInvalidRequest,
			ErrorDescription: "email is required",
		})
		return
	}

	if err := h.SessionService.ResetPassword(ctx, req.Email); err != nil &&
		!errors.Is(err, service.ErrEmailNotFound) {
		slogx.FromContext(ctx).Error("password reset failed", "err", err)
		httpx.WriteJSON(w, http.StatusInternalServerError, boardsdk.ErrorResponse{
			Error:            boardsdk.ErrorCodeServerError,
			ErrorDescription: "Failed to request reset",
		})
		return
	}

	// Same body for known and unknown emails.
	httpx.WriteJSON(w, http.StatusOK, boardsdk.MessageResponse{
		Message: "If an account exists for that email, a reset link has been sent.",
	})
}

// HandleUpdatePassword godoc
//
//	@Summary		Update Password Endpoint
//	@Description	Set a new password for the logged-in user. Clears the first-login flag on both the directory entry and the session record.
//	@Tags			Session
//	@Accept			json
//	@Produce		json
//	@Param			request	body		boardsdk.UpdatePasswordRequest	true	"New password"
//	@Success		200		{object}	boardsdk.SessionInfo			"updated session record"
//	@Failure		400		{object}	boardsdk.ErrorResponse			"error, error_description"
//	@Failure		401		{object}	boardsdk.ErrorResponse			"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/session/password [put].
func (h *SessionHandler) HandleUpdatePassword(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req boardsdk.UpdatePasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteJSON(w, http.StatusBadRequest, boardsdk.ErrorResponse{
			Error:            boardsdk.ErrorCodeInvalidRequest,
			ErrorDescription: "Invalid JSON body",
		})
		return
	}

	sess, err := h.SessionService.UpdatePassword(ctx, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrWeakPassword):
			httpx.WriteJSON(w, http.StatusBadRequest, boardsdk.ErrorResponse{
				Error:            boardsdk.ErrorCodeInvalidRequest,
				ErrorDescription: "Password must be at least 8 characters and contain a letter and a digit",
			})
		case errors.Is(err, service.ErrNotLoggedIn), errors.Is(err, store.ErrNotFound):
			httpx.WriteJSON(w, http.StatusUnauthorized, boardsdk.ErrorResponse{
				Error:            boardsdk.ErrorCodeUnauthorized,
				ErrorDescription: "No active session",
			})
		default:
			slogx.FromContext(ctx).Error("password update failed", "err", err)
			httpx.WriteJSON(w, http.StatusInternalServerError, boardsdk.ErrorResponse{
				Error:            boardsdk.ErrorCodeServerError,
				ErrorDescription: "Failed to update password",
			})
		}
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toSessionDTO(sess))
}

// HandleUpdateProfile godoc
//
//	@Summary		Update Profile Endpoint
//	@Description	Edit the logged-in user's name and/or email. Omitted fields are left unchanged; changes propagate to both the directory entry and the session record.
//	@Tags			Session
//	@Accept			json
//	@Produce		json
//	@Param			request	body		boardsdk.UpdateProfileRequest	true	"Profile edit"
//	@Success		200		{object}	boardsdk.SessionInfo			"updated session record"
//	@Failure		400		{object}	boardsdk.ErrorResponse			"error, error_description"
//	@Failure		401		{object}	boardsdk.ErrorResponse			"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/session/profile [put].
func (h *SessionHandler) HandleUpdateProfile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req boardsdk.UpdateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteJSON(w, http.StatusBadRequest, boardsdk.ErrorResponse{
			Error:            boardsdk.ErrorCodeInvalidRequest,
			ErrorDescription: "Invalid JSON body",
		})
		return
	}

	sess, err := h.SessionService.UpdateProfile(ctx, service.ProfileUpdate{
		Name:  req.Name,
		Email: req.Email,
	})
	if err != nil {
		if errors.Is(err, service.ErrNotLoggedIn) || errors.Is(err, store.ErrNotFound) {
			httpx.WriteJSON(w, http.StatusUnauthorized, boardsdk.ErrorResponse{
				Error:            boardsdk.ErrorCodeUnauthorized,
				ErrorDescription: "No active session",
			})
			return
		}
		slogx.FromContext(ctx).Error("profile update failed", "err", err)
		httpx.WriteJSON(w, http.StatusInternalServerError, boardsdk.ErrorResponse{
			Error:            boardsdk.ErrorCodeServerError,
			ErrorDescription: "Failed to update profile",
		})
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toSessionDTO(sess))
}
