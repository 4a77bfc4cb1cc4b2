package handlers

import (
	"errors"
	"net/http"

	"github.com/vmedia/showreel/internal/admin"
	"github.com/vmedia/showreel/internal/httpserver/deps"
	"github.com/vmedia/showreel/internal/logger"
	"github.com/vmedia/showreel/internal/utils"
)

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string `json:"token"`
}

// Login checks the credential pair and issues a session token. The token is
// returned in the body and mirrored in a cookie so the admin page works
// without client-side header plumbing.
func Login(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req loginRequest
		if !decodeBody(w, r, &req) {
			return
		}

		token, err := d.Sessions.Login(req.Username, req.Password)
		if err != nil {
			if errors.Is(err, admin.ErrInvalidCredentials) {
				d.Logger.Warn("admin login rejected",
					logger.String("remote_ip", utils.ClientIP(r, d.TrustProxy)))
				writeError(w, http.StatusUnauthorized, err.Error())
				return
			}
			writeError(w, http.StatusInternalServerError, "login failed")
			return
		}

		http.SetCookie(w, &http.Cookie{
			Name:     "showreel_session",
			Value:    token,
			Path:     "/",
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})
		writeJSON(w, http.StatusOK, loginResponse{Token: token})
	}
}
