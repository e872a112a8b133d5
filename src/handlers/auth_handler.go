package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/username/brokercomm/src/logger"
	"github.com/username/brokercomm/src/security"
	"github.com/username/brokercomm/src/utils"
)

type AuthHandler struct {
	authService *security.AuthService
}

func NewAuthHandler(authService *security.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

type loginRequest struct {
	Password string `json:"password"`
}

type loginResponse struct {
	Token string `json:"token"`
}

// HandleLogin verifies the operator password and returns a bearer token.
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.SendJSONError(w, "Invalid JSON body.", http.StatusBadRequest)
		return
	}

	token, err := h.authService.Login(req.Password)
	if err != nil {
		if errors.Is(err, security.ErrInvalidCredentials) {
			utils.SendJSONError(w, "Invalid credentials.", http.StatusUnauthorized)
		} else {
			logger.L.Error("Login failed", "error", err)
			utils.SendJSONError(w, "Login is not available.", http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(loginResponse{Token: token})
}
