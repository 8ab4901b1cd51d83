package handlers

import (
	"errors"
	"net/http"

	"github.com/Codekiller51/brandconnect-server/models"
	"github.com/Codekiller51/brandconnect-server/services/user"
	"github.com/Codekiller51/brandconnect-server/utils"

	"github.com/gin-gonic/gin"
)

// UserHandler exposes client account endpoints.
type UserHandler struct {
	svc user.UserService
}

func NewUserHandler(svc user.UserService) *UserHandler {
	return &UserHandler{svc: svc}
}

func (h *UserHandler) Register(c *gin.Context) {
	var req models.UserRegistrationData
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid registration payload", err.Error())
		return
	}

	resp, err := h.svc.Register(c.Request.Context(), req)
	if err != nil {
		utils.JSONError(c, http.StatusConflict, "Registration failed", err.Error())
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *UserHandler) Login(c *gin.Context) {
	var req struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid login payload", err.Error())
		return
	}

	resp, err := h.svc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, user.ErrInvalidCredentials):
			utils.JSONError(c, http.StatusUnauthorized, "Invalid email or password", "")
		case errors.Is(err, user.ErrAccountSuspended):
			utils.JSONError(c, http.StatusForbidden, "Account suspended", "")
		default:
			utils.JSONError(c, http.StatusInternalServerError, "Login failed", err.Error())
		}
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *UserHandler) Logout(c *gin.Context) {
	accountID, _ := identity(c)
	if err := h.svc.Logout(c.Request.Context(), accountID); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Logout failed", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "logged out"})
}

func (h *UserHandler) Me(c *gin.Context) {
	accountID, _ := identity(c)
	u, err := h.svc.GetByID(c.Request.Context(), accountID)
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "Account not found", err.Error())
		return
	}
	c.JSON(http.StatusOK, u)
}

func (h *UserHandler) Update(c *gin.Context) {
	accountID, _ := identity(c)
	var updates map[string]interface{}
	if err := c.ShouldBindJSON(&updates); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid update payload", err.Error())
		return
	}

	u, err := h.svc.UpdateProfile(c.Request.Context(), accountID, updates)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Update failed", err.Error())
		return
	}
	c.JSON(http.StatusOK, u)
}

func (h *UserHandler) UpdateFCMToken(c *gin.Context) {
	accountID, _ := identity(c)
	var req struct {
		Token string `json:"token" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid payload", err.Error())
		return
	}
	if err := h.svc.UpdateFCMToken(c.Request.Context(), accountID, req.Token); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to update token", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "token updated"})
}

func (h *UserHandler) Delete(c *gin.Context) {
	accountID, _ := identity(c)
	if err := h.svc.Delete(c.Request.Context(), accountID); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Delete failed", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "account deleted"})
}
