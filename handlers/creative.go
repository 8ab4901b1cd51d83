package handlers

import (
	"errors"
	"net/http"

	"github.com/Codekiller51/brandconnect-server/models"
	"github.com/Codekiller51/brandconnect-server/services/creative"
	"github.com/Codekiller51/brandconnect-server/utils"

	"github.com/gin-gonic/gin"
)

// CreativeHandler exposes creative account and public profile endpoints.
type CreativeHandler struct {
	svc creative.CreativeService
}

func NewCreativeHandler(svc creative.CreativeService) *CreativeHandler {
	return &CreativeHandler{svc: svc}
}

func (h *CreativeHandler) Register(c *gin.Context) {
	var req models.CreativeRegistrationData
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

func (h *CreativeHandler) Login(c *gin.Context) {
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
		case errors.Is(err, creative.ErrInvalidCredentials):
			utils.JSONError(c, http.StatusUnauthorized, "Invalid email or password", "")
		case errors.Is(err, creative.ErrAccountSuspended):
			utils.JSONError(c, http.StatusForbidden, "Account suspended", "")
		default:
			utils.JSONError(c, http.StatusInternalServerError, "Login failed", err.Error())
		}
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *CreativeHandler) Logout(c *gin.Context) {
	accountID, _ := identity(c)
	if err := h.svc.Logout(c.Request.Context(), accountID); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Logout failed", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "logged out"})
}

// Search is the public browse endpoint: category, region, free text, rating
// floor.
func (h *CreativeHandler) Search(c *gin.Context) {
	var q models.CreativeSearchQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid search query", err.Error())
		return
	}

	results, err := h.svc.Search(c.Request.Context(), q)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Search failed", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"creatives": results})
}

// GetPublicProfile serves an approved profile to anyone.
func (h *CreativeHandler) GetPublicProfile(c *gin.Context) {
	cr, err := h.svc.GetPublicProfile(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "Profile not found", "")
		return
	}
	c.JSON(http.StatusOK, cr)
}

func (h *CreativeHandler) Me(c *gin.Context) {
	accountID, _ := identity(c)
	cr, err := h.svc.GetByID(c.Request.Context(), accountID)
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "Account not found", err.Error())
		return
	}
	c.JSON(http.StatusOK, cr)
}

func (h *CreativeHandler) Update(c *gin.Context) {
	accountID, _ := identity(c)
	var updates map[string]interface{}
	if err := c.ShouldBindJSON(&updates); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid update payload", err.Error())
		return
	}

	cr, err := h.svc.UpdateProfile(c.Request.Context(), accountID, updates)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Update failed", err.Error())
		return
	}
	c.JSON(http.StatusOK, cr)
}

func (h *CreativeHandler) UpdateFCMToken(c *gin.Context) {
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

func (h *CreativeHandler) UpsertService(c *gin.Context) {
	accountID, _ := identity(c)
	var svc models.Service
	if err := c.ShouldBindJSON(&svc); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid service payload", err.Error())
		return
	}

	saved, err := h.svc.UpsertService(c.Request.Context(), accountID, svc)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Could not save service", err.Error())
		return
	}
	c.JSON(http.StatusOK, saved)
}

func (h *CreativeHandler) RemoveService(c *gin.Context) {
	accountID, _ := identity(c)
	if err := h.svc.RemoveService(c.Request.Context(), accountID, c.Param("serviceId")); err != nil {
		utils.JSONError(c, http.StatusNotFound, "Could not remove service", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "service removed"})
}

// UploadPortfolioItem accepts a multipart file plus optional title.
func (h *CreativeHandler) UploadPortfolioItem(c *gin.Context) {
	accountID, _ := identity(c)

	fileHeader, err := c.FormFile("file")
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Missing file", err.Error())
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Could not read file", err.Error())
		return
	}
	defer file.Close()

	item, err := h.svc.AddPortfolioItem(c.Request.Context(), accountID, c.PostForm("title"), file)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Upload failed", err.Error())
		return
	}
	c.JSON(http.StatusCreated, item)
}

func (h *CreativeHandler) RemovePortfolioItem(c *gin.Context) {
	accountID, _ := identity(c)
	if err := h.svc.RemovePortfolioItem(c.Request.Context(), accountID, c.Param("itemId")); err != nil {
		utils.JSONError(c, http.StatusNotFound, "Could not remove portfolio item", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "portfolio item removed"})
}
