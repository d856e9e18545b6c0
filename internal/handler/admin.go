package handler

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/moraputalapraveen/hireme4u-backend/internal/auth"
	"github.com/moraputalapraveen/hireme4u-backend/internal/repository"
	"github.com/moraputalapraveen/hireme4u-backend/pkg"
	"github.com/moraputalapraveen/hireme4u-backend/pkg/model"
	"github.com/moraputalapraveen/hireme4u-backend/pkg/response"
)

// SetupAdmin creates the admin account. Refuses when the username is
// already taken.
func (h *Handler) SetupAdmin(c *gin.Context) {
	var req model.AdminCredentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Username and password are required")
		return
	}

	ctx := c.Request.Context()
	if _, err := h.Admins.GetByUsername(ctx, req.Username); err == nil {
		response.BadRequest(c, "Admin already exists")
		return
	} else if !errors.Is(err, repository.ErrAdminNotFound) {
		h.Logger.Sugar().Errorw("admin lookup failed", "err", err)
		response.InternalError(c, "")
		return
	}

	hash, err := pkg.HashPassword(req.Password)
	if err != nil {
		h.Logger.Sugar().Errorw("failed to hash password", "err", err)
		response.InternalError(c, "")
		return
	}

	admin := &model.Admin{
		Username:     req.Username,
		PasswordHash: hash,
		Role:         auth.RoleAdmin,
	}
	if err := h.Admins.Create(ctx, admin); err != nil {
		if errors.Is(err, repository.ErrAdminExists) {
			response.BadRequest(c, "Admin already exists")
			return
		}
		h.Logger.Sugar().Errorw("admin create failed", "username", req.Username, "err", err)
		response.InternalError(c, "Error creating admin")
		return
	}

	h.Logger.Sugar().Infow("admin created", "username", admin.Username)
	response.OK(c, gin.H{
		"message":  "Admin created successfully",
		"username": admin.Username,
	})
}

// LoginAdmin verifies credentials and issues a signed 7-day token carrying
// the account id and role.
func (h *Handler) LoginAdmin(c *gin.Context) {
	var req model.AdminCredentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Username and password are required")
		return
	}

	admin, err := h.Admins.GetByUsername(c.Request.Context(), req.Username)
	if err != nil {
		h.Logger.Sugar().Warnw("login admin not found", "username", req.Username)
		response.Unauthorized(c, "Invalid credentials")
		return
	}
	if err := pkg.ComparePassword(admin.PasswordHash, req.Password); err != nil {
		h.Logger.Sugar().Warnw("login password mismatch", "username", req.Username)
		response.Unauthorized(c, "Invalid credentials")
		return
	}

	token, _, err := h.TokenMaker.GenerateToken(admin.ID, admin.Role)
	if err != nil {
		h.Logger.Sugar().Errorw("error creating token", "err", err)
		response.InternalError(c, "could not generate token")
		return
	}

	response.OK(c, gin.H{
		"token": token,
		"admin": gin.H{"username": admin.Username, "role": admin.Role},
	})
}
