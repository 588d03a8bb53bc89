package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/farmergpt/internal/dto"
	"github.com/BruksfildServices01/farmergpt/internal/httperr"
	"github.com/BruksfildServices01/farmergpt/internal/httpresp"
	"github.com/BruksfildServices01/farmergpt/internal/middleware"
	ucAuth "github.com/BruksfildServices01/farmergpt/internal/usecase/auth"
)

type AuthHandler struct {
	register *ucAuth.Register
	login    *ucAuth.Login
	refresh  *ucAuth.Refresh
	logout   *ucAuth.Logout
}

func NewAuthHandler(
	register *ucAuth.Register,
	login *ucAuth.Login,
	refresh *ucAuth.Refresh,
	logout *ucAuth.Logout,
) *AuthHandler {
	return &AuthHandler{
		register: register,
		login:    login,
		refresh:  refresh,
		logout:   logout,
	}
}

// --------- Requests ---------

type RegisterRequest struct {
	Username  string `json:"username" binding:"required,max=150"`
	Email     string `json:"email" binding:"required,email,max=254"`
	Password  string `json:"password" binding:"required"`
	Password2 string `json:"password2" binding:"required"`
	FirstName string `json:"first_name" binding:"max=150"`
	LastName  string `json:"last_name" binding:"max=150"`
	Phone     string `json:"phone" binding:"max=15"`
	Location  string `json:"location" binding:"max=255"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type RefreshRequest struct {
	Refresh string `json:"refresh" binding:"required"`
}

// --------- Handlers ---------

func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if !bindJSON(c, &req) {
		return
	}

	out, err := h.register.Execute(c.Request.Context(), ucAuth.RegisterInput{
		Username:  req.Username,
		Email:     req.Email,
		Password:  req.Password,
		Password2: req.Password2,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Phone:     req.Phone,
		Location:  req.Location,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Created(c, gin.H{
		"user":    dto.User(out.User),
		"refresh": out.Tokens.Refresh,
		"access":  out.Tokens.Access,
		"message": "User registered successfully",
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if !bindJSON(c, &req) {
		return
	}

	pair, err := h.login.Execute(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, gin.H{
		"access":  pair.Access,
		"refresh": pair.Refresh,
	})
}

func (h *AuthHandler) Refresh(c *gin.Context) {
	var req RefreshRequest
	if !bindJSON(c, &req) {
		return
	}

	access, err := h.refresh.Execute(c.Request.Context(), req.Refresh)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, gin.H{"access": access})
}

func (h *AuthHandler) Logout(c *gin.Context) {
	var req RefreshRequest
	if !bindJSON(c, &req) {
		return
	}

	if err := h.logout.Execute(c.Request.Context(), middleware.UserID(c), req.Refresh); err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.ResetContent(c)
}
