package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/crf-go/dto"
	"github.com/linskybing/crf-go/response"
	"github.com/linskybing/crf-go/services"
)

type UserHandler struct {
	service *services.UserService
}

func NewUserHandler(service *services.UserService) *UserHandler {
	return &UserHandler{service: service}
}

func (h *UserHandler) Register(c *gin.Context) {
	var input dto.RegisterDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	user, err := h.service.Register(input)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.SuccessResponse{Data: user})
}

func (h *UserHandler) Login(c *gin.Context) {
	var input dto.LoginDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	token, user, err := h.service.Login(input)
	if err != nil {
		// Login failures always read as unauthorized, not forbidden.
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Invalid credentials"})
		return
	}
	c.JSON(http.StatusOK, response.TokenResponse{Token: token, UID: user.ID, Name: user.Name})
}
