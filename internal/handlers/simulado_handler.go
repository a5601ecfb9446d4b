package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"simulado-service/internal/selection"
	"simulado-service/internal/service"
)

type SimuladoHandler struct {
	Service *service.SimuladoService
}

func NewSimuladoHandler(s *service.SimuladoService) *SimuladoHandler {
	return &SimuladoHandler{Service: s}
}

func (h *SimuladoHandler) Generate(c *gin.Context) {
	var req selection.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	run, err := h.Service.Generate(context.Background(), &req)
	if err != nil {
		if errors.Is(err, selection.ErrInvalidRequest) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, run)
}
