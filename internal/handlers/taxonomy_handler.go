package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"simulado-service/internal/service"
)

type TaxonomyHandler struct {
	Service *service.TaxonomyService
}

func NewTaxonomyHandler(s *service.TaxonomyService) *TaxonomyHandler {
	return &TaxonomyHandler{Service: s}
}

func (h *TaxonomyHandler) ListDisciplines(c *gin.Context) {
	disciplines, err := h.Service.ListDisciplines(context.Background())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, disciplines)
}

func (h *TaxonomyHandler) ListThemes(c *gin.Context) {
	disciplineID := c.Param("disciplineId")
	themes, err := h.Service.ListThemes(context.Background(), disciplineID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, themes)
}

func (h *TaxonomyHandler) ListSubthemes(c *gin.Context) {
	themeID := c.Param("themeId")
	subthemes, err := h.Service.ListSubthemes(context.Background(), themeID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, subthemes)
}
