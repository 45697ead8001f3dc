package handler

import (
	"net/http"

	"github.com/asbuyukgungor-bot/bus-erp/internal/apierror"
	"github.com/asbuyukgungor-bot/bus-erp/internal/dto"
	"github.com/asbuyukgungor-bot/bus-erp/internal/repository"

	"github.com/gin-gonic/gin"
)

type LocationsHandler struct{ repo repository.LocationRepository }

func NewLocationsHandler(repo repository.LocationRepository) *LocationsHandler {
	return &LocationsHandler{repo: repo}
}

func (h *LocationsHandler) List(c *gin.Context) {
	locations, err := h.repo.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Failed to list locations"))
		return
	}
	resp := make([]dto.LocationResponse, 0, len(locations))
	for _, l := range locations {
		resp = append(resp, dto.LocationResponse{ID: l.ID, Name: l.Name})
	}
	c.JSON(http.StatusOK, resp)
}
