package handler

import (
	"errors"
	"net/http"

	"github.com/asbuyukgungor-bot/bus-erp/internal/apierror"
	"github.com/asbuyukgungor-bot/bus-erp/internal/dto"
	"github.com/asbuyukgungor-bot/bus-erp/internal/repository"
	"github.com/asbuyukgungor-bot/bus-erp/internal/service"

	"github.com/gin-gonic/gin"
)

type PartsHandler struct{ svc service.PartService }

func NewPartsHandler(svc service.PartService) *PartsHandler {
	return &PartsHandler{svc: svc}
}

func (h *PartsHandler) Create(c *gin.Context) {
	var req dto.CreatePartRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			c.JSON(http.StatusConflict, apierror.New("A part with this part number already exists"))
			return
		}
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *PartsHandler) List(c *gin.Context) {
	resp, err := h.svc.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Failed to list parts"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *PartsHandler) Get(c *gin.Context) {
	partNumber := c.Param("part_number")
	resp, err := h.svc.Get(c.Request.Context(), partNumber)
	if err != nil {
		c.JSON(http.StatusNotFound, apierror.New("Part with number "+partNumber+" not found."))
		return
	}
	c.JSON(http.StatusOK, resp)
}
