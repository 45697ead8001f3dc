package handler

import (
	"errors"
	"net/http"

	"github.com/asbuyukgungor-bot/bus-erp/internal/apierror"
	"github.com/asbuyukgungor-bot/bus-erp/internal/dto"
	"github.com/asbuyukgungor-bot/bus-erp/internal/infra"
	"github.com/asbuyukgungor-bot/bus-erp/internal/repository"
	"github.com/asbuyukgungor-bot/bus-erp/internal/service"

	"github.com/gin-gonic/gin"
)

type WorkOrdersHandler struct {
	svc     service.WorkOrderService
	repo    repository.WorkOrderRepository
	pdfPath string
}

func NewWorkOrdersHandler(svc service.WorkOrderService, repo repository.WorkOrderRepository, pdfPath string) *WorkOrdersHandler {
	return &WorkOrdersHandler{svc: svc, repo: repo, pdfPath: pdfPath}
}

func (h *WorkOrdersHandler) Create(c *gin.Context) {
	var req dto.CreateWorkOrderRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		var notFound *service.PartNotFoundError
		var insufficient *repository.InsufficientStockError
		switch {
		case errors.As(err, &notFound):
			c.JSON(http.StatusNotFound, apierror.New(notFound.Error()))
		case errors.As(err, &insufficient):
			c.JSON(http.StatusBadRequest, apierror.New(insufficient.Error()))
		case errors.Is(err, repository.ErrDuplicate):
			c.JSON(http.StatusConflict, apierror.New("A work order with this id already exists"))
		default:
			c.JSON(http.StatusInternalServerError, apierror.New("Failed to create work order"))
		}
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *WorkOrdersHandler) List(c *gin.Context) {
	resp, err := h.svc.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Failed to list work orders"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *WorkOrdersHandler) Get(c *gin.Context) {
	resp, err := h.svc.Get(c.Request.Context(), c.Param("order_id"))
	if err != nil {
		c.JSON(http.StatusNotFound, apierror.New("Work order not found."))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *WorkOrdersHandler) UpdateStatus(c *gin.Context) {
	var req dto.UpdateWorkOrderStatusRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.UpdateStatus(c.Request.Context(), c.Param("order_id"), req.Status)
	if err != nil {
		c.JSON(http.StatusNotFound, apierror.New("Work order not found."))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// PDF renders a printable shop sheet for the order and streams it back.
func (h *WorkOrdersHandler) PDF(c *gin.Context) {
	order, err := h.repo.FindByID(c.Request.Context(), c.Param("order_id"))
	if err != nil {
		c.JSON(http.StatusNotFound, apierror.New("Work order not found."))
		return
	}
	path, err := infra.GenerateWorkOrderPDF(order, h.pdfPath)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Failed to generate PDF"))
		return
	}
	c.Header("Content-Disposition", "attachment; filename=workorder_"+order.ID+".pdf")
	c.File(path)
}
