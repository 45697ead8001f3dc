package handler

import (
	"net/http"
	"time"

	"github.com/asbuyukgungor-bot/bus-erp/internal/apierror"
	"github.com/asbuyukgungor-bot/bus-erp/internal/dto"
	"github.com/asbuyukgungor-bot/bus-erp/internal/repository"

	"github.com/gin-gonic/gin"
)

type StockMovementsHandler struct{ repo repository.StockMovementRepository }

func NewStockMovementsHandler(repo repository.StockMovementRepository) *StockMovementsHandler {
	return &StockMovementsHandler{repo: repo}
}

func (h *StockMovementsHandler) List(c *gin.Context) {
	filter := repository.StockMovementFilter{
		PartNumber: c.Query("part_number"),
		Type:       c.Query("type"),
	}
	movements, err := h.repo.List(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Failed to list stock movements"))
		return
	}
	resp := make([]dto.StockMovementResponse, 0, len(movements))
	for _, m := range movements {
		resp = append(resp, dto.StockMovementResponse{
			ID:             m.ID.String(),
			PartNumber:     m.PartNumber,
			Type:           m.Type,
			Quantity:       m.Quantity,
			QuantityBefore: m.QuantityBefore,
			QuantityAfter:  m.QuantityAfter,
			Reason:         m.Reason,
			WorkOrderID:    m.WorkOrderID,
			CreatedAt:      m.CreatedAt.Format(time.RFC3339),
		})
	}
	c.JSON(http.StatusOK, resp)
}
