package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/asbuyukgungor-bot/bus-erp/internal/apierror"
	"github.com/asbuyukgungor-bot/bus-erp/internal/dto"
	"github.com/asbuyukgungor-bot/bus-erp/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const (
	dashboardCacheKey = "cache:dashboard:stats"
	dashboardCacheTTL = 30 * time.Second
)

type DashboardHandler struct {
	svc service.DashboardService
	rdb *redis.Client
}

func NewDashboardHandler(svc service.DashboardService, rdb *redis.Client) *DashboardHandler {
	return &DashboardHandler{svc: svc, rdb: rdb}
}

func (h *DashboardHandler) Stats(c *gin.Context) {
	ctx := c.Request.Context()

	if h.rdb != nil {
		if raw, err := h.rdb.Get(ctx, dashboardCacheKey).Bytes(); err == nil {
			var cached dto.DashboardStatsResponse
			if json.Unmarshal(raw, &cached) == nil {
				c.JSON(http.StatusOK, cached)
				return
			}
		}
	}

	resp, err := h.svc.Stats(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Failed to compute dashboard stats"))
		return
	}

	if h.rdb != nil {
		if raw, err := json.Marshal(resp); err == nil {
			if err := h.rdb.Set(ctx, dashboardCacheKey, raw, dashboardCacheTTL).Err(); err != nil {
				log.Warn().Err(err).Msg("failed to cache dashboard stats")
			}
		}
	}

	c.JSON(http.StatusOK, resp)
}
