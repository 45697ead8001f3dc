package handler

import (
	"net/http"

	"github.com/asbuyukgungor-bot/bus-erp/internal/infra"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type HealthHandler struct {
	storeDriver string
	db          *gorm.DB
	rdb         *redis.Client
	mailerCB    *infra.CircuitBreaker
}

func NewHealthHandler(storeDriver string, db *gorm.DB, rdb *redis.Client, mailerCB *infra.CircuitBreaker) *HealthHandler {
	return &HealthHandler{storeDriver: storeDriver, db: db, rdb: rdb, mailerCB: mailerCB}
}

func (h *HealthHandler) Health(c *gin.Context) {
	ctx := c.Request.Context()
	status := http.StatusOK
	out := gin.H{
		"status": "ok",
		"store":  h.storeDriver,
	}

	if h.db != nil {
		dbStatus := "ok"
		if sqlDB, err := h.db.DB(); err != nil {
			dbStatus = err.Error()
		} else if err := sqlDB.PingContext(ctx); err != nil {
			dbStatus = err.Error()
		}
		if dbStatus != "ok" {
			status = http.StatusServiceUnavailable
			out["status"] = "degraded"
		}
		out["database"] = dbStatus
	}

	if h.rdb != nil {
		redisStatus := "ok"
		if err := h.rdb.Ping(ctx).Err(); err != nil {
			redisStatus = err.Error()
			out["status"] = "degraded"
		}
		out["redis"] = redisStatus
	}

	if h.mailerCB != nil {
		out["mailer_circuit"] = h.mailerCB.State().String()
	}

	c.JSON(status, out)
}
