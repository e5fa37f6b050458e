package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/techzu/social_go_server/internal/api/middleware"
	"github.com/techzu/social_go_server/internal/pkg/response"
	"github.com/techzu/social_go_server/internal/service"
)

type StatsHandler struct {
	statsService *service.StatsService
}

func NewStatsHandler(statsService *service.StatsService) *StatsHandler {
	return &StatsHandler{
		statsService: statsService,
	}
}

// Statistics 获取评论统计
// GET /api/v1/comments/statistics
func (h *StatsHandler) Statistics(c *gin.Context) {
	if _, ok := middleware.GetUserID(c); !ok {
		response.AuthError(c, "")
		return
	}

	stats, err := h.statsService.GetStats(c.Request.Context())
	if err != nil {
		response.ServerError(c, "")
		return
	}

	response.Success(c, stats)
}
