package http

import (
	"net/http"

	"github.com/aussiebroadwan/taskboard/internal/board/service"
	"github.com/aussiebroadwan/taskboard/pkg/boardsdk"
	"github.com/aussiebroadwan/taskboard/pkg/httpx"
	"github.com/aussiebroadwan/taskboard/pkg/slogx"
)

type MetricsHandler struct {
	MetricsService *service.MetricsService
}

// ServeHTTP godoc
//
//	@Summary		Dashboard Metrics Endpoint
//	@Description	Return the dashboard summary: workspace counts, completed and in-progress task counts for the current workspace, and roster size
//	@Tags			Metrics
//	@Produce		json
//	@Success		200	{object}	boardsdk.MetricsResponse	"metrics"
//	@Failure		500	{object}	boardsdk.ErrorResponse		"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/metrics [get].
func (h *MetricsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	m, err := h.MetricsService.Compute(ctx)
	if err != nil {
		slogx.FromContext(ctx).Error("metrics compute failed", "err", err)
		httpx.WriteJSON(w, http.StatusInternalServerError, boardsdk.ErrorResponse{
			Error:            boardsdk.ErrorCodeServerError,
			ErrorDescription: "Failed to compute metrics",
		})
		return
	}

	httpx.WriteJSON(w, http.StatusOK, boardsdk.MetricsResponse{
		ActiveWorkspaces: m.ActiveWorkspaces,
		TotalWorkspaces:  m.TotalWorkspaces,
		CompletedTasks:   m.CompletedTasks,
		InProgressTasks:  m.InProgressTasks,
		TeamMembers:      m.TeamMembers,
	})
}
