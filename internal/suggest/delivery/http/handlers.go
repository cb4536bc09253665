package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/dondeestakoko/easemyday/internal/model"
	"github.com/dondeestakoko/easemyday/internal/suggest"
	"github.com/dondeestakoko/easemyday/pkg/response"
)

type suggestResp struct {
	RequestID   string         `json:"request_id"`
	Suggestions map[string]any `json:"suggestions"`
}

// Suggest godoc
// @Summary     Smart suggestions over the persisted batch
// @Description Summarizes the stored items and asks the LLM for an improved organization.
// @Tags        Suggest
// @Produce     json
// @Success     200 {object} suggestResp
// @Failure     400 {object} response.Resp "No data"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/suggest [GET]
func (h *handler) Suggest(c *gin.Context) {
	ctx := c.Request.Context()

	sc := model.Scope{UserID: c.GetHeader("X-User-ID")}
	if sc.UserID == "" {
		sc.UserID = "default"
	}

	out, err := h.uc.Suggest(ctx, sc)
	if err != nil {
		if errors.Is(err, suggest.ErrNoData) {
			response.Error(c, err, nil)
			return
		}
		h.l.Errorf(ctx, "uc.Suggest: %v", err)
		response.InternalError(c, err)
		return
	}

	response.OK(c, suggestResp{RequestID: out.RequestID, Suggestions: out.Suggestions})
}
