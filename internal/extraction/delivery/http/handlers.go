package http

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/dondeestakoko/easemyday/internal/extraction"
	"github.com/dondeestakoko/easemyday/internal/extraction/parser"
	"github.com/dondeestakoko/easemyday/internal/model"
	"github.com/dondeestakoko/easemyday/pkg/response"
)

// Extract godoc
// @Summary     Extract items from free-form notes
// @Description Classifies the text into agenda/to_do/note items with normalized dates. Nothing is persisted.
// @Tags        Extraction
// @Accept      json
// @Produce     json
// @Param       body body extractReq true "Raw notes"
// @Success     200 {object} extractResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/extract [POST]
func (h *handler) Extract(c *gin.Context) {
	ctx := c.Request.Context()

	var req extractReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err, nil)
		return
	}

	out, err := h.uc.Extract(ctx, h.scope(c), req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Extract: %v", err)
		h.handleError(c, err)
		return
	}

	response.OK(c, newExtractResp(out))
}

// Commit godoc
// @Summary     Commit previewed items
// @Description Deduplicates, checks calendar conflicts, and persists the accepted items.
// @Tags        Extraction
// @Accept      json
// @Produce     json
// @Param       body body commitReq true "Previewed items with acceptance"
// @Success     200 {object} commitResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/commit [POST]
func (h *handler) Commit(c *gin.Context) {
	ctx := c.Request.Context()

	var req commitReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err, nil)
		return
	}

	out, err := h.uc.Commit(ctx, h.scope(c), req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Commit: %v", err)
		h.handleError(c, err)
		return
	}

	response.OK(c, newCommitResp(out))
}

// Transcribe godoc
// @Summary     Transcribe an audio note
// @Description Uploads an audio file and returns the transcribed text.
// @Tags        Extraction
// @Accept      multipart/form-data
// @Produce     json
// @Param       audio formData file true "Audio file"
// @Success     200 {object} transcribeResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/transcribe [POST]
func (h *handler) Transcribe(c *gin.Context) {
	ctx := c.Request.Context()

	if h.transcriber == nil {
		response.Error(c, fmt.Errorf("transcription is not configured"), nil)
		return
	}

	fileHeader, err := c.FormFile("audio")
	if err != nil {
		response.Error(c, fmt.Errorf("audio file is required: %w", err), nil)
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		response.Error(c, err, nil)
		return
	}
	defer file.Close()

	text, err := h.transcriber.Transcribe(ctx, fileHeader.Filename, file)
	if err != nil {
		h.l.Errorf(ctx, "transcriber.Transcribe: %v", err)
		response.InternalError(c, err)
		return
	}

	response.OK(c, transcribeResp{Text: text})
}

// Digest godoc
// @Summary     Structured agenda digest
// @Description Lists upcoming calendar events and returns an LLM-structured digest.
// @Tags        Extraction
// @Produce     json
// @Param       max_events query int false "Maximum number of events to summarize"
// @Success     200 {object} digestResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/agenda/digest [GET]
func (h *handler) Digest(c *gin.Context) {
	ctx := c.Request.Context()

	maxEvents, _ := strconv.ParseInt(c.Query("max_events"), 10, 64)
	out, err := h.uc.Digest(ctx, h.scope(c), extraction.DigestInput{MaxEvents: maxEvents})
	if err != nil {
		h.l.Errorf(ctx, "uc.Digest: %v", err)
		response.InternalError(c, err)
		return
	}

	response.OK(c, newDigestResp(out))
}

// scope builds the request principal. The API is single-user; the client
// may override via header.
func (h *handler) scope(c *gin.Context) model.Scope {
	sc := model.Scope{UserID: c.GetHeader("X-User-ID")}
	if sc.UserID == "" {
		sc.UserID = "default"
	}
	return sc
}

// handleError maps domain errors to HTTP responses.
func (h *handler) handleError(c *gin.Context, err error) {
	var perr *parser.ParseError
	switch {
	case errors.Is(err, extraction.ErrEmptyInput),
		errors.Is(err, extraction.ErrNotAccepted),
		errors.Is(err, extraction.ErrNoItems):
		response.Error(c, err, nil)
	case errors.As(err, &perr):
		response.Error(c, err, map[string]interface{}{"payload": perr.Payload})
	default:
		response.InternalError(c, err)
	}
}
