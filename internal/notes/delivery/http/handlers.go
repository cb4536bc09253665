package http

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/dondeestakoko/easemyday/internal/notes"
	"github.com/dondeestakoko/easemyday/pkg/response"
)

type createReq struct {
	Title string `json:"title"`
	Text  string `json:"text"`
	Color string `json:"color"`
}

type updateReq struct {
	Title  *string `json:"title"`
	Text   *string `json:"text"`
	Color  *string `json:"color"`
	Pinned *bool   `json:"pinned"`
}

type noteResp struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Text      string    `json:"text"`
	Color     string    `json:"color"`
	Pinned    bool      `json:"pinned"`
	Archived  bool      `json:"archived"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func newNoteResp(n notes.Note) noteResp {
	return noteResp(n)
}

func newNoteListResp(all []notes.Note) []noteResp {
	out := make([]noteResp, 0, len(all))
	for _, n := range all {
		out = append(out, newNoteResp(n))
	}
	return out
}

// Create godoc
// @Summary     Create a note
// @Tags        Notes
// @Accept      json
// @Produce     json
// @Param       body body createReq true "Note content"
// @Success     200 {object} noteResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/notes [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err, nil)
		return
	}

	n, err := h.svc.Create(ctx, notes.CreateInput{Title: req.Title, Text: req.Text, Color: req.Color})
	if err != nil {
		h.l.Errorf(ctx, "notes.Create: %v", err)
		h.handleError(c, err)
		return
	}

	response.OK(c, newNoteResp(n))
}

// List godoc
// @Summary     List notes
// @Description Lists non-archived notes, optionally filtered by title substring.
// @Tags        Notes
// @Produce     json
// @Param       title query string false "Case-insensitive title filter"
// @Success     200 {object} []noteResp
// @Router      /api/v1/notes [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	var (
		all []notes.Note
		err error
	)
	if title := c.Query("title"); title != "" {
		all, err = h.svc.FilterByTitle(ctx, title)
	} else {
		all, err = h.svc.List(ctx)
	}
	if err != nil {
		h.l.Errorf(ctx, "notes.List: %v", err)
		response.InternalError(c, err)
		return
	}

	response.OK(c, newNoteListResp(all))
}

// Update godoc
// @Summary     Update a note
// @Tags        Notes
// @Accept      json
// @Produce     json
// @Param       id   path string    true "Note id"
// @Param       body body updateReq true "Fields to change"
// @Success     200 {object} noteResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/notes/{id} [PUT]
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	var req updateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err, nil)
		return
	}

	n, err := h.svc.Update(ctx, c.Param("id"), notes.UpdateInput{
		Title:  req.Title,
		Text:   req.Text,
		Color:  req.Color,
		Pinned: req.Pinned,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.OK(c, newNoteResp(n))
}

// Archive godoc
// @Summary     Archive a note
// @Tags        Notes
// @Produce     json
// @Param       id path string true "Note id"
// @Success     200 {object} noteResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/notes/{id}/archive [POST]
func (h *handler) Archive(c *gin.Context) {
	n, err := h.svc.Archive(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.OK(c, newNoteResp(n))
}

// Delete godoc
// @Summary     Delete a note
// @Tags        Notes
// @Produce     json
// @Param       id path string true "Note id"
// @Success     200 {object} response.Resp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/notes/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.handleError(c, err)
		return
	}

	response.OK(c, map[string]string{"status": "deleted"})
}

func (h *handler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, notes.ErrNotFound):
		response.NotFound(c, err)
	case errors.Is(err, notes.ErrEmptyNote):
		response.Error(c, err, nil)
	default:
		response.InternalError(c, err)
	}
}
