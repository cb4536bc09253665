package http

import (
	"github.com/dondeestakoko/easemyday/internal/extraction"
	"github.com/dondeestakoko/easemyday/internal/model"
)

type extractReq struct {
	Text string `json:"text" binding:"required"`
}

func (r extractReq) toInput() extraction.ExtractInput {
	return extraction.ExtractInput{Text: r.Text}
}

type itemResp struct {
	Category    string  `json:"category"`
	Text        string  `json:"text"`
	DatetimeRaw string  `json:"datetime_raw,omitempty"`
	DatetimeISO *string `json:"datetime_iso"`
	Priority    int     `json:"priority,omitempty"`
}

func newItemResp(it model.ExtractedItem) itemResp {
	return itemResp{
		Category:    string(it.Category),
		Text:        it.Text,
		DatetimeRaw: it.DatetimeRaw,
		DatetimeISO: it.DatetimeISO,
		Priority:    it.Priority,
	}
}

type extractResp struct {
	Message string     `json:"message"`
	Items   []itemResp `json:"items"`
}

func newExtractResp(out extraction.ExtractOutput) extractResp {
	items := make([]itemResp, 0, len(out.Items))
	for _, it := range out.Items {
		items = append(items, newItemResp(it))
	}
	return extractResp{Message: out.Message, Items: items}
}

type commitItemReq struct {
	Category    string  `json:"category" binding:"required"`
	Text        string  `json:"text" binding:"required"`
	DatetimeRaw string  `json:"datetime_raw"`
	DatetimeISO *string `json:"datetime_iso"`
	Priority    int     `json:"priority"`
}

type commitReq struct {
	Items  []commitItemReq `json:"items" binding:"required"`
	Accept bool            `json:"accept"`
}

func (r commitReq) toInput() extraction.CommitInput {
	items := make([]model.ExtractedItem, 0, len(r.Items))
	for _, it := range r.Items {
		items = append(items, model.ExtractedItem{
			Category:    model.Category(it.Category),
			Text:        it.Text,
			DatetimeRaw: it.DatetimeRaw,
			DatetimeISO: it.DatetimeISO,
			Priority:    it.Priority,
		})
	}
	return extraction.CommitInput{Items: items, Accept: r.Accept}
}

type skippedResp struct {
	Item   itemResp `json:"item"`
	Reason string   `json:"reason"`
}

type conflictResp struct {
	Item itemResp `json:"item"`
	With string   `json:"with"`
}

type commitResp struct {
	Created    int            `json:"created"`
	Skipped    []skippedResp  `json:"skipped"`
	Duplicates []itemResp     `json:"duplicates"`
	Conflicts  []conflictResp `json:"conflicts"`
}

func newCommitResp(out extraction.CommitOutput) commitResp {
	resp := commitResp{
		Created:    out.Created,
		Skipped:    []skippedResp{},
		Duplicates: []itemResp{},
		Conflicts:  []conflictResp{},
	}
	for _, s := range out.Skipped {
		resp.Skipped = append(resp.Skipped, skippedResp{Item: newItemResp(s.Item), Reason: s.Reason})
	}
	for _, d := range out.Duplicates {
		resp.Duplicates = append(resp.Duplicates, newItemResp(d))
	}
	for _, c := range out.Conflicts {
		resp.Conflicts = append(resp.Conflicts, conflictResp{Item: newItemResp(c.Item), With: c.With})
	}
	return resp
}

type transcribeResp struct {
	Text string `json:"text"`
}

type digestResp struct {
	Digest     map[string]any `json:"digest"`
	EventCount int            `json:"event_count"`
}

func newDigestResp(out extraction.DigestOutput) digestResp {
	return digestResp{Digest: out.Digest, EventCount: out.EventCount}
}
