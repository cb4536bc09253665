package extraction

import "github.com/dondeestakoko/easemyday/internal/model"

// ExtractInput is the input for the extraction preview.
type ExtractInput struct {
	Text string
}

// ExtractOutput is the preview returned before any persistence.
type ExtractOutput struct {
	Message string
	Items   []model.ExtractedItem
}

// CommitInput carries previewed items back with the user's decision.
type CommitInput struct {
	Items  []model.ExtractedItem
	Accept bool
}

// SkippedItem records why a candidate was not committed.
type SkippedItem struct {
	Item   model.ExtractedItem
	Reason string
}

// ConflictDetail reports a calendar collision for one agenda candidate.
type ConflictDetail struct {
	Item model.ExtractedItem
	With string
}

// CommitOutput is the result of a commit run.
// Created+len(Skipped) always equals the candidate count after dedup.
// Duplicates match either the store or an item committed earlier in the
// same run; a skipped occurrence never shadows later identical candidates.
type CommitOutput struct {
	Created    int
	Skipped    []SkippedItem
	Duplicates []model.ExtractedItem
	Conflicts  []ConflictDetail
}

// DigestInput bounds the agenda digest window.
type DigestInput struct {
	MaxEvents int64
}

// DigestOutput is the LLM-structured agenda.
type DigestOutput struct {
	Digest     map[string]any
	EventCount int
}
