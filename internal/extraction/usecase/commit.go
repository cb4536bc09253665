package usecase

import (
	"context"
	"fmt"

	"github.com/dondeestakoko/easemyday/internal/extraction"
	"github.com/dondeestakoko/easemyday/internal/extraction/dedup"
	"github.com/dondeestakoko/easemyday/internal/model"
	"github.com/dondeestakoko/easemyday/internal/notes"
	"github.com/dondeestakoko/easemyday/pkg/datemath"
	"github.com/dondeestakoko/easemyday/pkg/gcalendar"
	"github.com/dondeestakoko/easemyday/pkg/gtasks"
)

// Commit deduplicates the previewed items against the store, routes each
// candidate to its category's collaborators, and appends the committed ones
// to the store in encounter order. Per-item collaborator failures downgrade
// the item to skipped; only acceptance, store load, and the final append can
// fail the whole run.
func (uc *implUseCase) Commit(ctx context.Context, sc model.Scope, input extraction.CommitInput) (extraction.CommitOutput, error) {
	if !input.Accept {
		return extraction.CommitOutput{}, extraction.ErrNotAccepted
	}
	if len(input.Items) == 0 {
		return extraction.CommitOutput{}, extraction.ErrNoItems
	}

	existing, err := uc.repo.Load(ctx)
	if err != nil {
		return extraction.CommitOutput{}, fmt.Errorf("%w: %v", extraction.ErrStoreLoad, err)
	}

	set := dedup.NewSet(existing)

	out := extraction.CommitOutput{}
	var committed []model.ExtractedItem

	for _, it := range input.Items {
		sig, hasSig := dedup.FromItem(it)
		if hasSig {
			if _, seen := set[sig]; seen {
				out.Duplicates = append(out.Duplicates, it)
				continue
			}
		}

		if uc.commitOne(ctx, it, &out) {
			out.Created++
			committed = append(committed, it)
			// Later candidates in the same batch dedup against committed
			// ones only; a skipped first occurrence leaves its twin free
			// to retry.
			if hasSig {
				set[sig] = struct{}{}
			}
		}
	}

	uc.l.Infof(ctx, "Commit: user=%s created=%d skipped=%d duplicates=%d",
		sc.UserID, out.Created, len(out.Skipped), len(out.Duplicates))

	if len(committed) > 0 {
		if err := uc.repo.Append(ctx, committed); err != nil {
			return extraction.CommitOutput{}, fmt.Errorf("failed to persist committed items: %w", err)
		}
	}
	return out, nil
}

// commitOne routes a single candidate. Returns true when the item was
// committed; otherwise a skip reason has been recorded on out.
func (uc *implUseCase) commitOne(ctx context.Context, it model.ExtractedItem, out *extraction.CommitOutput) bool {
	switch it.Category {
	case model.CategoryAgenda:
		return uc.commitAgenda(ctx, it, out)
	case model.CategoryToDo:
		return uc.commitToDo(ctx, it, out)
	case model.CategoryNote:
		return uc.commitNote(ctx, it, out)
	default:
		// Unknown categories are preserved in the store but trigger no
		// side effects.
		return true
	}
}

func (uc *implUseCase) commitAgenda(ctx context.Context, it model.ExtractedItem, out *extraction.CommitOutput) bool {
	start, ok := uc.startTime(it)
	if !ok {
		uc.skip(ctx, it, "agenda item has no resolved date", out)
		return false
	}
	if uc.calendar == nil {
		uc.skip(ctx, it, "calendar unavailable", out)
		return false
	}

	end := datemath.EndOfRange(it.Text, start)

	conflict, err := uc.checker.Check(ctx, start, end)
	if err != nil {
		uc.skip(ctx, it, "conflict status unknown", out)
		return false
	}
	if conflict.Found {
		out.Conflicts = append(out.Conflicts, extraction.ConflictDetail{Item: it, With: conflict.With})
		uc.skip(ctx, it, fmt.Sprintf("conflicts with %q", conflict.With), out)
		return false
	}

	_, err = uc.calendar.CreateEvent(ctx, gcalendar.CreateEventRequest{
		CalendarID: uc.settings.CalendarID,
		Summary:    it.Text,
		StartTime:  start,
		EndTime:    end,
		Timezone:   uc.settings.Timezone,
	})
	if err != nil {
		uc.l.Errorf(ctx, "Commit: calendar insert failed for %q: %v", it.Text, err)
		uc.skip(ctx, it, "calendar insert failed", out)
		return false
	}
	return true
}

func (uc *implUseCase) commitToDo(ctx context.Context, it model.ExtractedItem, out *extraction.CommitOutput) bool {
	if uc.tasks == nil {
		// No Google Tasks collaborator configured; the store append alone
		// is the commit.
		return true
	}

	req := gtasks.CreateTaskRequest{
		TasklistID: uc.settings.TasklistID,
		Title:      it.Text,
	}
	if it.Priority > 0 {
		req.Notes = fmt.Sprintf("priority %d", it.Priority)
	}
	if due, ok := uc.startTime(it); ok {
		req.Due = &due
	}

	if _, err := uc.tasks.CreateTask(ctx, req); err != nil {
		uc.l.Errorf(ctx, "Commit: task insert failed for %q: %v", it.Text, err)
		uc.skip(ctx, it, "task insert failed", out)
		return false
	}
	return true
}

func (uc *implUseCase) commitNote(ctx context.Context, it model.ExtractedItem, out *extraction.CommitOutput) bool {
	if uc.noteSvc == nil {
		return true
	}

	_, err := uc.noteSvc.Create(ctx, notes.CreateInput{
		Title: noteTitle(it.Text),
		Text:  it.Text,
	})
	if err != nil {
		uc.l.Errorf(ctx, "Commit: note create failed for %q: %v", it.Text, err)
		uc.skip(ctx, it, "note create failed", out)
		return false
	}
	return true
}

func (uc *implUseCase) skip(ctx context.Context, it model.ExtractedItem, reason string, out *extraction.CommitOutput) {
	uc.l.Infof(ctx, "Commit: skipped %q: %s", it.Text, reason)
	out.Skipped = append(out.Skipped, extraction.SkippedItem{Item: it, Reason: reason})
}

// noteTitle derives a short title from the note body.
func noteTitle(text string) string {
	const max = 40
	runes := []rune(text)
	if len(runes) <= max {
		return text
	}
	return string(runes[:max])
}
