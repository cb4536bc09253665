package usecase

import (
	"context"
	"strings"

	"github.com/dondeestakoko/easemyday/internal/notes"
)

// Create adds a note. Unknown colors fall back to YELLOW.
func (s *implService) Create(ctx context.Context, input notes.CreateInput) (notes.Note, error) {
	if strings.TrimSpace(input.Title) == "" && strings.TrimSpace(input.Text) == "" {
		return notes.Note{}, notes.ErrEmptyNote
	}

	color := strings.ToUpper(strings.TrimSpace(input.Color))
	if !validColor(color) {
		color = notes.ColorYellow
	}

	now := s.now()
	note := notes.Note{
		ID:        s.id(),
		Title:     input.Title,
		Text:      input.Text,
		Color:     color,
		CreatedAt: now,
		UpdatedAt: now,
	}

	all, err := s.repo.Load(ctx)
	if err != nil {
		return notes.Note{}, err
	}
	all = append(all, note)
	if err := s.repo.Save(ctx, all); err != nil {
		return notes.Note{}, err
	}

	s.l.Infof(ctx, "notes: created note %s title=%q", note.ID, note.Title)
	return note, nil
}

// List returns all non-archived notes.
func (s *implService) List(ctx context.Context) ([]notes.Note, error) {
	all, err := s.repo.Load(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]notes.Note, 0, len(all))
	for _, n := range all {
		if !n.Archived {
			out = append(out, n)
		}
	}
	return out, nil
}

// FilterByTitle returns non-archived notes whose title contains the given
// substring, case-insensitive.
func (s *implService) FilterByTitle(ctx context.Context, title string) ([]notes.Note, error) {
	all, err := s.List(ctx)
	if err != nil {
		return nil, err
	}

	needle := strings.ToLower(title)
	out := make([]notes.Note, 0, len(all))
	for _, n := range all {
		if strings.Contains(strings.ToLower(n.Title), needle) {
			out = append(out, n)
		}
	}
	return out, nil
}

// Update changes the provided fields of the note with the given id.
func (s *implService) Update(ctx context.Context, id string, input notes.UpdateInput) (notes.Note, error) {
	return s.mutate(ctx, id, func(n *notes.Note) {
		if input.Title != nil {
			n.Title = *input.Title
		}
		if input.Text != nil {
			n.Text = *input.Text
		}
		if input.Color != nil {
			color := strings.ToUpper(strings.TrimSpace(*input.Color))
			if validColor(color) {
				n.Color = color
			}
		}
		if input.Pinned != nil {
			n.Pinned = *input.Pinned
		}
	})
}

// Archive marks the note as archived without deleting it.
func (s *implService) Archive(ctx context.Context, id string) (notes.Note, error) {
	return s.mutate(ctx, id, func(n *notes.Note) {
		n.Archived = true
	})
}

// Delete removes the note permanently.
func (s *implService) Delete(ctx context.Context, id string) error {
	all, err := s.repo.Load(ctx)
	if err != nil {
		return err
	}

	for i, n := range all {
		if n.ID == id {
			all = append(all[:i], all[i+1:]...)
			return s.repo.Save(ctx, all)
		}
	}
	return notes.ErrNotFound
}

func (s *implService) mutate(ctx context.Context, id string, apply func(*notes.Note)) (notes.Note, error) {
	all, err := s.repo.Load(ctx)
	if err != nil {
		return notes.Note{}, err
	}

	for i := range all {
		if all[i].ID == id {
			apply(&all[i])
			all[i].UpdatedAt = s.now()
			if err := s.repo.Save(ctx, all); err != nil {
				return notes.Note{}, err
			}
			return all[i], nil
		}
	}
	return notes.Note{}, notes.ErrNotFound
}

func validColor(c string) bool {
	switch c {
	case notes.ColorYellow, notes.ColorBlue, notes.ColorGreen, notes.ColorPink, notes.ColorWhite:
		return true
	}
	return false
}
