package notes

import "context"

// Service defines the business logic interface for the notes domain.
type Service interface {
	Create(ctx context.Context, input CreateInput) (Note, error)
	List(ctx context.Context) ([]Note, error)
	FilterByTitle(ctx context.Context, title string) ([]Note, error)
	Update(ctx context.Context, id string, input UpdateInput) (Note, error)
	Archive(ctx context.Context, id string) (Note, error)
	Delete(ctx context.Context, id string) error
}
