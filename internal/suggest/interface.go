package suggest

import (
	"context"

	"github.com/dondeestakoko/easemyday/internal/model"
)

// UseCase defines the business logic interface for smart suggestions.
type UseCase interface {
	// Suggest summarizes the persisted batch, asks the LLM for an
	// improved organization, persists the result, and returns it.
	Suggest(ctx context.Context, sc model.Scope) (Output, error)
}
