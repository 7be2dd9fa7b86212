package builder

import (
	"context"

	"github.com/specialistvlad/chemlite/internal/config"
)

// Builder registers the definitions of a model.
type Builder interface {
	Build(ctx context.Context, m *config.Model) (*Result, error)
}
