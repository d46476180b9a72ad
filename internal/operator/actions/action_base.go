package actions

import (
	"context"

	"github.com/jagannath-p-s/malabareco-sub001/internal/storage"
)

type IAction interface {
	Perform(ctx context.Context, writer *storage.Writer) error
}
