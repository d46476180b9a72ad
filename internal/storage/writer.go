package storage

import (
	"context"

	"github.com/stephenafamo/bob"

	"github.com/jagannath-p-s/malabareco-sub001/internal/storage/location"
	"github.com/jagannath-p-s/malabareco-sub001/internal/storage/material"
)

type Writer struct {
	tx       bob.Tx
	Location *location.Writer
	Material *material.Writer
}

func NewWriter(tx bob.Tx) Writer {
	return Writer{
		tx:       tx,
		Location: location.NewWriter(tx),
		Material: material.NewWriter(tx),
	}
}

func (w *Writer) Commit() error {
	return w.tx.Commit(context.Background())
}

func (w *Writer) Rollback() error {
	return w.tx.Rollback(context.Background())
}
