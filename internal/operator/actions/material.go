package actions

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/jagannath-p-s/malabareco-sub001/internal/storage"
	"github.com/jagannath-p-s/malabareco-sub001/internal/storage/material"
)

type CreateMaterial struct {
	Name string
	Unit string

	// CreatedID is set once Perform succeeds.
	CreatedID uuid.UUID
}

func (c *CreateMaterial) Perform(ctx context.Context, writer *storage.Writer) error {
	id, err := writer.Material.Create(ctx, &material.MaterialCreate{
		Name: c.Name,
		Unit: c.Unit,
	})
	if err != nil {
		return err
	}

	c.CreatedID = id
	return nil
}

type UpdateMaterial struct {
	ID     uuid.UUID
	Update material.MaterialUpdate
}

func (u *UpdateMaterial) Perform(ctx context.Context, writer *storage.Writer) error {
	return writer.Material.Update(ctx, u.ID, &u.Update)
}

type DeleteMaterial struct {
	ID uuid.UUID
}

func (d *DeleteMaterial) Perform(ctx context.Context, writer *storage.Writer) error {
	return writer.Material.Delete(ctx, d.ID)
}
