package actions

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/jagannath-p-s/malabareco-sub001/internal/storage"
	"github.com/jagannath-p-s/malabareco-sub001/internal/storage/location"
)

type CreateLocation struct {
	Name    string
	Address string

	// CreatedID is set once Perform succeeds.
	CreatedID uuid.UUID
}

func (c *CreateLocation) Perform(ctx context.Context, writer *storage.Writer) error {
	id, err := writer.Location.Create(ctx, &location.LocationCreate{
		Name:    c.Name,
		Address: c.Address,
	})
	if err != nil {
		return err
	}

	c.CreatedID = id
	return nil
}

type UpdateLocation struct {
	ID     uuid.UUID
	Update location.LocationUpdate
}

func (u *UpdateLocation) Perform(ctx context.Context, writer *storage.Writer) error {
	return writer.Location.Update(ctx, u.ID, &u.Update)
}

type DeleteLocation struct {
	ID uuid.UUID
}

func (d *DeleteLocation) Perform(ctx context.Context, writer *storage.Writer) error {
	return writer.Location.Delete(ctx, d.ID)
}
