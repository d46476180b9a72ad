package material

import (
	"time"

	"github.com/aarondl/opt/omit"
	"github.com/gofrs/uuid/v5"
)

// Material is a recyclable material bought and sold by weight or count.
type Material struct {
	ID        uuid.UUID `db:"id"`
	Name      string    `db:"name"`
	Unit      string    `db:"unit"`
	CreatedAt time.Time `db:"created_at"`
}

// MaterialCreate is the input for creating a material.
type MaterialCreate struct {
	Name string
	Unit string
}

// MaterialUpdate holds the fields to change; unset fields are left as they are.
type MaterialUpdate struct {
	Name omit.Val[string]
	Unit omit.Val[string]
}

const tableName = "materials"
