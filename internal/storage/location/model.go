package location

import (
	"time"

	"github.com/aarondl/opt/omit"
	"github.com/gofrs/uuid/v5"
)

// Location is a yard or collection point.
type Location struct {
	ID        uuid.UUID `db:"id"`
	Name      string    `db:"name"`
	Address   string    `db:"address"`
	CreatedAt time.Time `db:"created_at"`
}

// LocationCreate is the input for creating a location.
type LocationCreate struct {
	Name    string
	Address string
}

// LocationUpdate holds the fields to change; unset fields are left as they are.
type LocationUpdate struct {
	Name    omit.Val[string]
	Address omit.Val[string]
}

const tableName = "locations"
