package destination

import (
	"github.com/google/uuid"
)

// Destination is a venue owned by an organization. CRUD lives in external
// flows; the booking core only reads it for names and foreign keys.
type Destination struct {
	id             uuid.UUID
	organizationID uuid.UUID
	name           string
	address        string
	capacity       *int32
}

func ReconstructDestination(id, organizationID uuid.UUID, name, address string, capacity *int32) *Destination {
	return &Destination{
		id:             id,
		organizationID: organizationID,
		name:           name,
		address:        address,
		capacity:       capacity,
	}
}

func (d *Destination) ID() uuid.UUID {
	return d.id
}

func (d *Destination) OrganizationID() uuid.UUID {
	return d.organizationID
}

func (d *Destination) Name() string {
	return d.name
}

func (d *Destination) Address() string {
	return d.address
}

func (d *Destination) Capacity() *int32 {
	return d.capacity
}
