package user

import "github.com/google/uuid"

// Actor is an authenticated caller. The set of implementations is closed:
// Buyer, Seller and Admin.
type Actor interface {
	ID() uuid.UUID
	Role() Role
	sealed()
}

type Buyer struct{ id uuid.UUID }

type Seller struct{ id uuid.UUID }

type Admin struct{ id uuid.UUID }

func (a Buyer) ID() uuid.UUID  { return a.id }
func (a Seller) ID() uuid.UUID { return a.id }
func (a Admin) ID() uuid.UUID  { return a.id }

func (Buyer) Role() Role  { return RoleBuyer }
func (Seller) Role() Role { return RoleSeller }
func (Admin) Role() Role  { return RoleAdmin }

func (Buyer) sealed()  {}
func (Seller) sealed() {}
func (Admin) sealed()  {}

func NewActor(id uuid.UUID, role Role) (Actor, error) {
	switch role {
	case RoleBuyer:
		return Buyer{id: id}, nil
	case RoleSeller:
		return Seller{id: id}, nil
	case RoleAdmin:
		return Admin{id: id}, nil
	default:
		return nil, ErrInvalidRole
	}
}
