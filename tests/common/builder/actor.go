//go:build unit || e2e

package builder

import (
	"tour-booking/internal/domain/user"

	"github.com/google/uuid"
)

// Actor builds a principal and panics on an unknown role.
func Actor(id uuid.UUID, role user.Role) user.Actor {
	a, err := user.NewActor(id, role)
	if err != nil {
		panic(err)
	}
	return a
}

func Buyer(id uuid.UUID) user.Actor  { return Actor(id, user.RoleBuyer) }
func Seller(id uuid.UUID) user.Actor { return Actor(id, user.RoleSeller) }
func Admin(id uuid.UUID) user.Actor  { return Actor(id, user.RoleAdmin) }
