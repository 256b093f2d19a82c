package repository

import (
	"medical-escrow-ledger/internal/domain/entity"
)

// RoleRegistry is the access-control collaborator: per-role address sets,
// consulted before every privileged mutation. Implementations are passed
// explicitly into each gated operation, never reached through a global.
type RoleRegistry interface {
	IsAuthorized(caller string, role entity.Role) bool
	Grant(role entity.Role, address string)
}
