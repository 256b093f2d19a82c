package repository

import (
	"medical-escrow-ledger/internal/domain/entity"
	domainRepo "medical-escrow-ledger/internal/domain/repository"
)

type roleRegistry struct {
	members map[entity.Role]map[string]struct{}
}

// NewRoleRegistry builds the role registry seeded with one admin address.
// Role sets only grow, through admin-gated Grant calls.
func NewRoleRegistry(adminAddress string) domainRepo.RoleRegistry {
	r := &roleRegistry{
		members: map[entity.Role]map[string]struct{}{
			entity.RoleAdmin:   {},
			entity.RoleClinic:  {},
			entity.RolePatient: {},
		},
	}
	if adminAddress != "" {
		r.members[entity.RoleAdmin][adminAddress] = struct{}{}
	}
	return r
}

func (r *roleRegistry) IsAuthorized(caller string, role entity.Role) bool {
	set, ok := r.members[role]
	if !ok {
		return false
	}
	_, ok = set[caller]
	return ok
}

func (r *roleRegistry) Grant(role entity.Role, address string) {
	set, ok := r.members[role]
	if !ok {
		set = make(map[string]struct{})
		r.members[role] = set
	}
	set[address] = struct{}{}
}
