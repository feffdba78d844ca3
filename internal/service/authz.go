package service

import "github.com/fredymanu76/lms-platform-sub001/internal/model"

// IsPrivileged reports whether the membership may act on the whole organization.
func IsPrivileged(membership *model.Membership) bool {
	if membership == nil {
		return false
	}
	switch membership.Role {
	case model.RoleOwner, model.RoleAdmin, model.RoleManager:
		return true
	}
	return false
}
