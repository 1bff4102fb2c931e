// Package catalog implements the view-model rules of the publication catalog:
// which records a viewer may see, which fields of them, and how the record set
// is narrowed by category, status and search.
package catalog

import (
	"github.com/lt1hs/d-bms/internal/models"
)

// Permission names the four capability flags a user may hold.
type Permission string

const (
	PermAdd    Permission = "canAdd"
	PermEdit   Permission = "canEdit"
	PermDelete Permission = "canDelete"
	PermHide   Permission = "canHide"
)

// HasPermission reports whether the user holds the named capability.
// A nil user holds nothing. Legacy truthiness (true/1/"1") is already
// normalized when permissions are decoded, so this is a plain flag read.
func HasPermission(user *models.User, perm Permission) bool {
	if user == nil {
		return false
	}
	switch perm {
	case PermAdd:
		return bool(user.Permissions.CanAdd)
	case PermEdit:
		return bool(user.Permissions.CanEdit)
	case PermDelete:
		return bool(user.Permissions.CanDelete)
	case PermHide:
		return bool(user.Permissions.CanHide)
	}
	return false
}
