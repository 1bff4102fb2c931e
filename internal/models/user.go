package models

import (
	"bytes"
	"encoding/json"
	"time"
)

// User roles
const (
	RoleSuperAdmin = "SUPER_ADMIN"
	RoleAdmin      = "ADMIN"
)

// ValidRoles defines allowed user roles
var ValidRoles = map[string]bool{
	RoleSuperAdmin: true,
	RoleAdmin:      true,
}

// User represents an administrator account. PasswordHash never serializes.
type User struct {
	ID           string      `json:"id" db:"id"`
	Username     string      `json:"username" db:"username"`
	PasswordHash string      `json:"-" db:"password_hash"`
	Role         string      `json:"role" db:"role"`
	Permissions  Permissions `json:"permissions" db:"permissions"`
	CreatedAt    time.Time   `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at" db:"updated_at"`
}

// Permissions is the fixed capability set attached to a user.
type Permissions struct {
	CanAdd    Flag `json:"canAdd"`
	CanEdit   Flag `json:"canEdit"`
	CanDelete Flag `json:"canDelete"`
	CanHide   Flag `json:"canHide"`
}

// UnmarshalJSON accepts either a permissions object or a JSON-encoded string
// containing one. Legacy backends double-encode the column, so both shapes
// must decode to the same result.
func (p *Permissions) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*p = Permissions{}
		return nil
	}
	if data[0] == '"' {
		var inner string
		if err := json.Unmarshal(data, &inner); err != nil {
			return err
		}
		if inner == "" {
			*p = Permissions{}
			return nil
		}
		data = []byte(inner)
	}
	type plain Permissions
	var pp plain
	if err := json.Unmarshal(data, &pp); err != nil {
		return err
	}
	*p = Permissions(pp)
	return nil
}

// ParsePermissions decodes a stored permissions column. An empty or
// unparseable value yields the all-false set rather than an error: a record
// with garbage permissions is a user who can do nothing, not a crash.
func ParsePermissions(raw []byte) Permissions {
	var p Permissions
	if len(raw) == 0 {
		return p
	}
	if err := json.Unmarshal(raw, &p); err != nil {
		return Permissions{}
	}
	return p
}

// Flag is a capability value normalized at the deserialization boundary.
// Backends serialize enabled flags inconsistently as true, 1 or "1"; all
// three decode to true and every other value decodes to false. Decoding is
// total: no input produces an error.
type Flag bool

// UnmarshalJSON implements the tri-type truthy coercion.
func (f *Flag) UnmarshalJSON(data []byte) error {
	switch string(bytes.TrimSpace(data)) {
	case "true", "1", `"1"`:
		*f = true
	default:
		*f = false
	}
	return nil
}

// MarshalJSON always emits a strict boolean.
func (f Flag) MarshalJSON() ([]byte, error) {
	if f {
		return []byte("true"), nil
	}
	return []byte("false"), nil
}
