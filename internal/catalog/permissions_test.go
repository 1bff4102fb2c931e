package catalog

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/lt1hs/d-bms/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestHasPermission_NilUser(t *testing.T) {
	for _, perm := range []Permission{PermAdd, PermEdit, PermDelete, PermHide} {
		assert.False(t, HasPermission(nil, perm), "nil user must hold no permission %s", perm)
	}
}

func TestHasPermission_TruthyCoercion(t *testing.T) {
	// Permission values arrive as true, 1 or "1" depending on how the backend
	// serialized them; all three must decode as enabled, everything else as
	// disabled. Coercion happens in the JSON boundary, so exercise it there.
	truthy := []string{`true`, `1`, `"1"`}
	falsy := []string{`false`, `0`, `"0"`, `null`, `"yes"`, `"true"`, `2`}

	for _, v := range truthy {
		var u models.User
		raw := fmt.Sprintf(`{"username":"x","role":"ADMIN","permissions":{"canDelete":%s}}`, v)
		err := json.Unmarshal([]byte(raw), &u)
		assert.NoError(t, err)
		assert.True(t, HasPermission(&u, PermDelete), "value %s should grant canDelete", v)
		assert.False(t, HasPermission(&u, PermAdd), "other flags stay off")
	}

	for _, v := range falsy {
		var u models.User
		raw := fmt.Sprintf(`{"username":"x","role":"ADMIN","permissions":{"canDelete":%s}}`, v)
		err := json.Unmarshal([]byte(raw), &u)
		assert.NoError(t, err)
		assert.False(t, HasPermission(&u, PermDelete), "value %s should not grant canDelete", v)
	}
}

func TestHasPermission_StringEncodedPermissions(t *testing.T) {
	// Legacy transport double-encodes the permissions column as a JSON string.
	raw := `{"username":"x","role":"ADMIN","permissions":"{\"canAdd\":\"1\",\"canEdit\":0}"}`
	var u models.User
	err := json.Unmarshal([]byte(raw), &u)
	assert.NoError(t, err)
	assert.True(t, HasPermission(&u, PermAdd))
	assert.False(t, HasPermission(&u, PermEdit))
}

func TestHasPermission_AbsentPermissions(t *testing.T) {
	u := &models.User{Username: "x", Role: models.RoleSuperAdmin}
	for _, perm := range []Permission{PermAdd, PermEdit, PermDelete, PermHide} {
		assert.False(t, HasPermission(u, perm))
	}
}

func TestParsePermissions_Garbage(t *testing.T) {
	p := models.ParsePermissions([]byte(`not json at all`))
	assert.Equal(t, models.Permissions{}, p)

	p = models.ParsePermissions(nil)
	assert.Equal(t, models.Permissions{}, p)
}
