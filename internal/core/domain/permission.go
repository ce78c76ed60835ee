package domain

// Permission is an abstract capability required to perform an action.
type Permission string

const (
	PermRead   Permission = "read"
	PermWrite  Permission = "write"
	PermEdit   Permission = "edit"
	PermDelete Permission = "delete"
)

// rolePermissions maps each role to the set of permissions it holds.
// Unknown roles resolve to an empty set, so they are denied by default.
var rolePermissions = map[string][]Permission{
	RoleOwner: {PermRead, PermWrite, PermEdit, PermDelete},
	RoleAdmin: {PermRead, PermWrite, PermEdit},
	RoleUser:  {PermRead},
}

// methodPermissions maps HTTP verbs to the permission they require.
// Verbs outside this set map to no permission and are always denied.
var methodPermissions = map[string]Permission{
	"GET":    PermRead,
	"POST":   PermWrite,
	"PUT":    PermEdit,
	"DELETE": PermDelete,
}

// PermissionForMethod returns the permission required for an HTTP verb,
// or false when the verb carries no mapping.
func PermissionForMethod(method string) (Permission, bool) {
	p, ok := methodPermissions[method]
	return p, ok
}

// RoleAllows reports whether the given role holds the given permission.
func RoleAllows(role string, required Permission) bool {
	for _, p := range rolePermissions[role] {
		if p == required {
			return true
		}
	}
	return false
}
