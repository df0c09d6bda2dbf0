// Package routing decides which console route a user lands on after login.
//
// The decision itself is a pure function over Input. Reading the persisted
// first-login flag is delegated to a FlagReader so callers choose where that flag
// lives: the HTTP session on the server, a YAML state file in the CLI, or a map
// in tests.
package routing

import "github.com/voiceconsole/manager/internal/models"

// Console routes returned by the resolver.
const (
	RouteConsole      = "/console"
	RouteDashboard    = "/dashboard"
	RouteConfigWizard = "/admin/config-wizard"
)

// AdminFirstLoginDoneKey is the persisted key marking that an admin finished
// first-login setup.
const AdminFirstLoginDoneKey = "admin_first_login_done"

// User is the subset of a user record the resolver looks at.
type User struct {
	Role string `json:"role"`
}

// Input is everything the route decision depends on.
type Input struct {
	Role string
	// FirstLoginDone is the raw persisted flag value; empty means unset.
	FirstLoginDone string
}

// Resolve returns the post-login route for in.
func Resolve(in Input) string {
	if in.Role != models.RoleAdmin {
		return RouteConsole
	}
	if IsFlagSet(in.FirstLoginDone) {
		return RouteDashboard
	}
	return RouteConfigWizard
}

// IsFlagSet reports whether a persisted flag value counts as set. Any non-empty
// string does, including "false" and "0".
func IsFlagSet(value string) bool {
	return value != ""
}

// PostLoginPath resolves the route for user, reading the first-login flag from
// flags only when the user is an admin. A nil user or nil reader is allowed.
func PostLoginPath(user *User, flags FlagReader) string {
	if user == nil {
		return RouteConsole
	}

	in := Input{Role: user.Role}
	if in.Role == models.RoleAdmin && flags != nil {
		if value, ok := flags.Get(AdminFirstLoginDoneKey); ok {
			in.FirstLoginDone = value
		}
	}

	return Resolve(in)
}
