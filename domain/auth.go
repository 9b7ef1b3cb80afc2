package domain

// AuthState is the session lifecycle position.
type AuthState string

const (
	Anonymous      AuthState = "anonymous"
	Authenticating AuthState = "authenticating"
	Authenticated  AuthState = "authenticated"
	Disconnected   AuthState = "disconnected"
)

// Permission mirrors the platform notification permission model. The channel
// may ask the platform only while the state is PermissionDefault.
type Permission string

const (
	PermissionDefault Permission = "default"
	PermissionGranted Permission = "granted"
	PermissionDenied  Permission = "denied"
)

// ParsePermission maps a configured string onto the permission model.
// Anything unrecognized falls back to PermissionDefault, never to an
// invalid value the channel would record as final.
func ParsePermission(s string) Permission {
	switch Permission(s) {
	case PermissionGranted, PermissionDenied, PermissionDefault:
		return Permission(s)
	default:
		return PermissionDefault
	}
}
