package constants

const (
	Public = "public"
	Member = "member"
	Admin  = "admin"
)

// ValidRoles is the set of roles a token may carry.
var ValidRoles = []string{Public, Member, Admin}

// IsValidRole returns true if role is one of the allowed values.
func IsValidRole(role string) bool {
	for _, r := range ValidRoles {
		if r == role {
			return true
		}
	}
	return false
}
