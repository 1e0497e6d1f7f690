package constants

// PermissionRoles maps each permission to the roles allowed to perform it.
// Ownership scoping (own donations, own membership) is applied by the services.
var PermissionRoles = map[string][]string{
	ViewOwnRecords:      {Public, Member, Admin},
	ManageMembers:       {Admin},
	ManageUsers:         {Admin},
	ManageDonations:     {Admin},
	IssueCertificates:   {Admin},
	ManageReceipts:      {Admin},
	ManageContent:       {Admin},
	ViewEnquiries:       {Admin},
	ManageBeneficiaries: {Admin},
}

// AllowedRole returns true if role is in the list of allowed roles for the permission.
func AllowedRole(permission, role string) bool {
	roles, ok := PermissionRoles[permission]
	if !ok {
		return false
	}
	for _, r := range roles {
		if r == role {
			return true
		}
	}
	return false
}
