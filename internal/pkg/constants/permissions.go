package constants

const (
	ViewOwnRecords      = "view_own_records"
	ManageMembers       = "manage_members"
	ManageUsers         = "manage_users"
	ManageDonations     = "manage_donations"
	IssueCertificates   = "issue_certificates"
	ManageReceipts      = "manage_receipts"
	ManageContent       = "manage_content"
	ViewEnquiries       = "view_enquiries"
	ManageBeneficiaries = "manage_beneficiaries"
)
