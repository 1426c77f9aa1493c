package authz

// Claim is the verified identity attached to a request after token
// validation. The gate trusts it without re-verification.
type Claim struct {
	UserID uint
	Role   string
}

// Allow reports whether the claim carries exactly the required role. A
// zero-value or otherwise incomplete claim is never authorized; there is no
// role hierarchy, ADMIN does not imply CLIENT.
func Allow(claim Claim, requiredRole string) bool {
	if claim.UserID == 0 || claim.Role == "" {
		return false
	}
	return claim.Role == requiredRole
}
