package models

// Principal is the authenticated caller: a tagged union over the three
// account kinds. Authorization decisions match on Role rather than
// comparing raw claim strings.
type Principal struct {
	Role      Role
	UserID    int64 // set when Role == RoleUser
	OfficerID int64 // set when Role == RolePolice
	StationID int64 // set when Role == RolePolice
}

// IsAdmin reports whether the principal carries admin privileges.
func (p Principal) IsAdmin() bool {
	return p.Role == RoleAdmin
}
