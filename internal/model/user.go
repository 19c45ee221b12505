package model

// UserType identifies an account role.
type UserType string

const (
	UserTypeClient UserType = "CLIENT"
	UserTypeVendor UserType = "VENDOR"
	UserTypeAdmin  UserType = "ADMIN"
)

// User represents an authenticated account. Phone is the account identity
// throughout the backend.
type User struct {
	Phone     string   `json:"phoneNumber"`
	FirstName string   `json:"firstName,omitempty"`
	LastName  string   `json:"lastName,omitempty"`
	Type      UserType `json:"userType"`
	Email     string   `json:"email,omitempty"`
}
