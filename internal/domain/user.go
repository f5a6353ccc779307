package domain

// User is one account record. Email is the directory key; records are
// never mutated after signup.
type User struct {
	Email       Email
	Password    Password
	Requires2FA bool
}
