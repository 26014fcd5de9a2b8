package models

import "time"

// AdminCredentialID is the fixed identifier of the singleton
// admin_credentials row.
const AdminCredentialID = 1

// AdminCredential is the single admin username/hash pair. The password
// hash never leaves the repository layer in a response.
type AdminCredential struct {
	ID           int       `db:"id"`
	Username     string    `db:"username"`
	PasswordHash string    `db:"password_hash"`
	UpdatedAt    time.Time `db:"updated_at"`
}
