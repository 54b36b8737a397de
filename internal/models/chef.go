package models

// Chef represents a registered account. A zero ID marks an unsaved record.
//
// Passwords are stored and compared as-is; the upstream data set predates
// hashing and existing rows must keep authenticating. See
// services.CredentialVerifier for the hashed alternative.
type Chef struct {
	ID       int    `json:"id" gorm:"primaryKey;autoIncrement"`
	Username string `json:"username" gorm:"uniqueIndex;type:varchar(100)" validate:"required,min=1,max=100"`
	Email    string `json:"email" gorm:"type:varchar(255)"`
	Password string `json:"password" gorm:"type:varchar(255)" validate:"required"`
	IsAdmin  bool   `json:"isAdmin"`
}
