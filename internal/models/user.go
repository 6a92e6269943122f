package models

// User is one account row. Login is the external identifier and never
// changes after registration; phone and image are optional and omitted from
// profile JSON when unset.
type User struct {
	Login          string  `json:"login" gorm:"primaryKey"`
	Email          string  `json:"email" gorm:"uniqueIndex;not null"`
	HashedPassword string  `json:"-" gorm:"not null"`
	CountryCode    string  `json:"countryCode" gorm:"not null"`
	IsPublic       bool    `json:"isPublic"`
	Phone          *string `json:"phone,omitempty" gorm:"uniqueIndex"`
	Image          *string `json:"image,omitempty"`
}
