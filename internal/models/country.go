package models

// Country is a row of the read-only reference table used to validate
// countryCode on registration and profile updates.
type Country struct {
	Name   string `json:"name" gorm:"not null"`
	Alpha2 string `json:"alpha2" gorm:"primaryKey;size:2"`
	Alpha3 string `json:"alpha3" gorm:"size:3;not null"`
	Region string `json:"region" gorm:"index"`
}

// Regions recognised by the countries listing filter.
var Regions = []string{"Europe", "Africa", "Americas", "Asia", "Oceania"}

func ValidRegion(region string) bool {
	for _, r := range Regions {
		if r == region {
			return true
		}
	}
	return false
}
