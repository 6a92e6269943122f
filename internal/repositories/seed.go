package repositories

import "github.com/rohits-web03/sociogram/internal/models"

// ISO 3166-1 reference data loaded once into the countries table. Not the
// full registry, but wide enough coverage of every region for code
// validation and the listing endpoints.
var countrySeed = []models.Country{
	{Name: "Albania", Alpha2: "AL", Alpha3: "ALB", Region: "Europe"},
	{Name: "Argentina", Alpha2: "AR", Alpha3: "ARG", Region: "Americas"},
	{Name: "Armenia", Alpha2: "AM", Alpha3: "ARM", Region: "Asia"},
	{Name: "Australia", Alpha2: "AU", Alpha3: "AUS", Region: "Oceania"},
	{Name: "Austria", Alpha2: "AT", Alpha3: "AUT", Region: "Europe"},
	{Name: "Azerbaijan", Alpha2: "AZ", Alpha3: "AZE", Region: "Asia"},
	{Name: "Bangladesh", Alpha2: "BD", Alpha3: "BGD", Region: "Asia"},
	{Name: "Belarus", Alpha2: "BY", Alpha3: "BLR", Region: "Europe"},
	{Name: "Belgium", Alpha2: "BE", Alpha3: "BEL", Region: "Europe"},
	{Name: "Bolivia", Alpha2: "BO", Alpha3: "BOL", Region: "Americas"},
	{Name: "Brazil", Alpha2: "BR", Alpha3: "BRA", Region: "Americas"},
	{Name: "Bulgaria", Alpha2: "BG", Alpha3: "BGR", Region: "Europe"},
	{Name: "Cameroon", Alpha2: "CM", Alpha3: "CMR", Region: "Africa"},
	{Name: "Canada", Alpha2: "CA", Alpha3: "CAN", Region: "Americas"},
	{Name: "Chile", Alpha2: "CL", Alpha3: "CHL", Region: "Americas"},
	{Name: "China", Alpha2: "CN", Alpha3: "CHN", Region: "Asia"},
	{Name: "Colombia", Alpha2: "CO", Alpha3: "COL", Region: "Americas"},
	{Name: "Croatia", Alpha2: "HR", Alpha3: "HRV", Region: "Europe"},
	{Name: "Cuba", Alpha2: "CU", Alpha3: "CUB", Region: "Americas"},
	{Name: "Cyprus", Alpha2: "CY", Alpha3: "CYP", Region: "Asia"},
	{Name: "Czechia", Alpha2: "CZ", Alpha3: "CZE", Region: "Europe"},
	{Name: "Denmark", Alpha2: "DK", Alpha3: "DNK", Region: "Europe"},
	{Name: "Ecuador", Alpha2: "EC", Alpha3: "ECU", Region: "Americas"},
	{Name: "Egypt", Alpha2: "EG", Alpha3: "EGY", Region: "Africa"},
	{Name: "Estonia", Alpha2: "EE", Alpha3: "EST", Region: "Europe"},
	{Name: "Ethiopia", Alpha2: "ET", Alpha3: "ETH", Region: "Africa"},
	{Name: "Fiji", Alpha2: "FJ", Alpha3: "FJI", Region: "Oceania"},
	{Name: "Finland", Alpha2: "FI", Alpha3: "FIN", Region: "Europe"},
	{Name: "France", Alpha2: "FR", Alpha3: "FRA", Region: "Europe"},
	{Name: "Georgia", Alpha2: "GE", Alpha3: "GEO", Region: "Asia"},
	{Name: "Germany", Alpha2: "DE", Alpha3: "DEU", Region: "Europe"},
	{Name: "Ghana", Alpha2: "GH", Alpha3: "GHA", Region: "Africa"},
	{Name: "Greece", Alpha2: "GR", Alpha3: "GRC", Region: "Europe"},
	{Name: "Hungary", Alpha2: "HU", Alpha3: "HUN", Region: "Europe"},
	{Name: "Iceland", Alpha2: "IS", Alpha3: "ISL", Region: "Europe"},
	{Name: "India", Alpha2: "IN", Alpha3: "IND", Region: "Asia"},
	{Name: "Indonesia", Alpha2: "ID", Alpha3: "IDN", Region: "Asia"},
	{Name: "Iran", Alpha2: "IR", Alpha3: "IRN", Region: "Asia"},
	{Name: "Iraq", Alpha2: "IQ", Alpha3: "IRQ", Region: "Asia"},
	{Name: "Ireland", Alpha2: "IE", Alpha3: "IRL", Region: "Europe"},
	{Name: "Israel", Alpha2: "IL", Alpha3: "ISR", Region: "Asia"},
	{Name: "Italy", Alpha2: "IT", Alpha3: "ITA", Region: "Europe"},
	{Name: "Japan", Alpha2: "JP", Alpha3: "JPN", Region: "Asia"},
	{Name: "Kazakhstan", Alpha2: "KZ", Alpha3: "KAZ", Region: "Asia"},
	{Name: "Kenya", Alpha2: "KE", Alpha3: "KEN", Region: "Africa"},
	{Name: "Kyrgyzstan", Alpha2: "KG", Alpha3: "KGZ", Region: "Asia"},
	{Name: "Latvia", Alpha2: "LV", Alpha3: "LVA", Region: "Europe"},
	{Name: "Lithuania", Alpha2: "LT", Alpha3: "LTU", Region: "Europe"},
	{Name: "Luxembourg", Alpha2: "LU", Alpha3: "LUX", Region: "Europe"},
	{Name: "Malaysia", Alpha2: "MY", Alpha3: "MYS", Region: "Asia"},
	{Name: "Mexico", Alpha2: "MX", Alpha3: "MEX", Region: "Americas"},
	{Name: "Moldova", Alpha2: "MD", Alpha3: "MDA", Region: "Europe"},
	{Name: "Mongolia", Alpha2: "MN", Alpha3: "MNG", Region: "Asia"},
	{Name: "Morocco", Alpha2: "MA", Alpha3: "MAR", Region: "Africa"},
	{Name: "Netherlands", Alpha2: "NL", Alpha3: "NLD", Region: "Europe"},
	{Name: "New Zealand", Alpha2: "NZ", Alpha3: "NZL", Region: "Oceania"},
	{Name: "Nigeria", Alpha2: "NG", Alpha3: "NGA", Region: "Africa"},
	{Name: "Norway", Alpha2: "NO", Alpha3: "NOR", Region: "Europe"},
	{Name: "Pakistan", Alpha2: "PK", Alpha3: "PAK", Region: "Asia"},
	{Name: "Papua New Guinea", Alpha2: "PG", Alpha3: "PNG", Region: "Oceania"},
	{Name: "Peru", Alpha2: "PE", Alpha3: "PER", Region: "Americas"},
	{Name: "Philippines", Alpha2: "PH", Alpha3: "PHL", Region: "Asia"},
	{Name: "Poland", Alpha2: "PL", Alpha3: "POL", Region: "Europe"},
	{Name: "Portugal", Alpha2: "PT", Alpha3: "PRT", Region: "Europe"},
	{Name: "Romania", Alpha2: "RO", Alpha3: "ROU", Region: "Europe"},
	{Name: "Russia", Alpha2: "RU", Alpha3: "RUS", Region: "Europe"},
	{Name: "Saudi Arabia", Alpha2: "SA", Alpha3: "SAU", Region: "Asia"},
	{Name: "Senegal", Alpha2: "SN", Alpha3: "SEN", Region: "Africa"},
	{Name: "Serbia", Alpha2: "RS", Alpha3: "SRB", Region: "Europe"},
	{Name: "Singapore", Alpha2: "SG", Alpha3: "SGP", Region: "Asia"},
	{Name: "Slovakia", Alpha2: "SK", Alpha3: "SVK", Region: "Europe"},
	{Name: "Slovenia", Alpha2: "SI", Alpha3: "SVN", Region: "Europe"},
	{Name: "South Africa", Alpha2: "ZA", Alpha3: "ZAF", Region: "Africa"},
	{Name: "South Korea", Alpha2: "KR", Alpha3: "KOR", Region: "Asia"},
	{Name: "Spain", Alpha2: "ES", Alpha3: "ESP", Region: "Europe"},
	{Name: "Sweden", Alpha2: "SE", Alpha3: "SWE", Region: "Europe"},
	{Name: "Switzerland", Alpha2: "CH", Alpha3: "CHE", Region: "Europe"},
	{Name: "Tajikistan", Alpha2: "TJ", Alpha3: "TJK", Region: "Asia"},
	{Name: "Tanzania", Alpha2: "TZ", Alpha3: "TZA", Region: "Africa"},
	{Name: "Thailand", Alpha2: "TH", Alpha3: "THA", Region: "Asia"},
	{Name: "Tunisia", Alpha2: "TN", Alpha3: "TUN", Region: "Africa"},
	{Name: "Turkey", Alpha2: "TR", Alpha3: "TUR", Region: "Asia"},
	{Name: "Turkmenistan", Alpha2: "TM", Alpha3: "TKM", Region: "Asia"},
	{Name: "Uganda", Alpha2: "UG", Alpha3: "UGA", Region: "Africa"},
	{Name: "Ukraine", Alpha2: "UA", Alpha3: "UKR", Region: "Europe"},
	{Name: "United Arab Emirates", Alpha2: "AE", Alpha3: "ARE", Region: "Asia"},
	{Name: "United Kingdom", Alpha2: "GB", Alpha3: "GBR", Region: "Europe"},
	{Name: "United States", Alpha2: "US", Alpha3: "USA", Region: "Americas"},
	{Name: "Uruguay", Alpha2: "UY", Alpha3: "URY", Region: "Americas"},
	{Name: "Uzbekistan", Alpha2: "UZ", Alpha3: "UZB", Region: "Asia"},
	{Name: "Venezuela", Alpha2: "VE", Alpha3: "VEN", Region: "Americas"},
	{Name: "Vietnam", Alpha2: "VN", Alpha3: "VNM", Region: "Asia"},
	{Name: "Zambia", Alpha2: "ZM", Alpha3: "ZMB", Region: "Africa"},
	{Name: "Zimbabwe", Alpha2: "ZW", Alpha3: "ZWE", Region: "Africa"},
}
