package repositories

import "github.com/rohits-web03/sociogram/internal/models"

// ListCountries returns the reference table, optionally narrowed to one
// region. An empty region means no filter.
func (s *Store) ListCountries(region string) ([]models.Country, error) {
	var countries []models.Country
	q := s.db.Order("alpha2")
	if region != "" {
		q = q.Where("region = ?", region)
	}
	if err := q.Find(&countries).Error; err != nil {
		return nil, err
	}
	return countries, nil
}

func (s *Store) GetCountry(alpha2 string) (*models.Country, error) {
	var country models.Country
	if err := s.db.Where("alpha2 = ?", alpha2).First(&country).Error; err != nil {
		return nil, err
	}
	return &country, nil
}

func (s *Store) CountryExists(alpha2 string) (bool, error) {
	var count int64
	err := s.db.Model(&models.Country{}).Where("alpha2 = ?", alpha2).Count(&count).Error
	return count > 0, err
}
