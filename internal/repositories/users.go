package repositories

import "github.com/rohits-web03/sociogram/internal/models"

func (s *Store) CreateUser(user *models.User) error {
	return s.db.Create(user).Error
}

// GetUser loads the full account row, credential hash included. Callers
// should check for gorm.ErrRecordNotFound.
func (s *Store) GetUser(login string) (*models.User, error) {
	var user models.User
	if err := s.db.Where("login = ?", login).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// IdentityTaken reports whether any existing user already holds this login,
// email or phone. The check is a scan over all users rather than three
// indexed lookups; fine at this scale and it keeps one code path for the
// three-way conflict.
func (s *Store) IdentityTaken(login, email string, phone *string) (bool, error) {
	var users []models.User
	if err := s.db.Select("login", "email", "phone").Find(&users).Error; err != nil {
		return false, err
	}
	for _, u := range users {
		if u.Login == login || u.Email == email {
			return true, nil
		}
		if phone != nil && u.Phone != nil && *u.Phone == *phone {
			return true, nil
		}
	}
	return false, nil
}

// PhoneTakenByOther reports whether a user other than login already has this
// phone number.
func (s *Store) PhoneTakenByOther(login, phone string) (bool, error) {
	var count int64
	err := s.db.Model(&models.User{}).
		Where("phone = ? AND login <> ?", phone, login).
		Count(&count).Error
	return count > 0, err
}

// UpdateProfile applies the given column values to one user row. Maps are
// used so zero values (isPublic=false) are written too.
func (s *Store) UpdateProfile(login string, fields map[string]interface{}) error {
	return s.db.Model(&models.User{}).Where("login = ?", login).Updates(fields).Error
}

// DeleteUser removes the account row. Issued tokens for the login die at
// the next re-verification.
func (s *Store) DeleteUser(login string) error {
	return s.db.Where("login = ?", login).Delete(&models.User{}).Error
}

func (s *Store) UpdatePassword(login, hashedPassword string) error {
	return s.db.Model(&models.User{}).Where("login = ?", login).
		Update("hashed_password", hashedPassword).Error
}
