package repositories

import "github.com/rohits-web03/sociogram/internal/models"

// FriendLogins returns the logins owner has added, i.e. the edges stored as
// owner→friend. Visibility checks pass the resource owner here and look for
// the viewer in the result.
func (s *Store) FriendLogins(owner string) ([]string, error) {
	var logins []string
	err := s.db.Model(&models.FriendEdge{}).
		Where("from_login = ?", owner).
		Pluck("to_login", &logins).Error
	if err != nil {
		return nil, err
	}
	return logins, nil
}

// FriendsPage returns one page of owner's friend edges ordered by friend
// login, mirroring how rows are paginated before the response is re-sorted
// by addedAt.
func (s *Store) FriendsPage(owner string, offset, limit int) ([]models.FriendEdge, error) {
	var edges []models.FriendEdge
	err := s.db.Where("from_login = ?", owner).
		Order("to_login").
		Limit(limit).Offset(offset).
		Find(&edges).Error
	if err != nil {
		return nil, err
	}
	return edges, nil
}

func (s *Store) AddFriend(edge *models.FriendEdge) error {
	return s.db.Create(edge).Error
}

func (s *Store) RemoveFriend(fromLogin, toLogin string) error {
	return s.db.Where("from_login = ? AND to_login = ?", fromLogin, toLogin).
		Delete(&models.FriendEdge{}).Error
}
