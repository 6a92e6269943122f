package repositories

import "github.com/rohits-web03/sociogram/internal/models"

func (s *Store) CreatePost(post *models.Post) error {
	return s.db.Create(post).Error
}

func (s *Store) GetPost(id string) (*models.Post, error) {
	var post models.Post
	if err := s.db.Where("id = ?", id).First(&post).Error; err != nil {
		return nil, err
	}
	return &post, nil
}

// FeedByAuthor returns the author's posts newest first.
func (s *Store) FeedByAuthor(author string, offset, limit int) ([]models.Post, error) {
	var posts []models.Post
	err := s.db.Where("author = ?", author).
		Order("created_at DESC").
		Limit(limit).Offset(offset).
		Find(&posts).Error
	if err != nil {
		return nil, err
	}
	return posts, nil
}
