package repositories

import (
	"errors"

	"gorm.io/gorm"

	"github.com/rohits-web03/sociogram/internal/models"
)

// GetReaction returns the user's reaction to a post, or "" when there is
// none.
func (s *Store) GetReaction(postID, login string) (string, error) {
	var reaction models.Reaction
	err := s.db.Where("post_id = ? AND login = ?", postID, login).First(&reaction).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return reaction.Reaction, nil
}

func (s *Store) InsertReaction(postID, login, reaction string) error {
	return s.db.Create(&models.Reaction{PostID: postID, Login: login, Reaction: reaction}).Error
}

func (s *Store) UpdateReaction(postID, login, reaction string) error {
	return s.db.Model(&models.Reaction{}).
		Where("post_id = ? AND login = ?", postID, login).
		Update("reaction", reaction).Error
}

// UpdatePostCounts writes the recomputed counters. Intentionally a second
// statement after the reaction row change, with no surrounding transaction;
// per-statement atomicity is the only guarantee this store layer gives.
func (s *Store) UpdatePostCounts(postID string, likes, dislikes int) error {
	return s.db.Model(&models.Post{}).Where("id = ?", postID).
		Updates(map[string]interface{}{
			"likes_count":    likes,
			"dislikes_count": dislikes,
		}).Error
}
