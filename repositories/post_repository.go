// File: /repositories/post_repository.go
package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/ryanneekidev/rline-backend/models"
)

var (
	ErrPostNotFound = errors.New("post not found")
	ErrAlreadyLiked = errors.New("post already liked")
	ErrLikeNotFound = errors.New("like not found")
)

type PostRepository struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) *PostRepository {
	return &PostRepository{db: db}
}

func (r *PostRepository) CreatePost(ctx context.Context, title, content, authorID, postStatus string) (*models.Post, error) {
	if postStatus == "" {
		postStatus = "published"
	}

	post := models.Post{
		ID:         uuid.New().String(),
		Title:      title,
		Content:    content,
		AuthorID:   authorID,
		PostStatus: postStatus,
	}

	if err := r.db.WithContext(ctx).Create(&post).Error; err != nil {
		return nil, err
	}
	return &post, nil
}

func (r *PostRepository) GetPosts(ctx context.Context) ([]models.Post, error) {
	var posts []models.Post
	err := r.db.WithContext(ctx).
		Preload("Author").
		Preload("Comments").
		Order("created_at DESC").
		Find(&posts).Error
	if err != nil {
		return nil, err
	}

	for i := range posts {
		posts[i].Author.Password = ""
	}
	return posts, nil
}

func (r *PostRepository) GetPost(ctx context.Context, postID string) (*models.Post, error) {
	var post models.Post
	err := r.db.WithContext(ctx).
		Preload("Author").
		Preload("Comments").
		Preload("Comments.Author").
		First(&post, "id = ?", postID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, err
	}

	post.Author.Password = ""
	for i := range post.Comments {
		post.Comments[i].Author.Password = ""
	}
	return &post, nil
}

// CreateComment attaches a comment to a post. Both the author and the parent
// post must exist or the comment is rejected.
func (r *PostRepository) CreateComment(ctx context.Context, content, authorID, postID string) (*models.Comment, error) {
	comment := models.Comment{
		ID:       uuid.New().String(),
		Content:  content,
		AuthorID: authorID,
		PostID:   postID,
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var userCount int64
		if err := tx.Model(&models.User{}).Where("id = ?", authorID).Count(&userCount).Error; err != nil {
			return err
		}
		if userCount == 0 {
			return ErrUserNotFound
		}

		var postCount int64
		if err := tx.Model(&models.Post{}).Where("id = ?", postID).Count(&postCount).Error; err != nil {
			return err
		}
		if postCount == 0 {
			return ErrPostNotFound
		}

		return tx.Create(&comment).Error
	})
	if err != nil {
		return nil, err
	}
	return &comment, nil
}

// GetUserLikedPosts returns the like edges owned by a user, as shipped in
// the login response.
func (r *PostRepository) GetUserLikedPosts(ctx context.Context, userID string) ([]models.Like, error) {
	var likes []models.Like
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).Find(&likes).Error
	if err != nil {
		return nil, err
	}
	return likes, nil
}

// LikePost creates the like edge and bumps the post's likes counter in a
// single transaction. The counter moves via an atomic column expression, so
// concurrent likes on the same post never lose increments.
func (r *PostRepository) LikePost(ctx context.Context, userID, postID string) (*models.Like, error) {
	like := models.Like{
		ID:     uuid.New().String(),
		UserID: userID,
		PostID: postID,
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var postCount int64
		if err := tx.Model(&models.Post{}).Where("id = ?", postID).Count(&postCount).Error; err != nil {
			return err
		}
		if postCount == 0 {
			return ErrPostNotFound
		}

		if err := tx.Create(&like).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return ErrAlreadyLiked
			}
			return err
		}

		return tx.Model(&models.Post{}).
			Where("id = ?", postID).
			UpdateColumn("likes", gorm.Expr("likes + ?", 1)).Error
	})
	if err != nil {
		return nil, err
	}
	return &like, nil
}

// DislikePost removes a like edge and decrements the post's counter in a
// single transaction. A missing like leaves the counter untouched.
func (r *PostRepository) DislikePost(ctx context.Context, userID, postID, likeID string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Where("id = ? AND user_id = ? AND post_id = ?", likeID, userID, postID).
			Delete(&models.Like{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrLikeNotFound
		}

		return tx.Model(&models.Post{}).
			Where("id = ?", postID).
			UpdateColumn("likes", gorm.Expr("likes - ?", 1)).Error
	})
}
