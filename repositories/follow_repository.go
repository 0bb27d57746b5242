// File: /repositories/follow_repository.go
package repositories

import (
	"context"
	"errors"

	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	"github.com/ryanneekidev/rline-backend/models"
)

var (
	ErrSelfFollow       = errors.New("cannot follow yourself")
	ErrAlreadyFollowing = errors.New("already following this user")
	ErrFollowNotFound   = errors.New("follow relationship not found")
)

type FollowRepository struct {
	db *gorm.DB
}

func NewFollowRepository(db *gorm.DB) *FollowRepository {
	return &FollowRepository{db: db}
}

// Follow creates a directed follow edge. The (follower, following) pair is
// the table's composite primary key, so a duplicate insert fails instead of
// silently succeeding.
func (r *FollowRepository) Follow(ctx context.Context, followerID, followingID string) (*models.Follow, error) {
	if followerID == followingID {
		return nil, ErrSelfFollow
	}

	follow := models.Follow{
		FollowerID:  followerID,
		FollowingID: followingID,
	}

	if err := r.db.WithContext(ctx).Create(&follow).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrAlreadyFollowing
		}
		return nil, err
	}

	return &follow, nil
}

// Unfollow removes the edge by its composite key. Removing an edge that does
// not exist is reported, not swallowed.
func (r *FollowRepository) Unfollow(ctx context.Context, followerID, followingID string) error {
	result := r.db.WithContext(ctx).
		Where("follower_id = ? AND following_id = ?", followerID, followingID).
		Delete(&models.Follow{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrFollowNotFound
	}
	return nil
}

func (r *FollowRepository) IsFollowing(ctx context.Context, followerID, followingID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Follow{}).
		Where("follower_id = ? AND following_id = ?", followerID, followingID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// GetFollowers returns the users who follow userID.
func (r *FollowRepository) GetFollowers(ctx context.Context, userID string) ([]models.UserSnapshot, error) {
	var follows []models.Follow
	err := r.db.WithContext(ctx).
		Preload("Follower").
		Where("following_id = ?", userID).
		Find(&follows).Error
	if err != nil {
		return nil, err
	}

	followers := make([]models.UserSnapshot, 0, len(follows))
	for _, follow := range follows {
		followers = append(followers, follow.Follower.Snapshot())
	}
	return followers, nil
}

// GetFollowing returns the users that userID follows.
func (r *FollowRepository) GetFollowing(ctx context.Context, userID string) ([]models.UserSnapshot, error) {
	var follows []models.Follow
	err := r.db.WithContext(ctx).
		Preload("Following").
		Where("follower_id = ?", userID).
		Find(&follows).Error
	if err != nil {
		return nil, err
	}

	following := make([]models.UserSnapshot, 0, len(follows))
	for _, follow := range follows {
		following = append(following, follow.Following.Snapshot())
	}
	return following, nil
}

// GetFollowCounts computes the follower and following totals. The two counts
// are independent queries and run concurrently.
func (r *FollowRepository) GetFollowCounts(ctx context.Context, userID string) (*models.FollowCounts, error) {
	var counts models.FollowCounts

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return r.db.WithContext(gctx).
			Model(&models.Follow{}).
			Where("following_id = ?", userID).
			Count(&counts.FollowersCount).Error
	})
	g.Go(func() error {
		return r.db.WithContext(gctx).
			Model(&models.Follow{}).
			Where("follower_id = ?", userID).
			Count(&counts.FollowingCount).Error
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &counts, nil
}
