package repositories

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ryanneekidev/rline-backend/models"
)

func TestLikePostUpdatesEdgeAndCounter(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostRepository(db)
	ctx := context.Background()

	alice := createTestUser(t, db, "alice")
	post := createTestPost(t, db, alice.ID)

	like, err := repo.LikePost(ctx, alice.ID, post.ID)
	require.NoError(t, err)
	assert.Equal(t, alice.ID, like.UserID)
	assert.Equal(t, post.ID, like.PostID)

	var reloaded models.Post
	require.NoError(t, db.First(&reloaded, "id = ?", post.ID).Error)
	assert.Equal(t, 1, reloaded.Likes)
}

func TestLikePostDuplicateRejected(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostRepository(db)
	ctx := context.Background()

	alice := createTestUser(t, db, "alice")
	post := createTestPost(t, db, alice.ID)

	_, err := repo.LikePost(ctx, alice.ID, post.ID)
	require.NoError(t, err)

	_, err = repo.LikePost(ctx, alice.ID, post.ID)
	assert.ErrorIs(t, err, ErrAlreadyLiked)

	// The failed second like must not bump the counter.
	var reloaded models.Post
	require.NoError(t, db.First(&reloaded, "id = ?", post.ID).Error)
	assert.Equal(t, 1, reloaded.Likes)
}

func TestLikePostMissingPost(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostRepository(db)

	alice := createTestUser(t, db, "alice")

	_, err := repo.LikePost(context.Background(), alice.ID, "no-such-post")
	assert.ErrorIs(t, err, ErrPostNotFound)
}

func TestConcurrentLikesLoseNoIncrements(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostRepository(db)
	ctx := context.Background()

	author := createTestUser(t, db, "author")
	post := createTestPost(t, db, author.ID)

	const n = 20
	users := make([]*models.User, n)
	for i := 0; i < n; i++ {
		users[i] = createTestUser(t, db, fmt.Sprintf("user%02d", i))
	}

	var wg sync.WaitGroup
	errs := make([]error, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = repo.LikePost(ctx, users[i].ID, post.ID)
		}(i)
	}
	wg.Wait()

	for i, err := range errs {
		require.NoError(t, err, "like %d", i)
	}

	var reloaded models.Post
	require.NoError(t, db.First(&reloaded, "id = ?", post.ID).Error)
	assert.Equal(t, n, reloaded.Likes)

	var edgeCount int64
	require.NoError(t, db.Model(&models.Like{}).Where("post_id = ?", post.ID).Count(&edgeCount).Error)
	assert.Equal(t, int64(n), edgeCount)
}

func TestDislikePost(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostRepository(db)
	ctx := context.Background()

	alice := createTestUser(t, db, "alice")
	post := createTestPost(t, db, alice.ID)

	like, err := repo.LikePost(ctx, alice.ID, post.ID)
	require.NoError(t, err)

	require.NoError(t, repo.DislikePost(ctx, alice.ID, post.ID, like.ID))

	var reloaded models.Post
	require.NoError(t, db.First(&reloaded, "id = ?", post.ID).Error)
	assert.Equal(t, 0, reloaded.Likes)
}

func TestDislikeMissingLikeLeavesCounter(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostRepository(db)
	ctx := context.Background()

	alice := createTestUser(t, db, "alice")
	bob := createTestUser(t, db, "bob")
	post := createTestPost(t, db, alice.ID)

	_, err := repo.LikePost(ctx, alice.ID, post.ID)
	require.NoError(t, err)

	err = repo.DislikePost(ctx, bob.ID, post.ID, "no-such-like")
	assert.ErrorIs(t, err, ErrLikeNotFound)

	var reloaded models.Post
	require.NoError(t, db.First(&reloaded, "id = ?", post.ID).Error)
	assert.Equal(t, 1, reloaded.Likes)
}

func TestCreateCommentRequiresExistingReferences(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostRepository(db)
	ctx := context.Background()

	alice := createTestUser(t, db, "alice")
	post := createTestPost(t, db, alice.ID)

	comment, err := repo.CreateComment(ctx, "nice post", alice.ID, post.ID)
	require.NoError(t, err)
	assert.Equal(t, post.ID, comment.PostID)

	_, err = repo.CreateComment(ctx, "orphan", "no-such-user", post.ID)
	assert.ErrorIs(t, err, ErrUserNotFound)

	_, err = repo.CreateComment(ctx, "orphan", alice.ID, "no-such-post")
	assert.ErrorIs(t, err, ErrPostNotFound)
}

func TestGetPostsNewestFirst(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostRepository(db)
	ctx := context.Background()

	alice := createTestUser(t, db, "alice")

	first, err := repo.CreatePost(ctx, "first", "content", alice.ID, "")
	require.NoError(t, err)
	second, err := repo.CreatePost(ctx, "second", "content", alice.ID, "")
	require.NoError(t, err)
	require.NoError(t, db.Model(&models.Post{}).Where("id = ?", second.ID).
		UpdateColumn("created_at", first.CreatedAt.Add(1e9)).Error)

	posts, err := repo.GetPosts(ctx)
	require.NoError(t, err)
	require.Len(t, posts, 2)
	assert.Equal(t, "second", posts[0].Title)
	assert.Empty(t, posts[0].Author.Password)
}

func TestGetUserLikedPosts(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostRepository(db)
	ctx := context.Background()

	alice := createTestUser(t, db, "alice")
	bob := createTestUser(t, db, "bob")
	post := createTestPost(t, db, alice.ID)
	other := createTestPost(t, db, alice.ID)

	_, err := repo.LikePost(ctx, bob.ID, post.ID)
	require.NoError(t, err)
	_, err = repo.LikePost(ctx, bob.ID, other.ID)
	require.NoError(t, err)

	likes, err := repo.GetUserLikedPosts(ctx, bob.ID)
	require.NoError(t, err)
	assert.Len(t, likes, 2)
}
