// File: /models/user.go
package models

import (
	"time"
)

type User struct {
	ID       string    `json:"id" gorm:"primaryKey;size:191"`
	Username string    `json:"username" gorm:"uniqueIndex;not null;size:50"`
	Email    string    `json:"email" gorm:"uniqueIndex;not null;size:255"`
	Password string    `json:"-" gorm:"not null;size:255"`
	Role     string    `json:"role" gorm:"not null;default:'user';size:20"`
	JoinedAt time.Time `json:"joinedAt" gorm:"autoCreateTime"`

	// Relationships
	Posts    []Post    `json:"posts,omitempty" gorm:"foreignKey:AuthorID"`
	Comments []Comment `json:"comments,omitempty" gorm:"foreignKey:AuthorID"`
	Likes    []Like    `json:"like,omitempty" gorm:"foreignKey:UserID"`
}

// UserSnapshot is the trimmed user shape returned by follower queries.
type UserSnapshot struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

func (u *User) Snapshot() UserSnapshot {
	return UserSnapshot{ID: u.ID, Username: u.Username, Email: u.Email}
}

type Follow struct {
	FollowerID  string    `json:"followerId" gorm:"primaryKey;size:191;check:follower_id <> following_id"`
	FollowingID string    `json:"followingId" gorm:"primaryKey;size:191"`
	CreatedAt   time.Time `json:"created_at"`

	Follower  User `json:"-" gorm:"foreignKey:FollowerID"`
	Following User `json:"-" gorm:"foreignKey:FollowingID"`
}

// FollowCounts carries the derived follower/following totals for a user.
type FollowCounts struct {
	FollowersCount int64 `json:"followersCount"`
	FollowingCount int64 `json:"followingCount"`
}
