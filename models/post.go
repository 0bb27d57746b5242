// File: /models/post.go
package models

import (
	"time"
)

type Post struct {
	ID         string    `json:"id" gorm:"primaryKey;size:191"`
	Title      string    `json:"title" gorm:"not null;size:255"`
	Content    string    `json:"content" gorm:"not null"`
	AuthorID   string    `json:"authorId" gorm:"not null;size:191;index"`
	PostStatus string    `json:"postStatus" gorm:"not null;default:'published';size:20"`
	Likes      int       `json:"likes" gorm:"not null;default:0"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`

	Author   User      `json:"author,omitempty" gorm:"foreignKey:AuthorID"`
	Comments []Comment `json:"comments,omitempty" gorm:"foreignKey:PostID"`
}

type Like struct {
	ID     string `json:"id" gorm:"primaryKey;size:191"`
	UserID string `json:"userId" gorm:"not null;size:191;uniqueIndex:idx_likes_user_post"`
	PostID string `json:"postId" gorm:"not null;size:191;uniqueIndex:idx_likes_user_post"`

	User User `json:"-" gorm:"foreignKey:UserID"`
	Post Post `json:"-" gorm:"foreignKey:PostID"`
}

type Comment struct {
	ID        string    `json:"id" gorm:"primaryKey;size:191"`
	Content   string    `json:"content" gorm:"not null"`
	AuthorID  string    `json:"authorId" gorm:"not null;size:191;index"`
	PostID    string    `json:"postId" gorm:"not null;size:191;index"`
	CreatedAt time.Time `json:"createdAt"`

	Author User `json:"author,omitempty" gorm:"foreignKey:AuthorID"`
}
