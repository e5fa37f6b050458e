package testutil

import (
	"fmt"
	"testing"
	"time"

	"gorm.io/gorm"

	"github.com/techzu/social_go_server/internal/model"
)

// TestUser 创建测试用户
func TestUser(t *testing.T, db *gorm.DB, opts ...func(*model.User)) *model.User {
	t.Helper()

	email := fmt.Sprintf("test_%d@example.com", time.Now().UnixNano())
	passwordHash := "$2a$10$abcdefghijklmnopqrstuvwxyz123456" // bcrypt hash placeholder
	user := &model.User{
		Username:     fmt.Sprintf("testuser_%d", time.Now().UnixNano()),
		Email:        &email,
		PasswordHash: &passwordHash,
	}

	for _, opt := range opts {
		opt(user)
	}

	if err := db.Create(user).Error; err != nil {
		t.Fatalf("Failed to create test user: %v", err)
	}

	return user
}

// WithUsername 设置用户名
func WithUsername(username string) func(*model.User) {
	return func(u *model.User) {
		u.Username = username
	}
}

// WithEmail 设置邮箱
func WithEmail(email string) func(*model.User) {
	return func(u *model.User) {
		u.Email = &email
	}
}

// WithGithubID 设置 GitHub ID
func WithGithubID(githubID string) func(*model.User) {
	return func(u *model.User) {
		u.GithubID = &githubID
		u.PasswordHash = nil
	}
}

// TestComment 创建测试评论
func TestComment(t *testing.T, db *gorm.DB, userID int64, content string, opts ...func(*model.Comment)) *model.Comment {
	t.Helper()

	comment := &model.Comment{
		UserID:  userID,
		Content: content,
	}

	for _, opt := range opts {
		opt(comment)
	}

	if err := db.Create(comment).Error; err != nil {
		t.Fatalf("Failed to create test comment: %v", err)
	}

	return comment
}

// WithParent 设置父评论
func WithParent(parentID int64) func(*model.Comment) {
	return func(c *model.Comment) {
		c.ParentID = &parentID
	}
}

// WithCreatedAt 设置创建时间
func WithCreatedAt(ts time.Time) func(*model.Comment) {
	return func(c *model.Comment) {
		c.CreatedAt = ts
	}
}

// AsDeleted 标记为已删除
func AsDeleted() func(*model.Comment) {
	return func(c *model.Comment) {
		c.IsDeleted = true
	}
}

// TestReply 创建测试回复
func TestReply(t *testing.T, db *gorm.DB, userID, parentID int64, content string) *model.Comment {
	t.Helper()

	return TestComment(t, db, userID, content, WithParent(parentID))
}

// TestVote 创建测试投票
func TestVote(t *testing.T, db *gorm.DB, commentID, userID int64, voteType string) *model.CommentVote {
	t.Helper()

	vote := &model.CommentVote{
		CommentID: commentID,
		UserID:    userID,
		Type:      voteType,
	}

	if err := db.Create(vote).Error; err != nil {
		t.Fatalf("Failed to create test vote: %v", err)
	}

	return vote
}
