package model

import (
	"time"
)

// 投票类型
const (
	VoteLike    = "like"
	VoteDislike = "dislike"
)

// CommentVote 每个 (评论, 用户) 最多一行，唯一索引保证点赞和点踩互斥
type CommentVote struct {
	ID        int64     `gorm:"primaryKey" json:"id"`
	CommentID int64     `gorm:"not null;uniqueIndex:idx_comment_user" json:"comment_id"`
	UserID    int64     `gorm:"not null;uniqueIndex:idx_comment_user" json:"user_id"`
	Type      string    `gorm:"column:vote_type;size:10;not null" json:"type"` // like, dislike
	CreatedAt time.Time `json:"created_at"`
}

func (CommentVote) TableName() string {
	return "comment_votes"
}
