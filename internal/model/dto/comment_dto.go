package dto

// CreateCommentRequest 创建评论请求
type CreateCommentRequest struct {
	Content  string `json:"content" binding:"required,min=1,max=2000"`
	ParentID *int64 `json:"parent_id,omitempty"`
}

// UpdateCommentRequest 修改评论请求
type UpdateCommentRequest struct {
	Content string `json:"content" binding:"required,min=1,max=2000"`
}

// CommentItem 评论项（含读取时计算的衍生字段）
type CommentItem struct {
	ID           int64        `json:"id"`
	User         *CommentUser `json:"user"`
	Content      string       `json:"content"`
	ParentID     *int64       `json:"parent_id"`
	IsDeleted    bool         `json:"is_deleted"`
	LikeCount    int64        `json:"like_count"`
	DislikeCount int64        `json:"dislike_count"`
	HasLiked     bool         `json:"has_liked"`
	HasDisliked  bool         `json:"has_disliked"`
	CreatedAt    string       `json:"created_at"`
	UpdatedAt    string       `json:"updated_at"`
}

// CommentUser 评论用户信息
type CommentUser struct {
	ID        int64  `json:"id"`
	Username  string `json:"username"`
	AvatarURL string `json:"avatar_url"`
}

// CommentStats 评论统计
type CommentStats struct {
	TotalComments int64 `json:"total_comments"`
	TopLevel      int64 `json:"top_level"`
	Replies       int64 `json:"replies"`
	Deleted       int64 `json:"deleted"`
	TotalLikes    int64 `json:"total_likes"`
	TotalDislikes int64 `json:"total_dislikes"`
}
