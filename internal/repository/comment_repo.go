package repository

import (
	"gorm.io/gorm"

	"github.com/techzu/social_go_server/internal/model"
)

// 评论列表排序方式
const (
	SortNewest       = "newest"
	SortOldest       = "oldest"
	SortMostLiked    = "most_liked"
	SortMostDisliked = "most_disliked"
)

type CommentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) *CommentRepository {
	return &CommentRepository{db: db}
}

// Create 创建评论
func (r *CommentRepository) Create(comment *model.Comment) error {
	return r.db.Create(comment).Error
}

// GetByID 根据 ID 获取评论（包含已软删除的）
func (r *CommentRepository) GetByID(id int64) (*model.Comment, error) {
	var comment model.Comment
	err := r.db.Where("id = ?", id).First(&comment).Error
	if err != nil {
		return nil, err
	}
	return &comment, nil
}

// GetByIDWithUser 获取评论及用户信息
func (r *CommentRepository) GetByIDWithUser(id int64) (*model.Comment, error) {
	var comment model.Comment
	err := r.db.Preload("User").Where("id = ?", id).First(&comment).Error
	if err != nil {
		return nil, err
	}
	return &comment, nil
}

// UpdateContent 替换评论内容并刷新 updated_at
func (r *CommentRepository) UpdateContent(id int64, content string) error {
	return r.db.Model(&model.Comment{}).Where("id = ?", id).
		Update("content", content).Error
}

// SoftDelete 软删除评论，不影响子回复
func (r *CommentRepository) SoftDelete(id int64) error {
	return r.db.Model(&model.Comment{}).Where("id = ?", id).
		Update("is_deleted", true).Error
}

// List 分页获取评论列表
// parentID 为 nil 时只返回顶层评论，否则返回指定评论的直接回复；
// total 按同一过滤条件统计，与分页无关
func (r *CommentRepository) List(parentID *int64, page, pageSize int, sortBy string) ([]*model.Comment, int64, error) {
	var comments []*model.Comment
	var total int64

	query := r.db.Model(&model.Comment{}).Preload("User")
	if parentID == nil {
		query = query.Where("parent_id IS NULL")
	} else {
		query = query.Where("parent_id = ?", *parentID)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	err := query.Order(orderClause(sortBy)).Offset(offset).Limit(pageSize).Find(&comments).Error
	if err != nil {
		return nil, 0, err
	}

	return comments, total, nil
}

// orderClause 排序表达式，热度排序用关联子查询计数，created_at 倒序决胜
func orderClause(sortBy string) string {
	switch sortBy {
	case SortOldest:
		return "comments.created_at ASC, comments.id ASC"
	case SortMostLiked:
		return "(SELECT COUNT(*) FROM comment_votes v WHERE v.comment_id = comments.id AND v.vote_type = 'like') DESC, " +
			"comments.created_at DESC, comments.id DESC"
	case SortMostDisliked:
		return "(SELECT COUNT(*) FROM comment_votes v WHERE v.comment_id = comments.id AND v.vote_type = 'dislike') DESC, " +
			"comments.created_at DESC, comments.id DESC"
	default: // SortNewest
		return "comments.created_at DESC, comments.id DESC"
	}
}

// CountAll 统计评论总数、顶层数和已删除数
func (r *CommentRepository) CountAll() (total, topLevel, deleted int64, err error) {
	if err = r.db.Model(&model.Comment{}).Count(&total).Error; err != nil {
		return
	}
	if err = r.db.Model(&model.Comment{}).Where("parent_id IS NULL").Count(&topLevel).Error; err != nil {
		return
	}
	err = r.db.Model(&model.Comment{}).Where("is_deleted = ?", true).Count(&deleted).Error
	return
}
