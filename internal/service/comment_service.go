package service

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/techzu/social_go_server/config"
	"github.com/techzu/social_go_server/internal/model"
	"github.com/techzu/social_go_server/internal/model/dto"
	"github.com/techzu/social_go_server/internal/repository"
)

var (
	ErrCommentNotFound   = errors.New("评论不存在")
	ErrCommentPermission = errors.New("无权操作此评论")
	ErrCommentDeleted    = errors.New("评论已删除，无法修改")
	ErrParentNotFound    = errors.New("父评论不存在")
)

type CommentService struct {
	commentRepo *repository.CommentRepository
	voteRepo    *repository.VoteRepository
	userRepo    *repository.UserRepository
	cfg         *config.Config
}

func NewCommentService(
	commentRepo *repository.CommentRepository,
	voteRepo *repository.VoteRepository,
	userRepo *repository.UserRepository,
	cfg *config.Config,
) *CommentService {
	return &CommentService{
		commentRepo: commentRepo,
		voteRepo:    voteRepo,
		userRepo:    userRepo,
		cfg:         cfg,
	}
}

// Create 创建评论，parent_id 存在时先验证父评论存在
func (s *CommentService) Create(userID int64, req *dto.CreateCommentRequest) (*dto.CommentItem, error) {
	if req.ParentID != nil {
		if _, err := s.commentRepo.GetByID(*req.ParentID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrParentNotFound
			}
			return nil, err
		}
	}

	comment := &model.Comment{
		UserID:   userID,
		ParentID: req.ParentID,
		Content:  req.Content,
	}

	if err := s.commentRepo.Create(comment); err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetByID(userID)
	if err == nil {
		comment.User = user
	}

	item := s.buildCommentItem(comment)
	return item, nil
}

// Get 获取单条评论，衍生字段按当前用户计算
func (s *CommentService) Get(commentID, userID int64) (*dto.CommentItem, error) {
	comment, err := s.commentRepo.GetByIDWithUser(commentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCommentNotFound
		}
		return nil, err
	}

	items, err := s.buildCommentItems([]*model.Comment{comment}, userID)
	if err != nil {
		return nil, err
	}
	return items[0], nil
}

// List 分页获取评论列表
// parentID 为 nil 时返回顶层评论；sortBy 支持 newest/oldest/most_liked/most_disliked
func (s *CommentService) List(parentID *int64, page, pageSize int, sortBy string, userID int64) ([]*dto.CommentItem, int64, error) {
	comments, total, err := s.commentRepo.List(parentID, page, pageSize, sortBy)
	if err != nil {
		return nil, 0, err
	}

	items, err := s.buildCommentItems(comments, userID)
	if err != nil {
		return nil, 0, err
	}

	return items, total, nil
}

// ListReplies 分页获取直接回复，固定按最新排序
func (s *CommentService) ListReplies(parentID int64, page, pageSize int, userID int64) ([]*dto.CommentItem, int64, error) {
	return s.List(&parentID, page, pageSize, repository.SortNewest, userID)
}

// Update 修改评论内容，仅作者可操作，已删除的评论不可修改
func (s *CommentService) Update(userID, commentID int64, req *dto.UpdateCommentRequest) (*dto.CommentItem, error) {
	comment, err := s.commentRepo.GetByID(commentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCommentNotFound
		}
		return nil, err
	}

	if err := s.authorizeMutation(comment, userID); err != nil {
		return nil, err
	}

	if comment.IsDeleted {
		return nil, ErrCommentDeleted
	}

	if err := s.commentRepo.UpdateContent(commentID, req.Content); err != nil {
		return nil, err
	}

	return s.Get(commentID, userID)
}

// Delete 软删除评论，仅作者可操作；子回复不受影响
func (s *CommentService) Delete(userID, commentID int64) error {
	comment, err := s.commentRepo.GetByID(commentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCommentNotFound
		}
		return err
	}

	if err := s.authorizeMutation(comment, userID); err != nil {
		return err
	}

	return s.commentRepo.SoftDelete(commentID)
}

// LikeToggle 点赞开关：中立->赞，赞->中立，踩->赞
func (s *CommentService) LikeToggle(userID, commentID int64) (*dto.CommentItem, error) {
	return s.toggleVote(userID, commentID, model.VoteLike)
}

// DislikeToggle 点踩开关，与点赞对称
func (s *CommentService) DislikeToggle(userID, commentID int64) (*dto.CommentItem, error) {
	return s.toggleVote(userID, commentID, model.VoteDislike)
}

func (s *CommentService) toggleVote(userID, commentID int64, voteType string) (*dto.CommentItem, error) {
	// 软删除的评论仍可投票，只要求评论存在
	if _, err := s.commentRepo.GetByID(commentID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCommentNotFound
		}
		return nil, err
	}

	if _, err := s.voteRepo.Toggle(commentID, userID, voteType); err != nil {
		return nil, err
	}

	return s.Get(commentID, userID)
}

// authorizeMutation 仅作者可修改或删除自己的评论
func (s *CommentService) authorizeMutation(comment *model.Comment, userID int64) error {
	if comment.UserID != userID {
		return ErrCommentPermission
	}
	return nil
}

// buildCommentItems 批量组装评论视图，赞/踩数和当前用户投票状态读取时计算
func (s *CommentService) buildCommentItems(comments []*model.Comment, userID int64) ([]*dto.CommentItem, error) {
	ids := make([]int64, len(comments))
	for i, c := range comments {
		ids[i] = c.ID
	}

	counts, err := s.voteRepo.CountByCommentIDs(ids)
	if err != nil {
		return nil, err
	}

	userVotes, err := s.voteRepo.UserVotes(userID, ids)
	if err != nil {
		return nil, err
	}

	items := make([]*dto.CommentItem, len(comments))
	for i, c := range comments {
		item := s.buildCommentItem(c)
		if vc, ok := counts[c.ID]; ok {
			item.LikeCount = vc.Like
			item.DislikeCount = vc.Dislike
		}
		item.HasLiked = userVotes[c.ID] == model.VoteLike
		item.HasDisliked = userVotes[c.ID] == model.VoteDislike
		items[i] = item
	}

	return items, nil
}

func (s *CommentService) buildCommentItem(c *model.Comment) *dto.CommentItem {
	item := &dto.CommentItem{
		ID:        c.ID,
		ParentID:  c.ParentID,
		Content:   c.Content,
		IsDeleted: c.IsDeleted,
		CreatedAt: c.CreatedAt.Format(time.RFC3339),
		UpdatedAt: c.UpdatedAt.Format(time.RFC3339),
	}

	if c.User != nil {
		item.User = &dto.CommentUser{
			ID:        c.User.ID,
			Username:  c.User.Username,
			AvatarURL: c.User.AvatarURL,
		}
	}

	return item
}
