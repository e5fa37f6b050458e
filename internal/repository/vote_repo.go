package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/techzu/social_go_server/internal/model"
)

type VoteRepository struct {
	db *gorm.DB
}

func NewVoteRepository(db *gorm.DB) *VoteRepository {
	return &VoteRepository{db: db}
}

// VoteCounts 单条评论的赞/踩数
type VoteCounts struct {
	Like    int64
	Dislike int64
}

// Toggle 翻转用户对评论的投票状态，返回结果状态（like / dislike / 空串表示中立）
// 整个读-改-写在单个事务里完成，(comment_id, user_id) 唯一索引保证
// 并发切换不会让同一用户同时出现在赞和踩里
func (r *VoteRepository) Toggle(commentID, userID int64, voteType string) (string, error) {
	var result string

	err := r.db.Transaction(func(tx *gorm.DB) error {
		var vote model.CommentVote
		err := tx.Where("comment_id = ? AND user_id = ?", commentID, userID).First(&vote).Error

		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			// 中立 -> 投票
			vote = model.CommentVote{
				CommentID: commentID,
				UserID:    userID,
				Type:      voteType,
			}
			if err := tx.Create(&vote).Error; err != nil {
				return err
			}
			result = voteType
		case err != nil:
			return err
		case vote.Type == voteType:
			// 再次同向投票 -> 取消，回到中立
			if err := tx.Delete(&vote).Error; err != nil {
				return err
			}
			result = ""
		default:
			// 换方向，一次操作完成
			if err := tx.Model(&vote).Update("vote_type", voteType).Error; err != nil {
				return err
			}
			result = voteType
		}
		return nil
	})

	return result, err
}

// GetByCommentAndUser 获取用户对评论的投票
func (r *VoteRepository) GetByCommentAndUser(commentID, userID int64) (*model.CommentVote, error) {
	var vote model.CommentVote
	err := r.db.Where("comment_id = ? AND user_id = ?", commentID, userID).First(&vote).Error
	if err != nil {
		return nil, err
	}
	return &vote, nil
}

// CountByCommentIDs 批量统计每条评论的赞/踩数
func (r *VoteRepository) CountByCommentIDs(commentIDs []int64) (map[int64]VoteCounts, error) {
	counts := make(map[int64]VoteCounts)
	if len(commentIDs) == 0 {
		return counts, nil
	}

	var rows []struct {
		CommentID int64
		VoteType  string
		Cnt       int64
	}
	err := r.db.Model(&model.CommentVote{}).
		Select("comment_id, vote_type, COUNT(*) AS cnt").
		Where("comment_id IN ?", commentIDs).
		Group("comment_id, vote_type").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	for _, row := range rows {
		c := counts[row.CommentID]
		if row.VoteType == model.VoteLike {
			c.Like = row.Cnt
		} else {
			c.Dislike = row.Cnt
		}
		counts[row.CommentID] = c
	}

	return counts, nil
}

// UserVotes 批量获取用户对一组评论的投票状态
func (r *VoteRepository) UserVotes(userID int64, commentIDs []int64) (map[int64]string, error) {
	votes := make(map[int64]string)
	if len(commentIDs) == 0 {
		return votes, nil
	}

	var rows []*model.CommentVote
	err := r.db.Where("user_id = ? AND comment_id IN ?", userID, commentIDs).Find(&rows).Error
	if err != nil {
		return nil, err
	}

	for _, v := range rows {
		votes[v.CommentID] = v.Type
	}

	return votes, nil
}

// CountByType 按类型统计全部投票数
func (r *VoteRepository) CountByType(voteType string) (int64, error) {
	var count int64
	err := r.db.Model(&model.CommentVote{}).Where("vote_type = ?", voteType).Count(&count).Error
	return count, err
}
