package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/techzu/social_go_server/internal/model"
	"github.com/techzu/social_go_server/internal/model/dto"
	"github.com/techzu/social_go_server/internal/repository"
)

const (
	statsCacheKey = "comment:stats"
	statsCacheTTL = time.Minute
)

type StatsService struct {
	commentRepo *repository.CommentRepository
	voteRepo    *repository.VoteRepository
	rdb         *redis.Client
}

func NewStatsService(
	commentRepo *repository.CommentRepository,
	voteRepo *repository.VoteRepository,
	rdb *redis.Client,
) *StatsService {
	return &StatsService{
		commentRepo: commentRepo,
		voteRepo:    voteRepo,
		rdb:         rdb,
	}
}

// GetStats 获取评论统计，结果在 Redis 缓存一分钟
func (s *StatsService) GetStats(ctx context.Context) (*dto.CommentStats, error) {
	if s.rdb != nil {
		if data, err := s.rdb.Get(ctx, statsCacheKey).Bytes(); err == nil {
			var stats dto.CommentStats
			if json.Unmarshal(data, &stats) == nil {
				return &stats, nil
			}
		}
	}

	total, topLevel, deleted, err := s.commentRepo.CountAll()
	if err != nil {
		return nil, err
	}

	likes, err := s.voteRepo.CountByType(model.VoteLike)
	if err != nil {
		return nil, err
	}

	dislikes, err := s.voteRepo.CountByType(model.VoteDislike)
	if err != nil {
		return nil, err
	}

	stats := &dto.CommentStats{
		TotalComments: total,
		TopLevel:      topLevel,
		Replies:       total - topLevel,
		Deleted:       deleted,
		TotalLikes:    likes,
		TotalDislikes: dislikes,
	}

	if s.rdb != nil {
		if data, err := json.Marshal(stats); err == nil {
			s.rdb.Set(ctx, statsCacheKey, data, statsCacheTTL)
		}
	}

	return stats, nil
}
