package service

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/techzu/social_go_server/internal/model"
	"github.com/techzu/social_go_server/internal/repository"
	"github.com/techzu/social_go_server/internal/testutil"
)

func setupStatsService(t *testing.T) (*StatsService, *gorm.DB, *miniredis.Miniredis, func()) {
	t.Helper()

	db := testutil.SetupTestDB(t)
	mr, err := miniredis.Run()
	require.NoError(t, err)

	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})

	commentRepo := repository.NewCommentRepository(db)
	voteRepo := repository.NewVoteRepository(db)
	service := NewStatsService(commentRepo, voteRepo, rdb)

	cleanup := func() {
		mr.Close()
		testutil.CleanupTestDB(t, db)
	}

	return service, db, mr, cleanup
}

func TestStatsService_GetStats(t *testing.T) {
	service, db, _, cleanup := setupStatsService(t)
	defer cleanup()

	author := testutil.TestUser(t, db)
	voter := testutil.TestUser(t, db)

	parent := testutil.TestComment(t, db, author.ID, "Parent")
	testutil.TestComment(t, db, author.ID, "Top-level 2")
	testutil.TestReply(t, db, author.ID, parent.ID, "Reply")
	testutil.TestComment(t, db, author.ID, "Deleted", testutil.AsDeleted())

	testutil.TestVote(t, db, parent.ID, voter.ID, model.VoteLike)
	testutil.TestVote(t, db, parent.ID, author.ID, model.VoteDislike)

	stats, err := service.GetStats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(4), stats.TotalComments)
	assert.Equal(t, int64(3), stats.TopLevel)
	assert.Equal(t, int64(1), stats.Replies)
	assert.Equal(t, int64(1), stats.Deleted)
	assert.Equal(t, int64(1), stats.TotalLikes)
	assert.Equal(t, int64(1), stats.TotalDislikes)
}

func TestStatsService_GetStats_Cached(t *testing.T) {
	service, db, _, cleanup := setupStatsService(t)
	defer cleanup()

	author := testutil.TestUser(t, db)
	testutil.TestComment(t, db, author.ID, "First")

	stats, err := service.GetStats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(1), stats.TotalComments)

	// New comment within the TTL is not reflected yet
	testutil.TestComment(t, db, author.ID, "Second")

	stats, err = service.GetStats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(1), stats.TotalComments)
}

func TestStatsService_GetStats_CacheExpiry(t *testing.T) {
	service, db, mr, cleanup := setupStatsService(t)
	defer cleanup()

	author := testutil.TestUser(t, db)
	testutil.TestComment(t, db, author.ID, "First")

	_, err := service.GetStats(context.Background())
	require.NoError(t, err)

	testutil.TestComment(t, db, author.ID, "Second")
	mr.FastForward(2 * time.Minute)

	stats, err := service.GetStats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(2), stats.TotalComments)
}

func TestStatsService_GetStats_NoRedis(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.CleanupTestDB(t, db)

	commentRepo := repository.NewCommentRepository(db)
	voteRepo := repository.NewVoteRepository(db)
	service := NewStatsService(commentRepo, voteRepo, nil)

	author := testutil.TestUser(t, db)
	testutil.TestComment(t, db, author.ID, "Only one")

	stats, err := service.GetStats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(1), stats.TotalComments)
}

func TestStatsService_GetStats_Empty(t *testing.T) {
	service, _, _, cleanup := setupStatsService(t)
	defer cleanup()

	stats, err := service.GetStats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(0), stats.TotalComments)
	assert.Equal(t, int64(0), stats.TotalLikes)
}
