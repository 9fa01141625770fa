package service

import (
	"context"
	"testing"

	"news-backend/internal/api/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type likeKey struct {
	newsID int64
	userID int64
}

// fakeLikeRepo mirrors the atomic toggle: the branch is decided by whether a
// like row existed, and the counter tracks the row set exactly.
type fakeLikeRepo struct {
	likes     map[likeKey]bool
	likeCount map[int64]int
}

func newFakeLikeRepo() *fakeLikeRepo {
	return &fakeLikeRepo{
		likes:     make(map[likeKey]bool),
		likeCount: make(map[int64]int),
	}
}

func (f *fakeLikeRepo) Toggle(ctx context.Context, newsID, userID int64) (string, int, error) {
	key := likeKey{newsID: newsID, userID: userID}
	if f.likes[key] {
		delete(f.likes, key)
		if f.likeCount[newsID] > 0 {
			f.likeCount[newsID]--
		}
		return repository.ActionUnliked, f.likeCount[newsID], nil
	}
	f.likes[key] = true
	f.likeCount[newsID]++
	return repository.ActionLiked, f.likeCount[newsID], nil
}

func (f *fakeLikeRepo) Exists(ctx context.Context, userID, newsID int64) (bool, error) {
	return f.likes[likeKey{newsID: newsID, userID: userID}], nil
}

func TestToggleLike_PairReturnsToOriginalCount(t *testing.T) {
	repo := newFakeLikeRepo()
	svc := NewLikeService(repo)
	ctx := context.Background()

	action, count, err := svc.Toggle(ctx, 1, 7)
	require.NoError(t, err)
	assert.Equal(t, repository.ActionLiked, action)
	assert.Equal(t, 1, count)

	liked, err := svc.Check(ctx, 7, 1)
	require.NoError(t, err)
	assert.True(t, liked)

	action, count, err = svc.Toggle(ctx, 1, 7)
	require.NoError(t, err)
	assert.Equal(t, repository.ActionUnliked, action)
	assert.Equal(t, 0, count)

	liked, err = svc.Check(ctx, 7, 1)
	require.NoError(t, err)
	assert.False(t, liked)
}

func TestToggleLike_CountMatchesDistinctUsers(t *testing.T) {
	repo := newFakeLikeRepo()
	svc := NewLikeService(repo)
	ctx := context.Background()

	for _, userID := range []int64{1, 2, 3} {
		_, _, err := svc.Toggle(ctx, 9, userID)
		require.NoError(t, err)
	}
	// One user un-likes; the counter tracks the remaining like rows.
	_, count, err := svc.Toggle(ctx, 9, 2)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
	assert.Equal(t, len(repo.likes), count)
}
