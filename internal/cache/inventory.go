package cache

import (
	"context"
	"fmt"
	"time"
)

const (
	FeedKey           = "feed:recent"
	UserListKey       = "users:all"
	PostKeyPrefix     = "post:%d"
	CommentsKeyPrefix = "post:%d:comments"
)

const (
	FeedTTL     = 30 * time.Second
	UserListTTL = 5 * time.Minute
	PostTTL     = 5 * time.Minute
	CommentsTTL = 1 * time.Minute
)

func PostKey(postID uint) string {
	return fmt.Sprintf(PostKeyPrefix, postID)
}

func CommentsKey(postID uint) string {
	return fmt.Sprintf(CommentsKeyPrefix, postID)
}

// InvalidateFeed drops the cached feed. Called on any post mutation.
func InvalidateFeed(ctx context.Context) {
	Delete(ctx, FeedKey)
}

// InvalidatePost drops a single post's cache entries along with the feed,
// since denormalized counters also appear in the feed payload.
func InvalidatePost(ctx context.Context, postID uint) {
	Delete(ctx, PostKey(postID), CommentsKey(postID), FeedKey)
}

// InvalidateUsers drops the cached user directory.
func InvalidateUsers(ctx context.Context) {
	Delete(ctx, UserListKey)
}
