package redis

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// VoteGuard tracks which voters have already voted on a forum post.
// Key format: vote:<post_id>:<voter_email>. Keys do not expire: one vote per
// voter per post is a permanent rule, not a rate limit.
type VoteGuard struct {
	client *redis.Client
}

// NewVoteGuard creates a VoteGuard wrapping the given Redis client.
func NewVoteGuard(client *redis.Client) *VoteGuard {
	return &VoteGuard{client: client}
}

// MarkVoted records that voterEmail has voted on postID. It returns false
// when a vote by the same voter is already recorded. The SETNX write is the
// only check: two concurrent votes race on one atomic operation, so exactly
// one of them wins.
func (g *VoteGuard) MarkVoted(ctx context.Context, postID, voterEmail string) (bool, error) {
	ok, err := g.client.SetNX(ctx, g.key(postID, voterEmail), "1", 0).Result()
	if err != nil {
		return false, fmt.Errorf("vote mark: %w", err)
	}
	return ok, nil
}

func (g *VoteGuard) key(postID, voterEmail string) string {
	return fmt.Sprintf("vote:%s:%s", postID, voterEmail)
}
