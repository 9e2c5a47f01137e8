package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/rs/zerolog"

	"github.com/fitrack/fitrack-api/internal/core/domain"
	"github.com/fitrack/fitrack-api/internal/core/ports"
)

type memForumRepo struct {
	posts  map[string]*domain.ForumPost
	nextID int
}

func newMemForumRepo() *memForumRepo {
	return &memForumRepo{posts: make(map[string]*domain.ForumPost)}
}

func (r *memForumRepo) Create(_ context.Context, post *domain.ForumPost) (*domain.ForumPost, error) {
	r.nextID++
	p := *post
	p.ID = fmt.Sprintf("post-%d", r.nextID)
	r.posts[p.ID] = &p
	return &p, nil
}

func (r *memForumRepo) FindByID(_ context.Context, id string) (*domain.ForumPost, error) {
	p, ok := r.posts[id]
	if !ok {
		return nil, domain.ErrPostNotFound
	}
	return p, nil
}

func (r *memForumRepo) List(_ context.Context, filter ports.ListPostsFilter) ([]*domain.ForumPost, int64, error) {
	out := make([]*domain.ForumPost, 0, len(r.posts))
	for _, p := range r.posts {
		out = append(out, p)
	}
	return out, int64(len(out)), nil
}

func (r *memForumRepo) IncrementVote(_ context.Context, id, direction string) error {
	p, ok := r.posts[id]
	if !ok {
		return domain.ErrPostNotFound
	}
	switch direction {
	case domain.VoteUp:
		p.UpVotes++
	case domain.VoteDown:
		p.DownVotes++
	}
	return nil
}

// memVoteGuard mimics the redis SETNX semantics: one atomic set-if-absent
// under a lock, returning whether the key was newly written.
type memVoteGuard struct {
	mu    sync.Mutex
	voted map[string]bool
}

func newMemVoteGuard() *memVoteGuard {
	return &memVoteGuard{voted: make(map[string]bool)}
}

func (g *memVoteGuard) MarkVoted(_ context.Context, postID, voterEmail string) (bool, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	key := postID + ":" + voterEmail
	if g.voted[key] {
		return false, nil
	}
	g.voted[key] = true
	return true, nil
}

func newForumFixture(t *testing.T) (*ForumService, *memForumRepo) {
	t.Helper()
	repo := newMemForumRepo()
	return NewForumService(repo, newMemVoteGuard(), zerolog.Nop()), repo
}

func createPost(t *testing.T, svc *ForumService) *domain.ForumPost {
	t.Helper()
	post, err := svc.CreatePost(context.Background(), ports.CreatePostInput{
		Title:       "Leg day tips",
		Content:     "Warm up first.",
		AuthorEmail: "trainer@example.com",
		AuthorRole:  domain.RoleTrainer,
	})
	if err != nil {
		t.Fatalf("creating post: %v", err)
	}
	return post
}

func TestCreatePostCapturesAuthorRole(t *testing.T) {
	svc, _ := newForumFixture(t)
	post := createPost(t, svc)

	if post.AuthorRole != domain.RoleTrainer {
		t.Fatalf("expected trainer badge, got %q", post.AuthorRole)
	}
}

func TestVote(t *testing.T) {
	svc, repo := newForumFixture(t)
	post := createPost(t, svc)

	if err := svc.Vote(context.Background(), post.ID, "member@example.com", domain.VoteUp); err != nil {
		t.Fatalf("vote: %v", err)
	}
	if got := repo.posts[post.ID].UpVotes; got != 1 {
		t.Fatalf("expected 1 up vote, got %d", got)
	}
}

func TestVoteTwiceRejected(t *testing.T) {
	svc, repo := newForumFixture(t)
	post := createPost(t, svc)

	if err := svc.Vote(context.Background(), post.ID, "member@example.com", domain.VoteUp); err != nil {
		t.Fatalf("first vote: %v", err)
	}
	// A second vote in either direction is rejected.
	if err := svc.Vote(context.Background(), post.ID, "member@example.com", domain.VoteDown); !errors.Is(err, domain.ErrAlreadyVoted) {
		t.Fatalf("expected ErrAlreadyVoted, got %v", err)
	}
	if got := repo.posts[post.ID].DownVotes; got != 0 {
		t.Fatalf("rejected vote must not move the counter, got %d down votes", got)
	}
}

func TestVoteDifferentVotersCount(t *testing.T) {
	svc, repo := newForumFixture(t)
	post := createPost(t, svc)

	for _, voter := range []string{"a@example.com", "b@example.com", "c@example.com"} {
		if err := svc.Vote(context.Background(), post.ID, voter, domain.VoteUp); err != nil {
			t.Fatalf("vote by %s: %v", voter, err)
		}
	}
	if got := repo.posts[post.ID].UpVotes; got != 3 {
		t.Fatalf("expected 3 up votes, got %d", got)
	}
}

func TestVoteConcurrentSameVoterCountsOnce(t *testing.T) {
	svc, repo := newForumFixture(t)
	post := createPost(t, svc)

	const attempts = 8
	errs := make(chan error, attempts)
	var wg sync.WaitGroup
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs <- svc.Vote(context.Background(), post.ID, "member@example.com", domain.VoteUp)
		}()
	}
	wg.Wait()
	close(errs)

	var accepted, rejected int
	for err := range errs {
		switch {
		case err == nil:
			accepted++
		case errors.Is(err, domain.ErrAlreadyVoted):
			rejected++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if accepted != 1 || rejected != attempts-1 {
		t.Fatalf("expected exactly one accepted vote, got %d accepted / %d rejected", accepted, rejected)
	}
	if got := repo.posts[post.ID].UpVotes; got != 1 {
		t.Fatalf("expected 1 up vote, got %d", got)
	}
}

func TestVoteValidatesDirection(t *testing.T) {
	svc, _ := newForumFixture(t)
	post := createPost(t, svc)

	if err := svc.Vote(context.Background(), post.ID, "member@example.com", "sideways"); !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestVoteUnknownPost(t *testing.T) {
	svc, _ := newForumFixture(t)

	if err := svc.Vote(context.Background(), "missing", "member@example.com", domain.VoteUp); !errors.Is(err, domain.ErrPostNotFound) {
		t.Fatalf("expected ErrPostNotFound, got %v", err)
	}
}
