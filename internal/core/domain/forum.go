package domain

import "time"

// Vote directions accepted on a forum post.
const (
	VoteUp   = "up"
	VoteDown = "down"
)

// ForumPost is a community post. AuthorRole is captured at posting time so
// the role badge shown next to a post does not change retroactively; it is
// display data only and never consulted for authorization.
type ForumPost struct {
	ID          string    `json:"id" bson:"_id,omitempty"`
	Title       string    `json:"title" bson:"title"`
	Content     string    `json:"content" bson:"content"`
	AuthorEmail string    `json:"author_email" bson:"author_email"`
	AuthorRole  string    `json:"author_role" bson:"author_role"`
	UpVotes     int64     `json:"up_votes" bson:"up_votes"`
	DownVotes   int64     `json:"down_votes" bson:"down_votes"`
	CreatedAt   time.Time `json:"created_at" bson:"created_at"`
}
