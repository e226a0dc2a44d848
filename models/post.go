package models

import "time"

// Post statuses. Only publish and private ever count towards an author.
const (
	PostStatusPublish = "publish"
	PostStatusPrivate = "private"
	PostStatusDraft   = "draft"
	PostStatusPending = "pending"
	PostStatusTrash   = "trash"
)

// PostTypePost is the only content type counted per author.
const PostTypePost = "post"

// Post represents a content item authored by one Author
// Collection: posts / Table: posts
type Post struct {
	ID          int64     `bson:"_id" json:"id" yaml:"id"`
	AuthorID    int64     `bson:"author_id" json:"author_id" yaml:"author_id"`
	Type        string    `bson:"post_type" json:"post_type" yaml:"post_type"`
	Status      string    `bson:"status" json:"status" yaml:"status"`
	Title       string    `bson:"title" json:"title" yaml:"title"`
	Link        string    `bson:"link" json:"link" yaml:"link"`
	Summary     string    `bson:"summary" json:"summary" yaml:"summary"`
	PublishedAt time.Time `bson:"published_at" json:"published_at" yaml:"published_at"`
}
