package models

// CapReadPrivatePosts lets a viewer see every private post.
const CapReadPrivatePosts = "read_private_posts"

// Viewer is whoever the current request renders for. The zero value is an
// anonymous visitor.
type Viewer struct {
	ID             int64
	CanReadPrivate bool
}

// CanSee reports whether p is visible to v: published posts always,
// private posts to privileged viewers and to their own author.
func (v Viewer) CanSee(p Post) bool {
	if p.Type != PostTypePost {
		return false
	}
	switch p.Status {
	case PostStatusPublish:
		return true
	case PostStatusPrivate:
		return v.CanReadPrivate || (v.ID > 0 && v.ID == p.AuthorID)
	default:
		return false
	}
}
