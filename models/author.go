package models

import "time"

// Author is a content-creating user with a public profile.
// Collection: authors / Table: authors
type Author struct {
	ID           int64     `bson:"_id" json:"id" yaml:"id"`
	Login        string    `bson:"login" json:"login" yaml:"login"`
	Slug         string    `bson:"slug" json:"slug" yaml:"slug"`
	DisplayName  string    `bson:"display_name" json:"display_name" yaml:"display_name"`
	Email        string    `bson:"email" json:"email" yaml:"email"`
	RegisteredAt time.Time `bson:"registered_at" json:"registered_at" yaml:"registered_at"`
}
