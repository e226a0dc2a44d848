package repositories

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"list-authors/db"
	"list-authors/models"
)

type MongoPostRepository struct {
	col      *mongo.Collection
	counters *mongo.Collection
}

func NewMongoPostRepository(database *mongo.Database) *MongoPostRepository {
	return &MongoPostRepository{col: database.Collection(db.PostsCollection), counters: database.Collection(db.CountersCollection)}
}

// visibilityFilter is the Mongo form of models.Viewer.CanSee.
func visibilityFilter(v models.Viewer) bson.M {
	or := []bson.M{{"status": models.PostStatusPublish}}
	switch {
	case v.CanReadPrivate:
		or = append(or, bson.M{"status": models.PostStatusPrivate})
	case v.ID > 0:
		or = append(or, bson.M{"status": models.PostStatusPrivate, "author_id": v.ID})
	}
	return bson.M{"post_type": models.PostTypePost, "$or": or}
}

// countPipeline groups the visible posts by author.
func countPipeline(v models.Viewer) mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$match", Value: visibilityFilter(v)}},
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$author_id"},
			{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
	}
}

// CountByAuthor runs a single $group aggregate over visible posts
func (r *MongoPostRepository) CountByAuthor(ctx context.Context, v models.Viewer) (map[int64]int, error) {
	cur, err := r.col.Aggregate(ctx, countPipeline(v))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	counts := map[int64]int{}
	for cur.Next(ctx) {
		var row struct {
			AuthorID int64 `bson:"_id"`
			Count    int   `bson:"count"`
		}
		if err := cur.Decode(&row); err != nil {
			return nil, err
		}
		counts[row.AuthorID] = row.Count
	}
	if err := cur.Err(); err != nil {
		return nil, err
	}
	return counts, nil
}

// ListVisibleByAuthor returns the author's visible posts, newest first
func (r *MongoPostRepository) ListVisibleByAuthor(ctx context.Context, authorID int64, v models.Viewer, limit int) ([]models.Post, error) {
	filter := visibilityFilter(v)
	filter["author_id"] = authorID

	findOpts := options.Find().SetSort(bson.D{
		{Key: "published_at", Value: -1},
		{Key: "_id", Value: -1},
	})
	if limit > 0 {
		findOpts.SetLimit(int64(limit))
	}
	cur, err := r.col.Find(ctx, filter, findOpts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var results []models.Post
	for cur.Next(ctx) {
		var p models.Post
		if err := cur.Decode(&p); err != nil {
			return nil, err
		}
		results = append(results, p)
	}
	if err := cur.Err(); err != nil {
		return nil, err
	}
	return results, nil
}

// Upsert replaces the post document, allocating an id for new posts
func (r *MongoPostRepository) Upsert(ctx context.Context, p *models.Post) error {
	preparePost(p)
	if p.ID == 0 {
		id, err := nextSequence(ctx, r.counters, db.PostsCollection)
		if err != nil {
			return err
		}
		p.ID = id
	} else if err := raiseSequence(ctx, r.counters, db.PostsCollection, p.ID); err != nil {
		return err
	}
	_, err := r.col.ReplaceOne(ctx, bson.M{"_id": p.ID}, p, options.Replace().SetUpsert(true))
	return err
}

// postKeyFilter identifies a post by (author_id, link), falling back to the
// title for posts without a link.
func postKeyFilter(p *models.Post) bson.M {
	filter := bson.M{"author_id": p.AuthorID, "link": p.Link}
	if p.Link == "" {
		filter["title"] = p.Title
	}
	return filter
}

// UpsertByAuthorAndLink upserts a post uniquely identified by postKeyFilter
func (r *MongoPostRepository) UpsertByAuthorAndLink(ctx context.Context, p *models.Post) error {
	var existing struct {
		ID int64 `bson:"_id"`
	}
	err := r.col.FindOne(ctx,
		postKeyFilter(p),
		options.FindOne().SetProjection(bson.M{"_id": 1}).SetSort(bson.D{{Key: "_id", Value: 1}}),
	).Decode(&existing)
	switch {
	case err == mongo.ErrNoDocuments:
		p.ID = 0
	case err != nil:
		return err
	default:
		p.ID = existing.ID
	}
	return r.Upsert(ctx, p)
}
