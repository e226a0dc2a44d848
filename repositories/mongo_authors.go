package repositories

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"list-authors/db"
	"list-authors/models"
)

type MongoAuthorRepository struct {
	col      *mongo.Collection
	counters *mongo.Collection
}

func NewMongoAuthorRepository(database *mongo.Database) *MongoAuthorRepository {
	return &MongoAuthorRepository{col: database.Collection(db.AuthorsCollection), counters: database.Collection(db.CountersCollection)}
}

// authorFilter restricts to Include when it is non-nil. An empty $in
// matches no document.
func authorFilter(opt ListAuthorsOptions) bson.M {
	filter := bson.M{}
	if opt.Include != nil {
		filter["_id"] = bson.M{"$in": opt.Include}
	}
	return filter
}

// authorSort is the sort document for opt, ties broken by _id.
func authorSort(opt ListAuthorsOptions) bson.D {
	dir := 1
	if descending(opt.Order) {
		dir = -1
	}
	field := sortField(opt.OrderBy)
	if field == "id" {
		return bson.D{{Key: "_id", Value: dir}}
	}
	return bson.D{{Key: field, Value: dir}, {Key: "_id", Value: 1}}
}

// List returns authors with filters, sort and limit applied
func (r *MongoAuthorRepository) List(ctx context.Context, opt ListAuthorsOptions) ([]models.Author, error) {
	findOpts := options.Find().SetSort(authorSort(opt))
	if opt.Number > 0 {
		findOpts.SetLimit(int64(opt.Number))
	}
	cur, err := r.col.Find(ctx, authorFilter(opt), findOpts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var results []models.Author
	for cur.Next(ctx) {
		var a models.Author
		if err := cur.Decode(&a); err != nil {
			return nil, err
		}
		results = append(results, a)
	}
	if err := cur.Err(); err != nil {
		return nil, err
	}
	return results, nil
}

// FindBySlug returns an author by its slug
func (r *MongoAuthorRepository) FindBySlug(ctx context.Context, slug string) (*models.Author, error) {
	var a models.Author
	if err := r.col.FindOne(ctx, bson.M{"slug": slug}).Decode(&a); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrAuthorNotFound
		}
		return nil, err
	}
	return &a, nil
}

// Upsert replaces the author document. Authors without an id are matched
// by login before a new id is allocated.
func (r *MongoAuthorRepository) Upsert(ctx context.Context, a *models.Author) error {
	prepareAuthor(a)
	switch {
	case a.ID != 0:
		if err := raiseSequence(ctx, r.counters, db.AuthorsCollection, a.ID); err != nil {
			return err
		}
	default:
		var existing struct {
			ID int64 `bson:"_id"`
		}
		err := r.col.FindOne(ctx, authorKeyFilter(a), options.FindOne().SetProjection(bson.M{"_id": 1})).Decode(&existing)
		switch {
		case err == nil:
			a.ID = existing.ID
		case err != mongo.ErrNoDocuments:
			return err
		default:
			id, err := nextSequence(ctx, r.counters, db.AuthorsCollection)
			if err != nil {
				return err
			}
			a.ID = id
		}
	}
	_, err := r.col.ReplaceOne(ctx, bson.M{"_id": a.ID}, a, options.Replace().SetUpsert(true))
	return err
}

// authorKeyFilter matches the stored author with the same login.
func authorKeyFilter(a *models.Author) bson.M {
	return bson.M{"login": a.Login}
}

// nextSequence allocates the next int64 id for name from the counters
// collection.
func nextSequence(ctx context.Context, counters *mongo.Collection, name string) (int64, error) {
	var doc struct {
		Seq int64 `bson:"seq"`
	}
	err := counters.FindOneAndUpdate(ctx,
		bson.M{"_id": name},
		bson.M{"$inc": bson.M{"seq": int64(1)}},
		options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After),
	).Decode(&doc)
	if err != nil {
		return 0, err
	}
	return doc.Seq, nil
}

// sequenceFloor is the counter update that keeps name at or above id.
func sequenceFloor(name string, id int64) (filter, update bson.M) {
	return bson.M{"_id": name}, bson.M{"$max": bson.M{"seq": id}}
}

// raiseSequence records an explicitly written id so nextSequence never
// hands it out again.
func raiseSequence(ctx context.Context, counters *mongo.Collection, name string, id int64) error {
	filter, update := sequenceFloor(name, id)
	_, err := counters.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	return err
}
