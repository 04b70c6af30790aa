package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/ghiblihub/catalog-api/internal/core/domain"
	"github.com/ghiblihub/catalog-api/internal/core/ports"
)

type userDocument struct {
	ID       int64         `bson:"_id"`
	Username string        `bson:"username"`
	Email    string        `bson:"email"`
	Password string        `bson:"password"`
	RoleID   int64         `bson:"role_id"`
	Role     *roleDocument `bson:"role,omitempty"`
}

func (d userDocument) toDomain() *domain.User {
	u := &domain.User{
		ID:           d.ID,
		Username:     d.Username,
		Email:        d.Email,
		PasswordHash: d.Password,
		RoleID:       d.RoleID,
	}
	if d.Role != nil {
		u.Role = d.Role.toDomain()
	}
	return u
}

// UserRepository implements ports.UserRepository on the users collection.
type UserRepository struct {
	db  *mongo.Database
	col *mongo.Collection
}

func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{db: db, col: db.Collection(collectionUsers)}
}

// filterDocument turns the set filter fields into an equality match.
func filterDocument(f ports.UserFilter) bson.M {
	match := bson.M{}
	for k, v := range f.Fields() {
		match[k] = v
	}
	return match
}

// withRole returns the aggregation stages that join each user with its role.
func withRole() mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$lookup", Value: bson.M{
			"from":         collectionRoles,
			"localField":   "role_id",
			"foreignField": "_id",
			"as":           "role",
		}}},
		{{Key: "$unwind", Value: bson.M{"path": "$role", "preserveNullAndEmptyArrays": true}}},
	}
}

func (r *UserRepository) find(ctx context.Context, match bson.M, page ports.Page) ([]*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: match}},
		{{Key: "$sort", Value: bson.D{{Key: "_id", Value: 1}}}},
		{{Key: "$skip", Value: int64(page.Start)}},
		{{Key: "$limit", Value: int64(page.Limit)}},
	}
	pipeline = append(pipeline, withRole()...)

	cur, err := r.col.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var docs []userDocument
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}
	users := make([]*domain.User, 0, len(docs))
	for _, d := range docs {
		users = append(users, d.toDomain())
	}
	return users, nil
}

func (r *UserRepository) List(ctx context.Context, filter ports.UserFilter, page ports.Page) ([]*domain.User, error) {
	users, err := r.find(ctx, filterDocument(filter), page.Normalize())
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

func (r *UserRepository) Get(ctx context.Context, id int64) (*domain.User, error) {
	users, err := r.find(ctx, bson.M{"_id": id}, ports.Page{Limit: 1})
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	if len(users) == 0 {
		return nil, domain.ErrUserNotFound
	}
	return users[0], nil
}

func (r *UserRepository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	if err := r.requireRole(ctx, user.RoleID); err != nil {
		return nil, err
	}

	id, err := nextID(ctx, r.db, collectionUsers)
	if err != nil {
		return nil, err
	}

	insertCtx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()
	_, err = r.col.InsertOne(insertCtx, userDocument{
		ID:       id,
		Username: user.Username,
		Email:    user.Email,
		Password: user.PasswordHash,
		RoleID:   user.RoleID,
	})
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, fmt.Errorf("create user: username or email already registered: %w", domain.ErrConflict)
		}
		return nil, fmt.Errorf("create user: %w", err)
	}
	return r.Get(ctx, id)
}

func (r *UserRepository) Update(ctx context.Context, id int64, changes ports.UserChanges) (*domain.User, error) {
	if changes.RoleID != nil {
		if err := r.requireRole(ctx, *changes.RoleID); err != nil {
			return nil, err
		}
	}

	fields := changes.Fields()
	if len(fields) > 0 {
		updateCtx, cancel := context.WithTimeout(ctx, defaultTimeout)
		defer cancel()
		res, err := r.col.UpdateOne(updateCtx, bson.M{"_id": id}, bson.M{"$set": bson.M(fields)})
		if err != nil {
			if mongo.IsDuplicateKeyError(err) {
				return nil, fmt.Errorf("update user: username or email already registered: %w", domain.ErrConflict)
			}
			return nil, fmt.Errorf("update user: %w", err)
		}
		if res.MatchedCount == 0 {
			return nil, domain.ErrUserNotFound
		}
	}
	return r.Get(ctx, id)
}

func (r *UserRepository) Delete(ctx context.Context, id int64) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

func (r *UserRepository) Count(ctx context.Context) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()
	return r.col.CountDocuments(ctx, bson.M{})
}

// requireRole stands in for the foreign key the relational store enforces.
func (r *UserRepository) requireRole(ctx context.Context, roleID int64) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	err := r.db.Collection(collectionRoles).FindOne(ctx, bson.M{"_id": roleID}).Err()
	if errors.Is(err, mongo.ErrNoDocuments) {
		return domain.ErrRoleNotFound
	}
	return err
}
