package mongo

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/ghiblihub/catalog-api/internal/core/ports"
)

func TestFilterDocument(t *testing.T) {
	if got := filterDocument(ports.UserFilter{}); len(got) != 0 {
		t.Fatalf("empty filter should match everything, got %v", got)
	}

	name := "david"
	role := int64(3)
	got := filterDocument(ports.UserFilter{Username: &name, RoleID: &role})
	if len(got) != 2 || got["username"] != "david" || got["role_id"] != int64(3) {
		t.Fatalf("unexpected match document: %v", got)
	}
}

func TestUserDocument_ToDomain(t *testing.T) {
	raw, err := bson.Marshal(bson.M{
		"_id": int64(7), "username": "alice", "email": "a@example.com",
		"password": "hash", "role_id": int64(2),
		"role": bson.M{"_id": int64(2), "name": "films"},
	})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var doc userDocument
	if err := bson.Unmarshal(raw, &doc); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	u := doc.toDomain()
	if u.ID != 7 || u.PasswordHash != "hash" || u.RoleName() != "films" {
		t.Fatalf("unexpected user: %+v", u)
	}
}

func TestWithRole_JoinsRolesCollection(t *testing.T) {
	stages := withRole()
	if len(stages) != 2 || stages[0][0].Key != "$lookup" || stages[1][0].Key != "$unwind" {
		t.Fatalf("unexpected pipeline: %v", stages)
	}
	lookup := stages[0][0].Value.(bson.M)
	if lookup["from"] != collectionRoles || lookup["localField"] != "role_id" {
		t.Fatalf("unexpected lookup stage: %v", lookup)
	}
}
