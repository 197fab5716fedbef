// Package store is the persistence boundary for all resources.
//
// Reads are scoped to a set of owners, the acting owner and, if linked,
// their partner. Writes are only ever applied to the acting owner's
// resources.
package store

import (
	"context"

	"github.com/google/uuid"
	"github.com/household-finance/backend/pkg/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Owners is the scope of a request.
type Owners struct {
	Owner  uuid.UUID  // The acting owner
	Linked *uuid.UUID // The owner's partner, if linked
}

// IDs returns the IDs of all owners in the scope.
func (o Owners) IDs() []uuid.UUID {
	ids := []uuid.UUID{o.Owner}
	if o.Linked != nil {
		ids = append(ids, *o.Linked)
	}
	return ids
}

// Store reads and writes resources with a gorm database handle.
type Store struct {
	db *gorm.DB
}

// New returns a Store using db.
func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

func (s *Store) conn(ctx context.Context) *gorm.DB {
	return s.db.WithContext(ctx)
}

// Transaction runs fn with a Store bound to a database transaction.
//
// If fn returns an error, all writes done through the Store passed to fn
// are rolled back.
func (s *Store) Transaction(ctx context.Context, fn func(*Store) error) error {
	return s.conn(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&Store{db: tx})
	})
}

// Owners returns the scope for an owner by looking up the linked partner.
func (s *Store) Owners(ctx context.Context, owner uuid.UUID) (Owners, error) {
	var profile models.Profile

	err := s.conn(ctx).Where(&models.Profile{OwnerID: owner}).Limit(1).Find(&profile).Error
	if err != nil {
		return Owners{}, err
	}

	return Owners{Owner: owner, Linked: profile.LinkedOwnerID}, nil
}

// SetLinkedOwner links the owner to a partner. A nil partner removes the link.
func (s *Store) SetLinkedOwner(ctx context.Context, owner uuid.UUID, linked *uuid.UUID) (models.Profile, error) {
	var profile models.Profile

	err := s.conn(ctx).Where(&models.Profile{OwnerID: owner}).Limit(1).Find(&profile).Error
	if err != nil {
		return models.Profile{}, err
	}

	profile.OwnerID = owner
	profile.LinkedOwnerID = linked

	err = s.conn(ctx).Save(&profile).Error
	if err != nil {
		return models.Profile{}, err
	}

	return profile, nil
}

// list returns all resources of a type in the scope.
func list[T any](db *gorm.DB, owners Owners, order string, preloads ...string) ([]T, error) {
	q := db.Where("owner_id IN ?", owners.IDs()).Order(order)
	for _, p := range preloads {
		q = q.Preload(p)
	}

	// Empty lists marshal to [], not null
	resources := make([]T, 0)
	err := q.Find(&resources).Error
	if err != nil {
		return nil, err
	}

	return resources, nil
}

// get returns a single resource in the scope.
func get[T any](db *gorm.DB, owners Owners, id uuid.UUID, preloads ...string) (T, error) {
	var resource T

	q := db.Where("owner_id IN ?", owners.IDs())
	for _, p := range preloads {
		q = q.Preload(p)
	}

	err := q.First(&resource, "id = ?", id).Error
	return resource, err
}

// getOwned returns a resource that belongs to the acting owner.
//
// Resources of a linked partner can be read, but not changed.
func getOwned[T any](db *gorm.DB, owners Owners, id uuid.UUID) (T, error) {
	return get[T](db, Owners{Owner: owners.Owner}, id)
}

// save writes a resource without touching associations.
func save[T any](db *gorm.DB, resource *T) error {
	return db.Omit(clause.Associations).Save(resource).Error
}

// create inserts a resource without touching associations.
func create[T any](db *gorm.DB, resource *T) error {
	return db.Omit(clause.Associations).Create(resource).Error
}

// exists reports if a resource of type T with the ID exists in the scope.
func exists[T any](db *gorm.DB, owners Owners, id uuid.UUID) (bool, error) {
	var count int64
	err := db.Model(new(T)).Where("owner_id IN ? AND id = ?", owners.IDs(), id).Count(&count).Error
	return count > 0, err
}

// requireReference verifies an optional reference to a resource of type T.
func requireReference[T any](db *gorm.DB, owners Owners, id *uuid.UUID, name string) error {
	if id == nil || *id == uuid.Nil {
		return nil
	}

	ok, err := exists[T](db, owners, *id)
	if err != nil {
		return err
	}

	if !ok {
		return models.NotFoundf("%s with ID %s", name, id)
	}

	return nil
}
