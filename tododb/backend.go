////////////////////////////////////////////////////////////////////////////////
// Copyright © 2022 xx foundation                                             //
//                                                                            //
// Use of this source code is governed by a license that can be found in the  //
// LICENSE file.                                                              //
////////////////////////////////////////////////////////////////////////////////

// Package tododb adapts an event-driven browser storage engine to a blocking,
// request/await style API behind a backend interface so that the same session
// code runs against real IndexedDB in a wasm build and against an in-memory
// fake everywhere else.
package tododb

// Entry is a single stored record. Entries are opaque payloads; the only
// field this package cares about is the collection's primary key field, whose
// value must be unique within the collection.
type Entry = map[string]any

// TransactionMode defines the access level of a transaction.
type TransactionMode int

const (
	// TransactionReadOnly allows reads from the scoped collections.
	TransactionReadOnly TransactionMode = iota

	// TransactionReadWrite allows reads and writes on the scoped collections.
	TransactionReadWrite
)

// String returns the mode as it appears on the wire in IndexedDB.
func (m TransactionMode) String() string {
	if m == TransactionReadWrite {
		return "readwrite"
	}
	return "readonly"
}

// CollectionOptions configures a collection created during a version upgrade.
type CollectionOptions struct {
	// KeyPath names the primary key field of every Entry in the collection.
	KeyPath string

	// AutoIncrement requests engine-generated keys instead of KeyPath values.
	AutoIncrement bool
}

// IndexOptions configures a secondary lookup index on a collection.
type IndexOptions struct {
	Unique bool
}

// UpgradeFunc performs one-time schema initialization when a database is
// opened at a version greater than its stored version. It runs before the
// open request settles and is the only place [Database.CreateCollection] may
// be called. Returning an error rejects the open request.
type UpgradeFunc func(db Database, oldVersion, newVersion uint) error

// Backend is the entry point to a storage engine. It is always an explicit
// dependency; the core carries no ambient default. The real engine lives in
// the indexedDb package and the test fake in the mockdb package.
type Backend interface {
	// Open opens the named database, creating it at the given version if it
	// does not exist. The returned request resolves to a [Database]. The
	// upgrade callback may be nil when no schema initialization is needed.
	Open(name string, version uint, upgrade UpgradeFunc) (*Request, error)
}

// Database is an open database handle.
type Database interface {
	// Transaction begins a transaction scoped to the named collections.
	Transaction(mode TransactionMode, collectionNames ...string) (Transaction, error)

	// CreateCollection creates a collection. Valid only inside an
	// [UpgradeFunc]; backends reject it at any other time.
	CreateCollection(name string, opts CollectionOptions) (CollectionSchema, error)

	// Close releases the handle. Operations on the database after Close fail.
	Close() error
}

// CollectionSchema is the creation-time view of a collection, available only
// inside an [UpgradeFunc]. Schema is fixed once the upgrade completes.
type CollectionSchema interface {
	CreateIndex(name, keyPath string, opts IndexOptions) error
}

// Transaction is an active transaction scope.
type Transaction interface {
	Collection(name string) (Collection, error)
}

// Collection is a named set of entries reachable through a transaction.
type Collection interface {
	// Add inserts one entry. The request resolves to the stored primary key
	// and rejects if the key already exists in the collection.
	Add(value Entry) (*Request, error)

	// GetAll reads the full collection contents. The request resolves to
	// []Entry.
	GetAll() (*Request, error)
}
