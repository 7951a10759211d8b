////////////////////////////////////////////////////////////////////////////////
// Copyright © 2022 xx foundation                                             //
//                                                                            //
// Use of this source code is governed by a license that can be found in the  //
// LICENSE file.                                                              //
////////////////////////////////////////////////////////////////////////////////

//go:build js && wasm

// Package indexedDb implements the tododb backend contract on top of the
// browser's IndexedDB engine.
package indexedDb

import (
	"syscall/js"

	"github.com/hack-pad/go-indexeddb/idb"
	"github.com/pkg/errors"
	jww "github.com/spf13/jwalterweatherman"

	"gitlab.com/elixxir/tododb-wasm/tododb"
)

// backend implements [tododb.Backend] over the global IndexedDB factory.
type backend struct {
	factory *idb.Factory
}

// NewBackend returns a [tododb.Backend] backed by the browser's IndexedDB.
// Bootstrap code passes this in explicitly; the core never reaches for it on
// its own.
func NewBackend() tododb.Backend {
	return &backend{factory: idb.Global()}
}

// Open implements [tododb.Backend.Open]. The upgrade callback is wired into
// the engine's versionchange event, so it runs before the open request
// settles and exactly once per version bump.
func (b *backend) Open(name string, version uint,
	upgrade tododb.UpgradeFunc) (*tododb.Request, error) {
	ctx, cancel := tododb.NewContext()

	openRequest, err := b.factory.Open(ctx, name, version,
		func(db *idb.Database, oldVersion, newVersion uint) error {
			if upgrade == nil {
				return nil
			}
			return upgrade(&database{db: db}, oldVersion, newVersion)
		})
	if err != nil {
		cancel()
		return nil, errors.Errorf("Unable to open database %s: %+v", name, err)
	}

	request := tododb.NewRequest()
	go func() {
		defer cancel()
		db, err := openRequest.Await(ctx)
		if err != nil {
			request.Reject(errors.Errorf(
				"Opening database %s failed: %+v", name, err))
			return
		}
		jww.DEBUG.Printf("Opened database %s", name)
		request.Resolve(tododb.Database(&database{db: db}))
	}()

	return request, nil
}

// database implements [tododb.Database] over an open [idb.Database].
type database struct {
	db *idb.Database
}

func (d *database) Transaction(mode tododb.TransactionMode,
	collectionNames ...string) (tododb.Transaction, error) {
	txnMode := idb.TransactionReadOnly
	if mode == tododb.TransactionReadWrite {
		txnMode = idb.TransactionReadWrite
	}
	txn, err := d.db.Transaction(txnMode, collectionNames[0],
		collectionNames[1:]...)
	if err != nil {
		return nil, errors.Errorf("Unable to create Transaction: %+v", err)
	}
	return &transaction{txn: txn}, nil
}

// CreateCollection is valid only inside an upgrade callback; outside of one
// the engine itself rejects the call.
func (d *database) CreateCollection(name string,
	opts tododb.CollectionOptions) (tododb.CollectionSchema, error) {
	storeOpts := idb.ObjectStoreOptions{
		KeyPath:       js.ValueOf(opts.KeyPath),
		AutoIncrement: opts.AutoIncrement,
	}
	store, err := d.db.CreateObjectStore(name, storeOpts)
	if err != nil {
		return nil, errors.Errorf(
			"Unable to create ObjectStore %s: %+v", name, err)
	}
	return &objectStoreSchema{store: store}, nil
}

func (d *database) Close() error {
	return d.db.Close()
}

// objectStoreSchema implements [tododb.CollectionSchema] for a store created
// during a version upgrade.
type objectStoreSchema struct {
	store *idb.ObjectStore
}

func (s *objectStoreSchema) CreateIndex(name, keyPath string,
	opts tododb.IndexOptions) error {
	_, err := s.store.CreateIndex(
		name, js.ValueOf(keyPath), idb.IndexOptions{Unique: opts.Unique})
	if err != nil {
		return errors.Errorf("Unable to create Index %s: %+v", name, err)
	}
	return nil
}

// transaction implements [tododb.Transaction] over an [idb.Transaction].
type transaction struct {
	txn *idb.Transaction
}

func (t *transaction) Collection(name string) (tododb.Collection, error) {
	store, err := t.txn.ObjectStore(name)
	if err != nil {
		return nil, errors.Errorf("Unable to get ObjectStore: %+v", err)
	}
	return &objectStore{name: name, store: store}, nil
}

// objectStore implements [tododb.Collection] over an [idb.ObjectStore].
type objectStore struct {
	name  string
	store *idb.ObjectStore
}

// Add issues one insert and settles the returned request from the engine's
// success or error event. A duplicate primary key rejects.
func (s *objectStore) Add(value tododb.Entry) (*tododb.Request, error) {
	jsValue, err := entryToJS(value)
	if err != nil {
		return nil, err
	}
	addRequest, err := s.store.Add(jsValue)
	if err != nil {
		return nil, errors.Errorf("Unable to Add: %+v", err)
	}

	request := tododb.NewRequest()
	go func() {
		ctx, cancel := tododb.NewContext()
		defer cancel()
		resultObj, err := addRequest.Request.Await(ctx)
		if err != nil {
			request.Reject(errors.Errorf("Adding value failed: %+v\n%s",
				err, jsToJSON(jsValue)))
			return
		}
		jww.DEBUG.Printf("Successfully added value to %s: %s",
			s.name, jsToJSON(jsValue))
		request.Resolve(jsToGo(resultObj))
	}()
	return request, nil
}

// GetAll reads the full store through a cursor, collecting rows in key order.
func (s *objectStore) GetAll() (*tododb.Request, error) {
	cursorRequest, err := s.store.OpenCursor(idb.CursorNext)
	if err != nil {
		return nil, errors.Errorf("Unable to open Cursor: %+v", err)
	}

	request := tododb.NewRequest()
	go func() {
		ctx, cancel := tododb.NewContext()
		defer cancel()

		entries := make([]tododb.Entry, 0)
		err := cursorRequest.Iter(ctx,
			func(cursor *idb.CursorWithValue) error {
				row, err := cursor.Value()
				if err != nil {
					return err
				}
				entry, err := entryFromJS(row)
				if err != nil {
					return err
				}
				entries = append(entries, entry)
				return nil
			})
		if err != nil {
			request.Reject(errors.Errorf(
				"Unable to read %s: %+v", s.name, err))
			return
		}
		jww.DEBUG.Printf("Got %d entries from %s", len(entries), s.name)
		request.Resolve(entries)
	}()
	return request, nil
}
