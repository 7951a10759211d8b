////////////////////////////////////////////////////////////////////////////////
// Copyright © 2022 xx foundation                                             //
//                                                                            //
// Use of this source code is governed by a license that can be found in the  //
// LICENSE file.                                                              //
////////////////////////////////////////////////////////////////////////////////

package tododb

import (
	"github.com/pkg/errors"
	jww "github.com/spf13/jwalterweatherman"
)

// Session binds one open database, one active read-write transaction, and one
// target collection. It is a short-lived handle: callers open a fresh session
// per top-level operation rather than reusing one across independent chains.
// NOTE: A Session is NOT thread safe - it is the responsibility of the caller
// to ensure that its methods are called sequentially.
type Session struct {
	db   Database
	coll Collection
}

// NewSession opens the named database on the given backend, begins a
// read-write transaction scoped to the named collection, and acquires the
// collection handle. The upgrade callback runs only when the database is
// created or its stored version is behind. Open, transaction, and collection
// acquisition failures are returned unchanged; none are retried.
func NewSession(backend Backend, databaseName, collectionName string,
	version uint, upgrade UpgradeFunc) (*Session, error) {
	parentErr := errors.Errorf("failed to open session on %s/%s",
		databaseName, collectionName)

	openRequest, err := backend.Open(databaseName, version, upgrade)
	if err != nil {
		return nil, errors.WithMessagef(parentErr,
			"Unable to open database: %+v", err)
	}
	result, err := SendRequest(openRequest)
	if err != nil {
		return nil, errors.WithMessagef(parentErr,
			"Unable to open database: %+v", err)
	}
	db, ok := result.(Database)
	if !ok {
		return nil, errors.WithMessagef(parentErr,
			"open resolved to %T, not a database", result)
	}

	txn, err := db.Transaction(TransactionReadWrite, collectionName)
	if err != nil {
		return nil, errors.WithMessagef(parentErr,
			"Unable to create Transaction: %+v", err)
	}
	coll, err := txn.Collection(collectionName)
	if err != nil {
		return nil, errors.WithMessagef(parentErr,
			"Unable to get Collection: %+v", err)
	}

	jww.DEBUG.Printf("Opened session on %s/%s", databaseName, collectionName)
	return &Session{db: db, coll: coll}, nil
}

// Add inserts the given entries in order. Every insert request is issued
// before any is awaited; results are awaited and returned in issue order. The
// first failed insert fails the whole call, and inserts already issued are
// left to settle on their own - no atomicity across the batch is provided
// beyond what the backend itself gives.
func (s *Session) Add(entries []Entry) ([]any, error) {
	requests := make([]*Request, 0, len(entries))
	for i, entry := range entries {
		request, err := s.coll.Add(entry)
		if err != nil {
			return nil, errors.Errorf(
				"Unable to Add entry %d of %d: %+v", i, len(entries), err)
		}
		requests = append(requests, request)
	}

	results := make([]any, 0, len(requests))
	for i, request := range requests {
		result, err := SendRequest(request)
		if err != nil {
			return nil, errors.Errorf(
				"Adding entry %d of %d failed: %+v", i, len(requests), err)
		}
		results = append(results, result)
	}
	jww.DEBUG.Printf("Successfully added %d entries", len(results))
	return results, nil
}

// GetAll returns every entry in the session's collection.
func (s *Session) GetAll() ([]Entry, error) {
	parentErr := errors.Errorf("failed to GetAll")

	request, err := s.coll.GetAll()
	if err != nil {
		return nil, errors.WithMessagef(parentErr,
			"Unable to read Collection: %+v", err)
	}
	result, err := SendRequest(request)
	if err != nil {
		return nil, errors.WithMessagef(parentErr,
			"Unable to read Collection: %+v", err)
	}
	entries, ok := result.([]Entry)
	if !ok {
		return nil, errors.WithMessagef(parentErr,
			"read resolved to %T, not entries", result)
	}
	jww.DEBUG.Printf("Got %d entries", len(entries))
	return entries, nil
}

// Close releases the session's database handle.
func (s *Session) Close() error {
	return s.db.Close()
}
