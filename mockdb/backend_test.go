////////////////////////////////////////////////////////////////////////////////
// Copyright © 2022 xx foundation                                             //
//                                                                            //
// Use of this source code is governed by a license that can be found in the  //
// LICENSE file.                                                              //
////////////////////////////////////////////////////////////////////////////////

package mockdb

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"gitlab.com/elixxir/tododb-wasm/tododb"
)

// openTestDatabase opens the backend at v1, creating the "tasks" collection.
func openTestDatabase(b *Backend, t *testing.T) tododb.Database {
	request, err := b.Open("testDb", 1,
		func(db tododb.Database, oldVersion, newVersion uint) error {
			_, err := db.CreateCollection(
				"tasks", tododb.CollectionOptions{KeyPath: "id"})
			return err
		})
	if err != nil {
		t.Fatalf("Failed to open database: %+v", err)
	}
	result, err := tododb.SendRequest(request)
	if err != nil {
		t.Fatalf("Open request failed: %+v", err)
	}
	return result.(tododb.Database)
}

// taskCollection acquires the "tasks" collection in a readwrite transaction.
func taskCollection(db tododb.Database, t *testing.T) tododb.Collection {
	txn, err := db.Transaction(tododb.TransactionReadWrite, "tasks")
	if err != nil {
		t.Fatalf("Failed to create transaction: %+v", err)
	}
	coll, err := txn.Collection("tasks")
	if err != nil {
		t.Fatalf("Failed to get collection: %+v", err)
	}
	return coll
}

// Tests that the upgrade callback fires only on the first open of a given
// backend instance and never again at the same version.
func TestBackend_Open_UpgradeOnce(t *testing.T) {
	backend := NewBackend(Config{KeyPath: "id"})

	upgrades := 0
	open := func() {
		request, err := backend.Open("testDb", 1,
			func(db tododb.Database, oldVersion, newVersion uint) error {
				upgrades++
				if oldVersion != 0 || newVersion != 1 {
					t.Errorf("Unexpected versions.\nexpected: 0 -> 1"+
						"\nreceived: %d -> %d", oldVersion, newVersion)
				}
				_, err := db.CreateCollection(
					"tasks", tododb.CollectionOptions{KeyPath: "id"})
				return err
			})
		require.NoError(t, err)
		_, err = tododb.SendRequest(request)
		require.NoError(t, err)
	}

	open()
	open()

	if upgrades != 1 {
		t.Errorf("Unexpected upgrade count.\nexpected: %d\nreceived: %d",
			1, upgrades)
	}
}

// Error path: an open configured to fail rejects its request with an error
// naming the operation.
func TestBackend_Open_Failure(t *testing.T) {
	backend := NewBackend(Config{KeyPath: "id", FailOpen: true})

	request, err := backend.Open("testDb", 1, nil)
	require.NoError(t, err)

	_, err = tododb.SendRequest(request)
	if err == nil || !strings.Contains(err.Error(), "open") {
		t.Errorf("Did not get expected error for failing open: %+v", err)
	}
}

// Tests that a successful add resolves to the entry's primary key value.
func TestCollection_Add(t *testing.T) {
	backend := NewBackend(Config{KeyPath: "id"})
	coll := taskCollection(openTestDatabase(backend, t), t)

	request, err := coll.Add(tododb.Entry{"id": "a", "n": 1})
	require.NoError(t, err)

	key, err := tododb.SendRequest(request)
	require.NoError(t, err)
	require.Equal(t, "a", key)
}

// Tests that an add configured to fail still appends the entry to the shared
// sequence before rejecting. The mock deliberately models an engine that
// committed the write but reported an error to the client.
func TestCollection_Add_AppendsOnFailure(t *testing.T) {
	backend := NewBackend(Config{KeyPath: "id", FailAdd: true})
	coll := taskCollection(openTestDatabase(backend, t), t)

	request, err := coll.Add(tododb.Entry{"id": "a"})
	require.NoError(t, err)

	_, err = tododb.SendRequest(request)
	if err == nil || !strings.Contains(err.Error(), "add") {
		t.Fatalf("Did not get expected error for failing add: %+v", err)
	}

	require.Len(t, backend.Entries(), 1)
}

// Tests that GetAll resolves to a snapshot of the sequence at call time:
// entries added afterward do not appear in an earlier result.
func TestCollection_GetAll_Snapshot(t *testing.T) {
	backend := NewBackend(Config{KeyPath: "id"})
	coll := taskCollection(openTestDatabase(backend, t), t)

	_, err := coll.Add(tododb.Entry{"id": "a"})
	require.NoError(t, err)

	getRequest, err := coll.GetAll()
	require.NoError(t, err)

	_, err = coll.Add(tododb.Entry{"id": "b"})
	require.NoError(t, err)

	result, err := tododb.SendRequest(getRequest)
	require.NoError(t, err)
	require.Len(t, result.([]tododb.Entry), 1)
}

// Error path: a getAll configured to fail rejects with an error naming the
// operation.
func TestCollection_GetAll_Failure(t *testing.T) {
	backend := NewBackend(Config{KeyPath: "id", FailGetAll: true})
	coll := taskCollection(openTestDatabase(backend, t), t)

	request, err := coll.GetAll()
	require.NoError(t, err)

	_, err = tododb.SendRequest(request)
	if err == nil || !strings.Contains(err.Error(), "getAll") {
		t.Errorf("Did not get expected error for failing getAll: %+v", err)
	}
}

// Error path: collections can only be created during an upgrade.
func TestDatabase_CreateCollection_OutsideUpgrade(t *testing.T) {
	backend := NewBackend(Config{KeyPath: "id"})
	db := openTestDatabase(backend, t)

	_, err := db.CreateCollection(
		"late", tododb.CollectionOptions{KeyPath: "id"})
	if err == nil {
		t.Error("Creating a collection outside an upgrade did not error")
	}
}

// Error path: transactions reject unknown collections and collections outside
// their scope.
func TestTransaction_UnknownCollection(t *testing.T) {
	backend := NewBackend(Config{KeyPath: "id"})
	db := openTestDatabase(backend, t)

	_, err := db.Transaction(tododb.TransactionReadWrite, "noSuchCollection")
	if err == nil {
		t.Error("Transaction over an unknown collection did not error")
	}

	txn, err := db.Transaction(tododb.TransactionReadWrite, "tasks")
	require.NoError(t, err)
	_, err = txn.Collection("noSuchCollection")
	if err == nil {
		t.Error("Acquiring a collection outside the scope did not error")
	}
}

// Error path: adds require a readwrite transaction.
func TestCollection_Add_ReadOnly(t *testing.T) {
	backend := NewBackend(Config{KeyPath: "id"})
	db := openTestDatabase(backend, t)

	txn, err := db.Transaction(tododb.TransactionReadOnly, "tasks")
	require.NoError(t, err)
	coll, err := txn.Collection("tasks")
	require.NoError(t, err)

	_, err = coll.Add(tododb.Entry{"id": "a"})
	if err == nil {
		t.Error("Adding in a readonly transaction did not error")
	}
}

// Error path: a closed database handle refuses new transactions.
func TestDatabase_Close(t *testing.T) {
	backend := NewBackend(Config{KeyPath: "id"})
	db := openTestDatabase(backend, t)

	require.NoError(t, db.Close())

	_, err := db.Transaction(tododb.TransactionReadWrite, "tasks")
	if err == nil {
		t.Error("Transaction on a closed database did not error")
	}
}
