////////////////////////////////////////////////////////////////////////////////
// Copyright © 2022 xx foundation                                             //
//                                                                            //
// Use of this source code is governed by a license that can be found in the  //
// LICENSE file.                                                              //
////////////////////////////////////////////////////////////////////////////////

package task

import (
	jww "github.com/spf13/jwalterweatherman"

	"gitlab.com/elixxir/tododb-wasm/tododb"
)

const (
	// DatabaseName and CollectionName identify where tasks live in the
	// backend. The collection shares the database's name, one store per
	// database.
	DatabaseName   = "toDoList"
	CollectionName = "toDoList"

	// KeyPath is the primary key field of the task collection.
	KeyPath = "taskTitle"

	// currentVersion is the current version of the task database. Used for
	// migration purposes.
	currentVersion uint = 1
)

// dueDateIndexes are the secondary lookup fields of the task collection,
// all non-unique.
var dueDateIndexes = []string{
	"hours", "minutes", "day", "month", "year", "notified"}

// Schema is the upgrade callback for the task database. It creates the task
// collection and its indexes the first time the database is opened.
func Schema(db tododb.Database, oldVersion, newVersion uint) error {
	if oldVersion == newVersion {
		jww.INFO.Printf("Database version for %s is current: v%d",
			DatabaseName, newVersion)
		return nil
	}

	jww.INFO.Printf("Database upgrade required for %s: v%d -> v%d",
		DatabaseName, oldVersion, newVersion)

	if oldVersion == 0 && newVersion >= 1 {
		err := v1Upgrade(db)
		if err != nil {
			return err
		}
		oldVersion = 1
	}

	// if oldVersion == 1 && newVersion >= 2 { v2Upgrade(), oldVersion = 2 }
	return nil
}

// v1Upgrade performs the v0 -> v1 database upgrade.
//
// This can never be changed without permanently breaking backwards
// compatibility.
func v1Upgrade(db tododb.Database) error {
	opts := tododb.CollectionOptions{
		KeyPath:       KeyPath,
		AutoIncrement: false,
	}
	taskStore, err := db.CreateCollection(CollectionName, opts)
	if err != nil {
		return err
	}

	for _, field := range dueDateIndexes {
		err = taskStore.CreateIndex(field, field,
			tododb.IndexOptions{Unique: false})
		if err != nil {
			return err
		}
	}
	return nil
}
