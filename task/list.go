////////////////////////////////////////////////////////////////////////////////
// Copyright © 2022 xx foundation                                             //
//                                                                            //
// Use of this source code is governed by a license that can be found in the  //
// LICENSE file.                                                              //
////////////////////////////////////////////////////////////////////////////////

package task

import (
	"github.com/pkg/errors"

	"gitlab.com/elixxir/tododb-wasm/tododb"
)

// List stores tasks in a backend. Every top-level operation opens a fresh
// session, so a List may be kept around for the lifetime of the page while
// each call remains a single independent promise chain.
type List struct {
	backend tododb.Backend
}

// NewList returns a List over the given backend. The backend is always
// explicit; there is no package-level default.
func NewList(backend tododb.Backend) *List {
	return &List{backend: backend}
}

// Add stores the given tasks in order and returns the titles the backend
// reported for them. The first failed insert fails the whole call.
func (l *List) Add(tasks ...Task) ([]string, error) {
	entries := make([]tododb.Entry, 0, len(tasks))
	for _, t := range tasks {
		entry, err := t.entry()
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	session, err := l.openSession()
	if err != nil {
		return nil, err
	}
	defer session.Close()

	keys, err := session.Add(entries)
	if err != nil {
		return nil, err
	}

	titles := make([]string, 0, len(keys))
	for _, key := range keys {
		title, ok := key.(string)
		if !ok {
			return nil, errors.Errorf(
				"backend reported key of type %T, expected string", key)
		}
		titles = append(titles, title)
	}
	return titles, nil
}

// All returns every stored task.
func (l *List) All() ([]Task, error) {
	session, err := l.openSession()
	if err != nil {
		return nil, err
	}
	defer session.Close()

	entries, err := session.GetAll()
	if err != nil {
		return nil, err
	}

	tasks := make([]Task, 0, len(entries))
	for _, entry := range entries {
		t, err := taskFromEntry(entry)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
	return tasks, nil
}

func (l *List) openSession() (*tododb.Session, error) {
	return tododb.NewSession(
		l.backend, DatabaseName, CollectionName, currentVersion, Schema)
}
