////////////////////////////////////////////////////////////////////////////////
// Copyright © 2022 xx foundation                                             //
//                                                                            //
// Use of this source code is governed by a license that can be found in the  //
// LICENSE file.                                                              //
////////////////////////////////////////////////////////////////////////////////

package task

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/require"

	"gitlab.com/elixxir/tododb-wasm/mockdb"
)

// newTestList returns a List over a fresh mock backend with the given
// failure toggles.
func newTestList(cfg mockdb.Config) (*List, *mockdb.Backend) {
	cfg.KeyPath = KeyPath
	backend := mockdb.NewBackend(cfg)
	return NewList(backend), backend
}

// End-to-end happy path: storing a task reports its title back and the full
// list returns the task unchanged.
func TestList_AddAll(t *testing.T) {
	list, _ := newTestList(mockdb.Config{})

	walkDog := Task{
		TaskTitle: "Walk dog #R",
		Hours:     19,
		Minutes:   30,
		Day:       24,
		Month:     11,
		Year:      2013,
		Notified:  "no",
	}

	titles, err := list.Add(walkDog)
	if err != nil {
		t.Fatalf("Failed to add task: %+v", err)
	}
	if !reflect.DeepEqual(titles, []string{"Walk dog #R"}) {
		t.Errorf("Unexpected add result.\nexpected: %v\nreceived: %v",
			[]string{"Walk dog #R"}, titles)
	}

	tasks, err := list.All()
	if err != nil {
		t.Fatalf("Failed to get tasks: %+v", err)
	}
	if !reflect.DeepEqual(tasks, []Task{walkDog}) {
		t.Errorf("Unexpected tasks.\nexpected: %v\nreceived: %v",
			[]Task{walkDog}, tasks)
	}
}

// Tests that a brand-new list is empty.
func TestList_All_Empty(t *testing.T) {
	list, _ := newTestList(mockdb.Config{})

	tasks, err := list.All()
	require.NoError(t, err)
	require.NotNil(t, tasks)
	require.Empty(t, tasks)
}

// Tests that tasks are stored and returned in insertion order.
func TestList_Add_Order(t *testing.T) {
	list, _ := newTestList(mockdb.Config{})

	batch := []Task{
		{TaskTitle: "first", Notified: "no"},
		{TaskTitle: "second", Notified: "no"},
		{TaskTitle: "third", Notified: "yes"},
	}
	titles, err := list.Add(batch...)
	require.NoError(t, err)
	require.Equal(t, []string{"first", "second", "third"}, titles)

	tasks, err := list.All()
	require.NoError(t, err)
	require.Equal(t, batch, tasks)
}

// Error path: when the backend cannot be opened, both Add and All fail.
func TestList_OpenFailure(t *testing.T) {
	list, backend := newTestList(mockdb.Config{FailOpen: true})

	_, err := list.Add(Task{TaskTitle: "doomed"})
	if err == nil {
		t.Error("Add on a failing backend did not error")
	}
	_, err = list.All()
	if err == nil {
		t.Error("All on a failing backend did not error")
	}
	require.Empty(t, backend.Entries())
}

// Error path: a failing add reports the error while the mock's sequence still
// reflects the write, so a later All sees it.
func TestList_AddFailure(t *testing.T) {
	list, backend := newTestList(mockdb.Config{FailAdd: true})

	_, err := list.Add(Task{TaskTitle: "phantom", Notified: "no"})
	if err == nil {
		t.Fatal("Add on a failing backend did not error")
	}
	require.Len(t, backend.Entries(), 1)

	tasks, err := list.All()
	require.NoError(t, err)
	require.Equal(t, "phantom", tasks[0].TaskTitle)
}

// Error path: a failing getAll does not disturb a prior successful add.
func TestList_AllFailure(t *testing.T) {
	list, _ := newTestList(mockdb.Config{FailGetAll: true})

	titles, err := list.Add(Task{TaskTitle: "kept", Notified: "no"})
	require.NoError(t, err)
	require.Equal(t, []string{"kept"}, titles)

	_, err = list.All()
	if err == nil {
		t.Error("All on a failing backend did not error")
	}
}
