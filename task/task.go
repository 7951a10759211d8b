////////////////////////////////////////////////////////////////////////////////
// Copyright © 2022 xx foundation                                             //
//                                                                            //
// Use of this source code is governed by a license that can be found in the  //
// LICENSE file.                                                              //
////////////////////////////////////////////////////////////////////////////////

// Package task stores to-do reminders in a tododb backend.
package task

import (
	"encoding/json"

	"github.com/pkg/errors"

	"gitlab.com/elixxir/tododb-wasm/tododb"
)

// Task is one to-do reminder. The title doubles as the primary key, so two
// tasks with the same title cannot coexist in a collection.
type Task struct {
	TaskTitle string `json:"taskTitle"`
	Hours     int    `json:"hours"`
	Minutes   int    `json:"minutes"`
	Day       int    `json:"day"`
	Month     int    `json:"month"`
	Year      int    `json:"year"`
	Notified  string `json:"notified"`
}

// entry converts the task to the backend's wire form.
func (t Task) entry() (tododb.Entry, error) {
	taskJSON, err := json.Marshal(t)
	if err != nil {
		return nil, errors.Errorf("Unable to marshal Task: %+v", err)
	}
	var entry tododb.Entry
	err = json.Unmarshal(taskJSON, &entry)
	if err != nil {
		return nil, errors.Errorf("Unable to convert Task: %+v", err)
	}
	return entry, nil
}

// taskFromEntry converts a stored entry back into a Task.
func taskFromEntry(entry tododb.Entry) (Task, error) {
	entryJSON, err := json.Marshal(entry)
	if err != nil {
		return Task{}, errors.Errorf("Unable to marshal entry: %+v", err)
	}
	var t Task
	err = json.Unmarshal(entryJSON, &t)
	if err != nil {
		return Task{}, errors.Errorf("Unable to unmarshal entry: %+v", err)
	}
	return t, nil
}
