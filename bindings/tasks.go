////////////////////////////////////////////////////////////////////////////////
// Copyright © 2022 xx foundation                                             //
//                                                                            //
// Use of this source code is governed by a license that can be found in the  //
// LICENSE file.                                                              //
////////////////////////////////////////////////////////////////////////////////

//go:build js && wasm

// Package bindings exposes the task list to Javascript. This is the only
// layer that picks the real IndexedDB backend; everything below it takes the
// backend as an explicit dependency.
package bindings

import (
	"encoding/json"
	"syscall/js"

	jww "github.com/spf13/jwalterweatherman"

	"gitlab.com/elixxir/tododb-wasm/indexedDb"
	"gitlab.com/elixxir/tododb-wasm/storage"
	"gitlab.com/elixxir/tododb-wasm/task"
)

// taskList is the page's task list over the browser's IndexedDB. Each call
// through the bindings opens a fresh storage session.
var taskList = task.NewList(indexedDb.NewBackend())

// AddTask stores one task.
//
// Parameters:
//   - args[0] - JSON of [task.Task] (string).
//   - args[1] - Javascript callback invoked with the stored task title
//     (string) on success.
//   - args[2] - Javascript callback invoked with an error message (string) on
//     failure.
//
// Returns:
//   - Nothing. The outcome is delivered through the callbacks.
func AddTask(_ js.Value, args []js.Value) any {
	taskJSON, onSuccess, onError := args[0].String(), args[1], args[2]

	var t task.Task
	err := json.Unmarshal([]byte(taskJSON), &t)
	if err != nil {
		onError.Invoke(js.ValueOf(err.Error()))
		return nil
	}

	go func() {
		titles, err := taskList.Add(t)
		if err != nil {
			jww.ERROR.Printf("Failed to add task %q: %+v", t.TaskTitle, err)
			onError.Invoke(js.ValueOf(err.Error()))
			return
		}
		onSuccess.Invoke(js.ValueOf(titles[0]))
	}()
	return nil
}

// GetTasks retrieves every stored task, rendered one per line with its title,
// due date, and notification status.
//
// Parameters:
//   - args[0] - Javascript callback invoked with an array of display lines
//     (Array of string) on success.
//   - args[1] - Javascript callback invoked with an error message (string) on
//     failure.
//
// Returns:
//   - Nothing. The outcome is delivered through the callbacks.
func GetTasks(_ js.Value, args []js.Value) any {
	onSuccess, onError := args[0], args[1]

	go func() {
		tasks, err := taskList.All()
		if err != nil {
			jww.ERROR.Printf("Failed to get tasks: %+v", err)
			onError.Invoke(js.ValueOf(err.Error()))
			return
		}

		lines := make([]any, 0, len(tasks))
		for _, t := range tasks {
			lines = append(lines, t.String())
		}
		onSuccess.Invoke(js.ValueOf(lines))
	}()
	return nil
}

// NotificationsEnabled returns the stored notification preference.
//
// Returns:
//   - Whether due-date notifications are enabled (boolean).
func NotificationsEnabled(js.Value, []js.Value) any {
	return js.ValueOf(storage.NotificationsEnabled())
}

// SetNotificationsEnabled records the notification preference.
//
// Parameters:
//   - args[0] - Whether due-date notifications are enabled (boolean).
func SetNotificationsEnabled(_ js.Value, args []js.Value) any {
	storage.SetNotificationsEnabled(args[0].Bool())
	return nil
}
