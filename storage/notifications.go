////////////////////////////////////////////////////////////////////////////////
// Copyright © 2022 xx foundation                                             //
//                                                                            //
// Use of this source code is governed by a license that can be found in the  //
// LICENSE file.                                                              //
////////////////////////////////////////////////////////////////////////////////

//go:build js && wasm

package storage

// notificationsKey is where the page's notification preference lives in local
// storage. It remembers the user's choice across visits so the page does not
// re-prompt for Notification permission on every load.
const notificationsKey = "notificationsEnabled"

// NotificationsEnabled returns whether the user enabled due-date
// notifications. Defaults to false when no choice has been recorded.
func NotificationsEnabled() bool {
	value, err := GetLocalStorage().GetItem(notificationsKey)
	if err != nil {
		return false
	}
	return value == "true"
}

// SetNotificationsEnabled records the user's notification choice.
func SetNotificationsEnabled(enabled bool) {
	if enabled {
		GetLocalStorage().SetItem(notificationsKey, "true")
	} else {
		GetLocalStorage().SetItem(notificationsKey, "false")
	}
}
