////////////////////////////////////////////////////////////////////////////////
// Copyright © 2022 xx foundation                                             //
//                                                                            //
// Use of this source code is governed by a license that can be found in the  //
// LICENSE file.                                                              //
////////////////////////////////////////////////////////////////////////////////

//go:build js && wasm

// Package storage wraps the browser's synchronous window.localStorage for the
// small bits of page state that do not belong in the task database.
package storage

import (
	"os"
	"strings"
	"syscall/js"
)

// localStoragePrefix is prefixed to every keyName saved to local storage by
// LocalStorage. It allows the identification and deletion of keys only
// created by this binary while ignoring keys made by other scripts on the
// same page.
const localStoragePrefix = "tododbWasmStorage/"

// LocalStorage contains the js.Value representation of localStorage.
type LocalStorage struct {
	// The Javascript value containing the localStorage object
	v js.Value

	// The prefix appended to each key name. This is so that all keys created
	// by this structure can be deleted without affecting other keys in local
	// storage.
	prefix string
}

// jsStorage is the global that stores Javascript as window.localStorage.
//
//   - Specification:
//     https://html.spec.whatwg.org/multipage/webstorage.html#dom-localstorage-dev
//   - Documentation:
//     https://developer.mozilla.org/en-US/docs/Web/API/Window/localStorage
var jsStorage = newLocalStorage(localStoragePrefix)

// newLocalStorage creates a new LocalStorage object with the specified prefix.
func newLocalStorage(prefix string) *LocalStorage {
	return &LocalStorage{
		v:      js.Global().Get("localStorage"),
		prefix: prefix,
	}
}

// GetLocalStorage returns Javascript's local storage.
func GetLocalStorage() *LocalStorage {
	return jsStorage
}

// GetItem returns a key's value from the local storage given its name.
// Returns os.ErrNotExist if the key does not exist. Underneath, it calls
// localStorage.getItem().
//
//   - Specification:
//     https://html.spec.whatwg.org/multipage/webstorage.html#dom-storage-getitem-dev
//   - Documentation:
//     https://developer.mozilla.org/en-US/docs/Web/API/Storage/getItem
func (ls *LocalStorage) GetItem(keyName string) (string, error) {
	keyValue := ls.getItem(ls.prefix + keyName)
	if keyValue.IsNull() {
		return "", os.ErrNotExist
	}
	return keyValue.String(), nil
}

// SetItem adds a key's value to local storage given its name. Underneath, it
// calls localStorage.setItem().
//
//   - Specification:
//     https://html.spec.whatwg.org/multipage/webstorage.html#dom-storage-setitem-dev
//   - Documentation:
//     https://developer.mozilla.org/en-US/docs/Web/API/Storage/setItem
func (ls *LocalStorage) SetItem(keyName, keyValue string) {
	ls.setItem(ls.prefix+keyName, keyValue)
}

// RemoveItem removes a key's value from local storage given its name. If
// there is no item with the given key, this function does nothing.
// Underneath, it calls localStorage.removeItem().
//
//   - Specification:
//     https://html.spec.whatwg.org/multipage/webstorage.html#dom-storage-removeitem-dev
//   - Documentation:
//     https://developer.mozilla.org/en-US/docs/Web/API/Storage/removeItem
func (ls *LocalStorage) RemoveItem(keyName string) {
	ls.removeItem(ls.prefix + keyName)
}

// ClearPrefixed removes all keys in local storage created by this binary,
// leaving keys made by other scripts on the same page untouched.
func (ls *LocalStorage) ClearPrefixed() {
	// Get a copy of all key names at once
	keys := ls.keys()

	for i := 0; i < keys.Length(); i++ {
		if v := keys.Index(i); !v.IsNull() {
			keyName := v.String()
			if strings.HasPrefix(keyName, ls.prefix) {
				ls.removeItem(keyName)
			}
		}
	}
}

// Wrappers for Javascript Storage methods and properties.
func (ls *LocalStorage) getItem(keyName string) js.Value  { return ls.v.Call("getItem", keyName) }
func (ls *LocalStorage) setItem(keyName, keyValue string) { ls.v.Call("setItem", keyName, keyValue) }
func (ls *LocalStorage) removeItem(keyName string)        { ls.v.Call("removeItem", keyName) }
func (ls *LocalStorage) keys() js.Value {
	return js.Global().Get("Object").Call("keys", ls.v)
}
