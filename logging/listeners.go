////////////////////////////////////////////////////////////////////////////////
// Copyright © 2022 xx foundation                                             //
//                                                                            //
// Use of this source code is governed by a license that can be found in the  //
// LICENSE file.                                                              //
////////////////////////////////////////////////////////////////////////////////

// Package logging routes jwalterweatherman output to the places a wasm binary
// can actually reach: the Javascript console and an in-memory log buffer.
package logging

import (
	"sync"

	jww "github.com/spf13/jwalterweatherman"
)

// registered tracks every log listener handed to jwalterweatherman, keyed on
// a unique ID so individual listeners can be removed again.
var registered = listenerRegistry{listeners: make(map[uint64]jww.LogListener)}

type listenerRegistry struct {
	listeners map[uint64]jww.LogListener
	nextID    uint64
	sync.Mutex
}

// AddLogListener registers the log listener with jwalterweatherman. Returns a
// unique ID that can be used to remove the listener.
func AddLogListener(ll jww.LogListener) uint64 {
	registered.Lock()
	defer registered.Unlock()

	id := registered.nextID
	registered.nextID++
	registered.listeners[id] = ll

	jww.SetLogListeners(registered.slice()...)
	return id
}

// RemoveLogListener unregisters the log listener with the given ID from
// jwalterweatherman.
func RemoveLogListener(id uint64) {
	registered.Lock()
	defer registered.Unlock()

	delete(registered.listeners, id)
	jww.SetLogListeners(registered.slice()...)
}

// slice converts the listener map to the slice form that
// jwalterweatherman.SetLogListeners takes. Callers must hold the lock.
func (r *listenerRegistry) slice() []jww.LogListener {
	listeners := make([]jww.LogListener, 0, len(r.listeners))
	for _, ll := range r.listeners {
		listeners = append(listeners, ll)
	}
	return listeners
}
