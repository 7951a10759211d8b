////////////////////////////////////////////////////////////////////////////////
// Copyright © 2022 xx foundation                                             //
//                                                                            //
// Use of this source code is governed by a license that can be found in the  //
// LICENSE file.                                                              //
////////////////////////////////////////////////////////////////////////////////

// Package mockdb is an in-memory stand-in for the real storage engine. Each
// operation can be forced to fail independently, which makes every error path
// of the session layer reachable from a normal test without a browser.
package mockdb

import (
	"sync"

	"github.com/pkg/errors"

	"gitlab.com/elixxir/tododb-wasm/tododb"
)

// Config fixes a backend's behavior at construction time.
type Config struct {
	// KeyPath names the primary key field used to compute the result
	// reported by a successful Add.
	KeyPath string

	// Failure toggles. Each applies to every call of that operation made
	// through this backend instance.
	FailOpen   bool
	FailAdd    bool
	FailGetAll bool
}

// collectionInfo records a collection created during the upgrade callback.
type collectionInfo struct {
	keyPath string
	indexes map[string]tododb.IndexOptions
}

// Backend implements [tododb.Backend] in memory. All operations performed
// through one instance share a single ordered entry sequence; Add appends to
// it and GetAll snapshots it.
//
// Requests settle synchronously, before the operation returns them. The
// one-settle-per-request contract still holds; only the timing differs from
// the real engine.
type Backend struct {
	cfg Config

	mx          sync.Mutex
	version     uint
	upgrading   bool
	collections map[string]collectionInfo
	entries     []tododb.Entry
}

// NewBackend returns an empty backend with the given fixed configuration.
func NewBackend(cfg Config) *Backend {
	return &Backend{
		cfg:         cfg,
		collections: make(map[string]collectionInfo),
	}
}

// Open implements [tododb.Backend.Open]. The upgrade callback fires at most
// once per backend instance, on the first open that raises the version, and
// never settles the request by itself.
func (b *Backend) Open(name string, version uint,
	upgrade tododb.UpgradeFunc) (*tododb.Request, error) {
	request := tododb.NewRequest()
	if b.cfg.FailOpen {
		request.Reject(errors.Errorf("mock: open %q failed", name))
		return request, nil
	}

	if version > b.version {
		oldVersion := b.version
		if upgrade != nil {
			b.upgrading = true
			err := upgrade(&database{backend: b}, oldVersion, version)
			b.upgrading = false
			if err != nil {
				request.Reject(errors.WithMessagef(err,
					"mock: upgrade of %q to v%d failed", name, version))
				return request, nil
			}
		}
		b.version = version
	}

	request.Resolve(tododb.Database(&database{backend: b}))
	return request, nil
}

// Entries returns a copy of the shared entry sequence for test inspection.
// Note that entries appended by an Add configured to fail are included; the
// mock mutates first and reports second.
func (b *Backend) Entries() []tododb.Entry {
	b.mx.Lock()
	defer b.mx.Unlock()
	return append([]tododb.Entry{}, b.entries...)
}

// database implements [tododb.Database] over its parent backend.
type database struct {
	backend *Backend
	closed  bool
}

func (d *database) Transaction(mode tododb.TransactionMode,
	collectionNames ...string) (tododb.Transaction, error) {
	if d.closed {
		return nil, errors.New("mock: database is closed")
	}
	for _, name := range collectionNames {
		if _, exists := d.backend.collections[name]; !exists {
			return nil, errors.Errorf("mock: collection %q not found", name)
		}
	}
	return &transaction{backend: d.backend, scope: collectionNames,
		mode: mode}, nil
}

func (d *database) CreateCollection(name string,
	opts tododb.CollectionOptions) (tododb.CollectionSchema, error) {
	if !d.backend.upgrading {
		return nil, errors.Errorf(
			"mock: collection %q may only be created during an upgrade", name)
	}
	if _, exists := d.backend.collections[name]; exists {
		return nil, errors.Errorf("mock: collection %q already exists", name)
	}
	info := collectionInfo{
		keyPath: opts.KeyPath,
		indexes: make(map[string]tododb.IndexOptions),
	}
	d.backend.collections[name] = info
	return &schema{info: info}, nil
}

func (d *database) Close() error {
	d.closed = true
	return nil
}

// schema implements [tododb.CollectionSchema] for a newly created collection.
type schema struct {
	info collectionInfo
}

func (s *schema) CreateIndex(name, keyPath string,
	opts tododb.IndexOptions) error {
	if _, exists := s.info.indexes[name]; exists {
		return errors.Errorf("mock: index %q already exists", name)
	}
	s.info.indexes[name] = opts
	return nil
}

// transaction implements [tododb.Transaction] over the backend's shared state.
type transaction struct {
	backend *Backend
	scope   []string
	mode    tododb.TransactionMode
}

func (t *transaction) Collection(name string) (tododb.Collection, error) {
	for _, scoped := range t.scope {
		if scoped == name {
			return &collection{backend: t.backend, mode: t.mode}, nil
		}
	}
	return nil, errors.Errorf("mock: collection %q is not in scope", name)
}

// collection implements [tododb.Collection] over the backend's entry slice.
type collection struct {
	backend *Backend
	mode    tododb.TransactionMode
}

// Add appends the entry to the shared sequence and then settles its request
// per the FailAdd toggle. The append happens either way: a failed Add has
// still mutated the store, simulating an engine that committed the write but
// reported an error to the client.
func (c *collection) Add(value tododb.Entry) (*tododb.Request, error) {
	if c.mode != tododb.TransactionReadWrite {
		return nil, errors.New("mock: add requires a readwrite transaction")
	}

	c.backend.mx.Lock()
	c.backend.entries = append(c.backend.entries, value)
	c.backend.mx.Unlock()

	request := tododb.NewRequest()
	if c.backend.cfg.FailAdd {
		request.Reject(errors.New("mock: add failed"))
	} else {
		request.Resolve(value[c.backend.cfg.KeyPath])
	}
	return request, nil
}

// GetAll settles its request with a snapshot of the sequence at call time,
// per the FailGetAll toggle.
func (c *collection) GetAll() (*tododb.Request, error) {
	request := tododb.NewRequest()
	if c.backend.cfg.FailGetAll {
		request.Reject(errors.New("mock: getAll failed"))
		return request, nil
	}

	request.Resolve(c.backend.Entries())
	return request, nil
}
