// Copyright 2026 Nexusgraph Project
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package badger

import (
	"encoding/binary"

	"github.com/dgraph-io/badger/v4"

	"github.com/nexusgraph/hyperplan/core"
	"github.com/nexusgraph/hyperplan/hypergraph"
)

// Store implements hypergraph.Hypergraph on top of a Backend, indexing
// atoms by handle, by type, and by incoming-link membership so that
// IncomingSize, IncomingFiltered, CountOfType, and EnumerateOfType are all
// answered by prefix scans rather than a full table scan.
type Store struct {
	backend *Backend
}

var _ hypergraph.Hypergraph = (*Store)(nil)

// NewStore wraps backend as a hypergraph.Hypergraph.
func NewStore(backend *Backend) *Store {
	return &Store{backend: backend}
}

// Close closes the underlying backend.
func (s *Store) Close() error {
	return s.backend.Close()
}

// AddAtom inserts atom and maintains its type and incoming-set indexes,
// returning its content-addressed handle. Inserting the same atom twice
// is a no-op that returns the same handle both times.
func (s *Store) AddAtom(a core.Atom) (core.Handle, error) {
	h := a.Handle()

	err := s.backend.WithTx(func(tx *badger.Txn) error {
		key := makeAtomKey(h)
		if _, err := tx.Get(key); err == nil {
			return nil // already present
		} else if err != badger.ErrKeyNotFound {
			return err
		}

		if err := tx.Set(key, MarshalAtom(a)); err != nil {
			return err
		}
		if err := tx.Set(makeTypeIndexKey(a.Type, h), nil); err != nil {
			return err
		}
		for _, child := range a.Outgoing {
			if err := tx.Set(makeIncomingKey(child, a.Type, h), nil); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)

	return h, err
}

// GetAtom retrieves the atom stored at h.
func (s *Store) GetAtom(h core.Handle) (core.Atom, error) {
	var a core.Atom
	err := s.backend.WithTx(func(tx *badger.Txn) error {
		item, err := tx.Get(makeAtomKey(h))
		if err != nil {
			if err == badger.ErrKeyNotFound {
				return ErrNotFound
			}
			return err
		}
		return item.Value(func(val []byte) error {
			var err error
			a, err = UnmarshalAtom(val)
			return err
		})
	}, false)
	return a, err
}

// TypeOf implements hypergraph.Hypergraph.
func (s *Store) TypeOf(h core.Handle) core.Type {
	a, err := s.GetAtom(h)
	if err != nil {
		return core.TypeInvalid
	}
	return a.Type
}

// Outgoing implements hypergraph.Hypergraph.
func (s *Store) Outgoing(h core.Handle) []core.Handle {
	a, err := s.GetAtom(h)
	if err != nil {
		return nil
	}
	return a.Outgoing
}

// IncomingSize implements hypergraph.Hypergraph.
func (s *Store) IncomingSize(h core.Handle) int {
	count := 0
	_ = s.backend.WithTx(func(tx *badger.Txn) error {
		prefix := makePartialIncomingKey(h)
		opts := badger.DefaultIteratorOptions
		opts.Prefix = prefix
		opts.PrefetchValues = false
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			count++
		}
		return nil
	}, false)
	return count
}

// IncomingFiltered implements hypergraph.Hypergraph.
func (s *Store) IncomingFiltered(h core.Handle, t core.Type) []core.Handle {
	var out []core.Handle
	_ = s.backend.WithTx(func(tx *badger.Txn) error {
		prefix := makePartialIncomingFilteredKey(h, t)
		opts := badger.DefaultIteratorOptions
		opts.Prefix = prefix
		opts.PrefetchValues = false
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			key := iter.Item().Key()
			link := linkHandleFromIncomingKey(key)
			out = append(out, link)
		}
		return nil
	}, false)
	return out
}

// CountOfType implements hypergraph.Hypergraph.
func (s *Store) CountOfType(t core.Type) int {
	count := 0
	_ = s.backend.WithTx(func(tx *badger.Txn) error {
		prefix := makePartialTypeIndexKey(t)
		opts := badger.DefaultIteratorOptions
		opts.Prefix = prefix
		opts.PrefetchValues = false
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			count++
		}
		return nil
	}, false)
	return count
}

// EnumerateOfType implements hypergraph.Hypergraph. Store has no type
// hierarchy, so subclasses is ignored.
func (s *Store) EnumerateOfType(t core.Type, subclasses bool) []core.Handle {
	var out []core.Handle
	prefixLen := len(typeIndexPrefix) + 1 + 2
	_ = s.backend.WithTx(func(tx *badger.Txn) error {
		prefix := makePartialTypeIndexKey(t)
		opts := badger.DefaultIteratorOptions
		opts.Prefix = prefix
		opts.PrefetchValues = false
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			key := iter.Item().Key()
			out = append(out, handleFromSuffix(key, prefixLen))
		}
		return nil
	}, false)
	return out
}

// linkHandleFromIncomingKey extracts the trailing link handle from an
// incoming-index key of the form prefix:child:linkType:link.
func linkHandleFromIncomingKey(key []byte) core.Handle {
	return handleFromSuffix(key, len(key)-8)
}

func handleFromSuffix(key []byte, offset int) core.Handle {
	return core.Handle(binary.BigEndian.Uint64(key[offset : offset+8]))
}
