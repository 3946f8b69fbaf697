// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ckpt implements a store of snapshots of material points, one per increment
package ckpt

import (
	"bytes"
	"encoding/binary"
	"encoding/gob"
	"errors"
	"time"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosimo/msolid"
	bolt "go.etcd.io/bbolt"
)

// ErrNotFound indicates that there is no snapshot for a given increment
var ErrNotFound = errors.New("ckpt: snapshot not found")

const bucketSnapshots = "snapshots"

// Store holds snapshots in a bbolt database
type Store struct {
	db *bolt.DB
}

// Open opens (or creates) the store at path
func Open(path string) (o *Store, err error) {
	db, err := bolt.Open(path, 0644, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, chk.Err("ckpt: cannot open %q: %v", path, err)
	}
	err = db.Update(func(tx *bolt.Tx) error {
		_, e := tx.CreateBucketIfNotExists([]byte(bucketSnapshots))
		return e
	})
	if err != nil {
		db.Close()
		return nil, err
	}
	return &Store{db: db}, nil
}

// Close closes the store
func (o *Store) Close() error {
	return o.db.Close()
}

// Save saves the snapshot of increment inc, replacing any previous one
func (o *Store) Save(inc int, snap []msolid.State) (err error) {
	if inc < 0 {
		return chk.Err("ckpt: increment must be non-negative. inc = %d is invalid", inc)
	}
	var buf bytes.Buffer
	if err = gob.NewEncoder(&buf).Encode(snap); err != nil {
		return
	}
	return o.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(bucketSnapshots)).Put(marshalInc(inc), buf.Bytes())
	})
}

// Load loads the snapshot of increment inc
func (o *Store) Load(inc int) (snap []msolid.State, err error) {
	err = o.db.View(func(tx *bolt.Tx) error {
		if inc < 0 {
			return ErrNotFound
		}
		v := tx.Bucket([]byte(bucketSnapshots)).Get(marshalInc(inc))
		if v == nil {
			return ErrNotFound
		}
		return gob.NewDecoder(bytes.NewReader(v)).Decode(&snap)
	})
	return
}

// Incs returns all increments with snapshots, in increasing order
func (o *Store) Incs() (incs []int, err error) {
	err = o.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(bucketSnapshots)).ForEach(func(k, v []byte) error {
			incs = append(incs, unmarshalInc(k))
			return nil
		})
	})
	return
}

// Last returns the last increment with a snapshot
//  ok -- false if the store is empty
func (o *Store) Last() (inc int, ok bool, err error) {
	err = o.db.View(func(tx *bolt.Tx) error {
		k, _ := tx.Bucket([]byte(bucketSnapshots)).Cursor().Last()
		if k != nil {
			inc, ok = unmarshalInc(k), true
		}
		return nil
	})
	return
}

// Truncate deletes all snapshots after increment inc
func (o *Store) Truncate(inc int) error {
	return o.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bucketSnapshots))
		var keys [][]byte
		c := b.Cursor()
		for k, _ := c.Seek(marshalInc(inc + 1)); k != nil; k, _ = c.Next() {
			keys = append(keys, append([]byte{}, k...))
		}
		for _, k := range keys {
			if err := b.Delete(k); err != nil {
				return err
			}
		}
		return nil
	})
}

func marshalInc(inc int) []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, uint64(inc))
	return b
}

func unmarshalInc(key []byte) int {
	return int(binary.BigEndian.Uint64(key))
}
