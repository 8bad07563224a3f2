// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package db

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDB(t *testing.T, backend string) DB {
	db, err := NewDB("test", backend, t.TempDir(), 16)
	require.Nil(t, err)
	t.Cleanup(db.Close)
	return db
}

func TestAllBackends(t *testing.T) {
	for _, backend := range []string{LevelDBBackendStr, GoLevelDBBackendStr, MemDBBackendStr, BadgerDBBackendStr} {
		t.Run(backend, func(t *testing.T) {
			testDBGetSet(t, newTestDB(t, backend))
			testDBIterator(t, newTestDB(t, backend))
			testDBBoundary(t, newTestDB(t, backend))
			testDBBatch(t, newTestDB(t, backend))
		})
	}
}

func TestUnknownBackend(t *testing.T) {
	_, err := NewDB("test", "ssdb", t.TempDir(), 16)
	assert.NotNil(t, err)
}

func testDBGetSet(t *testing.T, db DB) {
	_, err := db.Get([]byte("a"))
	assert.Equal(t, ErrNotFoundInDb, err)

	require.Nil(t, db.Set([]byte("a"), []byte("1")))
	require.Nil(t, db.SetSync([]byte("b"), []byte("2")))
	v, err := db.Get([]byte("a"))
	require.Nil(t, err)
	assert.Equal(t, []byte("1"), v)

	require.Nil(t, db.Delete([]byte("a")))
	require.Nil(t, db.DeleteSync([]byte("b")))
	_, err = db.Get([]byte("a"))
	assert.Equal(t, ErrNotFoundInDb, err)
	_, err = db.Get([]byte("b"))
	assert.Equal(t, ErrNotFoundInDb, err)
	assert.NotNil(t, db.Stats())
}

// 迭代测试
func testDBIterator(t *testing.T, db DB) {
	db.Set([]byte("aaaaaa/1"), []byte("aaaaaa/1"))
	db.Set([]byte("my_key/1"), []byte("my_key/1"))
	db.Set([]byte("my_key/2"), []byte("my_key/2"))
	db.Set([]byte("my_key/3"), []byte("my_key/3"))
	db.Set([]byte("my_key/4"), []byte("my_key/4"))
	db.Set([]byte("my"), []byte("my"))
	db.Set([]byte("my_"), []byte("my_"))
	db.Set([]byte("mz"), []byte("mz"))
	db.Set([]byte("zzzzzz/1"), []byte("zzzzzz/1"))
	b, err := hex.DecodeString("ff")
	require.NoError(t, err)
	db.Set(b, []byte("0xff"))

	it := NewListHelper(db)
	list := it.PrefixScan(nil)
	require.Equal(t, [][]byte{[]byte("aaaaaa/1"), []byte("my"), []byte("my_"), []byte("my_key/1"), []byte("my_key/2"), []byte("my_key/3"), []byte("my_key/4"), []byte("mz"), []byte("zzzzzz/1"), []byte("0xff")}, list)

	list = it.List([]byte("my"), 2, ListASC)
	require.Equal(t, [][]byte{[]byte("my"), []byte("my_")}, list)

	list = it.List([]byte("my"), 100, ListDESC)
	require.Equal(t, [][]byte{[]byte("my_key/4"), []byte("my_key/3"), []byte("my_key/2"), []byte("my_key/1"), []byte("my_"), []byte("my")}, list)

	keys, values := it.ListKV([]byte("my_key/"), 0)
	require.Equal(t, 4, len(keys))
	assert.Equal(t, []byte("my_key/1"), keys[0])
	assert.Equal(t, keys, values)

	assert.Nil(t, it.PrefixScan([]byte("nothing")))
}

// 边界测试，前缀全是 0xff
func testDBBoundary(t *testing.T, db DB) {
	a, _ := hex.DecodeString("ff")
	b, _ := hex.DecodeString("ffff")
	c, _ := hex.DecodeString("ffffff")
	db.Set([]byte("0"), []byte("0"))
	db.Set(a, []byte("0xff"))
	db.Set(b, []byte("0xffff"))
	db.Set(c, []byte("0xffffff"))

	it := NewListHelper(db)
	assert.Equal(t, [][]byte{[]byte("0xff"), []byte("0xffff"), []byte("0xffffff")}, it.List(a, 0, ListASC))
	assert.Equal(t, [][]byte{[]byte("0xffffff"), []byte("0xffff"), []byte("0xff")}, it.List(a, 0, ListDESC))
	assert.Equal(t, [][]byte{[]byte("0xffffff"), []byte("0xffff")}, it.List(b, 0, ListDESC))
}

func testDBBatch(t *testing.T, db DB) {
	db.Set([]byte("k0"), []byte("v0"))
	batch := db.NewBatch(true)
	batch.Set([]byte("k1"), []byte("v1"))
	batch.Set([]byte("k2"), []byte("v2"))
	batch.Delete([]byte("k0"))
	assert.Equal(t, 5, batch.ValueSize())

	// Write 之前不可见
	_, err := db.Get([]byte("k1"))
	assert.Equal(t, ErrNotFoundInDb, err)

	require.Nil(t, batch.Write())
	v, err := db.Get([]byte("k2"))
	require.Nil(t, err)
	assert.Equal(t, []byte("v2"), v)
	_, err = db.Get([]byte("k0"))
	assert.Equal(t, ErrNotFoundInDb, err)

	batch.Reset()
	assert.Equal(t, 0, batch.ValueSize())
}

func TestBytesPrefix(t *testing.T) {
	assert.Equal(t, []byte("mz"), bytesPrefix([]byte("my")))
	assert.Equal(t, []byte{0x02}, bytesPrefix([]byte{0x01, 0xff}))
	assert.Nil(t, bytesPrefix([]byte{0xff, 0xff}))
	assert.Nil(t, bytesPrefix(nil))
}
