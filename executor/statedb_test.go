// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor_test

import (
	"testing"

	dbm "github.com/33cn/deershooter/common/db"
	"github.com/33cn/deershooter/executor"
	"github.com/33cn/deershooter/types"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStateDbForTest(t *testing.T) (*executor.StateDB, dbm.DB) {
	db, err := dbm.NewDB("statedb", dbm.MemDBBackendStr, "", 0)
	require.Nil(t, err)
	return executor.NewStateDB(db), db
}

func TestStateDBGet(t *testing.T) {
	db, _ := newStateDbForTest(t)
	testStateDBGet(t, db)
}

func testStateDBGet(t *testing.T, db dbm.KV) {
	err := db.Set([]byte("k1"), []byte("v1"))
	assert.Nil(t, err)
	v, err := db.Get([]byte("k1"))
	assert.Nil(t, err)
	assert.Equal(t, v, []byte("v1"))

	err = db.Set([]byte("k1"), []byte("v11"))
	assert.Nil(t, err)
	v, err = db.Get([]byte("k1"))
	assert.Nil(t, err)
	assert.Equal(t, v, []byte("v11"))

	_, err = db.Get([]byte("k2"))
	assert.Equal(t, types.ErrNotFound, err)
}

func TestStateDBTxRollback(t *testing.T) {
	db, _ := newStateDbForTest(t)
	db.Begin()
	err := db.Set([]byte("k1"), []byte("v1"))
	assert.Nil(t, err)
	v, err := db.Get([]byte("k1"))
	assert.Nil(t, err)
	assert.Equal(t, v, []byte("v1"))

	db.Rollback()
	v, err = db.Get([]byte("k1"))
	assert.Equal(t, err, types.ErrNotFound)
	assert.Equal(t, v, []byte(nil))
}

func TestStateDBTxCommit(t *testing.T) {
	db, _ := newStateDbForTest(t)
	db.Begin()
	require.Nil(t, db.Set([]byte("k1"), []byte("v1")))
	require.Nil(t, db.Commit())

	db.Begin()
	require.Nil(t, db.Set([]byte("k1"), []byte("v2")))
	require.Nil(t, db.Set([]byte("k2"), []byte("v2")))
	db.Rollback()

	v, err := db.Get([]byte("k1"))
	assert.Nil(t, err)
	assert.Equal(t, []byte("v1"), v)
	_, err = db.Get([]byte("k2"))
	assert.Equal(t, types.ErrNotFound, err)
}

func TestStateDBDeleteAndFlush(t *testing.T) {
	db, mem := newStateDbForTest(t)
	require.Nil(t, db.Set([]byte("k1"), []byte("v1")))
	require.Nil(t, db.Set([]byte("k2"), []byte("v2")))
	require.Nil(t, db.Flush())

	v, err := mem.Get([]byte("k1"))
	require.Nil(t, err)
	assert.Equal(t, []byte("v1"), v)

	// value 为 nil 表示删除
	db.Begin()
	require.Nil(t, db.Set([]byte("k1"), nil))
	_, err = db.Get([]byte("k1"))
	assert.Equal(t, types.ErrNotFound, err)
	require.Nil(t, db.Commit())
	_, err = db.Get([]byte("k1"))
	assert.Equal(t, types.ErrNotFound, err)
	// 落盘前数据库里还有
	_, err = mem.Get([]byte("k1"))
	assert.Nil(t, err)

	require.Nil(t, db.Flush())
	_, err = mem.Get([]byte("k1"))
	assert.Equal(t, dbm.ErrNotFoundInDb, err)
	v, err = db.Get([]byte("k2"))
	assert.Nil(t, err)
	assert.Equal(t, []byte("v2"), v)
}

var errWrite = errors.New("write failed")

// failDB 打开 fail 以后 batch 写入失败
type failDB struct {
	dbm.DB
	fail bool
}

func (f *failDB) NewBatch(sync bool) dbm.Batch {
	return &failBatch{Batch: f.DB.NewBatch(sync), db: f}
}

type failBatch struct {
	dbm.Batch
	db *failDB
}

func (b *failBatch) Write() error {
	if b.db.fail {
		return errWrite
	}
	return b.Batch.Write()
}

func TestStateDBFlushFailed(t *testing.T) {
	mem, err := dbm.NewDB("statedb", dbm.MemDBBackendStr, "", 0)
	require.Nil(t, err)
	fdb := &failDB{DB: mem, fail: true}
	db := executor.NewStateDB(fdb)
	require.Nil(t, db.Set([]byte("k1"), []byte("v1")))

	assert.Equal(t, errWrite, db.Flush())
	// 落盘失败，修改还在内存里
	v, err := db.Get([]byte("k1"))
	require.Nil(t, err)
	assert.Equal(t, []byte("v1"), v)
	_, err = mem.Get([]byte("k1"))
	assert.Equal(t, dbm.ErrNotFoundInDb, err)

	fdb.fail = false
	require.Nil(t, db.Flush())
	v, err = mem.Get([]byte("k1"))
	require.Nil(t, err)
	assert.Equal(t, []byte("v1"), v)
}

func TestLocalDB(t *testing.T) {
	mem, err := dbm.NewDB("localdb", dbm.MemDBBackendStr, "", 0)
	require.Nil(t, err)
	local := executor.NewLocalDB(mem)
	_, err = local.Get([]byte("TxReceipt:a"))
	assert.Equal(t, types.ErrNotFound, err)

	require.Nil(t, local.Set([]byte("TxReceipt:a"), []byte("1")))
	require.Nil(t, local.Set([]byte("TxReceipt:b"), []byte("2")))
	v, err := local.Get([]byte("TxReceipt:a"))
	require.Nil(t, err)
	assert.Equal(t, []byte("1"), v)

	// 没有写入 batch 之前 List 看不到
	_, err = local.List([]byte("TxReceipt:"), 0, dbm.ListASC)
	assert.Equal(t, types.ErrNotFound, err)

	batch := mem.NewBatch(true)
	local.WriteTo(batch)
	require.Nil(t, batch.Write())
	local.ClearCache()
	values, err := local.List([]byte("TxReceipt:"), 0, dbm.ListASC)
	require.Nil(t, err)
	assert.Equal(t, [][]byte{[]byte("1"), []byte("2")}, values)
}
