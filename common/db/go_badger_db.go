// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package db

import (
	"fmt"
	"path"
	"strconv"

	"github.com/dgraph-io/badger"
	log "github.com/inconshreveable/log15"
)

var blog = log.New("module", "db.badger")

func init() {
	dbCreator := func(name string, dir string, cache int) (DB, error) {
		return NewGoBadgerDB(name, dir, cache)
	}
	registerDBCreator(BadgerDBBackendStr, dbCreator, false)
}

//GoBadgerDB db
type GoBadgerDB struct {
	db *badger.DB
}

// badger 自己的日志转到 log15
type badgerLogger struct{}

func (badgerLogger) Errorf(format string, args ...interface{}) {
	blog.Error(fmt.Sprintf(format, args...))
}

func (badgerLogger) Warningf(format string, args ...interface{}) {
	blog.Warn(fmt.Sprintf(format, args...))
}

func (badgerLogger) Infof(format string, args ...interface{}) {
	blog.Debug(fmt.Sprintf(format, args...))
}

func (badgerLogger) Debugf(format string, args ...interface{}) {
	blog.Debug(fmt.Sprintf(format, args...))
}

//NewGoBadgerDB new
func NewGoBadgerDB(name string, dir string, cache int) (*GoBadgerDB, error) {
	opts := badger.DefaultOptions(path.Join(dir, name+".badger"))
	opts.Logger = badgerLogger{}
	db, err := badger.Open(opts)
	if err != nil {
		blog.Error("NewGoBadgerDB", "error", err)
		return nil, err
	}
	return &GoBadgerDB{db: db}, nil
}

//Get get
func (db *GoBadgerDB) Get(key []byte) ([]byte, error) {
	var val []byte
	err := db.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(key)
		if err != nil {
			return err
		}
		val, err = item.ValueCopy(nil)
		return err
	})
	if err == badger.ErrKeyNotFound {
		return nil, ErrNotFoundInDb
	}
	if err != nil {
		blog.Error("Get", "error", err)
		return nil, err
	}
	return val, nil
}

//Set set
func (db *GoBadgerDB) Set(key []byte, value []byte) error {
	err := db.db.Update(func(txn *badger.Txn) error {
		return txn.Set(key, value)
	})
	if err != nil {
		blog.Error("Set", "error", err)
	}
	return err
}

//SetSync badger 的写入在 Update 返回时已经落盘（SyncWrites 默认打开）
func (db *GoBadgerDB) SetSync(key []byte, value []byte) error {
	return db.Set(key, value)
}

//Delete 删除
func (db *GoBadgerDB) Delete(key []byte) error {
	err := db.db.Update(func(txn *badger.Txn) error {
		return txn.Delete(key)
	})
	if err != nil {
		blog.Error("Delete", "error", err)
	}
	return err
}

//DeleteSync 删除同步
func (db *GoBadgerDB) DeleteSync(key []byte) error {
	return db.Delete(key)
}

//Close 关闭
func (db *GoBadgerDB) Close() {
	if err := db.db.Close(); err != nil {
		blog.Error("Close", "error", err)
	}
}

//Stats ...
func (db *GoBadgerDB) Stats() map[string]string {
	lsm, vlog := db.db.Size()
	return map[string]string{
		"badger.lsm":  strconv.FormatInt(lsm, 10),
		"badger.vlog": strconv.FormatInt(vlog, 10),
	}
}

//Iterator 迭代器，持有一个只读事务直到 Close
func (db *GoBadgerDB) Iterator(prefix []byte, reverse bool) Iterator {
	txn := db.db.NewTransaction(false)
	opts := badger.DefaultIteratorOptions
	opts.Reverse = reverse
	return &goBadgerDBIt{txn: txn, it: txn.NewIterator(opts), reverse: reverse, prefix: prefix}
}

//NewBatch new
func (db *GoBadgerDB) NewBatch(sync bool) Batch {
	return &goBadgerDBBatch{db: db}
}

type goBadgerDBIt struct {
	txn     *badger.Txn
	it      *badger.Iterator
	reverse bool
	prefix  []byte
	err     error
}

func (dbit *goBadgerDBIt) Rewind() bool {
	if len(dbit.prefix) == 0 {
		dbit.it.Rewind()
		return dbit.Valid()
	}
	if !dbit.reverse {
		dbit.it.Seek(dbit.prefix)
		return dbit.Valid()
	}
	end := bytesPrefix(dbit.prefix)
	if end == nil {
		dbit.it.Rewind()
	} else {
		// 反向 Seek 会停在 <= end 的位置，end 本身不属于前缀
		dbit.it.Seek(end)
		if dbit.it.Valid() && !dbit.it.ValidForPrefix(dbit.prefix) {
			dbit.it.Next()
		}
	}
	return dbit.Valid()
}

func (dbit *goBadgerDBIt) Next() bool {
	dbit.it.Next()
	return dbit.Valid()
}

func (dbit *goBadgerDBIt) Valid() bool {
	return dbit.it.ValidForPrefix(dbit.prefix)
}

func (dbit *goBadgerDBIt) Key() []byte {
	return dbit.it.Item().Key()
}

func (dbit *goBadgerDBIt) Value() []byte {
	value, err := dbit.it.Item().ValueCopy(nil)
	if err != nil {
		dbit.err = err
	}
	return value
}

func (dbit *goBadgerDBIt) ValueCopy() []byte {
	return dbit.Value()
}

func (dbit *goBadgerDBIt) Error() error {
	return dbit.err
}

func (dbit *goBadgerDBIt) Prefix() []byte {
	return dbit.prefix
}

func (dbit *goBadgerDBIt) Close() {
	dbit.it.Close()
	dbit.txn.Discard()
}

// badger 的写批次放在一个 Update 事务里提交
type goBadgerDBBatch struct {
	db     *GoBadgerDB
	writes []kv
	size   int
}

func (mBatch *goBadgerDBBatch) Set(key, value []byte) {
	mBatch.writes = append(mBatch.writes, kv{cloneByte(key), cloneByte(value)})
	mBatch.size += len(value)
}

func (mBatch *goBadgerDBBatch) Delete(key []byte) {
	mBatch.writes = append(mBatch.writes, kv{cloneByte(key), nil})
	mBatch.size++
}

func (mBatch *goBadgerDBBatch) Write() error {
	err := mBatch.db.db.Update(func(txn *badger.Txn) error {
		for _, kv := range mBatch.writes {
			var err error
			if kv.v == nil {
				err = txn.Delete(kv.k)
			} else {
				err = txn.Set(kv.k, kv.v)
			}
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		blog.Error("Write", "error", err)
	}
	return err
}

func (mBatch *goBadgerDBBatch) ValueSize() int {
	return mBatch.size
}

func (mBatch *goBadgerDBBatch) Reset() {
	mBatch.writes = mBatch.writes[:0]
	mBatch.size = 0
}
