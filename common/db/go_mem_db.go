// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package db

import (
	"strconv"

	log "github.com/inconshreveable/log15"
	"github.com/syndtr/goleveldb/leveldb/comparer"
	"github.com/syndtr/goleveldb/leveldb/memdb"
	"github.com/syndtr/goleveldb/leveldb/util"
)

var mlog = log.New("module", "db.memdb")

// memdb 应该无需区分同步与异步操作

func init() {
	dbCreator := func(name string, dir string, cache int) (DB, error) {
		return NewGoMemDB(name, dir, cache)
	}
	registerDBCreator(MemDBBackendStr, dbCreator, false)
}

//GoMemDB db
type GoMemDB struct {
	db *memdb.DB
}

//NewGoMemDB new
func NewGoMemDB(name string, dir string, cache int) (*GoMemDB, error) {
	return &GoMemDB{
		db: memdb.New(comparer.DefaultComparer, 0),
	}, nil
}

//Get get
func (db *GoMemDB) Get(key []byte) ([]byte, error) {
	v, err := db.db.Get(key)
	if err != nil {
		return nil, ErrNotFoundInDb
	}
	return cloneByte(v), nil
}

//Set set
func (db *GoMemDB) Set(key []byte, value []byte) error {
	err := db.db.Put(key, value)
	if err != nil {
		mlog.Error("Set", "error", err)
	}
	return err
}

//SetSync 设置同步
func (db *GoMemDB) SetSync(key []byte, value []byte) error {
	return db.Set(key, value)
}

//Delete 删除
func (db *GoMemDB) Delete(key []byte) error {
	err := db.db.Delete(key)
	if err != nil && err != memdb.ErrNotFound {
		mlog.Error("Delete", "error", err)
		return err
	}
	return nil
}

//DeleteSync 删除同步
func (db *GoMemDB) DeleteSync(key []byte) error {
	return db.Delete(key)
}

//Close 关闭
func (db *GoMemDB) Close() {
	db.db.Reset()
}

//Stats ...
func (db *GoMemDB) Stats() map[string]string {
	return map[string]string{
		"memdb.len":  strconv.Itoa(db.db.Len()),
		"memdb.size": strconv.Itoa(db.db.Size()),
	}
}

//Iterator 迭代器
func (db *GoMemDB) Iterator(prefix []byte, reverse bool) Iterator {
	r := &util.Range{Start: prefix, Limit: bytesPrefix(prefix)}
	return &goLevelDBIt{Iterator: db.db.NewIterator(r), reverse: reverse, prefix: prefix}
}

//NewBatch new
func (db *GoMemDB) NewBatch(sync bool) Batch {
	return &memBatch{db: db}
}

type kv struct {
	k []byte
	v []byte
}

type memBatch struct {
	db     *GoMemDB
	writes []kv
	size   int
}

func (b *memBatch) Set(key, value []byte) {
	b.writes = append(b.writes, kv{cloneByte(key), cloneByte(value)})
	b.size += len(value)
}

func (b *memBatch) Delete(key []byte) {
	b.writes = append(b.writes, kv{cloneByte(key), nil})
	b.size++
}

func (b *memBatch) Write() error {
	for _, kv := range b.writes {
		if kv.v == nil {
			if err := b.db.Delete(kv.k); err != nil {
				return err
			}
		} else {
			if err := b.db.Set(kv.k, kv.v); err != nil {
				return err
			}
		}
	}
	return nil
}

func (b *memBatch) ValueSize() int {
	return b.size
}

func (b *memBatch) Reset() {
	b.writes = b.writes[:0]
	b.size = 0
}
