// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package db 有序 kv 数据库的统一接口，支持 leveldb, memdb, badger
package db

import (
	"errors"
	"fmt"
	"sync"
)

//ErrNotFoundInDb error
var ErrNotFoundInDb = errors.New("ErrNotFoundInDb")

//KV 合约使用的状态数据库接口，Set nil 表示删除
type KV interface {
	Get(key []byte) ([]byte, error)
	Set(key []byte, value []byte) error
	Begin()
	Rollback()
	Commit() error
}

//IteratorDB 迭代
type IteratorDB interface {
	Iterator(prefix []byte, reverse bool) Iterator
}

//DB db
type DB interface {
	IteratorDB
	Get([]byte) ([]byte, error)
	Set([]byte, []byte) error
	SetSync([]byte, []byte) error
	Delete([]byte) error
	DeleteSync([]byte) error
	Close()
	NewBatch(sync bool) Batch
	Stats() map[string]string
}

//Batch 批量写，Write 之前不可见
type Batch interface {
	Set(key, value []byte)
	Delete(key []byte)
	Write() error
	ValueSize() int
	Reset()
}

//Iterator 前缀迭代器
type Iterator interface {
	Rewind() bool
	Next() bool
	Valid() bool
	Key() []byte
	Value() []byte
	ValueCopy() []byte
	Error() error
	Prefix() []byte
	Close()
}

//const
const (
	LevelDBBackendStr   = "leveldb"
	GoLevelDBBackendStr = "goleveldb"
	MemDBBackendStr     = "memdb"
	BadgerDBBackendStr  = "badger"
)

type dbCreator func(name string, dir string, cache int) (DB, error)

var (
	backends   = map[string]dbCreator{}
	backendsMu sync.Mutex
)

func registerDBCreator(backend string, creator dbCreator, force bool) {
	backendsMu.Lock()
	defer backendsMu.Unlock()
	_, ok := backends[backend]
	if !force && ok {
		return
	}
	backends[backend] = creator
}

//NewDB 按 backend 名字创建数据库
func NewDB(name string, backend string, dir string, cache int32) (DB, error) {
	backendsMu.Lock()
	creator, ok := backends[backend]
	backendsMu.Unlock()
	if !ok {
		return nil, fmt.Errorf("unknown db backend %q", backend)
	}
	return creator(name, dir, int(cache))
}

func cloneByte(v []byte) []byte {
	if v == nil {
		return nil
	}
	value := make([]byte, len(v))
	copy(value, v)
	return value
}

//bytesPrefix 前缀的上界（不含），前缀全为 0xff 时返回 nil
func bytesPrefix(prefix []byte) []byte {
	var limit []byte
	for i := len(prefix) - 1; i >= 0; i-- {
		c := prefix[i]
		if c < 0xff {
			limit = make([]byte, i+1)
			copy(limit, prefix)
			limit[i] = c + 1
			break
		}
	}
	return limit
}
