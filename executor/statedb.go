// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"sort"

	dbm "github.com/33cn/deershooter/common/db"
	"github.com/33cn/deershooter/types"
)

// StateDB 合约使用的状态数据库，写入先进 txcache，Commit 后进 cache，Flush 时批量落盘
//
// cache 和 txcache 中 value 为 nil 的项表示删除
type StateDB struct {
	cache   map[string][]byte
	txcache map[string][]byte
	intx    bool
	db      dbm.DB
}

// NewStateDB new state db
func NewStateDB(db dbm.DB) *StateDB {
	return &StateDB{
		cache: make(map[string][]byte),
		db:    db,
	}
}

// Begin 开启内存事务处理
func (s *StateDB) Begin() {
	s.intx = true
	s.txcache = nil
}

// Rollback reset tx
func (s *StateDB) Rollback() {
	s.resetTx()
}

// Commit canche tx
func (s *StateDB) Commit() error {
	for k, v := range s.txcache {
		s.cache[k] = v
	}
	s.resetTx()
	return nil
}

func (s *StateDB) resetTx() {
	s.intx = false
	s.txcache = nil
}

// Get get value from state db
func (s *StateDB) Get(key []byte) ([]byte, error) {
	skey := string(key)
	if s.intx && s.txcache != nil {
		if value, ok := s.txcache[skey]; ok {
			if value == nil {
				return nil, types.ErrNotFound
			}
			return value, nil
		}
	}
	if value, ok := s.cache[skey]; ok {
		if value == nil {
			return nil, types.ErrNotFound
		}
		return value, nil
	}
	if s.db == nil {
		return nil, types.ErrNotFound
	}
	value, err := s.db.Get(key)
	if err == dbm.ErrNotFoundInDb {
		return nil, types.ErrNotFound
	}
	return value, err
}

// Set set key value to state db, value 为 nil 表示删除
func (s *StateDB) Set(key []byte, value []byte) error {
	skey := string(key)
	if s.intx {
		if s.txcache == nil {
			s.txcache = make(map[string][]byte)
		}
		s.txcache[skey] = value
	} else {
		s.cache[skey] = value
	}
	return nil
}

// WriteTo 把已提交的修改写入 batch，batch 写成功以后再 ClearCache
func (s *StateDB) WriteTo(batch dbm.Batch) {
	writeCache(batch, s.cache)
}

// ClearCache 丢弃已经落盘的修改
func (s *StateDB) ClearCache() {
	s.cache = make(map[string][]byte)
}

// Flush 已提交的修改落盘，失败时 cache 保持不变
func (s *StateDB) Flush() error {
	batch := s.db.NewBatch(true)
	s.WriteTo(batch)
	if err := batch.Write(); err != nil {
		return err
	}
	s.ClearCache()
	return nil
}

func writeCache(batch dbm.Batch, cache map[string][]byte) {
	keys := make([]string, 0, len(cache))
	for k := range cache {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if v := cache[k]; v == nil {
			batch.Delete([]byte(k))
		} else {
			batch.Set([]byte(k), v)
		}
	}
}
