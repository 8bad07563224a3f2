// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	dbm "github.com/33cn/deershooter/common/db"
	"github.com/33cn/deershooter/types"
	"github.com/holiman/uint256"
)

// kvStore 状态数据库的类型化读写，记录本次交易写过的 kv 用于回执
type kvStore struct {
	db  dbm.KV
	kvs []*types.KeyValue
}

func newKVStore(db dbm.KV) *kvStore {
	return &kvStore{db: db}
}

func (s *kvStore) get(key []byte) ([]byte, bool, error) {
	value, err := s.db.Get(key)
	if err == types.ErrNotFound || err == dbm.ErrNotFoundInDb {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	if len(value) == 0 {
		return nil, false, nil
	}
	return value, true, nil
}

func (s *kvStore) has(key []byte) (bool, error) {
	_, ok, err := s.get(key)
	return ok, err
}

func (s *kvStore) set(key, value []byte) error {
	s.kvs = append(s.kvs, &types.KeyValue{Key: key, Value: value})
	return s.db.Set(key, value)
}

// del 写入 nil 表示删除
func (s *kvStore) del(key []byte) error {
	return s.set(key, nil)
}

func (s *kvStore) getUint64(key []byte) (uint64, bool, error) {
	value, ok, err := s.get(key)
	if err != nil || !ok {
		return 0, ok, err
	}
	v, err := types.DecodeUint64(value)
	if err != nil {
		return 0, false, err
	}
	return v, true, nil
}

func (s *kvStore) setUint64(key []byte, v uint64) error {
	return s.set(key, types.EncodeUint64(v))
}

// getAmount 不存在时为 0
func (s *kvStore) getAmount(key []byte) (*uint256.Int, error) {
	value, ok, err := s.get(key)
	if err != nil {
		return nil, err
	}
	if !ok {
		return new(uint256.Int), nil
	}
	return types.DecodeAmount(value)
}

func (s *kvStore) setAmount(key []byte, v *uint256.Int) error {
	return s.set(key, types.EncodeAmount(v))
}

func (s *kvStore) getString(key []byte) (string, bool, error) {
	value, ok, err := s.get(key)
	if err != nil || !ok {
		return "", ok, err
	}
	v, err := types.DecodeString(value)
	if err != nil {
		return "", false, err
	}
	return v, true, nil
}

func (s *kvStore) setString(key []byte, v string) error {
	return s.set(key, types.EncodeString(v))
}
