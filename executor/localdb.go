// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	dbm "github.com/33cn/deershooter/common/db"
	"github.com/33cn/deershooter/types"
)

//LocalDB 本地数据库，保存交易回执和最新区块头，不属于合约状态
//数据的 set 先经过 cache，和 StateDB 一起落盘
type LocalDB struct {
	cache map[string][]byte
	db    dbm.DB
}

//NewLocalDB 创建一个新的LocalDB
func NewLocalDB(db dbm.DB) *LocalDB {
	return &LocalDB{
		cache: make(map[string][]byte),
		db:    db,
	}
}

//Get 获取key
func (l *LocalDB) Get(key []byte) ([]byte, error) {
	if value, ok := l.cache[string(key)]; ok {
		if value == nil {
			return nil, types.ErrNotFound
		}
		return value, nil
	}
	value, err := l.db.Get(key)
	if err == dbm.ErrNotFoundInDb {
		return nil, types.ErrNotFound
	}
	return value, err
}

//Set 设置key
func (l *LocalDB) Set(key []byte, value []byte) error {
	l.cache[string(key)] = value
	return nil
}

//List 按前缀列出
func (l *LocalDB) List(prefix []byte, count, direction int32) ([][]byte, error) {
	values := dbm.NewListHelper(l.db).List(prefix, count, direction)
	if len(values) == 0 {
		return nil, types.ErrNotFound
	}
	return values, nil
}

//WriteTo 把 cache 写入 batch
func (l *LocalDB) WriteTo(batch dbm.Batch) {
	writeCache(batch, l.cache)
}

//ClearCache batch 写成功以后调用
func (l *LocalDB) ClearCache() {
	l.cache = make(map[string][]byte)
}
