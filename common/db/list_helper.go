// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package db

import (
	log "github.com/inconshreveable/log15"
)

//ListHelper ...
type ListHelper struct {
	db IteratorDB
}

var listlog = log.New("module", "db.ListHelper")

//NewListHelper new
func NewListHelper(db IteratorDB) *ListHelper {
	return &ListHelper{db}
}

//const
const (
	ListDESC = int32(0)
	ListASC  = int32(1)
)

//PrefixScan 前缀
func (db *ListHelper) PrefixScan(prefix []byte) (values [][]byte) {
	return db.List(prefix, -1, ListASC)
}

//List 按前缀列出最多 count 个 value，count <= 0 表示不限
func (db *ListHelper) List(prefix []byte, count, direction int32) (values [][]byte) {
	it := db.db.Iterator(prefix, direction == ListDESC)
	defer it.Close()

	var i int32
	for it.Rewind(); it.Valid(); it.Next() {
		value := it.ValueCopy()
		if it.Error() != nil {
			listlog.Error("List it.Value()", "error", it.Error())
			return nil
		}
		values = append(values, value)
		i++
		if i == count {
			break
		}
	}
	return values
}

//ListKV 按前缀列出 key 和 value
func (db *ListHelper) ListKV(prefix []byte, count int32) (keys, values [][]byte) {
	it := db.db.Iterator(prefix, false)
	defer it.Close()

	var i int32
	for it.Rewind(); it.Valid(); it.Next() {
		value := it.ValueCopy()
		if it.Error() != nil {
			listlog.Error("ListKV it.Value()", "error", it.Error())
			return nil, nil
		}
		keys = append(keys, cloneByte(it.Key()))
		values = append(values, value)
		i++
		if i == count {
			break
		}
	}
	return keys, values
}
