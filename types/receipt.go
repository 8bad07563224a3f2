// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"encoding/json"
	"fmt"
)

//KeyValue 状态数据库中的一条 kv，Value 为 nil 表示删除
type KeyValue struct {
	Key   []byte `json:"key"`
	Value []byte `json:"value"`
}

//ReceiptLog 合约日志
type ReceiptLog struct {
	Ty  int32  `json:"ty"`
	Log []byte `json:"log"`
}

//Receipt 合约执行的结果，KV 写入状态数据库，Logs 保存到交易回执
type Receipt struct {
	Ty   int32         `json:"ty"`
	KV   []*KeyValue   `json:"kv"`
	Logs []*ReceiptLog `json:"logs"`
}

//ReceiptData 保存在 localdb 中的交易回执
type ReceiptData struct {
	TxHash string        `json:"txHash"`
	Height int64         `json:"height"`
	Ty     int32         `json:"ty"`
	Error  string        `json:"error,omitempty"`
	Logs   []*ReceiptLog `json:"logs"`
}

//MergeReceipt 把 r2 合并到 r1
func MergeReceipt(r1, r2 *Receipt) *Receipt {
	if r2 == nil {
		return r1
	}
	if r1 == nil {
		return r2
	}
	r1.KV = append(r1.KV, r2.KV...)
	r1.Logs = append(r1.Logs, r2.Logs...)
	return r1
}

//EncodeReceiptData ...
func EncodeReceiptData(r *ReceiptData) []byte {
	data, err := json.Marshal(r)
	if err != nil {
		panic(err)
	}
	return data
}

//DecodeReceiptData ...
func DecodeReceiptData(data []byte) (*ReceiptData, error) {
	var r ReceiptData
	if err := json.Unmarshal(data, &r); err != nil {
		return nil, ErrDecode
	}
	return &r, nil
}

func (r *ReceiptData) String() string {
	return fmt.Sprintf("ReceiptData{hash:%s height:%d ty:%d logs:%d}", r.TxHash, r.Height, r.Ty, len(r.Logs))
}
