// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package types commands中结构体定义
package types

// AccountResult defines account result command
type AccountResult struct {
	Addr    string `json:"addr,omitempty"`
	Symbol  string `json:"symbol,omitempty"`
	Balance string `json:"balance"`
	Raw     string `json:"raw,omitempty"`
}

// KeyResult 新生成的密钥
type KeyResult struct {
	PrivKey string `json:"privkey,omitempty"`
	PubKey  string `json:"pubkey"`
	Addr    string `json:"addr"`
}

// ReceiptLogResult 日志解码后的结果
type ReceiptLogResult struct {
	Ty  int32                  `json:"ty"`
	Log map[string]interface{} `json:"log,omitempty"`
	Raw string                 `json:"rawLog,omitempty"`
}

// ReceiptResult defines receipt result command
type ReceiptResult struct {
	TxHash string              `json:"txHash"`
	Height int64               `json:"height"`
	Ty     int32               `json:"ty"`
	Error  string              `json:"error,omitempty"`
	Logs   []*ReceiptLogResult `json:"logs,omitempty"`
}

// HeaderResult defines header result command
type HeaderResult struct {
	Height     int64  `json:"height"`
	BlockTime  int64  `json:"blockTime"`
	ParentHash string `json:"parentHash"`
	Hash       string `json:"hash"`
	TxCount    int64  `json:"txCount"`
}

// KVResult 状态数据库中的一项
type KVResult struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}
