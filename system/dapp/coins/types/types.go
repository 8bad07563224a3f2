// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package types coins 执行器的参数和返回值
package types

// CoinsX 执行器名
const CoinsX = "coins"

// action
const (
	ActionTransfer = "Transfer"
	ActionGenesis  = "Genesis"
)

// CoinsTransfer 转账，Symbol 为空表示本链原生币，否则是 token
type CoinsTransfer struct {
	To     string `json:"to"`
	Amount string `json:"amount"`
	Symbol string `json:"symbol,omitempty"`
	Note   string `json:"note,omitempty"`
}

// CoinsGenesis 创世铸币，只能在高度 0 执行
type CoinsGenesis struct {
	To     string `json:"to"`
	Amount string `json:"amount"`
	Symbol string `json:"symbol,omitempty"`
}

// ReqBalance 查询余额
type ReqBalance struct {
	Addr   string `json:"addr"`
	Symbol string `json:"symbol,omitempty"`
}

// ReplyBalance 余额
type ReplyBalance struct {
	Addr    string `json:"addr"`
	Symbol  string `json:"symbol"`
	Balance string `json:"balance"`
}
