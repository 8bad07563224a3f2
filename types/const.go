// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

// coin conversation
const (
	Coin            int64 = 1e8
	InputPrecision        = 1e4
	Multiple1E4     int64 = 1e4
	CoinsSymbol           = "bty"
	CoinsX                = "coins"
	TokenX                = "token"
	DefaultTitle          = "local"
	DefaultDBDriver       = "leveldb"
)

// receipt 执行状态
const (
	ExecErr  = 0
	ExecPack = 1
	ExecOk   = 2
)

// 系统日志类型，合约自己的日志类型从 100 以后开始
const (
	TyLogErr      = 1
	TyLogFee      = 2
	TyLogTransfer = 3
	TyLogGenesis  = 4
	TyLogDeposit  = 5
)

// local 数据库中宿主使用的 key
var (
	LastHeaderKey   = []byte("LastHeader")
	TxReceiptPrefix = []byte("TxReceipt:")
)

// CalcTxReceiptKey 计算交易回执的 key
func CalcTxReceiptKey(hash []byte) []byte {
	return append(append([]byte{}, TxReceiptPrefix...), hash...)
}
