// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"strings"

	"github.com/holiman/uint256"
)

//Account 账户余额
type Account struct {
	Addr    string
	Balance *uint256.Int
}

//GetBalance nil 余额当作 0
func (acc *Account) GetBalance() *uint256.Int {
	if acc == nil || acc.Balance == nil {
		return new(uint256.Int)
	}
	return acc.Balance
}

//Clone 深拷贝
func (acc *Account) Clone() *Account {
	return &Account{Addr: acc.Addr, Balance: new(uint256.Int).Set(acc.GetBalance())}
}

//TransferLog 余额变化日志
func TransferLog(ty int32, prev, current *Account) *ReceiptLog {
	return &ReceiptLog{
		Ty: ty,
		Log: EncodeLog(map[string]interface{}{
			"addr":    current.Addr,
			"prev":    FormatAmount(prev.GetBalance()),
			"current": FormatAmount(current.GetBalance()),
		}),
	}
}

//CheckSymbol symbol 只允许大写字母和数字
func CheckSymbol(symbol string) bool {
	if symbol == "" {
		return false
	}
	return strings.IndexFunc(symbol, func(r rune) bool {
		return !(r >= 'A' && r <= 'Z') && !(r >= '0' && r <= '9')
	}) < 0
}
