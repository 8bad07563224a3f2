// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package account

import (
	"github.com/33cn/deershooter/types"
	"github.com/holiman/uint256"
)

// GenesisInit 本地链启动时给地址铸币
func (acc *DB) GenesisInit(addr string, amount *uint256.Int) (receipt *types.Receipt, err error) {
	return acc.depositBalance(addr, amount, types.TyLogGenesis)
}

// Deposit 直接增加余额，只给宿主使用
func (acc *DB) Deposit(addr string, amount *uint256.Int) (receipt *types.Receipt, err error) {
	return acc.depositBalance(addr, amount, types.TyLogDeposit)
}
