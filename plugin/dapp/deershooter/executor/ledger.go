// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"github.com/33cn/deershooter/types"
	"github.com/holiman/uint256"
)

// CurrencyLedger 原生币转账，默认是 coins 账户
type CurrencyLedger interface {
	Transfer(from, to string, amount *uint256.Int) (*types.Receipt, error)
}

// RewardToken 奖励 token，默认是 token 执行器下 rewardSymbol 的账户
type RewardToken interface {
	CheckTransfer(from, to string, amount *uint256.Int) error
	Transfer(from, to string, amount *uint256.Int) (*types.Receipt, error)
}
