// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	drivers "github.com/33cn/deershooter/system/dapp"
	cty "github.com/33cn/deershooter/system/dapp/coins/types"
	"github.com/33cn/deershooter/types"
)

//Exec_Transfer 转账
func (c *Coins) Exec_Transfer(transfer *cty.CoinsTransfer, tx *types.Transaction, index int) (*types.Receipt, error) {
	if err := drivers.CheckAddress(transfer.To, c.GetHeight()); err != nil {
		return nil, types.ErrInvalidAddress
	}
	amount, err := types.ParseAmount(transfer.Amount)
	if err != nil {
		return nil, err
	}
	acc, err := c.getAccount(transfer.Symbol)
	if err != nil {
		return nil, err
	}
	clog.Debug("Exec_Transfer", "from", tx.From(), "to", transfer.To, "amount", transfer.Amount, "symbol", transfer.Symbol)
	return acc.Transfer(tx.From(), transfer.To, amount)
}

//Exec_Genesis 创世铸币
func (c *Coins) Exec_Genesis(genesis *cty.CoinsGenesis, tx *types.Transaction, index int) (*types.Receipt, error) {
	if c.GetHeight() != 0 {
		return nil, types.ErrReRunGenesis
	}
	if err := drivers.CheckAddress(genesis.To, c.GetHeight()); err != nil {
		return nil, types.ErrInvalidAddress
	}
	amount, err := types.ParseAmount(genesis.Amount)
	if err != nil {
		return nil, err
	}
	acc, err := c.getAccount(genesis.Symbol)
	if err != nil {
		return nil, err
	}
	return acc.GenesisInit(genesis.To, amount)
}
