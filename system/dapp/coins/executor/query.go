// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	cty "github.com/33cn/deershooter/system/dapp/coins/types"
	"github.com/33cn/deershooter/types"
)

//Query_GetBalance 查询余额
func (c *Coins) Query_GetBalance(in *cty.ReqBalance) (interface{}, error) {
	acc, err := c.getAccount(in.Symbol)
	if err != nil {
		return nil, err
	}
	balance, err := acc.BalanceOf(in.Addr)
	if err != nil {
		return nil, err
	}
	symbol := in.Symbol
	if symbol == "" {
		symbol = types.CoinsSymbol
	}
	return &cty.ReplyBalance{
		Addr:    in.Addr,
		Symbol:  symbol,
		Balance: types.FormatAmount(balance),
	}, nil
}
