// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

/*
coins 是一个货币的exec。内置货币的执行器。

主要提供两种操作：
Transfer -> 转移资产（原生币或者 token）
Genesis  -> 本地链创世铸币
*/

import (
	"github.com/33cn/deershooter/account"
	drivers "github.com/33cn/deershooter/system/dapp"
	cty "github.com/33cn/deershooter/system/dapp/coins/types"
	"github.com/33cn/deershooter/types"
	log "github.com/inconshreveable/log15"
)

var clog = log.New("module", "execs.coins")

var driverName = cty.CoinsX

//Init 注册 coins 驱动
func Init(name string, sub []byte) {
	if name != driverName {
		panic("system dapp can't be rename")
	}
	drivers.Register(driverName, newCoins, 0)
}

//GetName ...
func GetName() string {
	return newCoins().GetName()
}

//Coins 执行器
type Coins struct {
	drivers.DriverBase
}

func newCoins() drivers.Driver {
	c := &Coins{}
	c.SetChild(c)
	return c
}

//GetDriverName ...
func (c *Coins) GetDriverName() string {
	return driverName
}

// symbol 为空用原生币账户，否则用对应的 token 账户
func (c *Coins) getAccount(symbol string) (*account.DB, error) {
	if symbol == "" || symbol == types.CoinsSymbol {
		return c.GetCoinsAccount(), nil
	}
	return account.NewAccountDB(types.TokenX, symbol, c.GetStateDB())
}
