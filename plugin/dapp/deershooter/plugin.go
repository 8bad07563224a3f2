// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package deershooter 按局下注、管理员结算的奖池游戏
package deershooter

import (
	"github.com/33cn/deershooter/plugin/dapp/deershooter/commands"
	"github.com/33cn/deershooter/plugin/dapp/deershooter/executor"
	dty "github.com/33cn/deershooter/plugin/dapp/deershooter/types"
	"github.com/33cn/deershooter/pluginmgr"
)

func init() {
	pluginmgr.Register(&pluginmgr.PluginBase{
		Name:     "deershooter",
		ExecName: dty.DeerShooterX,
		Exec:     executor.Init,
		Cmd:      commands.DeerShooterCmd,
	})
}
