// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	dty "github.com/33cn/deershooter/plugin/dapp/deershooter/types"
	"github.com/33cn/deershooter/types"
	"github.com/pkg/errors"
)

// today 从 checkInEpoch 开始的天数，区块时间早于 epoch 时为 0
func (a *action) today() uint64 {
	if a.blocktime < a.conf.checkInEpoch {
		return 0
	}
	return uint64(a.blocktime-a.conf.checkInEpoch) / dty.DaySeconds
}

// canCheckIn 返回今天的天数，今天已经签到过返回 0
func (a *action) canCheckIn(addr string) (uint64, error) {
	today := a.today()
	last, ok, err := a.store.getUint64(calcCheckInKey(addr))
	if err != nil {
		return 0, err
	}
	if !ok || today > last {
		return today, nil
	}
	return 0, nil
}

// CheckIn 每日签到领取固定数量的奖励 token
func (a *action) CheckIn(payload *dty.CheckIn) (*types.Receipt, error) {
	addr := payload.Account
	if addr == "" {
		addr = a.fromaddr
	}
	if err := a.requireWitness(addr); err != nil {
		return nil, err
	}
	if err := a.requireInitialized(); err != nil {
		return nil, err
	}
	day, err := a.canCheckIn(addr)
	if err != nil {
		return nil, err
	}
	if day == 0 {
		return nil, errors.Wrapf(types.ErrAlreadyCheckedInToday, "addr %s day %d", addr, a.today())
	}
	if err := a.store.setUint64(calcCheckInKey(addr), day); err != nil {
		return nil, err
	}
	if err := a.issueReward(addr, a.conf.dailyReward); err != nil {
		return nil, err
	}
	a.addLog(dty.TyLogDeerCheckIn, map[string]interface{}{
		"addr":   addr,
		"day":    day,
		"reward": types.FormatAmount(a.conf.dailyReward),
	})
	return a.receipt(), nil
}
