// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"math"

	"github.com/33cn/deershooter/metrics"
	dty "github.com/33cn/deershooter/plugin/dapp/deershooter/types"
	"github.com/33cn/deershooter/types"
)

//Exec_Init 初始化合约
func (d *DeerShooter) Exec_Init(payload *dty.DeerInit, tx *types.Transaction, index int) (*types.Receipt, error) {
	a, err := newAction(d, tx)
	if err != nil {
		return nil, err
	}
	return a.Init()
}

//Exec_SetRewardRate ...
func (d *DeerShooter) Exec_SetRewardRate(payload *dty.SetRewardRate, tx *types.Transaction, index int) (*types.Receipt, error) {
	a, err := newAction(d, tx)
	if err != nil {
		return nil, err
	}
	return a.SetRewardRate(payload)
}

//Exec_SetReferralBonusPercentage ...
func (d *DeerShooter) Exec_SetReferralBonusPercentage(payload *dty.SetReferralBonusPercentage, tx *types.Transaction, index int) (*types.Receipt, error) {
	a, err := newAction(d, tx)
	if err != nil {
		return nil, err
	}
	return a.SetReferralBonusPercentage(payload)
}

//Exec_SetParameters ...
func (d *DeerShooter) Exec_SetParameters(payload *dty.SetParameters, tx *types.Transaction, index int) (*types.Receipt, error) {
	a, err := newAction(d, tx)
	if err != nil {
		return nil, err
	}
	return a.SetParameters(payload)
}

//Exec_StartRound 下注
func (d *DeerShooter) Exec_StartRound(payload *dty.StartRound, tx *types.Transaction, index int) (*types.Receipt, error) {
	a, err := newAction(d, tx)
	if err != nil {
		return nil, err
	}
	receipt, err := a.StartRound(payload)
	if err != nil {
		return nil, err
	}
	metrics.IncCounter(metrics.RoundStarted)
	updatePoolGauge(a)
	return receipt, nil
}

//Exec_SettleRound 结算
func (d *DeerShooter) Exec_SettleRound(payload *dty.SettleRound, tx *types.Transaction, index int) (*types.Receipt, error) {
	a, err := newAction(d, tx)
	if err != nil {
		return nil, err
	}
	receipt, err := a.SettleRound(payload)
	if err != nil {
		return nil, err
	}
	metrics.IncCounter(metrics.RoundSettled)
	updatePoolGauge(a)
	return receipt, nil
}

//Exec_AdminDeposit ...
func (d *DeerShooter) Exec_AdminDeposit(payload *dty.AdminDeposit, tx *types.Transaction, index int) (*types.Receipt, error) {
	a, err := newAction(d, tx)
	if err != nil {
		return nil, err
	}
	receipt, err := a.AdminDeposit(payload)
	if err != nil {
		return nil, err
	}
	updatePoolGauge(a)
	return receipt, nil
}

//Exec_AdminWithdraw ...
func (d *DeerShooter) Exec_AdminWithdraw(payload *dty.AdminWithdraw, tx *types.Transaction, index int) (*types.Receipt, error) {
	a, err := newAction(d, tx)
	if err != nil {
		return nil, err
	}
	receipt, err := a.AdminWithdraw(payload)
	if err != nil {
		return nil, err
	}
	updatePoolGauge(a)
	return receipt, nil
}

//Exec_AdminWithdrawReward ...
func (d *DeerShooter) Exec_AdminWithdrawReward(payload *dty.AdminWithdrawReward, tx *types.Transaction, index int) (*types.Receipt, error) {
	a, err := newAction(d, tx)
	if err != nil {
		return nil, err
	}
	return a.AdminWithdrawReward(payload)
}

//Exec_AddReferral 已经绑定过推荐人时交易仍然成功，但不修改状态
func (d *DeerShooter) Exec_AddReferral(payload *dty.AddReferral, tx *types.Transaction, index int) (*types.Receipt, error) {
	a, err := newAction(d, tx)
	if err != nil {
		return nil, err
	}
	bound, receipt, err := a.AddReferral(payload)
	if err != nil {
		return nil, err
	}
	dlog.Debug("Exec_AddReferral", "addr", payload.ToBeReferred, "referrer", payload.Referrer, "bound", bound)
	return receipt, nil
}

//Exec_CheckIn 每日签到
func (d *DeerShooter) Exec_CheckIn(payload *dty.CheckIn, tx *types.Transaction, index int) (*types.Receipt, error) {
	a, err := newAction(d, tx)
	if err != nil {
		return nil, err
	}
	return a.CheckIn(payload)
}

func updatePoolGauge(a *action) {
	if !metrics.Enabled() {
		return
	}
	pool, err := a.getPool()
	if err != nil {
		return
	}
	if pool.IsUint64() && pool.Uint64() <= math.MaxInt64 {
		metrics.UpdateGauge(metrics.PoolBalance, int64(pool.Uint64()))
	}
}
