// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"github.com/33cn/deershooter/common/safemath"
	dty "github.com/33cn/deershooter/plugin/dapp/deershooter/types"
	"github.com/33cn/deershooter/types"
	"github.com/holiman/uint256"
	"github.com/pkg/errors"
)

//Query_GetPoolBalance 奖池余额
func (d *DeerShooter) Query_GetPoolBalance(in *types.ReqNil) (interface{}, error) {
	a, err := newAction(d, nil)
	if err != nil {
		return nil, err
	}
	pool, err := a.getPool()
	if err != nil {
		return nil, err
	}
	return &dty.ReplyAmount{Amount: types.FormatAmount(pool)}, nil
}

//Query_GetRewardRate 兑换比例，已经乘以 10^30
func (d *DeerShooter) Query_GetRewardRate(in *types.ReqNil) (interface{}, error) {
	a, err := newAction(d, nil)
	if err != nil {
		return nil, err
	}
	rate, err := a.getRewardRate()
	if err != nil {
		return nil, err
	}
	return &dty.ReplyRewardRate{Rate: types.FormatAmount(rate), Magnitude: types.FormatAmount(magnitude)}, nil
}

//Query_GetReferralBonusPercentage ...
func (d *DeerShooter) Query_GetReferralBonusPercentage(in *types.ReqNil) (interface{}, error) {
	a, err := newAction(d, nil)
	if err != nil {
		return nil, err
	}
	percent, err := a.getReferralBonus()
	if err != nil {
		return nil, err
	}
	return &dty.ReplyPercent{Percent: percent}, nil
}

//Query_GetParameters ...
func (d *DeerShooter) Query_GetParameters(in *types.ReqNil) (interface{}, error) {
	a, err := newAction(d, nil)
	if err != nil {
		return nil, err
	}
	zp, pa, pb, err := a.getParameters()
	if err != nil {
		return nil, err
	}
	return &dty.ReplyParameters{Zp: zp, A: pa, B: pb}, nil
}

//Query_GetCurrentRound ...
func (d *DeerShooter) Query_GetCurrentRound(in *types.ReqNil) (interface{}, error) {
	a, err := newAction(d, nil)
	if err != nil {
		return nil, err
	}
	id, err := a.getCurrentRound()
	if err != nil {
		return nil, err
	}
	return &dty.ReplyCurrentRound{RoundID: id}, nil
}

//Query_GetRoundStatus ...
func (d *DeerShooter) Query_GetRoundStatus(in *dty.ReqRound) (interface{}, error) {
	a, err := newAction(d, nil)
	if err != nil {
		return nil, err
	}
	r, err := a.getRound(in.RoundID)
	if err != nil {
		return nil, err
	}
	reply := &dty.ReplyRoundStatus{
		RoundID:    r.id,
		Status:     r.status,
		StatusName: dty.RoundStatusName[r.status],
	}
	if r.status == dty.RoundOpen {
		reply.Player = r.player
		reply.Stake = types.FormatAmount(r.stake)
	}
	return reply, nil
}

//Query_GetReferral ...
func (d *DeerShooter) Query_GetReferral(in *types.ReqAddr) (interface{}, error) {
	if err := requireScriptHash(in.Addr); err != nil {
		return nil, err
	}
	a, err := newAction(d, nil)
	if err != nil {
		return nil, err
	}
	referrer, _, err := a.getReferral(in.Addr)
	if err != nil {
		return nil, err
	}
	return &dty.ReplyReferral{Addr: in.Addr, Referrer: referrer}, nil
}

//Query_CanCheckIn 按最新区块时间计算
func (d *DeerShooter) Query_CanCheckIn(in *types.ReqAddr) (interface{}, error) {
	if err := requireScriptHash(in.Addr); err != nil {
		return nil, err
	}
	a, err := newAction(d, nil)
	if err != nil {
		return nil, err
	}
	day, err := a.canCheckIn(in.Addr)
	if err != nil {
		return nil, err
	}
	return &dty.ReplyCheckIn{Addr: in.Addr, Day: day}, nil
}

//Query_GetTrialGameAward 用最新区块的哈希试算奖金
func (d *DeerShooter) Query_GetTrialGameAward(in *dty.ReqTrialAward) (interface{}, error) {
	stake, err := types.ParseAmount(in.Stake)
	if err != nil {
		return nil, errors.Wrapf(err, "stake %s", in.Stake)
	}
	a, err := newAction(d, nil)
	if err != nil {
		return nil, err
	}
	zp, pa, pb, err := a.getParameters()
	if err != nil {
		return nil, err
	}
	odd, err := CalculateOdd(in.Score, zp, pa, pb, a.blockhash)
	if err != nil {
		return nil, err
	}
	award, err := safemath.MulDiv(uint256.NewInt(odd), stake, oddBase)
	if err != nil {
		return nil, err
	}
	return &dty.ReplyTrialAward{Odd: odd, Award: types.FormatAmount(award)}, nil
}

//Query_GetConfig 运行配置
func (d *DeerShooter) Query_GetConfig(in *types.ReqNil) (interface{}, error) {
	a, err := newAction(d, nil)
	if err != nil {
		return nil, err
	}
	inited, err := a.isInitialized()
	if err != nil {
		return nil, err
	}
	return &dty.ReplyConfig{
		Admin:              d.conf.admin,
		Custodian:          a.custodian,
		MinStake:           types.FormatAmount(d.conf.minStake),
		CheckInEpoch:       d.conf.checkInEpoch,
		DailyCheckInReward: types.FormatAmount(d.conf.dailyReward),
		RewardSymbol:       d.conf.rewardSymbol,
		Initialized:        inited,
	}, nil
}
