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

var (
	oddBase    = uint256.NewInt(dty.OddBase)
	percentAll = uint256.NewInt(100)
)

// round 一局的状态，Open 时带玩家和下注金额
type round struct {
	id     uint64
	status int32
	player string
	stake  *uint256.Int
}

// getRound _P 和 _S 必须同时存在或者同时不存在
func (a *action) getRound(id uint64) (*round, error) {
	current, err := a.getCurrentRound()
	if err != nil {
		return nil, err
	}
	player, hasPlayer, err := a.store.getString(calcRoundPlayerKey(id))
	if err != nil {
		return nil, err
	}
	hasStake, err := a.store.has(calcRoundStakeKey(id))
	if err != nil {
		return nil, err
	}
	r := &round{id: id, stake: new(uint256.Int)}
	switch {
	case hasPlayer && hasStake:
		if id == 0 || id > current {
			return nil, errors.Wrapf(types.ErrCorruptedState, "round %d beyond current %d", id, current)
		}
		stake, err := a.store.getAmount(calcRoundStakeKey(id))
		if err != nil {
			return nil, err
		}
		r.status = dty.RoundOpen
		r.player = player
		r.stake = stake
	case hasPlayer != hasStake:
		return nil, errors.Wrapf(types.ErrCorruptedState, "round %d player %v stake %v", id, hasPlayer, hasStake)
	case id == 0 || id > current:
		r.status = dty.RoundNotStarted
	default:
		r.status = dty.RoundSettled
	}
	return r, nil
}

// calcCredit 下注获得的奖励 token 数量 stake * rate / 10^30
func (a *action) calcCredit(stake *uint256.Int) (*uint256.Int, error) {
	rate, err := a.getRewardRate()
	if err != nil {
		return nil, err
	}
	return safemath.MulDiv(stake, rate, magnitude)
}

// StartRound 玩家下注开始新的一局
func (a *action) StartRound(payload *dty.StartRound) (*types.Receipt, error) {
	player := payload.Player
	if player == "" {
		player = a.fromaddr
	}
	if err := a.requireWitness(player); err != nil {
		return nil, err
	}
	if err := a.requireInitialized(); err != nil {
		return nil, err
	}
	stake, err := types.ParseAmount(payload.Stake)
	if err != nil {
		return nil, errors.Wrapf(err, "stake %s", payload.Stake)
	}
	if !a.conf.minStake.Lt(stake) {
		return nil, errors.Wrapf(types.ErrStakeTooSmall, "stake %s min %s", payload.Stake, types.FormatAmount(a.conf.minStake))
	}
	if err := a.transferCurrency(player, a.custodian, stake); err != nil {
		return nil, err
	}

	current, err := a.getCurrentRound()
	if err != nil {
		return nil, err
	}
	id := current + 1
	if id == 0 {
		return nil, types.ErrArithmeticOverflow
	}
	if err := a.store.setUint64(keyCurrentRound, id); err != nil {
		return nil, err
	}
	if err := a.store.setString(calcRoundPlayerKey(id), player); err != nil {
		return nil, err
	}
	if err := a.store.setAmount(calcRoundStakeKey(id), stake); err != nil {
		return nil, err
	}
	pool, err := a.getPool()
	if err != nil {
		return nil, err
	}
	if pool, err = safemath.Add(pool, stake); err != nil {
		return nil, err
	}
	if err := a.setPool(pool); err != nil {
		return nil, err
	}

	credit, err := a.calcCredit(stake)
	if err != nil {
		return nil, err
	}
	if err := a.issueReward(player, credit); err != nil {
		return nil, err
	}
	bonus := new(uint256.Int)
	referrer, hasReferrer, err := a.getReferral(player)
	if err != nil {
		return nil, err
	}
	if hasReferrer {
		percent, err := a.getReferralBonus()
		if err != nil {
			return nil, err
		}
		if bonus, err = safemath.MulDiv(credit, uint256.NewInt(percent), percentAll); err != nil {
			return nil, err
		}
		if err := a.issueReward(referrer, bonus); err != nil {
			return nil, err
		}
	}

	dlog.Info("StartRound", "round", id, "player", player, "stake", payload.Stake, "credit", types.FormatAmount(credit))
	a.addLog(dty.TyLogDeerStartRound, map[string]interface{}{
		"roundId":  id,
		"player":   player,
		"stake":    types.FormatAmount(stake),
		"credit":   types.FormatAmount(credit),
		"referrer": referrer,
		"bonus":    types.FormatAmount(bonus),
		"pool":     types.FormatAmount(pool),
	})
	return a.receipt(), nil
}

// SettleRound 管理员提交得分，按赔率从奖池支付
//
// 奖池不足或者转账失败时这一局保持 Open，可以稍后重试。
func (a *action) SettleRound(payload *dty.SettleRound) (*types.Receipt, error) {
	if err := a.requireAdmin(); err != nil {
		return nil, err
	}
	if err := a.requireInitialized(); err != nil {
		return nil, err
	}
	r, err := a.getRound(payload.RoundID)
	if err != nil {
		return nil, err
	}
	if r.status != dty.RoundOpen {
		return nil, errors.Wrapf(types.ErrRoundNotOpenOrAlreadySettled, "round %d is %s", r.id, dty.RoundStatusName[r.status])
	}
	zp, pa, pb, err := a.getParameters()
	if err != nil {
		return nil, err
	}
	odd, err := CalculateOdd(payload.Score, zp, pa, pb, a.blockhash)
	if err != nil {
		return nil, err
	}
	pool, err := a.getPool()
	if err != nil {
		return nil, err
	}
	payout := new(uint256.Int)
	if odd > 0 {
		if payout, err = safemath.MulDiv(uint256.NewInt(odd), r.stake, oddBase); err != nil {
			return nil, err
		}
		if pool.Lt(payout) {
			return nil, errors.Wrapf(types.ErrInsufficientPool, "payout %s pool %s", types.FormatAmount(payout), types.FormatAmount(pool))
		}
		if !payout.IsZero() {
			if err := a.transferCurrency(a.custodian, r.player, payout); err != nil {
				return nil, err
			}
		}
		if pool, err = safemath.Sub(pool, payout); err != nil {
			return nil, err
		}
		if err := a.setPool(pool); err != nil {
			return nil, err
		}
	}
	if err := a.store.del(calcRoundPlayerKey(r.id)); err != nil {
		return nil, err
	}
	if err := a.store.del(calcRoundStakeKey(r.id)); err != nil {
		return nil, err
	}

	dlog.Info("SettleRound", "round", r.id, "player", r.player, "score", payload.Score, "odd", odd, "payout", types.FormatAmount(payout))
	a.addLog(dty.TyLogDeerSettleRound, map[string]interface{}{
		"roundId": r.id,
		"player":  r.player,
		"score":   payload.Score,
		"odd":     odd,
		"payout":  types.FormatAmount(payout),
		"pool":    types.FormatAmount(pool),
	})
	return a.receipt(), nil
}

// AdminDeposit 管理员向奖池充值
func (a *action) AdminDeposit(payload *dty.AdminDeposit) (*types.Receipt, error) {
	if err := a.requireAdmin(); err != nil {
		return nil, err
	}
	if err := a.requireInitialized(); err != nil {
		return nil, err
	}
	amount, err := types.ParseAmount(payload.Amount)
	if err != nil {
		return nil, errors.Wrapf(err, "amount %s", payload.Amount)
	}
	if amount.IsZero() {
		return nil, types.ErrAmount
	}
	if err := a.transferCurrency(a.fromaddr, a.custodian, amount); err != nil {
		return nil, err
	}
	pool, err := a.getPool()
	if err != nil {
		return nil, err
	}
	if pool, err = safemath.Add(pool, amount); err != nil {
		return nil, err
	}
	if err := a.setPool(pool); err != nil {
		return nil, err
	}
	a.addLog(dty.TyLogDeerAdminDeposit, map[string]interface{}{
		"amount": types.FormatAmount(amount),
		"pool":   types.FormatAmount(pool),
	})
	return a.receipt(), nil
}

// AdminWithdraw 当前一局没有待结算时，管理员可以从奖池取款
func (a *action) AdminWithdraw(payload *dty.AdminWithdraw) (*types.Receipt, error) {
	if err := a.requireAdmin(); err != nil {
		return nil, err
	}
	if err := a.requireInitialized(); err != nil {
		return nil, err
	}
	if err := requireScriptHash(payload.To); err != nil {
		return nil, err
	}
	amount, err := types.ParseAmount(payload.Amount)
	if err != nil {
		return nil, errors.Wrapf(err, "amount %s", payload.Amount)
	}
	if amount.IsZero() {
		return nil, types.ErrAmount
	}
	current, err := a.getCurrentRound()
	if err != nil {
		return nil, err
	}
	r, err := a.getRound(current)
	if err != nil {
		return nil, err
	}
	if r.status == dty.RoundOpen {
		return nil, errors.Wrapf(types.ErrRoundPending, "round %d", current)
	}
	pool, err := a.getPool()
	if err != nil {
		return nil, err
	}
	if pool.Lt(amount) {
		return nil, errors.Wrapf(types.ErrInsufficientPool, "amount %s pool %s", payload.Amount, types.FormatAmount(pool))
	}
	if pool, err = safemath.Sub(pool, amount); err != nil {
		return nil, err
	}
	if err := a.setPool(pool); err != nil {
		return nil, err
	}
	if err := a.transferCurrency(a.custodian, payload.To, amount); err != nil {
		return nil, err
	}
	a.addLog(dty.TyLogDeerAdminWithdraw, map[string]interface{}{
		"to":     payload.To,
		"amount": types.FormatAmount(amount),
		"pool":   types.FormatAmount(pool),
	})
	return a.receipt(), nil
}

// AdminWithdrawReward 取回合约持有的奖励 token，不影响奖池
func (a *action) AdminWithdrawReward(payload *dty.AdminWithdrawReward) (*types.Receipt, error) {
	if err := a.requireAdmin(); err != nil {
		return nil, err
	}
	if err := requireScriptHash(payload.To); err != nil {
		return nil, err
	}
	amount, err := types.ParseAmount(payload.Amount)
	if err != nil {
		return nil, errors.Wrapf(err, "amount %s", payload.Amount)
	}
	if err := a.reward.CheckTransfer(a.custodian, payload.To, amount); err != nil {
		return nil, err
	}
	if err := a.issueReward(payload.To, amount); err != nil {
		return nil, err
	}
	a.addLog(dty.TyLogDeerAdminWithdrawReward, map[string]interface{}{
		"to":     payload.To,
		"amount": types.FormatAmount(amount),
	})
	return a.receipt(), nil
}
