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

// magnitude 兑换比例的精度
var magnitude = new(uint256.Int).Exp(uint256.NewInt(10), uint256.NewInt(dty.MagnitudeExp))

func (a *action) isInitialized() (bool, error) {
	v, ok, err := a.store.getUint64(keyInited)
	if err != nil {
		return false, err
	}
	return ok && v == 1, nil
}

func (a *action) requireInitialized() error {
	ok, err := a.isInitialized()
	if err != nil {
		return err
	}
	if !ok {
		return types.ErrNotInitialized
	}
	return nil
}

func (a *action) getPool() (*uint256.Int, error) {
	return a.store.getAmount(keyPool)
}

func (a *action) setPool(v *uint256.Int) error {
	return a.store.setAmount(keyPool, v)
}

func (a *action) getRewardRate() (*uint256.Int, error) {
	return a.store.getAmount(keyRewardRate)
}

func (a *action) getReferralBonus() (uint64, error) {
	v, _, err := a.store.getUint64(keyReferralBonus)
	return v, err
}

func (a *action) getCurrentRound() (uint64, error) {
	v, _, err := a.store.getUint64(keyCurrentRound)
	return v, err
}

func (a *action) getParameters() (zp, pa, pb uint64, err error) {
	if zp, _, err = a.store.getUint64(keyParamZp); err != nil {
		return 0, 0, 0, err
	}
	if pa, _, err = a.store.getUint64(keyParamA); err != nil {
		return 0, 0, 0, err
	}
	if pb, _, err = a.store.getUint64(keyParamB); err != nil {
		return 0, 0, 0, err
	}
	return zp, pa, pb, nil
}

// calcRewardRate reward * 10^30 / currency
func calcRewardRate(currency, reward *uint256.Int) (*uint256.Int, error) {
	return safemath.MulDiv(reward, magnitude, currency)
}

// Init 管理员初始化合约，写入默认配置
func (a *action) Init() (*types.Receipt, error) {
	if err := a.requireAdmin(); err != nil {
		return nil, err
	}
	inited, err := a.isInitialized()
	if err != nil {
		return nil, err
	}
	if inited {
		return nil, types.ErrAlreadyInitialized
	}
	if err := a.store.setUint64(keyInited, 1); err != nil {
		return nil, err
	}
	if err := a.store.setUint64(keyReferralBonus, dty.DefaultReferralBonus); err != nil {
		return nil, err
	}
	rate, err := calcRewardRate(uint256.NewInt(dty.DefaultRateCurrency), uint256.NewInt(dty.DefaultRateReward))
	if err != nil {
		return nil, err
	}
	if err := a.store.setAmount(keyRewardRate, rate); err != nil {
		return nil, err
	}
	if err := a.writeParameters(dty.DefaultZp, dty.DefaultA, dty.DefaultB); err != nil {
		return nil, err
	}
	dlog.Info("deershooter init", "admin", a.fromaddr, "height", a.height)
	a.addLog(dty.TyLogDeerInit, map[string]interface{}{
		"admin":         a.fromaddr,
		"rate":          types.FormatAmount(rate),
		"referralBonus": dty.DefaultReferralBonus,
	})
	return a.receipt(), nil
}

// SetRewardRate 每 currency 个原生币兑换 reward 个奖励 token
func (a *action) SetRewardRate(payload *dty.SetRewardRate) (*types.Receipt, error) {
	if err := a.requireAdmin(); err != nil {
		return nil, err
	}
	if err := a.requireInitialized(); err != nil {
		return nil, err
	}
	currency, err := types.ParseAmount(payload.Currency)
	if err != nil {
		return nil, errors.Wrapf(err, "currency %s", payload.Currency)
	}
	reward, err := types.ParseAmount(payload.Reward)
	if err != nil {
		return nil, errors.Wrapf(err, "reward %s", payload.Reward)
	}
	rate, err := calcRewardRate(currency, reward)
	if err != nil {
		return nil, err
	}
	if err := a.store.setAmount(keyRewardRate, rate); err != nil {
		return nil, err
	}
	a.addLog(dty.TyLogDeerSetRewardRate, map[string]interface{}{
		"currency": payload.Currency,
		"reward":   payload.Reward,
		"rate":     types.FormatAmount(rate),
	})
	return a.receipt(), nil
}

// SetReferralBonusPercentage 推荐人获得被推荐人奖励的百分比
func (a *action) SetReferralBonusPercentage(payload *dty.SetReferralBonusPercentage) (*types.Receipt, error) {
	if err := a.requireAdmin(); err != nil {
		return nil, err
	}
	if err := a.requireInitialized(); err != nil {
		return nil, err
	}
	if payload.Percent > dty.MaxReferralBonus {
		return nil, errors.Wrapf(types.ErrInvalidParameters, "percent %d", payload.Percent)
	}
	if err := a.store.setUint64(keyReferralBonus, payload.Percent); err != nil {
		return nil, err
	}
	a.addLog(dty.TyLogDeerSetReferralBonus, map[string]interface{}{
		"percent": payload.Percent,
	})
	return a.receipt(), nil
}

// SetParameters odds 曲线参数
func (a *action) SetParameters(payload *dty.SetParameters) (*types.Receipt, error) {
	if err := a.requireAdmin(); err != nil {
		return nil, err
	}
	if err := a.requireInitialized(); err != nil {
		return nil, err
	}
	if payload.Zp > dty.MaxZp {
		return nil, errors.Wrapf(types.ErrInvalidParameters, "zp %d", payload.Zp)
	}
	if err := a.writeParameters(payload.Zp, payload.A, payload.B); err != nil {
		return nil, err
	}
	a.addLog(dty.TyLogDeerSetParameters, map[string]interface{}{
		"zp": payload.Zp,
		"a":  payload.A,
		"b":  payload.B,
	})
	return a.receipt(), nil
}

func (a *action) writeParameters(zp, pa, pb uint64) error {
	if err := a.store.setUint64(keyParamZp, zp); err != nil {
		return err
	}
	if err := a.store.setUint64(keyParamA, pa); err != nil {
		return err
	}
	return a.store.setUint64(keyParamB, pb)
}
