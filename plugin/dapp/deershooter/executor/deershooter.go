// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

/*
deershooter 是一个按局下注、管理员结算的奖池合约。

玩家下注开始一局(StartRound)，下注进入奖池，同时按兑换比例获得奖励 token，
绑定了推荐人的玩家下注时推荐人获得一定比例的 token。
管理员提交得分结算(SettleRound)，赔率由得分和区块哈希决定，奖金从奖池支付。
玩家每天可以签到领取固定数量的奖励 token。
*/

import (
	"github.com/33cn/deershooter/account"
	dty "github.com/33cn/deershooter/plugin/dapp/deershooter/types"
	drivers "github.com/33cn/deershooter/system/dapp"
	"github.com/33cn/deershooter/types"
	"github.com/holiman/uint256"
	log "github.com/inconshreveable/log15"
	"github.com/pkg/errors"
)

var dlog = log.New("module", "execs.deershooter")

var driverName = dty.DeerShooterX

// subConfig 解析后的子配置
type subConfig struct {
	admin        string
	minStake     *uint256.Int
	checkInEpoch int64
	dailyReward  *uint256.Int
	rewardSymbol string
}

func defaultConfig() *subConfig {
	minStake, _ := types.ParseAmount(dty.DefaultMinStake)
	dailyReward, _ := types.ParseAmount(dty.DefaultDailyReward)
	return &subConfig{
		admin:        types.GenesisAddr,
		minStake:     minStake,
		checkInEpoch: dty.DefaultCheckInEpoch,
		dailyReward:  dailyReward,
		rewardSymbol: dty.DefaultRewardSymbol,
	}
}

// parseConfig 没有配置的项使用默认值
func parseConfig(sub []byte) (*subConfig, error) {
	cfg := defaultConfig()
	if len(sub) == 0 {
		return cfg, nil
	}
	var c dty.Config
	types.MustDecode(sub, &c)
	if c.Admin != "" {
		if err := requireScriptHash(c.Admin); err != nil {
			return nil, errors.Wrapf(err, "admin %s", c.Admin)
		}
		cfg.admin = c.Admin
	}
	if c.MinStake != "" {
		v, err := types.ParseAmount(c.MinStake)
		if err != nil {
			return nil, errors.Wrapf(err, "minStake %s", c.MinStake)
		}
		cfg.minStake = v
	}
	if c.DailyCheckInReward != "" {
		v, err := types.ParseAmount(c.DailyCheckInReward)
		if err != nil {
			return nil, errors.Wrapf(err, "dailyCheckInReward %s", c.DailyCheckInReward)
		}
		cfg.dailyReward = v
	}
	if c.CheckInEpoch < 0 {
		return nil, errors.Wrapf(types.ErrInvalidParameters, "checkInEpoch %d", c.CheckInEpoch)
	}
	cfg.checkInEpoch = c.CheckInEpoch
	if c.RewardSymbol != "" {
		if !types.CheckSymbol(c.RewardSymbol) {
			return nil, errors.Wrapf(types.ErrSymbolNameNotAllow, "rewardSymbol %s", c.RewardSymbol)
		}
		cfg.rewardSymbol = c.RewardSymbol
	}
	return cfg, nil
}

// Init 注册执行器，子配置错误时 panic
func Init(name string, sub []byte) {
	cfg, err := parseConfig(sub)
	if err != nil {
		panic(err)
	}
	dlog.Info("Init deershooter", "admin", cfg.admin, "minStake", types.FormatAmount(cfg.minStake),
		"rewardSymbol", cfg.rewardSymbol, "checkInEpoch", cfg.checkInEpoch)
	drivers.Register(driverName, func() drivers.Driver {
		return newDeerShooter(cfg)
	}, 0)
}

// GetName ...
func GetName() string {
	return newDeerShooter(defaultConfig()).GetName()
}

// DeerShooter 执行器
type DeerShooter struct {
	drivers.DriverBase
	conf     *subConfig
	currency CurrencyLedger
	reward   RewardToken
}

func newDeerShooter(cfg *subConfig) *DeerShooter {
	d := &DeerShooter{conf: cfg}
	d.SetChild(d)
	return d
}

// GetDriverName ...
func (d *DeerShooter) GetDriverName() string {
	return driverName
}

// SetCurrencyLedger 替换原生币账户
func (d *DeerShooter) SetCurrencyLedger(l CurrencyLedger) {
	d.currency = l
}

// SetRewardToken 替换奖励 token
func (d *DeerShooter) SetRewardToken(t RewardToken) {
	d.reward = t
}

func (d *DeerShooter) getCurrencyLedger() CurrencyLedger {
	if d.currency != nil {
		return d.currency
	}
	return d.GetCoinsAccount()
}

func (d *DeerShooter) getRewardToken() (RewardToken, error) {
	if d.reward != nil {
		return d.reward, nil
	}
	return account.NewAccountDB(types.TokenX, d.conf.rewardSymbol, d.GetStateDB())
}
