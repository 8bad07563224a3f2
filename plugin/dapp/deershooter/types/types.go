// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package types deershooter 的交易参数、查询参数和返回值，金额都是最小单位的十进制字符串
package types

// Config 执行器的子配置 [exec.sub.deershooter]
type Config struct {
	Admin              string `json:"admin,omitempty"`
	MinStake           string `json:"minStake,omitempty"`
	CheckInEpoch       int64  `json:"checkInEpoch,omitempty"`
	DailyCheckInReward string `json:"dailyCheckInReward,omitempty"`
	RewardSymbol       string `json:"rewardSymbol,omitempty"`
}

// DeerInit 初始化合约
type DeerInit struct{}

// SetRewardRate 每 currency 个币奖励 reward 个 token
type SetRewardRate struct {
	Currency string `json:"currency"`
	Reward   string `json:"reward"`
}

// SetReferralBonusPercentage ...
type SetReferralBonusPercentage struct {
	Percent uint64 `json:"percent"`
}

// SetParameters odds 曲线参数，均为实际值的 100 倍
type SetParameters struct {
	Zp uint64 `json:"zp"`
	A  uint64 `json:"a"`
	B  uint64 `json:"b"`
}

// StartRound 下注开始一局，Player 为空时使用交易签名地址
type StartRound struct {
	Player string `json:"player,omitempty"`
	Stake  string `json:"stake"`
}

// SettleRound 管理员提交一局的得分
type SettleRound struct {
	RoundID uint64 `json:"roundId"`
	Score   int64  `json:"score"`
}

// AdminDeposit 管理员向奖池充值
type AdminDeposit struct {
	Amount string `json:"amount"`
}

// AdminWithdraw 管理员从奖池取款
type AdminWithdraw struct {
	To     string `json:"to"`
	Amount string `json:"amount"`
}

// AdminWithdrawReward 管理员取回合约持有的奖励 token
type AdminWithdrawReward struct {
	To     string `json:"to"`
	Amount string `json:"amount"`
}

// AddReferral 绑定推荐人，只能绑定一次
type AddReferral struct {
	ToBeReferred string `json:"toBeReferred"`
	Referrer     string `json:"referrer"`
}

// CheckIn 每日签到，Account 为空时使用交易签名地址
type CheckIn struct {
	Account string `json:"account,omitempty"`
}

// ReqRound ...
type ReqRound struct {
	RoundID uint64 `json:"roundId"`
}

// ReqTrialAward 按当前区块试算奖金
type ReqTrialAward struct {
	Stake string `json:"stake"`
	Score int64  `json:"score"`
}

// ReplyAmount ...
type ReplyAmount struct {
	Amount string `json:"amount"`
}

// ReplyRewardRate Rate = reward * 10^30 / currency
type ReplyRewardRate struct {
	Rate      string `json:"rate"`
	Magnitude string `json:"magnitude"`
}

// ReplyPercent ...
type ReplyPercent struct {
	Percent uint64 `json:"percent"`
}

// ReplyParameters ...
type ReplyParameters struct {
	Zp uint64 `json:"zp"`
	A  uint64 `json:"a"`
	B  uint64 `json:"b"`
}

// ReplyCurrentRound ...
type ReplyCurrentRound struct {
	RoundID uint64 `json:"roundId"`
}

// ReplyRoundStatus Open 状态时带上玩家和下注金额
type ReplyRoundStatus struct {
	RoundID    uint64 `json:"roundId"`
	Status     int32  `json:"status"`
	StatusName string `json:"statusName"`
	Player     string `json:"player,omitempty"`
	Stake      string `json:"stake,omitempty"`
}

// ReplyReferral ...
type ReplyReferral struct {
	Addr     string `json:"addr"`
	Referrer string `json:"referrer,omitempty"`
}

// ReplyCheckIn Day 为 0 表示今天不能签到
type ReplyCheckIn struct {
	Addr string `json:"addr"`
	Day  uint64 `json:"day"`
}

// ReplyTrialAward ...
type ReplyTrialAward struct {
	Odd   uint64 `json:"odd"`
	Award string `json:"award"`
}

// ReplyConfig 执行器的运行配置和合约状态
type ReplyConfig struct {
	Admin              string `json:"admin"`
	Custodian          string `json:"custodian"`
	MinStake           string `json:"minStake"`
	CheckInEpoch       int64  `json:"checkInEpoch"`
	DailyCheckInReward string `json:"dailyCheckInReward"`
	RewardSymbol       string `json:"rewardSymbol"`
	Initialized        bool   `json:"initialized"`
}
