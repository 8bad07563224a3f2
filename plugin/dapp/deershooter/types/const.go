// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

// DeerShooterX 执行器名
const DeerShooterX = "deershooter"

// action 名，对应执行器的 Exec_<action>
const (
	ActionInit                       = "Init"
	ActionSetRewardRate              = "SetRewardRate"
	ActionSetReferralBonusPercentage = "SetReferralBonusPercentage"
	ActionSetParameters              = "SetParameters"
	ActionStartRound                 = "StartRound"
	ActionSettleRound                = "SettleRound"
	ActionAdminDeposit               = "AdminDeposit"
	ActionAdminWithdraw              = "AdminWithdraw"
	ActionAdminWithdrawReward        = "AdminWithdrawReward"
	ActionAddReferral                = "AddReferral"
	ActionCheckIn                    = "CheckIn"
)

// 查询名，对应执行器的 Query_<func>
const (
	FuncNameGetPoolBalance             = "GetPoolBalance"
	FuncNameGetRewardRate              = "GetRewardRate"
	FuncNameGetReferralBonusPercentage = "GetReferralBonusPercentage"
	FuncNameGetParameters              = "GetParameters"
	FuncNameGetCurrentRound            = "GetCurrentRound"
	FuncNameGetRoundStatus             = "GetRoundStatus"
	FuncNameGetReferral                = "GetReferral"
	FuncNameCanCheckIn                 = "CanCheckIn"
	FuncNameGetTrialGameAward          = "GetTrialGameAward"
	FuncNameGetConfig                  = "GetConfig"
)

// log type
const (
	TyLogDeerInit = iota + 1601
	TyLogDeerSetRewardRate
	TyLogDeerSetReferralBonus
	TyLogDeerSetParameters
	TyLogDeerStartRound
	TyLogDeerSettleRound
	TyLogDeerAdminDeposit
	TyLogDeerAdminWithdraw
	TyLogDeerAdminWithdrawReward
	TyLogDeerAddReferral
	TyLogDeerCheckIn
)

// round 状态
const (
	RoundNotStarted int32 = iota
	RoundOpen
	RoundSettled
)

// RoundStatusName ...
var RoundStatusName = map[int32]string{
	RoundNotStarted: "NotStarted",
	RoundOpen:       "Open",
	RoundSettled:    "Settled",
}

const (
	// MagnitudeExp 兑换比例的精度 10^30
	MagnitudeExp = 30
	// DaySeconds 签到按天计算
	DaySeconds = 86400
	// OddBase odd 为 100 表示 1 倍
	OddBase = 100
	// MaxZp zp 上限，100 * 100
	MaxZp = 10000
	// MaxReferralBonus 推荐奖励百分比上限
	MaxReferralBonus = 100
)

// Init 写入的默认值，zp = 0.02, A = 0.7, B = 30，均为实际值的 100 倍
const (
	DefaultReferralBonus = 10
	DefaultRateCurrency  = 1
	DefaultRateReward    = 2
	DefaultZp            = 2
	DefaultA             = 70
	DefaultB             = 3000
	DefaultMinStake      = "100000000"
	DefaultDailyReward   = "1000000000"
	DefaultRewardSymbol  = "LUCKY"
	DefaultCheckInEpoch  = 0
)
