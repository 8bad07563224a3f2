// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package commands deershooter 的命令行，交易金额按 8 位小数输入
package commands

import (
	"fmt"
	"os"

	dty "github.com/33cn/deershooter/plugin/dapp/deershooter/types"
	commandtypes "github.com/33cn/deershooter/system/dapp/commands/types"
	"github.com/33cn/deershooter/types"
	"github.com/spf13/cobra"
)

// DeerShooterCmd deershooter 命令
func DeerShooterCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "deershooter",
		Short: "Deer shooter game management",
		Args:  cobra.MinimumNArgs(1),
	}
	cmd.AddCommand(
		InitCmd(),
		SetRewardRateCmd(),
		SetReferralBonusCmd(),
		SetParametersCmd(),
		StartRoundCmd(),
		SettleRoundCmd(),
		DepositCmd(),
		WithdrawCmd(),
		WithdrawRewardCmd(),
		AddReferralCmd(),
		CheckInCmd(),
		QueryCmd(),
	)
	return cmd
}

// InitCmd 初始化合约
func InitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Initialize the contract with default config (admin only)",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := commandtypes.NewLocalCtx(cmd, dty.DeerShooterX, dty.ActionInit, &dty.DeerInit{})
			ctx.Send()
		},
	}
}

// SetRewardRateCmd ...
func SetRewardRateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set_rate",
		Short: "Set reward tokens issued per staked coin (admin only)",
		Run:   setRewardRate,
	}
	cmd.Flags().StringP("currency", "c", "1", "currency part of the ratio")
	cmd.Flags().StringP("reward", "r", "2", "reward part of the ratio")
	return cmd
}

func setRewardRate(cmd *cobra.Command, args []string) {
	currency, _ := cmd.Flags().GetString("currency")
	reward, _ := cmd.Flags().GetString("reward")
	params := &dty.SetRewardRate{Currency: currency, Reward: reward}
	ctx := commandtypes.NewLocalCtx(cmd, dty.DeerShooterX, dty.ActionSetRewardRate, params)
	ctx.Send()
}

// SetReferralBonusCmd ...
func SetReferralBonusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set_referral_bonus",
		Short: "Set referral bonus percentage, 0-100 (admin only)",
		Run:   setReferralBonus,
	}
	cmd.Flags().Uint64P("percent", "p", dty.DefaultReferralBonus, "bonus percentage of the player's reward")
	return cmd
}

func setReferralBonus(cmd *cobra.Command, args []string) {
	percent, _ := cmd.Flags().GetUint64("percent")
	params := &dty.SetReferralBonusPercentage{Percent: percent}
	ctx := commandtypes.NewLocalCtx(cmd, dty.DeerShooterX, dty.ActionSetReferralBonusPercentage, params)
	ctx.Send()
}

// SetParametersCmd ...
func SetParametersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set_params",
		Short: "Set odds parameters, each 100 times the real value (admin only)",
		Run:   setParameters,
	}
	cmd.Flags().Uint64("zp", dty.DefaultZp, "zero point, at most 10000")
	cmd.Flags().Uint64("a", dty.DefaultA, "A")
	cmd.Flags().Uint64("b", dty.DefaultB, "B")
	return cmd
}

func setParameters(cmd *cobra.Command, args []string) {
	zp, _ := cmd.Flags().GetUint64("zp")
	a, _ := cmd.Flags().GetUint64("a")
	b, _ := cmd.Flags().GetUint64("b")
	params := &dty.SetParameters{Zp: zp, A: a, B: b}
	ctx := commandtypes.NewLocalCtx(cmd, dty.DeerShooterX, dty.ActionSetParameters, params)
	ctx.Send()
}

// StartRoundCmd 下注
func StartRoundCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "play",
		Short: "Stake coins and start a new round",
		Run:   startRound,
	}
	cmd.Flags().StringP("amount", "a", "", "stake amount, e.g. 10.5")
	cmd.MarkFlagRequired("amount")
	cmd.Flags().StringP("player", "p", "", "player address, default the signer")
	return cmd
}

func startRound(cmd *cobra.Command, args []string) {
	amount, err := parseAmountFlag(cmd, "amount")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}
	player, _ := cmd.Flags().GetString("player")
	params := &dty.StartRound{Player: player, Stake: amount}
	ctx := commandtypes.NewLocalCtx(cmd, dty.DeerShooterX, dty.ActionStartRound, params)
	ctx.Send()
}

// SettleRoundCmd 结算
func SettleRoundCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settle",
		Short: "Report the score of a round and pay the player (admin only)",
		Run:   settleRound,
	}
	cmd.Flags().Uint64P("round", "r", 0, "round id")
	cmd.MarkFlagRequired("round")
	cmd.Flags().Int64P("score", "s", 0, "game score")
	cmd.MarkFlagRequired("score")
	return cmd
}

func settleRound(cmd *cobra.Command, args []string) {
	round, _ := cmd.Flags().GetUint64("round")
	score, _ := cmd.Flags().GetInt64("score")
	params := &dty.SettleRound{RoundID: round, Score: score}
	ctx := commandtypes.NewLocalCtx(cmd, dty.DeerShooterX, dty.ActionSettleRound, params)
	ctx.Send()
}

// DepositCmd 奖池充值
func DepositCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "deposit",
		Short: "Deposit coins into the payout pool (admin only)",
		Run:   deposit,
	}
	cmd.Flags().StringP("amount", "a", "", "deposit amount")
	cmd.MarkFlagRequired("amount")
	return cmd
}

func deposit(cmd *cobra.Command, args []string) {
	amount, err := parseAmountFlag(cmd, "amount")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}
	ctx := commandtypes.NewLocalCtx(cmd, dty.DeerShooterX, dty.ActionAdminDeposit, &dty.AdminDeposit{Amount: amount})
	ctx.Send()
}

// WithdrawCmd 奖池取款
func WithdrawCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "withdraw",
		Short: "Withdraw coins from the payout pool (admin only)",
		Run:   withdraw,
	}
	addToAmountFlags(cmd)
	return cmd
}

func withdraw(cmd *cobra.Command, args []string) {
	to, _ := cmd.Flags().GetString("to")
	amount, err := parseAmountFlag(cmd, "amount")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}
	params := &dty.AdminWithdraw{To: to, Amount: amount}
	ctx := commandtypes.NewLocalCtx(cmd, dty.DeerShooterX, dty.ActionAdminWithdraw, params)
	ctx.Send()
}

// WithdrawRewardCmd 取回合约持有的奖励 token
func WithdrawRewardCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "withdraw_reward",
		Short: "Withdraw reward tokens held by the contract (admin only)",
		Run:   withdrawReward,
	}
	addToAmountFlags(cmd)
	return cmd
}

func withdrawReward(cmd *cobra.Command, args []string) {
	to, _ := cmd.Flags().GetString("to")
	amount, err := parseAmountFlag(cmd, "amount")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}
	params := &dty.AdminWithdrawReward{To: to, Amount: amount}
	ctx := commandtypes.NewLocalCtx(cmd, dty.DeerShooterX, dty.ActionAdminWithdrawReward, params)
	ctx.Send()
}

func addToAmountFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("to", "t", "", "receiver address")
	cmd.MarkFlagRequired("to")
	cmd.Flags().StringP("amount", "a", "", "amount")
	cmd.MarkFlagRequired("amount")
}

// AddReferralCmd 绑定推荐人
func AddReferralCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add_referral",
		Short: "Bind a referrer to an account, only the first binding takes effect",
		Run:   addReferral,
	}
	cmd.Flags().StringP("addr", "a", "", "referred account address")
	cmd.MarkFlagRequired("addr")
	cmd.Flags().StringP("referrer", "r", "", "referrer address")
	cmd.MarkFlagRequired("referrer")
	return cmd
}

func addReferral(cmd *cobra.Command, args []string) {
	addr, _ := cmd.Flags().GetString("addr")
	referrer, _ := cmd.Flags().GetString("referrer")
	params := &dty.AddReferral{ToBeReferred: addr, Referrer: referrer}
	ctx := commandtypes.NewLocalCtx(cmd, dty.DeerShooterX, dty.ActionAddReferral, params)
	ctx.Send()
}

// CheckInCmd 每日签到
func CheckInCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "checkin",
		Short: "Daily check in for reward tokens",
		Run:   checkIn,
	}
	cmd.Flags().StringP("addr", "a", "", "account address, default the signer")
	return cmd
}

func checkIn(cmd *cobra.Command, args []string) {
	addr, _ := cmd.Flags().GetString("addr")
	ctx := commandtypes.NewLocalCtx(cmd, dty.DeerShooterX, dty.ActionCheckIn, &dty.CheckIn{Account: addr})
	ctx.Send()
}

func parseAmountFlag(cmd *cobra.Command, name string) (string, error) {
	s, _ := cmd.Flags().GetString(name)
	v, err := commandtypes.ParseCoins(s)
	if err != nil {
		return "", err
	}
	return types.FormatAmount(v), nil
}
