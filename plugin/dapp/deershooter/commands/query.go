// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package commands

import (
	"fmt"
	"os"

	dty "github.com/33cn/deershooter/plugin/dapp/deershooter/types"
	commandtypes "github.com/33cn/deershooter/system/dapp/commands/types"
	"github.com/33cn/deershooter/types"
	"github.com/spf13/cobra"
)

// QueryCmd 查询合约状态
func QueryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "query",
		Short: "Query deer shooter state",
		Args:  cobra.MinimumNArgs(1),
	}
	cmd.AddCommand(
		simpleQueryCmd("pool", "Get payout pool balance", dty.FuncNameGetPoolBalance, parsePool),
		simpleQueryCmd("rate", "Get reward exchange rate", dty.FuncNameGetRewardRate, nil),
		simpleQueryCmd("referral_bonus", "Get referral bonus percentage", dty.FuncNameGetReferralBonusPercentage, nil),
		simpleQueryCmd("params", "Get odds parameters", dty.FuncNameGetParameters, nil),
		simpleQueryCmd("current_round", "Get current round id", dty.FuncNameGetCurrentRound, nil),
		simpleQueryCmd("config", "Get executor config", dty.FuncNameGetConfig, nil),
		RoundStatusCmd(),
		addrQueryCmd("referral", "Get referrer of an account", dty.FuncNameGetReferral),
		addrQueryCmd("can_checkin", "Get today's day index if the account can check in, 0 otherwise", dty.FuncNameCanCheckIn),
		TrialAwardCmd(),
	)
	return cmd
}

func simpleQueryCmd(use, short, funcName string, cb commandtypes.Callback) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Run: func(cmd *cobra.Command, args []string) {
			ctx := commandtypes.NewLocalCtx(cmd, dty.DeerShooterX, funcName, nil)
			if cb != nil {
				ctx.SetResultCb(cb)
			}
			ctx.Run()
		},
	}
}

func addrQueryCmd(use, short, funcName string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Run: func(cmd *cobra.Command, args []string) {
			addr, _ := cmd.Flags().GetString("addr")
			ctx := commandtypes.NewLocalCtx(cmd, dty.DeerShooterX, funcName, &types.ReqAddr{Addr: addr})
			ctx.Run()
		},
	}
	cmd.Flags().StringP("addr", "a", "", "account address")
	cmd.MarkFlagRequired("addr")
	return cmd
}

// RoundStatusCmd ...
func RoundStatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "round",
		Short: "Get round status",
		Run: func(cmd *cobra.Command, args []string) {
			round, _ := cmd.Flags().GetUint64("round")
			ctx := commandtypes.NewLocalCtx(cmd, dty.DeerShooterX, dty.FuncNameGetRoundStatus, &dty.ReqRound{RoundID: round})
			ctx.Run()
		},
	}
	cmd.Flags().Uint64P("round", "r", 0, "round id")
	cmd.MarkFlagRequired("round")
	return cmd
}

// TrialAwardCmd 用最新区块试算奖金
func TrialAwardCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "trial",
		Short: "Estimate the award of a stake and score with the latest block",
		Run:   trialAward,
	}
	cmd.Flags().StringP("amount", "a", "", "stake amount")
	cmd.MarkFlagRequired("amount")
	cmd.Flags().Int64P("score", "s", 0, "game score")
	return cmd
}

func trialAward(cmd *cobra.Command, args []string) {
	amount, err := parseAmountFlag(cmd, "amount")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}
	score, _ := cmd.Flags().GetInt64("score")
	ctx := commandtypes.NewLocalCtx(cmd, dty.DeerShooterX, dty.FuncNameGetTrialGameAward, &dty.ReqTrialAward{Stake: amount, Score: score})
	ctx.SetResultCb(parseTrialAward)
	ctx.Run()
}

// PoolResult 奖池余额，Raw 为最小单位
type PoolResult struct {
	Amount string `json:"amount"`
	Raw    string `json:"raw"`
}

func parsePool(res interface{}) (interface{}, error) {
	reply := res.(*dty.ReplyAmount)
	raw, err := types.ParseAmount(reply.Amount)
	if err != nil {
		return nil, err
	}
	return &PoolResult{Amount: commandtypes.FormatCoins(raw), Raw: reply.Amount}, nil
}

// TrialResult 试算结果
type TrialResult struct {
	Odd   uint64 `json:"odd"`
	Award string `json:"award"`
	Raw   string `json:"raw"`
}

func parseTrialAward(res interface{}) (interface{}, error) {
	reply := res.(*dty.ReplyTrialAward)
	raw, err := types.ParseAmount(reply.Award)
	if err != nil {
		return nil, err
	}
	return &TrialResult{Odd: reply.Odd, Award: commandtypes.FormatCoins(raw), Raw: reply.Award}, nil
}
