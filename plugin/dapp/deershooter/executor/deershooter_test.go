// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"encoding/hex"
	"encoding/json"
	"testing"

	"github.com/33cn/deershooter/account"
	"github.com/33cn/deershooter/common/crypto"
	"github.com/33cn/deershooter/common/crypto/secp256k1"
	dbm "github.com/33cn/deershooter/common/db"
	sexec "github.com/33cn/deershooter/executor"
	dty "github.com/33cn/deershooter/plugin/dapp/deershooter/types"
	"github.com/33cn/deershooter/types"
	"github.com/holiman/uint256"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	adminKey     = "CC38546E9E659D15E6B4893F0AB32A06D103931A8230B0BDE71459D2B27D6944"
	adminAddr    = "14KEKbYtKKQm4wMthSK9J4La4nAiidGozt"
	playerKey    = "4257D8692EF7FE13C68B65D6A52F03933DB2FA5CE8FAF210B5B8B80C721CED01"
	playerAddr   = "12qyocayNF7Lv6C9qW4avxs2E7U41fKSfv"
	referrerKey  = "0000000000000000000000000000000000000000000000000000000000000001"
	referrerAddr = "1BgGZ9tcN4rm9KBzDn7KprQz87SZ26SAMH"
	otherKey     = "0000000000000000000000000000000000000000000000000000000000000002"
	otherAddr    = "1cMh228HTCiwS8ZsaakH8A8wze1JR5ZsP"
	custodian    = "1CaSKAFNNZUQ1H8LxbCAxxdwKriK9JYFt"
	badAddr      = "14KEKbYtKKQm4wMthSK9J4La4nAiidGozu"

	startTime int64 = 1600000000
)

type testEnv struct {
	t         *testing.T
	statedb   *sexec.StateDB
	coins     *account.DB
	token     *account.DB
	conf      *subConfig
	reward    RewardToken
	height    int64
	blocktime int64
	blockhash []byte
}

func newTestEnv(t *testing.T) *testEnv {
	db, err := dbm.NewDB("deershooter", dbm.MemDBBackendStr, "", 0)
	require.Nil(t, err)
	statedb := sexec.NewStateDB(db)
	coins := account.NewCoinsAccount()
	coins.SetDB(statedb)
	token, err := account.NewAccountDB(types.TokenX, dty.DefaultRewardSymbol, statedb)
	require.Nil(t, err)

	env := &testEnv{
		t:         t,
		statedb:   statedb,
		coins:     coins,
		token:     token,
		conf:      defaultConfig(),
		height:    1,
		blocktime: startTime,
		blockhash: sampleFor(400000),
	}
	env.mint(adminAddr, "1000000000000")
	env.mint(playerAddr, "100000000000")
	env.mint(otherAddr, "100000000000")
	_, err = token.GenesisInit(custodian, amount(t, "1000000000000000"))
	require.Nil(t, err)
	return env
}

func amount(t *testing.T, s string) *uint256.Int {
	v, err := types.ParseAmount(s)
	require.Nil(t, err)
	return v
}

func (env *testEnv) mint(addr, value string) {
	_, err := env.coins.GenesisInit(addr, amount(env.t, value))
	require.Nil(env.t, err)
}

func (env *testEnv) driver() *DeerShooter {
	d := newDeerShooter(env.conf)
	if env.reward != nil {
		d.SetRewardToken(env.reward)
	}
	d.SetStateDB(env.statedb)
	d.SetEnv(env.height, env.blocktime, env.blockhash)
	return d
}

func getprivkey(t *testing.T, key string) crypto.PrivKey {
	c, err := crypto.New(secp256k1.Name)
	require.Nil(t, err)
	bkey, err := hex.DecodeString(key)
	require.Nil(t, err)
	priv, err := c.PrivKeyFromBytes(bkey)
	require.Nil(t, err)
	return priv
}

// exec 和宿主一样在事务中执行，出错回滚
func (env *testEnv) exec(key, action string, payload interface{}) (*types.Receipt, error) {
	tx, err := types.CreateTx(dty.DeerShooterX, action, payload)
	require.Nil(env.t, err)
	tx.Sign(secp256k1.ID, getprivkey(env.t, key))
	d := env.driver()
	env.height++
	if err := d.CheckTx(tx, 0); err != nil {
		return nil, err
	}
	env.statedb.Begin()
	receipt, err := d.Exec(tx, 0)
	if err != nil {
		env.statedb.Rollback()
		return nil, err
	}
	require.Nil(env.t, env.statedb.Commit())
	return receipt, nil
}

func (env *testEnv) mustExec(key, action string, payload interface{}) *types.Receipt {
	receipt, err := env.exec(key, action, payload)
	require.Nil(env.t, err)
	require.NotNil(env.t, receipt)
	assert.Equal(env.t, int32(types.ExecOk), receipt.Ty)
	return receipt
}

func (env *testEnv) query(funcName string, params interface{}) interface{} {
	var data []byte
	if params != nil {
		var err error
		data, err = json.Marshal(params)
		require.Nil(env.t, err)
	}
	reply, err := env.driver().Query(funcName, data)
	require.Nil(env.t, err)
	return reply
}

func (env *testEnv) init() {
	env.mustExec(adminKey, dty.ActionInit, &dty.DeerInit{})
}

func (env *testEnv) pool() string {
	return env.query(dty.FuncNameGetPoolBalance, nil).(*dty.ReplyAmount).Amount
}

func (env *testEnv) status(id uint64) *dty.ReplyRoundStatus {
	return env.query(dty.FuncNameGetRoundStatus, &dty.ReqRound{RoundID: id}).(*dty.ReplyRoundStatus)
}

func (env *testEnv) balance(addr string) string {
	v, err := env.coins.BalanceOf(addr)
	require.Nil(env.t, err)
	return types.FormatAmount(v)
}

func (env *testEnv) rewardBalance(addr string) string {
	v, err := env.token.BalanceOf(addr)
	require.Nil(env.t, err)
	return types.FormatAmount(v)
}

func findLog(t *testing.T, receipt *types.Receipt, ty int32) map[string]interface{} {
	for _, l := range receipt.Logs {
		if l.Ty == ty {
			m, err := types.DecodeLog(l.Log)
			require.Nil(t, err)
			return m
		}
	}
	t.Fatalf("log %d not found", ty)
	return nil
}

func TestCustodianAddress(t *testing.T) {
	d := newDeerShooter(defaultConfig())
	assert.Equal(t, custodian, d.GetExecAddr())
	assert.Equal(t, dty.DeerShooterX, d.GetName())
}

func TestParseConfig(t *testing.T) {
	cfg, err := parseConfig(nil)
	require.Nil(t, err)
	assert.Equal(t, types.GenesisAddr, cfg.admin)
	assert.Equal(t, "100000000", types.FormatAmount(cfg.minStake))
	assert.Equal(t, "1000000000", types.FormatAmount(cfg.dailyReward))
	assert.Equal(t, "LUCKY", cfg.rewardSymbol)

	cfg, err = parseConfig([]byte(`{"admin":"12qyocayNF7Lv6C9qW4avxs2E7U41fKSfv","minStake":"0","checkInEpoch":86400,"dailyCheckInReward":"5","rewardSymbol":"DEER"}`))
	require.Nil(t, err)
	assert.Equal(t, playerAddr, cfg.admin)
	assert.True(t, cfg.minStake.IsZero())
	assert.Equal(t, int64(86400), cfg.checkInEpoch)
	assert.Equal(t, "5", types.FormatAmount(cfg.dailyReward))
	assert.Equal(t, "DEER", cfg.rewardSymbol)

	_, err = parseConfig([]byte(`{"admin":"14KEKbYtKKQm4wMthSK9J4La4nAiidGozu"}`))
	assert.Equal(t, types.ErrMalformedIdentity, errors.Cause(err))
	_, err = parseConfig([]byte(`{"minStake":"-1"}`))
	assert.Equal(t, types.ErrAmount, errors.Cause(err))
	_, err = parseConfig([]byte(`{"rewardSymbol":"lucky"}`))
	assert.Equal(t, types.ErrSymbolNameNotAllow, errors.Cause(err))
	_, err = parseConfig([]byte(`{"checkInEpoch":-1}`))
	assert.Equal(t, types.ErrInvalidParameters, errors.Cause(err))
}

func TestInit(t *testing.T) {
	env := newTestEnv(t)
	_, err := env.exec(playerKey, dty.ActionInit, &dty.DeerInit{})
	assert.Equal(t, types.ErrUnauthorized, err)

	reply := env.query(dty.FuncNameGetConfig, nil).(*dty.ReplyConfig)
	assert.False(t, reply.Initialized)

	receipt := env.mustExec(adminKey, dty.ActionInit, &dty.DeerInit{})
	assert.Len(t, receipt.Logs, 1)
	assert.Equal(t, int32(dty.TyLogDeerInit), receipt.Logs[0].Ty)

	_, err = env.exec(adminKey, dty.ActionInit, &dty.DeerInit{})
	assert.Equal(t, types.ErrAlreadyInitialized, err)

	reply = env.query(dty.FuncNameGetConfig, nil).(*dty.ReplyConfig)
	assert.True(t, reply.Initialized)
	assert.Equal(t, adminAddr, reply.Admin)
	assert.Equal(t, custodian, reply.Custodian)

	assert.Equal(t, uint64(10), env.query(dty.FuncNameGetReferralBonusPercentage, nil).(*dty.ReplyPercent).Percent)
	params := env.query(dty.FuncNameGetParameters, nil).(*dty.ReplyParameters)
	assert.Equal(t, &dty.ReplyParameters{Zp: 2, A: 70, B: 3000}, params)
	rate := env.query(dty.FuncNameGetRewardRate, nil).(*dty.ReplyRewardRate)
	assert.Equal(t, "2000000000000000000000000000000", rate.Rate)
	assert.Equal(t, "1000000000000000000000000000000", rate.Magnitude)
	assert.Equal(t, "0", env.pool())
	assert.Equal(t, uint64(0), env.query(dty.FuncNameGetCurrentRound, nil).(*dty.ReplyCurrentRound).RoundID)
}

func TestRequireInitialized(t *testing.T) {
	env := newTestEnv(t)
	_, err := env.exec(adminKey, dty.ActionSetParameters, &dty.SetParameters{Zp: 1})
	assert.Equal(t, types.ErrNotInitialized, err)
	_, err = env.exec(adminKey, dty.ActionAdminDeposit, &dty.AdminDeposit{Amount: "100"})
	assert.Equal(t, types.ErrNotInitialized, err)
	_, err = env.exec(playerKey, dty.ActionStartRound, &dty.StartRound{Stake: "1000000000"})
	assert.Equal(t, types.ErrNotInitialized, err)
	_, err = env.exec(adminKey, dty.ActionSettleRound, &dty.SettleRound{RoundID: 1, Score: 100})
	assert.Equal(t, types.ErrNotInitialized, err)
	_, err = env.exec(playerKey, dty.ActionCheckIn, &dty.CheckIn{})
	assert.Equal(t, types.ErrNotInitialized, err)
}

func TestSetters(t *testing.T) {
	env := newTestEnv(t)
	env.init()

	_, err := env.exec(playerKey, dty.ActionSetRewardRate, &dty.SetRewardRate{Currency: "1", Reward: "3"})
	assert.Equal(t, types.ErrUnauthorized, err)
	env.mustExec(adminKey, dty.ActionSetRewardRate, &dty.SetRewardRate{Currency: "3", Reward: "1"})
	rate := env.query(dty.FuncNameGetRewardRate, nil).(*dty.ReplyRewardRate)
	assert.Equal(t, "333333333333333333333333333333", rate.Rate)
	_, err = env.exec(adminKey, dty.ActionSetRewardRate, &dty.SetRewardRate{Currency: "0", Reward: "1"})
	assert.Equal(t, types.ErrDivisionByZero, errors.Cause(err))

	env.mustExec(adminKey, dty.ActionSetReferralBonusPercentage, &dty.SetReferralBonusPercentage{Percent: 100})
	assert.Equal(t, uint64(100), env.query(dty.FuncNameGetReferralBonusPercentage, nil).(*dty.ReplyPercent).Percent)
	_, err = env.exec(adminKey, dty.ActionSetReferralBonusPercentage, &dty.SetReferralBonusPercentage{Percent: 101})
	assert.Equal(t, types.ErrInvalidParameters, errors.Cause(err))

	env.mustExec(adminKey, dty.ActionSetParameters, &dty.SetParameters{Zp: 10000, A: 0, B: 1})
	params := env.query(dty.FuncNameGetParameters, nil).(*dty.ReplyParameters)
	assert.Equal(t, &dty.ReplyParameters{Zp: 10000, A: 0, B: 1}, params)
	_, err = env.exec(adminKey, dty.ActionSetParameters, &dty.SetParameters{Zp: 10001})
	assert.Equal(t, types.ErrInvalidParameters, errors.Cause(err))
	_, err = env.exec(otherKey, dty.ActionSetParameters, &dty.SetParameters{Zp: 1})
	assert.Equal(t, types.ErrUnauthorized, err)
}

// 下注 1e9，odd = 150，奖金 1.5e9
func TestHappyPath(t *testing.T) {
	env := newTestEnv(t)
	env.init()
	env.mustExec(adminKey, dty.ActionSetParameters, &dty.SetParameters{Zp: 2, A: 0, B: 3000})
	env.mustExec(adminKey, dty.ActionAdminDeposit, &dty.AdminDeposit{Amount: "10000000000"})
	assert.Equal(t, "10000000000", env.pool())
	assert.Equal(t, "990000000000", env.balance(adminAddr))

	receipt := env.mustExec(playerKey, dty.ActionStartRound, &dty.StartRound{Stake: "1000000000"})
	log := findLog(t, receipt, dty.TyLogDeerStartRound)
	assert.Equal(t, float64(1), log["roundId"])
	assert.Equal(t, playerAddr, log["player"])
	assert.Equal(t, "2000000000", log["credit"])
	assert.Equal(t, "11000000000", env.pool())
	assert.Equal(t, "99000000000", env.balance(playerAddr))
	assert.Equal(t, "11000000000", env.balance(custodian))
	assert.Equal(t, "2000000000", env.rewardBalance(playerAddr))

	st := env.status(1)
	assert.Equal(t, dty.RoundOpen, st.Status)
	assert.Equal(t, "Open", st.StatusName)
	assert.Equal(t, playerAddr, st.Player)
	assert.Equal(t, "1000000000", st.Stake)

	trial := env.query(dty.FuncNameGetTrialGameAward, &dty.ReqTrialAward{Stake: "1000000000", Score: 100}).(*dty.ReplyTrialAward)
	assert.Equal(t, uint64(150), trial.Odd)
	assert.Equal(t, "1500000000", trial.Award)

	env.blockhash = sampleFor(400000)
	receipt = env.mustExec(adminKey, dty.ActionSettleRound, &dty.SettleRound{RoundID: 1, Score: 100})
	log = findLog(t, receipt, dty.TyLogDeerSettleRound)
	assert.Equal(t, float64(150), log["odd"])
	assert.Equal(t, "1500000000", log["payout"])
	assert.Equal(t, "9500000000", env.pool())
	assert.Equal(t, "100500000000", env.balance(playerAddr))
	assert.Equal(t, "9500000000", env.balance(custodian))

	st = env.status(1)
	assert.Equal(t, dty.RoundSettled, st.Status)
	assert.Empty(t, st.Player)
}

func TestStartRound(t *testing.T) {
	env := newTestEnv(t)
	env.init()

	_, err := env.exec(playerKey, dty.ActionStartRound, &dty.StartRound{Stake: "100000000"})
	assert.Equal(t, types.ErrStakeTooSmall, errors.Cause(err))
	_, err = env.exec(playerKey, dty.ActionStartRound, &dty.StartRound{Stake: "abc"})
	assert.Equal(t, types.ErrAmount, errors.Cause(err))
	_, err = env.exec(otherKey, dty.ActionStartRound, &dty.StartRound{Player: playerAddr, Stake: "1000000000"})
	assert.Equal(t, types.ErrUnauthorized, err)
	_, err = env.exec(playerKey, dty.ActionStartRound, &dty.StartRound{Stake: "1000000000000"})
	assert.Equal(t, types.ErrTransferFailed, errors.Cause(err))
	assert.Equal(t, "0", env.pool())
	assert.Equal(t, dty.RoundNotStarted, env.status(1).Status)

	env.mustExec(playerKey, dty.ActionStartRound, &dty.StartRound{Player: playerAddr, Stake: "100000001"})
	env.mustExec(otherKey, dty.ActionStartRound, &dty.StartRound{Stake: "200000000"})
	assert.Equal(t, uint64(2), env.query(dty.FuncNameGetCurrentRound, nil).(*dty.ReplyCurrentRound).RoundID)
	assert.Equal(t, "300000001", env.pool())
	assert.Equal(t, playerAddr, env.status(1).Player)
	assert.Equal(t, otherAddr, env.status(2).Player)
	assert.Equal(t, dty.RoundNotStarted, env.status(0).Status)
	assert.Equal(t, dty.RoundNotStarted, env.status(3).Status)
}

func TestMinStakeConfig(t *testing.T) {
	env := newTestEnv(t)
	env.conf.minStake = new(uint256.Int)
	env.init()
	_, err := env.exec(playerKey, dty.ActionStartRound, &dty.StartRound{Stake: "0"})
	assert.Equal(t, types.ErrStakeTooSmall, errors.Cause(err))
	env.mustExec(playerKey, dty.ActionStartRound, &dty.StartRound{Stake: "1"})
}

func TestSingleOpenRound(t *testing.T) {
	env := newTestEnv(t)
	env.init()
	env.mustExec(adminKey, dty.ActionAdminDeposit, &dty.AdminDeposit{Amount: "100000000000"})
	env.mustExec(playerKey, dty.ActionStartRound, &dty.StartRound{Stake: "1000000000"})
	env.mustExec(adminKey, dty.ActionSettleRound, &dty.SettleRound{RoundID: 1, Score: 50})

	_, err := env.exec(adminKey, dty.ActionSettleRound, &dty.SettleRound{RoundID: 1, Score: 50})
	assert.Equal(t, types.ErrRoundNotOpenOrAlreadySettled, errors.Cause(err))
	_, err = env.exec(adminKey, dty.ActionSettleRound, &dty.SettleRound{RoundID: 2, Score: 50})
	assert.Equal(t, types.ErrRoundNotOpenOrAlreadySettled, errors.Cause(err))
	_, err = env.exec(adminKey, dty.ActionSettleRound, &dty.SettleRound{RoundID: 0, Score: 50})
	assert.Equal(t, types.ErrRoundNotOpenOrAlreadySettled, errors.Cause(err))

	// 新的一局总是使用新的 id，结算过的 id 不会再打开
	env.mustExec(playerKey, dty.ActionStartRound, &dty.StartRound{Stake: "1000000000"})
	assert.Equal(t, dty.RoundSettled, env.status(1).Status)
	assert.Equal(t, dty.RoundOpen, env.status(2).Status)
}

func TestSettleRoundAccess(t *testing.T) {
	env := newTestEnv(t)
	env.init()
	env.mustExec(playerKey, dty.ActionStartRound, &dty.StartRound{Stake: "1000000000"})
	_, err := env.exec(playerKey, dty.ActionSettleRound, &dty.SettleRound{RoundID: 1, Score: 100})
	assert.Equal(t, types.ErrUnauthorized, err)
	assert.Equal(t, dty.RoundOpen, env.status(1).Status)
}

func TestSettleRoundZeroOdd(t *testing.T) {
	env := newTestEnv(t)
	env.init()
	env.mustExec(playerKey, dty.ActionStartRound, &dty.StartRound{Stake: "1000000000"})
	receipt := env.mustExec(adminKey, dty.ActionSettleRound, &dty.SettleRound{RoundID: 1, Score: -1})
	log := findLog(t, receipt, dty.TyLogDeerSettleRound)
	assert.Equal(t, float64(0), log["odd"])
	assert.Equal(t, "0", log["payout"])
	assert.Equal(t, "1000000000", env.pool())
	assert.Equal(t, dty.RoundSettled, env.status(1).Status)
}

func TestInsufficientPool(t *testing.T) {
	env := newTestEnv(t)
	env.init()
	env.mustExec(adminKey, dty.ActionSetParameters, &dty.SetParameters{Zp: 2, A: 0, B: 3000})
	env.mustExec(playerKey, dty.ActionStartRound, &dty.StartRound{Stake: "1000000000"})

	_, err := env.exec(adminKey, dty.ActionSettleRound, &dty.SettleRound{RoundID: 1, Score: 100})
	assert.Equal(t, types.ErrInsufficientPool, errors.Cause(err))
	assert.Equal(t, dty.RoundOpen, env.status(1).Status)
	assert.Equal(t, "1000000000", env.pool())

	env.mustExec(adminKey, dty.ActionAdminDeposit, &dty.AdminDeposit{Amount: "500000000"})
	env.mustExec(adminKey, dty.ActionSettleRound, &dty.SettleRound{RoundID: 1, Score: 100})
	assert.Equal(t, "0", env.pool())
	assert.Equal(t, dty.RoundSettled, env.status(1).Status)
	assert.Equal(t, "100500000000", env.balance(playerAddr))
}

type fakeLedger struct {
	err error
}

func (f *fakeLedger) Transfer(from, to string, amount *uint256.Int) (*types.Receipt, error) {
	return nil, f.err
}

func (f *fakeLedger) CheckTransfer(from, to string, amount *uint256.Int) error {
	return f.err
}

func TestRewardFailureRollback(t *testing.T) {
	env := newTestEnv(t)
	env.init()
	env.reward = &fakeLedger{err: errors.New("token paused")}

	_, err := env.exec(playerKey, dty.ActionStartRound, &dty.StartRound{Stake: "1000000000"})
	assert.Equal(t, types.ErrRewardIssuanceFailed, errors.Cause(err))
	assert.Contains(t, err.Error(), "token paused")
	assert.Equal(t, "0", env.pool())
	assert.Equal(t, "100000000000", env.balance(playerAddr))
	assert.Equal(t, uint64(0), env.query(dty.FuncNameGetCurrentRound, nil).(*dty.ReplyCurrentRound).RoundID)
	assert.Equal(t, dty.RoundNotStarted, env.status(1).Status)

	_, err = env.exec(playerKey, dty.ActionCheckIn, &dty.CheckIn{})
	assert.Equal(t, types.ErrRewardIssuanceFailed, errors.Cause(err))
	day := env.query(dty.FuncNameCanCheckIn, &types.ReqAddr{Addr: playerAddr}).(*dty.ReplyCheckIn).Day
	assert.NotZero(t, day)
}

func TestZeroCreditSkipsReward(t *testing.T) {
	env := newTestEnv(t)
	env.init()
	env.mustExec(adminKey, dty.ActionSetRewardRate, &dty.SetRewardRate{Currency: "1", Reward: "0"})
	env.reward = &fakeLedger{err: errors.New("should not be called")}
	receipt := env.mustExec(playerKey, dty.ActionStartRound, &dty.StartRound{Stake: "1000000000"})
	log := findLog(t, receipt, dty.TyLogDeerStartRound)
	assert.Equal(t, "0", log["credit"])
}

func TestReferralBonus(t *testing.T) {
	env := newTestEnv(t)
	env.init()
	env.mustExec(playerKey, dty.ActionAddReferral, &dty.AddReferral{ToBeReferred: playerAddr, Referrer: referrerAddr})

	receipt := env.mustExec(playerKey, dty.ActionStartRound, &dty.StartRound{Stake: "1000000000"})
	log := findLog(t, receipt, dty.TyLogDeerStartRound)
	assert.Equal(t, referrerAddr, log["referrer"])
	assert.Equal(t, "200000000", log["bonus"])
	assert.Equal(t, "2000000000", env.rewardBalance(playerAddr))
	assert.Equal(t, "200000000", env.rewardBalance(referrerAddr))
	assert.Equal(t, "999997800000000", env.rewardBalance(custodian))
}

func TestAddReferral(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.exec(playerKey, dty.ActionAddReferral, &dty.AddReferral{ToBeReferred: badAddr, Referrer: referrerAddr})
	assert.Equal(t, types.ErrMalformedIdentity, err)
	_, err = env.exec(playerKey, dty.ActionAddReferral, &dty.AddReferral{ToBeReferred: playerAddr, Referrer: "abc"})
	assert.Equal(t, types.ErrMalformedIdentity, err)
	_, err = env.exec(otherKey, dty.ActionAddReferral, &dty.AddReferral{ToBeReferred: playerAddr, Referrer: referrerAddr})
	assert.Equal(t, types.ErrUnauthorized, err)
	_, err = env.exec(playerKey, dty.ActionAddReferral, &dty.AddReferral{ToBeReferred: playerAddr, Referrer: playerAddr})
	assert.Equal(t, types.ErrInvalidReferral, err)

	receipt := env.mustExec(playerKey, dty.ActionAddReferral, &dty.AddReferral{ToBeReferred: playerAddr, Referrer: referrerAddr})
	assert.Len(t, receipt.KV, 1)
	assert.Len(t, receipt.Logs, 1)

	// 第二次绑定不报错，也不修改
	receipt = env.mustExec(playerKey, dty.ActionAddReferral, &dty.AddReferral{ToBeReferred: playerAddr, Referrer: otherAddr})
	assert.Len(t, receipt.KV, 0)
	assert.Len(t, receipt.Logs, 0)
	reply := env.query(dty.FuncNameGetReferral, &types.ReqAddr{Addr: playerAddr}).(*dty.ReplyReferral)
	assert.Equal(t, referrerAddr, reply.Referrer)

	// 管理员可以替别人绑定
	env.mustExec(adminKey, dty.ActionAddReferral, &dty.AddReferral{ToBeReferred: otherAddr, Referrer: referrerAddr})
	reply = env.query(dty.FuncNameGetReferral, &types.ReqAddr{Addr: otherAddr}).(*dty.ReplyReferral)
	assert.Equal(t, referrerAddr, reply.Referrer)

	reply = env.query(dty.FuncNameGetReferral, &types.ReqAddr{Addr: referrerAddr}).(*dty.ReplyReferral)
	assert.Empty(t, reply.Referrer)
	_, err = env.driver().Query(dty.FuncNameGetReferral, []byte(`{"addr":"`+badAddr+`"}`))
	assert.Equal(t, types.ErrMalformedIdentity, err)
}

func TestAddReferralIdempotent(t *testing.T) {
	env := newTestEnv(t)
	a := func(referrer string) (bool, error) {
		tx, err := types.CreateTx(dty.DeerShooterX, dty.ActionAddReferral, nil)
		require.Nil(t, err)
		tx.Sign(secp256k1.ID, getprivkey(t, playerKey))
		act, err := newAction(env.driver(), tx)
		require.Nil(t, err)
		bound, _, err := act.AddReferral(&dty.AddReferral{ToBeReferred: playerAddr, Referrer: referrer})
		return bound, err
	}
	bound, err := a(referrerAddr)
	require.Nil(t, err)
	assert.True(t, bound)
	bound, err = a(otherAddr)
	require.Nil(t, err)
	assert.False(t, bound)
	bound, err = a(referrerAddr)
	require.Nil(t, err)
	assert.False(t, bound)
}

func TestCheckIn(t *testing.T) {
	env := newTestEnv(t)
	env.init()
	today := uint64(startTime / dty.DaySeconds)

	day := env.query(dty.FuncNameCanCheckIn, &types.ReqAddr{Addr: playerAddr}).(*dty.ReplyCheckIn).Day
	assert.Equal(t, today, day)

	_, err := env.exec(otherKey, dty.ActionCheckIn, &dty.CheckIn{Account: playerAddr})
	assert.Equal(t, types.ErrUnauthorized, err)

	receipt := env.mustExec(playerKey, dty.ActionCheckIn, &dty.CheckIn{})
	log := findLog(t, receipt, dty.TyLogDeerCheckIn)
	assert.Equal(t, float64(today), log["day"])
	assert.Equal(t, "1000000000", env.rewardBalance(playerAddr))

	day = env.query(dty.FuncNameCanCheckIn, &types.ReqAddr{Addr: playerAddr}).(*dty.ReplyCheckIn).Day
	assert.Equal(t, uint64(0), day)
	_, err = env.exec(playerKey, dty.ActionCheckIn, &dty.CheckIn{Account: playerAddr})
	assert.Equal(t, types.ErrAlreadyCheckedInToday, errors.Cause(err))

	env.blocktime += dty.DaySeconds
	day = env.query(dty.FuncNameCanCheckIn, &types.ReqAddr{Addr: playerAddr}).(*dty.ReplyCheckIn).Day
	assert.Equal(t, today+1, day)
	env.mustExec(playerKey, dty.ActionCheckIn, &dty.CheckIn{Account: playerAddr})
	assert.Equal(t, "2000000000", env.rewardBalance(playerAddr))
}

func TestCheckInEpoch(t *testing.T) {
	env := newTestEnv(t)
	env.conf.checkInEpoch = startTime + 100
	env.init()

	// 还没有到 epoch，天数为 0，不能签到
	day := env.query(dty.FuncNameCanCheckIn, &types.ReqAddr{Addr: playerAddr}).(*dty.ReplyCheckIn).Day
	assert.Equal(t, uint64(0), day)
	_, err := env.exec(playerKey, dty.ActionCheckIn, &dty.CheckIn{})
	assert.Equal(t, types.ErrAlreadyCheckedInToday, errors.Cause(err))

	env.blocktime = startTime + 100 + dty.DaySeconds
	env.mustExec(playerKey, dty.ActionCheckIn, &dty.CheckIn{})
}

func TestAdminWithdraw(t *testing.T) {
	env := newTestEnv(t)
	env.init()
	env.mustExec(adminKey, dty.ActionAdminDeposit, &dty.AdminDeposit{Amount: "5000000000"})

	_, err := env.exec(playerKey, dty.ActionAdminWithdraw, &dty.AdminWithdraw{To: playerAddr, Amount: "1"})
	assert.Equal(t, types.ErrUnauthorized, err)
	_, err = env.exec(adminKey, dty.ActionAdminWithdraw, &dty.AdminWithdraw{To: badAddr, Amount: "1"})
	assert.Equal(t, types.ErrMalformedIdentity, err)
	_, err = env.exec(adminKey, dty.ActionAdminWithdraw, &dty.AdminWithdraw{To: otherAddr, Amount: "5000000001"})
	assert.Equal(t, types.ErrInsufficientPool, errors.Cause(err))
	_, err = env.exec(adminKey, dty.ActionAdminWithdraw, &dty.AdminWithdraw{To: otherAddr, Amount: "0"})
	assert.Equal(t, types.ErrAmount, err)
	_, err = env.exec(adminKey, dty.ActionAdminDeposit, &dty.AdminDeposit{Amount: "0"})
	assert.Equal(t, types.ErrAmount, err)
	assert.Equal(t, "5000000000", env.pool())

	env.mustExec(playerKey, dty.ActionStartRound, &dty.StartRound{Stake: "1000000000"})
	_, err = env.exec(adminKey, dty.ActionAdminWithdraw, &dty.AdminWithdraw{To: otherAddr, Amount: "1"})
	assert.Equal(t, types.ErrRoundPending, errors.Cause(err))

	env.mustExec(adminKey, dty.ActionSettleRound, &dty.SettleRound{RoundID: 1, Score: -1})
	env.mustExec(adminKey, dty.ActionAdminWithdraw, &dty.AdminWithdraw{To: otherAddr, Amount: "6000000000"})
	assert.Equal(t, "0", env.pool())
	assert.Equal(t, "106000000000", env.balance(otherAddr))
	assert.Equal(t, "0", env.balance(custodian))
}

func TestAdminWithdrawReward(t *testing.T) {
	env := newTestEnv(t)
	_, err := env.exec(playerKey, dty.ActionAdminWithdrawReward, &dty.AdminWithdrawReward{To: playerAddr, Amount: "1"})
	assert.Equal(t, types.ErrUnauthorized, err)
	_, err = env.exec(adminKey, dty.ActionAdminWithdrawReward, &dty.AdminWithdrawReward{To: otherAddr, Amount: "1000000000000001"})
	assert.Equal(t, types.ErrNoBalance, err)
	_, err = env.exec(adminKey, dty.ActionAdminWithdrawReward, &dty.AdminWithdrawReward{To: otherAddr, Amount: "0"})
	assert.Equal(t, types.ErrAmount, err)

	env.mustExec(adminKey, dty.ActionAdminWithdrawReward, &dty.AdminWithdrawReward{To: otherAddr, Amount: "1000"})
	assert.Equal(t, "1000", env.rewardBalance(otherAddr))
	assert.Equal(t, "999999999999000", env.rewardBalance(custodian))

	env.reward = &fakeLedger{err: types.ErrNoBalance}
	_, err = env.exec(adminKey, dty.ActionAdminWithdrawReward, &dty.AdminWithdrawReward{To: otherAddr, Amount: "1"})
	assert.Equal(t, types.ErrNoBalance, err)
}

// 奖池 = 充值 + 下注 - 奖金 - 取款
func TestPoolConservation(t *testing.T) {
	env := newTestEnv(t)
	env.init()
	deposits := uint64(20000000000)
	env.mustExec(adminKey, dty.ActionAdminDeposit, &dty.AdminDeposit{Amount: "20000000000"})

	var stakes, payouts uint64
	samples := []uint64{1, 400000, 979999, 990000, 500000, 200}
	scores := []int64{10, 100, 50, 70, -1, 35}
	for i, p := range samples {
		receipt := env.mustExec(playerKey, dty.ActionStartRound, &dty.StartRound{Stake: "150000000"})
		stakes += 150000000
		id := uint64(findLog(t, receipt, dty.TyLogDeerStartRound)["roundId"].(float64))

		env.blockhash = sampleFor(p)
		receipt, err := env.exec(adminKey, dty.ActionSettleRound, &dty.SettleRound{RoundID: id, Score: scores[i]})
		if errors.Cause(err) == types.ErrInsufficientPool {
			env.mustExec(adminKey, dty.ActionAdminDeposit, &dty.AdminDeposit{Amount: "500000000000"})
			deposits += 500000000000
			receipt = env.mustExec(adminKey, dty.ActionSettleRound, &dty.SettleRound{RoundID: id, Score: scores[i]})
		} else {
			require.Nil(t, err)
		}
		payout := amount(t, findLog(t, receipt, dty.TyLogDeerSettleRound)["payout"].(string))
		payouts += payout.Uint64()
	}
	env.mustExec(adminKey, dty.ActionAdminWithdraw, &dty.AdminWithdraw{To: otherAddr, Amount: "1000"})

	expect := deposits + stakes - payouts - 1000
	assert.Equal(t, types.FormatAmount(uint256.NewInt(expect)), env.pool())
	assert.Equal(t, env.pool(), env.balance(custodian))
}

func TestCorruptedState(t *testing.T) {
	env := newTestEnv(t)
	env.init()
	env.mustExec(playerKey, dty.ActionStartRound, &dty.StartRound{Stake: "1000000000"})

	require.Nil(t, env.statedb.Set(calcRoundStakeKey(1), nil))
	_, err := env.driver().Query(dty.FuncNameGetRoundStatus, []byte(`{"roundId":1}`))
	assert.Equal(t, types.ErrCorruptedState, errors.Cause(err))
	_, err = env.exec(adminKey, dty.ActionSettleRound, &dty.SettleRound{RoundID: 1, Score: 100})
	assert.Equal(t, types.ErrCorruptedState, errors.Cause(err))
	_, err = env.exec(adminKey, dty.ActionAdminWithdraw, &dty.AdminWithdraw{To: otherAddr, Amount: "1"})
	assert.Equal(t, types.ErrCorruptedState, errors.Cause(err))

	// 超过当前 id 的一局不能是 Open
	require.Nil(t, env.statedb.Set(calcRoundPlayerKey(5), types.EncodeString(playerAddr)))
	require.Nil(t, env.statedb.Set(calcRoundStakeKey(5), types.EncodeAmount(uint256.NewInt(1))))
	_, err = env.driver().Query(dty.FuncNameGetRoundStatus, []byte(`{"roundId":5}`))
	assert.Equal(t, types.ErrCorruptedState, errors.Cause(err))
}

func TestUnknownAction(t *testing.T) {
	env := newTestEnv(t)
	_, err := env.exec(adminKey, "Withdraw", nil)
	assert.Equal(t, types.ErrActionNotSupport, err)
	_, err = env.driver().Query("GetSomething", nil)
	assert.Equal(t, types.ErrQueryNotSupport, err)
}
