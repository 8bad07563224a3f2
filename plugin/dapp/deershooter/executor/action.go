// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"github.com/33cn/deershooter/common"
	"github.com/33cn/deershooter/types"
	"github.com/holiman/uint256"
	"github.com/pkg/errors"
)

// action 一笔交易或者一次查询的执行上下文
type action struct {
	store     *kvStore
	currency  CurrencyLedger
	reward    RewardToken
	fromaddr  string
	custodian string
	blocktime int64
	blockhash []byte
	height    int64
	txhash    string
	conf      *subConfig
	kvs       []*types.KeyValue
	logs      []*types.ReceiptLog
}

// newAction tx 为 nil 时用于查询，没有签名地址
func newAction(d *DeerShooter, tx *types.Transaction) (*action, error) {
	reward, err := d.getRewardToken()
	if err != nil {
		return nil, err
	}
	a := &action{
		store:     newKVStore(d.GetStateDB()),
		currency:  d.getCurrencyLedger(),
		reward:    reward,
		custodian: d.GetExecAddr(),
		blocktime: d.GetBlockTime(),
		blockhash: d.GetBlockHash(),
		height:    d.GetHeight(),
		conf:      d.conf,
	}
	if tx != nil {
		a.fromaddr = tx.From()
		a.txhash = common.ToHex(tx.Hash())
	}
	return a, nil
}

// merge 合并转账产生的回执
func (a *action) merge(r *types.Receipt) {
	if r == nil {
		return
	}
	a.kvs = append(a.kvs, r.KV...)
	a.logs = append(a.logs, r.Logs...)
}

func (a *action) addLog(ty int32, fields map[string]interface{}) {
	a.logs = append(a.logs, &types.ReceiptLog{Ty: ty, Log: types.EncodeLog(fields)})
}

func (a *action) receipt() *types.Receipt {
	kv := make([]*types.KeyValue, 0, len(a.store.kvs)+len(a.kvs))
	kv = append(kv, a.store.kvs...)
	kv = append(kv, a.kvs...)
	return &types.Receipt{Ty: types.ExecOk, KV: kv, Logs: a.logs}
}

// transferCurrency 原生币转账，失败统一返回 ErrTransferFailed
func (a *action) transferCurrency(from, to string, amount *uint256.Int) error {
	r, err := a.currency.Transfer(from, to, amount)
	if err != nil {
		dlog.Error("transferCurrency", "from", from, "to", to, "amount", types.FormatAmount(amount), "err", err)
		return errors.Wrap(types.ErrTransferFailed, err.Error())
	}
	a.merge(r)
	return nil
}

// issueReward 合约把奖励 token 转给 to，数量为 0 时跳过
func (a *action) issueReward(to string, amount *uint256.Int) error {
	if amount == nil || amount.IsZero() {
		return nil
	}
	r, err := a.reward.Transfer(a.custodian, to, amount)
	if err != nil {
		dlog.Error("issueReward", "to", to, "amount", types.FormatAmount(amount), "err", err)
		return errors.Wrap(types.ErrRewardIssuanceFailed, err.Error())
	}
	a.merge(r)
	return nil
}
