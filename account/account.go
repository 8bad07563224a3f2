// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package account 本地链的资产账户，余额为 256 位无符号整数
*/
package account

//package for account manger
//1. load from db
//2. save to db
//3. KVSet
//4. Transfer
//5. Genesis mint
//6. Account balance query

import (
	"fmt"
	"strings"

	dbm "github.com/33cn/deershooter/common/db"
	"github.com/33cn/deershooter/common/safemath"
	"github.com/33cn/deershooter/types"
	"github.com/holiman/uint256"
	log "github.com/inconshreveable/log15"
	"github.com/pkg/errors"
)

var alog = log.New("module", "account")

// DB for account
type DB struct {
	db               dbm.KV
	accountKeyPerfix []byte
	execer           string
	symbol           string
}

//NewCoinsAccount 本链原生币账户
func NewCoinsAccount() *DB {
	prefix := SymbolPrefix(types.CoinsX, types.CoinsSymbol)
	acc := newAccountDB(prefix)
	acc.execer = types.CoinsX
	acc.symbol = types.CoinsSymbol
	return acc
}

//NewAccountDB 其他资产的账户，比如 token
func NewAccountDB(execer string, symbol string, db dbm.KV) (*DB, error) {
	//如果execer 和  symbol 中存在 "-", 那么创建失败
	if strings.ContainsRune(execer, '-') {
		return nil, types.ErrExecNameNotAllow
	}
	if strings.ContainsRune(symbol, '-') || !types.CheckSymbol(symbol) {
		return nil, types.ErrSymbolNameNotAllow
	}
	accDB := newAccountDB(SymbolPrefix(execer, symbol))
	accDB.execer = execer
	accDB.symbol = symbol
	accDB.SetDB(db)
	return accDB, nil
}

func newAccountDB(prefix string) *DB {
	acc := &DB{}
	acc.accountKeyPerfix = []byte(prefix)
	return acc
}

//SetDB 设置状态数据库
func (acc *DB) SetDB(db dbm.KV) *DB {
	acc.db = db
	return acc
}

//Symbol ...
func (acc *DB) Symbol() string {
	return acc.symbol
}

//LoadAccount 账户不存在时返回 0 余额，其他读取错误原样返回
func (acc *DB) LoadAccount(addr string) (*types.Account, error) {
	value, err := acc.db.Get(acc.AccountKey(addr))
	if err == types.ErrNotFound || err == dbm.ErrNotFoundInDb {
		return &types.Account{Addr: addr, Balance: new(uint256.Int)}, nil
	}
	if err != nil {
		alog.Error("LoadAccount", "addr", addr, "err", err)
		return nil, err
	}
	balance, err := types.DecodeAmount(value)
	if err != nil {
		//数据库已经损坏
		return nil, errors.Wrapf(err, "account %s", addr)
	}
	return &types.Account{Addr: addr, Balance: balance}, nil
}

//BalanceOf 余额
func (acc *DB) BalanceOf(addr string) (*uint256.Int, error) {
	acc1, err := acc.LoadAccount(addr)
	if err != nil {
		return nil, err
	}
	return acc1.GetBalance(), nil
}

//CheckTransfer 检查余额是否足够
func (acc *DB) CheckTransfer(from, to string, amount *uint256.Int) error {
	if amount == nil || amount.IsZero() {
		return types.ErrAmount
	}
	balance, err := acc.BalanceOf(from)
	if err != nil {
		return err
	}
	if balance.Lt(amount) {
		return types.ErrNoBalance
	}
	return nil
}

//Transfer 转账，余额不足返回 ErrNoBalance
func (acc *DB) Transfer(from, to string, amount *uint256.Int) (*types.Receipt, error) {
	if amount == nil || amount.IsZero() {
		return nil, types.ErrAmount
	}
	if from == to {
		return nil, types.ErrSendSameToRecv
	}
	accFrom, err := acc.LoadAccount(from)
	if err != nil {
		return nil, err
	}
	accTo, err := acc.LoadAccount(to)
	if err != nil {
		return nil, err
	}
	copyfrom := accFrom.Clone()
	copyto := accTo.Clone()

	fromBalance, err := safemath.Sub(accFrom.GetBalance(), amount)
	if err != nil {
		return nil, types.ErrNoBalance
	}
	toBalance, err := safemath.Add(accTo.GetBalance(), amount)
	if err != nil {
		return nil, err
	}
	accFrom.Balance = fromBalance
	accTo.Balance = toBalance

	acc.SaveAccount(accFrom)
	acc.SaveAccount(accTo)
	alog.Debug("Transfer", "symbol", acc.symbol, "from", from, "to", to, "amount", types.FormatAmount(amount))

	kv := acc.GetKVSet(accFrom)
	kv = append(kv, acc.GetKVSet(accTo)...)
	return &types.Receipt{
		Ty: types.ExecOk,
		KV: kv,
		Logs: []*types.ReceiptLog{
			types.TransferLog(types.TyLogTransfer, copyfrom, accFrom),
			types.TransferLog(types.TyLogTransfer, copyto, accTo),
		},
	}, nil
}

func (acc *DB) depositBalance(addr string, amount *uint256.Int, ty int32) (*types.Receipt, error) {
	if amount == nil || amount.IsZero() {
		return nil, types.ErrAmount
	}
	acc1, err := acc.LoadAccount(addr)
	if err != nil {
		return nil, err
	}
	copyacc := acc1.Clone()
	balance, err := safemath.Add(acc1.GetBalance(), amount)
	if err != nil {
		return nil, err
	}
	acc1.Balance = balance
	acc.SaveAccount(acc1)
	return &types.Receipt{
		Ty:   types.ExecOk,
		KV:   acc.GetKVSet(acc1),
		Logs: []*types.ReceiptLog{types.TransferLog(ty, copyacc, acc1)},
	}, nil
}

//SaveAccount 写入状态数据库
func (acc *DB) SaveAccount(acc1 *types.Account) {
	set := acc.GetKVSet(acc1)
	for i := 0; i < len(set); i++ {
		err := acc.db.Set(set[i].Key, set[i].Value)
		if err != nil {
			alog.Error("SaveAccount", "addr", acc1.Addr, "err", err)
		}
	}
}

//GetKVSet 账户对应的 kv
func (acc *DB) GetKVSet(acc1 *types.Account) (kvset []*types.KeyValue) {
	kvset = append(kvset, &types.KeyValue{
		Key:   acc.AccountKey(acc1.Addr),
		Value: types.EncodeAmount(acc1.GetBalance()),
	})
	return kvset
}

// AccountKey return the key of address in DB
func (acc *DB) AccountKey(address string) (key []byte) {
	key = append(key, acc.accountKeyPerfix...)
	key = append(key, []byte(address)...)
	return key
}

//SymbolPrefix mavl-<execer>-<symbol>-
func SymbolPrefix(execer string, symbol string) string {
	return fmt.Sprintf("mavl-%s-%s-", execer, symbol)
}
