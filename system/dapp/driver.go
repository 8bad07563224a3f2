// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package dapp 执行器驱动框架，Exec_ 和 Query_ 方法通过反射分发
package dapp

import (
	"reflect"

	"github.com/33cn/deershooter/account"
	"github.com/33cn/deershooter/common/address"
	dbm "github.com/33cn/deershooter/common/db"
	"github.com/33cn/deershooter/types"
	log "github.com/inconshreveable/log15"
	"github.com/pkg/errors"
)

var blog = log.New("module", "execs.base")

//Driver 执行器驱动
type Driver interface {
	SetStateDB(dbm.KV)
	GetStateDB() dbm.KV
	GetCoinsAccount() *account.DB
	//驱动的名字，这个名称是固定的
	GetDriverName() string
	GetName() string
	SetName(string)
	SetEnv(height, blocktime int64, blockhash []byte)
	CheckTx(tx *types.Transaction, index int) error
	Exec(tx *types.Transaction, index int) (*types.Receipt, error)
	Query(funcName string, params []byte) (interface{}, error)
	GetFuncMap() map[string]reflect.Method
}

//DriverBase 驱动基类，具体的执行器嵌入它并调用 SetChild
type DriverBase struct {
	statedb      dbm.KV
	coinsaccount *account.DB
	height       int64
	blocktime    int64
	blockhash    []byte
	name         string
	child        Driver
	childValue   reflect.Value
	funcmap      map[string]reflect.Method
}

//SetChild 设置子类，并列出子类的 Exec_ Query_ 方法
func (d *DriverBase) SetChild(e Driver) {
	d.child = e
	d.childValue = reflect.ValueOf(e)
	d.funcmap = ListMethod(e)
}

//GetFuncMap ...
func (d *DriverBase) GetFuncMap() map[string]reflect.Method {
	return d.funcmap
}

//SetEnv 设置区块环境，blockhash 是随机数来源
func (d *DriverBase) SetEnv(height, blocktime int64, blockhash []byte) {
	d.height = height
	d.blocktime = blocktime
	d.blockhash = blockhash
}

//CheckTx 默认只要求交易已经签名
func (d *DriverBase) CheckTx(tx *types.Transaction, index int) error {
	if tx.From() == "" {
		return types.ErrSign
	}
	return nil
}

//Exec 调用子类的 Exec_<Action>，payload 按参数类型 json 解码
func (d *DriverBase) Exec(tx *types.Transaction, index int) (receipt *types.Receipt, err error) {
	if d.child == nil {
		return nil, types.ErrActionNotSupport
	}
	defer func() {
		if r := recover(); r != nil {
			blog.Error("call exec error", "tx.exec", tx.Execer, "action", tx.Action, "info", r)
			err = errors.Wrapf(types.ErrExecPanic, "%s: %v", tx.Action, r)
			receipt = nil
		}
	}()
	funcname := "Exec_" + tx.Action
	method, ok := d.funcmap[funcname]
	if !ok {
		return nil, types.ErrActionNotSupport
	}
	value := reflect.New(method.Type.In(1).Elem())
	if err := tx.DecodePayload(value.Interface()); err != nil {
		return nil, err
	}
	valueret := method.Func.Call([]reflect.Value{d.childValue, value, reflect.ValueOf(tx), reflect.ValueOf(index)})
	if !IsOK(valueret, 2) {
		return nil, types.ErrMethodReturnType
	}
	//参数1
	if !IsNilVal(valueret[0]) {
		receipt = valueret[0].Interface().(*types.Receipt)
	}
	//参数2
	ok, err = returnError(valueret[1])
	if !ok {
		return nil, types.ErrMethodReturnType
	}
	return receipt, err
}

//Query 调用子类的 Query_<funcName>，params 为 json
func (d *DriverBase) Query(funcName string, params []byte) (reply interface{}, err error) {
	if d.child == nil {
		return nil, types.ErrQueryNotSupport
	}
	defer func() {
		if r := recover(); r != nil {
			blog.Error("call query error", "func", funcName, "info", r)
			err = errors.Wrapf(types.ErrExecPanic, "%s: %v", funcName, r)
			reply = nil
		}
	}()
	method, ok := d.funcmap["Query_"+funcName]
	if !ok {
		return nil, types.ErrQueryNotSupport
	}
	value := reflect.New(method.Type.In(1).Elem())
	if len(params) > 0 {
		tx := &types.Transaction{Payload: params}
		if err := tx.DecodePayload(value.Interface()); err != nil {
			return nil, err
		}
	}
	valueret := method.Func.Call([]reflect.Value{d.childValue, value})
	if !IsOK(valueret, 2) {
		return nil, types.ErrMethodReturnType
	}
	if !IsNilVal(valueret[0]) {
		reply = valueret[0].Interface()
	}
	ok, err = returnError(valueret[1])
	if !ok {
		return nil, types.ErrMethodReturnType
	}
	return reply, err
}

//CheckAddress 执行器地址或者普通地址
func CheckAddress(addr string, height int64) error {
	if IsDriverAddress(addr, height) {
		return nil
	}
	return address.CheckAddress(addr)
}

//SetStateDB 设置状态数据库，coins 账户跟着切换
func (d *DriverBase) SetStateDB(db dbm.KV) {
	if d.coinsaccount == nil {
		d.coinsaccount = account.NewCoinsAccount()
	}
	d.statedb = db
	d.coinsaccount.SetDB(db)
}

//GetStateDB ...
func (d *DriverBase) GetStateDB() dbm.KV {
	return d.statedb
}

//GetHeight ...
func (d *DriverBase) GetHeight() int64 {
	return d.height
}

//GetBlockTime ...
func (d *DriverBase) GetBlockTime() int64 {
	return d.blocktime
}

//GetBlockHash ...
func (d *DriverBase) GetBlockHash() []byte {
	return d.blockhash
}

//GetName 执行器名字，默认等于驱动名
func (d *DriverBase) GetName() string {
	if d.name == "" {
		return d.child.GetDriverName()
	}
	return d.name
}

//SetName ...
func (d *DriverBase) SetName(name string) {
	d.name = name
}

//GetExecAddr 执行器地址
func (d *DriverBase) GetExecAddr() string {
	return ExecAddress(d.GetName())
}

//GetCoinsAccount ...
func (d *DriverBase) GetCoinsAccount() *account.DB {
	if d.coinsaccount == nil {
		d.coinsaccount = account.NewCoinsAccount()
		d.coinsaccount.SetDB(d.statedb)
	}
	return d.coinsaccount
}
