// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package executor 本地单节点链的执行器：验证签名，加载驱动，按区块执行交易并持久化回执
package executor

import (
	"sync"
	"time"

	"github.com/33cn/deershooter/common"
	dbm "github.com/33cn/deershooter/common/db"
	clog "github.com/33cn/deershooter/common/log"
	"github.com/33cn/deershooter/metrics"
	"github.com/33cn/deershooter/pluginmgr"
	drivers "github.com/33cn/deershooter/system/dapp"
	"github.com/33cn/deershooter/types"
	log "github.com/inconshreveable/log15"
	"github.com/pkg/errors"
)

var elog = log.New("module", "execs")

//SetLogLevel ...
func SetLogLevel(level string) {
	clog.SetLogLevel(level)
}

//DisableLog ...
func DisableLog() {
	elog.SetHandler(log.DiscardHandler())
}

//Executor 一次只执行一个区块，区块内的交易顺序执行
type Executor struct {
	mu      sync.Mutex
	db      dbm.DB
	statedb *StateDB
	localdb *LocalDB
	now     func() int64
}

//New 按配置打开数据库，并初始化所有注册的插件
func New(cfg *types.Config, sub *types.ConfigSubModule) (*Executor, error) {
	db, err := dbm.NewDB(cfg.Store.Name, cfg.Store.Driver, cfg.Store.DbPath, cfg.Store.DbCache)
	if err != nil {
		return nil, errors.Wrap(err, "open store")
	}
	if sub != nil {
		pluginmgr.InitExec(sub.Exec)
	}
	return NewWithDB(db), nil
}

//NewWithDB 使用已经打开的数据库
func NewWithDB(db dbm.DB) *Executor {
	return &Executor{
		db:      db,
		statedb: NewStateDB(db),
		localdb: NewLocalDB(db),
		now:     func() int64 { return time.Now().Unix() },
	}
}

//SetClock 设置区块时间的来源
func (exec *Executor) SetClock(now func() int64) {
	exec.mu.Lock()
	defer exec.mu.Unlock()
	exec.now = now
}

//Close 关闭数据库
func (exec *Executor) Close() {
	exec.db.Close()
	elog.Info("executor module closed")
}

//LastHeader 最新的区块头，还没有创世区块返回 ErrNotFound
func (exec *Executor) LastHeader() (*types.Header, error) {
	exec.mu.Lock()
	defer exec.mu.Unlock()
	return exec.lastHeader()
}

func (exec *Executor) lastHeader() (*types.Header, error) {
	data, err := exec.localdb.Get(types.LastHeaderKey)
	if err != nil {
		return nil, err
	}
	return types.DecodeHeader(data)
}

//Genesis 执行创世区块，只能执行一次
func (exec *Executor) Genesis(txs ...*types.Transaction) ([]*types.ReceiptData, error) {
	exec.mu.Lock()
	defer exec.mu.Unlock()
	if _, err := exec.lastHeader(); err == nil {
		return nil, types.ErrReRunGenesis
	}
	receipts, _, err := exec.execBlock(txs)
	return receipts, err
}

//ExecTx 单笔交易打包成一个区块执行，交易执行失败时回执和错误一起返回
func (exec *Executor) ExecTx(tx *types.Transaction) (*types.ReceiptData, error) {
	exec.mu.Lock()
	defer exec.mu.Unlock()
	receipts, errs, err := exec.execBlock([]*types.Transaction{tx})
	if err != nil {
		return nil, err
	}
	return receipts[0], errs[0]
}

//ExecTxs 多笔交易打包成一个区块执行，签名不正确的区块整体拒绝
func (exec *Executor) ExecTxs(txs ...*types.Transaction) ([]*types.ReceiptData, error) {
	exec.mu.Lock()
	defer exec.mu.Unlock()
	receipts, _, err := exec.execBlock(txs)
	return receipts, err
}

// execBlock 返回每笔交易的回执和执行错误
func (exec *Executor) execBlock(txs []*types.Transaction) ([]*types.ReceiptData, []error, error) {
	if len(txs) == 0 {
		return nil, nil, types.ErrActionNotSupport
	}
	hashes := make([][]byte, len(txs))
	dup := make(map[string]bool, len(txs))
	for i, tx := range txs {
		if !tx.CheckSign() {
			return nil, nil, types.ErrSign
		}
		if !drivers.IsRegistered(tx.Execer) {
			return nil, nil, types.ErrUnRegistedDriver
		}
		hashes[i] = tx.Hash()
		if err := exec.checkTxDup(hashes[i], dup); err != nil {
			elog.Error("execBlock", "tx", tx.String(), "err", err)
			return nil, nil, err
		}
	}
	header := &types.Header{BlockTime: exec.now()}
	parent, err := exec.lastHeader()
	if err == nil {
		header.Height = parent.Height + 1
		header.ParentHash = parent.Hash
		if header.BlockTime < parent.BlockTime {
			header.BlockTime = parent.BlockTime
		}
	} else if err != types.ErrNotFound {
		return nil, nil, err
	}
	header.Hash = types.CalcBlockHash(header.ParentHash, hashes, header.BlockTime)
	header.TxCount = int64(len(txs))

	receipts := make([]*types.ReceiptData, len(txs))
	errs := make([]error, len(txs))
	for i, tx := range txs {
		receipts[i], errs[i] = exec.execTx(header, tx, i)
		exec.localdb.Set(types.CalcTxReceiptKey(hashes[i]), types.EncodeReceiptData(receipts[i]))
	}
	exec.localdb.Set(types.LastHeaderKey, types.EncodeHeader(header))

	batch := exec.db.NewBatch(true)
	exec.statedb.WriteTo(batch)
	exec.localdb.WriteTo(batch)
	if err := batch.Write(); err != nil {
		elog.Error("execBlock write", "height", header.Height, "err", err)
		return nil, nil, err
	}
	exec.statedb.ClearCache()
	exec.localdb.ClearCache()
	elog.Info("execBlock", "height", header.Height, "txs", len(txs), "hash", common.ToHex(header.Hash))
	return receipts, errs, nil
}

// checkTxDup 已经打包过的交易（不论成功失败都有回执）或者同一个区块里重复的交易
func (exec *Executor) checkTxDup(hash []byte, dup map[string]bool) error {
	if dup[string(hash)] {
		return types.ErrTxDup
	}
	dup[string(hash)] = true
	_, err := exec.localdb.Get(types.CalcTxReceiptKey(hash))
	if err == nil {
		return types.ErrTxDup
	}
	if err != types.ErrNotFound {
		return err
	}
	return nil
}

func (exec *Executor) execTx(header *types.Header, tx *types.Transaction, index int) (*types.ReceiptData, error) {
	start := time.Now()
	defer metrics.Since(metrics.TxExecTime, start)
	rd := &types.ReceiptData{
		TxHash: common.ToHex(tx.Hash()),
		Height: header.Height,
		Ty:     types.ExecErr,
	}
	receipt, err := exec.runTx(header, tx, index)
	if err != nil {
		elog.Error("execTx", "tx", tx.String(), "err", err)
		metrics.IncCounter(metrics.TxFailed)
		rd.Error = err.Error()
		return rd, err
	}
	metrics.IncCounter(metrics.TxOk)
	rd.Ty = receipt.Ty
	rd.Logs = receipt.Logs
	return rd, nil
}

// runTx 在 StateDB 事务中执行，出错时丢弃全部写入
func (exec *Executor) runTx(header *types.Header, tx *types.Transaction, index int) (*types.Receipt, error) {
	driver, err := drivers.LoadDriver(tx.Execer, header.Height)
	if err != nil {
		return nil, err
	}
	driver.SetStateDB(exec.statedb)
	driver.SetEnv(header.Height, header.BlockTime, header.Hash)
	if err := driver.CheckTx(tx, index); err != nil {
		return nil, err
	}
	exec.statedb.Begin()
	receipt, err := driver.Exec(tx, index)
	if err != nil {
		exec.statedb.Rollback()
		return nil, err
	}
	if receipt == nil {
		receipt = &types.Receipt{Ty: types.ExecOk}
	}
	if err := exec.statedb.Commit(); err != nil {
		return nil, err
	}
	return receipt, nil
}

//Query 在最新区块的环境下执行查询
func (exec *Executor) Query(execer, funcName string, params []byte) (interface{}, error) {
	exec.mu.Lock()
	defer exec.mu.Unlock()
	header, err := exec.lastHeader()
	if err != nil && err != types.ErrNotFound {
		return nil, err
	}
	if header == nil {
		header = &types.Header{BlockTime: exec.now()}
	}
	driver, err := drivers.LoadDriver(execer, header.Height)
	if err != nil {
		return nil, err
	}
	driver.SetStateDB(exec.statedb)
	driver.SetEnv(header.Height, header.BlockTime, header.Hash)
	return driver.Query(funcName, params)
}

//GetTxReceipt 按交易哈希查询回执
func (exec *Executor) GetTxReceipt(hash []byte) (*types.ReceiptData, error) {
	exec.mu.Lock()
	defer exec.mu.Unlock()
	data, err := exec.localdb.Get(types.CalcTxReceiptKey(hash))
	if err != nil {
		return nil, err
	}
	return types.DecodeReceiptData(data)
}

//ListState 按前缀列出状态数据库中的 kv
func (exec *Executor) ListState(prefix []byte, count int32) (keys, values [][]byte) {
	exec.mu.Lock()
	defer exec.mu.Unlock()
	return dbm.NewListHelper(exec.db).ListKV(prefix, count)
}
