// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/33cn/deershooter/common"
	"github.com/33cn/deershooter/common/crypto"
	"github.com/33cn/deershooter/common/crypto/secp256k1"
	clog "github.com/33cn/deershooter/common/log"
	"github.com/33cn/deershooter/executor"
	"github.com/33cn/deershooter/metrics"
	"github.com/33cn/deershooter/types"
	"github.com/holiman/uint256"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

// 根命令的公共参数
const (
	FlagConf    = "conf"
	FlagKey     = "key"
	FlagMetrics = "metrics"
)

// CoinDecimals 命令行金额的小数位数，1 个币 = 1e8 最小单位
const CoinDecimals = 8

// AddCommonFlags 添加所有子命令共用的参数
func AddCommonFlags(rootCmd *cobra.Command) {
	rootCmd.PersistentFlags().String(FlagConf, "", "config file, use the default config if empty")
	rootCmd.PersistentFlags().StringP(FlagKey, "k", "", "private key (hex) used to sign transactions")
	rootCmd.PersistentFlags().Bool(FlagMetrics, false, "dump metrics after the command")
}

// LoadConfig 读取 --conf 指定的配置文件
func LoadConfig(cmd *cobra.Command) (*types.Config, *types.ConfigSubModule) {
	path, _ := cmd.Flags().GetString(FlagConf)
	if path == "" {
		return types.InitCfgString(types.GetDefaultCfgstring())
	}
	return types.InitCfg(path)
}

// OpenExecutor 按配置打开本地链
func OpenExecutor(cmd *cobra.Command) (*executor.Executor, error) {
	cfg, sub := LoadConfig(cmd)
	clog.SetFileLog(cfg.Log)
	metrics.StartMetrics(cfg.Metrics)
	return executor.New(cfg, sub)
}

// LoadPrivKey 读取 --key 指定的私钥
func LoadPrivKey(cmd *cobra.Command) (crypto.PrivKey, error) {
	key, _ := cmd.Flags().GetString(FlagKey)
	if key == "" {
		return nil, errors.New("private key is required, use --key")
	}
	bkey, err := common.FromHex(key)
	if err != nil {
		return nil, errors.Wrap(err, "decode private key")
	}
	c, err := crypto.New(secp256k1.Name)
	if err != nil {
		return nil, err
	}
	return c.PrivKeyFromBytes(bkey)
}

// ParseCoins 命令行金额 -> 最小单位，最多 8 位小数
func ParseCoins(s string) (*uint256.Int, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return nil, errors.Wrapf(types.ErrAmount, "parse %s", s)
	}
	if d.IsNegative() {
		return nil, types.ErrAmount
	}
	d = d.Shift(CoinDecimals)
	if !d.Equal(d.Truncate(0)) {
		return nil, errors.Wrapf(types.ErrAmount, "%s has more than %d decimals", s, CoinDecimals)
	}
	return types.ParseAmount(d.String())
}

// FormatCoins 最小单位 -> 命令行金额
func FormatCoins(v *uint256.Int) string {
	if v == nil {
		return "0"
	}
	return decimal.NewFromBigInt(v.ToBig(), -CoinDecimals).String()
}

// Callback a callback function
type Callback func(res interface{}) (interface{}, error)

// LocalCtx 在本地链上执行一笔交易或者一次查询
type LocalCtx struct {
	cmd      *cobra.Command
	Execer   string
	FuncName string
	Params   interface{}
	cb       Callback
}

// NewLocalCtx FuncName 对交易是 action 名，对查询是 Query_ 后面的名字
func NewLocalCtx(cmd *cobra.Command, execer, funcName string, params interface{}) *LocalCtx {
	return &LocalCtx{
		cmd:      cmd,
		Execer:   execer,
		FuncName: funcName,
		Params:   params,
	}
}

// SetResultCb 格式化结果
func (c *LocalCtx) SetResultCb(cb Callback) {
	c.cb = cb
}

// QueryResult 查询并格式化结果
func (c *LocalCtx) QueryResult() (interface{}, error) {
	exec, err := OpenExecutor(c.cmd)
	if err != nil {
		return nil, err
	}
	defer exec.Close()
	var params []byte
	if c.Params != nil {
		params, err = json.Marshal(c.Params)
		if err != nil {
			return nil, err
		}
	}
	result, err := exec.Query(c.Execer, c.FuncName, params)
	if err != nil {
		return nil, errors.Wrapf(err, "query %s.%s", c.Execer, c.FuncName)
	}
	if c.cb != nil {
		return c.cb(result)
	}
	return result, nil
}

// Run 查询并输出 json
func (c *LocalCtx) Run() {
	result, err := c.QueryResult()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}
	PrintJSON(result)
}

// SendResult 签名并执行交易
func (c *LocalCtx) SendResult() (*ReceiptResult, error) {
	priv, err := LoadPrivKey(c.cmd)
	if err != nil {
		return nil, err
	}
	tx, err := types.CreateTx(c.Execer, c.FuncName, c.Params)
	if err != nil {
		return nil, err
	}
	tx.Sign(secp256k1.ID, priv)

	exec, err := OpenExecutor(c.cmd)
	if err != nil {
		return nil, err
	}
	defer exec.Close()
	rd, err := exec.ExecTx(tx)
	if rd == nil {
		return nil, err
	}
	return DecodeReceipt(rd), nil
}

// Send 签名并执行交易，输出回执
func (c *LocalCtx) Send() {
	result, err := c.SendResult()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}
	PrintJSON(result)
}

// DecodeReceipt 回执中的日志按 protobuf Struct 解码
func DecodeReceipt(rd *types.ReceiptData) *ReceiptResult {
	result := &ReceiptResult{
		TxHash: rd.TxHash,
		Height: rd.Height,
		Ty:     rd.Ty,
		Error:  rd.Error,
	}
	for _, l := range rd.Logs {
		item := &ReceiptLogResult{Ty: l.Ty}
		if m, err := types.DecodeLog(l.Log); err == nil {
			item.Log = m
		} else {
			item.Raw = common.ToHex(l.Log)
		}
		result.Logs = append(result.Logs, item)
	}
	return result
}

// PrintJSON 缩进输出 json
func PrintJSON(v interface{}) {
	data, err := json.MarshalIndent(v, "", "    ")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}
	fmt.Println(string(data))
}
