// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package metrics 执行器和 deershooter 的统计数据，基于 go-metrics
package metrics

import (
	"io"
	"time"

	"github.com/33cn/deershooter/common/log"
	"github.com/33cn/deershooter/types"
	go_metrics "github.com/rcrowley/go-metrics"
)

var mlog = log.New("module", "metrics")

// 统计项的名字，注册时加上配置的前缀
const (
	TxOk          = "executor.tx.ok"
	TxFailed      = "executor.tx.failed"
	TxExecTime    = "executor.tx.time"
	RoundStarted  = "round.started"
	RoundSettled  = "round.settled"
	PoolBalance   = "pool"
	DefaultPrefix = "deershooter"
)

var (
	registry  = go_metrics.NewRegistry()
	namespace = DefaultPrefix
	enabled   bool
)

//StartMetrics 根据配置文件启用统计输出
func StartMetrics(cfg *types.Metrics) {
	if cfg == nil || !cfg.Enable {
		mlog.Info("Metrics data is not enabled")
		return
	}
	enabled = true
	if cfg.Prefix != "" {
		namespace = cfg.Prefix
	}
	mlog.Info("StartMetrics", "prefix", namespace)
}

//Enabled ...
func Enabled() bool {
	return enabled
}

//Registry 当前使用的注册表
func Registry() go_metrics.Registry {
	return registry
}

// FullName <prefix>.<name>
func FullName(name string) string {
	return namespace + "." + name
}

//Counter 取得或者注册一个计数器
func Counter(name string) go_metrics.Counter {
	return go_metrics.GetOrRegisterCounter(FullName(name), registry)
}

//Gauge 取得或者注册一个 gauge
func Gauge(name string) go_metrics.Gauge {
	return go_metrics.GetOrRegisterGauge(FullName(name), registry)
}

//Timer 取得或者注册一个计时器
func Timer(name string) go_metrics.Timer {
	return go_metrics.GetOrRegisterTimer(FullName(name), registry)
}

//IncCounter 计数器加 1
func IncCounter(name string) {
	Counter(name).Inc(1)
}

//UpdateGauge ...
func UpdateGauge(name string, v int64) {
	Gauge(name).Update(v)
}

//Since 记录从 start 开始的耗时
func Since(name string, start time.Time) {
	Timer(name).UpdateSince(start)
}

//WriteOnce 把所有统计项输出一次
func WriteOnce(w io.Writer) {
	go_metrics.WriteOnce(registry, w)
}
