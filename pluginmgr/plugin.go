// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package pluginmgr 执行器插件注册
package pluginmgr

import (
	"sort"
	"sync"

	log "github.com/inconshreveable/log15"
	"github.com/spf13/cobra"
)

//Plugin 插件
type Plugin interface {
	// 获取整个插件的包名，用以计算唯一值、做前缀等
	GetName() string
	// 获取插件中执行器名
	GetExecutorName() string
	// 初始化执行器时会调用该接口
	InitExec(sub map[string][]byte)
	AddCmd(rootCmd *cobra.Command)
}

var (
	mgrlog      = log.New("module", "plugin.manager")
	pluginItems = make(map[string]Plugin)
	once        = &sync.Once{}
)

//Register 注册插件，一般在插件包的 init 中调用
func Register(p Plugin) {
	if p == nil {
		panic("plugin param is nil")
	}
	packageName := p.GetName()
	if len(packageName) == 0 {
		panic("plugin package name is empty")
	}
	if _, ok := pluginItems[packageName]; ok {
		panic("execute plugin item is existed. name = " + packageName)
	}
	pluginItems[packageName] = p
}

func sortedItems() []Plugin {
	names := make([]string, 0, len(pluginItems))
	for name := range pluginItems {
		names = append(names, name)
	}
	sort.Strings(names)
	items := make([]Plugin, 0, len(names))
	for _, name := range names {
		items = append(items, pluginItems[name])
	}
	return items
}

//InitExec 初始化所有执行器，进程内只执行一次
func InitExec(sub map[string][]byte) {
	once.Do(func() {
		for _, item := range sortedItems() {
			mgrlog.Debug("InitExec", "plugin", item.GetName())
			item.InitExec(sub)
		}
	})
}

//AddCmd 把插件的命令加到根命令下
func AddCmd(rootCmd *cobra.Command) {
	for _, item := range sortedItems() {
		item.AddCmd(rootCmd)
	}
}
