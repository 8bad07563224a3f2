// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"encoding/json"
	"os"

	tml "github.com/BurntSushi/toml"
)

//Config 节点配置
type Config struct {
	Title   string   `json:"title,omitempty"`
	Log     *Log     `json:"log,omitempty"`
	Store   *Store   `json:"store,omitempty"`
	Exec    *Exec    `json:"exec,omitempty"`
	Metrics *Metrics `json:"metrics,omitempty"`
}

//Log 日志配置
type Log struct {
	Loglevel        string `json:"loglevel,omitempty"`
	LogConsoleLevel string `json:"logConsoleLevel,omitempty"`
	LogFile         string `json:"logFile,omitempty"`
	MaxFileSize     uint32 `json:"maxFileSize,omitempty"`
	MaxBackups      uint32 `json:"maxBackups,omitempty"`
	MaxAge          uint32 `json:"maxAge,omitempty"`
	LocalTime       bool   `json:"localTime,omitempty"`
	Compress        bool   `json:"compress,omitempty"`
	CallerFile      bool   `json:"callerFile,omitempty"`
	CallerFunction  bool   `json:"callerFunction,omitempty"`
}

//Store 状态数据库配置
type Store struct {
	Name    string `json:"name,omitempty"`
	Driver  string `json:"driver,omitempty"`
	DbPath  string `json:"dbPath,omitempty"`
	DbCache int32  `json:"dbCache,omitempty"`
}

//Exec 执行器配置
type Exec struct {
	// 创世地址，本地链启动时铸造的币和奖励 token 都打到这个地址
	GenesisAddr   string `json:"genesisAddr,omitempty"`
	GenesisAmount string `json:"genesisAmount,omitempty"`
}

//Metrics ...
type Metrics struct {
	Enable bool   `json:"enable,omitempty"`
	Prefix string `json:"prefix,omitempty"`
}

//ConfigSubModule 各个 dapp 自己的配置，json 编码
type ConfigSubModule struct {
	Store map[string][]byte
	Exec  map[string][]byte
}

// subModule 子模块结构体
type subModule struct {
	Store map[string]interface{}
	Exec  map[string]interface{}
}

func initCfgString(cfgstring string) (*Config, error) {
	var cfg Config
	if _, err := tml.Decode(cfgstring, &cfg); err != nil {
		return nil, err
	}
	fillDefaultCfg(&cfg)
	return &cfg, nil
}

func fillDefaultCfg(cfg *Config) {
	if cfg.Title == "" {
		cfg.Title = DefaultTitle
	}
	if cfg.Log == nil {
		cfg.Log = &Log{}
	}
	if cfg.Store == nil {
		cfg.Store = &Store{}
	}
	if cfg.Store.Name == "" {
		cfg.Store.Name = "statedb"
	}
	if cfg.Store.Driver == "" {
		cfg.Store.Driver = DefaultDBDriver
	}
	if cfg.Store.DbPath == "" {
		cfg.Store.DbPath = "datadir"
	}
	if cfg.Exec == nil {
		cfg.Exec = &Exec{}
	}
	if cfg.Metrics == nil {
		cfg.Metrics = &Metrics{}
	}
}

// InitCfg 初始化配置
func InitCfg(path string) (*Config, *ConfigSubModule) {
	return InitCfgString(readFile(path))
}

// InitCfgString 初始化配置
func InitCfgString(cfgstring string) (*Config, *ConfigSubModule) {
	cfg, err := initCfgString(cfgstring)
	if err != nil {
		panic(err)
	}
	sub, err := initSubModuleString(cfgstring)
	if err != nil {
		panic(err)
	}
	return cfg, sub
}

func readFile(path string) string {
	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}
	return string(data)
}

func initSubModuleString(cfgstring string) (*ConfigSubModule, error) {
	var cfg subModule
	if _, err := tml.Decode(cfgstring, &cfg); err != nil {
		return nil, err
	}
	var subcfg ConfigSubModule
	subcfg.Store = parseItem(cfg.Store)
	subcfg.Exec = parseItem(cfg.Exec)
	return &subcfg, nil
}

func parseItem(data map[string]interface{}) map[string][]byte {
	subconfig := make(map[string][]byte)
	if len(data) == 0 {
		return subconfig
	}
	for key := range data {
		if key == "sub" {
			subcfg, ok := data[key].(map[string]interface{})
			if !ok {
				continue
			}
			for k := range subcfg {
				subconfig[k], _ = json.Marshal(subcfg[k])
			}
		}
	}
	return subconfig
}

//ModifySubConfig json data modify
func ModifySubConfig(sub []byte, key string, value interface{}) ([]byte, error) {
	var data map[string]interface{}
	if len(sub) > 0 {
		if err := json.Unmarshal(sub, &data); err != nil {
			return nil, err
		}
	}
	if data == nil {
		data = make(map[string]interface{})
	}
	data[key] = value
	return json.Marshal(data)
}
