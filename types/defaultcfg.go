// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

// GenesisAddr 本地链默认的创世地址，也是 deershooter 默认的管理员
const GenesisAddr = "14KEKbYtKKQm4wMthSK9J4La4nAiidGozt"

var cfgstring = `
Title="local"

[log]
# 日志级别，支持debug(dbug)/info/warn/error(eror)/crit
loglevel = "debug"
logConsoleLevel = "info"
# 日志文件名，可带目录，所有生成的日志文件都放到此目录下
logFile = "logs/deershooter.log"
# 单个日志文件的最大值（单位：兆）
maxFileSize = 300
# 最多保存的历史日志文件个数
maxBackups = 100
# 最多保存的历史日志消息（单位：天）
maxAge = 28
# 日志文件名是否使用本地事件（否则使用UTC时间）
localTime = true
# 历史日志文件是否压缩（压缩格式为gz）
compress = true
# 是否打印调用源文件和行号
callerFile = false
# 是否打印调用方法
callerFunction = false

[store]
name="statedb"
# 支持 leveldb, memdb, badger
driver="leveldb"
dbPath="datadir"
dbCache=64

[exec]
genesisAddr="14KEKbYtKKQm4wMthSK9J4La4nAiidGozt"
# 1e8 * 1e8
genesisAmount="10000000000000000"

[exec.sub.deershooter]
admin="14KEKbYtKKQm4wMthSK9J4La4nAiidGozt"
minStake="100000000"
checkInEpoch=0
dailyCheckInReward="1000000000"
rewardSymbol="LUCKY"

[metrics]
enable=false
prefix="deershooter"
`

//GetDefaultCfgstring 获取默认配置
func GetDefaultCfgstring() string {
	return cfgstring
}

//ReadFile 读取配置文件
func ReadFile(path string) string {
	return readFile(path)
}
