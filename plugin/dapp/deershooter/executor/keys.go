// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"fmt"
)

// 状态数据库的 key 都带 mavl-deershooter- 前缀
const keyPrefix = "mavl-deershooter-"

func calcKey(key string) []byte {
	return []byte(keyPrefix + key)
}

// 全局配置
var (
	keyCurrentRound  = calcKey("G1")
	keyRewardRate    = calcKey("G2")
	keyParamA        = calcKey("G3")
	keyParamB        = calcKey("G4")
	keyParamZp       = calcKey("G5")
	keyReferralBonus = calcKey("G6")
	keyPool          = calcKey("G7")
	keyInited        = calcKey("Inited")
)

// <id>_P 未结算的玩家
func calcRoundPlayerKey(roundID uint64) []byte {
	return calcKey(fmt.Sprintf("%d_P", roundID))
}

// <id>_S 未结算的下注金额
func calcRoundStakeKey(roundID uint64) []byte {
	return calcKey(fmt.Sprintf("%d_S", roundID))
}

func calcReferralKey(addr string) []byte {
	return calcKey("P1_" + addr)
}

func calcCheckInKey(addr string) []byte {
	return calcKey("P2_" + addr)
}
