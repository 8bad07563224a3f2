// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"github.com/33cn/deershooter/common/safemath"
	"github.com/33cn/deershooter/types"
	"github.com/holiman/uint256"
)

var (
	oddsScale     = uint256.NewInt(10000)
	oddsRange     = uint256.NewInt(1000000)
	oddsLower     = uint256.NewInt(101)
	oddsUpper     = uint256.NewInt(500000)
	oddsHundred   = uint256.NewInt(100)
	oddsTen       = uint256.NewInt(10)
	oddsOne       = uint256.NewInt(1)
	oddsSaturated = uint64(100)
)

// scoreWeight 得分对应的权重，单位 0.1
func scoreWeight(score int64) uint64 {
	switch {
	case score < 0:
		return 0
	case score < 20:
		return 2
	case score < 30:
		return 3
	case score < 40:
		return 4
	case score < 50:
		return 5
	case score < 70:
		return 7
	case score < 100:
		return 8
	default:
		return 10
	}
}

// samplePoint 随机数 -> [1, 1000000]
func samplePoint(sample []byte) *uint256.Int {
	if len(sample) > 32 {
		sample = sample[len(sample)-32:]
	}
	p := new(uint256.Int).SetBytes(sample)
	p.Mod(p, oddsRange)
	return p.Add(p, oddsOne)
}

// CalculateOdd 根据得分和随机数计算赔率，返回值为实际倍数的 100 倍
//
// zp, A, B 为参数实际值的 100 倍，内部再放大 10000 倍。p 落在 [1000000 - zp, 1000000] 时固定返回 100。
// 其余情况 odd = ((x - 100 * c) * w / 10) / c，其中 k = B*p + 1，c = k*p，
// x = (k - A) * 10^8 并限制在 [101 * c, 500000 * c]，w 为得分权重。
func CalculateOdd(score int64, zp, a, b uint64, sample []byte) (uint64, error) {
	zpv, err := safemath.Mul(uint256.NewInt(zp), oddsScale)
	if err != nil {
		return 0, err
	}
	av, err := safemath.Mul(uint256.NewInt(a), oddsScale)
	if err != nil {
		return 0, err
	}
	bv, err := safemath.Mul(uint256.NewInt(b), oddsScale)
	if err != nil {
		return 0, err
	}
	p := samplePoint(sample)
	edge, err := safemath.Add(p, zpv)
	if err != nil {
		return 0, err
	}
	if !edge.Lt(oddsRange) {
		return oddsSaturated, nil
	}

	bp, err := safemath.Mul(bv, p)
	if err != nil {
		return 0, err
	}
	k, err := safemath.Add(bp, oddsOne)
	if err != nil {
		return 0, err
	}
	c, err := safemath.Mul(k, p)
	if err != nil {
		return 0, err
	}
	x := new(uint256.Int)
	if av.Lt(k) {
		diff, err := safemath.Sub(k, av)
		if err != nil {
			return 0, err
		}
		x, err = safemath.Mul(diff, oddsHundred)
		if err != nil {
			return 0, err
		}
		x, err = safemath.Mul(x, oddsRange)
		if err != nil {
			return 0, err
		}
	}
	lower, err := safemath.Mul(c, oddsLower)
	if err != nil {
		return 0, err
	}
	upper, err := safemath.Mul(c, oddsUpper)
	if err != nil {
		return 0, err
	}
	if x.Lt(lower) {
		x = lower
	} else if upper.Lt(x) {
		x = upper
	}

	base, err := safemath.Mul(c, oddsHundred)
	if err != nil {
		return 0, err
	}
	odd, err := safemath.Sub(x, base)
	if err != nil {
		return 0, err
	}
	odd, err = safemath.Mul(odd, uint256.NewInt(scoreWeight(score)))
	if err != nil {
		return 0, err
	}
	odd, err = safemath.Div(odd, oddsTen)
	if err != nil {
		return 0, err
	}
	odd, err = safemath.Div(odd, c)
	if err != nil {
		return 0, err
	}
	if !odd.IsUint64() {
		return 0, types.ErrArithmeticOverflow
	}
	return odd.Uint64(), nil
}
