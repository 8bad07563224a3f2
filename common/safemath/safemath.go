// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package safemath 带溢出检查的 256 位无符号整数运算
//
// 所有函数都不修改参数，结果总是新分配的 *uint256.Int
package safemath

import (
	"github.com/33cn/deershooter/types"
	"github.com/holiman/uint256"
)

//Add a + b，回绕则溢出
func Add(a, b *uint256.Int) (*uint256.Int, error) {
	z := new(uint256.Int).Add(a, b)
	if z.Lt(a) {
		return nil, types.ErrArithmeticOverflow
	}
	return z, nil
}

//Sub a - b
func Sub(a, b *uint256.Int) (*uint256.Int, error) {
	if a.Lt(b) {
		return nil, types.ErrArithmeticUnderflow
	}
	return new(uint256.Int).Sub(a, b), nil
}

//AbsDiff |a - b|
func AbsDiff(a, b *uint256.Int) *uint256.Int {
	if a.Lt(b) {
		return new(uint256.Int).Sub(b, a)
	}
	return new(uint256.Int).Sub(a, b)
}

//Mul a * b，用 (a*b)/a == b 判断溢出
func Mul(a, b *uint256.Int) (*uint256.Int, error) {
	if a.IsZero() {
		return new(uint256.Int), nil
	}
	z := new(uint256.Int).Mul(a, b)
	if !new(uint256.Int).Div(z, a).Eq(b) {
		return nil, types.ErrArithmeticOverflow
	}
	return z, nil
}

//Div 截断除法
func Div(a, b *uint256.Int) (*uint256.Int, error) {
	if b.IsZero() {
		return nil, types.ErrDivisionByZero
	}
	return new(uint256.Int).Div(a, b), nil
}

//MulDiv a * b / c，中间结果也不能溢出
func MulDiv(a, b, c *uint256.Int) (*uint256.Int, error) {
	z, err := Mul(a, b)
	if err != nil {
		return nil, err
	}
	return Div(z, c)
}

//Pow a^b，逐次乘法，a^0 = 1
func Pow(a *uint256.Int, b uint64) (*uint256.Int, error) {
	if b == 0 {
		return uint256.NewInt(1), nil
	}
	if a.IsZero() {
		return new(uint256.Int), nil
	}
	z := uint256.NewInt(1)
	var err error
	for i := uint64(0); i < b; i++ {
		z, err = Mul(z, a)
		if err != nil {
			return nil, err
		}
	}
	return z, nil
}

//Sqrt 牛顿迭代求整数平方根（向下取整）
func Sqrt(a *uint256.Int) *uint256.Int {
	if a.IsZero() {
		return new(uint256.Int)
	}
	// c = (a+1)/2，a 为最大值时 a+1 回绕，改用 a/2 + 1
	var c *uint256.Int
	if a.Eq(maxUint256) {
		c = new(uint256.Int).Rsh(a, 1)
		c.Add(c, one)
	} else {
		c = new(uint256.Int).Add(a, one)
		c.Rsh(c, 1)
	}
	b := new(uint256.Int).Set(a)
	for c.Lt(b) {
		b.Set(c)
		// c = (a/c + c)/2，a/c + c 不会超过 a + 1
		q := new(uint256.Int).Div(a, c)
		sum, overflow := new(uint256.Int).AddOverflow(q, c)
		c = sum.Rsh(sum, 1)
		if overflow {
			c.Or(c, highBit)
		}
	}
	return b
}

var (
	one        = uint256.NewInt(1)
	maxUint256 = new(uint256.Int).Not(new(uint256.Int))
	highBit    = new(uint256.Int).Lsh(uint256.NewInt(1), 255)
)
