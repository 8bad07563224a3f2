// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"github.com/33cn/deershooter/common/address"
	"github.com/33cn/deershooter/types"
)

// requireWitness 交易必须由 addr 签名
func (a *action) requireWitness(addr string) error {
	if addr == "" || a.fromaddr != addr {
		return types.ErrUnauthorized
	}
	return nil
}

func (a *action) requireAdmin() error {
	return a.requireWitness(a.conf.admin)
}

func (a *action) isWitness(addr string) bool {
	return a.requireWitness(addr) == nil
}

// requireScriptHash 地址必须能解码成 20 字节并且校验和正确
func requireScriptHash(addr string) error {
	if err := address.CheckAddress(addr); err != nil {
		return types.ErrMalformedIdentity
	}
	return nil
}
