// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	dty "github.com/33cn/deershooter/plugin/dapp/deershooter/types"
	"github.com/33cn/deershooter/types"
)

func (a *action) getReferral(addr string) (string, bool, error) {
	return a.store.getString(calcReferralKey(addr))
}

// AddReferral 绑定推荐人，已经绑定过的返回 false，不报错也不修改
func (a *action) AddReferral(payload *dty.AddReferral) (bool, *types.Receipt, error) {
	if err := requireScriptHash(payload.ToBeReferred); err != nil {
		return false, nil, err
	}
	if err := requireScriptHash(payload.Referrer); err != nil {
		return false, nil, err
	}
	if !a.isWitness(a.conf.admin) && !a.isWitness(payload.ToBeReferred) {
		return false, nil, types.ErrUnauthorized
	}
	if payload.ToBeReferred == payload.Referrer {
		return false, nil, types.ErrInvalidReferral
	}
	old, ok, err := a.getReferral(payload.ToBeReferred)
	if err != nil {
		return false, nil, err
	}
	if ok {
		dlog.Debug("AddReferral already bound", "addr", payload.ToBeReferred, "referrer", old)
		return false, a.receipt(), nil
	}
	if err := a.store.setString(calcReferralKey(payload.ToBeReferred), payload.Referrer); err != nil {
		return false, nil, err
	}
	a.addLog(dty.TyLogDeerAddReferral, map[string]interface{}{
		"toBeReferred": payload.ToBeReferred,
		"referrer":     payload.Referrer,
	})
	return true, a.receipt(), nil
}
