// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dapp

import (
	"sync"

	"github.com/33cn/deershooter/common/address"
	"github.com/33cn/deershooter/types"
	log "github.com/inconshreveable/log15"
)

var elog = log.New("module", "execs")

// DriverCreate defines a drivercreate function
type DriverCreate func() Driver

type driverWithHeight struct {
	create DriverCreate
	height int64
}

var (
	mu                 sync.RWMutex
	execDrivers        = make(map[string]*driverWithHeight)
	execAddressNameMap = make(map[string]string)
	registedExecDriver = make(map[string]*driverWithHeight)
)

// Register register dcriver height in name
func Register(name string, create DriverCreate, height int64) {
	if create == nil {
		panic("Execute: Register driver is nil")
	}
	mu.Lock()
	defer mu.Unlock()
	if _, dup := registedExecDriver[name]; dup {
		panic("Execute: Register called twice for driver " + name)
	}
	driverHeight := &driverWithHeight{
		create: create,
		height: height,
	}
	registedExecDriver[name] = driverHeight
	addr := registerAddress(name)
	execDrivers[addr] = driverHeight
}

// IsRegistered ...
func IsRegistered(name string) bool {
	mu.RLock()
	defer mu.RUnlock()
	_, ok := registedExecDriver[name]
	return ok
}

// LoadDriver load driver, height == -1 表示不检查启用高度
func LoadDriver(name string, height int64) (driver Driver, err error) {
	mu.RLock()
	c, ok := registedExecDriver[name]
	mu.RUnlock()
	if !ok {
		elog.Debug("LoadDriver", "driver", name)
		return nil, types.ErrUnRegistedDriver
	}
	if height >= c.height || height == -1 {
		return c.create(), nil
	}
	return nil, types.ErrUnRegistedDriver
}

// IsDriverAddress whether or not execdrivers by address
func IsDriverAddress(addr string, height int64) bool {
	mu.RLock()
	c, ok := execDrivers[addr]
	mu.RUnlock()
	if !ok {
		return false
	}
	return height >= c.height || height == -1
}

func registerAddress(name string) string {
	if len(name) == 0 {
		panic("empty name string")
	}
	addr := address.ExecAddress(name)
	execAddressNameMap[name] = addr
	return addr
}

// ExecAddress return exec address
func ExecAddress(name string) string {
	mu.RLock()
	addr, ok := execAddressNameMap[name]
	mu.RUnlock()
	if ok {
		return addr
	}
	return address.ExecAddress(name)
}
