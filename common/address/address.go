// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package address 20 字节账户标识以及 base58check 文本格式
package address

import (
	"bytes"
	"errors"

	"github.com/33cn/deershooter/common"
	"github.com/decred/base58"
	lru "github.com/hashicorp/golang-lru"
)

//地址格式错误
var (
	ErrDecodeBase58   = errors.New("ErrDecodeBase58")
	ErrAddressLength  = errors.New("ErrAddressLength")
	ErrAddressVersion = errors.New("ErrAddressVersion")
	ErrCheckChecksum  = errors.New("ErrCheckChecksum")
)

//MaxExecNameLength 执行器名最大长度
const MaxExecNameLength = 100

// Version 普通地址的版本号
const Version byte = 0

var addrSeed = []byte("address seed bytes for public key")
var addressCache *lru.Cache
var checkAddressCache *lru.Cache

func init() {
	addressCache, _ = lru.New(10240)
	checkAddressCache, _ = lru.New(10240)
}

//Address 地址
type Address struct {
	Version  byte
	Hash160  [20]byte
	Checksum []byte
	Enc58str string
}

//ExecPubKey 执行器没有私钥，用名字算出一个伪公钥
func ExecPubKey(name string) []byte {
	if len(name) > MaxExecNameLength {
		panic("name too long")
	}
	var bname [200]byte
	buf := append(bname[:0], addrSeed...)
	buf = append(buf, []byte(name)...)
	hash := common.Sha2Sum(buf)
	return hash[:]
}

//ExecAddress 计算量有点大，做一次cache
func ExecAddress(name string) string {
	if value, ok := addressCache.Get(name); ok {
		return value.(string)
	}
	addrstr := PubKeyToAddress(ExecPubKey(name)).String()
	addressCache.Add(name, addrstr)
	return addrstr
}

//PubKeyToAddress 公钥转为地址
func PubKeyToAddress(in []byte) *Address {
	a := new(Address)
	a.Version = Version
	a.Hash160 = common.Rimp160AfterSha256(in)
	return a
}

func decode(addr string) (*Address, error) {
	dec := base58.Decode(addr)
	if len(dec) == 0 {
		return nil, ErrDecodeBase58
	}
	if len(dec) != 25 {
		return nil, ErrAddressLength
	}
	if dec[0] != Version {
		return nil, ErrAddressVersion
	}
	sh := common.Sha2Sum(dec[0:21])
	if !bytes.Equal(sh[:4], dec[21:25]) {
		return nil, ErrCheckChecksum
	}
	a := new(Address)
	a.Version = dec[0]
	copy(a.Hash160[:], dec[1:21])
	a.Checksum = common.CopyBytes(dec[21:25])
	a.Enc58str = addr
	return a, nil
}

//CheckAddress 检查地址，结果做 cache
func CheckAddress(addr string) error {
	if value, ok := checkAddressCache.Get(addr); ok {
		if value == nil {
			return nil
		}
		return value.(error)
	}
	_, err := decode(addr)
	if err != nil {
		checkAddressCache.Add(addr, err)
	} else {
		checkAddressCache.Add(addr, nil)
	}
	return err
}

//NewAddrFromString new 地址
func NewAddrFromString(hs string) (*Address, error) {
	return decode(hs)
}

func (a *Address) String() string {
	if a.Enc58str == "" {
		var ad [25]byte
		ad[0] = a.Version
		copy(ad[1:21], a.Hash160[:])
		if a.Checksum == nil {
			sh := common.Sha2Sum(ad[0:21])
			a.Checksum = make([]byte, 4)
			copy(a.Checksum, sh[:4])
		}
		copy(ad[21:25], a.Checksum[:])
		a.Enc58str = base58.Encode(ad[:])
	}
	return a.Enc58str
}
