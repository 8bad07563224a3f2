// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package secp256k1 secp256k1 签名驱动
package secp256k1

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/33cn/deershooter/common"
	"github.com/33cn/deershooter/common/crypto"
	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcec/v2/ecdsa"
)

//const
const (
	Name = "secp256k1"
	ID   = 1
)

func init() {
	crypto.Register(Name, &Driver{}, ID)
}

//Driver 驱动
type Driver struct{}

//GenKey 生成私钥
func (d Driver) GenKey() (crypto.PrivKey, error) {
	priv, err := btcec.NewPrivateKey()
	if err != nil {
		return nil, err
	}
	var privKeyBytes PrivKeySecp256k1
	copy(privKeyBytes[:], priv.Serialize())
	return privKeyBytes, nil
}

//PrivKeyFromBytes 字节转为私钥
func (d Driver) PrivKeyFromBytes(b []byte) (privKey crypto.PrivKey, err error) {
	if len(b) != 32 {
		return nil, errors.New("invalid priv key byte")
	}
	var privKeyBytes PrivKeySecp256k1
	priv, _ := btcec.PrivKeyFromBytes(b)
	copy(privKeyBytes[:], priv.Serialize())
	return privKeyBytes, nil
}

//PubKeyFromBytes 字节转为公钥
func (d Driver) PubKeyFromBytes(b []byte) (pubKey crypto.PubKey, err error) {
	if len(b) != 33 {
		return nil, errors.New("invalid pub key byte")
	}
	if _, err := btcec.ParsePubKey(b); err != nil {
		return nil, err
	}
	var pubKeyBytes PubKeySecp256k1
	copy(pubKeyBytes[:], b)
	return pubKeyBytes, nil
}

//SignatureFromBytes 字节转为签名
func (d Driver) SignatureFromBytes(b []byte) (sig crypto.Signature, err error) {
	return SignatureSecp256k1(common.CopyBytes(b)), nil
}

//PrivKeySecp256k1 私钥
type PrivKeySecp256k1 [32]byte

//Bytes 字节格式
func (privKey PrivKeySecp256k1) Bytes() []byte {
	s := make([]byte, 32)
	copy(s, privKey[:])
	return s
}

//Sign 签名，先对消息做 sha256
func (privKey PrivKeySecp256k1) Sign(msg []byte) crypto.Signature {
	priv, _ := btcec.PrivKeyFromBytes(privKey[:])
	sig := ecdsa.Sign(priv, common.Sha256(msg))
	return SignatureSecp256k1(sig.Serialize())
}

//PubKey 私钥生成公钥，压缩格式
func (privKey PrivKeySecp256k1) PubKey() crypto.PubKey {
	_, pub := btcec.PrivKeyFromBytes(privKey[:])
	var pubKey PubKeySecp256k1
	copy(pubKey[:], pub.SerializeCompressed())
	return pubKey
}

//Equals 私钥是否相等
func (privKey PrivKeySecp256k1) Equals(other crypto.PrivKey) bool {
	if otherSecp, ok := other.(PrivKeySecp256k1); ok {
		return bytes.Equal(privKey[:], otherSecp[:])
	}
	return false
}

func (privKey PrivKeySecp256k1) String() string {
	return "PrivKeySecp256k1{*****}"
}

// PubKeySecp256k1 Compressed pubkey (just the x-cord),
// prefixed with 0x02 or 0x03, depending on the y-cord.
type PubKeySecp256k1 [33]byte

//Bytes 字节格式
func (pubKey PubKeySecp256k1) Bytes() []byte {
	s := make([]byte, 33)
	copy(s, pubKey[:])
	return s
}

//VerifyBytes 验证签名
func (pubKey PubKeySecp256k1) VerifyBytes(msg []byte, sig crypto.Signature) bool {
	sigSecp, ok := sig.(SignatureSecp256k1)
	if !ok {
		return false
	}
	pub, err := btcec.ParsePubKey(pubKey[:])
	if err != nil {
		return false
	}
	parsed, err := ecdsa.ParseDERSignature(sigSecp[:])
	if err != nil {
		return false
	}
	return parsed.Verify(common.Sha256(msg), pub)
}

func (pubKey PubKeySecp256k1) String() string {
	return fmt.Sprintf("PubKeySecp256k1{%X}", pubKey[:])
}

//KeyString Must return the full bytes in hex.
// Used for map keying, etc.
func (pubKey PubKeySecp256k1) KeyString() string {
	return fmt.Sprintf("%X", pubKey[:])
}

//Equals 公钥是否相等
func (pubKey PubKeySecp256k1) Equals(other crypto.PubKey) bool {
	if otherSecp, ok := other.(PubKeySecp256k1); ok {
		return bytes.Equal(pubKey[:], otherSecp[:])
	}
	return false
}

//SignatureSecp256k1 DER 编码的签名
type SignatureSecp256k1 []byte

//Bytes 字节格式
func (sig SignatureSecp256k1) Bytes() []byte {
	s := make([]byte, len(sig))
	copy(s, sig[:])
	return s
}

//IsZero 是否是0
func (sig SignatureSecp256k1) IsZero() bool { return len(sig) == 0 }

func (sig SignatureSecp256k1) String() string {
	fingerprint := make([]byte, len(sig[:]))
	copy(fingerprint, sig[:])
	return fmt.Sprintf("/%X.../", fingerprint)
}

//Equals 签名是否相等
func (sig SignatureSecp256k1) Equals(other crypto.Signature) bool {
	if otherSecp, ok := other.(SignatureSecp256k1); ok {
		return bytes.Equal(sig[:], otherSecp[:])
	}
	return false
}
