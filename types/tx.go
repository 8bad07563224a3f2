// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"encoding/json"
	"fmt"

	"github.com/33cn/deershooter/common"
	"github.com/33cn/deershooter/common/address"
	"github.com/33cn/deershooter/common/crypto"
	"github.com/google/uuid"
)

//Signature 交易签名
type Signature struct {
	Ty        int32  `json:"ty"`
	Pubkey    []byte `json:"pubkey"`
	Signature []byte `json:"signature"`
}

//Transaction 交易，Payload 为 json 编码的 action 参数
type Transaction struct {
	Execer    string          `json:"execer"`
	Action    string          `json:"action"`
	Payload   json.RawMessage `json:"payload,omitempty"`
	Nonce     string          `json:"nonce"`
	Signature *Signature      `json:"signature,omitempty"`
}

//CreateTx 构造一个未签名的交易
func CreateTx(execer, action string, payload interface{}) (*Transaction, error) {
	if execer == "" || action == "" {
		return nil, ErrActionNotSupport
	}
	tx := &Transaction{Execer: execer, Action: action, Nonce: uuid.New().String()}
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, err
		}
		tx.Payload = data
	}
	return tx, nil
}

//Hash 不含签名部分的 sha256
func (tx *Transaction) Hash() []byte {
	copytx := *tx
	copytx.Signature = nil
	data, err := json.Marshal(&copytx)
	if err != nil {
		panic(err)
	}
	return common.Sha256(data)
}

//Sign 用私钥签名交易
func (tx *Transaction) Sign(ty int32, priv crypto.PrivKey) {
	tx.Signature = nil
	data, err := json.Marshal(tx)
	if err != nil {
		panic(err)
	}
	sign := priv.Sign(data)
	tx.Signature = &Signature{
		Ty:        ty,
		Pubkey:    priv.PubKey().Bytes(),
		Signature: sign.Bytes(),
	}
}

//CheckSign 检查签名
func (tx *Transaction) CheckSign() bool {
	if tx.Signature == nil {
		return false
	}
	c, err := crypto.New(crypto.GetName(int(tx.Signature.Ty)))
	if err != nil {
		return false
	}
	pub, err := c.PubKeyFromBytes(tx.Signature.Pubkey)
	if err != nil {
		return false
	}
	sign, err := c.SignatureFromBytes(tx.Signature.Signature)
	if err != nil {
		return false
	}
	copytx := *tx
	copytx.Signature = nil
	data, err := json.Marshal(&copytx)
	if err != nil {
		return false
	}
	return pub.VerifyBytes(data, sign)
}

//From 交易的签名地址，未签名返回空
func (tx *Transaction) From() string {
	if tx.Signature == nil {
		return ""
	}
	return address.PubKeyToAddress(tx.Signature.Pubkey).String()
}

//DecodePayload json 解码 action 参数
func (tx *Transaction) DecodePayload(v interface{}) error {
	if len(tx.Payload) == 0 {
		return nil
	}
	if err := json.Unmarshal(tx.Payload, v); err != nil {
		return ErrDecode
	}
	return nil
}

func (tx *Transaction) String() string {
	return fmt.Sprintf("Transaction{execer:%s action:%s nonce:%s from:%s}", tx.Execer, tx.Action, tx.Nonce, tx.From())
}

//EncodeTx ...
func EncodeTx(tx *Transaction) []byte {
	data, err := json.Marshal(tx)
	if err != nil {
		panic(err)
	}
	return data
}

//DecodeTx ...
func DecodeTx(data []byte) (*Transaction, error) {
	var tx Transaction
	if err := json.Unmarshal(data, &tx); err != nil {
		return nil, ErrDecode
	}
	return &tx, nil
}
