// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"encoding/hex"
	"testing"

	"github.com/33cn/deershooter/common/crypto"
	"github.com/33cn/deershooter/common/crypto/secp256k1"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func getprivkey(t *testing.T, key string) crypto.PrivKey {
	c, err := crypto.New(secp256k1.Name)
	require.Nil(t, err)
	bkey, err := hex.DecodeString(key)
	require.Nil(t, err)
	priv, err := c.PrivKeyFromBytes(bkey)
	require.Nil(t, err)
	return priv
}

func TestSignTx(t *testing.T) {
	priv := getprivkey(t, "CC38546E9E659D15E6B4893F0AB32A06D103931A8230B0BDE71459D2B27D6944")
	tx, err := CreateTx("deershooter", "StartRound", map[string]string{"stake": "1000000000"})
	require.Nil(t, err)
	assert.Equal(t, "", tx.From())
	assert.False(t, tx.CheckSign())

	hash := tx.Hash()
	tx.Sign(secp256k1.ID, priv)
	assert.True(t, tx.CheckSign())
	assert.Equal(t, GenesisAddr, tx.From())
	// 签名不影响交易 hash
	assert.Equal(t, hash, tx.Hash())

	data := EncodeTx(tx)
	tx2, err := DecodeTx(data)
	require.Nil(t, err)
	assert.True(t, tx2.CheckSign())
	assert.Equal(t, hash, tx2.Hash())

	var payload map[string]string
	require.Nil(t, tx2.DecodePayload(&payload))
	assert.Equal(t, "1000000000", payload["stake"])

	// 篡改 payload 后签名失效
	tx2.Payload = []byte(`{"stake":"1"}`)
	assert.False(t, tx2.CheckSign())
}

func TestTxNonce(t *testing.T) {
	tx1, err := CreateTx("deershooter", "CheckIn", nil)
	require.Nil(t, err)
	tx2, err := CreateTx("deershooter", "CheckIn", nil)
	require.Nil(t, err)
	assert.NotEqual(t, tx1.Nonce, tx2.Nonce)
	assert.NotEqual(t, tx1.Hash(), tx2.Hash())

	_, err = CreateTx("", "CheckIn", nil)
	assert.Equal(t, ErrActionNotSupport, err)
}

func TestDecodeTxError(t *testing.T) {
	_, err := DecodeTx([]byte("{"))
	assert.Equal(t, ErrDecode, err)

	tx := &Transaction{Execer: "deershooter", Action: "AddReferral", Payload: []byte(`[1,2]`)}
	var v struct{ Referrer string }
	assert.Equal(t, ErrDecode, tx.DecodePayload(&v))
}
