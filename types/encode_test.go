// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"testing"

	"github.com/holiman/uint256"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

func TestAmountEncode(t *testing.T) {
	max := new(uint256.Int).Not(uint256.NewInt(0))
	for _, v := range []*uint256.Int{uint256.NewInt(0), uint256.NewInt(1e8), max} {
		got, err := DecodeAmount(EncodeAmount(v))
		require.Nil(t, err)
		assert.True(t, got.Eq(v))
	}
	_, err := DecodeAmount(Encode(wrapperspb.Bytes(make([]byte, 33))))
	assert.Equal(t, ErrDecode, err)
	_, err = DecodeAmount([]byte{0xff, 0xff})
	assert.Equal(t, ErrDecode, err)
}

func TestParseAmount(t *testing.T) {
	v, err := ParseAmount("1000000000")
	require.Nil(t, err)
	assert.Equal(t, uint64(1e9), v.Uint64())
	assert.Equal(t, "1000000000", FormatAmount(v))

	max := "115792089237316195423570985008687907853269984665640564039457584007913129639935"
	v, err = ParseAmount(max)
	require.Nil(t, err)
	assert.Equal(t, max, FormatAmount(v))

	for _, s := range []string{"", "-1", "+1", "1.5", "abc", "115792089237316195423570985008687907853269984665640564039457584007913129639936"} {
		_, err := ParseAmount(s)
		assert.Equal(t, ErrAmount, err, s)
	}
	assert.Equal(t, "0", FormatAmount(nil))
}

func TestLogEncode(t *testing.T) {
	data := EncodeLog(map[string]interface{}{
		"roundId": "1",
		"player":  GenesisAddr,
		"odd":     150,
	})
	m, err := DecodeLog(data)
	require.Nil(t, err)
	assert.Equal(t, "1", m["roundId"])
	assert.Equal(t, GenesisAddr, m["player"])
	assert.Equal(t, float64(150), m["odd"])
}

func TestUint64AndString(t *testing.T) {
	v, err := DecodeUint64(EncodeUint64(3000))
	require.Nil(t, err)
	assert.Equal(t, uint64(3000), v)

	s, err := DecodeString(EncodeString(GenesisAddr))
	require.Nil(t, err)
	assert.Equal(t, GenesisAddr, s)
}

func TestMergeReceipt(t *testing.T) {
	r1 := &Receipt{Ty: ExecOk, KV: []*KeyValue{{Key: []byte("a")}}}
	r2 := &Receipt{Ty: ExecOk, KV: []*KeyValue{{Key: []byte("b")}}, Logs: []*ReceiptLog{{Ty: TyLogTransfer}}}
	r := MergeReceipt(r1, r2)
	assert.Equal(t, 2, len(r.KV))
	assert.Equal(t, 1, len(r.Logs))
	assert.Equal(t, r1, MergeReceipt(r1, nil))
	assert.Equal(t, r2, MergeReceipt(nil, r2))

	rd := &ReceiptData{TxHash: "0x01", Height: 1, Ty: ExecOk, Logs: r.Logs}
	rd2, err := DecodeReceiptData(EncodeReceiptData(rd))
	require.Nil(t, err)
	assert.Equal(t, rd, rd2)
}
