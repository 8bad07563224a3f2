// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"encoding/binary"
	"encoding/json"

	"github.com/33cn/deershooter/common"
)

//Header 区块头，本地链每个区块只记录头和交易回执
type Header struct {
	Height     int64  `json:"height"`
	BlockTime  int64  `json:"blockTime"`
	ParentHash []byte `json:"parentHash"`
	Hash       []byte `json:"hash"`
	TxCount    int64  `json:"txCount"`
}

//CalcBlockHash sha256(parentHash || txHash... || blocktime)
func CalcBlockHash(parentHash []byte, txHashes [][]byte, blocktime int64) []byte {
	var data []byte
	data = append(data, parentHash...)
	for _, h := range txHashes {
		data = append(data, h...)
	}
	var t [8]byte
	binary.BigEndian.PutUint64(t[:], uint64(blocktime))
	data = append(data, t[:]...)
	return common.Sha256(data)
}

//EncodeHeader ...
func EncodeHeader(h *Header) []byte {
	data, err := json.Marshal(h)
	if err != nil {
		panic(err)
	}
	return data
}

//DecodeHeader ...
func DecodeHeader(data []byte) (*Header, error) {
	var h Header
	if err := json.Unmarshal(data, &h); err != nil {
		return nil, ErrDecode
	}
	return &h, nil
}
