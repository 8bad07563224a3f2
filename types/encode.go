// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"encoding/json"
	"math/big"
	"strings"

	"github.com/holiman/uint256"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

//Encode 编码
func Encode(data proto.Message) []byte {
	b, err := proto.Marshal(data)
	if err != nil {
		panic(err)
	}
	return b
}

//Decode 解码
func Decode(data []byte, msg proto.Message) error {
	return proto.Unmarshal(data, msg)
}

//EncodeUint64 ...
func EncodeUint64(v uint64) []byte {
	return Encode(wrapperspb.UInt64(v))
}

//DecodeUint64 ...
func DecodeUint64(data []byte) (uint64, error) {
	var v wrapperspb.UInt64Value
	if err := Decode(data, &v); err != nil {
		return 0, ErrDecode
	}
	return v.GetValue(), nil
}

//EncodeString ...
func EncodeString(s string) []byte {
	return Encode(wrapperspb.String(s))
}

//DecodeString ...
func DecodeString(data []byte) (string, error) {
	var v wrapperspb.StringValue
	if err := Decode(data, &v); err != nil {
		return "", ErrDecode
	}
	return v.GetValue(), nil
}

//EncodeAmount 256 位金额按大端字节编码
func EncodeAmount(v *uint256.Int) []byte {
	return Encode(wrapperspb.Bytes(v.Bytes()))
}

//DecodeAmount ...
func DecodeAmount(data []byte) (*uint256.Int, error) {
	var v wrapperspb.BytesValue
	if err := Decode(data, &v); err != nil {
		return nil, ErrDecode
	}
	if len(v.GetValue()) > 32 {
		return nil, ErrDecode
	}
	return new(uint256.Int).SetBytes(v.GetValue()), nil
}

//EncodeLog 合约日志统一编码成 protobuf Struct
func EncodeLog(fields map[string]interface{}) []byte {
	s, err := structpb.NewStruct(fields)
	if err != nil {
		panic(err)
	}
	return Encode(s)
}

//DecodeLog ...
func DecodeLog(data []byte) (map[string]interface{}, error) {
	var s structpb.Struct
	if err := Decode(data, &s); err != nil {
		return nil, ErrDecode
	}
	return s.AsMap(), nil
}

//ParseAmount 十进制字符串 -> 金额（最小单位）
func ParseAmount(s string) (*uint256.Int, error) {
	s = strings.TrimSpace(s)
	if s == "" || strings.HasPrefix(s, "-") || strings.HasPrefix(s, "+") {
		return nil, ErrAmount
	}
	b, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return nil, ErrAmount
	}
	v, overflow := uint256.FromBig(b)
	if overflow {
		return nil, ErrAmount
	}
	return v, nil
}

//FormatAmount 金额 -> 十进制字符串
func FormatAmount(v *uint256.Int) string {
	if v == nil {
		return "0"
	}
	return v.ToBig().String()
}

// MustDecode 数据是否已经编码
func MustDecode(data []byte, v interface{}) {
	if data == nil {
		return
	}
	err := json.Unmarshal(data, v)
	if err != nil {
		panic(err)
	}
}

//ReqNil 无参数的查询
type ReqNil struct{}

//ReqAddr 按地址查询
type ReqAddr struct {
	Addr string `json:"addr"`
}

//ReplyString ...
type ReplyString struct {
	Data string `json:"data"`
}
