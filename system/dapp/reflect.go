// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dapp

import (
	"reflect"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/33cn/deershooter/types"
)

var (
	typeOfError   = reflect.TypeOf((*error)(nil)).Elem()
	typeOfTx      = reflect.TypeOf((*types.Transaction)(nil))
	typeOfReceipt = reflect.TypeOf((*types.Receipt)(nil))
	typeOfInt     = reflect.TypeOf(int(0))
)

// Is this an exported - upper case - name?
func isExported(name string) bool {
	rune, _ := utf8.DecodeRuneInString(name)
	return unicode.IsUpper(rune)
}

// Exec_Xxx(payload *T, tx *types.Transaction, index int) (*types.Receipt, error)
func isExecMethod(mtype reflect.Type) bool {
	if mtype.NumIn() != 4 || mtype.NumOut() != 2 {
		return false
	}
	if mtype.In(1).Kind() != reflect.Ptr || mtype.In(2) != typeOfTx || mtype.In(3) != typeOfInt {
		return false
	}
	return mtype.Out(0) == typeOfReceipt && mtype.Out(1) == typeOfError
}

// Query_Xxx(param *T) (interface{}, error) 返回值第一个可以是任意类型
func isQueryMethod(mtype reflect.Type) bool {
	if mtype.NumIn() != 2 || mtype.NumOut() != 2 {
		return false
	}
	return mtype.In(1).Kind() == reflect.Ptr && mtype.Out(1) == typeOfError
}

//ListMethod 列出 Exec_ 和 Query_ 开头的方法
func ListMethod(action interface{}) map[string]reflect.Method {
	typ := reflect.TypeOf(action)
	methods := make(map[string]reflect.Method)
	for m := 0; m < typ.NumMethod(); m++ {
		method := typ.Method(m)
		mname := method.Name
		// Method must be exported.
		if method.PkgPath != "" || !isExported(mname) {
			continue
		}
		switch {
		case strings.HasPrefix(mname, "Exec_") && isExecMethod(method.Type):
			methods[mname] = method
		case strings.HasPrefix(mname, "Query_") && isQueryMethod(method.Type):
			methods[mname] = method
		}
	}
	return methods
}

//IsOK 检查返回值个数以及是否可以取 interface
func IsOK(list []reflect.Value, n int) bool {
	if len(list) != n {
		return false
	}
	for i := 0; i < len(list); i++ {
		if !IsNilVal(list[i]) && !list[i].CanInterface() {
			return false
		}
	}
	return true
}

//IsNilVal ...
func IsNilVal(v reflect.Value) bool {
	if !v.IsValid() {
		return true
	}
	switch v.Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return v.IsNil()
	}
	return false
}

// 第二个返回值转成 error
func returnError(v reflect.Value) (bool, error) {
	if IsNilVal(v) {
		return true, nil
	}
	err, ok := v.Interface().(error)
	return ok, err
}
