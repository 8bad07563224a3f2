// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import "errors"

// host errors
var (
	ErrNotFound           = errors.New("ErrNotFound")
	ErrDecode             = errors.New("ErrDecode")
	ErrActionNotSupport   = errors.New("ErrActionNotSupport")
	ErrQueryNotSupport    = errors.New("ErrQueryNotSupport")
	ErrMethodReturnType   = errors.New("ErrMethodReturnType")
	ErrUnRegistedDriver   = errors.New("ErrUnRegistedDriver")
	ErrSign               = errors.New("ErrSign")
	ErrAmount             = errors.New("ErrAmount")
	ErrNoBalance          = errors.New("ErrNoBalance")
	ErrSendSameToRecv     = errors.New("ErrSendSameToRecv")
	ErrAddrNotExist       = errors.New("ErrAddrNotExist")
	ErrSymbolNameNotAllow = errors.New("ErrSymbolNameNotAllow")
	ErrExecNameNotAllow   = errors.New("ErrExecNameNotAllow")
	ErrInvalidAddress     = errors.New("ErrInvalidAddress")
	ErrReRunGenesis       = errors.New("ErrReRunGenesis")
	ErrTxDup              = errors.New("ErrTxDup")
	ErrExecPanic          = errors.New("ErrExecPanic")
)

// arithmetic errors
var (
	ErrArithmeticOverflow  = errors.New("ErrArithmeticOverflow")
	ErrArithmeticUnderflow = errors.New("ErrArithmeticUnderflow")
	ErrDivisionByZero      = errors.New("ErrDivisionByZero")
)

// deershooter errors
var (
	ErrUnauthorized                 = errors.New("ErrUnauthorized")
	ErrMalformedIdentity            = errors.New("ErrMalformedIdentity")
	ErrTransferFailed               = errors.New("ErrTransferFailed")
	ErrRewardIssuanceFailed         = errors.New("ErrRewardIssuanceFailed")
	ErrRoundNotOpenOrAlreadySettled = errors.New("ErrRoundNotOpenOrAlreadySettled")
	ErrInsufficientPool             = errors.New("ErrInsufficientPool")
	ErrAlreadyInitialized           = errors.New("ErrAlreadyInitialized")
	ErrNotInitialized               = errors.New("ErrNotInitialized")
	ErrAlreadyCheckedInToday        = errors.New("ErrAlreadyCheckedInToday")
	ErrInvalidReferral              = errors.New("ErrInvalidReferral")
	ErrCorruptedState               = errors.New("ErrCorruptedState")
	ErrStakeTooSmall                = errors.New("ErrStakeTooSmall")
	ErrInvalidParameters            = errors.New("ErrInvalidParameters")
	ErrRoundPending                 = errors.New("ErrRoundPending")
)
