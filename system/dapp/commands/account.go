// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package commands 本地链的公共命令：账户、交易回执、区块头和状态
package commands

import (
	"fmt"
	"os"

	"github.com/33cn/deershooter/common"
	"github.com/33cn/deershooter/common/address"
	"github.com/33cn/deershooter/common/crypto"
	"github.com/33cn/deershooter/common/crypto/secp256k1"
	drivers "github.com/33cn/deershooter/system/dapp"
	commandtypes "github.com/33cn/deershooter/system/dapp/commands/types"
	"github.com/spf13/cobra"
)

// AccountCmd account command
func AccountCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "account",
		Short: "Account management",
		Args:  cobra.MinimumNArgs(1),
	}

	cmd.AddCommand(
		NewAccountCmd(),
		PrivKeyToAddrCmd(),
		PubKeyToAddrCmd(),
		ExecAddrCmd(),
	)

	return cmd
}

// NewAccountCmd 生成新的 secp256k1 密钥
func NewAccountCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "new",
		Short: "Generate a new secp256k1 private key",
		Run:   newAccount,
	}
	return cmd
}

func newAccount(cmd *cobra.Command, args []string) {
	c, err := crypto.New(secp256k1.Name)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}
	priv, err := c.GenKey()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}
	pub := priv.PubKey().Bytes()
	commandtypes.PrintJSON(&commandtypes.KeyResult{
		PrivKey: common.ToHex(priv.Bytes()),
		PubKey:  common.ToHex(pub),
		Addr:    address.PubKeyToAddress(pub).String(),
	})
}

// PrivKeyToAddrCmd --key 对应的地址
func PrivKeyToAddrCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "addr",
		Short: "Show the address of the private key given by --key",
		Run:   privKeyToAddr,
	}
	return cmd
}

func privKeyToAddr(cmd *cobra.Command, args []string) {
	priv, err := commandtypes.LoadPrivKey(cmd)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}
	pub := priv.PubKey().Bytes()
	commandtypes.PrintJSON(&commandtypes.KeyResult{
		PubKey: common.ToHex(pub),
		Addr:   address.PubKeyToAddress(pub).String(),
	})
}

// PubKeyToAddrCmd 公钥转地址
func PubKeyToAddrCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pub2addr",
		Short: "Convert public key to address",
		Run:   pubKeyToAddr,
	}
	cmd.Flags().StringP("pub", "p", "", "public key (hex)")
	cmd.MarkFlagRequired("pub")
	return cmd
}

func pubKeyToAddr(cmd *cobra.Command, args []string) {
	pubkey, _ := cmd.Flags().GetString("pub")
	pub, err := common.FromHex(pubkey)
	if err != nil || len(pub) == 0 {
		fmt.Fprintln(os.Stderr, "invalid public key", pubkey)
		return
	}
	fmt.Println(address.PubKeyToAddress(pub).String())
}

// ExecAddrCmd 执行器地址
func ExecAddrCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "exec_addr",
		Short: "Get the address of an executor",
		Run:   execAddr,
	}
	cmd.Flags().StringP("exec", "e", "", "executor name")
	cmd.MarkFlagRequired("exec")
	return cmd
}

func execAddr(cmd *cobra.Command, args []string) {
	name, _ := cmd.Flags().GetString("exec")
	fmt.Println(drivers.ExecAddress(name))
}
