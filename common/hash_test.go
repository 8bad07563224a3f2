// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHash(t *testing.T) {
	assert.Equal(t, "0xe3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855", ToHex(Sha256(nil)))
	sum := Sha2Sum([]byte("abc"))
	assert.Equal(t, "4f8b42c22dd3729b519ba6f68d2da7cc5b2d606d05daed5ad5128cc03e6c6358", Bytes2Hex(sum[:]))
	h160 := Rimp160AfterSha256(nil)
	assert.Equal(t, "b472a266d0bd89c13706a4132ccfb16f7c3b9fcb", Bytes2Hex(h160[:]))
}

func TestHex(t *testing.T) {
	assert.Equal(t, "", ToHex(nil))
	b, err := FromHex("0x0102")
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 2}, b)
	b, err = FromHex("102")
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 2}, b)
	_, err = FromHex("0xzz")
	assert.Error(t, err)

	src := []byte{9, 8}
	cp := CopyBytes(src)
	cp[0] = 1
	assert.Equal(t, byte(9), src[0])
	assert.Nil(t, CopyBytes(nil))
}
