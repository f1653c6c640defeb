// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"bytes"
	"crypto/rand"

	"golang.org/x/crypto/ed25519"
	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/datamarkd/fault"
	"github.com/bitmark-inc/datamarkd/util"
)

// bits in key code starting from LSB
const (
	privateKeyCode = 0x00 // bit 0 clear distinguishes private from public
)

// PrivateKey - base type for private keys
type PrivateKey struct {
	Test       bool
	PrivateKey []byte
}

// MakeAccount - generate a new key pair
//
// the test flag marks accounts only valid on testing chains
func MakeAccount(test bool) (*Account, *PrivateKey, error) {
	publicKey, privateKey, err := ed25519.GenerateKey(rand.Reader)
	if nil != err {
		return nil, nil, err
	}

	account := &Account{
		AccountInterface: &ED25519Account{
			Test:      test,
			PublicKey: publicKey,
		},
	}
	private := &PrivateKey{
		Test:       test,
		PrivateKey: privateKey,
	}
	return account, private, nil
}

// PrivateKeyFromBase58 - decode a Base58 encoded private key
func PrivateKeyFromBase58(privateKeyBase58Encoded string) (*PrivateKey, error) {
	// decode the key
	keyDecoded := util.FromBase58(privateKeyBase58Encoded)
	if 0 == len(keyDecoded) {
		return nil, fault.CannotDecodeAccount
	}

	// parse the key variant
	keyVariant, keyVariantLength := util.FromVarint64(keyDecoded)

	// check key type
	if 0 == keyVariantLength || keyVariant&publicKeyCode == publicKeyCode {
		return nil, fault.InvalidPrivateKey
	}

	// compute algorithm
	keyAlgorithm := keyVariant >> algorithmShift
	if keyAlgorithm < 1 || keyAlgorithm >= algorithmLimit {
		return nil, fault.InvalidKeyType
	}

	// network selection
	isTest := 0 != keyVariant&testKeyCode

	// checksum
	checksumStart := len(keyDecoded) - checksumLength
	if checksumStart <= keyVariantLength {
		return nil, fault.InvalidKeyLength
	}
	checksum := sha3.Sum256(keyDecoded[:checksumStart])
	if !bytes.Equal(checksum[:checksumLength], keyDecoded[checksumStart:]) {
		return nil, fault.ChecksumMismatch
	}

	privateKey := keyDecoded[keyVariantLength:checksumStart]
	if ed25519.PrivateKeySize != len(privateKey) {
		return nil, fault.InvalidKeyLength
	}

	return &PrivateKey{
		Test:       isTest,
		PrivateKey: privateKey,
	}, nil
}

// Account - the public account corresponding to a private key
func (private *PrivateKey) Account() *Account {
	publicKey := make([]byte, ed25519.PublicKeySize)
	copy(publicKey, private.PrivateKey[ed25519.PrivateKeySize-ed25519.PublicKeySize:])
	return &Account{
		AccountInterface: &ED25519Account{
			Test:      private.Test,
			PublicKey: publicKey,
		},
	}
}

// Sign - sign a message
func (private *PrivateKey) Sign(message []byte) Signature {
	return Signature(ed25519.Sign(private.PrivateKey, message))
}

// Bytes - byte slice for packed key
func (private *PrivateKey) Bytes() []byte {
	keyVariant := byte(ED25519 << algorithmShift)
	keyVariant |= privateKeyCode
	if private.Test {
		keyVariant |= testKeyCode
	}
	return append([]byte{keyVariant}, private.PrivateKey...)
}

// String - base58 encoding of encoded key
func (private *PrivateKey) String() string {
	buffer := private.Bytes()
	checksum := sha3.Sum256(buffer)
	buffer = append(buffer, checksum[:checksumLength]...)
	return util.ToBase58(buffer)
}
