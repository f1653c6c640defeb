// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account_test

import (
	"testing"

	"github.com/bitmark-inc/datamarkd/account"
	"github.com/bitmark-inc/datamarkd/fault"
)

// round trip a generated account through its base58 representation
func TestAccountRoundTrip(t *testing.T) {
	acc, private, err := account.MakeAccount(true)
	if nil != err {
		t.Fatalf("key generation failed: %s", err)
	}

	encoded := acc.String()
	decoded, err := account.AccountFromBase58(encoded)
	if nil != err {
		t.Fatalf("decode failed: %s", err)
	}

	if decoded.String() != encoded {
		t.Errorf("round trip mismatch: %q != %q", decoded.String(), encoded)
	}
	if !decoded.IsTesting() {
		t.Error("test flag lost in round trip")
	}

	again := private.Account()
	if again.String() != encoded {
		t.Errorf("private key derived account mismatch: %q != %q", again.String(), encoded)
	}
}

func TestAccountFromBytes(t *testing.T) {
	acc, _, err := account.MakeAccount(false)
	if nil != err {
		t.Fatalf("key generation failed: %s", err)
	}

	decoded, err := account.AccountFromBytes(acc.Bytes())
	if nil != err {
		t.Fatalf("decode failed: %s", err)
	}
	if decoded.String() != acc.String() {
		t.Errorf("bytes round trip mismatch: %q != %q", decoded.String(), acc.String())
	}
}

func TestSignatureCheck(t *testing.T) {
	acc, private, err := account.MakeAccount(true)
	if nil != err {
		t.Fatalf("key generation failed: %s", err)
	}

	message := []byte("mint asset one")
	signature := private.Sign(message)

	if err := acc.CheckSignature(message, signature); nil != err {
		t.Errorf("valid signature rejected: %s", err)
	}

	if err := acc.CheckSignature([]byte("different message"), signature); fault.InvalidSignature != err {
		t.Errorf("expected invalid signature error, got: %v", err)
	}

	if err := acc.CheckSignature(message, signature[1:]); fault.InvalidSignature != err {
		t.Errorf("expected invalid signature error for short signature, got: %v", err)
	}
}

func TestInvalidBase58(t *testing.T) {
	testData := []string{
		"",        // empty
		"0OIl",    // not base58 alphabet
		"abcdefg", // too short for any key
	}

	for i, encoded := range testData {
		_, err := account.AccountFromBase58(encoded)
		if nil == err {
			t.Errorf("%d: unexpected success for: %q", i, encoded)
		}
	}
}

func TestPrivateKeyRoundTrip(t *testing.T) {
	_, private, err := account.MakeAccount(true)
	if nil != err {
		t.Fatalf("key generation failed: %s", err)
	}

	decoded, err := account.PrivateKeyFromBase58(private.String())
	if nil != err {
		t.Fatalf("decode failed: %s", err)
	}
	if decoded.Account().String() != private.Account().String() {
		t.Error("private key round trip produced different account")
	}
}
