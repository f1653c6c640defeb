// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package roles_test

import (
	"os"
	"testing"

	"github.com/bitmark-inc/datamarkd/account"
	"github.com/bitmark-inc/datamarkd/fault"
	"github.com/bitmark-inc/datamarkd/fixtures"
	"github.com/bitmark-inc/datamarkd/roles"
)

func TestMain(m *testing.M) {
	if err := fixtures.Setup("roles"); nil != err {
		panic("fixtures setup failed: " + err.Error())
	}
	rc := m.Run()
	fixtures.Teardown()
	os.Exit(rc)
}

func mustMakeAccount(t *testing.T) *account.Account {
	t.Helper()
	acc, _, err := account.MakeAccount(true)
	if nil != err {
		t.Fatalf("key generation failed: %s", err)
	}
	return acc
}

func TestBootstrapAdmin(t *testing.T) {
	if !roles.Has(roles.Admin, fixtures.Admin.Account()) {
		t.Fatal("initial admin was not granted Admin")
	}
}

func TestGrantAndRevoke(t *testing.T) {
	admin := fixtures.Admin.Account()
	provider := mustMakeAccount(t)

	if roles.Has(roles.DataProvider, provider) {
		t.Fatal("unexpected initial role")
	}

	if err := roles.Grant(admin, roles.DataProvider, provider); nil != err {
		t.Fatalf("grant failed: %s", err)
	}
	if !roles.Has(roles.DataProvider, provider) {
		t.Error("grant did not take effect")
	}

	// granting one role must not grant another
	if roles.Has(roles.Consumer, provider) {
		t.Error("unrelated role granted")
	}

	if err := roles.Revoke(admin, roles.DataProvider, provider); nil != err {
		t.Fatalf("revoke failed: %s", err)
	}
	if roles.Has(roles.DataProvider, provider) {
		t.Error("revoke did not take effect")
	}
}

func TestGrantRequiresAdmin(t *testing.T) {
	stranger := mustMakeAccount(t)
	target := mustMakeAccount(t)

	err := roles.Grant(stranger, roles.Consumer, target)
	if fault.NotRoleHolder != err {
		t.Errorf("expected access denied, got: %v", err)
	}
	if roles.Has(roles.Consumer, target) {
		t.Error("role granted despite denial")
	}
}

func TestSelfRevocationDenied(t *testing.T) {
	admin := fixtures.Admin.Account()

	err := roles.Revoke(admin, roles.Admin, admin)
	if fault.SelfRevocation != err {
		t.Errorf("expected self revocation denial, got: %v", err)
	}
	if !roles.Has(roles.Admin, admin) {
		t.Error("admin role lost")
	}
}

func TestRevokeOtherAdmin(t *testing.T) {
	admin := fixtures.Admin.Account()
	other := mustMakeAccount(t)

	if err := roles.Grant(admin, roles.Admin, other); nil != err {
		t.Fatalf("grant failed: %s", err)
	}

	// a different admin can be revoked
	if err := roles.Revoke(admin, roles.Admin, other); nil != err {
		t.Errorf("revoke of other admin failed: %s", err)
	}
	if roles.Has(roles.Admin, other) {
		t.Error("other admin still has role")
	}

	// and the revoked admin can no longer grant
	err := roles.Grant(other, roles.Consumer, mustMakeAccount(t))
	if fault.NotRoleHolder != err {
		t.Errorf("expected access denied, got: %v", err)
	}
}

func TestInvalidRole(t *testing.T) {
	admin := fixtures.Admin.Account()
	target := mustMakeAccount(t)

	err := roles.Grant(admin, roles.Role(99), target)
	if fault.InvalidRole != err {
		t.Errorf("expected invalid role, got: %v", err)
	}
}

func TestRoleText(t *testing.T) {
	testData := []struct {
		role roles.Role
		name string
	}{
		{roles.Admin, "admin"},
		{roles.DataProvider, "data-provider"},
		{roles.Consumer, "consumer"},
	}

	for i, item := range testData {
		if item.role.String() != item.name {
			t.Errorf("%d: wrong name: %q  expected: %q", i, item.role.String(), item.name)
		}

		var decoded roles.Role
		if err := decoded.UnmarshalText([]byte(item.name)); nil != err {
			t.Errorf("%d: unmarshal failed: %s", i, err)
		}
		if decoded != item.role {
			t.Errorf("%d: wrong role: %#v  expected: %#v", i, decoded, item.role)
		}
	}
}
