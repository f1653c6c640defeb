// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package roles

import (
	"fmt"
	"strings"

	"github.com/bitmark-inc/datamarkd/fault"
)

// Role - role enumeration
type Role uint64

// possible role values
const (
	Nothing      Role = iota // this must be the first value
	Admin        Role = iota
	DataProvider Role = iota
	Consumer     Role = iota
	maximumValue Role = iota // this must be the last value
	First        Role = Nothing + 1
	Last         Role = maximumValue - 1
)

// internal conversion
func toString(r Role) ([]byte, error) {
	switch r {
	case Nothing:
		return []byte{}, nil
	case Admin:
		return []byte("admin"), nil
	case DataProvider:
		return []byte("data-provider"), nil
	case Consumer:
		return []byte("consumer"), nil
	default:
		return []byte{}, fault.InvalidRole
	}
}

// convert a string to a role
func fromString(in string) (Role, error) {
	switch strings.ToLower(in) {
	case "":
		return Nothing, nil
	case "admin":
		return Admin, nil
	case "data-provider", "provider":
		return DataProvider, nil
	case "consumer":
		return Consumer, nil
	default:
		return Nothing, fault.InvalidRole
	}
}

// String - convert a role to its string name
func (role Role) String() string {
	s, err := toString(role)
	if nil != err {
		return "*invalid*"
	}
	return string(s)
}

// GoString - convert both enum value and name, for debugging
func (role Role) GoString() string {
	return fmt.Sprintf("<Role#%d:%q>", role, role.String())
}

// MarshalText - convert a role into JSON
func (role Role) MarshalText() ([]byte, error) {
	return toString(role)
}

// UnmarshalText - convert a role name from JSON to a role enumeration value
func (role *Role) UnmarshalText(s []byte) error {
	r, err := fromString(string(s))
	if nil != err {
		return err
	}
	*role = r
	return nil
}

// IsValid - valid role if in range of First to Last
// Nothing is not considered as valid
func (role Role) IsValid() bool {
	return role >= First && role <= Last
}
