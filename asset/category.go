// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package asset

import (
	"fmt"
	"strings"

	"github.com/bitmark-inc/datamarkd/fault"
)

// Category - access sensitivity enumeration
//
// ordered: Public < Private < Confidential
type Category uint64

// possible category values
const (
	Nothing      Category = iota // this must be the first value
	Public       Category = iota
	Private      Category = iota
	Confidential Category = iota
	maximumValue Category = iota // this must be the last value
	First        Category = Nothing + 1
	Last         Category = maximumValue - 1
)

// internal conversion
func toString(c Category) ([]byte, error) {
	switch c {
	case Nothing:
		return []byte{}, nil
	case Public:
		return []byte("public"), nil
	case Private:
		return []byte("private"), nil
	case Confidential:
		return []byte("confidential"), nil
	default:
		return []byte{}, fault.InvalidCategory
	}
}

// convert a string to a category
func fromString(in string) (Category, error) {
	switch strings.ToLower(in) {
	case "":
		return Nothing, nil
	case "public":
		return Public, nil
	case "private":
		return Private, nil
	case "confidential":
		return Confidential, nil
	default:
		return Nothing, fault.InvalidCategory
	}
}

// String - convert a category to its string name
func (category Category) String() string {
	s, err := toString(category)
	if nil != err {
		return "*invalid*"
	}
	return string(s)
}

// GoString - convert both enum value and name, for debugging
func (category Category) GoString() string {
	return fmt.Sprintf("<Category#%d:%q>", category, category.String())
}

// MarshalText - convert a category into JSON
func (category Category) MarshalText() ([]byte, error) {
	return toString(category)
}

// UnmarshalText - convert a category name from JSON to an enumeration value
func (category *Category) UnmarshalText(s []byte) error {
	c, err := fromString(string(s))
	if nil != err {
		return err
	}
	*category = c
	return nil
}

// IsValid - valid category if in range of First to Last
// Nothing is not considered as valid
func (category Category) IsValid() bool {
	return category >= First && category <= Last
}

// Satisfies - whether this category grants access to data
// requiring the given category
//
// a grant is sufficient when it is at least as sensitive as the
// requirement
func (category Category) Satisfies(required Category) bool {
	return category >= required
}
