// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type (
	// AccessError - caller lacks a role or entity-specific authority
	AccessError GenericError
	// ExistsError - something exists that should not
	ExistsError GenericError
	// InvalidError - some input is malformed
	InvalidError GenericError
	// LengthError - a size or length check failed
	LengthError GenericError
	// NotFoundError - a referenced entity does not exist
	NotFoundError GenericError
	// PaymentError - an attached payment value is insufficient
	PaymentError GenericError
	// ProcessError - a run-time condition prevents the operation
	ProcessError GenericError
	// RecordError - a stored record cannot be decoded
	RecordError GenericError
)

// common errors - keep in alphabetic order
var (
	AlreadyInitialised            = ProcessError("already initialised")
	AssetNotFound                 = NotFoundError("asset not found")
	BalanceOverflow               = ProcessError("balance overflow")
	CannotDecodeAccount           = RecordError("cannot decode account")
	CertificateFileAlreadyExists  = ExistsError("certificate file already exists")
	ChecksumMismatch              = ProcessError("checksum mismatch")
	CryptoFailed                  = ProcessError("crypto failed")
	EmptyReference                = InvalidError("empty reference")
	IdentityNameAlreadyExists     = ExistsError("identity name already exists")
	IdentityNameNotFound          = NotFoundError("identity name not found")
	IncompatibleOptions           = InvalidError("incompatible options")
	InsufficientCategory          = AccessError("subscription category insufficient")
	InsufficientPayment           = PaymentError("insufficient payment")
	InvalidCategory               = InvalidError("invalid category")
	InvalidChain                  = InvalidError("invalid chain")
	InvalidCount                  = InvalidError("invalid count")
	InvalidIpAddress              = InvalidError("invalid ip Address")
	InvalidKeyLength              = InvalidError("invalid key length")
	InvalidKeyType                = InvalidError("invalid key type")
	InvalidPasswordLength         = LengthError("invalid password length")
	InvalidPrivateKey             = InvalidError("invalid private key")
	InvalidRole                   = InvalidError("invalid role")
	InvalidSignature              = InvalidError("invalid signature")
	KeyFileAlreadyExists          = ExistsError("key file already exists")
	ListingNotFound               = NotFoundError("listing not found")
	MissingParameters             = InvalidError("missing parameters")
	NotAssetOwner                 = AccessError("not asset owner")
	NotAvailableDuringSynchronise = ProcessError("not available during synchronise")
	NotInitialised                = ProcessError("not initialised")
	NotPrivateKey                 = RecordError("not private key")
	NotPublicKey                  = RecordError("not public key")
	PasswordMismatch              = InvalidError("password mismatch")
	NotRoleHolder                 = AccessError("caller does not hold required role")
	RateLimiting                  = ProcessError("rate limiting")
	SelfRevocation                = AccessError("admin cannot revoke own admin role")
	SubscriptionExpired           = AccessError("subscription expired")
	SubscriptionNotFound          = NotFoundError("subscription not found")
	TransactionAlreadyInUse       = ProcessError("transaction already in use")
	WrongNetworkForPrivateKey     = InvalidError("wrong network for private key")
	WrongNetworkForPublicKey      = InvalidError("wrong network for public key")
	WrongPassword                 = InvalidError("wrong password")
	ZeroPrice                     = InvalidError("price cannot be zero")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e AccessError) Error() string   { return string(e) }
func (e ExistsError) Error() string   { return string(e) }
func (e InvalidError) Error() string  { return string(e) }
func (e LengthError) Error() string   { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e PaymentError) Error() string  { return string(e) }
func (e ProcessError) Error() string  { return string(e) }
func (e RecordError) Error() string   { return string(e) }

// IsErrAccess - determine if an access error
func IsErrAccess(e error) bool {
	_, ok := e.(AccessError)
	return ok
}

// IsErrExists - determine if an exists error
func IsErrExists(e error) bool {
	_, ok := e.(ExistsError)
	return ok
}

// IsErrInvalid - determine if an invalid error
func IsErrInvalid(e error) bool {
	_, ok := e.(InvalidError)
	return ok
}

// IsErrLength - determine if a length error
func IsErrLength(e error) bool {
	_, ok := e.(LengthError)
	return ok
}

// IsErrNotFound - determine if a not found error
func IsErrNotFound(e error) bool {
	_, ok := e.(NotFoundError)
	return ok
}

// IsErrPayment - determine if a payment error
func IsErrPayment(e error) bool {
	_, ok := e.(PaymentError)
	return ok
}

// IsErrProcess - determine if a process error
func IsErrProcess(e error) bool {
	_, ok := e.(ProcessError)
	return ok
}

// IsErrRecord - determine if a record error
func IsErrRecord(e error) bool {
	_, ok := e.(RecordError)
	return ok
}
