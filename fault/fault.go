// SPDX-License-Identifier: ISC
// Copyright (c) 2022-2023 Ufundraisers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type (
	ExistsError        GenericError
	InvalidError       GenericError
	LengthError        GenericError
	NotAuthorizedError GenericError
	NotFoundError      GenericError
	PaymentError       GenericError
	ProcessError       GenericError
	RecordError        GenericError
)

// common errors - keep in alphabetic order
var (
	AlreadyInitialised           = ProcessError("already initialised")
	ApprovalNotFound             = NotFoundError("approval not found")
	CertificateFileAlreadyExists = ExistsError("certificate file already exists")
	DescriptionTooLong           = LengthError("description too long")
	FundraiserNotFound           = NotFoundError("fundraiser not found")
	InsufficientPayment          = PaymentError("insufficient payment")
	InvalidAccount               = InvalidError("invalid account")
	InvalidChain                 = InvalidError("invalid chain")
	InvalidCount                 = InvalidError("invalid count")
	InvalidCursor                = InvalidError("invalid cursor")
	InvalidIpAddress             = InvalidError("invalid ip address")
	InvalidItem                  = InvalidError("invalid item")
	InvalidPage                  = InvalidError("invalid page")
	InvalidStatus                = InvalidError("invalid status")
	KeyFileAlreadyExists         = ExistsError("key file already exists")
	MissingParameters            = InvalidError("missing parameters")
	NotFundraiserOwner           = NotAuthorizedError("not fundraiser owner")
	NotInitialised               = ProcessError("not initialised")
	NotTokenOwner                = NotAuthorizedError("not token owner")
	RateLimiting                 = ProcessError("rate limiting")
	SeedNotAllowed               = NotAuthorizedError("seed not allowed")
	TitleIsRequired              = LengthError("title is required")
	TitleTooLong                 = LengthError("title too long")
	TokenAlreadyExists           = ExistsError("token already exists")
	TokenMetadataNotFound        = NotFoundError("token metadata not found")
	TokenNotFound                = NotFoundError("token not found")
	TransactionAlreadyInUse      = ProcessError("transaction already in use")
	TransferNotAuthorized        = NotAuthorizedError("transfer not authorized")
	TruncatedRecord              = RecordError("truncated record")
	WrongRecordType              = RecordError("wrong record type")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string        { return string(e) }
func (e InvalidError) Error() string       { return string(e) }
func (e LengthError) Error() string        { return string(e) }
func (e NotAuthorizedError) Error() string { return string(e) }
func (e NotFoundError) Error() string      { return string(e) }
func (e PaymentError) Error() string       { return string(e) }
func (e ProcessError) Error() string       { return string(e) }
func (e RecordError) Error() string        { return string(e) }

// determine the class of an error
func IsErrExists(e error) bool        { _, ok := e.(ExistsError); return ok }
func IsErrInvalid(e error) bool       { _, ok := e.(InvalidError); return ok }
func IsErrLength(e error) bool        { _, ok := e.(LengthError); return ok }
func IsErrNotAuthorized(e error) bool { _, ok := e.(NotAuthorizedError); return ok }
func IsErrNotFound(e error) bool      { _, ok := e.(NotFoundError); return ok }
func IsErrPayment(e error) bool       { _, ok := e.(PaymentError); return ok }
func IsErrProcess(e error) bool       { _, ok := e.(ProcessError); return ok }
func IsErrRecord(e error) bool        { _, ok := e.(RecordError); return ok }

// IsErrValidation - malformed input of any kind
func IsErrValidation(e error) bool {
	return IsErrInvalid(e) || IsErrLength(e)
}
