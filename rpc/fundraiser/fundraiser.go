// SPDX-License-Identifier: ISC
// Copyright (c) 2022-2023 Ufundraisers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fundraiser

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/ufundraisers/fundraiserd/account"
	"github.com/ufundraisers/fundraiserd/fundraiser"
	"github.com/ufundraisers/fundraiserd/record"
	"github.com/ufundraisers/fundraiserd/rpc/ratelimit"
)

const (
	rateLimitFundraiser = 200
	rateBurstFundraiser = 100
)

// Fundraiser - type for the RPC
type Fundraiser struct {
	Log     *logger.L
	Limiter *rate.Limiter
}

// New - create the RPC instance
func New(log *logger.L) *Fundraiser {
	return &Fundraiser{
		Log:     log,
		Limiter: rate.NewLimiter(rateLimitFundraiser, rateBurstFundraiser),
	}
}

// ---

// CreateArguments - arguments for creating a campaign
type CreateArguments struct {
	Caller      account.AccountId     `json:"caller"`
	Payment     uint64                `json:"payment,string"`
	Title       string                `json:"title"`
	Description string                `json:"description"`
	Status      string                `json:"status"`
	Metadata    *record.TokenMetadata `json:"metadata"`
}

// CreateReply - result from create RPC
type CreateReply struct {
	FundraiserId uint64 `json:"fundraiser_id,string"`
	TokenId      string `json:"token_id"`
}

// Create - store a new campaign with its paired token
func (f *Fundraiser) Create(arguments *CreateArguments, reply *CreateReply) error {
	if err := ratelimit.Limit(f.Limiter); nil != err {
		return err
	}

	f.Log.Infof("Fundraiser.Create: %+v", arguments)

	status, err := record.StatusFromString(arguments.Status)
	if nil != err {
		return err
	}
	if record.Nothing == status {
		status = record.Active
	}

	fundraiserId, tokenId, err := fundraiser.Create(
		arguments.Caller,
		arguments.Payment,
		arguments.Title,
		arguments.Description,
		status,
		arguments.Metadata,
	)
	if nil != err {
		return err
	}

	reply.FundraiserId = fundraiserId
	reply.TokenId = tokenId
	return nil
}

// ---

// GetArguments - arguments for the composite view read
type GetArguments struct {
	FundraiserId uint64 `json:"fundraiser_id,string"`
}

// GetReply - result from get RPC, the view is null when absent
type GetReply struct {
	Fundraiser *fundraiser.View `json:"fundraiser"`
}

// Get - read the composite view of one campaign
func (f *Fundraiser) Get(arguments *GetArguments, reply *GetReply) error {
	if err := ratelimit.Limit(f.Limiter); nil != err {
		return err
	}

	reply.Fundraiser = fundraiser.Get(arguments.FundraiserId)
	return nil
}

// ---

// ListArguments - arguments for the paginated listing
type ListArguments struct {
	Page *uint64 `json:"page"`
}

// ListReply - result from list RPC
type ListReply struct {
	Fundraisers []fundraiser.View `json:"fundraisers"`
}

// List - one page of campaigns in creation order
func (f *Fundraiser) List(arguments *ListArguments, reply *ListReply) error {
	if err := ratelimit.Limit(f.Limiter); nil != err {
		return err
	}

	views, err := fundraiser.List(arguments.Page)
	if nil != err {
		return err
	}

	reply.Fundraisers = views
	return nil
}

// ---

// DonateArguments - arguments for a donation, the payment is the
// donation itself
type DonateArguments struct {
	Caller       account.AccountId `json:"caller"`
	FundraiserId uint64            `json:"fundraiser_id,string"`
	Payment      uint64            `json:"payment,string"`
}

// DonateReply - result from donate RPC
type DonateReply struct {
	Amounts []uint64 `json:"amounts"`
}

// Donate - append one donation to the ledger
func (f *Fundraiser) Donate(arguments *DonateArguments, reply *DonateReply) error {
	if err := ratelimit.Limit(f.Limiter); nil != err {
		return err
	}

	f.Log.Infof("Fundraiser.Donate: %+v", arguments)

	err := fundraiser.Donate(arguments.Caller, arguments.FundraiserId, arguments.Payment)
	if nil != err {
		return err
	}

	reply.Amounts = fundraiser.Donations(arguments.FundraiserId, arguments.Caller)
	return nil
}

// ---

// DonationsArguments - arguments for the donation ledger read
type DonationsArguments struct {
	FundraiserId uint64            `json:"fundraiser_id,string"`
	Donor        account.AccountId `json:"donor"`
}

// DonationsReply - result from donations RPC
type DonationsReply struct {
	Amounts []uint64 `json:"amounts"`
}

// Donations - all amounts one donor attached to one campaign
func (f *Fundraiser) Donations(arguments *DonationsArguments, reply *DonationsReply) error {
	if err := ratelimit.Limit(f.Limiter); nil != err {
		return err
	}

	reply.Amounts = fundraiser.Donations(arguments.FundraiserId, arguments.Donor)
	return nil
}
