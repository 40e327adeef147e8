/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package dispatch

import "fmt"

// TokenError is the token-subsystem sub-taxonomy.
//
// The enumeration is deliberately minimal today; like every sub-taxonomy it
// may only grow by appending values, because the numeric value is the wire
// discriminant.
type TokenError uint8

const (
	// TokenUnknown indicates a token fault with no more specific
	// classification on the producer side.
	TokenUnknown TokenError = 0
)

// ArithmeticError is the arithmetic sub-taxonomy.
type ArithmeticError uint8

const (
	// ArithmeticOverflow indicates an integer over- or underflow during a
	// runtime computation.
	ArithmeticOverflow ArithmeticError = 0
)

// TransactionalError is the transactional-storage sub-taxonomy.
type TransactionalError uint8

const (
	// TransactionalMaxLayersReached indicates that the maximum number of
	// nested storage transaction layers was exceeded.
	TransactionalMaxLayersReached TransactionalError = 0
)

// UseCaseError is the curated use-case sub-taxonomy.
//
// It is itself a sealed tagged union: each implementation names one use case
// and carries that use case's own closed enumeration. Today the only use
// case is Fungibles.
type UseCaseError interface {
	fmt.Stringer

	sealedUseCase()
}

// Fungibles wraps the fungible-assets enumeration as a use-case variant.
type Fungibles FungiblesError

func (Fungibles) sealedUseCase() {}

func (f Fungibles) String() string {
	return fmt.Sprintf("fungibles(%s)", FungiblesError(f))
}

// FungiblesError enumerates the faults the fungible-assets use case exposes
// to developers. The set is curated: it covers exactly the conditions a
// caller can act on, not every internal failure of the assets sub-module.
type FungiblesError uint8

const (
	// FungiblesAssetNotLive indicates the asset is not live; it is either
	// frozen or in the process of being destroyed.
	FungiblesAssetNotLive FungiblesError = iota

	// FungiblesBelowMinimum indicates the amount to mint is below the
	// existential deposit.
	FungiblesBelowMinimum

	// FungiblesInsufficientAllowance indicates not enough allowance is
	// available to fulfill the request.
	FungiblesInsufficientAllowance

	// FungiblesInsufficientBalance indicates not enough balance is
	// available to fulfill the request.
	FungiblesInsufficientBalance

	// FungiblesInUse indicates the asset ID is already taken.
	FungiblesInUse

	// FungiblesMinBalanceZero indicates the minimum balance must be
	// non-zero.
	FungiblesMinBalanceZero

	// FungiblesNoAccount indicates the account to alter does not exist.
	FungiblesNoAccount

	// FungiblesNoPermission indicates the signing account has no
	// permission for the operation.
	FungiblesNoPermission

	// FungiblesUnknown indicates the given asset ID is unknown.
	FungiblesUnknown
)

func (e TokenError) String() string {
	switch e {
	case TokenUnknown:
		return "unknown"
	}
	return fmt.Sprintf("token_error(%d)", uint8(e))
}

func (e ArithmeticError) String() string {
	switch e {
	case ArithmeticOverflow:
		return "overflow"
	}
	return fmt.Sprintf("arithmetic_error(%d)", uint8(e))
}

func (e TransactionalError) String() string {
	switch e {
	case TransactionalMaxLayersReached:
		return "max_layers_reached"
	}
	return fmt.Sprintf("transactional_error(%d)", uint8(e))
}

func (e FungiblesError) String() string {
	switch e {
	case FungiblesAssetNotLive:
		return "asset_not_live"
	case FungiblesBelowMinimum:
		return "below_minimum"
	case FungiblesInsufficientAllowance:
		return "insufficient_allowance"
	case FungiblesInsufficientBalance:
		return "insufficient_balance"
	case FungiblesInUse:
		return "in_use"
	case FungiblesMinBalanceZero:
		return "min_balance_zero"
	case FungiblesNoAccount:
		return "no_account"
	case FungiblesNoPermission:
		return "no_permission"
	case FungiblesUnknown:
		return "unknown"
	}
	return fmt.Sprintf("fungibles_error(%d)", uint8(e))
}
