package main

import (
	"strconv"

	"gridpool/sdk"
)

// Transfer is one outbound payment instruction produced by an engine.
// Constructing one always succeeds; all validation happens before the
// engine emits it. Zero amounts are legal and are not suppressed.
type Transfer struct {
	To     sdk.Address `json:"to"`
	Amount uint64      `json:"amount"`
}

// ExecuteResult is what a successful engine call hands back to its
// entry point: the instructions left to execute and the asset they are
// denominated in. State has already been persisted by then.
type ExecuteResult struct {
	Transfers []Transfer
	Token     Token
}

type tokenTransferArgs struct {
	To     sdk.Address `json:"to"`
	Amount uint64      `json:"amount"`
}

type tokenBalanceArgs struct {
	Account sdk.Address `json:"account"`
}

// executeTransfers pays out the emitted instructions. Native assets go
// through the node's transfer facility; fungible assets are settled by
// the external token contract.
func executeTransfers(res *ExecuteResult, chain SDKInterface) {
	switch {
	case res.Token.Native != nil:
		asset := sdk.Asset(res.Token.Native.Denom)
		for _, t := range res.Transfers {
			chain.HiveTransfer(t.To, int64(t.Amount), asset)
		}
	case res.Token.Fungible != nil:
		for _, t := range res.Transfers {
			args := tokenTransferArgs{To: t.To, Amount: t.Amount}
			chain.ContractCall(
				res.Token.Fungible.Contract,
				"transfer",
				mustToJSON(args, "token transfer", chain),
			)
		}
	}
}

// tokenBalance queries the payer's balance at the fungible token
// contract. The response is the balance as a decimal string.
func tokenBalance(contract string, account sdk.Address, chain SDKInterface) uint64 {
	payload := mustToJSON(tokenBalanceArgs{Account: account}, "balance query", chain)
	ptr := chain.ContractRead(contract, "balance", payload)
	if ptr == nil || *ptr == "" {
		return 0
	}
	balance, err := strconv.ParseUint(*ptr, 10, 64)
	if err != nil {
		chain.Abort("invalid balance response from token contract")
	}
	return balance
}
