package main

import (
	"strconv"

	"gridpool/sdk"
)

type BuySquaresArgs struct {
	Coordinates []Coordinates `json:"coordinates"`
}

// buySquaresImpl validates and commits a batch cell purchase. The whole
// batch is all-or-nothing: cells are mutated on loaded copies and only
// persisted once every coordinate and the payment have been verified,
// so a failure on the k-th cell leaves no trace of the earlier ones.
func buySquaresImpl(payload *string, chain SDKInterface) (*ExecuteResult, error) {
	args, err := FromJSON[BuySquaresArgs](*payload)
	if err != nil {
		return nil, err
	}
	sender := chain.GetEnv().Sender.Address

	player := loadPlayer(sender, chain)
	if player == nil {
		return nil, ErrNotAuthorized
	}

	game := loadGameState(chain)
	if game.IsOver() {
		return nil, ErrGameOver
	}

	// loaded cells are cached so a coordinate repeated within one call
	// sees its own earlier occupancy and is rejected
	cells := make(map[Coordinates]*Cell, len(args.Coordinates))
	order := make([]Coordinates, 0, len(args.Coordinates))
	var total uint64

	for _, coords := range args.Coordinates {
		cell, seen := cells[coords]
		if !seen {
			cell = loadCell(coords, chain)
			if cell == nil {
				return nil, ErrCoordinatesOutOfBounds
			}
			cells[coords] = cell
			order = append(order, coords)
		}
		if game.MaxPlayersPerCell != nil && len(cell.Wallets) >= int(*game.MaxPlayersPerCell) {
			return nil, ErrCellSoldOut
		}
		if cell.Occupied(sender) {
			// a player can't buy the same cell twice
			return nil, ErrNotAuthorized
		}

		cell.Wallets = append(cell.Wallets, sender)
		total += cell.Price
		player.Positions = append(player.Positions, Position{
			Coords:       coords,
			QuarterIndex: game.QuarterIndex,
		})
	}

	switch {
	case game.Token.Native != nil:
		if err := verifyNativeFunds(total, game.Token.Native.Denom, chain); err != nil {
			return nil, err
		}
		// pull the verified amount into the pool
		chain.HiveDraw(int64(total), sdk.Asset(game.Token.Native.Denom))
	case game.Token.Fungible != nil:
		if err := verifyFungibleFunds(sender, total, game.Token.Fungible.Contract, chain); err != nil {
			return nil, err
		}
		// settlement is left to the token contract's transfer mechanism
	}

	game.TokenAmount += total

	for _, coords := range order {
		saveCell(coords, cells[coords], chain)
	}
	savePlayer(player, chain)
	saveGame(game, chain)

	EmitSquaresBought(sender, len(args.Coordinates), total, chain)
	return &ExecuteResult{Token: game.Token}, nil
}

// verifyNativeFunds checks that the sender attached a transfer
// allowance for the pool's denom matching the purchase total exactly.
func verifyNativeFunds(total uint64, denom string, chain SDKInterface) error {
	allowance := findTransferAllow(chain.GetEnv().Intents, denom)
	if allowance == nil {
		return ErrInsufficientFunds
	}
	// a malformed limit cannot cover anything
	amount, err := strconv.ParseUint(allowance.Args["limit"], 10, 64)
	if err != nil {
		return ErrInsufficientFunds
	}
	if amount < total {
		return ErrInsufficientFunds
	}
	if amount > total {
		return ErrExcessFunds
	}
	return nil
}

// verifyFungibleFunds checks the payer's balance at the token contract
// covers the purchase total. Nothing is pulled here.
func verifyFungibleFunds(sender sdk.Address, total uint64, contract string, chain SDKInterface) error {
	if tokenBalance(contract, sender, chain) < total {
		return ErrInsufficientFunds
	}
	return nil
}

// findTransferAllow scans tx intents for a transfer.allow instruction
// carrying the given token. Nil if missing.
func findTransferAllow(intents []sdk.Intent, denom string) *sdk.Intent {
	for i, intent := range intents {
		if intent.Type == "transfer.allow" && intent.Args["token"] == denom {
			return &intents[i]
		}
	}
	return nil
}
