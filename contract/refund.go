package main

// claimRefundImpl pays a player back a share of their total spend once
// the game closed refundable. The share is the final quarter's
// percentage as it stood after all carry-forward redistribution. Each
// player claims once; a zero-amount refund is still emitted.
func claimRefundImpl(chain SDKInterface) (*ExecuteResult, error) {
	game := loadGameState(chain)
	if !(game.IsOver() && game.CanClaimRefund) {
		return nil, ErrNotAuthorized
	}

	sender := chain.GetEnv().Sender.Address
	player := loadPlayer(sender, chain)
	if player == nil {
		return nil, ErrNotAuthorized
	}
	if player.HasClaimedRefund {
		return nil, ErrAlreadyClaimedRefund
	}

	var totalSpend uint64
	for _, pos := range player.Positions {
		cell := loadCell(pos.Coords, chain)
		ensure(cell != nil, "position references missing cell", chain)
		totalSpend += cell.Price
	}

	finalQuarter := game.Quarters[len(game.Quarters)-1]
	refund := amountFromPct(totalSpend, finalQuarter.Pct)

	player.HasClaimedRefund = true
	savePlayer(player, chain)

	EmitRefundClaimed(sender, refund, chain)
	return &ExecuteResult{
		Transfers: []Transfer{{To: sender, Amount: refund}},
		Token:     game.Token,
	}, nil
}
