package main

import (
	"gridpool/sdk"
)

// platform fee accounts and their split of the 10% fee
const (
	platformFeeAddr sdk.Address = "hive:gridpool.fees"
	jackpotAddr     sdk.Address = "hive:gridpool.jackpot"
	rewardsAddr     sdk.Address = "hive:gridpool.rewards"

	platformFeePct uint8 = 20
	jackpotPct     uint8 = 50
	rewardsPct     uint8 = 30

	// winners keep 90% of the quarter prize; the rest is the fee
	winnerSharePct uint8 = 90
)

type ChooseWinnerArgs struct {
	Winner Coordinates `json:"winner"`
}

// chooseWinnerImpl resolves the current quarter. Quarters resolve
// strictly in index order: the engine always targets
// quarters[quarter_index], and the index advances by exactly one on
// every successful call, whichever branch is taken.
//
// Occupied winning cell: the net prize is split evenly across the
// occupants (floor; remainder from uneven division stays in the pool)
// and the fee is paid out to the three platform accounts. Unoccupied
// cell on the final quarter: the pool becomes refundable. Unoccupied
// cell earlier: the quarter's percentage rolls forward onto the
// unresolved quarters.
func chooseWinnerImpl(payload *string, chain SDKInterface) (*ExecuteResult, error) {
	args, err := FromJSON[ChooseWinnerArgs](*payload)
	if err != nil {
		return nil, err
	}

	game := loadGameState(chain)
	if err := requireAdmin(game, chain.GetEnv().Sender.Address); err != nil {
		return nil, err
	}
	if game.IsOver() {
		return nil, ErrGameOver
	}
	if !game.HasStarted {
		return nil, ErrNotStarted
	}

	quarter := &game.Quarters[game.QuarterIndex]
	if quarter.Winner != nil {
		return nil, ErrAlreadyResolved
	}

	cell := loadCell(args.Winner, chain)
	if cell == nil {
		return nil, ErrCoordinatesOutOfBounds
	}

	winner := args.Winner
	quarter.Winner = &winner

	fullPrize := amountFromPct(game.TokenAmount, quarter.Pct)
	netPrize := amountFromPct(fullPrize, winnerSharePct)

	var transfers []Transfer
	switch {
	case len(cell.Wallets) > 0:
		// even split; each fee leg floors independently and rounding
		// dust simply stays in the contract
		share := netPrize / uint64(len(cell.Wallets))
		for _, wallet := range cell.Wallets {
			transfers = append(transfers, Transfer{To: wallet, Amount: share})
		}
		transfers = append(transfers, feeTransfers(fullPrize-netPrize)...)

	case int(game.QuarterIndex) == len(game.Quarters)-1:
		// nobody holds the final winning cell; open spend-proportional
		// refunds instead of paying the pool out
		game.CanClaimRefund = true
		EmitRefundsEnabled(chain)

	default:
		rolled := quarter.Pct
		quarter.Pct = 0
		redistributePct(game, rolled)
		EmitQuarterRolledOver(game.QuarterIndex, rolled, chain)
	}

	EmitWinnerChosen(game.QuarterIndex, winner, len(cell.Wallets), chain)

	game.QuarterIndex++
	saveGame(game, chain)

	return &ExecuteResult{Transfers: transfers, Token: game.Token}, nil
}

func feeTransfers(fee uint64) []Transfer {
	return []Transfer{
		{To: platformFeeAddr, Amount: amountFromPct(fee, platformFeePct)},
		{To: jackpotAddr, Amount: amountFromPct(fee, jackpotPct)},
		{To: rewardsAddr, Amount: amountFromPct(fee, rewardsPct)},
	}
}

// redistributePct moves an unclaimed quarter's percentage onto the
// not-yet-resolved quarters, proportional to their current share of the
// remaining split. Per-quarter results floor; any shortfall goes to the
// final quarter so the grand total stays exactly 100.
func redistributePct(game *Game, rolled uint8) {
	last := &game.Quarters[len(game.Quarters)-1]

	remaining := game.Quarters[game.QuarterIndex+1:]
	var remainingPct uint64
	for i := range remaining {
		remainingPct += uint64(remaining[i].Pct)
	}
	if remainingPct == 0 {
		// no proportions to follow; the whole share lands on the last quarter
		last.Pct += rolled
		return
	}

	for i := range remaining {
		remaining[i].Pct += uint8(uint64(rolled) * uint64(remaining[i].Pct) / remainingPct)
	}

	total := 0
	for i := range game.Quarters {
		total += int(game.Quarters[i].Pct)
	}
	if total < 100 {
		last.Pct += uint8(100 - total)
	}
}
