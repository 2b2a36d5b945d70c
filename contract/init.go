package main

import (
	"gridpool/sdk"
)

const (
	gridCells   = 100
	gridSize    = 10
	numQuarters = 4
	numTeams    = 2
)

// InstantiateMsg is the validated configuration the pool is created from.
type InstantiateMsg struct {
	Name              string    `json:"name"`
	Teams             []Team    `json:"teams"`
	IsPublic          bool      `json:"is_public"`
	Players           []Player  `json:"players,omitempty"`
	MaxPlayersPerCell *uint16   `json:"max_players_per_cell,omitempty"`
	Quarters          []Quarter `json:"quarters"`
	Grid              []Cell    `json:"grid"`
	Token             Token     `json:"token"`
}

// initImpl creates the singleton game, the 100-cell grid, and the
// initial player set. Everything is validated before the first write so
// a rejected instantiation leaves no state behind. The sender becomes
// the admin and is registered as a player if not already listed.
func initImpl(payload *string, chain SDKInterface) (*ExecuteResult, error) {
	msg, err := FromJSON[InstantiateMsg](*payload)
	if err != nil {
		return nil, err
	}
	sender := chain.GetEnv().Sender.Address

	if !msg.Token.IsValid() {
		return nil, ErrInvalidToken
	}

	// collect initial players, rejecting duplicate wallets and forcing
	// internal defaults the caller has no business setting
	known := make(map[sdk.Address]bool, len(msg.Players)+1)
	players := make([]Player, 0, len(msg.Players)+1)
	for _, p := range msg.Players {
		if known[p.Wallet] {
			return nil, ErrDuplicatePlayerAddress
		}
		p.Positions = nil
		p.HasClaimedRefund = false
		known[p.Wallet] = true
		players = append(players, p)
	}
	if !known[sender] {
		known[sender] = true
		players = append(players, Player{Wallet: sender})
	}

	// quarters: exactly four, percentages summing to exactly 100
	if len(msg.Quarters) != numQuarters {
		return nil, ErrInsufficientQuarters
	}
	quarters := make([]Quarter, 0, numQuarters)
	totalPct := 0
	for _, q := range msg.Quarters {
		q.Winner = nil
		quarters = append(quarters, q)
		totalPct += int(q.Pct)
		if totalPct > 100 {
			return nil, ErrInvalidQuarterSplit
		}
	}
	if totalPct != 100 {
		return nil, ErrInvalidQuarterSplit
	}

	// grid: exactly 100 priced cells, pre-seeded occupants must be known
	if len(msg.Grid) != gridCells {
		return nil, ErrInsufficientGridCells
	}
	for _, cell := range msg.Grid {
		if cell.Price == 0 {
			return nil, ErrInvalidGridCellPrice
		}
		for _, wallet := range cell.Wallets {
			if !known[wallet] {
				return nil, ErrUnknownPlayerAddress
			}
		}
	}

	if len(msg.Teams) != numTeams {
		return nil, ErrInvalidTeamCount
	}

	// all validation passed; persist players, cells, then the game
	wallets := make([]sdk.Address, 0, len(players))
	for i := range players {
		savePlayer(&players[i], chain)
		wallets = append(wallets, players[i].Wallet)
	}
	savePlayerWallets(wallets, chain)

	for i, cell := range msg.Grid {
		coords := Coordinates{Row: uint8(i / gridSize), Col: uint8(i % gridSize)}
		saveCell(coords, &cell, chain)
	}

	game := &Game{
		Admin:             sender,
		Name:              msg.Name,
		IsPublic:          msg.IsPublic,
		HasStarted:        false,
		Quarters:          quarters,
		QuarterIndex:      0,
		MaxPlayersPerCell: msg.MaxPlayersPerCell,
		Teams:             msg.Teams,
		Token:             msg.Token,
		TokenAmount:       0,
		CanClaimRefund:    false,
	}
	saveGame(game, chain)

	EmitPoolCreated(game.Name, sender, chain)
	return &ExecuteResult{Token: game.Token}, nil
}
