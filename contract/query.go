package main

// GameQueryArgs selects what the game query returns besides the
// singleton record. Both flags default to true when omitted.
type GameQueryArgs struct {
	WithGrid    *bool `json:"with_grid,omitempty"`
	WithPlayers *bool `json:"with_players,omitempty"`
}

type GameResponse struct {
	Game    Game     `json:"game"`
	Grid    []Cell   `json:"grid,omitempty"`
	Players []Player `json:"players,omitempty"`
}

// getGameImpl returns the game record, optionally with all 100 cells in
// row-major order and all players in registration order.
func getGameImpl(payload *string, chain SDKInterface) (*GameResponse, error) {
	args := &GameQueryArgs{}
	if payload != nil && *payload != "" {
		parsed, err := FromJSON[GameQueryArgs](*payload)
		if err != nil {
			return nil, err
		}
		args = parsed
	}

	resp := &GameResponse{Game: *loadGameState(chain)}

	if args.WithGrid == nil || *args.WithGrid {
		resp.Grid = make([]Cell, 0, gridCells)
		for row := 0; row < gridSize; row++ {
			for col := 0; col < gridSize; col++ {
				coords := Coordinates{Row: uint8(row), Col: uint8(col)}
				cell := loadCell(coords, chain)
				ensure(cell != nil, "grid cell missing", chain)
				resp.Grid = append(resp.Grid, *cell)
			}
		}
	}

	if args.WithPlayers == nil || *args.WithPlayers {
		wallets := playerWallets(chain)
		resp.Players = make([]Player, 0, len(wallets))
		for _, wallet := range wallets {
			player := loadPlayer(wallet, chain)
			ensure(player != nil, "indexed player missing", chain)
			resp.Players = append(resp.Players, *player)
		}
	}

	return resp, nil
}
