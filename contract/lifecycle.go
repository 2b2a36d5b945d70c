package main

import (
	"gridpool/sdk"
)

// requireAdmin gates every administrative operation before any other
// validation runs.
func requireAdmin(g *Game, addr sdk.Address) error {
	if g.Admin != addr {
		return ErrNotAuthorized
	}
	return nil
}

type RegisterPlayerArgs struct {
	Wallet sdk.Address `json:"wallet"`
	Name   string      `json:"name,omitempty"`
	Color  string      `json:"color,omitempty"`
}

// registerPlayerImpl adds a player while the pool is still in setup.
// Admin-only; once the game has started registration is closed.
func registerPlayerImpl(payload *string, chain SDKInterface) (*ExecuteResult, error) {
	args, err := FromJSON[RegisterPlayerArgs](*payload)
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
	if game.HasStarted {
		return nil, ErrAlreadyStarted
	}
	if loadPlayer(args.Wallet, chain) != nil {
		return nil, ErrDuplicatePlayerAddress
	}

	player := &Player{
		Wallet: args.Wallet,
		Name:   args.Name,
		Color:  args.Color,
	}
	savePlayer(player, chain)
	savePlayerWallets(append(playerWallets(chain), args.Wallet), chain)

	EmitPlayerRegistered(args.Wallet, chain)
	return &ExecuteResult{Token: game.Token}, nil
}

// startGameImpl flips the started flag, closing registration and
// opening purchases and quarter resolution. One-shot.
func startGameImpl(chain SDKInterface) (*ExecuteResult, error) {
	game := loadGameState(chain)
	sender := chain.GetEnv().Sender.Address
	if err := requireAdmin(game, sender); err != nil {
		return nil, err
	}
	if game.HasStarted {
		return nil, ErrAlreadyStarted
	}

	game.HasStarted = true
	saveGame(game, chain)

	EmitGameStarted(sender, chain)
	return &ExecuteResult{Token: game.Token}, nil
}
