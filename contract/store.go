package main

import (
	"encoding/json"
	"strconv"

	"gridpool/sdk"
)

// Storage layout: one "game" singleton, players keyed by wallet, cells
// keyed by coordinate, plus a wallet index so queries can range over
// players in registration order.

const (
	gameKey        = "game"
	playerIndexKey = "players"
)

func playerKey(wallet sdk.Address) string { return "player:" + string(wallet) }

func cellKey(c Coordinates) string {
	return "cell:" + strconv.Itoa(int(c.Row)) + ":" + strconv.Itoa(int(c.Col))
}

func saveGame(g *Game, chain SDKInterface) {
	chain.StateSetObject(gameKey, mustToJSON(g, "game", chain))
}

// loadGameState reads the singleton pool record. A missing record means
// the contract was never instantiated, which is host-level corruption,
// not a caller error.
func loadGameState(chain SDKInterface) *Game {
	ptr := chain.StateGetObject(gameKey)
	ensure(ptr != nil && *ptr != "", "game state missing", chain)
	var g Game
	if err := json.Unmarshal([]byte(*ptr), &g); err != nil {
		chain.Abort("failed to unmarshal game")
	}
	return &g
}

func savePlayer(p *Player, chain SDKInterface) {
	chain.StateSetObject(playerKey(p.Wallet), mustToJSON(p, "player", chain))
}

// loadPlayer returns nil when the wallet was never registered.
func loadPlayer(wallet sdk.Address, chain SDKInterface) *Player {
	ptr := chain.StateGetObject(playerKey(wallet))
	if ptr == nil || *ptr == "" {
		return nil
	}
	var p Player
	if err := json.Unmarshal([]byte(*ptr), &p); err != nil {
		chain.Abort("failed to unmarshal player")
	}
	return &p
}

func saveCell(coords Coordinates, cell *Cell, chain SDKInterface) {
	chain.StateSetObject(cellKey(coords), mustToJSON(cell, "cell", chain))
}

// loadCell returns nil for coordinates outside the instantiated grid.
func loadCell(coords Coordinates, chain SDKInterface) *Cell {
	ptr := chain.StateGetObject(cellKey(coords))
	if ptr == nil || *ptr == "" {
		return nil
	}
	var c Cell
	if err := json.Unmarshal([]byte(*ptr), &c); err != nil {
		chain.Abort("failed to unmarshal cell")
	}
	return &c
}

// playerWallets lists registered wallets in registration order.
func playerWallets(chain SDKInterface) []sdk.Address {
	ptr := chain.StateGetObject(playerIndexKey)
	if ptr == nil || *ptr == "" {
		return nil
	}
	var wallets []sdk.Address
	if err := json.Unmarshal([]byte(*ptr), &wallets); err != nil {
		chain.Abort("failed to unmarshal player index")
	}
	return wallets
}

func savePlayerWallets(wallets []sdk.Address, chain SDKInterface) {
	chain.StateSetObject(playerIndexKey, mustToJSON(wallets, "player index", chain))
}
