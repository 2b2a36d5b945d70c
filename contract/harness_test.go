package main

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"gridpool/sdk"
)

const (
	adminAddr = "hive:admin"
	aliceAddr = "hive:alice"
	bobAddr   = "hive:bob"
	poolDenom = "usomething"
)

func at(row, col uint8) Coordinates {
	return Coordinates{Row: row, Col: col}
}

func u16ptr(v uint16) *uint16 { return &v }

func nativeToken() Token {
	return Token{Native: &NativeToken{Denom: poolDenom}}
}

func quarterSplit(pcts ...uint8) []Quarter {
	quarters := make([]Quarter, 0, len(pcts))
	for _, pct := range pcts {
		quarters = append(quarters, Quarter{Pct: pct})
	}
	return quarters
}

func uniformGrid(price uint64) []Cell {
	grid := make([]Cell, gridCells)
	for i := range grid {
		grid[i] = Cell{Price: price}
	}
	return grid
}

// initMsg is the canonical test pool: four equal quarters, a uniform
// grid, native token, and alice and bob pre-registered.
func initMsg(price uint64) InstantiateMsg {
	return InstantiateMsg{
		Name:     "Big Game Squares",
		Teams:    []Team{{Name: "Hawks", Color: "green"}, {Name: "Sharks", Color: "blue"}},
		IsPublic: true,
		Players: []Player{
			{Wallet: aliceAddr, Name: "Alice"},
			{Wallet: bobAddr, Name: "Bob"},
		},
		Quarters: quarterSplit(25, 25, 25, 25),
		Grid:     uniformGrid(price),
		Token:    nativeToken(),
	}
}

func toPayload(t *testing.T, v any) *string {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	s := string(b)
	return &s
}

func mustInit(t *testing.T, chain *FakeSDK, msg InstantiateMsg) {
	t.Helper()
	chain.setSender(adminAddr)
	_, err := initImpl(toPayload(t, msg), chain)
	require.NoError(t, err)
}

func mustStart(t *testing.T, chain *FakeSDK) {
	t.Helper()
	chain.setSender(adminAddr)
	_, err := startGameImpl(chain)
	require.NoError(t, err)
}

// newStartedPool spins up the canonical pool and starts it.
func newStartedPool(t *testing.T, price uint64) *FakeSDK {
	t.Helper()
	chain := NewFakeSDK(adminAddr, "tx-init")
	mustInit(t, chain, initMsg(price))
	mustStart(t, chain)
	return chain
}

// buyAs runs a purchase for the given wallet with the given allowance.
func buyAs(chain *FakeSDK, t *testing.T, wallet, limit string, coords ...Coordinates) error {
	t.Helper()
	chain.setSender(wallet)
	chain.allow(limit, poolDenom)
	_, err := buySquaresImpl(toPayload(t, BuySquaresArgs{Coordinates: coords}), chain)
	chain.clearIntents()
	return err
}

func mustBuy(t *testing.T, chain *FakeSDK, wallet, limit string, coords ...Coordinates) {
	t.Helper()
	require.NoError(t, buyAs(chain, t, wallet, limit, coords...))
}

// resolveAs resolves the current quarter as the given sender.
func resolveAs(chain *FakeSDK, t *testing.T, sender string, winner Coordinates) (*ExecuteResult, error) {
	t.Helper()
	chain.setSender(sender)
	return chooseWinnerImpl(toPayload(t, ChooseWinnerArgs{Winner: winner}), chain)
}

func mustResolve(t *testing.T, chain *FakeSDK, winner Coordinates) *ExecuteResult {
	t.Helper()
	res, err := resolveAs(chain, t, adminAddr, winner)
	require.NoError(t, err)
	return res
}

func claimAs(chain *FakeSDK, wallet string) (*ExecuteResult, error) {
	chain.setSender(wallet)
	return claimRefundImpl(chain)
}

func loadedGame(t *testing.T, chain *FakeSDK) *Game {
	t.Helper()
	return loadGameState(chain)
}

func loadedCell(t *testing.T, chain *FakeSDK, coords Coordinates) *Cell {
	t.Helper()
	cell := loadCell(coords, chain)
	require.NotNil(t, cell)
	return cell
}

func loadedPlayer(t *testing.T, chain *FakeSDK, wallet sdk.Address) *Player {
	t.Helper()
	player := loadPlayer(wallet, chain)
	require.NotNil(t, player)
	return player
}

// quarterPcts flattens the current split for assertions.
func quarterPcts(g *Game) []uint8 {
	pcts := make([]uint8, 0, len(g.Quarters))
	for _, q := range g.Quarters {
		pcts = append(pcts, q.Pct)
	}
	return pcts
}

func pctSum(g *Game) int {
	sum := 0
	for _, q := range g.Quarters {
		sum += int(q.Pct)
	}
	return sum
}
