package main

import "gridpool/sdk"

// Coordinates address one cell on the 10x10 grid, row and col in [0,9].
type Coordinates struct {
	Row uint8 `json:"row"`
	Col uint8 `json:"col"`
}

type NativeToken struct {
	Denom string `json:"denom"`
}

type FungibleToken struct {
	Contract string `json:"contract"`
}

// Token is a two-variant sum type: exactly one of Native or Fungible is
// set. Native value is carried by the transaction itself; fungible value
// is held at an external token contract.
type Token struct {
	Native   *NativeToken   `json:"native,omitempty"`
	Fungible *FungibleToken `json:"fungible,omitempty"`
}

func (t Token) IsValid() bool {
	return (t.Native != nil) != (t.Fungible != nil)
}

type Team struct {
	Name  string `json:"name"`
	Color string `json:"color"`
}

// Quarter is one of four sequential resolution rounds. Winner is set
// exactly once; Pct may be rewritten by carry-forward redistribution,
// but only while the quarter is unresolved.
type Quarter struct {
	Winner *Coordinates `json:"winner,omitempty"`
	Name   string       `json:"name,omitempty"`
	Pct    uint8        `json:"pct"`
}

// Game is the singleton pool record.
type Game struct {
	Admin             sdk.Address `json:"admin"`
	Name              string      `json:"name"`
	IsPublic          bool        `json:"is_public"`
	HasStarted        bool        `json:"has_started"`
	Quarters          []Quarter   `json:"quarters"`
	QuarterIndex      uint8       `json:"quarter_index"`
	MaxPlayersPerCell *uint16     `json:"max_players_per_cell,omitempty"`
	Teams             []Team      `json:"teams"`
	Token             Token       `json:"token"`
	TokenAmount       uint64      `json:"token_amount"`
	CanClaimRefund    bool        `json:"can_claim_refund"`
}

// IsOver reports whether every quarter has been resolved.
func (g *Game) IsOver() bool {
	return int(g.QuarterIndex) == len(g.Quarters)
}

// Cell is one purchasable grid position. Price is fixed at
// instantiation; the occupant list only grows.
type Cell struct {
	Price   uint64        `json:"price"`
	Wallets []sdk.Address `json:"wallets,omitempty"`
}

// Occupied reports whether the wallet already holds a spot in the cell.
func (c *Cell) Occupied(wallet sdk.Address) bool {
	for _, w := range c.Wallets {
		if w == wallet {
			return true
		}
	}
	return false
}

// Position records one purchased cell and the quarter index active at
// purchase time. Immutable once appended.
type Position struct {
	Coords       Coordinates `json:"coords"`
	QuarterIndex uint8       `json:"quarter_index"`
}

type Player struct {
	Wallet           sdk.Address `json:"wallet"`
	Name             string      `json:"name,omitempty"`
	Color            string      `json:"color,omitempty"`
	Positions        []Position  `json:"positions,omitempty"`
	HasClaimedRefund bool        `json:"has_claimed_refund"`
}
