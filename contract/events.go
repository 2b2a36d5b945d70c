package main

import (
	"strconv"

	"gridpool/sdk"
)

// Event represents the common structure for all emitted events.
// Each event has a type and a set of key/value attributes.
type Event struct {
	Type       string            `json:"type"`
	Attributes map[string]string `json:"attributes"`
}

// emitEvent constructs an Event object with the given type and
// attributes, and logs it to the chain as JSON.
func emitEvent(eventType string, attributes map[string]string, chain SDKInterface) {
	event := Event{
		Type:       eventType,
		Attributes: attributes,
	}
	chain.Log(mustToJSON(event, eventType+" event data", chain))
}

func coordsAttr(c Coordinates) string {
	return strconv.Itoa(int(c.Row)) + "," + strconv.Itoa(int(c.Col))
}

// EmitPoolCreated emits an event when the pool is instantiated.
func EmitPoolCreated(name string, admin sdk.Address, chain SDKInterface) {
	emitEvent("poolCreated", map[string]string{
		"name":  name,
		"admin": admin.String(),
	}, chain)
}

// EmitPlayerRegistered emits an event when the admin registers a player.
func EmitPlayerRegistered(wallet sdk.Address, chain SDKInterface) {
	emitEvent("playerRegistered", map[string]string{
		"wallet": wallet.String(),
	}, chain)
}

// EmitGameStarted emits an event when the admin starts the game.
func EmitGameStarted(admin sdk.Address, chain SDKInterface) {
	emitEvent("gameStarted", map[string]string{
		"admin": admin.String(),
	}, chain)
}

// EmitSquaresBought emits an event when a purchase commits, including
// the cell count and total price drawn into the pool.
func EmitSquaresBought(wallet sdk.Address, count int, amount uint64, chain SDKInterface) {
	emitEvent("squaresBought", map[string]string{
		"wallet": wallet.String(),
		"count":  strconv.Itoa(count),
		"amount": strconv.FormatUint(amount, 10),
	}, chain)
}

// EmitWinnerChosen emits an event when a quarter resolves.
func EmitWinnerChosen(quarter uint8, winner Coordinates, occupants int, chain SDKInterface) {
	emitEvent("winnerChosen", map[string]string{
		"quarter":   strconv.Itoa(int(quarter)),
		"cell":      coordsAttr(winner),
		"occupants": strconv.Itoa(occupants),
	}, chain)
}

// EmitQuarterRolledOver emits an event when an unoccupied winning cell
// rolls its percentage share onto the remaining quarters.
func EmitQuarterRolledOver(quarter uint8, pct uint8, chain SDKInterface) {
	emitEvent("quarterRolledOver", map[string]string{
		"quarter": strconv.Itoa(int(quarter)),
		"pct":     strconv.Itoa(int(pct)),
	}, chain)
}

// EmitRefundsEnabled emits an event when the final quarter resolves
// unclaimed and the pool becomes refundable.
func EmitRefundsEnabled(chain SDKInterface) {
	emitEvent("refundsEnabled", map[string]string{}, chain)
}

// EmitRefundClaimed emits an event when a player claims their refund.
func EmitRefundClaimed(wallet sdk.Address, amount uint64, chain SDKInterface) {
	emitEvent("refundClaimed", map[string]string{
		"wallet": wallet.String(),
		"amount": strconv.FormatUint(amount, 10),
	}, chain)
}
