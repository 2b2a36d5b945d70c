package main

import (
	"encoding/json"
	"fmt"
)

// ---------- JSON Conversions ----------

func FromJSON[T any](data string) (*T, error) {
	var v T
	if err := json.Unmarshal([]byte(data), &v); err != nil {
		return nil, fmt.Errorf("invalid payload: %v", err)
	}
	return &v, nil
}

// mustToJSON marshals v or aborts the call; used for state records and
// responses whose shapes are known to marshal.
func mustToJSON[T any](v T, objectType string, chain SDKInterface) string {
	b, err := json.Marshal(v)
	if err != nil {
		chain.Abort("failed to marshal " + objectType)
	}
	return string(b)
}

// ---------- Amount Math ----------

// amountFromPct applies an integer percentage with floor division.
// All prize, fee, and refund splits go through this one rule. Split
// into quotient and remainder so the intermediate product cannot
// overflow for any uint64 total; the result equals floor(total*pct/100)
// exactly.
func amountFromPct(total uint64, pct uint8) uint64 {
	p := uint64(pct)
	return total/100*p + total%100*p/100
}

// ---------- Ensure ----------

func ensure(cond bool, msg string, chain SDKInterface) {
	if !cond {
		chain.Abort(msg)
	}
}
