package main

import (
	"encoding/json"
	"fmt"
	"strconv"
	"testing"

	"gridpool/sdk"
)

// FakeSDK is an in-memory host used by the tests. It records every
// state write, draw, transfer, contract call, and emitted log so tests
// can assert on the full side-effect surface of a call.

type fakeDraw struct {
	Amount int64
	Asset  sdk.Asset
}

type fakeTransfer struct {
	To     sdk.Address
	Amount int64
	Asset  sdk.Asset
}

type fakeContractCall struct {
	Contract string
	Method   string
	Payload  string
}

type FakeSDK struct {
	state    map[string]string
	env      SDKInterfaceEnv
	aborted  bool
	abortMsg string

	logs      []string
	draws     []fakeDraw
	transfers []fakeTransfer
	calls     []fakeContractCall
	balances  map[string]map[sdk.Address]uint64
}

func NewFakeSDK(sender string, txid string) *FakeSDK {
	f := &FakeSDK{
		state:    make(map[string]string),
		balances: make(map[string]map[sdk.Address]uint64),
	}
	f.env.TxId = txid
	f.setSender(sender)
	return f
}

func (f *FakeSDK) setSender(addr string) {
	f.env.Sender = struct{ Address sdk.Address }{Address: sdk.Address(addr)}
	f.env.Caller = sdk.Address(addr)
}

// allow attaches a transfer.allow intent for the given token and limit,
// replacing any previous intents.
func (f *FakeSDK) allow(limit, token string) {
	f.env.Intents = []sdk.Intent{{
		Type: "transfer.allow",
		Args: map[string]string{"limit": limit, "token": token},
	}}
}

func (f *FakeSDK) clearIntents() {
	f.env.Intents = nil
}

func (f *FakeSDK) setBalance(contract string, account sdk.Address, amount uint64) {
	if f.balances[contract] == nil {
		f.balances[contract] = make(map[sdk.Address]uint64)
	}
	f.balances[contract][account] = amount
}

// snapshot copies the state map so tests can assert that a failed call
// mutated nothing.
func (f *FakeSDK) snapshot() map[string]string {
	cp := make(map[string]string, len(f.state))
	for k, v := range f.state {
		cp[k] = v
	}
	return cp
}

func (f *FakeSDK) StateSetObject(key, value string) {
	f.state[key] = value
}

func (f *FakeSDK) StateGetObject(key string) *string {
	val, ok := f.state[key]
	if !ok {
		return nil
	}
	return &val
}

func (f *FakeSDK) Abort(msg string) {
	f.aborted = true
	f.abortMsg = msg
	panic(fmt.Sprintf("Abort called: %s", msg))
}

func (f *FakeSDK) Log(msg string) {
	f.logs = append(f.logs, msg)
}

func (f *FakeSDK) GetEnv() SDKInterfaceEnv {
	return f.env
}

func (f *FakeSDK) HiveDraw(amount int64, asset sdk.Asset) {
	f.draws = append(f.draws, fakeDraw{Amount: amount, Asset: asset})
}

func (f *FakeSDK) HiveTransfer(to sdk.Address, amount int64, asset sdk.Asset) {
	f.transfers = append(f.transfers, fakeTransfer{To: to, Amount: amount, Asset: asset})
}

func (f *FakeSDK) ContractRead(contractId, method, payload string) *string {
	if method != "balance" {
		return nil
	}
	accounts, ok := f.balances[contractId]
	if !ok {
		return nil
	}
	var args tokenBalanceArgs
	if err := json.Unmarshal([]byte(payload), &args); err != nil {
		return nil
	}
	out := strconv.FormatUint(accounts[args.Account], 10)
	return &out
}

func (f *FakeSDK) ContractCall(contractId, method, payload string) {
	f.calls = append(f.calls, fakeContractCall{
		Contract: contractId,
		Method:   method,
		Payload:  payload,
	})
}

// expectAbort asserts that the deferred recover caught an Abort panic
// with the given message.
func expectAbort(t *testing.T, chain *FakeSDK, expectedMsg string) {
	t.Helper()
	if r := recover(); r == nil {
		t.Errorf("expected Abort panic, but function did not panic")
	} else {
		if !chain.aborted {
			t.Errorf("expected Abort to be called, but it wasn't")
		}
		if chain.abortMsg != expectedMsg {
			t.Errorf("expected abort message %q, got %q", expectedMsg, chain.abortMsg)
		}
	}
}
