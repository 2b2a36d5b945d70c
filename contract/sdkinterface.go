package main

import (
	"gridpool/sdk"
)

// --- SDK interface abstraction ---

type SDKInterfaceEnv struct {
	Sender struct {
		Address sdk.Address
	}
	Caller  sdk.Address
	TxId    string
	Intents []sdk.Intent
}

// SDKInterface is the seam between contract logic and the host node.
// Engines only touch the chain through it, so tests can run against an
// in-memory implementation.
type SDKInterface interface {
	StateSetObject(key, value string)
	StateGetObject(key string) *string
	Abort(msg string)
	Log(msg string)
	GetEnv() SDKInterfaceEnv
	HiveDraw(amount int64, asset sdk.Asset)
	HiveTransfer(to sdk.Address, amount int64, asset sdk.Asset)
	ContractRead(contractId, method, payload string) *string
	ContractCall(contractId, method, payload string)
}

// RealSDK is the production implementation that forwards to the host sdk.
type RealSDK struct{}

func (RealSDK) StateSetObject(key, value string)  { sdk.StateSetObject(key, value) }
func (RealSDK) StateGetObject(key string) *string { return sdk.StateGetObject(key) }
func (RealSDK) Abort(msg string)                  { sdk.Abort(msg) }
func (RealSDK) Log(msg string)                    { sdk.Log(msg) }
func (RealSDK) GetEnv() SDKInterfaceEnv {
	e := sdk.GetEnv()
	return SDKInterfaceEnv{
		Sender:  struct{ Address sdk.Address }{Address: e.Sender.Address},
		Caller:  e.Caller,
		TxId:    e.TxId,
		Intents: e.Intents,
	}
}
func (RealSDK) HiveDraw(amount int64, asset sdk.Asset) {
	sdk.HiveDraw(amount, asset)
}
func (RealSDK) HiveTransfer(to sdk.Address, amount int64, asset sdk.Asset) {
	sdk.HiveTransfer(to, amount, asset)
}
func (RealSDK) ContractRead(contractId, method, payload string) *string {
	return sdk.ContractRead(contractId, method, payload)
}
func (RealSDK) ContractCall(contractId, method, payload string) {
	sdk.ContractCall(contractId, method, payload)
}
