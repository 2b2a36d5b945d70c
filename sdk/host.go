package sdk

// Host bindings. When the contract is compiled for the chain, the node
// toolchain supplies the wasm imports behind these functions. Off-chain
// builds (tests, tooling) must not reach them: contract code goes
// through its SDKInterface seam and tests substitute an in-memory host.

func unlinked() {
	panic("sdk: host binding not linked")
}

func StateSetObject(key, value string) { unlinked() }

func StateGetObject(key string) *string {
	unlinked()
	return nil
}

func Abort(msg string) { unlinked() }

func Log(msg string) { unlinked() }

func GetEnv() Env {
	unlinked()
	return Env{}
}

func HiveDraw(amount int64, asset Asset) { unlinked() }

func HiveTransfer(to Address, amount int64, asset Asset) { unlinked() }

func ContractRead(contractId, method, payload string) *string {
	unlinked()
	return nil
}

func ContractCall(contractId, method, payload string) { unlinked() }
