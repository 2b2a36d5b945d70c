package sdk

// Address is a wallet or contract account on the chain, e.g. "hive:someone".
type Address string

func (a Address) String() string { return string(a) }

// Asset names a liquid token symbol understood by the node.
type Asset string

const (
	AssetHive Asset = "hive"
	AssetHbd  Asset = "hbd"
)

func (a Asset) String() string { return string(a) }

// Intent is an instruction attached to the transaction by the sender,
// such as a transfer allowance the contract may draw against.
type Intent struct {
	Type string            `json:"type"`
	Args map[string]string `json:"args"`
}

// Env is the transaction environment exposed by the host.
type Env struct {
	Sender struct {
		Address Address
	}
	Caller  Address
	TxId    string
	Intents []Intent
}
