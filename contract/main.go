package main

// Entry points exported to the host. Each wraps a testable impl
// function: the impl validates, mutates, and persists; the wrapper
// aborts the call on failure (surfacing the error kind verbatim) or
// executes the emitted transfer instructions on success.

func main() {}

// execute runs one engine against the host chain.
func execute(chain SDKInterface, impl func(SDKInterface) (*ExecuteResult, error)) *string {
	res, err := impl(chain)
	if err != nil {
		chain.Abort(err.Error())
		return nil
	}
	if len(res.Transfers) > 0 {
		executeTransfers(res, chain)
	}
	return nil
}

//go:wasmexport init
func Init(payload *string) *string {
	return execute(RealSDK{}, func(chain SDKInterface) (*ExecuteResult, error) {
		return initImpl(payload, chain)
	})
}

//go:wasmexport register_player
func RegisterPlayer(payload *string) *string {
	return execute(RealSDK{}, func(chain SDKInterface) (*ExecuteResult, error) {
		return registerPlayerImpl(payload, chain)
	})
}

//go:wasmexport start_game
func StartGame(payload *string) *string {
	return execute(RealSDK{}, func(chain SDKInterface) (*ExecuteResult, error) {
		return startGameImpl(chain)
	})
}

//go:wasmexport buy_squares
func BuySquares(payload *string) *string {
	return execute(RealSDK{}, func(chain SDKInterface) (*ExecuteResult, error) {
		return buySquaresImpl(payload, chain)
	})
}

//go:wasmexport choose_winner
func ChooseWinner(payload *string) *string {
	return execute(RealSDK{}, func(chain SDKInterface) (*ExecuteResult, error) {
		return chooseWinnerImpl(payload, chain)
	})
}

//go:wasmexport claim_refund
func ClaimRefund(payload *string) *string {
	return execute(RealSDK{}, func(chain SDKInterface) (*ExecuteResult, error) {
		return claimRefundImpl(chain)
	})
}

//go:wasmexport get_game
func GetGame(payload *string) *string {
	chain := RealSDK{}
	resp, err := getGameImpl(payload, chain)
	if err != nil {
		chain.Abort(err.Error())
		return nil
	}
	out := mustToJSON(resp, "game response", chain)
	return &out
}
