package main

// ContractError is a failure kind surfaced verbatim to the caller.
// The first failing validation aborts the whole call; nothing is
// persisted on any error path.
type ContractError string

func (e ContractError) Error() string { return string(e) }

const (
	ErrNotAuthorized          ContractError = "NotAuthorized"
	ErrInsufficientFunds      ContractError = "InsufficientFunds"
	ErrExcessFunds            ContractError = "ExcessFunds"
	ErrDuplicatePlayerAddress ContractError = "DuplicatePlayerAddress"
	ErrInsufficientQuarters   ContractError = "InsufficientQuarters"
	ErrInsufficientGridCells  ContractError = "InsufficientGridCells"
	ErrCoordinatesOutOfBounds ContractError = "CoordinatesOutOfBounds"
	ErrInvalidGridCellPrice   ContractError = "InvalidGridCellPrice"
	ErrInvalidTeamCount       ContractError = "InvalidTeamCount"
	ErrUnknownPlayerAddress   ContractError = "UnknownPlayerAddress"
	ErrInvalidQuarterSplit    ContractError = "InvalidQuarterSplit"
	ErrNotStarted             ContractError = "NotStarted"
	ErrAlreadyResolved        ContractError = "AlreadyResolved"
	ErrAlreadyClaimedRefund   ContractError = "AlreadyClaimedRefund"
	ErrAlreadyStarted         ContractError = "AlreadyStarted"
	ErrCellSoldOut            ContractError = "CellSoldOut"
	ErrGameOver               ContractError = "GameOver"
	ErrInvalidToken           ContractError = "InvalidToken"
)
