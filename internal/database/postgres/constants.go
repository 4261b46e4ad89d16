package postgres

// Error Messages
const (
	ErrMsgFailedToGetPlayer    = "failed to get player"
	ErrMsgFailedToUpsertPlayer = "failed to upsert player"
	ErrMsgFailedToDeletePlayer = "failed to delete player"
	ErrMsgFailedToEncodeRecord = "failed to encode player record"
	ErrMsgFailedToDecodeRecord = "failed to decode player record"
	ErrMsgFailedToLoadWorld    = "failed to load world"
	ErrMsgFailedToSeedWorld    = "failed to seed world"
	ErrMsgFailedToBeginTx      = "failed to begin transaction"
	ErrMsgFailedToCommitTx     = "failed to commit transaction"
	ErrMsgFailedToCountCatalog = "failed to count catalog rows"
)

// Log Messages
const (
	LogMsgRollbackFailed = "Failed to rollback transaction"
)
