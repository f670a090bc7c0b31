package idempotency

// HeaderIdempotencyKey is the request header carrying the client's retry key
const HeaderIdempotencyKey = "Idempotency-Key"

// HeaderReplayed marks responses served from the cache
const HeaderReplayed = "Idempotent-Replayed"

// MaxKeyLength bounds accepted idempotency keys
const MaxKeyLength = 128

const (
	LogMsgReplayed    = "Replaying idempotent response"
	LogMsgKeyTooLong  = "Idempotency key too long, ignoring"
	LogMsgNotCachable = "Response not cached"
)
