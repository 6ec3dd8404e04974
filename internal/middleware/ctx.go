package middleware

type ctxKey string

const (
	ContextRequestID ctxKey = "request_id"
	ContextUsername  ctxKey = "username"
	ContextRole      ctxKey = "role"
)
