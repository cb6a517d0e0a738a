package requestdata

import (
	"context"

	"github.com/google/uuid"
)

var requestDataKey = struct{}{}

func WithRequestData(ctx context.Context, rd *RequestData) context.Context {
	return context.WithValue(ctx, requestDataKey, rd)
}

func GetRequestData(ctx context.Context) *RequestData {
	val := ctx.Value(requestDataKey)
	if rd, ok := val.(*RequestData); ok {
		return rd
	}
	return nil
}

// RequestData is the principal attached by the auth middleware. UserID is the
// identity embedded in the token at issuance; nothing here is re-checked
// against the user table per request.
type RequestData struct {
	TokenString string
	UserID      uuid.UUID
}
