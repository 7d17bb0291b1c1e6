package user

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"
)

// HeaderName carries the caller's user UUID on every user-scoped request.
const HeaderName = "X-User-ID"

// ParseID validates the X-User-ID header value.
func ParseID(raw string) (uuid.UUID, error) {
	id, err := uuid.FromString(raw)
	if err != nil {
		return uuid.Nil, huma.NewError(http.StatusBadRequest, "invalid "+HeaderName+" header", err)
	}
	if id == uuid.Nil {
		return uuid.Nil, huma.NewError(http.StatusBadRequest, HeaderName+" header must not be the nil UUID")
	}
	return id, nil
}
