package ionomy

import (
	"crypto/hmac"
	"crypto/sha512"
	"encoding/hex"
	"net/http"
	"strconv"
)

//
// SignedHeaders holds the values of the authentication headers attached to a signed request.
//
type SignedHeaders struct {
	AuthTime  int64
	AuthKey   string
	AuthToken string
}

//
// Apply sets the authentication headers on the provided header map.
//
func (o SignedHeaders) Apply(header http.Header) {
	header.Set(AuthTimeHeader, strconv.FormatInt(o.AuthTime, 10))
	header.Set(AuthKeyHeader, o.AuthKey)
	header.Set(AuthTokenHeader, o.AuthToken)
}

//
// CanonicalURL builds the exact URL that is both requested and signed. The "?" is only present when
// there is at least one parameter to encode.
//
func CanonicalURL(basePath string, endpointPath string, params Params) string {
	query := params.Encode()
	if query == "" {
		return basePath + endpointPath
	}

	return basePath + endpointPath + "?" + query
}

//
// Sign computes the lowercase hex HMAC-SHA512 of the canonical URL immediately followed by the
// decimal timestamp (in seconds), keyed with the API secret.
//
func Sign(basePath string, endpointPath string, params Params, timestamp int64, secret string) string {
	mac := hmac.New(sha512.New, []byte(secret))
	mac.Write([]byte(CanonicalURL(basePath, endpointPath, params)))
	mac.Write([]byte(strconv.FormatInt(timestamp, 10)))

	return hex.EncodeToString(mac.Sum(nil))
}
