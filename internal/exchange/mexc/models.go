package mexc

import "encoding/json"

// DustAsset is one sub-tradeable balance eligible for conversion, as
// returned by the convert-list endpoint.
type DustAsset struct {
	Asset     string `json:"asset"`
	ConvertMX string `json:"convertMx"`
}

// ConvertResult is the exchange's response payload for a convert call,
// forwarded verbatim to callers.
type ConvertResult = json.RawMessage
