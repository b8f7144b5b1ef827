package response

import (
	"encoding/json"
	"net/http"

	"github.com/ShouterLab/binance-api-svr/pkg/schema"
)

// Internal error codes returned in the envelope. Zero means success; every
// non-zero code maps to a default message in defaultMessages.
const (
	CodeSuccess             = 0
	CodeInvalidMarketType   = 1001
	CodeSymbolRequired      = 1002
	CodeLimitExceeded       = 1003
	CodeMissingParams       = 1004
	CodeInvalidSide         = 1005
	CodeInvalidOrderType    = 1006
	CodePriceRequired       = 1007
	CodeInternalServerError = 5000
)

var defaultMessages = map[int]string{
	CodeSuccess:             "success",
	CodeInvalidMarketType:   "Invalid market type. Must be 'spot' or 'futures'",
	CodeSymbolRequired:      "Symbol parameter is required",
	CodeLimitExceeded:       "Limit cannot exceed 1000",
	CodeMissingParams:       "Missing required parameters",
	CodeInvalidSide:         "Invalid side. Must be 'BUY' or 'SELL'",
	CodeInvalidOrderType:    "Invalid order type. Must be 'LIMIT' or 'MARKET'",
	CodeInternalServerError: "Internal server error",
	CodePriceRequired:       "Price is required for LIMIT orders",
}

// Envelope is the uniform response wrapper returned by every operation.
// ErrorCode is zero exactly when Body is present.
type Envelope struct {
	ErrorCode  int               `json:"errorCode"`
	ErrorMsg   string            `json:"errorMsg"`
	Body       interface{}       `json:"body,omitempty"`
	MarketType schema.MarketType `json:"marketType,omitempty"`
}

// Message returns the default message for a code, or "Unknown error".
func Message(code int) string {
	if msg, ok := defaultMessages[code]; ok {
		return msg
	}
	return "Unknown error"
}

// Success wraps data into a success envelope. Pass an empty market to omit
// the marketType tag.
func Success(data interface{}, market schema.MarketType) Envelope {
	return Envelope{
		ErrorCode:  CodeSuccess,
		ErrorMsg:   defaultMessages[CodeSuccess],
		Body:       data,
		MarketType: market,
	}
}

// Error builds an error envelope for a code. An empty message selects the
// default for that code.
func Error(code int, message string) Envelope {
	if message == "" {
		message = Message(code)
	}
	return Envelope{ErrorCode: code, ErrorMsg: message}
}

// InternalError builds the generic internal-error envelope carrying the
// cause's description.
func InternalError(err error) Envelope {
	msg := "Unknown error"
	if err != nil {
		msg = err.Error()
	}
	return Envelope{
		ErrorCode: CodeInternalServerError,
		ErrorMsg:  defaultMessages[CodeInternalServerError] + ": " + msg,
	}
}

// WriteJSON writes an envelope with the given HTTP status.
func WriteJSON(w http.ResponseWriter, status int, env Envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(env)
}

// WriteSuccess writes a success envelope with HTTP 200.
func WriteSuccess(w http.ResponseWriter, data interface{}, market schema.MarketType) {
	WriteJSON(w, http.StatusOK, Success(data, market))
}

// WriteError writes an error envelope with HTTP 400 and the code's default
// message.
func WriteError(w http.ResponseWriter, code int) {
	WriteJSON(w, http.StatusBadRequest, Error(code, ""))
}

// WriteErrorMsg writes an error envelope with HTTP 400 and a custom message.
func WriteErrorMsg(w http.ResponseWriter, code int, message string) {
	WriteJSON(w, http.StatusBadRequest, Error(code, message))
}

// WriteInternalError writes the internal-error envelope with HTTP 500.
func WriteInternalError(w http.ResponseWriter, err error) {
	WriteJSON(w, http.StatusInternalServerError, InternalError(err))
}
