package handlers

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/rohits-web03/roboshow/internal/utils"
)

// oauthState travels through the Google round trip. Nonce is also kept in
// a cookie so the callback can tell its own redirects from forged ones.
type oauthState struct {
	Nonce  string `json:"-"`
	Flow   string `json:"flow"` // "login" or "signup"
	Return string `json:"return,omitempty"`
}

// encodeState produces "nonce.payload" with a fresh random nonce.
func encodeState(flow, returnTo string) (oauthState, string, error) {
	nonce, err := utils.GenerateSecureToken(16)
	if err != nil {
		return oauthState{}, "", fmt.Errorf("failed to generate nonce: %w", err)
	}
	st := oauthState{
		Nonce:  nonce,
		Flow:   flow,
		Return: returnTo,
	}

	payloadBytes, err := json.Marshal(st)
	if err != nil {
		return oauthState{}, "", fmt.Errorf("failed to marshal state data: %w", err)
	}
	return st, st.Nonce + "." + base64.RawURLEncoding.EncodeToString(payloadBytes), nil
}

func decodeState(state string) (oauthState, error) {
	nonce, payload, ok := strings.Cut(state, ".")
	if !ok || nonce == "" {
		return oauthState{}, fmt.Errorf("invalid state format")
	}

	payloadBytes, err := base64.RawURLEncoding.DecodeString(payload)
	if err != nil {
		return oauthState{}, fmt.Errorf("failed to decode state payload: %w", err)
	}

	var st oauthState
	if err := json.Unmarshal(payloadBytes, &st); err != nil {
		return oauthState{}, fmt.Errorf("failed to unmarshal state JSON: %w", err)
	}
	st.Nonce = nonce
	return st, nil
}
