package gateway

import "encoding/json"

// ActiveUser is the currently selected account, returned by OTP verification
// and account switching.
type ActiveUser struct {
	Number           int64           `json:"number"`
	SubscriptionType string          `json:"subscription_type,omitempty"`
	Tokens           json.RawMessage `json:"tokens,omitempty"`
}

// LinkedUser is one entry of the linked-account list.
type LinkedUser struct {
	Number           int64  `json:"number"`
	SubscriptionType string `json:"subscription_type,omitempty"`
	IsActive         bool   `json:"is_active"`
}

// SummaryResponse is the per-visit account snapshot. The profile, balance and
// tiering blocks vary release-to-release on the backend, so they stay opaque
// and are probed by the normalize package.
type SummaryResponse struct {
	Number           int64           `json:"number"`
	SubscriptionType string          `json:"subscription_type,omitempty"`
	Profile          json.RawMessage `json:"profile"`
	Balance          json.RawMessage `json:"balance"`
	Tiering          json.RawMessage `json:"tiering"`
}

// OTPResponse mirrors POST /auth/request-otp.
type OTPResponse struct {
	Success      bool   `json:"success"`
	SubscriberID string `json:"subscriber_id"`
}

// LoginResponse mirrors POST /auth/submit-otp and POST /users/select.
type LoginResponse struct {
	Success    bool       `json:"success"`
	ActiveUser ActiveUser `json:"active_user"`
}

// MyPackagesResponse mirrors GET /me/packages. Packages keep their raw shape;
// normalize.Benefits handles the per-entry coercion.
type MyPackagesResponse struct {
	Raw      json.RawMessage   `json:"raw"`
	Packages []json.RawMessage `json:"packages"`
}

// PurchaseResponse is the common result of single purchases.
type PurchaseResponse struct {
	Success bool            `json:"success"`
	Result  json.RawMessage `json:"result"`
}

// QrisResponse mirrors POST /purchase/qris/single.
type QrisResponse struct {
	Success       bool   `json:"success"`
	TransactionID string `json:"transaction_id"`
	QrisCode      string `json:"qris_code"`
	QrisB64       string `json:"qris_b64"`
	QrisURL       string `json:"qris_url"`
}

// RepeatResult mirrors POST /purchase/balance/repeat. The gateway performs
// the looping server-side; this is the aggregate outcome.
type RepeatResult struct {
	Success              bool              `json:"success"`
	OptionCode           string            `json:"option_code"`
	Times                int               `json:"times"`
	DelaySeconds         int               `json:"delay_seconds"`
	UseDecoy             bool              `json:"use_decoy"`
	TokenConfirmationIdx int               `json:"token_confirmation_idx"`
	SuccessCount         int               `json:"success_count"`
	Results              []json.RawMessage `json:"results"`
}

// FamilyLoopResult mirrors POST /purchase/family/loop.
type FamilyLoopResult struct {
	Success         bool              `json:"success"`
	FamilyCode      string            `json:"family_code"`
	StartFromOption int               `json:"start_from_option"`
	DelaySeconds    int               `json:"delay_seconds"`
	TotalAttempted  int               `json:"total_attempted"`
	SuccessCount    int               `json:"success_count"`
	Results         []json.RawMessage `json:"results"`
}

// MarkReadResponse mirrors POST /notifications/read-all.
type MarkReadResponse struct {
	Success    bool     `json:"success"`
	UpdatedIDs []string `json:"updated_ids"`
}

// RegistrationBody is the dukcapil SIM-registration input; sent once and
// discarded.
type RegistrationBody struct {
	MSISDN string `json:"msisdn"`
	NIK    string `json:"nik"`
	KK     string `json:"kk"`
}

// BalanceMode selects the balance purchase variant. The endpoint stays the
// same; only the flag set sent to the backend varies.
type BalanceMode string

const (
	BalanceNormal  BalanceMode = "normal"
	BalanceDecoyV1 BalanceMode = "decoy_v1"
	BalanceDecoyV2 BalanceMode = "decoy_v2"
)

// QrisMode selects the QRIS purchase variant.
type QrisMode string

const (
	QrisNormal QrisMode = "normal"
	QrisDecoy  QrisMode = "qris"
	QrisDecoy0 QrisMode = "qris0"
)

// WalletMethod is an e-wallet payment rail accepted by the gateway.
type WalletMethod string

const (
	WalletDana      WalletMethod = "DANA"
	WalletShopeePay WalletMethod = "SHOPEEPAY"
	WalletGopay     WalletMethod = "GOPAY"
	WalletOvo       WalletMethod = "OVO"
)
