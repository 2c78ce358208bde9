// Package creditsdk provides the wire types and a typed HTTP client for the
// credits service. Boundary collaborators (galleries, admin UI, the image
// pipeline) consume the service through this package instead of hand-rolling
// requests.
package creditsdk

import "time"

// Stable error codes returned in ErrorResponse.Error. Collaborators switch
// on these, never on description text or HTTP status alone.
const (
	CodeUnauthorized        = "UNAUTHORIZED"
	CodeAdminRequired       = "ADMIN_REQUIRED"
	CodeInvalidInput        = "INVALID_INPUT"
	CodeInsufficientCredits = "INSUFFICIENT_CREDITS"
	CodeDailyLimitExceeded  = "DAILY_LIMIT_EXCEEDED"
	CodeUserNotFound        = "USER_NOT_FOUND"
	CodeUserAlreadyExists   = "USER_ALREADY_EXISTS"
	CodeInviteNotFound      = "CODE_NOT_FOUND"
	CodeInviteExpired       = "CODE_EXPIRED"
	CodeInviteExhausted     = "CODE_EXHAUSTED"
	CodeInviteDeactivated   = "CODE_DEACTIVATED"
	CodeAlreadyRedeemed     = "ALREADY_REDEEMED"
	CodeDatabaseError       = "DATABASE_ERROR"
	CodeDatabaseBusy        = "DATABASE_BUSY"
)

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	// Error is one of the stable Code* constants
	Error string `json:"error"`

	// ErrorDescription is a human-readable description of the error
	ErrorDescription string `json:"error_description,omitempty"`
}

// ConsumeRequest asks the service to spend credits for the calling user.
type ConsumeRequest struct {
	// Amount is a positive whole number of credits
	Amount int64 `json:"amount"`

	// Description is attached to the audit record (e.g. "image render 1024x1024")
	Description string `json:"description,omitempty"`
}

// ConsumedBatch reports how much of one ledger batch a consume call took.
type ConsumedBatch struct {
	TransactionID string `json:"transaction_id"`
	AmountTaken   int64  `json:"amount_taken"`
}

// ConsumeResponse is the outcome of a successful consume call.
type ConsumeResponse struct {
	Breakdown        []ConsumedBatch `json:"breakdown"`
	TotalConsumed    int64           `json:"total_consumed"`
	RemainingBalance int64           `json:"remaining_balance"`
}

// BalanceResponse reports a user's spendable credit total.
type BalanceResponse struct {
	UserID  string `json:"user_id"`
	Balance int64  `json:"balance"`
}

// DailyLimitResponse reports the calling user's standing against their cap.
type DailyLimitResponse struct {
	DailyLimit    int64 `json:"daily_limit"`
	ConsumedToday int64 `json:"consumed_today"`
	Remaining     int64 `json:"remaining"`
	Unlimited     bool  `json:"unlimited"`
}

// AddCreditsRequest issues credits to a user. Admin or service-key only.
type AddCreditsRequest struct {
	UserID string `json:"user_id"`
	Amount int64  `json:"amount"`

	// Type is one of purchase, bonus, admin_grant
	Type        string     `json:"type"`
	Description string     `json:"description,omitempty"`
	ExpiresAt   *time.Time `json:"expires_at,omitempty"`
}

// AddCreditsResponse returns the created ledger row's id.
type AddCreditsResponse struct {
	TransactionID string `json:"transaction_id"`
}

// RegisterUserRequest records a platform account with the engine.
type RegisterUserRequest struct {
	UserID      string `json:"user_id"`
	DisplayName string `json:"display_name,omitempty"`

	// DailyLimit caps credits per UTC day; 0 means uncapped
	DailyLimit int64 `json:"daily_limit"`
	IsAdmin    bool  `json:"is_admin,omitempty"`
}

// UserResponse is the engine's view of one account.
type UserResponse struct {
	UserID      string    `json:"user_id"`
	DisplayName string    `json:"display_name"`
	DailyLimit  int64     `json:"daily_limit"`
	IsAdmin     bool      `json:"is_admin"`
	CreatedAt   time.Time `json:"created_at"`
}

// CreateInviteRequest mints a new invite code.
type CreateInviteRequest struct {
	CreditsValue     int64      `json:"credits_value"`
	CreditsExpiresAt *time.Time `json:"credits_expires_at,omitempty"`
	MaxUses          int64      `json:"max_uses"`
	ExpiresAt        *time.Time `json:"expires_at,omitempty"`
	Metadata         string     `json:"metadata,omitempty"`
}

// InviteCodeResponse is one invite code's public state.
type InviteCodeResponse struct {
	Code             string     `json:"code"`
	CreatedBy        string     `json:"created_by"`
	CreditsValue     int64      `json:"credits_value"`
	CreditsExpiresAt *time.Time `json:"credits_expires_at,omitempty"`
	MaxUses          int64      `json:"max_uses"`
	CurrentUses      int64      `json:"current_uses"`
	RemainingUses    int64      `json:"remaining_uses"`
	IsActive         bool       `json:"is_active"`
	Metadata         string     `json:"metadata,omitempty"`
	ExpiresAt        *time.Time `json:"expires_at,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
}

// ListInvitesResponse wraps the code listing.
type ListInvitesResponse struct {
	Codes []InviteCodeResponse `json:"codes"`
}

// ValidateInviteRequest checks a code without redeeming it.
type ValidateInviteRequest struct {
	Code string `json:"code"`
}

// ValidateInviteResponse reports whether a code can be redeemed right now.
// When IsValid is false, Error holds the stable code explaining why.
type ValidateInviteResponse struct {
	IsValid       bool   `json:"is_valid"`
	RemainingUses int64  `json:"remaining_uses"`
	CreditsValue  int64  `json:"credits_value,omitempty"`
	Error         string `json:"error,omitempty"`
}

// RedeemInviteRequest exchanges a code for its credit grant.
type RedeemInviteRequest struct {
	Code string `json:"code"`
}

// RedeemInviteResponse reports a successful redemption.
type RedeemInviteResponse struct {
	RedemptionID   string    `json:"redemption_id"`
	Code           string    `json:"code"`
	CreditsGranted int64     `json:"credits_granted"`
	RedeemedAt     time.Time `json:"redeemed_at"`
}

// RedemptionRecord is one entry in a code's redemption history.
type RedemptionRecord struct {
	ID         string    `json:"id"`
	UserID     string    `json:"user_id"`
	RedeemedAt time.Time `json:"redeemed_at"`
	IPAddress  string    `json:"ip_address,omitempty"`
	UserAgent  string    `json:"user_agent,omitempty"`
}

// InviteAnalyticsResponse summarizes one code's redemption history.
type InviteAnalyticsResponse struct {
	Code             InviteCodeResponse `json:"code"`
	TotalRedemptions int64              `json:"total_redemptions"`
	CreditsIssued    int64              `json:"credits_issued"`
	RemainingUses    int64              `json:"remaining_uses"`
	Redemptions      []RedemptionRecord `json:"redemptions"`
}

// HealthResponse is the body of /livez and /readyz.
type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version,omitempty"`
	Uptime  string `json:"uptime,omitempty"`
}
