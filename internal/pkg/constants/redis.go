package constants

// Redis key formats
const (
	KeyOtpChallenge = "auth:otp:%s"   // Format: auth:otp:{email}
	KeyResetGrant   = "auth:reset:%s" // Format: auth:reset:{email}
)
