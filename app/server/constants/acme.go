package constants

// ACME HTTP-01 验证
const (
	AcmeChallengePathPrefix = "/.well-known/acme-challenge/"

	AcmeTokenVar     = "ACME_TOKEN" // ACME_TOKEN 或 ACME_TOKEN_<SUFFIX>
	AcmeKeyVar       = "ACME_KEY"   // ACME_KEY 或 ACME_KEY_<SUFFIX> ，后缀与 token 一致
	AcmeSuffixPrefix = "_"
)
