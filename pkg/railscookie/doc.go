// Package railscookie verifies the encrypted session cookies issued by a Rails application.
//
// A Rails session cookie is an opaque, percent-encoded string. Two wire formats exist:
//
//   - FormatAEADGCM (Rails 5.2 and later): base64(ciphertext)--base64(iv)--base64(tag),
//     AES-256-GCM with a key derived from secret_key_base and the salt
//     "authenticated encrypted cookie". The plaintext is a metadata envelope
//     {"_rails":{"message":"<base64 JSON>","exp":...,"pur":...}}.
//   - FormatHMACSigned (legacy MessageEncryptor): base64(base64(ciphertext)--base64(iv))--hex(hmac),
//     AES-256-CBC with a key from the salt "encrypted cookie", signed with HMAC-SHA1 under a key
//     from the salt "signed encrypted cookie". The plaintext is the session JSON itself.
//
// Keys are derived with PBKDF2-HMAC-SHA1, 1000 iterations (see package keygen).
//
// # Usage
//
//	v, err := railscookie.New([]byte(os.Getenv("SECRET_KEY_BASE")),
//	    railscookie.WithPurpose(railscookie.CookiePurpose("_news_session")),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	sess, err := v.Verify(cookieValue)
//	if err != nil {
//	    // reject the request with a generic "invalid session" response
//	}
//	userID := sess["user_id"]
//
// For one-off checks the package-level Verify derives keys on every call:
//
//	sess, err := railscookie.Verify(cookieValue, secret, railscookie.FormatAEADGCM)
//
// The verifier never issues tokens. Issuer produces tokens in the same formats for test fixtures
// and operational debugging.
//
// # Configuration
//
// Config can be populated from the environment with github.com/caarlos0/env:
//
//	cfg := railscookie.DefaultConfig()
//	_ = env.Parse(&cfg)
//	v, _ := railscookie.NewFromConfig(cfg)
//
// # Error Handling
//
// Verification errors fall into three categories, matched with errors.Is:
//
//   - ErrMalformedToken: the token is not shaped like a cookie (segment count, Base64, JSON).
//   - ErrAuthenticationFailed: the GCM tag or HMAC did not verify. Treat as hostile input.
//   - ErrUnsupportedFormat: the caller asked for a format this package does not implement.
//
// Tokens that authenticate but carry envelope metadata that no longer applies fail with
// ErrExpired or ErrPurposeMismatch. Category maps any of these to a short name for logs.
// End users should see one generic "invalid session" message whatever the category.
//
// # Concurrency
//
// Verifier and Issuer are immutable after construction and safe for concurrent use. Derived keys
// are cached per instance, which is valid because an instance never changes its secret.
package railscookie
