package railscookie_test

// Cookies captured from the news application (Rails 6) and the secret_key_base it ran with.
const (
	referenceSecret = "4f7198c210578b2106158e708af896dd5eb1f9d99c3a95bbb3eaa30fb4b5a2f15f5b4c84d87c92fa3e18559e112ccc12198dd085b65b25a28bc48f23ee670c60"

	loggedOutCookie = "M2n5chbqRrH8BcTShibfoJW1J%2Fjk%2BceoqDDKk3to%2FBElfEHZhEP24G6q1ksZ1%2FE5O62X2ZlkxNLvY39IAT6Kk3er5iRu%2BZxI5HbxPjroU3Vcm8RB0Ot7JKICk7auZb3bhSGTvGB0MiKvh%2FPjkBJd%2FSAretpR0ZBpLv1aiIsAgQsNMmCysOksYgpvoLyqAEKdGCAWxktpUxvcXRVH34taIN%2Bpr7q0DuZYOwFK%2FHqz1KKFIn9%2BPQm6UvB5M%2FwbB04zpV%2Fc1%2BGo%2FDkCPrZsv956YqDOlg9i--is%2B9rGtsSv9Df%2F3h--r0s8PHaWNusjHc9xl4tDJA%3D%3D"

	loggedInCookie = "o1e%2FaSuIDNZEffjMVV2iORgeIi06Uj2nO163xucCToB3i%2BI6g9cz8miIpBCdTYjccgb9DHduuJ3k4UX50XW0T%2BbB1jIH9aBhtY7I9Nvv35mls8vb6%2FLJX2iHIQqlJ03JbmjOOhj33Vnx%2BYKjpqMvNa5sO5jP%2BUIRj7NRtbEQNEBMkAbKK1UpjO5lwqM444T0aor6NQN1X6kn%2B719SIjJuu782wJ0tIgtuEj0zCGlwF9ws9EUqs28DNhLPh2CTs7fdsUjWw96BK5Q3vC76A%2FxDROg7GZjKkUqVMW3F548sxStqG8wSQ%3D%3D--n1Q7TIFjtc%2B%2Ft88T--rLWS0leMx%2FWCgFDXUTN7lg%3D%3D"

	// Legacy MessageEncryptor cookie (AES-256-CBC, HMAC-SHA1) produced with OpenSSL for the
	// logged-in session under referenceSecret.
	legacyCookie = "TC9SQjZ2VDBYRDExYlNUNWVZcENvRkFFSnJ2YkF3RkFoT2tZMFZUaG5HclJoWXBjWDEweXhpV09FalAxRWdaUEU1ZDExd05ITzZNY0FTdlloWTBrdkk4QlpocmRrTDdQMko2NncyUUpLQTdySk9QRGtKR0ZYWXRjZENRcEdNL3lzbnl0ZUF3VmJaZFJJOXVBdzBVVEgxNTdOT0tDRHAxL2RoKy9TRjgrWU04PS0tQUFFQ0F3UUZCZ2NJQ1FvTERBME9Edz09--d41fdf9ad64a9585d9032670c1fc118a24505cbc"

	referenceCookieName = "_news_session"
	referenceSessionID  = "6a0eb63ebc79b573a88388907e0031f3"
	referenceCSRFToken  = "zZfEUV7uY6UUHEZr4AqQbyaNJ_U63GqJR_uM3HhOF70="
)
