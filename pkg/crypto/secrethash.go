package crypto

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
)

// SecretHash computes the integrity code Cognito requires on
// username/password flows when the app client has a secret:
// base64(HMAC-SHA256(key=clientSecret, msg=username+clientID)).
// Registration and login must send the same value for a given username.
func SecretHash(username, clientID, clientSecret string) string {
	mac := hmac.New(sha256.New, []byte(clientSecret))
	mac.Write([]byte(username + clientID))
	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}
