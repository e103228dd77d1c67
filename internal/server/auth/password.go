package auth

import "golang.org/x/crypto/bcrypt"

// HashPassword derives a salted bcrypt digest of password. cost is the work
// factor; values below bcrypt.MinCost fall back to bcrypt.DefaultCost.
// bcrypt salts every call, so equal passwords produce distinct digests.
func HashPassword(password string, cost int) (string, error) {
	if cost < bcrypt.MinCost {
		cost = bcrypt.DefaultCost
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPassword compares password against a stored bcrypt digest. The nil
// return means match; bcrypt.ErrMismatchedHashAndPassword means wrong
// password; anything else is an internal failure and must not be treated as
// a credential mismatch.
func CheckPassword(password, hash string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}
