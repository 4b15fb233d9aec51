package identity

import "golang.org/x/crypto/bcrypt"

// HashPassword is the one-way transform applied before an account record
// ever exists; the raw credential is not retained past the calling frame.
func HashPassword(raw string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(raw), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

func CheckPassword(hash, raw string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(raw)) == nil
}
