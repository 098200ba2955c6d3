package usecase

import "golang.org/x/crypto/bcrypt"

// HashPassword hashes a password with bcrypt. The salt is generated per call,
// so two hashes of the same password differ while both still verify.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// VerifyPassword reports whether the password matches the stored hash. The
// comparison inside bcrypt is constant-time.
func VerifyPassword(hashedPassword, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password)) == nil
}
