package password

import (
	"golang.org/x/crypto/bcrypt"
)

const (
	// Cost is the fixed bcrypt work factor for stored credentials.
	Cost = 10
	// MaxLength is the longest password, in bytes, bcrypt accepts.
	MaxLength = 72
)

var ErrTooLong = bcrypt.ErrPasswordTooLong

// dummyHash is compared against when no account exists so that a failed
// lookup costs the same as a wrong password.
var dummyHash = mustHash("medical-appointment-api:dummy")

func Hash(plain string) (string, error) {
	if len(plain) > MaxLength {
		return "", ErrTooLong
	}
	b, err := bcrypt.GenerateFromPassword([]byte(plain), Cost)
	return string(b), err
}

func Check(hash, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}

// CheckDummy burns one comparison and always reports false.
func CheckDummy(plain string) bool {
	_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(plain))
	return false
}

func mustHash(plain string) []byte {
	b, err := bcrypt.GenerateFromPassword([]byte(plain), Cost)
	if err != nil {
		panic(err)
	}
	return b
}
