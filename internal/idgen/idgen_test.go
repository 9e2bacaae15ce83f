package idgen_test

import (
	"regexp"
	"testing"

	"github.com/mayanksbank/banking_backend/internal/idgen"
	"github.com/stretchr/testify/assert"
)

func TestNewAccountIDFormat(t *testing.T) {
	pattern := regexp.MustCompile(`^ACC-[0-9A-F]{8}$`)
	for i := 0; i < 100; i++ {
		id := idgen.NewAccountID()
		assert.Regexp(t, pattern, id)
	}
}

func TestNewTransactionIDFormat(t *testing.T) {
	pattern := regexp.MustCompile(`^TX-[0-9A-F]{10}$`)
	for i := 0; i < 100; i++ {
		id := idgen.NewTransactionID()
		assert.Regexp(t, pattern, id)
	}
}

func TestIDsAreUnique(t *testing.T) {
	seen := make(map[string]struct{})
	for i := 0; i < 10000; i++ {
		id := idgen.NewTransactionID()
		_, dup := seen[id]
		assert.False(t, dup, "duplicate id %s", id)
		seen[id] = struct{}{}
	}
}
