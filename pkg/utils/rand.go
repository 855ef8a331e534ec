package utils

import (
	"sync"
	"time"

	"golang.org/x/exp/rand"
)

const letters = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

var (
	mu  sync.Mutex
	rng = rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
)

// RandString returns a short game code.
func RandString(n int) string {
	mu.Lock()
	defer mu.Unlock()
	b := make([]byte, n)
	for i := range b {
		b[i] = letters[rng.Intn(len(letters))]
	}
	return string(b)
}
