package helpers

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"time"
)

const ticketNumberAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// GenerateTicketNumber issues a human-facing ticket number of the form
// TKT<6 digits><6 base36 chars>. The digits come from the current epoch
// milliseconds, the suffix from crypto/rand. Database uniqueness is still
// enforced by a unique constraint; callers retry on conflict.
func GenerateTicketNumber() string {
	millis := time.Now().UnixMilli() % 1000000

	suffix := make([]byte, 6)
	max := big.NewInt(int64(len(ticketNumberAlphabet)))
	for i := range suffix {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			// crypto/rand only fails when the OS entropy source is broken;
			// fall back to a time-derived index rather than aborting issuance.
			n = big.NewInt(time.Now().UnixNano() % int64(len(ticketNumberAlphabet)))
		}
		suffix[i] = ticketNumberAlphabet[n.Int64()]
	}

	return fmt.Sprintf("TKT%06d%s", millis, suffix)
}
