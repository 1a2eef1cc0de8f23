package types

import "fmt"

// Bytes is a uint64 wrapper representing a size in bytes.
// Units are decimal (1 kB = 1000 B), the way storage cards are labelled.
type Bytes uint64

const (
	KB Bytes = 1000
	MB       = 1000 * KB
	GB       = 1000 * MB
	TB       = 1000 * GB
)

// ToBytes converts a raw byte count.
func ToBytes(n uint64) Bytes { return Bytes(n) }

// Uint64 returns the raw byte count.
func (b Bytes) Uint64() uint64 { return uint64(b) }

// Humanized returns a human-readable string with automatic unit (B, kB, MB, GB, TB).
func (b Bytes) Humanized() string {
	v := float64(b)
	switch {
	case b >= TB:
		return fmt.Sprintf("%.2f TB", v/float64(TB))
	case b >= GB:
		return fmt.Sprintf("%.2f GB", v/float64(GB))
	case b >= MB:
		return fmt.Sprintf("%.2f MB", v/float64(MB))
	case b >= KB:
		return fmt.Sprintf("%.2f kB", v/float64(KB))
	default:
		return fmt.Sprintf("%d B", b)
	}
}

// String implements fmt.Stringer.
func (b Bytes) String() string { return b.Humanized() }

// KB returns the number of kilobytes (1000 base).
func (b Bytes) KB() float64 { return float64(b) / float64(KB) }

// MB returns the number of megabytes (1000 base).
func (b Bytes) MB() float64 { return float64(b) / float64(MB) }

// GB returns the number of gigabytes (1000 base).
func (b Bytes) GB() float64 { return float64(b) / float64(GB) }
