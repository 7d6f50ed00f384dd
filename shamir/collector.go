package shamir

import (
	"fmt"
	"math/big"
	"sync"
)

// Collector gathers shares for one or more share sets and reconstructs a
// secret once a set holds threshold distinct shares. It is safe for concurrent use.
type Collector struct {
	threshold int
	// collected maps a caller-chosen set id to the shares received so far.
	collected map[string][]*Share
	mu        sync.Mutex
}

// NewCollector creates a collector with the given threshold.
func NewCollector(threshold int) (*Collector, error) {
	if threshold < 1 {
		return nil, fmt.Errorf("%w: threshold must be at least 1", ErrInvalidParameters)
	}
	return &Collector{
		threshold: threshold,
		collected: make(map[string][]*Share),
	}, nil
}

// Add records share under setID. When the set reaches the threshold the secret
// is reconstructed and the set is cleared. Otherwise Add returns nil, nil.
func (c *Collector) Add(setID string, share *Share) (*big.Int, error) {
	if share == nil || share.X == nil || share.Y == nil {
		return nil, fmt.Errorf("%w: share cannot be nil", ErrInvalidParameters)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	for _, existing := range c.collected[setID] {
		if existing.X.Cmp(share.X) == 0 {
			return nil, fmt.Errorf("%w: duplicate share with X=%s already received", ErrInvalidShareSet, share.X)
		}
	}
	c.collected[setID] = append(c.collected[setID], share)
	if len(c.collected[setID]) < c.threshold {
		return nil, nil
	}
	shares := c.collected[setID]
	delete(c.collected, setID)
	return Combine(shares, c.threshold)
}

// Pending returns how many shares are held for setID.
func (c *Collector) Pending(setID string) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.collected[setID])
}

// Discard drops any shares held for setID.
func (c *Collector) Discard(setID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.collected, setID)
}
