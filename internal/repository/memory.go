package repository

import (
	"context"
	"fmt"
	"sync"

	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
)

type memoryScore struct {
	mu     sync.Mutex
	scores map[string]entity.Score
}

// NewMemoryScoreRepository keeps the tally for the lifetime of the process.
func NewMemoryScoreRepository() ScoreRepository {
	return &memoryScore{
		scores: make(map[string]entity.Score),
	}
}

func (that *memoryScore) Record(_ context.Context, profile string, standing entity.Standing) error {
	if !isKnownStanding(standing) {
		return fmt.Errorf("%w: %q", ErrUnknownStanding, standing)
	}

	that.mu.Lock()
	defer that.mu.Unlock()

	score := that.scores[profile]
	score.Add(standing)
	that.scores[profile] = score

	return nil
}

func (that *memoryScore) Get(_ context.Context, profile string) (*entity.Score, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	score := that.scores[profile]

	return &score, nil
}
