package repository

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/redis/go-redis/v9"

	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
)

var ErrUnknownStanding = errors.New("unknown standing")

type ScoreRepository interface {
	Record(ctx context.Context, profile string, standing entity.Standing) error
	Get(ctx context.Context, profile string) (*entity.Score, error)
}

type dbScore struct {
	client *redis.Client
}

func NewScoreRepository(client *redis.Client) ScoreRepository {
	return &dbScore{
		client: client,
	}
}

func scoreKey(profile string) string {
	return "score:" + profile
}

func (that *dbScore) Record(ctx context.Context, profile string, standing entity.Standing) error {
	if !isKnownStanding(standing) {
		return fmt.Errorf("%w: %q", ErrUnknownStanding, standing)
	}

	if err := that.client.HIncrBy(ctx, scoreKey(profile), string(standing), 1).Err(); err != nil {
		return fmt.Errorf("failed to record score: %w", err)
	}

	return nil
}

// Get returns the tally for the profile. A profile that never finished a game has a zero score.
func (that *dbScore) Get(ctx context.Context, profile string) (*entity.Score, error) {
	fields, err := that.client.HGetAll(ctx, scoreKey(profile)).Result()
	if err != nil {
		return &entity.Score{}, fmt.Errorf("failed to get score: %w", err)
	}

	score := &entity.Score{}
	for field, target := range map[entity.Standing]*int{
		entity.StandingHumanWon: &score.HumanWins,
		entity.StandingBotWon:   &score.BotWins,
		entity.StandingTie:      &score.Ties,
	} {
		value, ok := fields[string(field)]
		if !ok {
			continue
		}

		if *target, err = strconv.Atoi(value); err != nil {
			return &entity.Score{}, fmt.Errorf("failed to parse %s count: %w", field, err)
		}
	}

	return score, nil
}

func isKnownStanding(standing entity.Standing) bool {
	switch standing {
	case entity.StandingHumanWon, entity.StandingBotWon, entity.StandingTie:
		return true
	default:
		return false
	}
}
