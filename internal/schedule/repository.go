package schedule

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"boxgym/internal/db"

	"github.com/redis/go-redis/v9"
)

var ErrSlotNotFound = errors.New("schedule slot not found")

// The schedule lives in one hash: slot id -> slot JSON.
type repository struct {
	rdb redis.Cmdable
}

func NewRepository(rdb redis.Cmdable) Repository {
	return &repository{rdb: rdb}
}

func (r *repository) ListSlots(ctx context.Context) ([]Slot, error) {
	entries, err := r.rdb.HGetAll(ctx, db.KeySchedule).Result()
	if err != nil {
		return nil, err
	}

	slots := make([]Slot, 0, len(entries))
	for id, raw := range entries {
		var slot Slot
		if err := json.Unmarshal([]byte(raw), &slot); err != nil {
			return nil, fmt.Errorf("decode slot %s: %w", id, err)
		}
		slots = append(slots, slot)
	}

	return slots, nil
}

func (r *repository) GetSlot(ctx context.Context, id string) (*Slot, error) {
	raw, err := r.rdb.HGet(ctx, db.KeySchedule, id).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrSlotNotFound
	}
	if err != nil {
		return nil, err
	}

	return DecodeSlot(raw)
}

func (r *repository) CreateSlot(ctx context.Context, slot Slot) (bool, error) {
	raw, err := json.Marshal(slot)
	if err != nil {
		return false, err
	}
	return r.rdb.HSetNX(ctx, db.KeySchedule, slot.ID, raw).Result()
}

func (r *repository) SeedSlots(ctx context.Context, slots []Slot) (int, error) {
	cmds := make([]*redis.BoolCmd, 0, len(slots))
	_, err := r.rdb.Pipelined(ctx, func(pipe redis.Pipeliner) error {
		for _, slot := range slots {
			raw, err := json.Marshal(slot)
			if err != nil {
				return err
			}
			cmds = append(cmds, pipe.HSetNX(ctx, db.KeySchedule, slot.ID, raw))
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	written := 0
	for _, cmd := range cmds {
		if cmd.Val() {
			written++
		}
	}
	return written, nil
}

func DecodeSlot(raw []byte) (*Slot, error) {
	var slot Slot
	if err := json.Unmarshal(raw, &slot); err != nil {
		return nil, fmt.Errorf("decode slot: %w", err)
	}
	return &slot, nil
}
