package schedule

import "context"

type Repository interface {
	ListSlots(ctx context.Context) ([]Slot, error)
	GetSlot(ctx context.Context, id string) (*Slot, error)
	// CreateSlot stores slot unless the id is taken; it reports whether it wrote.
	CreateSlot(ctx context.Context, slot Slot) (bool, error)
	// SeedSlots stores every slot whose id is not present yet and returns how many were written.
	SeedSlots(ctx context.Context, slots []Slot) (int, error)
}
