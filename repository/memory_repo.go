package repository

import (
	"context"
	"strconv"
	"sync"

	"aerozone/models"
)

// MemoryOrderRepo keeps order lines in process. It backs DB_TYPE=memory and tests.
type MemoryOrderRepo struct {
	mu     sync.RWMutex
	lines  []models.OrderLine
	nextID int
}

func NewMemoryOrderRepo(seed ...models.OrderLine) *MemoryOrderRepo {
	r := &MemoryOrderRepo{}
	_ = r.InsertMany(context.Background(), seed)
	return r
}

func (r *MemoryOrderRepo) InsertMany(ctx context.Context, lines []models.OrderLine) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range lines {
		r.nextID++
		if lines[i].ID == "" {
			lines[i].ID = strconv.Itoa(r.nextID)
		}
		r.lines = append(r.lines, lines[i])
	}
	return nil
}

func (r *MemoryOrderRepo) FindAll(ctx context.Context) ([]models.OrderLine, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]models.OrderLine, len(r.lines))
	copy(out, r.lines)
	return out, nil
}

type MemoryIndentRepo struct {
	lines []models.IndentLine
}

func NewMemoryIndentRepo(seed ...models.IndentLine) *MemoryIndentRepo {
	r := &MemoryIndentRepo{}
	for i := range seed {
		if seed[i].ID == "" {
			seed[i].ID = strconv.Itoa(i + 1)
		}
	}
	r.lines = append(r.lines, seed...)
	return r
}

func (r *MemoryIndentRepo) FindAll(ctx context.Context) ([]models.IndentLine, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	out := make([]models.IndentLine, len(r.lines))
	copy(out, r.lines)
	return out, nil
}
