package studio

import (
	"fmt"
	"iter"
	"sync"

	"imagestudio/internal/domain"
)

// ImageStore holds at most domain.SlotCount optional encoded images. It is the
// single source of truth for how many images are attached to a workspace.
type ImageStore struct {
	mu    sync.RWMutex
	slots [domain.SlotCount]*domain.EncodedImage
}

// NewImageStore returns a store with every slot absent.
func NewImageStore() *ImageStore {
	return &ImageStore{}
}

// SetSlot overwrites the slot at index unconditionally.
func (s *ImageStore) SetSlot(index int, img domain.EncodedImage) error {
	if index < 0 || index >= domain.SlotCount {
		return fmt.Errorf("%w: %d", domain.ErrInvalidSlot, index)
	}
	stored := img
	s.mu.Lock()
	s.slots[index] = &stored
	s.mu.Unlock()
	return nil
}

// ClearAll resets every slot to absent.
func (s *ImageStore) ClearAll() {
	s.mu.Lock()
	for i := range s.slots {
		s.slots[i] = nil
	}
	s.mu.Unlock()
}

// Slot returns the image held at index, if any.
func (s *ImageStore) Slot(index int) (domain.EncodedImage, bool) {
	if index < 0 || index >= domain.SlotCount {
		return domain.EncodedImage{}, false
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.slots[index] == nil {
		return domain.EncodedImage{}, false
	}
	return *s.slots[index], true
}

// Count returns the number of populated slots.
func (s *ImageStore) Count() int {
	n := 0
	for range s.PresentSlots() {
		n++
	}
	return n
}

// PresentSlots yields the populated slots in index order. The sequence reads
// live state each time it is ranged over, so it can be reused after writes.
func (s *ImageStore) PresentSlots() iter.Seq[domain.EncodedImage] {
	return func(yield func(domain.EncodedImage) bool) {
		for i := 0; i < domain.SlotCount; i++ {
			img, ok := s.Slot(i)
			if !ok {
				continue
			}
			if !yield(img) {
				return
			}
		}
	}
}
