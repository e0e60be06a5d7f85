package interfaces

import "context"

// ICommissionRecomputer rewrites the stored commission of every unpaid
// installment that descends from orders of a material. It is called after the
// material's commission rate changes and returns how many rows changed.
type ICommissionRecomputer interface {
	RecomputeForMaterial(ctx context.Context, materialID string) (int, error)
}
