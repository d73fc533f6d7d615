package committer

import (
	"context"
	"fmt"

	"cloud.google.com/go/spanner"
)

// Adapter applies plans to Cloud Spanner in a read-write transaction.
type Adapter struct {
	client *spanner.Client
}

func NewAdapter(client *spanner.Client) *Adapter {
	return &Adapter{client: client}
}

func (a *Adapter) Apply(ctx context.Context, plan *Plan) error {
	if plan == nil || plan.IsEmpty() {
		return nil
	}

	if a.client == nil {
		return fmt.Errorf("committer: spanner client is nil")
	}

	muts, err := Mutations(plan)
	if err != nil {
		return err
	}

	_, err = a.client.ReadWriteTransaction(ctx, func(ctx context.Context, tx *spanner.ReadWriteTransaction) error {
		return tx.BufferWrite(muts)
	})
	return err
}

// Mutations translates the plan into Spanner mutations.
func Mutations(plan *Plan) ([]*spanner.Mutation, error) {
	out := make([]*spanner.Mutation, 0, len(plan.Writes()))
	for _, w := range plan.Writes() {
		switch w.Op {
		case OpInsert:
			out = append(out, spanner.InsertMap(w.Table, w.Values))
		case OpUpdate:
			out = append(out, spanner.UpdateMap(w.Table, w.Values))
		default:
			return nil, fmt.Errorf("committer: unknown op %q for table %s", w.Op, w.Table)
		}
	}
	return out, nil
}
