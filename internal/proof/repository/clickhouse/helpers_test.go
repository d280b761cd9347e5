package clickhouse

import (
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/golang/mock/gomock"

	"github.com/Matousse/Rebel-sub000/internal/proof/model"
)

type queryMatcher struct {
	fragment string
}

func queryContains(fragment string) gomock.Matcher {
	return queryMatcher{fragment: fragment}
}

func (m queryMatcher) Matches(x any) bool {
	s, ok := x.(string)
	return ok && strings.Contains(s, m.fragment)
}

func (m queryMatcher) String() string {
	return fmt.Sprintf("query containing %q", m.fragment)
}

// scanValues copies values into scan destinations in order.
func scanValues(values ...any) func(dest ...any) {
	return func(dest ...any) {
		for i := range dest {
			reflect.ValueOf(dest[i]).Elem().Set(reflect.ValueOf(values[i]))
		}
	}
}

func proofRow(p model.Proof) []any {
	return []any{
		p.ID,
		p.LineageID,
		p.Owner.String(),
		p.SubstitutedFrom,
		p.Title,
		p.ContentDigest.String(),
		p.Version,
		string(p.Status),
		p.IsPaid,
		p.Cost,
		p.AnchorAddress,
		p.AnchorBump,
		p.AnchorReference,
		p.FailureReason,
		p.Attempts,
		p.Revision,
		p.CreatedAt,
		p.UpdatedAt,
	}
}

func sampleProof(id string, version uint32) model.Proof {
	created := time.Date(2024, 5, 1, 10, 0, 0, 123000000, time.UTC)
	return model.Proof{
		ID:              id,
		LineageID:       "trackA",
		Owner:           "8Hh439HNMKGRTD1gmnifrJ2RrP6y8PsKwHRRQyponubt",
		Title:           "Demo",
		ContentDigest:   model.Digest{0xab, 0xcd},
		Version:         version,
		Status:          model.ProofConfirmed,
		IsPaid:          true,
		AnchorAddress:   "addr",
		AnchorBump:      254,
		AnchorReference: "ref",
		Attempts:        1,
		Revision:        2,
		CreatedAt:       created,
		UpdatedAt:       created.Add(time.Second),
	}
}
