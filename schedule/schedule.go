// Package schedule loads scripted bids for the simulator from CSV files.
package schedule

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/holiman/uint256"

	"github.com/optakt/liquidator/b"
)

// Kind selects which side of a bid is exact.
type Kind string

const (
	ExactIn  Kind = "in"
	ExactOut Kind = "out"
)

const layout = "2006-01-02 15:04"

// Bid is a single scripted trade. For exact-in bids, Limit is the minimum
// amount out; for exact-out bids, it is the maximum amount in. A nil Limit
// means the bid takes any price.
type Bid struct {
	Time   time.Time
	Kind   Kind
	Amount *uint256.Int
	Limit  *uint256.Int
}

type Schedule struct {
	bids []Bid
}

// New reads a CSV file with the header `time,kind,amount,limit`. Amounts are
// decimal token amounts converted with the given number of decimals.
func New(file string, decimals int32) (*Schedule, error) {

	data, err := os.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("could not read bids file: %w", err)
	}

	return Parse(data, decimals)
}

func Parse(data []byte, decimals int32) (*Schedule, error) {

	csvr := csv.NewReader(bytes.NewReader(data))
	csvr.FieldsPerRecord = 4
	csvr.TrimLeadingSpace = true
	records, err := csvr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("could not read bid records: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("bids file has no header")
	}

	bids := make([]Bid, 0, len(records)-1)
	for i, record := range records[1:] {

		timestamp, err := time.Parse(layout, record[0])
		if err != nil {
			return nil, fmt.Errorf("could not parse bid time (row %d): %w", i+1, err)
		}

		kind := Kind(strings.ToLower(record[1]))
		if kind != ExactIn && kind != ExactOut {
			return nil, fmt.Errorf("invalid bid kind (row %d): %s", i+1, record[1])
		}

		amount, err := b.FromDecimal(record[2], decimals)
		if err != nil {
			return nil, fmt.Errorf("could not parse bid amount (row %d): %w", i+1, err)
		}

		var limit *uint256.Int
		if record[3] != "" {
			limit, err = b.FromDecimal(record[3], decimals)
			if err != nil {
				return nil, fmt.Errorf("could not parse bid limit (row %d): %w", i+1, err)
			}
		}

		bid := Bid{
			Time:   timestamp,
			Kind:   kind,
			Amount: amount,
			Limit:  limit,
		}
		bids = append(bids, bid)
	}

	sort.SliceStable(bids, func(i, j int) bool {
		return bids[i].Time.Before(bids[j].Time)
	})

	s := Schedule{
		bids: bids,
	}

	return &s, nil
}

// Due returns the bids with a time in (from, to].
func (s *Schedule) Due(from time.Time, to time.Time) []Bid {
	var due []Bid
	for _, bid := range s.bids {
		if bid.Time.After(from) && !bid.Time.After(to) {
			due = append(due, bid)
		}
	}
	return due
}

func (s *Schedule) Len() int {
	return len(s.bids)
}
