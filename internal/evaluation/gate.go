package evaluation

import (
	"errors"
	"fmt"
)

// Gate holds the minimum aggregate scores a ranking change must keep
type Gate struct {
	MinRecallAtK float64
	MinMRRAtK    float64
}

// Check returns an error naming every threshold the summary misses
func (g Gate) Check(s *Summary) error {
	var errs []error
	if s.AvgRecallAtK < g.MinRecallAtK {
		errs = append(errs, fmt.Errorf("recall@%d %.3f below %.3f", s.K, s.AvgRecallAtK, g.MinRecallAtK))
	}
	if s.AvgMRRAtK < g.MinMRRAtK {
		errs = append(errs, fmt.Errorf("mrr@%d %.3f below %.3f", s.K, s.AvgMRRAtK, g.MinMRRAtK))
	}
	return errors.Join(errs...)
}
