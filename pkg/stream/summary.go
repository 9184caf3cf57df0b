package stream

import "fmt"

// SummaryStatistics describes a set of float values. Min and Max are zero
// when Count is zero.
type SummaryStatistics struct {
	Count int
	Sum   float64
	Min   float64
	Max   float64
}

func (s SummaryStatistics) Average() float64 {
	if s.Count == 0 {
		return 0
	}
	return s.Sum / float64(s.Count)
}

func (s *SummaryStatistics) Accept(v float64) {
	if s.Count == 0 || v < s.Min {
		s.Min = v
	}
	if s.Count == 0 || v > s.Max {
		s.Max = v
	}
	s.Sum += v
	s.Count++
}

func (s SummaryStatistics) String() string {
	return fmt.Sprintf("count=%d, sum=%f, min=%f, average=%f, max=%f",
		s.Count, s.Sum, s.Min, s.Average(), s.Max)
}

func Summarize[T any](xs []T, fn func(T) float64) SummaryStatistics {
	var s SummaryStatistics
	for _, x := range xs {
		s.Accept(fn(x))
	}
	return s
}
