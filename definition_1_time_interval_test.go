package scheduler

import (
	"testing"
)

func TestIntervalOverlaps(t *testing.T) {
	tests := []struct {
		name string
		a    TimeInterval
		b    TimeInterval

		expectedResult bool
	}{
		{
			name: "1. Disjoint",
			a:    TimeInterval{TimeStart: 0, TimeEnd: 3},
			b:    TimeInterval{TimeStart: 5, TimeEnd: 8},

			expectedResult: false,
		},
		{
			name: "2. Exact touch is not overlap",
			a:    TimeInterval{TimeStart: 0, TimeEnd: 3},
			b:    TimeInterval{TimeStart: 3, TimeEnd: 6},

			expectedResult: false,
		},
		{
			name: "3. Partial overlap",
			a:    TimeInterval{TimeStart: 0, TimeEnd: 4},
			b:    TimeInterval{TimeStart: 3, TimeEnd: 6},

			expectedResult: true,
		},
		{
			name: "4. Containment",
			a:    TimeInterval{TimeStart: 0, TimeEnd: 10},
			b:    TimeInterval{TimeStart: 4, TimeEnd: 5},

			expectedResult: true,
		},
		{
			name: "5. Identical",
			a:    TimeInterval{TimeStart: 2, TimeEnd: 7},
			b:    TimeInterval{TimeStart: 2, TimeEnd: 7},

			expectedResult: true,
		},
		{
			name: "6. Zero-length inside busy span",
			a:    TimeInterval{TimeStart: 5, TimeEnd: 5},
			b:    TimeInterval{TimeStart: 0, TimeEnd: 10},

			expectedResult: false,
		},
		{
			name: "7. Two zero-length at same point",
			a:    TimeInterval{TimeStart: 5, TimeEnd: 5},
			b:    TimeInterval{TimeStart: 5, TimeEnd: 5},

			expectedResult: false,
		},
	}

	for _, tt := range tests {
		t.Run(
			tt.name,
			func(t *testing.T) {
				if got := tt.a.Overlaps(&tt.b); got != tt.expectedResult {
					t.Errorf(
						"expected %v, got %v",
						tt.expectedResult,
						got,
					)
				}

				// Overlap is symmetric.
				if got := tt.b.Overlaps(&tt.a); got != tt.expectedResult {
					t.Errorf(
						"expected symmetric %v, got %v",
						tt.expectedResult,
						got,
					)
				}
			},
		)
	}
}
