// SPDX-License-Identifier: MIT

package track_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/spectra/track"
)

// BenchmarkAssign compares both matching policies at the domain's typical
// and ceiling dimensions.
func BenchmarkAssign(b *testing.B) {
	for _, d := range []int{8, 32, 128} {
		m := randomOverlap(d, 7)
		b.Run(fmt.Sprintf("Greedy/D=%d", d), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				if _, err := track.Assign(m, track.Greedy); err != nil {
					b.Fatal(err)
				}
			}
		})
		b.Run(fmt.Sprintf("Hungarian/D=%d", d), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				if _, err := track.Assign(m, track.OptimalAssignment); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
