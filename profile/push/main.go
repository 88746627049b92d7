// Profiling:
// go build ./profile/push
// go tool pprof -http=":8000" -nodefraction=0.001 ./push mem.pprof

package main

import (
	"github.com/edwinsyarief/soavec"
	"github.com/pkg/profile"
)

func main() {
	rounds := 50
	pushes := 100000
	p := profile.Start(profile.MemProfileAllocs, profile.ProfilePath("."), profile.NoShutdownHook)
	run(rounds, pushes)
	p.Stop()
}

func run(rounds, pushes int) {
	for range rounds {
		v := soavec.NewVector3[int32, float64, float64]()
		for i := range pushes {
			v.PushBack(int32(i), float64(i), float64(i)*0.5)
		}
		xs := soavec.Span[float64](v.Raw(), 1)
		ys := soavec.Span[float64](v.Raw(), 2)
		for i := range xs {
			xs[i] += ys[i]
		}
		v.ShrinkToFit()
		v.Reset()
	}
}
