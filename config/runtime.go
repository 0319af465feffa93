package config

import "runtime"

// hardwareParallelism reports the available hardware parallelism used to
// size the default worker count.
func hardwareParallelism() int {
	return runtime.GOMAXPROCS(0)
}
