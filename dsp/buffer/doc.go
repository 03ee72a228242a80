// Package buffer provides a fixed-capacity circular buffer addressed by
// absolute sample index for streaming DSP processing. The push counter is
// never reset, so a logically unbounded stream can be random-accessed in
// O(1) with bounded memory; capacity is rounded up to a power of two so the
// modulo needed for circular indexing reduces to a bitwise AND.
package buffer
