// Package netprobe provides host networking probes: connect-style TCP/UDP
// port checks, polling waits for a port to become open or closed, kernel
// allocation of free ports, and hostname/address helpers including the
// Docker host address resolution chain.
package netprobe
