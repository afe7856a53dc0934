// Package renaming implements clock-renaming relations: witnesses that two
// rows of the observation table denote equivalent languages up to a
// bijective-on-overlap renaming of their clock variables.
package renaming
