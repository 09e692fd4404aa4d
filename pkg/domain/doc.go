// Package domain contains the value types shared across todayiran: distances,
// durations and velocities in canonical SI units, plus the named records used
// for projections and comparisons. All of them are immutable values with no
// infrastructure concerns.
package domain
