// Package domain contains the value objects shared by the PESEL codec,
// generator and validator: sex, birth dates, inclusive date ranges and the
// error taxonomy for malformed input. Types here are immutable and perform
// no I/O.
package domain
