// Package pesel implements encoding, generation and validation of 11-digit
// PESEL identifiers.
//
// A code is laid out as YY MM DD SSS X C: two-digit year, month with a
// century offset added (+80 for the 1800s, +0 for the 1900s, +20 for the
// 2000s, +40 and +60 for the 2100s and 2200s), day, a three-digit sequence
// discriminator, a sex digit (even for female, odd for male) and a weighted
// check digit.
//
// The Generator produces batches of unique codes matching a sex and an
// inclusive birth date range, using either exhaustive enumeration followed by
// sampling or bounded rejection sampling. The validator classifies a code
// against an expected sex and birth date. Everything in this package is pure
// computation; randomness is injected so batches can be reproduced.
package pesel
